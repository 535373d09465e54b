// chessrules plays and checks chess moves from the console or from move scripts.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/lgbarn/chesscore/internal/chess"
	"github.com/lgbarn/chesscore/internal/config"
)

const programVersion = "0.1.0"

func main() {
	if fileArgs := loadArgsFromFileIfSpecified(); fileArgs != nil {
		os.Args = append(os.Args[:1], mergeArgs(fileArgs, os.Args[1:])...)
	}

	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}

	if *version {
		fmt.Printf("chessrules version %s\n", programVersion)
		os.Exit(0)
	}

	builder := buildConfig()
	if err := builder.Build().Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	// Set up logging and output files
	setupLogFile(builder)
	setupOutputFile(builder)
	cfg := builder.Build()

	os.Exit(run(flag.Args(), cfg))
}

// run replays the scripts in args, or starts the console when there are
// none, and returns the process exit code.
func run(args []string, cfg *config.Config) int {
	var boards []*chess.Board
	failures := 0

	if len(args) == 0 {
		board, err := runInteractive(os.Stdin, cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
		boards = append(boards, board)
	} else {
		scripts, loadFailures := loadScripts(args, cfg)
		if *checkOnly {
			if checkScripts(scripts, cfg)+loadFailures > 0 {
				return 1
			}
			return 0
		}
		boards, failures = runScripts(scripts, cfg)
		failures += loadFailures
	}

	if err := writeFinalPositions(boards, cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	if failures > 0 {
		return 1
	}
	return 0
}

// setupLogFile configures the log file based on command-line flags.
func setupLogFile(b *config.ConfigBuilder) {
	if *logFile == "" {
		return
	}
	file, err := os.Create(*logFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating log file %s: %v\n", *logFile, err)
		os.Exit(1)
	}
	b.WithLogFile(file)
}

// setupOutputFile configures the output file based on command-line flags.
func setupOutputFile(b *config.ConfigBuilder) {
	if *outputFile == "" {
		return
	}
	file, err := os.Create(*outputFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output file %s: %v\n", *outputFile, err)
		os.Exit(1)
	}
	b.WithOutputFile(file)
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: chessrules [options] [script-files...]\n\n")
	fmt.Fprintf(os.Stderr, "Plays chess moves with full rules checking. With no script files,\n")
	fmt.Fprintf(os.Stderr, "commands are read from standard input.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nCommands:\n")
	fmt.Fprintf(os.Stderr, "  e2 e4      Move a piece (also e2-e4 or e2e4)\n")
	fmt.Fprintf(os.Stderr, "  undo, redo Step through the move history\n")
	fmt.Fprintf(os.Stderr, "  board      Print the board\n")
	fmt.Fprintf(os.Stderr, "  fen        Print the position in FEN\n")
	fmt.Fprintf(os.Stderr, "  moves e2   List legal destinations of the piece on e2\n")
	fmt.Fprintf(os.Stderr, "  status     Print the side to move and check status\n")
	fmt.Fprintf(os.Stderr, "  quit       Stop\n")
}
