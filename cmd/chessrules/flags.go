// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"

	"github.com/lgbarn/chesscore/internal/config"
)

var (
	// Position and history
	startFEN        = flag.String("fen", "", "Starting position in FEN (default: standard layout)")
	historyCapacity = flag.Int("history", config.DefaultHistoryCapacity, "Maximum positions kept for undo")
	evictOldest     = flag.Bool("evict", false, "Drop the oldest position when history is full instead of refusing to record")

	// Output options
	outputFile = flag.String("o", "", "Output file (default: stdout)")
	svgFile    = flag.String("svg", "", "Write an SVG diagram of the final position to this file")
	flipBoard  = flag.Bool("flip", false, "Draw the SVG diagram from Black's side")
	squareSize = flag.Int("squaresize", 45, "SVG square size in pixels")
	noBoard    = flag.Bool("noboard", false, "Don't print the board after each move")
	jsonOutput = flag.Bool("J", false, "Report final positions in JSON format")

	// Script replay
	strictMode = flag.Bool("strict", false, "Stop a script at its first rejected move, and the batch at its first failed script")
	checkOnly  = flag.Bool("check", false, "Only check that every move in the scripts is legal; print nothing but errors")
	workers    = flag.Int("j", 0, "Number of scripts replayed in parallel (0 = auto-detect based on CPU cores)")

	// Duplicate detection
	reportDuplicates = flag.Bool("D", false, "Report scripts that end in the same position as an earlier one")
	exactDuplicates  = flag.Bool("Dmoves", false, "With -D, also require the same number of moves")

	// Logging
	logFile   = flag.String("l", "", "Write diagnostics to log file")
	verbosity = flag.Int("v", config.Summary, "Verbosity: 0=silent, 1=summaries, 2=every move")

	// Other options
	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")

	// Note: -A flag is handled manually before flag.Parse() in loadArgsFromFileIfSpecified
	_ = flag.String("A", "", "File containing command-line arguments (one per line, # for comments)")
)

// buildConfig applies command-line flags to a configuration builder.
func buildConfig() *config.ConfigBuilder {
	b := config.NewConfigBuilder().
		WithStartFEN(*startFEN).
		WithVerbosity(*verbosity).
		WithStrict(*strictMode).
		WithWorkers(resolveWorkers(*workers))

	applyHistoryFlags(b)
	applyOutputFlags(b)
	applyDuplicateFlags(b)
	return b
}

// applyHistoryFlags configures the undo history.
func applyHistoryFlags(b *config.ConfigBuilder) {
	b.WithHistoryCapacity(*historyCapacity).
		WithEvictOldest(*evictOldest)
}

// applyOutputFlags configures board and diagram output.
func applyOutputFlags(b *config.ConfigBuilder) {
	b.WithShowBoard(!*noBoard).
		WithSVGFile(*svgFile).
		WithDiagram(*squareSize, *flipBoard).
		WithJSON(*jsonOutput)
}

// applyDuplicateFlags configures duplicate final-position reporting.
func applyDuplicateFlags(b *config.ConfigBuilder) {
	b.WithDuplicates(*reportDuplicates, *exactDuplicates)
}
