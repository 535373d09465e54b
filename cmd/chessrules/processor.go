// processor.go - Interactive console and script replay
package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/lgbarn/chesscore/internal/chess"
	"github.com/lgbarn/chesscore/internal/config"
	"github.com/lgbarn/chesscore/internal/game"
	"github.com/lgbarn/chesscore/internal/hashing"
	"github.com/lgbarn/chesscore/internal/output"
	"github.com/lgbarn/chesscore/internal/processing"
	"github.com/lgbarn/chesscore/internal/worker"
)

// resolveWorkers maps the -j value to a worker count; 0 means one per CPU.
func resolveWorkers(n int) int {
	if n <= 0 {
		return runtime.NumCPU()
	}
	return n
}

// runInteractive reads commands from in until EOF or quit, printing the
// board and any check, checkmate or stalemate after each move.
func runInteractive(in io.Reader, cfg *config.Config) (*chess.Board, error) {
	g, err := game.New(cfg)
	if err != nil {
		return nil, err
	}
	out := cfg.OutputFile
	runner := processing.NewRunner(g, out, cfg)

	fmt.Fprint(out, output.FormatBoard(g.Board()))
	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprintf(out, "%s> ", g.Turn())
		if !scanner.Scan() {
			fmt.Fprintln(out)
			break
		}

		cmd, err := processing.ParseCommand(scanner.Text())
		if err != nil {
			fmt.Fprintf(out, "Error: %v\n", err)
			continue
		}
		quit, err := runner.Execute(cmd)
		if err != nil {
			fmt.Fprintf(out, "Error: %v\n", err)
			continue
		}
		if quit {
			break
		}
	}

	current, top := g.HistoryPosition()
	cfg.Logf(config.Summary, "%d move(s), %d rejected, history %d/%d, %s to move: %s",
		g.Plies(), runner.Rejected, current, top, g.Turn(), g.Status())
	return g.Board(), scanner.Err()
}

// loadScripts parses every script file. Files that cannot be read or
// parsed are reported and skipped.
func loadScripts(paths []string, cfg *config.Config) ([]*processing.Script, int) {
	var scripts []*processing.Script
	failures := 0
	for _, path := range paths {
		script, err := loadScript(path)
		if err != nil {
			fmt.Fprintf(cfg.LogFile, "Error: %v\n", err)
			failures++
			continue
		}
		scripts = append(scripts, script)
	}
	return scripts, failures
}

func loadScript(path string) (*processing.Script, error) {
	file, err := os.Open(path) //nolint:gosec // G304: CLI tool opens user-specified files
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return processing.ParseScript(file, path)
}

// runScripts replays the scripts on a worker pool and prints their output
// in input order. It returns the final boards and the number of scripts
// that failed.
func runScripts(scripts []*processing.Script, cfg *config.Config) ([]*chess.Board, int) {
	bufferSize := len(scripts)
	if bufferSize > 100 {
		bufferSize = 100
	}
	pool := worker.NewPoolWithOptions(worker.ReplayFunc(cfg),
		worker.WithWorkers(cfg.Workers),
		worker.WithBufferSize(bufferSize),
		worker.WithStopOnError(cfg.Strict))

	var detector *hashing.DuplicateDetector
	if cfg.Duplicate.Detect {
		detector = hashing.NewDuplicateDetector(cfg.Duplicate.ExactMatch)
	}

	var boards []*chess.Board
	failures := 0
	results := pool.Run(scripts)
	for _, result := range results {
		if len(scripts) > 1 && !cfg.Output.JSONFormat {
			fmt.Fprintf(cfg.OutputFile, "== %s ==\n", result.Script.Name)
		}
		if !cfg.Output.JSONFormat {
			cfg.OutputFile.Write(result.Output) //nolint:errcheck,gosec // G104: best-effort console output
		}
		if cfg.LogFile != nil {
			cfg.LogFile.Write(result.Log) //nolint:errcheck,gosec // G104: best-effort diagnostics
		}

		if result.Error != nil {
			fmt.Fprintf(cfg.LogFile, "Error: %v\n", result.Error)
			failures++
		}
		if a := result.Analysis; a != nil {
			cfg.Logf(config.Summary, "%s: %d move(s), %d rejected, %d undo, %d redo, %s to move: %s",
				a.Name, a.Moves, a.Rejected, a.Undos, a.Redos, a.FinalBoard.ToMove, a.Status)
			boards = append(boards, a.FinalBoard)

			if detector != nil {
				if first, dup := detector.CheckAndAdd(a.Name, a.FinalBoard, a.Moves); dup {
					cfg.Logf(config.Summary, "%s: same final position as %s", a.Name, first.Name)
				}
			}
		}
	}
	if skipped := len(scripts) - len(results); skipped > 0 {
		cfg.Logf(config.Summary, "%d script(s) not run after the first failure", skipped)
	}
	if detector != nil {
		cfg.Logf(config.Summary, "%d distinct final position(s), %d duplicate(s)",
			detector.UniqueCount(), detector.DuplicateCount())
	}
	return boards, failures
}

// checkScripts replays every script strictly without printing and
// returns the number that contain an illegal move or bad command.
func checkScripts(scripts []*processing.Script, cfg *config.Config) int {
	failures := 0
	for _, script := range scripts {
		if err := processing.ValidateScript(script, cfg); err != nil {
			fmt.Fprintf(cfg.LogFile, "Error: %v\n", err)
			failures++
			continue
		}
		cfg.Logf(config.Summary, "%s: %d move(s) ok", script.Name, script.MoveCount())
	}
	return failures
}

// writeFinalPositions reports the final boards as JSON and SVG when those
// outputs are enabled.
func writeFinalPositions(boards []*chess.Board, cfg *config.Config) error {
	if cfg.Output.JSONFormat {
		jw := output.NewJSONWriter(cfg.OutputFile)
		for _, board := range boards {
			if err := jw.WritePosition(board); err != nil {
				return err
			}
		}
		if err := jw.Close(); err != nil {
			return err
		}
	}

	if cfg.Output.SVGFile == "" {
		return nil
	}
	for i, board := range boards {
		path := svgPath(cfg.Output.SVGFile, i, len(boards))
		if err := writeSVG(path, board, cfg); err != nil {
			return err
		}
		cfg.Logf(config.Commentary, "wrote %s", path)
	}
	return nil
}

// svgPath numbers diagram files when there is more than one board:
// final.svg becomes final_1.svg, final_2.svg and so on.
func svgPath(base string, index, total int) string {
	if total <= 1 {
		return base
	}
	ext := filepath.Ext(base)
	return fmt.Sprintf("%s_%d%s", strings.TrimSuffix(base, ext), index+1, ext)
}

func writeSVG(path string, board *chess.Board, cfg *config.Config) error {
	file, err := os.Create(path) //nolint:gosec // G304: CLI tool writes user-specified files
	if err != nil {
		return err
	}
	sw := output.NewSVGWriter(file, cfg.Output.SquareSize, cfg.Output.FlipBoard)
	if err := sw.WritePosition(board); err != nil {
		file.Close() //nolint:errcheck,gosec // G104: error already being returned
		return err
	}
	return file.Close()
}
