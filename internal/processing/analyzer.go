package processing

import (
	"io"

	"github.com/lgbarn/chesscore/internal/chess"
	"github.com/lgbarn/chesscore/internal/config"
	"github.com/lgbarn/chesscore/internal/engine"
	"github.com/lgbarn/chesscore/internal/errors"
	"github.com/lgbarn/chesscore/internal/game"
)

// ScriptAnalysis holds the outcome of replaying a script.
type ScriptAnalysis struct {
	Name       string
	FinalBoard *chess.Board
	Status     engine.GameStatus // for the side to move at the end
	Moves      int               // committed moves
	Rejected   int               // moves refused by the rules
	Undos      int
	Redos      int
	Quit       bool // script ended with a quit command
}

// ReplayScript plays a script on a fresh game built from cfg, printing
// command output to out. Rejected moves and empty undo/redo are logged and
// skipped unless cfg.Strict is set, in which case the first one ends the
// replay with a *errors.ScriptError. The analysis is returned either way.
func ReplayScript(script *Script, cfg *config.Config, out io.Writer) (*ScriptAnalysis, error) {
	if cfg == nil {
		cfg = config.NewConfig()
	}
	g, err := game.New(cfg)
	if err != nil {
		return nil, &errors.ScriptError{Err: err, File: script.Name}
	}
	runner := NewRunner(g, out, cfg)
	analysis := &ScriptAnalysis{Name: script.Name}

	var failure error
	for _, cmd := range script.Commands {
		quit, err := runner.Execute(cmd)
		if err != nil {
			cfg.Logf(config.Summary, "%s:%d: %v", script.Name, cmd.Line, err)
			if cfg.Strict {
				failure = &errors.ScriptError{Err: err, File: script.Name, Line: cmd.Line, Command: cmd.Text}
				break
			}
			continue
		}
		if quit {
			analysis.Quit = true
			break
		}
	}

	analysis.FinalBoard = g.Board()
	analysis.Status = g.Status()
	analysis.Moves = runner.Moves
	analysis.Rejected = runner.Rejected
	analysis.Undos = runner.Undos
	analysis.Redos = runner.Redos
	return analysis, failure
}

// ValidateScript replays a script without output and reports the first
// rejected command, if any.
func ValidateScript(script *Script, cfg *config.Config) error {
	strict := config.NewConfig()
	if cfg != nil {
		copied := *cfg
		strict = &copied
	}
	strict.Strict = true
	strict.Output.ShowBoard = false
	strict.LogFile = nil
	_, err := ReplayScript(script, strict, io.Discard)
	return err
}
