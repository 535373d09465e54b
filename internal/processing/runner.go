package processing

import (
	"fmt"
	"io"
	"strings"

	"github.com/lgbarn/chesscore/internal/config"
	"github.com/lgbarn/chesscore/internal/engine"
	"github.com/lgbarn/chesscore/internal/errors"
	"github.com/lgbarn/chesscore/internal/game"
	"github.com/lgbarn/chesscore/internal/output"
)

// Runner executes commands against one game and prints their results.
type Runner struct {
	game  *game.Game
	out   io.Writer
	board output.PositionWriter
	cfg   *config.Config

	// Counters for the replay summary.
	Moves    int
	Rejected int
	Undos    int
	Redos    int
}

// NewRunner creates a runner that prints to out.
func NewRunner(g *game.Game, out io.Writer, cfg *config.Config) *Runner {
	if cfg == nil {
		cfg = config.NewConfig()
	}
	return &Runner{game: g, out: out, board: output.NewTextWriter(out), cfg: cfg}
}

// Execute runs one command. quit is true for CmdQuit. A rejected move or
// an empty undo/redo returns an error; the game is left unchanged.
func (r *Runner) Execute(cmd Command) (quit bool, err error) {
	switch cmd.Kind {
	case CmdNone:
	case CmdMove:
		return false, r.move(cmd)
	case CmdUndo:
		if err := r.game.UndoErr(); err != nil {
			return false, err
		}
		r.Undos++
		r.printBoard()
	case CmdRedo:
		if err := r.game.RedoErr(); err != nil {
			return false, err
		}
		r.Redos++
		r.printBoard()
	case CmdBoard:
		r.board.WritePosition(r.game.Board()) //nolint:errcheck,gosec // G104: best-effort console output
	case CmdFEN:
		fmt.Fprintln(r.out, r.game.FEN())
	case CmdMoves:
		targets := r.game.LegalMoves(cmd.From)
		names := make([]string, len(targets))
		for i, sq := range targets {
			names[i] = sq.String()
		}
		fmt.Fprintf(r.out, "%s: %s\n", cmd.From, strings.Join(names, " "))
	case CmdStatus:
		r.printStatus(true)
	case CmdQuit:
		return true, nil
	default:
		return false, errors.Wrapf(errors.ErrUnknownCommand, "kind %d", cmd.Kind)
	}
	return false, nil
}

func (r *Runner) move(cmd Command) error {
	if _, err := r.game.Play(cmd.From, cmd.To); err != nil {
		r.Rejected++
		return err
	}
	r.Moves++
	r.printBoard()
	r.printStatus(false)
	return nil
}

func (r *Runner) printBoard() {
	if r.cfg.Output.ShowBoard {
		r.board.WritePosition(r.game.Board()) //nolint:errcheck,gosec // G104: best-effort console output
	}
}

// printStatus reports check, checkmate or stalemate for the side to move.
// A normal position is only reported when always is set.
func (r *Runner) printStatus(always bool) {
	side := r.game.Turn()
	switch status := r.game.Status(); status {
	case engine.Checkmate:
		fmt.Fprintf(r.out, "Checkmate! %s wins.\n", side.Opposite())
	case engine.Stalemate:
		fmt.Fprintln(r.out, "Stalemate! Draw.")
	case engine.Check:
		fmt.Fprintf(r.out, "%s is in check.\n", side)
	default:
		if always {
			fmt.Fprintf(r.out, "%s to move.\n", side)
		}
	}
}
