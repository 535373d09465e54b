// Package game ties a board, the rules engine and the undo/redo history
// into a playable session. A Game is owned by a single goroutine.
package game

import (
	"github.com/lgbarn/chesscore/internal/chess"
	"github.com/lgbarn/chesscore/internal/config"
	"github.com/lgbarn/chesscore/internal/engine"
	"github.com/lgbarn/chesscore/internal/errors"
	"github.com/lgbarn/chesscore/internal/history"
)

// classify is engine.Status; tests replace it to count searches.
var classify = engine.Status

// Game is a two-player session on one board.
type Game struct {
	cfg     *config.Config
	board   *chess.Board
	history *history.Stack
	plies   int
}

// New starts a game from the configured position, or the standard
// starting position when cfg.StartFEN is empty. A nil cfg uses defaults.
func New(cfg *config.Config) (*Game, error) {
	if cfg == nil {
		cfg = config.NewConfig()
	}
	if cfg.StartFEN == "" {
		return newGame(chess.NewInitialBoard(), cfg), nil
	}
	board, err := engine.NewBoardFromFEN(cfg.StartFEN)
	if err != nil {
		return nil, err
	}
	return newGame(board, cfg), nil
}

// NewFromBoard starts a game from a copy of board.
func NewFromBoard(board *chess.Board, cfg *config.Config) *Game {
	if cfg == nil {
		cfg = config.NewConfig()
	}
	return newGame(board.Copy(), cfg)
}

func newGame(board *chess.Board, cfg *config.Config) *Game {
	policy := history.RejectWhenFull
	if cfg.History.EvictOldest {
		policy = history.EvictOldest
	}
	return &Game{
		cfg:   cfg,
		board: board,
		history: history.New(board,
			history.WithCapacity(cfg.History.Capacity),
			history.WithPolicy(policy)),
	}
}

// Move plays a move for the side to move and reports whether it was legal.
func (g *Game) Move(from, to chess.Square) bool {
	_, err := g.Play(from, to)
	return err == nil
}

// Play plays a move for the side to move. On success the new position is
// recorded for undo and the resulting status is logged.
func (g *Game) Play(from, to chess.Square) (engine.MoveResult, error) {
	result, err := engine.ApplyMove(g.board, from, to)
	if err != nil {
		g.cfg.Logf(config.Commentary, "rejected %s-%s: %v", from, to, err)
		return result, err
	}
	g.plies++

	if !g.history.Push(g.board) {
		g.cfg.Logf(config.Commentary, "history full (%d), %s-%s not recorded for undo",
			g.history.Capacity(), from, to)
	}
	g.logMove(result)
	return result, nil
}

// PlayText plays a move given in algebraic coordinates, e.g. "e2", "e4".
func (g *Game) PlayText(from, to string) (engine.MoveResult, error) {
	fromSq, err := chess.ParseSquare(from)
	if err != nil {
		return engine.MoveResult{}, err
	}
	toSq, err := chess.ParseSquare(to)
	if err != nil {
		return engine.MoveResult{}, err
	}
	return g.Play(fromSq, toSq)
}

func (g *Game) logMove(result engine.MoveResult) {
	if !g.cfg.Enabled(config.Commentary) {
		return
	}
	mover := result.Piece.Colour()
	switch {
	case result.Castled:
		g.cfg.Logf(config.Commentary, "%s castles %s-%s", mover, result.From, result.To)
	case !result.Captured.IsEmpty():
		g.cfg.Logf(config.Commentary, "%s %s-%s takes %s", mover, result.From, result.To, result.Captured.Type())
	default:
		g.cfg.Logf(config.Commentary, "%s %s-%s", mover, result.From, result.To)
	}
	if result.Promoted {
		g.cfg.Logf(config.Commentary, "pawn promoted to queen on %s", result.To)
	}
	if status := g.Status(); status != engine.Normal {
		g.cfg.Logf(config.Commentary, "%s: %s", g.board.ToMove, status)
	}
}

// Undo restores the previous recorded position.
func (g *Game) Undo() bool {
	if !g.history.Undo(g.board) {
		return false
	}
	g.cfg.Logf(config.Commentary, "undo to position %d", g.history.Current())
	return true
}

// Redo re-applies the next recorded position.
func (g *Game) Redo() bool {
	if !g.history.Redo(g.board) {
		return false
	}
	g.cfg.Logf(config.Commentary, "redo to position %d", g.history.Current())
	return true
}

// UndoErr is Undo with an error for callers that report failures.
func (g *Game) UndoErr() error {
	if !g.Undo() {
		return errors.ErrNothingToUndo
	}
	return nil
}

// RedoErr is Redo with an error for callers that report failures.
func (g *Game) RedoErr() error {
	if !g.Redo() {
		return errors.ErrNothingToRedo
	}
	return nil
}

// Board returns a copy of the current board.
func (g *Game) Board() *chess.Board {
	return g.board.Copy()
}

// Turn returns the side to move.
func (g *Game) Turn() chess.Colour {
	return g.board.ToMove
}

// Digest returns the 64-character board string.
func (g *Game) Digest() string {
	return g.board.Digest()
}

// FEN returns the position in FEN notation.
func (g *Game) FEN() string {
	return engine.BoardToFEN(g.board)
}

// Status classifies the position for the side to move.
func (g *Game) Status() engine.GameStatus {
	return g.StatusOf(g.board.ToMove)
}

// StatusOf classifies the position for colour.
func (g *Game) StatusOf(colour chess.Colour) engine.GameStatus {
	return classify(g.board, colour)
}

// InCheck reports whether colour's king is attacked.
func (g *Game) InCheck(colour chess.Colour) bool {
	return engine.IsInCheck(g.board, colour)
}

// IsCheckmate reports whether colour is checkmated.
func (g *Game) IsCheckmate(colour chess.Colour) bool {
	return engine.IsCheckmate(g.board, colour)
}

// IsStalemate reports whether colour is stalemated.
func (g *Game) IsStalemate(colour chess.Colour) bool {
	return engine.IsStalemate(g.board, colour)
}

// LegalMoves lists the legal destinations of the piece on from.
func (g *Game) LegalMoves(from chess.Square) []chess.Square {
	return engine.LegalMoves(g.board, from)
}

// Plies returns the number of moves committed, undone moves included.
func (g *Game) Plies() int {
	return g.plies
}

// HistoryPosition returns the current history index and the redo ceiling.
func (g *Game) HistoryPosition() (current, top int) {
	return g.history.Current(), g.history.Top()
}

// Clone returns an independent copy of the game with a fresh history
// seeded from the current position.
func (g *Game) Clone() *Game {
	clone := newGame(g.board.Copy(), g.cfg)
	clone.plies = g.plies
	return clone
}
