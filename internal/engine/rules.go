// Package engine provides chess move validation, move execution and
// game status detection on top of the board model in package chess.
//
// Legality has two entry points. CanReach checks only the basic piece
// pattern and is what attack detection uses. IsLegalMove adds castling
// validation and the self-check rule, both of which call IsInCheck.
// Because IsInCheck only ever calls CanReach, the recursion between move
// legality and check detection is at most one level deep.
package engine

import (
	"github.com/lgbarn/chesscore/internal/chess"
	"github.com/lgbarn/chesscore/internal/errors"
)

// IsLegalMove reports whether the piece on from may move to to, including
// castling rules and the rule that a move may not leave the mover's own
// king in check. The board is identical before and after the call.
// Whose turn it is does not matter here; see MakeMove.
func IsLegalMove(board *chess.Board, from, to chess.Square) bool {
	return ValidateMove(board, from, to) == nil
}

// ValidateMove is IsLegalMove with a diagnostic. It returns nil for a legal
// move and a *errors.MoveError wrapping errors.ErrIllegalMove otherwise.
func ValidateMove(board *chess.Board, from, to chess.Square) error {
	if reason := basicMove(board, from, to); reason != errors.ReasonNone {
		return illegal(from, to, reason)
	}

	piece := board.Get(from)
	if isCastlingStep(piece, from, to) {
		if reason := checkCastling(board, from, to); reason != errors.ReasonNone {
			return illegal(from, to, reason)
		}
	}

	if leavesKingInCheck(board, from, to) {
		return illegal(from, to, errors.ReasonLeavesKingInCheck)
	}
	return nil
}

// CanReach reports whether the piece on from could capture on, or move to,
// to by its movement pattern alone. King safety is ignored and castling is
// not a reaching move, so this is the attack test used by check detection.
// It never calls IsInCheck.
func CanReach(board *chess.Board, from, to chess.Square) bool {
	if basicMove(board, from, to) != errors.ReasonNone {
		return false
	}
	return !isCastlingStep(board.Get(from), from, to)
}

// basicMove runs the preconditions and the piece pattern.
func basicMove(board *chess.Board, from, to chess.Square) errors.Reason {
	if reason := checkPreconditions(board, from, to); reason != errors.ReasonNone {
		return reason
	}
	return checkPattern(board, from, to)
}

// leavesKingInCheck plays the move on the board, asks whether the mover's
// king is attacked, and restores the board.
func leavesKingInCheck(board *chess.Board, from, to chess.Square) bool {
	colour := board.Get(from).Colour()
	return speculate(board,
		func(b *chess.Board) { relocate(b, from, to) },
		func(b *chess.Board) bool { return IsInCheck(b, colour) })
}

// illegal builds the diagnostic error for a rejected move.
func illegal(from, to chess.Square, reason errors.Reason) error {
	return &errors.MoveError{
		Err:    errors.ErrIllegalMove,
		From:   from.String(),
		To:     to.String(),
		Reason: reason,
	}
}
