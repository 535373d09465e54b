package engine

import "github.com/lgbarn/chesscore/internal/chess"

// IsInCheck returns true if the given colour's king is in check.
// A board without that king is reported as not in check.
func IsInCheck(board *chess.Board, colour chess.Colour) bool {
	kingSq, ok := FindKing(board, colour)
	if !ok {
		return false
	}
	return isSquareAttacked(board, kingSq, colour.Opposite())
}

// FindKing finds the king of the given colour on the board. It returns
// chess.NoSquare and false when there is none.
func FindKing(board *chess.Board, colour chess.Colour) (chess.Square, bool) {
	found := chess.NoSquare
	chess.ForEachSquare(func(sq chess.Square) bool {
		if board.Get(sq).Is(colour, chess.King) {
			found = sq
			return false
		}
		return true
	})
	return found, found != chess.NoSquare
}

// isSquareAttacked returns true if any piece of byColour can reach the
// occupied square sq by its basic movement pattern. Pawns only attack
// diagonally onto an occupied square, so sq is expected to hold a piece.
func isSquareAttacked(board *chess.Board, sq chess.Square, byColour chess.Colour) bool {
	attacked := false
	chess.ForEachSquare(func(from chess.Square) bool {
		if board.Get(from).Colour() != byColour {
			return true
		}
		if CanReach(board, from, sq) {
			attacked = true
			return false
		}
		return true
	})
	return attacked
}
