package engine

import "github.com/lgbarn/chesscore/internal/chess"

// GameStatus summarises the position from one side's point of view.
type GameStatus int

const (
	Normal GameStatus = iota
	Check
	Checkmate
	Stalemate
)

// String returns the string representation of a status.
func (s GameStatus) String() string {
	switch s {
	case Check:
		return "check"
	case Checkmate:
		return "checkmate"
	case Stalemate:
		return "stalemate"
	}
	return "normal"
}

// IsCheckmate returns true if colour is in check and no legal move gets
// it out of check.
func IsCheckmate(board *chess.Board, colour chess.Colour) bool {
	if !IsInCheck(board, colour) {
		return false
	}
	return !hasEscape(board, colour)
}

// IsStalemate returns true if colour is not in check and has no legal move.
func IsStalemate(board *chess.Board, colour chess.Colour) bool {
	if IsInCheck(board, colour) {
		return false
	}
	return !hasEscape(board, colour)
}

// HasLegalMoves returns true if the given colour has at least one legal move.
func HasLegalMoves(board *chess.Board, colour chess.Colour) bool {
	return hasEscape(board, colour)
}

// Status classifies the position for colour.
func Status(board *chess.Board, colour chess.Colour) GameStatus {
	inCheck := IsInCheck(board, colour)
	canMove := hasEscape(board, colour)
	switch {
	case inCheck && !canMove:
		return Checkmate
	case inCheck:
		return Check
	case !canMove:
		return Stalemate
	}
	return Normal
}

// hasEscape tries every (origin, destination) pair for colour. Each legal
// move is played speculatively and the king re-examined; the first move
// after which colour is not in check ends the search.
func hasEscape(board *chess.Board, colour chess.Colour) bool {
	found := false
	chess.ForEachSquare(func(from chess.Square) bool {
		if board.Get(from).Colour() != colour {
			return true
		}
		chess.ForEachSquare(func(to chess.Square) bool {
			if !IsLegalMove(board, from, to) {
				return true
			}
			stillInCheck := speculate(board,
				func(b *chess.Board) { relocate(b, from, to) },
				func(b *chess.Board) bool { return IsInCheck(b, colour) })
			found = !stillInCheck
			return !found
		})
		return !found
	})
	return found
}
