package engine

import "github.com/lgbarn/chesscore/internal/chess"

// LegalMoves returns every destination the piece on from may legally move
// to, in a1..h8 order. It returns nil for an empty or off-board origin.
func LegalMoves(board *chess.Board, from chess.Square) []chess.Square {
	if !from.OnBoard() || board.Get(from).IsEmpty() {
		return nil
	}
	var targets []chess.Square
	chess.ForEachSquare(func(to chess.Square) bool {
		if IsLegalMove(board, from, to) {
			targets = append(targets, to)
		}
		return true
	})
	return targets
}

// CountLegalMoves returns the number of legal (origin, destination) pairs
// for colour.
func CountLegalMoves(board *chess.Board, colour chess.Colour) int {
	count := 0
	chess.ForEachSquare(func(from chess.Square) bool {
		if board.Get(from).Colour() == colour {
			count += len(LegalMoves(board, from))
		}
		return true
	})
	return count
}
