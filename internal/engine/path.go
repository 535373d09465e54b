package engine

import "github.com/lgbarn/chesscore/internal/chess"

// stepToward returns the unit 0x88 step that walks from one square toward
// another along a rank, file or diagonal.
func stepToward(from, to chess.Square) int {
	return sign(to.Rank()-from.Rank())*chess.North + sign(to.File()-from.File())*chess.East
}

// isPathClear checks that every square strictly between from and to,
// walking by step, is on the board and empty. The caller guarantees that
// repeatedly adding step to from reaches to.
func isPathClear(board *chess.Board, from, to chess.Square, step int) bool {
	if step == 0 {
		return false
	}
	for sq := from.Offset(step); sq != to; sq = sq.Offset(step) {
		if !sq.OnBoard() {
			return false
		}
		if !board.Get(sq).IsEmpty() {
			return false
		}
	}
	return true
}
