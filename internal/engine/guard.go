package engine

import "github.com/lgbarn/chesscore/internal/chess"

// speculate applies mutate to board, evaluates inspect on the result and
// puts the board back exactly as it was. The restore runs in a defer so
// that every exit path, panics included, leaves the board untouched.
func speculate(board *chess.Board, mutate func(*chess.Board), inspect func(*chess.Board) bool) bool {
	saved := *board
	defer func() { *board = saved }()

	mutate(board)
	return inspect(board)
}

// relocate moves the piece on from to to, capturing whatever stands there.
// A two-file king step also brings the corner rook across. Promotion and
// side-to-move are left to the caller.
func relocate(board *chess.Board, from, to chess.Square) {
	piece := board.Get(from)
	board.Set(to, piece)
	board.Clear(from)

	if isCastlingStep(piece, from, to) {
		plan := planCastling(from, to)
		board.Set(plan.rookTo, board.Get(plan.rookFrom))
		board.Clear(plan.rookFrom)
	}
}
