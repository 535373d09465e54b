package engine

import (
	"github.com/lgbarn/chesscore/internal/chess"
	"github.com/lgbarn/chesscore/internal/errors"
)

// castlingPlan holds the four squares touched by a castling move.
type castlingPlan struct {
	kingFrom, kingTo chess.Square
	rookFrom, rookTo chess.Square
	kingside         bool
}

// isCastlingStep reports whether moving piece from one square to another
// is a castling attempt: a king moving exactly two files along its rank.
func isCastlingStep(piece chess.Piece, from, to chess.Square) bool {
	return piece.Type() == chess.King && from.Rank() == to.Rank() && abs(to.File()-from.File()) == 2
}

// planCastling works out which corner rook takes part. The rook always
// comes from the a- or h-file of the king's rank and lands on the square
// the king crossed, which is the f- or d-file for a king starting on e.
func planCastling(from, to chess.Square) castlingPlan {
	rank := from.Rank()
	kingside := to.File() > from.File()

	plan := castlingPlan{kingFrom: from, kingTo: to, kingside: kingside}
	if kingside {
		plan.rookFrom = chess.MustSquare(7, rank)
		plan.rookTo = to.Offset(chess.West)
	} else {
		plan.rookFrom = chess.MustSquare(0, rank)
		plan.rookTo = to.Offset(chess.East)
	}
	return plan
}

// checkCastling validates a two-file king step. Castling rights are not
// tracked: a king and rook of the same colour on the right squares may
// always castle. Only the king's current square and its destination are
// tested for attack; the square it crosses is not.
func checkCastling(board *chess.Board, from, to chess.Square) errors.Reason {
	king := board.Get(from)
	colour := king.Colour()
	plan := planCastling(from, to)

	if !board.Get(plan.rookFrom).Is(colour, chess.Rook) {
		return errors.ReasonCastlingNoRook
	}
	if !isPathClear(board, from, plan.rookFrom, stepToward(from, plan.rookFrom)) {
		return errors.ReasonCastlingBlocked
	}
	if IsInCheck(board, colour) {
		return errors.ReasonCastlingInCheck
	}

	intoCheck := speculate(board,
		func(b *chess.Board) {
			b.Set(to, king)
			b.Clear(from)
		},
		func(b *chess.Board) bool {
			return IsInCheck(b, colour)
		})
	if intoCheck {
		return errors.ReasonCastlingIntoCheck
	}
	return errors.ReasonNone
}
