package engine

import (
	"github.com/lgbarn/chesscore/internal/chess"
	"github.com/lgbarn/chesscore/internal/errors"
)

// checkPreconditions rejects moves that no piece pattern could make legal:
// off-board squares, an empty origin, or a target holding a piece of the
// mover's own colour.
func checkPreconditions(board *chess.Board, from, to chess.Square) errors.Reason {
	if !from.OnBoard() || !to.OnBoard() {
		return errors.ReasonOffBoard
	}
	piece := board.Get(from)
	if piece.IsEmpty() {
		return errors.ReasonEmptyOrigin
	}
	if board.Get(to).Colour() == piece.Colour() {
		return errors.ReasonOwnPieceOnTarget
	}
	return errors.ReasonNone
}

// checkPattern checks the movement pattern of the piece on from. It never
// looks at king safety. A two-file king step passes here and is left to
// the castling procedure.
func checkPattern(board *chess.Board, from, to chess.Square) errors.Reason {
	piece := board.Get(from)
	target := board.Get(to)

	fileDiff := to.File() - from.File()
	rankDiff := to.Rank() - from.Rank()

	switch piece.Type() {
	case chess.Pawn:
		return checkPawnPattern(board, piece.Colour(), from, target, fileDiff, rankDiff)

	case chess.Knight:
		if (abs(fileDiff) == 1 && abs(rankDiff) == 2) || (abs(fileDiff) == 2 && abs(rankDiff) == 1) {
			return errors.ReasonNone
		}
		return errors.ReasonBadPattern

	case chess.Bishop:
		if abs(fileDiff) != abs(rankDiff) {
			return errors.ReasonBadPattern
		}
		return slide(board, from, to)

	case chess.Rook:
		if fileDiff != 0 && rankDiff != 0 {
			return errors.ReasonBadPattern
		}
		return slide(board, from, to)

	case chess.Queen:
		if abs(fileDiff) != abs(rankDiff) && fileDiff != 0 && rankDiff != 0 {
			return errors.ReasonBadPattern
		}
		return slide(board, from, to)

	case chess.King:
		if abs(fileDiff) <= 1 && abs(rankDiff) <= 1 {
			return errors.ReasonNone
		}
		if rankDiff == 0 && abs(fileDiff) == 2 {
			return errors.ReasonNone
		}
		return errors.ReasonBadPattern
	}

	return errors.ReasonBadPattern
}

// checkPawnPattern handles single and double pushes onto empty squares and
// one-square diagonal captures. There is no en passant.
func checkPawnPattern(board *chess.Board, colour chess.Colour, from chess.Square, target chess.Piece, fileDiff, rankDiff int) errors.Reason {
	forward := chess.ColourOffset(colour)
	startRank := 1
	if colour == chess.Black {
		startRank = 6
	}

	if fileDiff == 0 {
		if rankDiff == forward && target.IsEmpty() {
			return errors.ReasonNone
		}
		if rankDiff == 2*forward && from.Rank() == startRank {
			if !board.Get(from.Offset(forward*chess.North)).IsEmpty() || !target.IsEmpty() {
				return errors.ReasonPathBlocked
			}
			return errors.ReasonNone
		}
		return errors.ReasonBadPattern
	}

	if abs(fileDiff) == 1 && rankDiff == forward && !target.IsEmpty() && target.Colour() != colour {
		return errors.ReasonNone
	}
	return errors.ReasonBadPattern
}

// slide checks path clearance for bishops, rooks and queens once the
// direction has been validated.
func slide(board *chess.Board, from, to chess.Square) errors.Reason {
	if !isPathClear(board, from, to, stepToward(from, to)) {
		return errors.ReasonPathBlocked
	}
	return errors.ReasonNone
}
