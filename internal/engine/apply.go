package engine

import (
	"github.com/lgbarn/chesscore/internal/chess"
	"github.com/lgbarn/chesscore/internal/errors"
)

// MoveResult describes a committed move.
type MoveResult struct {
	From     chess.Square
	To       chess.Square
	Piece    chess.Piece // The piece as it stood on From
	Captured chess.Piece // Empty if nothing was captured
	Castled  bool
	Promoted bool // Pawn reached the last rank and became a queen
}

// MakeMove plays the move if it is legal for the side to move.
// Returns true if the move was applied successfully.
func MakeMove(board *chess.Board, from, to chess.Square) bool {
	_, err := ApplyMove(board, from, to)
	return err == nil
}

// ApplyMove plays a move for the side to move. On success the piece is
// moved, a castling rook is brought across, a pawn reaching the last rank
// becomes a queen and the side to move flips. On failure the board is
// unchanged and the error is a *errors.MoveError.
func ApplyMove(board *chess.Board, from, to chess.Square) (MoveResult, error) {
	piece := board.Get(from)
	if from.OnBoard() && !piece.IsEmpty() && piece.Colour() != board.ToMove {
		return MoveResult{}, &errors.MoveError{
			Err:    errors.ErrNotYourTurn,
			From:   from.String(),
			To:     to.String(),
			Reason: errors.ReasonNotYourTurn,
		}
	}
	if err := ValidateMove(board, from, to); err != nil {
		return MoveResult{}, err
	}

	result := MoveResult{
		From:     from,
		To:       to,
		Piece:    piece,
		Captured: board.Get(to),
		Castled:  isCastlingStep(piece, from, to),
	}

	relocate(board, from, to)

	if piece.Type() == chess.Pawn && to.Rank() == promotionRank(piece.Colour()) {
		board.Set(to, chess.NewPiece(piece.Colour(), chess.Queen))
		result.Promoted = true
	}

	board.ToMove = board.ToMove.Opposite()
	return result, nil
}

// promotionRank returns the last rank for a pawn of the given colour.
func promotionRank(colour chess.Colour) int {
	if colour == chess.White {
		return chess.BoardSize - 1
	}
	return 0
}
