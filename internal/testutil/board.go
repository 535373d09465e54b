package testutil

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/lgbarn/chesscore/internal/chess"
	"github.com/lgbarn/chesscore/internal/engine"
)

// PieceComparer lets cmp compare chess.Piece values, whose fields are unexported.
var PieceComparer = cmp.Comparer(func(a, b chess.Piece) bool { return a == b })

// MustFEN builds a board from a FEN string and fails the test on error.
func MustFEN(t testing.TB, fen string) *chess.Board {
	t.Helper()
	board, err := engine.NewBoardFromFEN(fen)
	if err != nil {
		t.Fatalf("NewBoardFromFEN(%q) error: %v", fen, err)
	}
	return board
}

// boardView is the readable form of a board used in diffs.
type boardView struct {
	Ranks  [chess.BoardSize]string // rank 8 first
	ToMove chess.Colour
}

func viewOf(b *chess.Board) boardView {
	digest := b.Digest()
	var v boardView
	for i := range v.Ranks {
		rank := chess.BoardSize - 1 - i
		v.Ranks[i] = digest[rank*chess.BoardSize : (rank+1)*chess.BoardSize]
	}
	v.ToMove = b.ToMove
	return v
}

// AssertBoardEqual fails with a rank-by-rank diff if the boards differ in
// any square, padding slots included, or in side to move.
func AssertBoardEqual(t *testing.T, got, want *chess.Board, msgAndArgs ...interface{}) {
	t.Helper()
	if got.Equal(want) {
		return
	}
	msg := formatMessage(msgAndArgs...)
	if msg == "" {
		msg = "boards differ"
	}
	if diff := cmp.Diff(viewOf(want), viewOf(got)); diff != "" {
		t.Errorf("%s (-want +got):\n%s", msg, diff)
		return
	}
	t.Errorf("%s: padding squares differ", msg)
}
