package engine

import (
	"testing"

	"github.com/lgbarn/chesscore/internal/chess"
)

// Positions used across the engine tests.
const (
	foolsMateFEN    = "rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3"
	backRankFEN     = "8/8/8/8/8/8/5PPP/4r1K1 w - - 0 1"
	smotheredFEN    = "6rk/5Npp/8/8/8/8/8/4K3 b - - 0 1"
	scholarsMateFEN = "r1bqkb1r/pppp1Qpp/2n2n2/4p3/2B1P3/8/PPPP1PPP/RNB1K1NR b KQkq - 0 4"
	stalemateFEN    = "7k/5Q2/6K1/8/8/8/8/8 b - - 0 1"
	cornerStaleFEN  = "k7/2Q5/1K6/8/8/8/8/8 b - - 0 1"
	castleBothFEN   = "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1"
	middlegameFEN   = "r1bqkb1r/pppp1ppp/2n2n2/4p3/2B1P3/5N2/PPPP1PPP/RNBQK2R w KQkq - 4 4"
)

// mustFEN parses fen or fails the test.
func mustFEN(t testing.TB, fen string) *chess.Board {
	t.Helper()
	board, err := NewBoardFromFEN(fen)
	if err != nil {
		t.Fatalf("NewBoardFromFEN(%q): %v", fen, err)
	}
	return board
}

// sq is shorthand for chess.Sq.
func sq(name string) chess.Square {
	return chess.Sq(name)
}
