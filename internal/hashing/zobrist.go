package hashing

import (
	"math/rand/v2"

	"github.com/lgbarn/chesscore/internal/chess"
)

// Fixed seeds keep hashes stable between runs.
const (
	zobristSeed1 = 0x9E3779B97F4A7C15
	zobristSeed2 = 0x0088
)

var (
	// pieceKeys is indexed by colour, piece type and 0..63 square index.
	pieceKeys   [2][chess.King + 1][64]uint64
	blackToMove uint64
)

func init() {
	rng := rand.New(rand.NewPCG(zobristSeed1, zobristSeed2))
	for c := range pieceKeys {
		for t := range pieceKeys[c] {
			for s := range pieceKeys[c][t] {
				pieceKeys[c][t][s] = rng.Uint64()
			}
		}
	}
	blackToMove = rng.Uint64()
}

// GenerateZobristHash returns the Zobrist hash of the piece placement and
// side to move.
func GenerateZobristHash(board *chess.Board) uint64 {
	var hash uint64
	chess.ForEachSquare(func(sq chess.Square) bool {
		if p := board.Get(sq); !p.IsEmpty() {
			hash ^= pieceKeys[p.Colour()][p.Type()][index64(sq)]
		}
		return true
	})
	if board.ToMove == chess.Black {
		hash ^= blackToMove
	}
	return hash
}

// WeakHash is a cheap order-sensitive checksum of the placement used as a
// second opinion on Zobrist collisions.
func WeakHash(board *chess.Board) uint32 {
	var hash uint32
	chess.ForEachSquare(func(sq chess.Square) bool {
		if p := board.Get(sq); !p.IsEmpty() {
			hash += uint32(p.Letter()) * uint32(index64(sq)+1)
		}
		return true
	})
	return hash
}

func index64(sq chess.Square) int {
	return sq.Rank()*chess.BoardSize + sq.File()
}
