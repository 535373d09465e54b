package chess

import (
	"fmt"

	"github.com/lgbarn/chesscore/internal/errors"
)

// Square addresses a board position in the 0x88 scheme: rank*16 + file.
// Only values with Square&0x88 == 0 denote real squares.
type Square uint8

// NoSquare is returned when a lookup finds nothing. It is off the board.
const NoSquare Square = 0x88

// Unit steps on the padded board. Sliding off the east or west edge sets
// the 0x08 bit, sliding off the north or south edge sets the 0x80 bit (or
// wraps the uint8, which does the same).
const (
	North = 16
	South = -16
	East  = 1
	West  = -1
)

// OnBoard reports whether the raw index s denotes a real square.
func OnBoard(s int) bool {
	return s >= 0 && s&0x88 == 0
}

// OnBoard reports whether sq denotes a real square.
func (sq Square) OnBoard() bool {
	return sq&0x88 == 0
}

// NewSquare builds a square from 0-based file and rank.
func NewSquare(file, rank int) (Square, bool) {
	if file < 0 || file >= BoardSize || rank < 0 || rank >= BoardSize {
		return NoSquare, false
	}
	return Square(rank<<4 | file), true
}

// MustSquare is NewSquare for literals; it panics on bad coordinates.
func MustSquare(file, rank int) Square {
	sq, ok := NewSquare(file, rank)
	if !ok {
		panic(fmt.Sprintf("chess: square (%d, %d) is off the board", file, rank))
	}
	return sq
}

// ParseSquare parses algebraic coordinates such as "e4" (case-insensitive file).
func ParseSquare(s string) (Square, error) {
	if len(s) != 2 {
		return NoSquare, errors.Wrapf(errors.ErrInvalidSquare, "%q", s)
	}
	file := s[0]
	if file >= 'A' && file <= 'H' {
		file += 'a' - 'A'
	}
	sq, ok := NewSquare(int(file)-'a', int(s[1])-'1')
	if !ok {
		return NoSquare, errors.Wrapf(errors.ErrInvalidSquare, "%q", s)
	}
	return sq, nil
}

// Sq parses algebraic coordinates and panics on failure. Intended for
// constants and tests.
func Sq(s string) Square {
	sq, err := ParseSquare(s)
	if err != nil {
		panic(err)
	}
	return sq
}

// File returns the 0-based file (0 = a).
func (sq Square) File() int {
	return int(sq & 7)
}

// Rank returns the 0-based rank (0 = rank 1).
func (sq Square) Rank() int {
	return int(sq >> 4)
}

// Offset returns the square delta steps away; the result may be off the board.
func (sq Square) Offset(delta int) Square {
	return Square(int(sq) + delta)
}

// String returns algebraic coordinates, or "-" for an off-board square.
func (sq Square) String() string {
	if !sq.OnBoard() {
		return "-"
	}
	return string([]byte{byte('a' + sq.File()), byte('1' + sq.Rank())})
}
