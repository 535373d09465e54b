// Package chess provides core chess types and operations.
package chess

// Colour represents the colour of a piece or player.
// The numeric values double as the colour codes reported to front ends.
type Colour int

const (
	White Colour = iota
	Black
	NoColour // colour of an empty square, never a piece owner
)

// String returns the string representation of a colour.
func (c Colour) String() string {
	switch c {
	case White:
		return "White"
	case Black:
		return "Black"
	}
	return "NoColour"
}

// Opposite returns the opposite colour. NoColour has no opposite.
func (c Colour) Opposite() Colour {
	switch c {
	case White:
		return Black
	case Black:
		return White
	}
	return NoColour
}

// Valid reports whether c is a player colour.
func (c Colour) Valid() bool {
	return c == White || c == Black
}

// PieceType represents a chess piece kind.
type PieceType int

const (
	NoPiece PieceType = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

// String returns the string representation of a piece type.
func (p PieceType) String() string {
	names := []string{"NoPiece", "Pawn", "Knight", "Bishop", "Rook", "Queen", "King"}
	if p >= 0 && int(p) < len(names) {
		return names[p]
	}
	return "Unknown"
}

// Letter returns the single letter representation of a piece type (uppercase).
func (p PieceType) Letter() byte {
	letters := []byte{'.', 'P', 'N', 'B', 'R', 'Q', 'K'}
	if p >= 0 && int(p) < len(letters) {
		return letters[p]
	}
	return '?'
}

// Piece is either Empty or an occupied (type, colour) pair.
// The zero value is Empty; occupied pieces can only be built through
// NewPiece, so an empty square never carries a colour.
type Piece struct {
	kind   PieceType
	colour Colour
}

// Empty is the content of an unoccupied square.
var Empty = Piece{kind: NoPiece, colour: NoColour}

// NewPiece creates an occupied piece. Invalid combinations yield Empty.
func NewPiece(colour Colour, kind PieceType) Piece {
	if !colour.Valid() || kind <= NoPiece || kind > King {
		return Empty
	}
	return Piece{kind: kind, colour: colour}
}

// W creates a white piece.
func W(kind PieceType) Piece {
	return NewPiece(White, kind)
}

// B creates a black piece.
func B(kind PieceType) Piece {
	return NewPiece(Black, kind)
}

// IsEmpty reports whether the piece denotes an unoccupied square.
func (p Piece) IsEmpty() bool {
	return p.kind == NoPiece
}

// Type returns the piece type, NoPiece for Empty.
func (p Piece) Type() PieceType {
	return p.kind
}

// Colour returns the owner, NoColour for Empty.
func (p Piece) Colour() Colour {
	if p.kind == NoPiece {
		return NoColour
	}
	return p.colour
}

// Is reports whether p is an occupied piece of the given colour and type.
func (p Piece) Is(colour Colour, kind PieceType) bool {
	return !p.IsEmpty() && p.colour == colour && p.kind == kind
}

// Letter returns the digest letter: '.' for Empty, uppercase for White,
// lowercase for Black.
func (p Piece) Letter() byte {
	letter := p.kind.Letter()
	if p.Colour() == Black {
		letter += 'a' - 'A'
	}
	return letter
}

// String returns a readable description such as "White Knight".
func (p Piece) String() string {
	if p.IsEmpty() {
		return "Empty"
	}
	return p.colour.String() + " " + p.kind.String()
}

// PieceFromLetter parses a digest/FEN letter. It returns false for
// anything other than PNBRQK in either case.
func PieceFromLetter(c byte) (Piece, bool) {
	colour := White
	if c >= 'a' && c <= 'z' {
		colour = Black
		c -= 'a' - 'A'
	}
	var kind PieceType
	switch c {
	case 'P':
		kind = Pawn
	case 'N':
		kind = Knight
	case 'B':
		kind = Bishop
	case 'R':
		kind = Rook
	case 'Q':
		kind = Queen
	case 'K':
		kind = King
	default:
		return Empty, false
	}
	return NewPiece(colour, kind), true
}

// ColourOffset returns +1 for White, -1 for Black (for pawn direction).
func ColourOffset(colour Colour) int {
	if colour == White {
		return 1
	}
	return -1
}

// Board dimensions.
const (
	BoardSize = 8
	// PaddedSize is the number of slots in the 0x88 board array.
	PaddedSize = 128
)
