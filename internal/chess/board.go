package chess

import "strings"

// Board represents a chess board with all state needed for the rules engine.
// It is a plain value: assigning a Board copies every square, which is
// what snapshots and speculative moves rely on.
type Board struct {
	// The board squares in 0x88 layout. Slots with index&0x88 != 0 are
	// padding and always hold Empty.
	squares [PaddedSize]Piece

	// Who has the next move.
	ToMove Colour
}

// NewBoard creates a new empty board with White to move.
func NewBoard() *Board {
	return &Board{ToMove: White}
}

// NewInitialBoard creates a board holding the standard starting position.
func NewInitialBoard() *Board {
	b := NewBoard()
	b.SetupInitialPosition()
	return b
}

// SetupInitialPosition sets up the standard chess starting position.
func (b *Board) SetupInitialPosition() {
	b.squares = [PaddedSize]Piece{}

	backRank := []PieceType{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	for file := 0; file < BoardSize; file++ {
		b.squares[MustSquare(file, 0)] = W(backRank[file])
		b.squares[MustSquare(file, 1)] = W(Pawn)
		b.squares[MustSquare(file, 6)] = B(Pawn)
		b.squares[MustSquare(file, 7)] = B(backRank[file])
	}

	b.ToMove = White
}

// Get returns the piece at sq. Off-board squares read as Empty; callers
// are expected to check OnBoard first.
func (b *Board) Get(sq Square) Piece {
	if int(sq) >= PaddedSize {
		return Empty
	}
	return b.squares[sq]
}

// Set places a piece at sq. Setting an off-board square is a no-op.
func (b *Board) Set(sq Square, piece Piece) {
	if sq.OnBoard() {
		b.squares[sq] = piece
	}
}

// Clear empties sq.
func (b *Board) Clear(sq Square) {
	b.Set(sq, Empty)
}

// Copy creates a deep copy of the board.
func (b *Board) Copy() *Board {
	newBoard := &Board{}
	*newBoard = *b
	return newBoard
}

// Equal reports whether two boards hold identical squares and side to move.
func (b *Board) Equal(other *Board) bool {
	return *b == *other
}

// Digest returns the 64-character board string: rank 1 to rank 8, file a
// to h, '.' for empty, uppercase for White and lowercase for Black.
func (b *Board) Digest() string {
	var sb strings.Builder
	sb.Grow(BoardSize * BoardSize)
	for rank := 0; rank < BoardSize; rank++ {
		for file := 0; file < BoardSize; file++ {
			sb.WriteByte(b.squares[MustSquare(file, rank)].Letter())
		}
	}
	return sb.String()
}

// ForEachSquare calls fn for every on-board square, a1 first, h8 last.
// Iteration stops early if fn returns false.
func ForEachSquare(fn func(sq Square) bool) {
	for i := 0; i < PaddedSize; i++ {
		if !OnBoard(i) {
			continue
		}
		if !fn(Square(i)) {
			return
		}
	}
}
