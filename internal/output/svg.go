package output

import (
	"fmt"
	"io"

	svg "github.com/ajstarks/svgo"

	"github.com/lgbarn/chesscore/internal/chess"
)

const (
	lightSquare = "fill:#f0d9b5"
	darkSquare  = "fill:#b58863"
)

// Unicode glyphs indexed by piece type; the outlined set is used for White.
var (
	whiteGlyphs = []string{"", "♙", "♘", "♗", "♖", "♕", "♔"}
	blackGlyphs = []string{"", "♟", "♞", "♝", "♜", "♛", "♚"}
)

// SVGWriter draws positions as SVG diagrams. Each WritePosition emits a
// complete document.
type SVGWriter struct {
	w          io.Writer
	squareSize int
	flip       bool
}

// NewSVGWriter creates an SVG writer. squareSize is the edge of one square
// in pixels; flip draws the board from Black's side.
func NewSVGWriter(w io.Writer, squareSize int, flip bool) *SVGWriter {
	if squareSize < 1 {
		squareSize = 45
	}
	return &SVGWriter{w: w, squareSize: squareSize, flip: flip}
}

// WritePosition draws board as one SVG document.
func (sw *SVGWriter) WritePosition(board *chess.Board) error {
	size := sw.squareSize
	margin := size / 2
	edge := chess.BoardSize*size + 2*margin

	canvas := svg.New(sw.w)
	canvas.Start(edge, edge)
	canvas.Rect(0, 0, edge, edge, "fill:white")

	fontStyle := fmt.Sprintf("text-anchor:middle;font-size:%dpx;font-family:serif", size*4/5)
	labelStyle := fmt.Sprintf("text-anchor:middle;font-size:%dpx;font-family:sans-serif", size/3)

	chess.ForEachSquare(func(sq chess.Square) bool {
		col, row := sw.cell(sq)
		x := margin + col*size
		y := margin + row*size

		style := darkSquare
		if (sq.File()+sq.Rank())%2 == 1 {
			style = lightSquare
		}
		canvas.Rect(x, y, size, size, style)

		if piece := board.Get(sq); !piece.IsEmpty() {
			canvas.Text(x+size/2, y+size*4/5, glyph(piece), fontStyle)
		}
		return true
	})

	for i := 0; i < chess.BoardSize; i++ {
		file, rank := i, chess.BoardSize-1-i
		if sw.flip {
			file, rank = chess.BoardSize-1-i, i
		}
		pos := margin + i*size + size/2
		canvas.Text(pos, edge-margin/4, string(rune('a'+file)), labelStyle)
		canvas.Text(margin/2, pos+size/8, string(rune('1'+rank)), labelStyle)
	}

	canvas.End()
	return nil
}

// cell maps a square to its drawing column and row, row 0 at the top.
func (sw *SVGWriter) cell(sq chess.Square) (col, row int) {
	if sw.flip {
		return chess.BoardSize - 1 - sq.File(), sq.Rank()
	}
	return sq.File(), chess.BoardSize - 1 - sq.Rank()
}

// Flush is a no-op; documents are written immediately.
func (sw *SVGWriter) Flush() error {
	return nil
}

// Close is a no-op.
func (sw *SVGWriter) Close() error {
	return nil
}

func glyph(piece chess.Piece) string {
	glyphs := whiteGlyphs
	if piece.Colour() == chess.Black {
		glyphs = blackGlyphs
	}
	return glyphs[piece.Type()]
}
