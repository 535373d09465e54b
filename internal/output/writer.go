// Package output renders positions as text, JSON and SVG.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/lgbarn/chesscore/internal/chess"
	"github.com/lgbarn/chesscore/internal/engine"
)

// PositionWriter is the interface for writing positions to output.
// Different implementations handle different formats (text, JSON, SVG).
type PositionWriter interface {
	// WritePosition writes a single position to the output.
	WritePosition(board *chess.Board) error

	// Flush flushes any buffered data to the underlying writer.
	Flush() error

	// Close closes the writer and releases any resources.
	Close() error
}

// TextWriter prints boards the way a console front end shows them:
// rank 8 at the top, a file legend underneath.
type TextWriter struct {
	w io.Writer
}

// NewTextWriter creates a new text writer.
func NewTextWriter(w io.Writer) *TextWriter {
	return &TextWriter{w: w}
}

// WritePosition prints the board.
func (tw *TextWriter) WritePosition(board *chess.Board) error {
	_, err := io.WriteString(tw.w, FormatBoard(board))
	return err
}

// Flush is a no-op; text is written immediately.
func (tw *TextWriter) Flush() error {
	return nil
}

// Close is a no-op.
func (tw *TextWriter) Close() error {
	return nil
}

// FormatBoard returns the board as an 8x8 grid of digest letters.
func FormatBoard(board *chess.Board) string {
	var sb strings.Builder
	sb.WriteByte('\n')
	for rank := chess.BoardSize - 1; rank >= 0; rank-- {
		fmt.Fprintf(&sb, "%d  ", rank+1)
		for file := 0; file < chess.BoardSize; file++ {
			sb.WriteByte(board.Get(chess.MustSquare(file, rank)).Letter())
			sb.WriteByte(' ')
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("\n   a b c d e f g h\n")
	return sb.String()
}

// Position is the JSON form of a board and its status.
type Position struct {
	Digest      string `json:"digest"`
	FEN         string `json:"fen"`
	Turn        string `json:"turn"`
	TurnCode    int    `json:"turnCode"`
	WhiteStatus string `json:"whiteStatus"`
	BlackStatus string `json:"blackStatus"`
	LegalMoves  int    `json:"legalMoves"` // for the side to move
}

// NewPosition builds the JSON form of board.
func NewPosition(board *chess.Board) *Position {
	return &Position{
		Digest:      board.Digest(),
		FEN:         engine.BoardToFEN(board),
		Turn:        board.ToMove.String(),
		TurnCode:    int(board.ToMove),
		WhiteStatus: engine.Status(board, chess.White).String(),
		BlackStatus: engine.Status(board, chess.Black).String(),
		LegalMoves:  engine.CountLegalMoves(board, board.ToMove),
	}
}

// JSONWriter writes positions in JSON format.
// It buffers positions and writes them as a JSON array on Close or Flush.
type JSONWriter struct {
	w         io.Writer
	positions []*Position
}

// NewJSONWriter creates a new JSON writer that batches positions and
// writes them as an array on Close().
func NewJSONWriter(w io.Writer) *JSONWriter {
	return &JSONWriter{
		w:         w,
		positions: make([]*Position, 0),
	}
}

// WritePosition buffers a position for JSON output.
func (jw *JSONWriter) WritePosition(board *chess.Board) error {
	jw.positions = append(jw.positions, NewPosition(board))
	return nil
}

// Flush writes all buffered positions as a JSON array.
func (jw *JSONWriter) Flush() error {
	if len(jw.positions) == 0 {
		return nil
	}

	enc := json.NewEncoder(jw.w)
	enc.SetIndent("", "  ")
	err := enc.Encode(jw.positions)

	// Clear buffer after writing
	jw.positions = jw.positions[:0]

	return err
}

// Close flushes and closes the JSON writer.
func (jw *JSONWriter) Close() error {
	return jw.Flush()
}
