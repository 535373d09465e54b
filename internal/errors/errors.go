// Package errors provides sentinel errors and error types for the rules engine.
// It defines common error conditions and structured error types that preserve
// context while allowing error inspection with errors.Is() and errors.As().
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common failure conditions.
// Use these with errors.Is() to check for specific error types.
var (
	// ErrIllegalMove indicates a move that violates chess rules.
	ErrIllegalMove = errors.New("illegal move")

	// ErrNotYourTurn indicates a move of a piece that does not belong to the side to move.
	ErrNotYourTurn = errors.New("not the side to move")

	// ErrInvalidSquare indicates malformed or off-board coordinates.
	ErrInvalidSquare = errors.New("invalid square")

	// ErrInvalidFEN indicates a malformed FEN string.
	ErrInvalidFEN = errors.New("invalid FEN string")

	// ErrNothingToUndo indicates the history is at its first position.
	ErrNothingToUndo = errors.New("nothing to undo")

	// ErrNothingToRedo indicates the history is at its redo ceiling.
	ErrNothingToRedo = errors.New("nothing to redo")

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrUnknownCommand indicates a script line that is not a move or command.
	ErrUnknownCommand = errors.New("unknown command")
)

// Reason says which rule rejected a move. It is diagnostic only: the
// public legality checks collapse every reason into a single false.
type Reason int

const (
	ReasonNone Reason = iota
	ReasonOffBoard
	ReasonEmptyOrigin
	ReasonNotYourTurn
	ReasonOwnPieceOnTarget
	ReasonBadPattern
	ReasonPathBlocked
	ReasonCastlingNoRook
	ReasonCastlingBlocked
	ReasonCastlingInCheck
	ReasonCastlingIntoCheck
	ReasonLeavesKingInCheck
)

var reasonText = []string{
	"none",
	"square off the board",
	"no piece on origin",
	"piece belongs to the other side",
	"target holds own piece",
	"piece cannot move that way",
	"path is blocked",
	"no rook to castle with",
	"castling corridor is blocked",
	"cannot castle out of check",
	"cannot castle into check",
	"move leaves king in check",
}

// String returns a short description of the reason.
func (r Reason) String() string {
	if r >= 0 && int(r) < len(reasonText) {
		return reasonText[r]
	}
	return "unknown"
}

// MoveError describes a rejected move. It implements the error interface
// and supports unwrapping via errors.Is() and errors.As().
type MoveError struct {
	Err    error  // The underlying error, usually ErrIllegalMove
	From   string // Origin square in algebraic form
	To     string // Destination square in algebraic form
	Reason Reason // Which rule rejected the move
}

// Error returns a formatted error message including all available context.
func (e *MoveError) Error() string {
	var parts []string
	if e.From != "" || e.To != "" {
		parts = append(parts, fmt.Sprintf("%s-%s", e.From, e.To))
	}
	if e.Reason != ReasonNone {
		parts = append(parts, e.Reason.String())
	}
	context := strings.Join(parts, ": ")

	if e.Err != nil {
		if context == "" {
			return e.Err.Error()
		}
		return fmt.Sprintf("%v: %s", e.Err, context)
	}
	return context
}

// Unwrap returns the underlying error, enabling errors.Is() and errors.As()
// to work through the MoveError wrapper.
func (e *MoveError) Unwrap() error {
	return e.Err
}

// ScriptError represents a failure while replaying a move script with
// file location context.
type ScriptError struct {
	Err     error  // The underlying error
	File    string // Script file name
	Line    int    // Line number (1-based)
	Command string // The offending line, trimmed
}

// Error returns a formatted error message with location and context.
func (e *ScriptError) Error() string {
	var parts []string

	if e.File != "" {
		loc := e.File
		if e.Line > 0 {
			loc += fmt.Sprintf(":%d", e.Line)
		}
		parts = append(parts, loc)
	} else if e.Line > 0 {
		parts = append(parts, fmt.Sprintf("line %d", e.Line))
	}

	if e.Command != "" {
		parts = append(parts, fmt.Sprintf("%q", e.Command))
	}

	if e.Err != nil {
		if len(parts) > 0 {
			return fmt.Sprintf("%s: %v", strings.Join(parts, ": "), e.Err)
		}
		return e.Err.Error()
	}

	if len(parts) > 0 {
		return strings.Join(parts, ": ")
	}
	return "script error"
}

// Unwrap returns the underlying error.
func (e *ScriptError) Unwrap() error {
	return e.Err
}

// Is reports whether any error in err's chain matches target.
// It re-exports the standard library function so callers need one import.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}

// Wrap adds context to an error while preserving the underlying error
// for inspection with errors.Is() and errors.As().
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}

// Wrapf adds formatted context to an error while preserving the underlying
// error for inspection with errors.Is() and errors.As().
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}
