// Package processing parses and replays move scripts: the line-oriented
// command language shared by the interactive console and script files.
package processing

import (
	"bufio"
	"io"
	"strings"

	"github.com/lgbarn/chesscore/internal/chess"
	"github.com/lgbarn/chesscore/internal/errors"
)

// CommandKind identifies a console or script command.
type CommandKind int

const (
	CmdNone CommandKind = iota // blank line or comment
	CmdMove
	CmdUndo
	CmdRedo
	CmdBoard
	CmdFEN
	CmdMoves
	CmdStatus
	CmdQuit
)

var commandNames = map[string]CommandKind{
	"undo":   CmdUndo,
	"u":      CmdUndo,
	"redo":   CmdRedo,
	"r":      CmdRedo,
	"board":  CmdBoard,
	"b":      CmdBoard,
	"fen":    CmdFEN,
	"moves":  CmdMoves,
	"status": CmdStatus,
	"quit":   CmdQuit,
	"q":      CmdQuit,
	"exit":   CmdQuit,
}

// Command is one parsed line.
type Command struct {
	Kind CommandKind
	From chess.Square // CmdMove origin, CmdMoves square
	To   chess.Square // CmdMove destination
	Line int
	Text string
}

// ParseCommand parses a single line. Moves are written as two squares,
// "e2 e4", "e2-e4" or "e2e4". Text after '#' is a comment.
func ParseCommand(line string) (Command, error) {
	if i := strings.IndexByte(line, '#'); i >= 0 {
		line = line[:i]
	}
	text := strings.TrimSpace(line)
	cmd := Command{Kind: CmdNone, From: chess.NoSquare, To: chess.NoSquare, Text: text}
	if text == "" {
		return cmd, nil
	}

	fields := strings.Fields(strings.ToLower(text))
	if kind, ok := commandNames[fields[0]]; ok {
		cmd.Kind = kind
		if kind != CmdMoves {
			if len(fields) != 1 {
				return cmd, errors.Wrapf(errors.ErrUnknownCommand, "%s takes no arguments", fields[0])
			}
			return cmd, nil
		}
		if len(fields) != 2 {
			return cmd, errors.Wrap(errors.ErrUnknownCommand, "usage: moves <square>")
		}
		sq, err := chess.ParseSquare(fields[1])
		if err != nil {
			return cmd, err
		}
		cmd.From = sq
		return cmd, nil
	}

	from, to, err := splitMove(fields)
	if err != nil {
		return cmd, err
	}
	if cmd.From, err = chess.ParseSquare(from); err != nil {
		return cmd, err
	}
	if cmd.To, err = chess.ParseSquare(to); err != nil {
		return cmd, err
	}
	cmd.Kind = CmdMove
	return cmd, nil
}

func splitMove(fields []string) (from, to string, err error) {
	switch len(fields) {
	case 2:
		return fields[0], fields[1], nil
	case 1:
		word := strings.ReplaceAll(fields[0], "-", "")
		if len(word) == 4 {
			return word[:2], word[2:], nil
		}
	}
	return "", "", errors.Wrapf(errors.ErrUnknownCommand, "%q", strings.Join(fields, " "))
}

// Script is a named sequence of commands.
type Script struct {
	Name     string
	Commands []Command
}

// ParseScript reads a whole script. Blank lines and comments are dropped;
// the first malformed line aborts with a *errors.ScriptError.
func ParseScript(r io.Reader, name string) (*Script, error) {
	script := &Script{Name: name}
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		cmd, err := ParseCommand(scanner.Text())
		if err != nil {
			return nil, &errors.ScriptError{Err: err, File: name, Line: lineNo, Command: cmd.Text}
		}
		if cmd.Kind == CmdNone {
			continue
		}
		cmd.Line = lineNo
		script.Commands = append(script.Commands, cmd)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrapf(err, "reading %s", name)
	}
	return script, nil
}

// MoveCount returns the number of move commands in the script.
func (s *Script) MoveCount() int {
	count := 0
	for _, cmd := range s.Commands {
		if cmd.Kind == CmdMove {
			count++
		}
	}
	return count
}
