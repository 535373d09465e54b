// args.go - Loading command-line arguments from a file (-A)
package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// splitArgsLine splits a line into arguments on blanks, keeping single- or
// double-quoted text together.
func splitArgsLine(line string) []string {
	var args []string
	var current strings.Builder
	var quote rune
	inArg := false

	for _, r := range line {
		switch {
		case quote != 0:
			if r == quote {
				quote = 0
			} else {
				current.WriteRune(r)
			}
		case r == '"' || r == '\'':
			quote = r
			inArg = true
		case r == ' ' || r == '\t':
			if inArg {
				args = append(args, current.String())
				current.Reset()
				inArg = false
			}
		default:
			current.WriteRune(r)
			inArg = true
		}
	}
	if inArg {
		args = append(args, current.String())
	}
	return args
}

// loadArgsFile reads arguments from path, one or more per line.
// Blank lines and lines starting with '#' are skipped.
func loadArgsFile(path string) ([]string, error) {
	file, err := os.Open(path) //nolint:gosec // G304: CLI tool opens user-specified files
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var args []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		args = append(args, splitArgsLine(line)...)
	}
	return args, scanner.Err()
}

// argsFileName returns the -A argument from the command line, if any.
func argsFileName(cmdline []string) string {
	for i, arg := range cmdline {
		switch {
		case arg == "-A" || arg == "--A":
			if i+1 < len(cmdline) {
				return cmdline[i+1]
			}
		case strings.HasPrefix(arg, "-A="):
			return strings.TrimPrefix(arg, "-A=")
		case strings.HasPrefix(arg, "--A="):
			return strings.TrimPrefix(arg, "--A=")
		}
	}
	return ""
}

// loadArgsFromFileIfSpecified returns the arguments in the -A file named
// on the command line, or nil when there is none. It must run before
// flag.Parse so that the file's flags can be parsed with the rest.
func loadArgsFromFileIfSpecified() []string {
	name := argsFileName(os.Args[1:])
	if name == "" {
		return nil
	}
	args, err := loadArgsFile(name)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading argument file %s: %v\n", name, err)
		os.Exit(1)
	}
	return args
}

// mergeArgs puts the file's arguments ahead of the command line so that
// explicit flags win.
func mergeArgs(fileArgs, cmdline []string) []string {
	merged := make([]string, 0, len(fileArgs)+len(cmdline))
	merged = append(merged, fileArgs...)
	return append(merged, cmdline...)
}
