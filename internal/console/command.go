// Package console is a line-oriented front-end for pipes and scripts.
package console

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	// ErrUnknownCommand is returned for input that names no command.
	ErrUnknownCommand = errors.New("unknown command")
	// ErrBadCoordinates is returned when a command's coordinates are missing or not integers.
	ErrBadCoordinates = errors.New("expected two integer coordinates")
)

// Verb identifies a console command.
type Verb int

const (
	VerbNone Verb = iota
	VerbReveal
	VerbFlag
	VerbNew
	VerbPrint
	VerbHelp
	VerbQuit
)

// Command is one parsed input line.
type Command struct {
	Verb Verb
	X, Y int // Only set for VerbReveal and VerbFlag
}

var verbs = map[string]Verb{
	"r":      VerbReveal,
	"reveal": VerbReveal,
	"f":      VerbFlag,
	"flag":   VerbFlag,
	"n":      VerbNew,
	"new":    VerbNew,
	"p":      VerbPrint,
	"print":  VerbPrint,
	"h":      VerbHelp,
	"help":   VerbHelp,
	"?":      VerbHelp,
	"q":      VerbQuit,
	"quit":   VerbQuit,
}

// ParseCommand parses lines such as "r 3 4", "flag 0 0" or "new". Blank lines
// and lines starting with '#' parse to VerbNone.
func ParseCommand(line string) (Command, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
		return Command{Verb: VerbNone}, nil
	}

	verb, ok := verbs[strings.ToLower(fields[0])]
	if !ok {
		return Command{}, fmt.Errorf("%w: %q", ErrUnknownCommand, fields[0])
	}

	if verb != VerbReveal && verb != VerbFlag {
		return Command{Verb: verb}, nil
	}

	if len(fields) != 3 {
		return Command{}, fmt.Errorf("%s: %w", fields[0], ErrBadCoordinates)
	}
	x, errX := strconv.Atoi(fields[1])
	y, errY := strconv.Atoi(fields[2])
	if errX != nil || errY != nil {
		return Command{}, fmt.Errorf("%s %s %s: %w", fields[0], fields[1], fields[2], ErrBadCoordinates)
	}

	return Command{Verb: verb, X: x, Y: y}, nil
}
