// Package detector inspects the standard streams and the environment.
package detector

import (
	"os"

	"golang.org/x/term"
)

// PTY flag values accepted by ResolvePTY.
const (
	PTYAuto   = "auto"
	PTYAlways = "always"
	PTYNever  = "never"
)

// Terminal implements ports.Terminal for the current process.
type Terminal struct {
	isTerminal func(fd int) bool
	getenv     func(string) string
}

// NewTerminal returns a Terminal bound to os.Stdin and os.Stdout.
func NewTerminal() *Terminal {
	return &Terminal{isTerminal: term.IsTerminal, getenv: os.Getenv}
}

// StdinIsTerminal reports whether standard input is an interactive terminal.
func (t *Terminal) StdinIsTerminal() bool {
	return t.isTerminal(int(os.Stdin.Fd()))
}

// UsePTY reports whether child processes should be attached to a pseudo-terminal.
// It is true when stdout is a terminal and no CI environment is detected.
func (t *Terminal) UsePTY() bool {
	if IsCI(t.getenv) {
		return false
	}
	return t.isTerminal(int(os.Stdout.Fd()))
}

// IsCI reports whether the CI variable marks a continuous integration run.
func IsCI(getenv func(string) string) bool {
	ci := getenv("CI")
	return ci == "true" || ci == "1"
}

// ResolvePTY applies the user's --pty flag to the detected value.
// Unknown values fall back to detection.
func ResolvePTY(detected bool, flag string) bool {
	switch flag {
	case PTYAlways:
		return true
	case PTYNever:
		return false
	default:
		return detected
	}
}
