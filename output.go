package xfacade

import (
	"strings"

	"github.com/pkg/errors"
)

// Output selects which sink renders records on the native path.
type Output int

const (
	OutputConsole Output = iota
	OutputFile
	OutputGUI
)

func (o Output) String() string {
	switch o {
	case OutputConsole:
		return "console"
	case OutputFile:
		return "file"
	case OutputGUI:
		return "gui"
	default:
		return "invalid"
	}
}

// Valid reports whether o is a known output target.
func (o Output) Valid() bool {
	return o >= OutputConsole && o <= OutputGUI
}

// ParseOutput parses a case-insensitive output name.
func ParseOutput(s string) (Output, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "console", "stdout":
		return OutputConsole, nil
	case "file":
		return OutputFile, nil
	case "gui":
		return OutputGUI, nil
	default:
		return -1, errors.Wrapf(ErrInvalidOutput, "parse %q", s)
	}
}
