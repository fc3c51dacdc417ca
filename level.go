package xfacade

import (
	"strings"

	"github.com/pkg/errors"
)

// Level is the severity attached to a Record.
// Declaration order follows the wire enum, not severity; use Severity to compare.
type Level int

const (
	LevelInfo Level = iota
	LevelDebug
	LevelWarn
	LevelError
	// LevelInvalid marks an external level with no mapping. The facade's own
	// entry points never produce it.
	LevelInvalid
)

// String returns the console name of the level. It is total: every value
// outside the four emitting levels renders as "INVALID".
func (l Level) String() string {
	switch l {
	case LevelInfo:
		return "INFO"
	case LevelDebug:
		return "DEBUG"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "INVALID"
	}
}

// Valid reports whether l is one of the emitting levels.
func (l Level) Valid() bool {
	return l >= LevelInfo && l < LevelInvalid
}

// Severity orders levels for filtering: Debug < Info < Warn < Error.
// Invalid levels report -1.
func (l Level) Severity() int {
	switch l {
	case LevelDebug:
		return 0
	case LevelInfo:
		return 1
	case LevelWarn:
		return 2
	case LevelError:
		return 3
	default:
		return -1
	}
}

// ParseLevel parses a case-insensitive level name.
// "warning" is accepted as an alias of "warn".
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "info":
		return LevelInfo, nil
	case "debug":
		return LevelDebug, nil
	case "warn", "warning":
		return LevelWarn, nil
	case "error":
		return LevelError, nil
	default:
		return LevelInvalid, errors.Wrapf(ErrInvalidLevel, "parse %q", s)
	}
}
