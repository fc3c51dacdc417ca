package xfacade

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
)

var (
	// ErrInvalidLevel is returned for level values outside the emitting set.
	ErrInvalidLevel = errors.New("xfacade: invalid level")
	// ErrInvalidOutput is returned for unknown output targets.
	ErrInvalidOutput = errors.New("xfacade: invalid output")
)

// ErrorHandler receives failures the facade swallows on behalf of callers:
// observer panics, sink write errors and rejected generic emissions.
type ErrorHandler func(error)

// defaultErrorHandler writes errors to stderr
func defaultErrorHandler(err error) {
	fmt.Fprintf(os.Stderr, "xfacade error: %v\n", err)
}

func validate(level Level, output Output) error {
	if !level.Valid() {
		return errors.Wrapf(ErrInvalidLevel, "configure level %d", int(level))
	}
	if !output.Valid() {
		return errors.Wrapf(ErrInvalidOutput, "configure output %d", int(output))
	}
	return nil
}
