package zerologadapter

import (
	"io"
	"os"

	"github.com/rs/zerolog"
	zlog "github.com/rs/zerolog/log"
	"github.com/trickstertwo/xclock"

	"github.com/trickstertwo/xfacade"
)

// Config is an explicit, code-first configuration for zerolog + xfacade.
// No envs, no hidden init, one call to New or Use.
type Config struct {
	Writer         io.Writer    // default: os.Stdout
	JSON           bool         // raw JSON lines instead of ConsoleWriter
	NoColor        bool         // disable ANSI colours in ConsoleWriter
	Clock          xclock.Clock // default: xclock.Default() at log time
	ReplaceGlobals bool         // install the logger as zerolog/log.Logger
}

// New builds the zerolog logger with its bridge hook and wraps it.
func New(cfg Config) *Adapter {
	w := cfg.Writer
	if w == nil {
		w = os.Stdout
	}
	if !cfg.JSON {
		w = zerolog.ConsoleWriter{
			Out:        w,
			NoColor:    cfg.NoColor,
			TimeFormat: xfacade.TimeLayout,
		}
	}

	a := &Adapter{clock: cfg.Clock, global: cfg.ReplaceGlobals}
	a.l = zerolog.New(w).Level(zerolog.DebugLevel).Hook(bridgeHook{a: a})

	if cfg.ReplaceGlobals {
		zlog.Logger = a.l
	}
	return a
}

// Use builds a zerolog-backed xfacade logger, wires it as the global xfacade
// logger, and returns it.
func Use(cfg Config, level xfacade.Level, output xfacade.Output) (*xfacade.Logger, error) {
	return xfacade.UseAdapter(New(cfg), level, output)
}
