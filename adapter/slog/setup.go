package slogadapter

import (
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/trickstertwo/xclock"

	"github.com/trickstertwo/xfacade"
)

// Format selects the slog rendering handler.
type Format uint8

const (
	FormatText Format = iota + 1
	FormatJSON
)

// Config is an explicit, code-first configuration for slog + xfacade.
type Config struct {
	Writer         io.Writer            // default: os.Stdout
	Format         Format               // Text (default) or JSON
	HandlerOptions *slog.HandlerOptions // optional; Level is managed through a LevelVar
	Clock          xclock.Clock         // default: xclock.Default() at log time
	ReplaceGlobals bool                 // install the handler chain via slog.SetDefault
}

// New builds the rendering + bridge handler chain and wraps it.
func New(cfg Config) *Adapter {
	w := cfg.Writer
	if w == nil {
		w = os.Stdout
	}
	var opts slog.HandlerOptions
	if cfg.HandlerOptions != nil {
		opts = *cfg.HandlerOptions
	}

	lv := new(slog.LevelVar)
	lv.Set(slog.LevelDebug)
	opts.Level = lv
	if opts.ReplaceAttr == nil {
		opts.ReplaceAttr = replaceTime
	}

	var render slog.Handler
	if cfg.Format == FormatJSON {
		render = slog.NewJSONHandler(w, &opts)
	} else {
		render = slog.NewTextHandler(w, &opts)
	}

	a := &Adapter{lv: lv, clock: cfg.Clock}
	a.h = teeHandler{render, bridgeHandler{a: a}}

	if cfg.ReplaceGlobals {
		slog.SetDefault(a.Logger())
	}
	return a
}

// Use builds a slog-backed xfacade logger, sets it as global, and returns it.
func Use(cfg Config, level xfacade.Level, output xfacade.Output) (*xfacade.Logger, error) {
	return xfacade.UseAdapter(New(cfg), level, output)
}

// replaceTime renders the top-level time attribute as HH:MM:SS local time.
func replaceTime(groups []string, a slog.Attr) slog.Attr {
	if len(groups) > 0 || a.Key != slog.TimeKey {
		return a
	}
	if t, ok := a.Value.Any().(time.Time); ok {
		a.Value = slog.StringValue(xfacade.FormatTime(t))
	}
	return a
}
