package xfacade

import (
	"fmt"
	"io"
	"os"

	"github.com/trickstertwo/xclock"
)

// Config for constructing a Logger (Factory data structure).
type Config struct {
	Adapter      Adapter   // optional; when set, emission is delegated to it
	Level        Level     // configured minimum level
	Output       Output    // sink used by the native path
	Writer       io.Writer // console destination; defaults to os.Stdout
	Filter       bool      // drop records below Level; off keeps every record
	Observers    []Observer
	Clock        xclock.Clock // optional; defaults to xclock.Default() at emit time
	ErrorHandler ErrorHandler // optional; defaults to stderr
	Notice       bool         // announce the native console path on Build
}

// Builder separates construction from representation (Builder pattern).
type Builder struct {
	cfg Config
}

func NewBuilder() *Builder {
	return &Builder{cfg: Config{Level: LevelInfo, Output: OutputConsole}}
}

func (b *Builder) WithAdapter(a Adapter) *Builder {
	b.cfg.Adapter = a
	return b
}

func (b *Builder) WithLevel(l Level) *Builder {
	b.cfg.Level = l
	return b
}

func (b *Builder) WithOutput(o Output) *Builder {
	b.cfg.Output = o
	return b
}

func (b *Builder) WithWriter(w io.Writer) *Builder {
	b.cfg.Writer = w
	return b
}

// WithLevelFilter enables dropping records below the configured level.
func (b *Builder) WithLevelFilter(on bool) *Builder {
	b.cfg.Filter = on
	return b
}

func (b *Builder) WithClock(c xclock.Clock) *Builder {
	b.cfg.Clock = c
	return b
}

func (b *Builder) WithErrorHandler(h ErrorHandler) *Builder {
	b.cfg.ErrorHandler = h
	return b
}

// WithStartupNotice prints a one-line notice when Build selects the native
// console path.
func (b *Builder) WithStartupNotice(on bool) *Builder {
	b.cfg.Notice = on
	return b
}

func (b *Builder) AddObserver(o Observer) *Builder {
	b.cfg.Observers = append(b.cfg.Observers, o)
	return b
}

// Build validates the configuration and constructs the Logger.
// Invalid level or output values fail with ErrInvalidLevel or ErrInvalidOutput.
func (b *Builder) Build() (*Logger, error) {
	if err := validate(b.cfg.Level, b.cfg.Output); err != nil {
		return nil, err
	}
	l := newLogger(b.cfg)
	if a := b.cfg.Adapter; a != nil {
		b.applyAdapterConfig(a)
		a.Attach(l)
		return l, nil
	}
	if b.cfg.Notice && b.cfg.Output == OutputConsole {
		w := b.cfg.Writer
		if w == nil {
			w = os.Stdout
		}
		fmt.Fprintln(w, "xfacade: no external backend configured, using native console output")
	}
	return l, nil
}

// adapterLevelSetter is an optional interface adapters can implement
// to receive the effective level floor from Builder/Config.
type adapterLevelSetter interface {
	SetMinLevel(Level)
}

// applyAdapterConfig applies Config-derived settings to the adapter if it
// supports them via optional interfaces (like adapterLevelSetter).
func (b *Builder) applyAdapterConfig(a Adapter) {
	ls, ok := a.(adapterLevelSetter)
	if !ok {
		return
	}
	if b.cfg.Filter {
		ls.SetMinLevel(b.cfg.Level)
		return
	}
	ls.SetMinLevel(LevelDebug)
}
