package zapadapter

import (
	"io"
	"os"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/trickstertwo/xclock"
	"github.com/trickstertwo/xfacade"
)

// Config is an explicit, code-first configuration for zap + xfacade.
// No envs, no hidden init, one call to New or Use.
type Config struct {
	Writer         io.Writer             // default: os.Stdout
	JSON           bool                  // JSON encoder instead of the console encoder
	EncoderConfig  zapcore.EncoderConfig // if zero, a console-friendly default is used
	Clock          xclock.Clock          // default: xclock.Default() at log time
	ReplaceGlobals bool                  // install the zap logger as zap.L()
}

// New builds the zap logger with its console and bridge cores and wraps it.
func New(cfg Config) *Adapter {
	w := cfg.Writer
	if w == nil {
		w = os.Stdout
	}

	encCfg := cfg.EncoderConfig
	if encCfg.MessageKey == "" && encCfg.LevelKey == "" && encCfg.TimeKey == "" {
		encCfg = zapcore.EncoderConfig{
			TimeKey:        "ts",
			LevelKey:       "level",
			MessageKey:     "message",
			LineEnding:     zapcore.DefaultLineEnding,
			EncodeLevel:    zapcore.CapitalLevelEncoder,
			EncodeTime:     localTimeEncoder,
			EncodeDuration: zapcore.StringDurationEncoder,
		}
	}

	var enc zapcore.Encoder
	if cfg.JSON {
		enc = zapcore.NewJSONEncoder(encCfg)
	} else {
		enc = zapcore.NewConsoleEncoder(encCfg)
	}

	a := &Adapter{al: zap.NewAtomicLevelAt(zapcore.DebugLevel)}
	core := zapcore.NewTee(
		zapcore.NewCore(enc, zapcore.AddSync(w), a.al),
		&bridgeCore{LevelEnabler: a.al, a: a},
	)

	// Fatal and panic levels are never produced by xfacade; keep stacktraces off.
	opts := []zap.Option{
		zap.AddStacktrace(zapcore.FatalLevel + 1),
		zap.WithClock(clock{c: cfg.Clock}),
	}
	a.l = zap.New(core, opts...)

	if cfg.ReplaceGlobals {
		zap.ReplaceGlobals(a.l)
	}
	return a
}

// Use builds a zap-backed xfacade logger, wires it as the global xfacade
// logger, and returns it.
func Use(cfg Config, level xfacade.Level, output xfacade.Output) (*xfacade.Logger, error) {
	return xfacade.UseAdapter(New(cfg), level, output)
}

// localTimeEncoder renders entry times the way xfacade's console sink does.
func localTimeEncoder(t time.Time, enc zapcore.PrimitiveArrayEncoder) {
	enc.AppendString(xfacade.FormatTime(t))
}

// clock feeds xclock time into zap so entries share xfacade's time source.
type clock struct {
	c xclock.Clock
}

func (c clock) Now() time.Time {
	if c.c != nil {
		return c.c.Now()
	}
	return xclock.Now()
}

func (c clock) NewTicker(d time.Duration) *time.Ticker { return time.NewTicker(d) }
