package zerologadapter

import (
	"time"

	"github.com/rs/zerolog"
	zlog "github.com/rs/zerolog/log"
	"github.com/trickstertwo/xclock"

	"github.com/trickstertwo/xfacade"
)

// Adapter delegates xfacade emission to rs/zerolog.
//
// The zerolog logger writes through its own writer (ConsoleWriter by
// default) and carries a bridge Hook. The hook stamps each event with a
// single timestamp from the configured clock and forwards the same time,
// level and message to the attached Bridge.
type Adapter struct {
	l      zerolog.Logger
	clock  xclock.Clock
	bridge xfacade.Bridge
	global bool // mirror level changes into zerolog/log.Logger
}

// Log forwards to zerolog's level function.
func (a *Adapter) Log(level xfacade.Level, msg string) {
	switch level {
	case xfacade.LevelDebug:
		a.l.Debug().Msg(msg)
	case xfacade.LevelInfo:
		a.l.Info().Msg(msg)
	case xfacade.LevelWarn:
		a.l.Warn().Msg(msg)
	case xfacade.LevelError:
		a.l.Error().Msg(msg)
	}
}

// Attach wires the bridge hook to b.
func (a *Adapter) Attach(b xfacade.Bridge) { a.bridge = b }

// SetMinLevel allows xfacade.Builder to propagate the level floor into zerolog.
func (a *Adapter) SetMinLevel(l xfacade.Level) {
	a.l = a.l.Level(toZerologLevel(l))
	if a.global {
		zlog.Logger = a.l
	}
}

// Logger exposes the underlying zerolog logger, bridge hook included.
func (a *Adapter) Logger() zerolog.Logger { return a.l }

func toZerologLevel(l xfacade.Level) zerolog.Level {
	switch l {
	case xfacade.LevelDebug:
		return zerolog.DebugLevel
	case xfacade.LevelInfo:
		return zerolog.InfoLevel
	case xfacade.LevelWarn:
		return zerolog.WarnLevel
	case xfacade.LevelError:
		return zerolog.ErrorLevel
	default:
		return zerolog.DebugLevel
	}
}

// fromZerologLevel maps zerolog levels onto xfacade levels; trace, fatal,
// panic and no-level events become LevelInvalid.
func fromZerologLevel(l zerolog.Level) xfacade.Level {
	switch l {
	case zerolog.DebugLevel:
		return xfacade.LevelDebug
	case zerolog.InfoLevel:
		return xfacade.LevelInfo
	case zerolog.WarnLevel:
		return xfacade.LevelWarn
	case zerolog.ErrorLevel:
		return xfacade.LevelError
	default:
		return xfacade.LevelInvalid
	}
}

// bridgeHook runs once per enabled event, before zerolog writes it.
type bridgeHook struct {
	a *Adapter
}

func (h bridgeHook) Run(e *zerolog.Event, level zerolog.Level, msg string) {
	at := h.a.now()
	e.Time(zerolog.TimestampFieldName, at)
	if b := h.a.bridge; b != nil {
		b.Forward(xfacade.NewRecord(fromZerologLevel(level), at, msg))
	}
}

func (a *Adapter) now() time.Time {
	if a.clock != nil {
		return a.clock.Now()
	}
	return xclock.Now()
}
