package slogadapter

import (
	"context"
	"log/slog"
	"time"

	"github.com/trickstertwo/xclock"

	"github.com/trickstertwo/xfacade"
)

// Adapter delegates xfacade emission to a log/slog handler chain.
// The chain fans every record out to a rendering handler (text or JSON) and
// to a bridge handler that converts it back into an xfacade.Record.
type Adapter struct {
	h      slog.Handler
	lv     *slog.LevelVar
	clock  xclock.Clock
	bridge xfacade.Bridge
}

// Log builds a slog.Record stamped by the configured clock and hands it to
// the handler chain, as slog.Logger.LogAttrs would.
func (a *Adapter) Log(level xfacade.Level, msg string) {
	ctx := context.Background()
	sl := toSlog(level)
	if !a.h.Enabled(ctx, sl) {
		return
	}
	_ = a.h.Handle(ctx, slog.NewRecord(a.now(), sl, msg, 0))
}

// Attach wires the bridge handler to b.
func (a *Adapter) Attach(b xfacade.Bridge) { a.bridge = b }

// SetMinLevel updates the LevelVar shared by both handlers.
func (a *Adapter) SetMinLevel(l xfacade.Level) { a.lv.Set(toSlog(l)) }

// Logger returns a slog.Logger over the adapter's handler chain.
func (a *Adapter) Logger() *slog.Logger { return slog.New(a.h) }

func (a *Adapter) now() time.Time {
	if a.clock != nil {
		return a.clock.Now()
	}
	return xclock.Now()
}

func toSlog(l xfacade.Level) slog.Level {
	switch l {
	case xfacade.LevelDebug:
		return slog.LevelDebug
	case xfacade.LevelInfo:
		return slog.LevelInfo
	case xfacade.LevelWarn:
		return slog.LevelWarn
	case xfacade.LevelError:
		return slog.LevelError
	default:
		return slog.LevelDebug
	}
}

// fromSlog maps the four named slog levels; offsets such as DEBUG-4 or
// ERROR+2 become LevelInvalid.
func fromSlog(l slog.Level) xfacade.Level {
	switch l {
	case slog.LevelDebug:
		return xfacade.LevelDebug
	case slog.LevelInfo:
		return xfacade.LevelInfo
	case slog.LevelWarn:
		return xfacade.LevelWarn
	case slog.LevelError:
		return xfacade.LevelError
	default:
		return xfacade.LevelInvalid
	}
}

// bridgeHandler forwards records to the adapter's Bridge.
type bridgeHandler struct {
	a *Adapter
}

func (h bridgeHandler) Enabled(_ context.Context, l slog.Level) bool {
	return l >= h.a.lv.Level()
}

func (h bridgeHandler) Handle(_ context.Context, r slog.Record) error {
	if b := h.a.bridge; b != nil {
		b.Forward(xfacade.NewRecord(fromSlog(r.Level), r.Time, r.Message))
	}
	return nil
}

func (h bridgeHandler) WithAttrs([]slog.Attr) slog.Handler { return h }
func (h bridgeHandler) WithGroup(string) slog.Handler      { return h }

// teeHandler fans records out to every handler that has the level enabled.
type teeHandler []slog.Handler

func (t teeHandler) Enabled(ctx context.Context, l slog.Level) bool {
	for _, h := range t {
		if h.Enabled(ctx, l) {
			return true
		}
	}
	return false
}

func (t teeHandler) Handle(ctx context.Context, r slog.Record) error {
	var first error
	for _, h := range t {
		if !h.Enabled(ctx, r.Level) {
			continue
		}
		if err := h.Handle(ctx, r.Clone()); err != nil && first == nil {
			first = err
		}
	}
	return first
}

func (t teeHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	out := make(teeHandler, len(t))
	for i, h := range t {
		out[i] = h.WithAttrs(attrs)
	}
	return out
}

func (t teeHandler) WithGroup(name string) slog.Handler {
	out := make(teeHandler, len(t))
	for i, h := range t {
		out[i] = h.WithGroup(name)
	}
	return out
}
