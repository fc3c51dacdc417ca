package zapadapter

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/trickstertwo/xfacade"
)

// Adapter delegates xfacade emission to go.uber.org/zap.
//
// The zap logger tees two cores:
//   - a console core that renders each entry with zap's own encoder
//   - a bridge core that converts each entry back into an xfacade.Record
//     and hands it to the attached Bridge (observers only)
//
// SetMinLevel drives a zap.AtomicLevel shared by both cores.
type Adapter struct {
	l      *zap.Logger
	al     zap.AtomicLevel
	bridge xfacade.Bridge
}

// Log forwards to zap's level function; zap's cores do the rest.
func (a *Adapter) Log(level xfacade.Level, msg string) {
	switch level {
	case xfacade.LevelDebug:
		a.l.Debug(msg)
	case xfacade.LevelInfo:
		a.l.Info(msg)
	case xfacade.LevelWarn:
		a.l.Warn(msg)
	case xfacade.LevelError:
		a.l.Error(msg)
	}
}

// Attach wires the bridge core to b.
func (a *Adapter) Attach(b xfacade.Bridge) { a.bridge = b }

// SetMinLevel updates the backend filter.
func (a *Adapter) SetMinLevel(l xfacade.Level) {
	a.al.SetLevel(toZapLevel(l))
}

// Logger exposes the underlying zap logger.
func (a *Adapter) Logger() *zap.Logger { return a.l }

// Sync flushes buffered console output.
func (a *Adapter) Sync() error { return a.l.Sync() }

func toZapLevel(l xfacade.Level) zapcore.Level {
	switch l {
	case xfacade.LevelDebug:
		return zapcore.DebugLevel
	case xfacade.LevelInfo:
		return zapcore.InfoLevel
	case xfacade.LevelWarn:
		return zapcore.WarnLevel
	case xfacade.LevelError:
		return zapcore.ErrorLevel
	default:
		return zapcore.DebugLevel
	}
}

// fromZapLevel maps zap levels onto xfacade levels; DPanic, Panic and Fatal
// have no counterpart and become LevelInvalid.
func fromZapLevel(l zapcore.Level) xfacade.Level {
	switch l {
	case zapcore.DebugLevel:
		return xfacade.LevelDebug
	case zapcore.InfoLevel:
		return xfacade.LevelInfo
	case zapcore.WarnLevel:
		return xfacade.LevelWarn
	case zapcore.ErrorLevel:
		return xfacade.LevelError
	default:
		return xfacade.LevelInvalid
	}
}

// bridgeCore is a zapcore.Core that forwards entries to the adapter's Bridge.
type bridgeCore struct {
	zapcore.LevelEnabler
	a *Adapter
}

func (c *bridgeCore) With([]zapcore.Field) zapcore.Core { return c }

func (c *bridgeCore) Check(e zapcore.Entry, ce *zapcore.CheckedEntry) *zapcore.CheckedEntry {
	if c.Enabled(e.Level) {
		return ce.AddCore(e, c)
	}
	return ce
}

func (c *bridgeCore) Write(e zapcore.Entry, _ []zapcore.Field) error {
	if b := c.a.bridge; b != nil {
		b.Forward(xfacade.NewRecord(fromZapLevel(e.Level), e.Time, e.Message))
	}
	return nil
}

func (c *bridgeCore) Sync() error { return nil }
