package xfacade

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/pkg/errors"
	"github.com/trickstertwo/xclock"
)

// Logger owns one facade configuration, its observer registry and the
// emission strategy chosen at Build time.
type Logger struct {
	strategy emitter
	level    Level
	output   Output
	filter   bool
	clock    xclock.Clock
	onError  ErrorHandler

	// Observers: lock-free reads via atomic.Value; synchronized updates via obsMu.
	// Stored value is []Observer and MUST be treated as immutable by readers.
	observers atomic.Value // holds []Observer
	obsMu     sync.Mutex
}

// emitter is the emission Strategy: native dispatch or delegation.
type emitter interface {
	emit(level Level, msg string)
}

// native builds the record itself, fans it out and routes it to one sink.
type native struct {
	l    *Logger
	sink Sink
}

func (n native) emit(level Level, msg string) {
	n.l.dispatch(n.sink, NewRecord(level, n.l.now(), msg))
}

// delegating forwards to an external backend; records return via Forward.
type delegating struct {
	a Adapter
}

func (d delegating) emit(level Level, msg string) {
	d.a.Log(level, msg)
}

// Factory: internal constructor.
func newLogger(cfg Config) *Logger {
	l := &Logger{
		level:   cfg.Level,
		output:  cfg.Output,
		filter:  cfg.Filter,
		clock:   cfg.Clock,
		onError: cfg.ErrorHandler,
	}
	if l.onError == nil {
		l.onError = defaultErrorHandler
	}
	if cfg.Adapter != nil {
		l.strategy = delegating{a: cfg.Adapter}
	} else {
		l.strategy = native{l: l, sink: SinkFor(cfg.Output, cfg.Writer)}
	}
	if len(cfg.Observers) > 0 {
		obs := make([]Observer, 0, len(cfg.Observers))
		for _, o := range cfg.Observers {
			if o != nil {
				obs = append(obs, o)
			}
		}
		l.observers.Store(obs)
	} else {
		l.observers.Store(([]Observer)(nil))
	}
	return l
}

// Level returns the configured minimum level.
func (l *Logger) Level() Level { return l.level }

// Output returns the configured output target.
func (l *Logger) Output() Output { return l.output }

// Delegating reports whether emission is forwarded to an external backend.
func (l *Logger) Delegating() bool {
	_, ok := l.strategy.(delegating)
	return ok
}

// Enabled reports whether records at level would be emitted. Without the
// level filter every valid level is enabled.
func (l *Logger) Enabled(level Level) bool {
	if !level.Valid() {
		return false
	}
	if !l.filter {
		return true
	}
	return level.Severity() >= l.level.Severity()
}

// Level entry points.

func (l *Logger) Info(msg string)    { l.log(LevelInfo, msg) }
func (l *Logger) Debug(msg string)   { l.log(LevelDebug, msg) }
func (l *Logger) Warning(msg string) { l.log(LevelWarn, msg) }
func (l *Logger) Error(msg string)   { l.log(LevelError, msg) }

// Log emits v at level through the generic path; see Render for how v
// becomes payload text. An invalid level is dropped and reported.
func (l *Logger) Log(level Level, v any) {
	if !level.Valid() {
		l.onError(errors.Wrapf(ErrInvalidLevel, "emit level %d", int(level)))
		return
	}
	l.log(level, Render(v))
}

// Forward implements Bridge: observers only, no sink.
func (l *Logger) Forward(r Record) {
	if r.Level.Valid() && !l.Enabled(r.Level) {
		return
	}
	l.notify(r)
}

func (l *Logger) log(level Level, msg string) {
	if !l.Enabled(level) {
		return
	}
	l.strategy.emit(level, msg)
}

func (l *Logger) dispatch(s Sink, r Record) {
	l.notify(r)
	if err := s.Write(r); err != nil {
		l.onError(err)
	}
}

func (l *Logger) now() time.Time {
	if l.clock != nil {
		return l.clock.Now()
	}
	return xclock.Now()
}
