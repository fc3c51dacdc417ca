package xfacade

import (
	"github.com/pkg/errors"
)

// registry is the append-only observer list of a Logger.
// Reads load an immutable snapshot; appends copy under obsMu.

func (l *Logger) snapshotObservers() []Observer {
	v := l.observers.Load()
	if v == nil {
		return nil
	}
	cur := v.([]Observer)
	if len(cur) == 0 {
		return nil
	}
	out := make([]Observer, len(cur))
	copy(out, cur)
	return out
}

// AddObserver appends o to the registry. There is no removal; observers live
// as long as the Logger.
func (l *Logger) AddObserver(o Observer) {
	if o == nil {
		return
	}
	l.obsMu.Lock()
	defer l.obsMu.Unlock()
	cur := l.snapshotObservers()
	cur = append(cur, o)
	l.observers.Store(cur)
}

// RegisterCallback appends fn to the registry.
func (l *Logger) RegisterCallback(fn func(Record)) {
	if fn == nil {
		return
	}
	l.AddObserver(ObserverFunc(fn))
}

// notify delivers r to every observer in registration order. A panicking
// observer is reported to the ErrorHandler and the rest still run.
func (l *Logger) notify(r Record) {
	v := l.observers.Load()
	if v == nil {
		return
	}
	obs := v.([]Observer)
	for i, o := range obs {
		l.deliver(i, o, r)
	}
}

func (l *Logger) deliver(i int, o Observer, r Record) {
	defer func() {
		if p := recover(); p != nil {
			l.onError(errors.Errorf("observer %d panicked on %s record: %v", i, r.Level, p))
		}
	}()
	o.OnLog(r)
}
