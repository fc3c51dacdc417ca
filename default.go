package xfacade

import (
	"sync/atomic"
)

// Facade: global access (Singleton + Facade).
var global atomic.Pointer[Logger]

// SetGlobal sets the global Logger (Singleton setter).
func SetGlobal(l *Logger) { global.Store(l) }

// L returns the global Logger. Before Initialize it is a native logger at
// LevelInfo writing to the console.
func L() *Logger {
	if l := global.Load(); l != nil {
		return l
	}
	l, _ := NewBuilder().Build()
	global.CompareAndSwap(nil, l)
	return global.Load()
}

// Initialize configures the global Logger for the native path: level is
// recorded as the configured minimum and output selects the sink. Observers
// registered on the previous global Logger are carried over. Calling it again
// replaces the configuration; last write wins.
func Initialize(level Level, output Output) (*Logger, error) {
	return Install(NewBuilder().WithLevel(level).WithOutput(output))
}

// UseAdapter configures the global Logger to delegate emission to a. The
// adapter is attached to the new Logger so records it produces reach the
// carried-over observers.
func UseAdapter(a Adapter, level Level, output Output) (*Logger, error) {
	return Install(NewBuilder().WithAdapter(a).WithLevel(level).WithOutput(output))
}

// Install builds b, carrying over the observers of the current global Logger,
// and installs the result as the global Logger. On error the global Logger is
// left untouched.
func Install(b *Builder) (*Logger, error) {
	if prev := global.Load(); prev != nil {
		for _, o := range prev.snapshotObservers() {
			b.AddObserver(o)
		}
	}
	l, err := b.Build()
	if err != nil {
		return nil, err
	}
	SetGlobal(l)
	return l, nil
}
