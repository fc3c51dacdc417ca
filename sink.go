package xfacade

import (
	"io"
	"os"
	"sync"

	"github.com/pkg/errors"
)

// Sink renders records on the native path (Strategy per Output).
type Sink interface {
	Write(r Record) error
}

// ConsoleSink writes one "HH:MM:SS [LEVEL] payload" line per record.
type ConsoleSink struct {
	mu sync.Mutex
	w  io.Writer
}

// NewConsoleSink returns a ConsoleSink writing to w, or os.Stdout when w is nil.
func NewConsoleSink(w io.Writer) *ConsoleSink {
	if w == nil {
		w = os.Stdout
	}
	return &ConsoleSink{w: w}
}

func (s *ConsoleSink) Write(r Record) error {
	buf := getBuf()
	defer putBuf(buf)
	buf.b = r.AppendLine(buf.b)
	buf.b = append(buf.b, '\n')

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, err := s.w.Write(buf.b); err != nil {
		return errors.Wrap(err, "console sink")
	}
	return nil
}

// nopSink stands in for the file and GUI outputs, which render nothing.
type nopSink struct{}

func (nopSink) Write(Record) error { return nil }

// SinkFor returns the sink that renders records for output o.
func SinkFor(o Output, w io.Writer) Sink {
	switch o {
	case OutputConsole:
		return NewConsoleSink(w)
	default:
		return nopSink{}
	}
}
