package xfacade

import "time"

// TimeLayout renders a record's timestamp at second resolution.
const TimeLayout = "15:04:05"

// Record is a single log event. It is immutable once built and is handed to
// observers by value.
type Record struct {
	Level   Level
	At      time.Time
	Time    string // At rendered with TimeLayout in the local zone; cached for sinks
	Payload string
}

// NewRecord builds a Record and caches its formatted time.
func NewRecord(level Level, at time.Time, payload string) Record {
	return Record{
		Level:   level,
		At:      at,
		Time:    FormatTime(at),
		Payload: payload,
	}
}

// FormatTime renders t as HH:MM:SS in the local time zone.
func FormatTime(t time.Time) string {
	return t.Local().Format(TimeLayout)
}

// Line renders the console form "HH:MM:SS [LEVEL] payload" without a newline.
func (r Record) Line() string {
	return r.Time + " [" + r.Level.String() + "] " + r.Payload
}

// AppendLine appends the console form of r to dst.
func (r Record) AppendLine(dst []byte) []byte {
	dst = append(dst, r.Time...)
	dst = append(dst, " ["...)
	dst = append(dst, r.Level.String()...)
	dst = append(dst, "] "...)
	return append(dst, r.Payload...)
}

// Observer is notified for each dispatched record (Observer pattern).
// Implementations MUST be concurrency-safe when the Logger is shared.
type Observer interface {
	OnLog(r Record)
}

// ObserverFunc adapter.
type ObserverFunc func(Record)

func (f ObserverFunc) OnLog(r Record) { f(r) }
