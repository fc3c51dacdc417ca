package xfacade

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/trickstertwo/xclock"
)

// stubAdapter is a minimal Adapter for tests. It records delegated calls and
// echoes each one back through the bridge, the way a real backend's bridging
// sink would.
type stubAdapter struct {
	mu     sync.Mutex
	bridge Bridge
	min    Level
	minSet bool
	logs   []stubEntry
	at     time.Time
}

type stubEntry struct {
	Level Level
	Msg   string
}

func (a *stubAdapter) Attach(b Bridge) { a.bridge = b }

func (a *stubAdapter) SetMinLevel(l Level) {
	a.min = l
	a.minSet = true
}

func (a *stubAdapter) Log(level Level, msg string) {
	a.mu.Lock()
	a.logs = append(a.logs, stubEntry{Level: level, Msg: msg})
	a.mu.Unlock()
	if a.bridge != nil {
		a.bridge.Forward(NewRecord(level, a.at, msg))
	}
}

var frozenAt = time.Date(2025, 1, 1, 13, 5, 9, 0, time.Local)

func newTestLogger(t *testing.T, b *Builder) (*Logger, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	l, err := b.WithWriter(&buf).WithClock(xclock.NewFrozen(frozenAt)).Build()
	if err != nil {
		t.Fatalf("build logger: %v", err)
	}
	return l, &buf
}

func TestConsoleLineFormat(t *testing.T) {
	t.Parallel()

	cases := []struct {
		emit func(*Logger, string)
		name string
	}{
		{(*Logger).Info, "INFO"},
		{(*Logger).Debug, "DEBUG"},
		{(*Logger).Warning, "WARN"},
		{(*Logger).Error, "ERROR"},
	}
	for _, c := range cases {
		l, buf := newTestLogger(t, NewBuilder())
		c.emit(l, "message text")

		want := "13:05:09 [" + c.name + "] message text\n"
		if got := buf.String(); got != want {
			t.Fatalf("console line mismatch: got %q want %q", got, want)
		}
	}
}

func TestBootScenario(t *testing.T) {
	t.Parallel()

	var got []Record
	l, buf := newTestLogger(t, NewBuilder().WithLevel(LevelInfo).WithOutput(OutputConsole))
	l.RegisterCallback(func(r Record) { got = append(got, r) })

	l.Info("boot complete")

	if buf.String() != "13:05:09 [INFO] boot complete\n" {
		t.Fatalf("console mismatch: %q", buf.String())
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 observer record, got %d", len(got))
	}
	if got[0].Level != LevelInfo || got[0].Payload != "boot complete" {
		t.Fatalf("observer record mismatch: %+v", got[0])
	}
	if !got[0].At.Equal(frozenAt) || got[0].Time != "13:05:09" {
		t.Fatalf("observer time mismatch: %+v", got[0])
	}
}

func TestFileOutputStillNotifiesObservers(t *testing.T) {
	t.Parallel()

	var got []Record
	l, buf := newTestLogger(t, NewBuilder().WithLevel(LevelDebug).WithOutput(OutputFile))
	l.RegisterCallback(func(r Record) { got = append(got, r) })

	l.Error("disk full")

	if buf.Len() != 0 {
		t.Fatalf("file output must not write to console, got %q", buf.String())
	}
	if len(got) != 1 || got[0].Level != LevelError || got[0].Payload != "disk full" {
		t.Fatalf("observer mismatch: %+v", got)
	}
}

func TestGUIOutputIsNoop(t *testing.T) {
	t.Parallel()

	l, buf := newTestLogger(t, NewBuilder().WithOutput(OutputGUI))
	l.Warning("hidden")
	if buf.Len() != 0 {
		t.Fatalf("gui output must not write to console, got %q", buf.String())
	}
}

func TestObserversRunInRegistrationOrder(t *testing.T) {
	t.Parallel()

	var order []int
	l, _ := newTestLogger(t, NewBuilder())
	for i := 0; i < 5; i++ {
		l.RegisterCallback(func(r Record) {
			if r.Payload != "tick" || r.Level != LevelWarn {
				t.Errorf("observer %d got %+v", i, r)
			}
			order = append(order, i)
		})
	}

	l.Warning("tick")

	if len(order) != 5 {
		t.Fatalf("expected 5 invocations, got %d", len(order))
	}
	for i, v := range order {
		if v != i {
			t.Fatalf("order mismatch at %d: %v", i, order)
		}
	}
}

func TestObserverGetsCopy(t *testing.T) {
	t.Parallel()

	var second Record
	l, buf := newTestLogger(t, NewBuilder())
	l.RegisterCallback(func(r Record) { r.Payload = "mutated" })
	l.RegisterCallback(func(r Record) { second = r })

	l.Info("original")

	if second.Payload != "original" {
		t.Fatalf("record was mutated across observers: %q", second.Payload)
	}
	if !strings.HasSuffix(buf.String(), "] original\n") {
		t.Fatalf("sink saw mutated record: %q", buf.String())
	}
}

func TestObserverPanicIsIsolated(t *testing.T) {
	t.Parallel()

	var errs []error
	var reached bool
	l, buf := newTestLogger(t, NewBuilder().WithErrorHandler(func(err error) { errs = append(errs, err) }))
	l.RegisterCallback(func(Record) { panic("boom") })
	l.RegisterCallback(func(Record) { reached = true })

	l.Error("still delivered")

	if !reached {
		t.Fatal("observer after a panicking one was not invoked")
	}
	if buf.String() != "13:05:09 [ERROR] still delivered\n" {
		t.Fatalf("console mismatch: %q", buf.String())
	}
	if len(errs) != 1 || !strings.Contains(errs[0].Error(), "boom") {
		t.Fatalf("expected one reported panic, got %v", errs)
	}
}

func TestZeroObserversStillRender(t *testing.T) {
	t.Parallel()

	l, buf := newTestLogger(t, NewBuilder())
	l.Debug("alone")
	if buf.String() != "13:05:09 [DEBUG] alone\n" {
		t.Fatalf("console mismatch: %q", buf.String())
	}
}

func TestLevelFilterOffByDefault(t *testing.T) {
	t.Parallel()

	l, buf := newTestLogger(t, NewBuilder().WithLevel(LevelError))
	l.Debug("kept")
	if buf.String() != "13:05:09 [DEBUG] kept\n" {
		t.Fatalf("expected unfiltered output, got %q", buf.String())
	}
}

func TestLevelFilterOn(t *testing.T) {
	t.Parallel()

	var got []Record
	l, buf := newTestLogger(t, NewBuilder().WithLevel(LevelInfo).WithLevelFilter(true))
	l.RegisterCallback(func(r Record) { got = append(got, r) })

	l.Debug("dropped")
	l.Info("kept")
	l.Error("kept too")

	if buf.String() != "13:05:09 [INFO] kept\n13:05:09 [ERROR] kept too\n" {
		t.Fatalf("filter output mismatch: %q", buf.String())
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 observer records, got %d", len(got))
	}
	if l.Enabled(LevelDebug) || !l.Enabled(LevelWarn) {
		t.Fatal("Enabled disagrees with filter")
	}
}

type stringer struct{ s string }

func (s stringer) String() string { return s.s }

type panicky struct{}

func (panicky) String() string { panic("no") }

func TestGenericPathDegradesToPlaceholder(t *testing.T) {
	t.Parallel()

	var got []string
	l, _ := newTestLogger(t, NewBuilder())
	l.RegisterCallback(func(r Record) { got = append(got, r.Payload) })

	l.Log(LevelInfo, "text")
	l.Log(LevelInfo, stringer{"via stringer"})
	l.Log(LevelInfo, errors.New("via error"))
	l.Log(LevelInfo, 42)
	l.Log(LevelInfo, panicky{})
	l.Log(LevelInfo, nil)

	want := []string{"text", "via stringer", "via error", Placeholder, Placeholder, Placeholder}
	if fmt.Sprint(got) != fmt.Sprint(want) {
		t.Fatalf("payloads mismatch: got %q want %q", got, want)
	}
}

func TestGenericPathRejectsInvalidLevel(t *testing.T) {
	t.Parallel()

	var errs []error
	l, buf := newTestLogger(t, NewBuilder().WithErrorHandler(func(err error) { errs = append(errs, err) }))
	l.Log(LevelInvalid, "nope")

	if buf.Len() != 0 {
		t.Fatalf("invalid level must not render, got %q", buf.String())
	}
	if len(errs) != 1 || !errors.Is(errs[0], ErrInvalidLevel) {
		t.Fatalf("expected ErrInvalidLevel, got %v", errs)
	}
}

func TestBuildRejectsInvalidConfig(t *testing.T) {
	t.Parallel()

	if _, err := NewBuilder().WithLevel(Level(9)).Build(); !errors.Is(err, ErrInvalidLevel) {
		t.Fatalf("expected ErrInvalidLevel, got %v", err)
	}
	if _, err := NewBuilder().WithLevel(LevelInvalid).Build(); !errors.Is(err, ErrInvalidLevel) {
		t.Fatalf("expected ErrInvalidLevel for LevelInvalid, got %v", err)
	}
	if _, err := NewBuilder().WithOutput(Output(7)).Build(); !errors.Is(err, ErrInvalidOutput) {
		t.Fatalf("expected ErrInvalidOutput, got %v", err)
	}
}

func TestDelegatingSkipsNativeSink(t *testing.T) {
	t.Parallel()

	adapter := &stubAdapter{at: frozenAt}
	var got []Record
	l, buf := newTestLogger(t, NewBuilder().
		WithAdapter(adapter).
		AddObserver(ObserverFunc(func(r Record) { got = append(got, r) })))

	if !l.Delegating() {
		t.Fatal("expected delegating strategy")
	}
	l.Warning("forwarded")

	if buf.Len() != 0 {
		t.Fatalf("native sink must be skipped when delegating, got %q", buf.String())
	}
	if len(adapter.logs) != 1 || adapter.logs[0].Level != LevelWarn || adapter.logs[0].Msg != "forwarded" {
		t.Fatalf("adapter calls mismatch: %+v", adapter.logs)
	}
	if len(got) != 1 || got[0].Payload != "forwarded" || got[0].Time != "13:05:09" {
		t.Fatalf("bridged record mismatch: %+v", got)
	}
	if !adapter.minSet || adapter.min != LevelDebug {
		t.Fatalf("adapter floor without filter should be debug, got %v (set=%v)", adapter.min, adapter.minSet)
	}
}

func TestDelegatingFloorFollowsFilter(t *testing.T) {
	t.Parallel()

	adapter := &stubAdapter{}
	_, _ = newTestLogger(t, NewBuilder().WithAdapter(adapter).WithLevel(LevelWarn).WithLevelFilter(true))
	if adapter.min != LevelWarn {
		t.Fatalf("adapter floor mismatch: %v", adapter.min)
	}
}

func TestForwardPassesInvalidLevel(t *testing.T) {
	t.Parallel()

	var got []Record
	var errs []error
	l, buf := newTestLogger(t, NewBuilder().WithLevelFilter(true).
		WithErrorHandler(func(err error) { errs = append(errs, err) }))
	l.RegisterCallback(func(r Record) { got = append(got, r) })

	l.Forward(NewRecord(LevelInvalid, frozenAt, "external"))

	if len(got) != 1 || got[0].Level != LevelInvalid {
		t.Fatalf("bridged invalid record mismatch: %+v", got)
	}
	if buf.Len() != 0 {
		t.Fatalf("Forward must not render, got %q", buf.String())
	}
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("closed") }

func TestSinkErrorReported(t *testing.T) {
	t.Parallel()

	var errs []error
	l, err := NewBuilder().
		WithWriter(failingWriter{}).
		WithErrorHandler(func(err error) { errs = append(errs, err) }).
		Build()
	if err != nil {
		t.Fatalf("build logger: %v", err)
	}
	l.Info("lost")
	if len(errs) != 1 || !strings.Contains(errs[0].Error(), "closed") {
		t.Fatalf("expected write error, got %v", errs)
	}
}

func TestStartupNotice(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	if _, err := NewBuilder().WithWriter(&buf).WithStartupNotice(true).Build(); err != nil {
		t.Fatalf("build logger: %v", err)
	}
	if !strings.Contains(buf.String(), "no external backend configured") {
		t.Fatalf("missing notice: %q", buf.String())
	}

	buf.Reset()
	if _, err := NewBuilder().WithWriter(&buf).WithOutput(OutputFile).WithStartupNotice(true).Build(); err != nil {
		t.Fatalf("build logger: %v", err)
	}
	if buf.Len() != 0 {
		t.Fatalf("notice is console-only, got %q", buf.String())
	}
}

func TestDefaultClockIsXclock(t *testing.T) {
	// Mutates xclock's process default; not parallel.
	old := xclock.Default()
	defer xclock.SetDefault(old)
	xclock.SetDefault(xclock.NewFrozen(frozenAt))

	var buf bytes.Buffer
	l, err := NewBuilder().WithWriter(&buf).Build()
	if err != nil {
		t.Fatalf("build logger: %v", err)
	}
	l.Info("tick")
	if buf.String() != "13:05:09 [INFO] tick\n" {
		t.Fatalf("console mismatch: %q", buf.String())
	}
}
