package console

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/briandowns/spinner"
	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

// Event types.
const (
	EventStart   = "start"
	EventSkip    = "skip"
	EventInfo    = "info"
	EventWarning = "warning"
	EventSuccess = "success"
)

// Event represents a single status line.
type Event struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

// Emitter receives status events during a run.
type Emitter interface {
	Emit(event Event)
}

// Emit sends an event to e, if set.
func Emit(e Emitter, typ, format string, args ...any) {
	if e == nil {
		return
	}
	e.Emit(Event{Type: typ, Message: fmt.Sprintf(format, args...)})
}

// TextEmitter formats events as human-readable, colour-coded lines.
type TextEmitter struct {
	W io.Writer
}

// NewTextEmitter creates a TextEmitter writing to w.
func NewTextEmitter(w io.Writer) *TextEmitter {
	return &TextEmitter{W: w}
}

// Emit writes a formatted status line to the underlying writer.
func (e *TextEmitter) Emit(ev Event) {
	switch ev.Type {
	case EventStart:
		_, _ = color.New(color.FgCyan).Fprint(e.W, "==> ")
		fmt.Fprintln(e.W, ev.Message)
	case EventSkip:
		_, _ = color.New(color.FgHiBlack).Fprintf(e.W, "  - %s\n", ev.Message)
	case EventWarning:
		_, _ = color.New(color.FgYellow).Fprintf(e.W, "⚠️  %s\n", ev.Message)
	case EventSuccess:
		_, _ = color.New(color.FgGreen).Fprintf(e.W, "✅ %s\n", ev.Message)
	default:
		fmt.Fprintf(e.W, "  %s\n", ev.Message)
	}
}

// Wait shows a spinner with msg while the caller blocks. The returned func
// stops it. On a non-interactive writer a single info line is printed instead.
func (e *TextEmitter) Wait(msg string) func() {
	f, ok := e.W.(*os.File)
	if !ok || !isTerminal(f) {
		e.Emit(Event{Type: EventInfo, Message: msg})
		return func() {}
	}

	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriter(f))
	s.Suffix = " " + msg
	s.Start()
	return s.Stop
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Waiter is implemented by emitters that can show a busy indicator.
type Waiter interface {
	Wait(msg string) func()
}

// Wait starts a busy indicator on e when it supports one.
func Wait(e Emitter, msg string) func() {
	if w, ok := e.(Waiter); ok {
		return w.Wait(msg)
	}
	Emit(e, EventInfo, "%s", msg)
	return func() {}
}

// FormatDuration renders a duration as "500ms" or "1.5s".
func FormatDuration(d time.Duration) string {
	ms := d.Milliseconds()
	if ms < 1000 {
		return fmt.Sprintf("%dms", ms)
	}
	return fmt.Sprintf("%.1fs", float64(ms)/1000)
}

// FormatNumber renders n with thousands separators.
func FormatNumber(n int) string {
	s := strconv.Itoa(n)
	if n < 0 {
		return "-" + FormatNumber(-n)
	}
	if len(s) <= 3 {
		return s
	}
	out := make([]byte, 0, len(s)+len(s)/3)
	pre := len(s) % 3
	if pre > 0 {
		out = append(out, s[:pre]...)
	}
	for i := pre; i < len(s); i += 3 {
		if len(out) > 0 {
			out = append(out, ',')
		}
		out = append(out, s[i:i+3]...)
	}
	return string(out)
}

// Recorder collects events in memory.
type Recorder struct {
	Events []Event
}

// Emit appends ev.
func (r *Recorder) Emit(ev Event) {
	r.Events = append(r.Events, ev)
}

// OfType returns the messages of all recorded events of type typ.
func (r *Recorder) OfType(typ string) []string {
	var out []string
	for _, ev := range r.Events {
		if ev.Type == typ {
			out = append(out, ev.Message)
		}
	}
	return out
}
