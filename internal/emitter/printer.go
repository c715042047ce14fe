package emitter

import (
	"io"
	"time"

	"logsurrogate/internal/ui"
)

// TimeLayout is the wall-clock stamp at the start of every line.
const TimeLayout = "15:04:05"

type flusher interface {
	Flush() error
}

// Printer writes log lines of the form `[HH:MM:SS] [LEVEL] message`.
// Each line goes out in a single write and is flushed right away because
// the GUI tails the stream live.
type Printer struct {
	w      io.Writer
	now    func() time.Time
	styles *ui.LevelStyles
}

// PrinterOption configures a Printer.
type PrinterOption func(*Printer)

// WithClock replaces time.Now.
func WithClock(now func() time.Time) PrinterOption {
	return func(p *Printer) { p.now = now }
}

// WithStyles enables colored timestamp and level tokens.
func WithStyles(s *ui.LevelStyles) PrinterOption {
	return func(p *Printer) { p.styles = s }
}

// NewPrinter returns a plain-text printer on w.
func NewPrinter(w io.Writer, opts ...PrinterOption) *Printer {
	p := &Printer{w: w, now: time.Now}
	for _, o := range opts {
		o(p)
	}
	return p
}

// Log writes one line. Write errors are ignored: stdout is the only sink
// and there is nobody left to report to.
func (p *Printer) Log(level, message string) {
	ts := "[" + p.now().Format(TimeLayout) + "]"
	tag := "[" + level + "]"
	if p.styles != nil {
		ts = p.styles.Timestamp(ts)
		tag = p.styles.Level(level)
	}
	_, _ = io.WriteString(p.w, ts+" "+tag+" "+message+"\n")
	if f, ok := p.w.(flusher); ok {
		_ = f.Flush()
	}
}
