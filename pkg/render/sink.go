package render

import (
	"io"
	"os"
	"strings"

	"github.com/arthur-debert/cio/pkg/errors"
	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// Sink receives finished output. Each call carries one complete piece of
// text and must be written, and flushed, before Emit returns.
type Sink interface {
	Emit(s string, newline bool) error
}

// SinkFunc adapts a function to a Sink.
type SinkFunc func(s string, newline bool) error

// Emit implements Sink.
func (f SinkFunc) Emit(s string, newline bool) error {
	return f(s, newline)
}

type flusher interface {
	Flush() error
}

// WriterSink writes to an io.Writer. Without color, ANSI sequences are
// stripped before writing.
type WriterSink struct {
	w     io.Writer
	color bool
}

// NewWriterSink creates a sink writing to w.
func NewWriterSink(w io.Writer, color bool) *WriterSink {
	return &WriterSink{w: w, color: color}
}

// NewStdoutSink creates a sink writing to standard output.
func NewStdoutSink(color bool) *WriterSink {
	return NewWriterSink(os.Stdout, color)
}

// Emit implements Sink. Writers with a Flush method are flushed after
// every call.
func (s *WriterSink) Emit(text string, newline bool) error {
	if !s.color {
		text = ansi.Strip(text)
	}
	if newline {
		text += "\n"
	}
	if _, err := io.WriteString(s.w, text); err != nil {
		return err
	}
	if f, ok := s.w.(flusher); ok {
		return f.Flush()
	}
	return nil
}

// DetectColor reports whether f is a terminal that should receive color:
// NO_COLOR is unset, f is a tty and the terminal supports at least ANSI
// colors.
func DetectColor(f *os.File) bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	if !isatty.IsTerminal(f.Fd()) && !isatty.IsCygwinTerminal(f.Fd()) {
		return false
	}
	return termenv.NewOutput(f).ColorProfile() != termenv.Ascii
}

// Color modes accepted by ResolveColor.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// ResolveColor turns a color mode into a decision for f.
func ResolveColor(mode string, f *os.File) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(mode)) {
	case ColorAuto, "":
		return DetectColor(f), nil
	case ColorAlways:
		return true, nil
	case ColorNever:
		return false, nil
	}
	return false, errors.Newf(errors.ErrInvalidInput, "unknown color mode %q", mode).
		WithDetail("accepted", []string{ColorAuto, ColorAlways, ColorNever})
}
