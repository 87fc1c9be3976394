// Package logx is a small leveled logger in the shape of the teacher's
// hand-rolled internal/logging.Logger, colorized through
// github.com/fatih/color instead of raw ANSI escapes and gated by
// golang.org/x/term.IsTerminal instead of an os.ModeCharDevice check.
package logx

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// Level is a log severity.
type Level int

// The supported levels, ordered least to most severe.
const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// Logger writes leveled, optionally colorized lines to stdout/stderr.
type Logger struct {
	mu      sync.Mutex
	out     io.Writer
	errOut  io.Writer
	color   bool
	verbose bool
}

// New builds a Logger. Color is enabled automatically when out is a
// terminal and NO_COLOR is unset; verbose gates Debug output, mirroring
// the teacher's Debug(verbose bool, ...) contract.
func New(verbose bool) *Logger {
	enable := false
	if f, ok := any(os.Stdout).(*os.File); ok {
		enable = term.IsTerminal(int(f.Fd())) && os.Getenv("NO_COLOR") == ""
	}

	return &Logger{
		out:     os.Stdout,
		errOut:  os.Stderr,
		color:   enable,
		verbose: verbose,
	}
}

// NewWithWriters builds a Logger with explicit, uncolored output
// destinations, for tests and for callers that want to capture log
// lines rather than print them to a terminal.
func NewWithWriters(verbose bool, out, errOut io.Writer) *Logger {
	return &Logger{out: out, errOut: errOut, color: false, verbose: verbose}
}

func (l *Logger) colorFor(level Level) *color.Color {
	switch level {
	case LevelDebug:
		return color.New(color.FgCyan)
	case LevelInfo:
		return color.New(color.FgBlue)
	case LevelWarn:
		return color.New(color.FgYellow)
	case LevelError:
		return color.New(color.FgRed)
	default:
		return color.New(color.Reset)
	}
}

func (l *Logger) line(level Level, format string, args ...any) {
	ts := time.Now().UTC().Format("2006-01-02T15:04:05Z")
	msg := fmt.Sprintf(format, args...)

	out := l.out
	if level == LevelError {
		out = l.errOut
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if l.color {
		prefix := l.colorFor(level).Sprintf("[%s]", level)
		fmt.Fprintf(out, "%s %s %s\n", ts, prefix, msg)
	} else {
		fmt.Fprintf(out, "%s [%s] %s\n", ts, level, msg)
	}
}

// Debug logs at DEBUG level; a no-op unless the Logger was built verbose.
func (l *Logger) Debug(format string, args ...any) {
	if !l.verbose {
		return
	}

	l.line(LevelDebug, format, args...)
}

// Info logs at INFO level.
func (l *Logger) Info(format string, args ...any) {
	l.line(LevelInfo, format, args...)
}

// Warn logs at WARN level.
func (l *Logger) Warn(format string, args ...any) {
	l.line(LevelWarn, format, args...)
}

// Error logs at ERROR level, to stderr.
func (l *Logger) Error(format string, args ...any) {
	l.line(LevelError, format, args...)
}
