// Package diag provides the logging-backed diagnostics strategy for the
// simulation. Production boards run with sim.NopDiagnostics; diagnostic runs
// use Logger, which records every message and aborts on invariant
// violations.
package diag

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/hexswap/internal/games/hexswap/sim"
)

// Violation is the panic value raised by Logger.InvariantViolation.
type Violation struct {
	Msg string
}

func (v Violation) Error() string {
	return "invariant violation: " + v.Msg
}

// Logger implements sim.Diagnostics on top of a charmbracelet logger.
type Logger struct {
	logger *log.Logger
	fatal  bool
}

// Options configures a Logger.
type Options struct {
	Level  string // debug, info, warn, error; empty means debug
	Prefix string
	// Fatal makes InvariantViolation panic after logging. When false the
	// violation is only logged.
	Fatal bool
}

// New creates a diagnostics logger writing to w.
func New(w io.Writer, opts Options) (*Logger, error) {
	level := log.DebugLevel
	if opts.Level != "" {
		lvl, err := log.ParseLevel(strings.ToLower(opts.Level))
		if err != nil {
			return nil, fmt.Errorf("diag: %w", err)
		}
		level = lvl
	}
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          opts.Prefix,
		Level:           level,
	})
	return &Logger{logger: logger, fatal: opts.Fatal}, nil
}

// Log records a simulation event at debug level.
func (l *Logger) Log(msg string) {
	l.logger.Debug(msg)
}

// InvariantViolation logs the violation at error level and, for fatal
// loggers, aborts by panicking with a Violation.
func (l *Logger) InvariantViolation(msg string) {
	l.logger.Error("invariant violation", "detail", msg)
	if l.fatal {
		panic(Violation{Msg: msg})
	}
}

// Select returns the diagnostics strategy for a run: a fatal Logger when
// checks are enabled, NopDiagnostics otherwise.
func Select(checks bool, w io.Writer, level string) (sim.Diagnostics, error) {
	if !checks {
		return sim.NopDiagnostics{}, nil
	}
	l, err := New(w, Options{Level: level, Prefix: "hexswap", Fatal: true})
	if err != nil {
		return nil, err
	}
	return l, nil
}

var _ sim.Diagnostics = (*Logger)(nil)
