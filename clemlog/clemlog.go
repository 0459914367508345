// Package clemlog provides the default cpu.Logger implementation hosts
// can pass into machine.Config.Logger, plus a no-op sink for tests that
// don't care about diagnostic output (spec.md §7 "Logger").
//
// No structured-logging library appears anywhere in the retrieved
// reference corpus, so this wraps the standard library's log/slog rather
// than reaching for an out-of-pack dependency.
package clemlog

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/clem-emu/clem/cpu"
)

// Slog adapts a *slog.Logger to cpu.Logger.
type Slog struct {
	L *slog.Logger
}

var _ cpu.Logger = Slog{}

// New builds a Slog writing leveled text to w (os.Stderr if w is nil).
func New(w *os.File) Slog {
	if w == nil {
		w = os.Stderr
	}
	return Slog{L: slog.New(slog.NewTextHandler(w, nil))}
}

func (s Slog) Warnf(format string, args ...any) {
	s.L.Warn(fmt.Sprintf(format, args...))
}

func (s Slog) Debugf(format string, args ...any) {
	s.L.Debug(fmt.Sprintf(format, args...))
}

// Discard satisfies cpu.Logger while dropping every message, useful in
// tests that assert on emulator state rather than log output.
type Discard struct{}

var _ cpu.Logger = Discard{}

func (Discard) Warnf(string, ...any)  {}
func (Discard) Debugf(string, ...any) {}
