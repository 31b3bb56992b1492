// Package tui renders guild-sentry's console output: the startup banner,
// the phase summary tables, the live monitoring view, and the interactive
// guild-id prompt. It consumes the pure display records produced by the
// monitoring core and owns every presentation decision.
package tui

import (
	"errors"
	"io"
	"sync"
)

// ErrUserQuit is returned when the operator abandons an interactive prompt.
var ErrUserQuit = errors.New("stopped by user")

// TUI writes all console output of a monitoring run. The mutex serializes
// live redraws, which arrive concurrently from every poller.
type TUI struct {
	mu  sync.Mutex
	out io.Writer
}

// New returns a TUI writing to out (typically os.Stdout).
func New(out io.Writer) *TUI {
	return &TUI{out: out}
}
