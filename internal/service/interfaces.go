// Package service contains the monitoring core of guild-sentry: the shared
// session state, the per-credential poller state machine, the pure snapshot
// builder, and the session orchestrator that drives the run through its
// phases.
package service

import (
	"time"

	"github.com/MKhiriev/guild-sentry/models"
)

// Renderer receives display snapshots from the monitoring core. The core
// produces pure []models.DisplayRow records, so implementations are free to
// use any rendering technology.
type Renderer interface {
	// Live redraws the full monitoring view. Called by pollers on every
	// iteration; must tolerate concurrent calls.
	Live(rows []models.DisplayRow, startedAt time.Time)
}

// StateView is the read-only view of the shared monitoring state that the
// snapshot builder consumes. Keeping it an interface keeps BuildSnapshot a
// pure function testable without a live session.
type StateView interface {
	// Initial returns the status captured for label before polling began.
	Initial(label string) (models.MembershipStatus, bool)
	// Message returns the last human-readable annotation for label.
	Message(label string) string
	// HasExited reports whether label's leave was confirmed during fan-out.
	HasExited(label string) bool
}
