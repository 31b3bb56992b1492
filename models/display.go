package models

import "time"

// DisplayRow is one rendered line of a status table: a pure data record so
// the monitoring core never depends on the rendering technology.
type DisplayRow struct {
	Label  string
	Status string
	Note   string
}

// RunReport aggregates the final state of a finished monitoring session.
type RunReport struct {
	StartedAt  time.Time
	FinishedAt time.Time
	Rows       []DisplayRow
}

// Elapsed returns the total running time of the session.
func (r RunReport) Elapsed() time.Duration {
	return r.FinishedAt.Sub(r.StartedAt)
}
