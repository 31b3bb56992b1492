// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"time"

	"github.com/MKhiriev/guild-sentry/models"
)

// Live repaints the monitoring screen in place. Pollers call this
// concurrently on every iteration; the mutex keeps frames whole.
func (t *TUI) Live(rows []models.DisplayRow, startedAt time.Time) {
	t.mu.Lock()
	defer t.mu.Unlock()

	// home the cursor and clear the screen before every frame
	fmt.Fprint(t.out, "\033[H\033[J")

	header := fmt.Sprintf("MONITORING STATUS TOKEN · Waktu Berjalan: %s",
		formatElapsed(time.Since(startedAt)))
	fmt.Fprintln(t.out, frameStyle.Render(titleStyle.Render(header)))
	fmt.Fprintln(t.out, statusTable(rows, "Token", "Status", "Keterangan"))
	fmt.Fprintln(t.out, helpStyle.Render("Press Ctrl+C untuk berhenti"))
}
