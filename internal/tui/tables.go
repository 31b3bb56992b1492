package tui

import (
	"fmt"
	"time"

	"github.com/MKhiriev/guild-sentry/internal/service"
	"github.com/MKhiriev/guild-sentry/models"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

// Banner prints the startup banner.
func (t *TUI) Banner(version string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	title := "GUILD SENTRY · TOKEN MONITOR"
	if version != "" {
		title += "  v" + version
	}
	fmt.Fprintln(t.out, bannerStyle.Render(title))
}

// Summary prints a titled grid table for the sequential phases (validation
// pass, initial-status pass).
func (t *TUI) Summary(title string, rows []models.DisplayRow) {
	t.mu.Lock()
	defer t.mu.Unlock()

	fmt.Fprintln(t.out, titleStyle.Render("--- "+title+" ---"))
	fmt.Fprintln(t.out, statusTable(rows, "Token", "Status"))
}

// Final prints the end-of-run report with the total running time.
func (t *TUI) Final(report models.RunReport) {
	t.mu.Lock()
	defer t.mu.Unlock()

	header := fmt.Sprintf("STATUS AKHIR TOKEN · Total Waktu: %s · %s",
		formatElapsed(report.Elapsed()),
		report.FinishedAt.Format("2006-01-02 15:04:05"))

	fmt.Fprintln(t.out)
	fmt.Fprintln(t.out, frameStyle.Render(titleStyle.Render(header)))
	fmt.Fprintln(t.out, statusTable(report.Rows, "Token", "Status Akhir", "Hasil"))
}

// statusTable renders display rows as a bordered grid. Cell text is styled
// up front, so the table itself stays layout-only.
func statusTable(rows []models.DisplayRow, headers ...string) string {
	grid := table.New().
		Border(lipgloss.NormalBorder()).
		StyleFunc(func(_, _ int) lipgloss.Style { return cellStyle })

	styledHeaders := make([]string, 0, len(headers))
	for _, h := range headers {
		styledHeaders = append(styledHeaders, warnStyle.Render(h))
	}
	grid.Headers(styledHeaders...)

	withNotes := len(headers) > 2
	for _, row := range rows {
		cells := []string{labelStyle.Render(row.Label), statusStyle(row.Status).Render(row.Status)}
		if withNotes {
			note := ""
			if row.Note != "" {
				note = warnStyle.Render(row.Note)
			}
			cells = append(cells, note)
		}
		grid.Row(cells...)
	}

	return grid.Render()
}

// statusStyle picks the color for a status text produced by the core.
func statusStyle(status string) lipgloss.Style {
	switch status {
	case service.StatusInGuild, service.StatusValid, service.StatusExited, service.FinalStatusLeft:
		return okStyle
	case service.StatusLeaving:
		return warnStyle
	default:
		return errStyle
	}
}

// formatElapsed renders a duration as HH:MM:SS.
func formatElapsed(elapsed time.Duration) string {
	total := int(elapsed.Seconds())
	return fmt.Sprintf("%02d:%02d:%02d", total/3600, (total%3600)/60, total%60)
}
