package service

import (
	"github.com/MKhiriev/guild-sentry/models"
)

// Display texts shown in status tables. The wording follows the original
// operator tooling this monitor replaces.
const (
	StatusInGuild    = "Di Server"
	StatusNotInGuild = "Tidak di Server"
	StatusInvalid    = "Tidak Valid"
	StatusLeaving    = "Proses Keluar"
	StatusExited     = "Berhasil Keluar"
	StatusValid      = "Valid"

	FinalStatusLeft   = "Keluar"
	FinalStatusBanned = "Banned/Kicked"
)

// Annotations written into the shared state by the triggering poller.
const (
	NoteInvalid       = "Token tidak valid"
	NoteBanned        = "Banned/Kicked dari server"
	NoteLeaving       = "Proses keluar dari server"
	NoteLeaveOK       = "Berhasil keluar dari server"
	NoteLeaveFailed   = "Gagal keluar dari server"
	NoteExitConfirmed = "✓ Berhasil Keluar"
)

// LiveStatusText maps one credential's standing to its live-table text.
// Pure function: display only, no rendering technology involved.
func LiveStatusText(status models.MembershipStatus, leaving, exited bool) string {
	switch {
	case exited:
		return StatusExited
	case !status.Valid:
		return StatusInvalid
	case !status.InGuild && leaving:
		return StatusLeaving
	case !status.InGuild:
		return StatusNotInGuild
	default:
		return StatusInGuild
	}
}

// FinalStatusText maps one credential's final standing to its report text.
func FinalStatusText(status models.MembershipStatus, exited bool) string {
	switch {
	case exited:
		return FinalStatusLeft
	case !status.Valid:
		return StatusInvalid
	case !status.InGuild:
		return FinalStatusBanned
	default:
		return StatusInGuild
	}
}

// BuildSnapshot produces the full display table for one poller iteration:
// the polling credential shows its live status, every other credential shows
// its initial status plus whatever annotation the shared state carries.
// Recorded exits are reflected monotonically — a confirmed exit is never
// un-displayed, regardless of the underlying status.
func BuildSnapshot(all []models.Credential, ownLabel string, own models.MembershipStatus, view StateView) []models.DisplayRow {
	rows := make([]models.DisplayRow, 0, len(all))
	for _, cred := range all {
		status := own
		if cred.Label != ownLabel {
			status, _ = view.Initial(cred.Label)
		}

		message := view.Message(cred.Label)
		exited := view.HasExited(cred.Label)
		leaving := message == NoteLeaving

		rows = append(rows, models.DisplayRow{
			Label:  cred.Label,
			Status: LiveStatusText(status, leaving, exited),
			Note:   message,
		})
	}
	return rows
}
