package service

import (
	"context"
	"time"

	"github.com/MKhiriev/guild-sentry/internal/adapter"
	"github.com/MKhiriev/guild-sentry/internal/logger"
	"github.com/MKhiriev/guild-sentry/models"
	"golang.org/x/sync/errgroup"
)

// Session drives a monitoring run through its phases: the sequential
// validation and initial-status passes, the concurrent polling phase, and
// the final report. It owns no transport details — clients come from the
// injected factory.
type Session struct {
	factory  adapter.ClientFactory
	renderer Renderer
	interval time.Duration
	log      *logger.Logger
}

// NewSession wires a session orchestrator.
func NewSession(factory adapter.ClientFactory, renderer Renderer, pollInterval time.Duration, log *logger.Logger) *Session {
	return &Session{
		factory:  factory,
		renderer: renderer,
		interval: pollInterval,
		log:      log,
	}
}

// ValidateCredentials sequentially checks every credential's validity, each
// through its own short-lived connection with the round-robin proxy it will
// keep using later. All credentials — valid and invalid — proceed to the
// next phases; invalid ones simply surface as such.
func (s *Session) ValidateCredentials(ctx context.Context, creds []models.Credential, proxies []models.ProxyEndpoint) []models.DisplayRow {
	rows := make([]models.DisplayRow, 0, len(creds))
	for i, cred := range creds {
		proxy := proxyFor(proxies, i)
		if proxy != nil {
			s.log.WithCredential(cred.Label).Info().Str("proxy", proxy.Host+":"+proxy.Port).Msg("using proxy")
		}

		client := s.factory(cred, proxy)
		valid := client.CheckValidity(ctx)
		client.Close()

		status := StatusValid
		if !valid {
			status = StatusInvalid
		}
		rows = append(rows, models.DisplayRow{Label: cred.Label, Status: status})
	}
	return rows
}

// OpenClients opens the long-lived per-credential clients used for the whole
// polling phase, with proxies assigned round-robin in credential order.
func (s *Session) OpenClients(creds []models.Credential, proxies []models.ProxyEndpoint) map[string]adapter.MembershipClient {
	clients := make(map[string]adapter.MembershipClient, len(creds))
	for i, cred := range creds {
		clients[cred.Label] = s.factory(cred, proxyFor(proxies, i))
	}
	return clients
}

// CloseClients releases every per-credential connection. Guaranteed to run
// on all exit paths of the monitoring phase.
func (s *Session) CloseClients(clients map[string]adapter.MembershipClient) {
	for _, client := range clients {
		client.Close()
	}
}

// CaptureInitial sequentially queries every credential's membership status
// and records it as the run's read-only initial snapshot. It must complete
// before any poller starts: the snapshot is the baseline pollers compare
// against.
func (s *Session) CaptureInitial(ctx context.Context, creds []models.Credential, clients map[string]adapter.MembershipClient, guildID string, state *MonitorState) []models.DisplayRow {
	rows := make([]models.DisplayRow, 0, len(creds))
	for _, cred := range creds {
		status := clients[cred.Label].CheckMembership(ctx, guildID)
		state.SetInitial(cred.Label, status)
		rows = append(rows, models.DisplayRow{Label: cred.Label, Status: initialStatusText(status)})
	}
	return rows
}

// Monitor launches one poller per credential and blocks until all of them
// stop: naturally through the shared latch, or through ctx cancellation,
// which also closes the latch so every polling loop notices promptly.
func (s *Session) Monitor(ctx context.Context, creds []models.Credential, clients map[string]adapter.MembershipClient, guildID string, state *MonitorState, startedAt time.Time) error {
	g, gctx := errgroup.WithContext(ctx)

	go func() {
		<-gctx.Done()
		state.Deactivate()
	}()

	for _, cred := range creds {
		poller := NewPoller(cred, clients[cred.Label], clients, creds, guildID, s.interval, startedAt, state, s.renderer, s.log)
		g.Go(func() error {
			return poller.Run(gctx)
		})
	}

	return g.Wait()
}

// FinalReport re-queries every credential's standing over a fresh unproxied
// connection and combines it with the confirmed-exit set. Runs even after
// cancellation, so it takes its own context.
func (s *Session) FinalReport(ctx context.Context, creds []models.Credential, guildID string, state *MonitorState, startedAt time.Time) models.RunReport {
	rows := make([]models.DisplayRow, 0, len(creds))
	for _, cred := range creds {
		client := s.factory(cred, nil)
		status := client.CheckMembership(ctx, guildID)
		client.Close()

		exited := state.HasExited(cred.Label)
		note := ""
		if exited {
			note = NoteExitConfirmed
		}
		rows = append(rows, models.DisplayRow{
			Label:  cred.Label,
			Status: FinalStatusText(status, exited),
			Note:   note,
		})
	}

	return models.RunReport{StartedAt: startedAt, FinishedAt: time.Now(), Rows: rows}
}

func initialStatusText(status models.MembershipStatus) string {
	switch {
	case status.InGuild:
		return StatusInGuild
	case !status.Valid:
		return StatusInvalid
	default:
		return StatusNotInGuild
	}
}

func proxyFor(proxies []models.ProxyEndpoint, i int) *models.ProxyEndpoint {
	if len(proxies) == 0 {
		return nil
	}
	proxy := proxies[i%len(proxies)]
	return &proxy
}
