package service

import (
	"context"
	"time"

	"github.com/MKhiriev/guild-sentry/internal/adapter"
	"github.com/MKhiriev/guild-sentry/internal/logger"
	"github.com/MKhiriev/guild-sentry/models"
	"golang.org/x/sync/errgroup"
)

type pollerPhase int

const (
	phasePolling pollerPhase = iota
	phaseSkipped
	phaseTriggering
	phaseStopped
)

// Poller monitors one credential. It repeatedly queries the credential's
// membership status, detects the in-guild→removed transition, and — if it is
// the first to detect it — runs the coordinated mass exit for every other
// credential that started inside the guild.
type Poller struct {
	cred     models.Credential
	client   adapter.MembershipClient
	siblings map[string]adapter.MembershipClient
	all      []models.Credential

	guildID   string
	interval  time.Duration
	startedAt time.Time

	state    *MonitorState
	renderer Renderer
	log      *logger.Logger

	phase pollerPhase
}

// NewPoller binds a poller to its credential's private client. siblings maps
// every credential label to its own long-lived client; the triggering poller
// issues each leave through the leaving credential's client, never its own.
func NewPoller(cred models.Credential, client adapter.MembershipClient, siblings map[string]adapter.MembershipClient,
	all []models.Credential, guildID string, interval time.Duration, startedAt time.Time,
	state *MonitorState, renderer Renderer, log *logger.Logger) *Poller {
	return &Poller{
		cred:      cred,
		client:    client,
		siblings:  siblings,
		all:       all,
		guildID:   guildID,
		interval:  interval,
		startedAt: startedAt,
		state:     state,
		renderer:  renderer,
		log:       log.WithCredential(cred.Label),
	}
}

// Run executes the poller until the shared latch closes, the context is
// cancelled, or this poller triggers the mass exit. Always returns nil: a
// credential's failures degrade its displayed status, they never abort the
// run of the others.
func (p *Poller) Run(ctx context.Context) error {
	initial, ok := p.state.Initial(p.cred.Label)
	if !ok || !initial.InGuild {
		// Nothing to lose: credentials absent at session start are never
		// monitored for removal.
		p.phase = phaseSkipped
		p.log.Info().Msg("credential was not in the guild at start, not monitoring")
		return nil
	}

	last := initial
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for p.state.Active() {
		status := p.client.CheckMembership(ctx, p.guildID)

		if status != last {
			switch {
			case !status.Valid:
				// Invalidation alone never triggers the mass exit.
				p.log.Error().Msg("credential became invalid")
				p.state.SetMessage(p.cred.Label, NoteInvalid)
				last = status
			case !status.InGuild && last.InGuild:
				return p.trigger(ctx)
			default:
				last = status
			}
		}

		p.renderer.Live(BuildSnapshot(p.all, p.cred.Label, status, p.state), p.startedAt)

		select {
		case <-ctx.Done():
			p.phase = phaseStopped
			return nil
		case <-ticker.C:
		}
	}

	p.phase = phaseStopped
	return nil
}

// trigger runs the ban/kick reaction. The shared latch arbitrates between
// concurrent detections: only the winner fans out, the loser stops without
// contributing duplicate leave calls.
func (p *Poller) trigger(ctx context.Context) error {
	if !p.state.Trip() {
		p.phase = phaseStopped
		return nil
	}
	p.phase = phaseTriggering

	p.log.Error().Msg("credential was banned/kicked from the guild")
	p.state.SetMessage(p.cred.Label, NoteBanned)
	p.log.Info().Msg("starting mass exit of all remaining credentials")

	g, gctx := errgroup.WithContext(ctx)
	for _, other := range p.all {
		if other.Label == p.cred.Label {
			continue
		}
		initial, ok := p.state.Initial(other.Label)
		if !ok || !initial.InGuild {
			continue
		}

		other := other
		client := p.siblings[other.Label]
		p.state.SetMessage(other.Label, NoteLeaving)
		g.Go(func() error {
			if client.Leave(gctx, p.guildID) {
				p.state.MarkExited(other.Label)
				p.state.SetMessage(other.Label, NoteLeaveOK)
			} else {
				p.state.SetMessage(other.Label, NoteLeaveFailed)
			}
			return nil
		})
	}
	_ = g.Wait()

	p.phase = phaseStopped
	return nil
}
