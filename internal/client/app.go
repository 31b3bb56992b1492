package client

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/MKhiriev/guild-sentry/internal/config"
	"github.com/MKhiriev/guild-sentry/internal/logger"
	"github.com/MKhiriev/guild-sentry/internal/service"
	"github.com/MKhiriev/guild-sentry/internal/store"
	"github.com/MKhiriev/guild-sentry/internal/tui"
)

// ErrNoUsableCredentials is returned when the token file yields nothing to
// monitor.
var ErrNoUsableCredentials = errors.New("no usable credentials loaded")

// App drives a full monitoring run from credential loading to the final
// report.
type App struct {
	cfg     *config.StructuredConfig
	session *service.Session
	ui      *tui.TUI
	log     *logger.Logger
}

// NewApp wires the application runtime.
func NewApp(cfg *config.StructuredConfig, session *service.Session, ui *tui.TUI, log *logger.Logger) *App {
	return &App{cfg: cfg, session: session, ui: ui, log: log}
}

// Run executes the monitoring lifecycle and blocks until the run ends:
// a detected removal drains the pollers, or the operator interrupts.
// Interruption still produces a final report.
func (a *App) Run() error {
	ctx := context.Background()

	creds, err := store.LoadCredentials(a.cfg.Monitor.TokenFile)
	if err != nil {
		return fmt.Errorf("load credentials: %w", err)
	}
	if len(creds) == 0 {
		return ErrNoUsableCredentials
	}

	proxies, err := store.LoadProxies(a.cfg.Monitor.ProxyFile)
	if err != nil {
		return fmt.Errorf("load proxies: %w", err)
	}

	a.log.Info().Int("credentials", len(creds)).Int("proxies", len(proxies)).Msg("run starting")
	a.ui.Banner(a.cfg.App.Version)

	rows := a.session.ValidateCredentials(ctx, creds, proxies)
	a.ui.Summary("VALIDASI TOKEN", rows)

	guildID, err := a.guildID(ctx)
	if err != nil {
		return err
	}
	a.log.Info().Str("guild_id", guildID).Msg("target guild selected")

	clients := a.session.OpenClients(creds, proxies)
	defer a.session.CloseClients(clients)

	state := service.NewMonitorState()
	rows = a.session.CaptureInitial(ctx, creds, clients, guildID, state)
	a.ui.Summary("STATUS AWAL TOKEN", rows)

	startedAt := time.Now()

	runCtx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err = a.session.Monitor(runCtx, creds, clients, guildID, state, startedAt); err != nil {
		return fmt.Errorf("monitor: %w", err)
	}
	stop()

	// the final pass runs on a fresh context: it must complete even when
	// the polling phase ended through cancellation
	reportCtx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	report := a.session.FinalReport(reportCtx, creds, guildID, state, startedAt)
	a.ui.Final(report)

	a.log.Info().Dur("elapsed", report.Elapsed()).Msg("run finished")
	return nil
}

// guildID resolves the guild to monitor: configuration wins, otherwise the
// operator is prompted interactively.
func (a *App) guildID(ctx context.Context) (string, error) {
	if a.cfg.Monitor.GuildID != "" {
		return a.cfg.Monitor.GuildID, nil
	}

	if fi, err := os.Stdin.Stat(); err == nil && fi.Mode()&os.ModeCharDevice == 0 {
		return "", config.ErrInvalidGuildID
	}

	return a.ui.PromptGuildID(ctx, config.ValidateGuildID)
}
