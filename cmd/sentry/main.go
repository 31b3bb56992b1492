package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/MKhiriev/guild-sentry/internal/adapter"
	"github.com/MKhiriev/guild-sentry/internal/client"
	"github.com/MKhiriev/guild-sentry/internal/config"
	"github.com/MKhiriev/guild-sentry/internal/logger"
	"github.com/MKhiriev/guild-sentry/internal/service"
	"github.com/MKhiriev/guild-sentry/internal/store"
	"github.com/MKhiriev/guild-sentry/internal/tui"
	"github.com/MKhiriev/guild-sentry/internal/utils"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	cfg, err := config.GetStructuredConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config error: %v\n", err)
		os.Exit(1)
	}
	cfg.App.Version = buildVersion

	log := logger.NewMonitorLogger("guild-sentry", cfg.App.LogFile).
		WithRunID(utils.NewUUIDGenerator().Generate())

	ui := tui.New(os.Stdout)
	factory := adapter.NewClientFactory(cfg.Adapter, log)
	session := service.NewSession(factory, ui, cfg.Monitor.PollInterval, log)

	app := client.NewApp(cfg, session, ui, log)
	if err = app.Run(); err != nil {
		switch {
		case errors.Is(err, tui.ErrUserQuit):
			log.Info().Msg("stopped by user")
		case errors.Is(err, store.ErrNoCredentials), errors.Is(err, client.ErrNoUsableCredentials),
			errors.Is(err, config.ErrInvalidGuildID):
			log.Error().Err(err).Msg("configuration error")
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		default:
			log.Error().Err(err).Msg("run failed")
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
	}
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
