// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for guild-sentry.
// It aggregates all sub-configurations and is populated by merging values
// from environment variables, command-line flags, and an optional JSON file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as the log file path and
	// the application version.
	App App `envPrefix:"APP_"`

	// Monitor holds the monitoring session settings: credential and proxy
	// input files, the target guild and the polling cadence.
	Monitor Monitor `envPrefix:"MONITOR_"`

	// Adapter holds settings of the outbound HTTP client talking to the
	// membership API.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG" json:"-"`
}

// App holds application-level configuration values.
type App struct {
	// LogFile is the path of the activity log. All monitoring events are
	// appended there; stdout is used as a fallback if the file cannot be
	// opened.
	// Env: APP_LOG_FILE
	LogFile string `env:"LOG_FILE"`

	// Version is the semantic version string of the running application.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Monitor holds the monitoring session settings.
type Monitor struct {
	// TokenFile is the path of the credential list, one "label:secret"
	// record per line.
	// Env: MONITOR_TOKEN_FILE
	TokenFile string `env:"TOKEN_FILE"`

	// ProxyFile is the optional path of the proxy list, one
	// "host:port" or "user:pass@host:port" record per line.
	// Env: MONITOR_PROXY_FILE
	ProxyFile string `env:"PROXY_FILE"`

	// GuildID is the numeric id of the guild to monitor. When empty the
	// operator is prompted for it at startup.
	// Env: MONITOR_GUILD_ID
	GuildID string `env:"GUILD_ID"`

	// PollInterval is the fixed delay between two membership checks of the
	// same credential (e.g. "10s").
	// Env: MONITOR_POLL_INTERVAL
	PollInterval time.Duration `env:"POLL_INTERVAL"`
}

// Adapter holds configuration of the outbound membership API client.
type Adapter struct {
	// BaseURL is the root of the membership API
	// (e.g. "https://discord.com/api/v9").
	// Env: ADAPTER_BASE_URL
	BaseURL string `env:"BASE_URL"`

	// RequestTimeout is the transport-level timeout of a single API call
	// (e.g. "15s").
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// RetryAfterDefault is the wait applied to a rate-limited call when the
	// server did not advertise its own Retry-After delay.
	// Env: ADAPTER_RETRY_AFTER_DEFAULT
	RetryAfterDefault time.Duration `env:"RETRY_AFTER_DEFAULT"`

	// MaxRateLimitRetries caps how many times a rate-limited call is
	// retried. Zero means no cap: the client trusts the server-advertised
	// delay indefinitely.
	// Env: ADAPTER_MAX_RATE_LIMIT_RETRIES
	MaxRateLimitRetries uint64 `env:"MAX_RATE_LIMIT_RETRIES"`
}

// Defaults applied after all sources are merged.
const (
	DefaultTokenFile         = "token.txt"
	DefaultProxyFile         = "proxy.txt"
	DefaultLogFile           = "monitor_activity.log"
	DefaultBaseURL           = "https://discord.com/api/v9"
	DefaultPollInterval      = 10 * time.Second
	DefaultRequestTimeout    = 15 * time.Second
	DefaultRetryAfterDefault = 5 * time.Second
)

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order:
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
}

// applyDefaults fills every unset field that has a documented default.
func (cfg *StructuredConfig) applyDefaults() {
	if cfg.App.LogFile == "" {
		cfg.App.LogFile = DefaultLogFile
	}
	if cfg.Monitor.TokenFile == "" {
		cfg.Monitor.TokenFile = DefaultTokenFile
	}
	if cfg.Monitor.ProxyFile == "" {
		cfg.Monitor.ProxyFile = DefaultProxyFile
	}
	if cfg.Monitor.PollInterval <= 0 {
		cfg.Monitor.PollInterval = DefaultPollInterval
	}
	if cfg.Adapter.BaseURL == "" {
		cfg.Adapter.BaseURL = DefaultBaseURL
	}
	if cfg.Adapter.RequestTimeout <= 0 {
		cfg.Adapter.RequestTimeout = DefaultRequestTimeout
	}
	if cfg.Adapter.RetryAfterDefault <= 0 {
		cfg.Adapter.RetryAfterDefault = DefaultRetryAfterDefault
	}
}
