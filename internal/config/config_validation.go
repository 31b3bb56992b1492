// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"net/url"
)

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or a configuration-tier error
// otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.Monitor.TokenFile == "" || cfg.Monitor.PollInterval <= 0 {
		return ErrInvalidMonitorConfigs
	}

	if cfg.Adapter.RequestTimeout <= 0 || cfg.Adapter.RetryAfterDefault <= 0 {
		return ErrInvalidAdapterConfigs
	}
	if _, err := url.ParseRequestURI(cfg.Adapter.BaseURL); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidAdapterConfigs, err)
	}

	if cfg.Monitor.GuildID != "" {
		if err := ValidateGuildID(cfg.Monitor.GuildID); err != nil {
			return err
		}
	}

	return nil
}

// ValidateGuildID rejects an empty or non-numeric guild id. Used both for
// the configured value and for the operator's interactive input.
func ValidateGuildID(guildID string) error {
	if guildID == "" {
		return ErrInvalidGuildID
	}
	for _, r := range guildID {
		if r < '0' || r > '9' {
			return ErrInvalidGuildID
		}
	}
	return nil
}
