// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func validConfig() *StructuredConfig {
	cfg := &StructuredConfig{}
	cfg.applyDefaults()
	return cfg
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *StructuredConfig)
		wantErr error
	}{
		{
			name:   "defaults are valid",
			mutate: func(_ *StructuredConfig) {},
		},
		{
			name:    "empty token file",
			mutate:  func(cfg *StructuredConfig) { cfg.Monitor.TokenFile = "" },
			wantErr: ErrInvalidMonitorConfigs,
		},
		{
			name:    "non-positive poll interval",
			mutate:  func(cfg *StructuredConfig) { cfg.Monitor.PollInterval = -time.Second },
			wantErr: ErrInvalidMonitorConfigs,
		},
		{
			name:    "non-positive request timeout",
			mutate:  func(cfg *StructuredConfig) { cfg.Adapter.RequestTimeout = 0 },
			wantErr: ErrInvalidAdapterConfigs,
		},
		{
			name:    "non-positive retry-after default",
			mutate:  func(cfg *StructuredConfig) { cfg.Adapter.RetryAfterDefault = 0 },
			wantErr: ErrInvalidAdapterConfigs,
		},
		{
			name:    "unparseable base url",
			mutate:  func(cfg *StructuredConfig) { cfg.Adapter.BaseURL = "not a url" },
			wantErr: ErrInvalidAdapterConfigs,
		},
		{
			name:   "numeric guild id passes",
			mutate: func(cfg *StructuredConfig) { cfg.Monitor.GuildID = "123456789012345678" },
		},
		{
			name:    "non-numeric guild id fails",
			mutate:  func(cfg *StructuredConfig) { cfg.Monitor.GuildID = "12ab34" },
			wantErr: ErrInvalidGuildID,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			err := cfg.validate()
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestValidateGuildID(t *testing.T) {
	assert.NoError(t, ValidateGuildID("42"))
	assert.ErrorIs(t, ValidateGuildID(""), ErrInvalidGuildID)
	assert.ErrorIs(t, ValidateGuildID("abc"), ErrInvalidGuildID)
	assert.ErrorIs(t, ValidateGuildID("-42"), ErrInvalidGuildID)
	assert.ErrorIs(t, ValidateGuildID("4 2"), ErrInvalidGuildID)
}
