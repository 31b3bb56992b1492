package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── newConfigBuilder ──────────────────────────────────────────────────────────

// TestNewConfigBuilder_InitialState verifies that a freshly created builder
// has no error and an empty configs slice.
func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

// ── build ─────────────────────────────────────────────────────────────────────

// TestBuild_EmptyBuilder verifies that building with no sources produces a
// fully defaulted, valid configuration.
func TestBuild_EmptyBuilder(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	require.NoError(t, err)

	assert.Equal(t, DefaultTokenFile, cfg.Monitor.TokenFile)
	assert.Equal(t, DefaultProxyFile, cfg.Monitor.ProxyFile)
	assert.Equal(t, DefaultLogFile, cfg.App.LogFile)
	assert.Equal(t, DefaultBaseURL, cfg.Adapter.BaseURL)
	assert.Equal(t, DefaultPollInterval, cfg.Monitor.PollInterval)
	assert.Equal(t, DefaultRequestTimeout, cfg.Adapter.RequestTimeout)
	assert.Equal(t, DefaultRetryAfterDefault, cfg.Adapter.RetryAfterDefault)
	assert.Empty(t, cfg.Monitor.GuildID, "the guild id has no default")
}

// TestBuild_PropagatesBuilderError verifies that a pre-set b.err is wrapped
// and returned, with nil config.
func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_MergesMultipleConfigs verifies that fields from multiple configs
// are merged into a single result.
func TestBuild_MergesMultipleConfigs(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{Monitor: Monitor{GuildID: "42"}},
		&StructuredConfig{Monitor: Monitor{TokenFile: "custom.txt"}},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "42", cfg.Monitor.GuildID)
	assert.Equal(t, "custom.txt", cfg.Monitor.TokenFile)
}

// TestBuild_FirstSourceWins verifies merge priority: a field already set by
// an earlier source is not overwritten by a later one.
func TestBuild_FirstSourceWins(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{Monitor: Monitor{PollInterval: 3 * time.Second}},
		&StructuredConfig{Monitor: Monitor{PollInterval: time.Minute}},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, 3*time.Second, cfg.Monitor.PollInterval)
}

// TestBuild_InvalidGuildIDFailsValidation verifies that validation of the
// merged result rejects a non-numeric guild id.
func TestBuild_InvalidGuildIDFailsValidation(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{Monitor: Monitor{GuildID: "guild-one"}})

	_, err := b.build()
	assert.ErrorIs(t, err, ErrInvalidGuildID)
}

// ── withJSON ──────────────────────────────────────────────────────────────────

// TestWithJSON_MergesFileOnTop verifies that a JSON path discovered in an
// earlier source causes the file's values to participate in the merge.
func TestWithJSON_MergesFileOnTop(t *testing.T) {
	path := writeTempJSONConfig(t, map[string]any{
		"monitor": map[string]any{"guild_id": "987", "poll_interval": "20s"},
	})

	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: path})

	cfg, err := b.withJSON().build()
	require.NoError(t, err)
	assert.Equal(t, "987", cfg.Monitor.GuildID)
	assert.Equal(t, 20*time.Second, cfg.Monitor.PollInterval)
}

// TestWithJSON_NoPathIsNoop verifies that the JSON stage is skipped entirely
// when no source named a file.
func TestWithJSON_NoPathIsNoop(t *testing.T) {
	b := newConfigBuilder().withJSON()
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

// TestWithJSON_UnreadableFileSetsError verifies that a named but unreadable
// file surfaces as a build error.
func TestWithJSON_UnreadableFileSetsError(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: "/nonexistent/config.json"})

	_, err := b.withJSON().build()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error occured during building config")
}
