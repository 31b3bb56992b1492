package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// Duration wraps time.Duration so JSON configs can carry human-readable
// values like "10s" or "1m30s".
type Duration time.Duration

// UnmarshalJSON implements json.Unmarshaler for both "10s"-style strings and
// plain nanosecond numbers.
func (d *Duration) UnmarshalJSON(data []byte) error {
	var asString string
	if err := json.Unmarshal(data, &asString); err == nil {
		parsed, err := time.ParseDuration(asString)
		if err != nil {
			return fmt.Errorf("error parsing duration %q: %w", asString, err)
		}
		*d = Duration(parsed)
		return nil
	}

	var asNumber int64
	if err := json.Unmarshal(data, &asNumber); err != nil {
		return fmt.Errorf("error parsing duration %s", data)
	}
	*d = Duration(asNumber)
	return nil
}

// StructuredJSONConfig mirrors [StructuredConfig] with JSON tags and
// string-friendly durations.
type StructuredJSONConfig struct {
	App struct {
		LogFile string `json:"log_file"`
		Version string `json:"version"`
	} `json:"app,omitempty"`

	Monitor struct {
		TokenFile    string   `json:"token_file"`
		ProxyFile    string   `json:"proxy_file"`
		GuildID      string   `json:"guild_id"`
		PollInterval Duration `json:"poll_interval"`
	} `json:"monitor,omitempty"`

	Adapter struct {
		BaseURL             string   `json:"base_url"`
		RequestTimeout      Duration `json:"request_timeout"`
		RetryAfterDefault   Duration `json:"retry_after_default"`
		MaxRateLimitRetries uint64   `json:"max_rate_limit_retries"`
	} `json:"adapter,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			LogFile: jsonCfg.App.LogFile,
			Version: jsonCfg.App.Version,
		},
		Monitor: Monitor{
			TokenFile:    jsonCfg.Monitor.TokenFile,
			ProxyFile:    jsonCfg.Monitor.ProxyFile,
			GuildID:      jsonCfg.Monitor.GuildID,
			PollInterval: time.Duration(jsonCfg.Monitor.PollInterval),
		},
		Adapter: Adapter{
			BaseURL:             jsonCfg.Adapter.BaseURL,
			RequestTimeout:      time.Duration(jsonCfg.Adapter.RequestTimeout),
			RetryAfterDefault:   time.Duration(jsonCfg.Adapter.RetryAfterDefault),
			MaxRateLimitRetries: jsonCfg.Adapter.MaxRateLimitRetries,
		},
	}

	return cfg, nil
}
