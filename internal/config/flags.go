package config

import (
	"flag"
	"time"
)

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-t token file path ("label:secret" records)
//	-p proxy file path
//	-g guild id to monitor
//	-interval poll interval (e.g., "10s")
//	-base-url membership API base URL
//	-request-timeout transport timeout of a single API call (e.g., "15s")
//	-retry-after default rate-limit wait when the server sends none
//	-max-retries rate-limit retry cap, 0 = unbounded
//	-log-file activity log path
//	-c/-config json file path with configs
func ParseFlags() *StructuredConfig {
	var tokenFile string
	var proxyFile string
	var guildID string
	var pollInterval time.Duration
	var baseURL string
	var requestTimeout time.Duration
	var retryAfterDefault time.Duration
	var maxRetries uint64
	var logFile string
	var jsonConfigPath string

	flag.StringVar(&tokenFile, "t", "", "Token file path")
	flag.StringVar(&proxyFile, "p", "", "Proxy file path")
	flag.StringVar(&guildID, "g", "", "Guild id to monitor")
	flag.DurationVar(&pollInterval, "interval", 0, "Poll interval (e.g., 10s)")
	flag.StringVar(&baseURL, "base-url", "", "Membership API base URL")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 15s)")
	flag.DurationVar(&retryAfterDefault, "retry-after", 0, "Default rate-limit wait (e.g., 5s)")
	flag.Uint64Var(&maxRetries, "max-retries", 0, "Rate-limit retry cap (0 = unbounded)")
	flag.StringVar(&logFile, "log-file", "", "Activity log path")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	flag.Parse()

	return &StructuredConfig{
		App: App{
			LogFile: logFile,
		},
		Monitor: Monitor{
			TokenFile:    tokenFile,
			ProxyFile:    proxyFile,
			GuildID:      guildID,
			PollInterval: pollInterval,
		},
		Adapter: Adapter{
			BaseURL:             baseURL,
			RequestTimeout:      requestTimeout,
			RetryAfterDefault:   retryAfterDefault,
			MaxRateLimitRetries: maxRetries,
		},
		JSONFilePath: jsonConfigPath,
	}
}
