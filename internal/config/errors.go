package config

import "errors"

// Configuration-tier errors. Every error in this file is fatal: it aborts
// the process before any monitoring starts.
var (
	// ErrInvalidMonitorConfigs indicates invalid monitoring settings
	// (for example, an empty token file path or non-positive poll interval).
	ErrInvalidMonitorConfigs = errors.New("invalid monitor configuration")
	// ErrInvalidAdapterConfigs indicates invalid membership API client
	// settings (for example, an unparsable base URL).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidGuildID indicates an empty or non-numeric guild id supplied
	// via configuration or the startup prompt.
	ErrInvalidGuildID = errors.New("guild id must be numeric and non-empty")
)
