// Package config loads and merges guild-sentry configuration from
// environment variables, command-line flags, and an optional JSON file.
//
// Sources are merged through a builder (see config_builder.go); defaults are
// applied after the merge and the result is validated before use. Validation
// failures belong to the configuration error tier: they abort the process
// before any monitoring starts.
package config
