package store

import "errors"

var (
	// ErrNoCredentials indicates the token file is missing, empty, or
	// contains no parsable "label:secret" records. Configuration tier:
	// fatal before monitoring starts.
	ErrNoCredentials = errors.New("no credentials loaded")
	// ErrMalformedProxy indicates a proxy record that is neither
	// "host:port" nor "user:pass@host:port".
	ErrMalformedProxy = errors.New("malformed proxy record")
)
