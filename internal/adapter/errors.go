package adapter

import "errors"

var (
	// ErrUnauthorized is the transport-agnostic mapping of a 401 response:
	// the credential's secret is no longer accepted.
	ErrUnauthorized = errors.New("credential unauthorized")
	// ErrRateLimited marks a rate-limited response inside the retry loop.
	// It never escapes a MembershipClient method unless the configured
	// retry cap is exhausted.
	ErrRateLimited = errors.New("rate limited by server")
)
