package models

// Credential is a single monitored token: an opaque authorization secret
// paired with a unique display label. Credentials are immutable after load.
type Credential struct {
	// Label is the display name used in tables, logs and as the key of all
	// per-credential state. Must be unique within a run.
	Label string

	// Secret is the raw authorization value sent in the Authorization header.
	// Never logged.
	Secret string
}
