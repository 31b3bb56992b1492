package models

// MembershipStatus is one point-in-time observation of a credential's
// standing: whether the token itself is still accepted by the API and whether
// it is still a member of the monitored guild. The zero value means
// "invalid and not in guild".
//
// MembershipStatus is a comparable value type; equality between two
// observations drives the poller's event detection.
type MembershipStatus struct {
	Valid   bool
	InGuild bool
}

// Guild is one entry of the credential's guild list, used by the membership
// fallback check.
type Guild struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
