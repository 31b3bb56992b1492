// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport layer for talking to the remote
// membership-bearing API.
//
// The primary abstraction is [MembershipClient]: one instance per credential,
// bound to that credential's secret and (optionally) its proxy endpoint. The
// package ships an HTTP implementation built on resty
// ([NewMembershipClient]).
//
// Per the monitoring error policy, no method below the configuration tier
// surfaces transport failures to the caller: every operation recovers to a
// defined fallback result and logs the cause. Rate-limited responses are a
// flow-control signal, retried transparently with the server-advertised
// delay, so the retried call's result is the operation's result.
package adapter

import (
	"context"

	"github.com/MKhiriev/guild-sentry/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/membership_client_mock.go -package=mock

// MembershipClient is one credential's private connection to the membership
// API. Implementations own status-code mapping, rate-limit retries, and the
// fail-open policies described on each method.
type MembershipClient interface {
	// Label returns the display label of the credential this client is
	// bound to.
	Label() string

	// CheckValidity reports whether the credential's secret is still
	// accepted by the API. Unauthorized, unexpected statuses, exhausted
	// rate-limit retries and transport failures all report false.
	CheckValidity(ctx context.Context) bool

	// CheckMembership reports the credential's standing against guildID.
	// An invalid credential short-circuits to the zero status. A missing
	// membership record reports {Valid:true, InGuild:false}. Unexpected
	// statuses fall back to a guild-list containment check; if that also
	// fails the credential is treated as removed, not as invalid — a
	// transient network error must not falsely abort monitoring.
	CheckMembership(ctx context.Context, guildID string) models.MembershipStatus

	// Leave makes the credential voluntarily exit guildID. Reports true on
	// success and on the idempotent "already absent" case.
	Leave(ctx context.Context, guildID string) bool

	// ListGuilds returns the credential's full guild list. Used as the
	// membership fallback.
	ListGuilds(ctx context.Context) ([]models.Guild, error)

	// Close releases idle transport connections.
	Close()
}

// ClientFactory builds a [MembershipClient] for a credential, optionally
// routed through proxy. The session orchestrator uses it to open one
// long-lived client per credential and fresh ones for the final report.
type ClientFactory func(cred models.Credential, proxy *models.ProxyEndpoint) MembershipClient
