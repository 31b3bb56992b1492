// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/MKhiriev/guild-sentry/internal/config"
	"github.com/MKhiriev/guild-sentry/internal/logger"
	"github.com/MKhiriev/guild-sentry/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestClient создаёт membershipClient, направленный на тестовый сервер
func newTestClient(t *testing.T, serverURL string, maxRetries uint64) *membershipClient {
	t.Helper()
	cfg := config.Adapter{
		BaseURL:             serverURL,
		RequestTimeout:      2 * time.Second,
		RetryAfterDefault:   50 * time.Millisecond,
		MaxRateLimitRetries: maxRetries,
	}
	cred := models.Credential{Label: "alpha", Secret: "secret.alpha"}

	c := NewMembershipClient(cfg, cred, nil, logger.Nop())
	return c.(*membershipClient)
}

// ── CheckValidity ────────────────────────────────────────────────────────────

func TestCheckValidity_OK(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/users/@me", r.URL.Path)
		assert.Equal(t, "secret.alpha", r.Header.Get("Authorization"))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL, 0)

	assert.True(t, c.CheckValidity(context.Background()))
}

func TestCheckValidity_Unauthorized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL, 0)

	assert.False(t, c.CheckValidity(context.Background()))
}

func TestCheckValidity_UnexpectedStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL, 0)

	assert.False(t, c.CheckValidity(context.Background()))
}

func TestCheckValidity_TransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused

	c := newTestClient(t, srv.URL, 0)

	assert.False(t, c.CheckValidity(context.Background()))
}

// ── Rate limiting ────────────────────────────────────────────────────────────

func TestCheckValidity_RateLimited_RetriesWithServerDelay(t *testing.T) {
	var calls atomic.Int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			w.Header().Set("Retry-After", "0.2")
			w.WriteHeader(http.StatusTooManyRequests)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL, 0)
	start := time.Now()

	got := c.CheckValidity(context.Background())

	// retry is transparent: the retried call's result is the result
	assert.True(t, got)
	assert.EqualValues(t, 2, calls.Load(), "exactly one retry expected")
	assert.GreaterOrEqual(t, time.Since(start), 200*time.Millisecond, "must honor the server-advertised delay")
}

func TestCheckValidity_RateLimited_CapExhausted(t *testing.T) {
	var calls atomic.Int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.Header().Set("Retry-After", "0.01")
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL, 2)

	assert.False(t, c.CheckValidity(context.Background()))
	assert.EqualValues(t, 3, calls.Load(), "initial attempt plus two retries")
}

func TestRetryAfterDelay(t *testing.T) {
	fallback := 5 * time.Second

	tests := []struct {
		name   string
		header string
		want   time.Duration
	}{
		{name: "fractional seconds", header: "2.5", want: 2500 * time.Millisecond},
		{name: "whole seconds", header: "3", want: 3 * time.Second},
		{name: "missing header", header: "", want: fallback},
		{name: "garbage", header: "soon", want: fallback},
		{name: "negative", header: "-1", want: fallback},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if tt.header != "" {
					w.Header().Set("Retry-After", tt.header)
				}
				w.WriteHeader(http.StatusTooManyRequests)
			}))
			defer srv.Close()

			c := newTestClient(t, srv.URL, 0)
			resp, err := c.client.R().Get("/users/@me")
			require.NoError(t, err)

			assert.Equal(t, tt.want, retryAfterDelay(resp, fallback))
		})
	}
}

// ── CheckMembership ──────────────────────────────────────────────────────────

// membershipHandler serves the validity endpoint with 200 and delegates the
// rest to member/guilds handlers.
func membershipHandler(member, guilds http.HandlerFunc) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.URL.Path == "/users/@me":
			w.WriteHeader(http.StatusOK)
		case r.URL.Path == "/users/@me/guilds":
			guilds(w, r)
		case strings.HasPrefix(r.URL.Path, "/guilds/"):
			member(w, r)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	})
}

func TestCheckMembership_InGuild(t *testing.T) {
	srv := httptest.NewServer(membershipHandler(
		func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/guilds/42/members/@me", r.URL.Path)
			w.WriteHeader(http.StatusOK)
		},
		nil,
	))
	defer srv.Close()

	c := newTestClient(t, srv.URL, 0)

	got := c.CheckMembership(context.Background(), "42")
	assert.Equal(t, models.MembershipStatus{Valid: true, InGuild: true}, got)
}

func TestCheckMembership_Removed(t *testing.T) {
	srv := httptest.NewServer(membershipHandler(
		func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusNotFound) },
		nil,
	))
	defer srv.Close()

	c := newTestClient(t, srv.URL, 0)

	got := c.CheckMembership(context.Background(), "42")
	assert.Equal(t, models.MembershipStatus{Valid: true, InGuild: false}, got)
}

func TestCheckMembership_InvalidShortCircuits(t *testing.T) {
	var memberCalls atomic.Int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/users/@me" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		memberCalls.Add(1)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL, 0)

	got := c.CheckMembership(context.Background(), "42")
	assert.Equal(t, models.MembershipStatus{}, got)
	assert.Zero(t, memberCalls.Load(), "membership endpoint must not be queried for an invalid credential")
}

func TestCheckMembership_UnauthorizedOnMemberCheck(t *testing.T) {
	srv := httptest.NewServer(membershipHandler(
		func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusUnauthorized) },
		nil,
	))
	defer srv.Close()

	c := newTestClient(t, srv.URL, 0)

	got := c.CheckMembership(context.Background(), "42")
	assert.Equal(t, models.MembershipStatus{}, got)
}

func TestCheckMembership_FallbackFindsGuild(t *testing.T) {
	srv := httptest.NewServer(membershipHandler(
		func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusForbidden) },
		func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_ = json.NewEncoder(w).Encode([]models.Guild{{ID: "7"}, {ID: "42", Name: "target"}})
		},
	))
	defer srv.Close()

	c := newTestClient(t, srv.URL, 0)

	got := c.CheckMembership(context.Background(), "42")
	assert.Equal(t, models.MembershipStatus{Valid: true, InGuild: true}, got)
}

func TestCheckMembership_FallbackGuildAbsent(t *testing.T) {
	srv := httptest.NewServer(membershipHandler(
		func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusForbidden) },
		func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_ = json.NewEncoder(w).Encode([]models.Guild{{ID: "7"}})
		},
	))
	defer srv.Close()

	c := newTestClient(t, srv.URL, 0)

	got := c.CheckMembership(context.Background(), "42")
	assert.Equal(t, models.MembershipStatus{Valid: true, InGuild: false}, got)
}

func TestCheckMembership_FallbackFailure_TreatedAsRemoved(t *testing.T) {
	srv := httptest.NewServer(membershipHandler(
		func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusForbidden) },
		func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusInternalServerError) },
	))
	defer srv.Close()

	c := newTestClient(t, srv.URL, 0)

	got := c.CheckMembership(context.Background(), "42")
	assert.Equal(t, models.MembershipStatus{Valid: true, InGuild: false}, got)
}

func TestCheckMembership_TransportError_FailsOpenToRemoved(t *testing.T) {
	srv := httptest.NewServer(membershipHandler(
		func(w http.ResponseWriter, r *http.Request) {
			conn, _, err := w.(http.Hijacker).Hijack()
			require.NoError(t, err)
			_ = conn.Close() // drop the connection mid-request
		},
		nil,
	))
	defer srv.Close()

	c := newTestClient(t, srv.URL, 0)

	got := c.CheckMembership(context.Background(), "42")
	assert.Equal(t, models.MembershipStatus{Valid: true, InGuild: false}, got)
}

// ── Leave ────────────────────────────────────────────────────────────────────

func TestLeave_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/users/@me/guilds/42", r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL, 0)

	assert.True(t, c.Leave(context.Background(), "42"))
}

func TestLeave_AlreadyAbsent_Idempotent(t *testing.T) {
	var calls atomic.Int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL, 0)

	// leave→leave yields success both times
	assert.True(t, c.Leave(context.Background(), "42"))
	assert.True(t, c.Leave(context.Background(), "42"))
}

func TestLeave_Unauthorized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL, 0)

	assert.False(t, c.Leave(context.Background(), "42"))
}

func TestLeave_RateLimited_ThenSucceeds(t *testing.T) {
	var calls atomic.Int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			w.Header().Set("Retry-After", "0.05")
			w.WriteHeader(http.StatusTooManyRequests)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL, 0)

	assert.True(t, c.Leave(context.Background(), "42"))
	assert.EqualValues(t, 2, calls.Load())
}
