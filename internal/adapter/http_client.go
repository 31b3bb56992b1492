package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/MKhiriev/guild-sentry/internal/config"
	"github.com/MKhiriev/guild-sentry/internal/logger"
	"github.com/MKhiriev/guild-sentry/models"
	"github.com/go-resty/resty/v2"
	"github.com/sethvargo/go-retry"
)

type membershipClient struct {
	client *resty.Client
	label  string

	retryAfterDefault time.Duration
	maxRetries        uint64

	log *logger.Logger
}

// NewMembershipClient builds a MembershipClient for one credential. The
// credential's secret is attached to every request; when proxy is non-nil
// all requests of this client are routed through it.
func NewMembershipClient(cfg config.Adapter, cred models.Credential, proxy *models.ProxyEndpoint, log *logger.Logger) MembershipClient {
	if cfg.BaseURL == "" {
		cfg.BaseURL = config.DefaultBaseURL
	}
	if cfg.RequestTimeout <= 0 {
		cfg.RequestTimeout = config.DefaultRequestTimeout
	}
	if cfg.RetryAfterDefault <= 0 {
		cfg.RetryAfterDefault = config.DefaultRetryAfterDefault
	}

	cli := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(cfg.RequestTimeout).
		SetHeader("Authorization", cred.Secret)
	if proxy != nil {
		cli.SetProxy(proxy.URL())
	}

	return &membershipClient{
		client:            cli,
		label:             cred.Label,
		retryAfterDefault: cfg.RetryAfterDefault,
		maxRetries:        cfg.MaxRateLimitRetries,
		log:               log.WithCredential(cred.Label),
	}
}

// NewClientFactory returns a ClientFactory closed over the adapter config
// and logger, so the service layer can open clients without knowing the
// transport details.
func NewClientFactory(cfg config.Adapter, log *logger.Logger) ClientFactory {
	return func(cred models.Credential, proxy *models.ProxyEndpoint) MembershipClient {
		return NewMembershipClient(cfg, cred, proxy, log)
	}
}

func (c *membershipClient) Label() string {
	return c.label
}

func (c *membershipClient) CheckValidity(ctx context.Context) bool {
	resp, err := c.doWithRateLimitRetry(ctx, "check validity", func(ctx context.Context) (*resty.Response, error) {
		return c.client.R().SetContext(ctx).Get("/users/@me")
	})
	if err != nil {
		c.log.Error().Err(err).Msg("check validity request failed")
		return false
	}

	switch resp.StatusCode() {
	case http.StatusOK:
		return true
	case http.StatusUnauthorized:
		c.log.Error().Err(ErrUnauthorized).Msg("credential rejected by validity check")
		return false
	default:
		c.log.Error().Int("status", resp.StatusCode()).Msg("unexpected status on validity check")
		return false
	}
}

func (c *membershipClient) CheckMembership(ctx context.Context, guildID string) models.MembershipStatus {
	if !c.CheckValidity(ctx) {
		return models.MembershipStatus{}
	}

	resp, err := c.doWithRateLimitRetry(ctx, "check membership", func(ctx context.Context) (*resty.Response, error) {
		return c.client.R().SetContext(ctx).Get("/guilds/" + guildID + "/members/@me")
	})
	if err != nil {
		// Fail open to "removed": a transient network error must degrade the
		// displayed status, never crash or invalidate the credential.
		c.log.Error().Err(err).Msg("check membership request failed")
		return models.MembershipStatus{Valid: true, InGuild: false}
	}

	switch resp.StatusCode() {
	case http.StatusOK:
		return models.MembershipStatus{Valid: true, InGuild: true}
	case http.StatusNotFound:
		c.log.Warn().Msg("credential is not in the guild")
		return models.MembershipStatus{Valid: true, InGuild: false}
	case http.StatusUnauthorized:
		c.log.Error().Err(ErrUnauthorized).Msg("credential rejected by membership check")
		return models.MembershipStatus{}
	default:
		return c.membershipFallback(ctx, guildID, resp.StatusCode())
	}
}

// membershipFallback resolves an unexpected membership-check status by
// scanning the credential's full guild list. A failing fallback still
// reports "not in guild"; the indeterminacy is kept visible in the log.
func (c *membershipClient) membershipFallback(ctx context.Context, guildID string, cause int) models.MembershipStatus {
	c.log.Warn().Int("status", cause).Msg("unexpected status on membership check, falling back to guild list")

	guilds, err := c.ListGuilds(ctx)
	if err != nil {
		c.log.Error().Err(err).Msg("guild list fallback failed, treating credential as removed")
		return models.MembershipStatus{Valid: true, InGuild: false}
	}

	for _, guild := range guilds {
		if guild.ID == guildID {
			return models.MembershipStatus{Valid: true, InGuild: true}
		}
	}

	c.log.Warn().Msg("credential is not in the guild")
	return models.MembershipStatus{Valid: true, InGuild: false}
}

func (c *membershipClient) Leave(ctx context.Context, guildID string) bool {
	resp, err := c.doWithRateLimitRetry(ctx, "leave guild", func(ctx context.Context) (*resty.Response, error) {
		return c.client.R().SetContext(ctx).Delete("/users/@me/guilds/" + guildID)
	})
	if err != nil {
		c.log.Error().Err(err).Str("guild_id", guildID).Msg("leave request failed")
		return false
	}

	switch resp.StatusCode() {
	case http.StatusNoContent:
		c.log.Info().Str("guild_id", guildID).Msg("left the guild")
		return true
	case http.StatusNotFound:
		// Already absent: leaving twice must succeed both times.
		c.log.Info().Str("guild_id", guildID).Msg("already absent from the guild")
		return true
	case http.StatusUnauthorized:
		c.log.Error().Err(ErrUnauthorized).Str("guild_id", guildID).Msg("leave rejected")
		return false
	default:
		c.log.Error().Int("status", resp.StatusCode()).Str("guild_id", guildID).Msg("failed to leave the guild")
		return false
	}
}

func (c *membershipClient) ListGuilds(ctx context.Context) ([]models.Guild, error) {
	resp, err := c.doWithRateLimitRetry(ctx, "list guilds", func(ctx context.Context) (*resty.Response, error) {
		return c.client.R().SetContext(ctx).Get("/users/@me/guilds")
	})
	if err != nil {
		return nil, fmt.Errorf("list guilds request: %w", err)
	}
	if resp.StatusCode() != http.StatusOK {
		return nil, fmt.Errorf("list guilds: http %d", resp.StatusCode())
	}

	var guilds []models.Guild
	if err = json.Unmarshal(resp.Body(), &guilds); err != nil {
		return nil, fmt.Errorf("decode guild list: %w", err)
	}

	return guilds, nil
}

func (c *membershipClient) Close() {
	c.client.GetClient().CloseIdleConnections()
}

// doWithRateLimitRetry runs fn and, on a 429 response, waits for the
// server-advertised Retry-After delay and retries the same call. The loop is
// explicit (sethvargo/go-retry), not recursive, and unbounded unless a
// retry cap was configured. Transport errors are returned immediately: only
// rate limiting is a retryable condition.
func (c *membershipClient) doWithRateLimitRetry(ctx context.Context, op string, fn func(ctx context.Context) (*resty.Response, error)) (*resty.Response, error) {
	delay := c.retryAfterDefault
	var backoff retry.Backoff = retry.BackoffFunc(func() (time.Duration, bool) {
		return delay, false
	})
	if c.maxRetries > 0 {
		backoff = retry.WithMaxRetries(c.maxRetries, backoff)
	}

	var resp *resty.Response
	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		r, err := fn(ctx)
		if err != nil {
			return err
		}
		if r.StatusCode() == http.StatusTooManyRequests {
			delay = retryAfterDelay(r, c.retryAfterDefault)
			c.log.Warn().Dur("retry_after", delay).Str("op", op).Msg("rate limited, waiting before retry")
			return retry.RetryableError(ErrRateLimited)
		}
		resp = r
		return nil
	})
	if err != nil {
		return nil, err
	}

	return resp, nil
}

// retryAfterDelay reads the Retry-After header as fractional seconds,
// falling back to the configured default when absent or unparsable.
func retryAfterDelay(resp *resty.Response, fallback time.Duration) time.Duration {
	raw := resp.Header().Get("Retry-After")
	if raw == "" {
		return fallback
	}
	seconds, err := strconv.ParseFloat(raw, 64)
	if err != nil || seconds < 0 {
		return fallback
	}
	return time.Duration(seconds * float64(time.Second))
}
