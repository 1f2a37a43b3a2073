package client

// This file defines functional options that configure the Client during
// construction. Keeping them in a standalone file makes it easy to discover
// all available knobs at a glance.

import (
	"fmt"
	"net/http"
	"time"
)

// Option configures a Client during construction in New.
//
// Options are applied before the instrumented transport wrapper is
// installed, so transport-related options (like debug logging) sit beneath
// request-ID stamping. Options must be deterministic and side-effect free.
type Option func(*Client) error

// WithHTTPTimeout sets the underlying http.Client Timeout used by the SDK.
//
// Prefer per-request context deadlines where possible; this timeout is a
// coarse safety net bounding the total time of a single HTTP request. The
// value must be greater than zero.
func WithHTTPTimeout(d time.Duration) Option {
	return func(c *Client) error {
		if d <= 0 {
			return fmt.Errorf("http timeout must be > 0")
		}
		c.http.Timeout = d
		return nil
	}
}

// WithHTTPClient replaces the underlying http.Client. Useful for custom
// transports and for tests. The client is shallow-copied so the transport
// stack New installs never mutates the caller's instance.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) error {
		if hc == nil {
			return fmt.Errorf("http client must not be nil")
		}
		cp := *hc
		c.http = &cp
		return nil
	}
}

// WithDebugLogging wraps the client's transport so each request/response is
// dumped to the log when enabled is true.
//
// Do not enable in production: dumps include headers and bodies, bearer
// token included.
func WithDebugLogging(enabled bool) Option {
	return func(c *Client) error {
		if enabled {
			c.http.Transport = &debugTransport{base: c.http.Transport}
		}
		return nil
	}
}

// WithSessionStore replaces the default file-backed session store. The
// store is the single canonical read/write path for the token and cached
// user.
func WithSessionStore(s SessionStore) Option {
	return func(c *Client) error {
		if s == nil {
			return fmt.Errorf("session store must not be nil")
		}
		c.store = s
		return nil
	}
}

// WithStaticToken seeds the session store with a pre-issued bearer token,
// for embedders that obtained one out of band and skip the login flow.
func WithStaticToken(tok string) Option {
	return func(c *Client) error {
		if tok == "" {
			return fmt.Errorf("static token must not be empty")
		}
		c.staticToken = tok
		return nil
	}
}

// WithWriteQueue toggles per-resource serialization of mutating calls.
// Disabled, mutations go straight to the transport with the original
// fire-and-forget semantics.
func WithWriteQueue(enabled bool) Option {
	return func(c *Client) error {
		c.useQueue = enabled
		return nil
	}
}

// WithRetry allows mutating calls to be retried up to maxAttempts times on
// recoverable failures (network faults, 5xx, 408/429), with exponential
// backoff between attempts. The default is a single attempt. Requires the
// write queue.
func WithRetry(maxAttempts int) Option {
	return func(c *Client) error {
		if maxAttempts < 1 {
			return fmt.Errorf("retry attempts must be >= 1")
		}
		c.queueCfg.MaxAttempts = maxAttempts
		return nil
	}
}
