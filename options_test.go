package client

import (
	"context"
	"net/http"
	"testing"
	"time"
)

type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(r *http.Request) (*http.Response, error) {
	return f(r)
}

func TestWithHTTPTimeout(t *testing.T) {
	t.Parallel()
	c := &Client{http: &http.Client{}}
	if err := WithHTTPTimeout(5 * time.Second)(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.http.Timeout != 5*time.Second {
		t.Fatal("http timeout not set")
	}
	if err := WithHTTPTimeout(0)(c); err == nil {
		t.Fatal("zero timeout must be rejected")
	}
}

func TestWithDebugLoggingWrapsTransport(t *testing.T) {
	t.Parallel()
	var called bool
	rt := roundTripFunc(func(r *http.Request) (*http.Response, error) {
		called = true
		return &http.Response{StatusCode: 200, Body: http.NoBody, Header: make(http.Header)}, nil
	})
	c := newTestClient(t, "http://example.com", WithHTTPClient(&http.Client{Transport: rt}), WithDebugLogging(true))

	req, _ := http.NewRequestWithContext(context.Background(), http.MethodGet, "http://example.com", http.NoBody)
	if _, err := c.http.Do(req); err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if !called {
		t.Fatal("base transport not invoked")
	}
}

func TestWithHTTPClient_DoesNotMutateCaller(t *testing.T) {
	t.Parallel()
	base := &http.Client{Timeout: 3 * time.Second}
	c1 := newTestClient(t, "http://example.com", WithHTTPClient(base))
	c2 := newTestClient(t, "http://example.com", WithHTTPClient(base))

	if base.Transport != nil {
		t.Fatalf("caller's client was mutated: transport=%T", base.Transport)
	}
	if c1.http == base || c2.http == base {
		t.Fatal("SDK must work on its own copy of the client")
	}
	for _, c := range []*Client{c1, c2} {
		it, ok := c.http.Transport.(*instrumentedTransport)
		if !ok {
			t.Fatalf("transport stack missing: %T", c.http.Transport)
		}
		if _, ok := it.base.(*instrumentedTransport); ok {
			t.Fatal("sharing one http.Client across two constructions double-wrapped the transport")
		}
	}
}

func TestNew_AutoEnableDebugViaEnv(t *testing.T) {
	t.Setenv("NUTRIPLAN_DEBUG", "true")
	c, err := New("http://example.com", WithSessionStore(NewMemorySessionStore()))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer func() { _ = c.Close() }()

	it, ok := c.http.Transport.(*instrumentedTransport)
	if !ok {
		t.Fatalf("outermost transport should stamp request IDs, got %T", c.http.Transport)
	}
	if _, ok := it.base.(*debugTransport); !ok {
		t.Fatalf("expected debugTransport beneath when NUTRIPLAN_DEBUG=true, got %T", it.base)
	}
}

func TestWithRetry_Validation(t *testing.T) {
	t.Parallel()
	if _, err := New("http://example.com", WithSessionStore(NewMemorySessionStore()), WithRetry(0)); err == nil {
		t.Fatal("retry attempts < 1 must be rejected")
	}
}

func TestWithSessionStore_NilRejected(t *testing.T) {
	t.Parallel()
	if _, err := New("http://example.com", WithSessionStore(nil)); err == nil {
		t.Fatal("nil store must be rejected")
	}
}

func TestWithStaticToken_EmptyRejected(t *testing.T) {
	t.Parallel()
	if _, err := New("http://example.com", WithStaticToken("")); err == nil {
		t.Fatal("empty static token must be rejected")
	}
}

func TestNew_TrimsTrailingSlash(t *testing.T) {
	t.Parallel()
	c := newTestClient(t, "http://example.com/")
	if c.baseURL != "http://example.com" {
		t.Fatalf("baseURL: %q", c.baseURL)
	}
}
