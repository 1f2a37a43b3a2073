// Package api holds one function per backend capability. Every function
// composes the same pieces: a context-aware JSON request, the bearer header
// when a token is supplied, and envelope normalization of the response.
// Nothing else in the module touches the transport.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"

	"github.com/nutriplan/nutriplan-client/internal/apierr"
	"github.com/nutriplan/nutriplan-client/internal/envelope"
)

// HTTPClient interface for dependency injection.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// doJSON performs one exchange and returns the normalized envelope.
// tok == "" means a public call: the Authorization header is omitted even
// if the caller holds a token.
func doJSON(ctx context.Context, hc HTTPClient, method, url, tok string, body any) (*envelope.Envelope, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var rdr io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		rdr = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, rdr)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	if tok != "" {
		req.Header.Set("Authorization", "Bearer "+tok)
	}

	resp, err := hc.Do(req)
	if err != nil {
		return nil, apierr.NewNetwork(err)
	}
	defer func() { _ = resp.Body.Close() }()

	return envelope.Parse(resp)
}

// getJSON is doJSON for body-less GET exchanges.
func getJSON(ctx context.Context, hc HTTPClient, url, tok string) (*envelope.Envelope, error) {
	return doJSON(ctx, hc, http.MethodGet, url, tok, nil)
}
