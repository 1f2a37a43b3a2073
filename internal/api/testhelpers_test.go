package api

import (
	"fmt"
	"net/http"
	"net/http/httptest"
)

// errRT is an http.RoundTripper that always fails (simulates a network
// fault).
type errRT struct{}

func (e *errRT) RoundTrip(*http.Request) (*http.Response, error) {
	return nil, fmt.Errorf("boom")
}

// envelopeServer responds with a well-formed {meta, data} envelope and
// records the last request's method, path and Authorization header.
type envelopeServer struct {
	*httptest.Server
	lastMethod string
	lastPath   string
	lastAuth   string
}

func newEnvelopeServer(status int, body string) *envelopeServer {
	es := &envelopeServer{}
	es.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		es.lastMethod = r.Method
		es.lastPath = r.URL.Path
		es.lastAuth = r.Header.Get("Authorization")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	return es
}

func okEnvelope(data string) string {
	return `{"meta":{"status":200,"message":"ok"},"data":` + data + `}`
}
