// Package envelope implements the uniform {meta, data} wire contract every
// NutriPlan endpoint responds with, and normalizes its inconsistent error
// shapes into a single classified error.
package envelope

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/nutriplan/nutriplan-client/internal/apierr"
)

// Meta carries the application-level status next to the transport status.
type Meta struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}

// Envelope is the wrapper every backend response uses. Data stays raw until
// the caller decodes it into an endpoint-specific type.
type Envelope struct {
	Meta Meta            `json:"meta"`
	Data json.RawMessage `json:"data"`
}

// Parse normalizes one transport response.
//
// An unparseable body is treated as a synthetic
// {meta:{message:"Network error"}, data:null} envelope. A non-2xx transport
// status yields an error whose message follows the backend's observed
// precedence: a bare string in data, then meta.message, then a generic
// fallback embedding the status code. A 2xx transport status with a present
// non-200 meta.status is still a failure; both checks are applied on every
// call.
func Parse(resp *http.Response) (*Envelope, error) {
	body, err := io.ReadAll(resp.Body)
	env := Envelope{}
	if err != nil || json.Unmarshal(body, &env) != nil {
		env = Envelope{Meta: Meta{Message: "Network error"}}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, apierr.New(resp.StatusCode, env.errorMessage(resp.StatusCode))
	}
	if env.Meta.Status != 0 && env.Meta.Status != http.StatusOK {
		return nil, apierr.New(env.Meta.Status, env.errorMessage(env.Meta.Status))
	}
	return &env, nil
}

// Decode unmarshals the data payload into v. A null or absent payload
// leaves v untouched.
func (e *Envelope) Decode(v any) error {
	if len(e.Data) == 0 || string(e.Data) == "null" {
		return nil
	}
	return json.Unmarshal(e.Data, v)
}

// errorMessage extracts the user-facing failure text. Some backend errors
// place a bare string in data ("User already exist"); those win over
// meta.message.
func (e *Envelope) errorMessage(status int) string {
	var s string
	if len(e.Data) > 0 && json.Unmarshal(e.Data, &s) == nil && s != "" {
		return s
	}
	if e.Meta.Message != "" {
		return e.Meta.Message
	}
	return fmt.Sprintf("HTTP error! status: %d", status)
}
