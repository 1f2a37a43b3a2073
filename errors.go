package client

import (
	"errors"

	"github.com/nutriplan/nutriplan-client/internal/apierr"
	"github.com/nutriplan/nutriplan-client/internal/types"
	"github.com/nutriplan/nutriplan-client/internal/writequeue"
)

// ErrNotAuthenticated is returned by authenticated methods when no session
// token is held; no request is issued.
var ErrNotAuthenticated = types.ErrNotAuthenticated

// ErrNoMealPlan rejects grocery-list generation without a generated plan.
var ErrNoMealPlan = types.ErrNoMealPlan

// ErrQueueClosed is returned by mutating methods after Close.
var ErrQueueClosed = writequeue.ErrClosed

// APIError is a normalized backend failure: its Error() text is the
// user-facing message extracted from the response envelope, with the status
// code and retry category available for inspection.
type APIError = apierr.Error

// ValidationError reports a request rejected client-side before any
// network I/O.
type ValidationError = types.ValidationError

// AsAPIError extracts an APIError from err's chain.
func AsAPIError(err error) (*APIError, bool) {
	var ae *APIError
	ok := errors.As(err, &ae)
	return ae, ok
}

// IsNotAuthenticated reports whether err means no session is held.
func IsNotAuthenticated(err error) bool { return errors.Is(err, ErrNotAuthenticated) }

// IsBackPressure reports whether err means a write-queue shard stayed
// full.
func IsBackPressure(err error) bool { return writequeue.IsQueueFull(err) }
