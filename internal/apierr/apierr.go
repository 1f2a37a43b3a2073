// Package apierr classifies failures surfaced by the NutriPlan backend so
// retry policy can distinguish transient faults from definitive rejections.
package apierr

import "fmt"

// Category determines how an error should be handled by retry logic.
type Category int

const (
	// Recoverable errors may be retried with exponential backoff:
	// network faults, 5xx responses, 408 and 429.
	Recoverable Category = iota

	// Irrecoverable errors fail immediately: 400, 401, 403, 404 and the
	// rest of the 4xx family.
	Irrecoverable
)

func (c Category) String() string {
	switch c {
	case Recoverable:
		return "Recoverable"
	case Irrecoverable:
		return "Irrecoverable"
	default:
		return fmt.Sprintf("Unknown(%d)", int(c))
	}
}

// Error is a normalized backend failure. Message carries the user-facing
// text extracted from the response envelope; callers surface it verbatim.
type Error struct {
	Category   Category
	StatusCode int    // HTTP or envelope meta status (0 for pure network faults)
	Message    string // normalized per the envelope precedence rules
	Underlying error  // original transport error, if any
}

// Error returns the normalized message alone so UI layers can show it
// without stripping prefixes.
func (e *Error) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Underlying != nil {
		return e.Underlying.Error()
	}
	return fmt.Sprintf("HTTP error! status: %d", e.StatusCode)
}

// Unwrap returns the underlying error for errors.Is/As chains.
func (e *Error) Unwrap() error { return e.Underlying }

// New builds a classified Error from a status code and normalized message.
func New(statusCode int, message string) *Error {
	return &Error{
		Category:   classify(statusCode),
		StatusCode: statusCode,
		Message:    message,
	}
}

// NewNetwork wraps a transport-level failure. Always recoverable; the
// message is the generic one the UI contract expects.
func NewNetwork(err error) *Error {
	return &Error{
		Category:   Recoverable,
		Message:    "Network error",
		Underlying: err,
	}
}

// IsIrrecoverable reports whether err should not be retried.
func IsIrrecoverable(err error) bool {
	if e, ok := err.(*Error); ok {
		return e.Category == Irrecoverable
	}
	return false
}

// classify maps a status code to a retry category.
func classify(statusCode int) Category {
	switch {
	case statusCode >= 400 && statusCode < 500:
		switch statusCode {
		case 408, 429:
			return Recoverable
		default:
			return Irrecoverable
		}
	case statusCode >= 500 && statusCode < 600:
		return Recoverable
	default:
		// Unexpected codes: be conservative and allow a retry.
		return Recoverable
	}
}
