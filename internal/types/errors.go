package types

import "errors"

// ------------------------------
// Shared Errors
// ------------------------------

// ErrNotAuthenticated is returned by authenticated gateway methods when the
// session store holds no token; no request is issued.
var ErrNotAuthenticated = errors.New("not authenticated")

// ErrNoMealPlan rejects grocery-list generation before any network call
// when no generated meal plan is supplied. The text is user-facing copy.
var ErrNoMealPlan = errors.New("Please generate a meal plan first")
