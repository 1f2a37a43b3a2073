package types

import (
	"fmt"
	"net/mail"
)

// ------------------------------
// Gateway-boundary validation
// ------------------------------

// ValidationError reports a request rejected client-side before any network
// I/O was attempted.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func invalid(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}

// Validate checks credentials before registration.
func (r RegisterRequest) Validate() error {
	if _, err := mail.ParseAddress(r.Email); err != nil {
		return invalid("email", "not a valid address")
	}
	if r.Password == "" {
		return invalid("password", "must not be empty")
	}
	return nil
}

// Validate checks credentials before login.
func (r LoginRequest) Validate() error {
	if r.Email == "" {
		return invalid("email", "must not be empty")
	}
	if r.Password == "" {
		return invalid("password", "must not be empty")
	}
	return nil
}

// Validate checks a new dish for the fields the backend requires.
func (r AddDishRequest) Validate() error {
	if r.Name == "" {
		return invalid("name", "must not be empty")
	}
	if len(r.Ingredients) == 0 {
		return invalid("ingredients", "must not be empty")
	}
	if r.Servings < 0 {
		return invalid("servings", "must not be negative")
	}
	return nil
}

// Validate checks a plan before persistence; all three dish references are
// required.
func (r CreateMealPlanRequest) Validate() error {
	if r.Date == "" {
		return invalid("date", "must not be empty")
	}
	if r.BreakfastDish == "" || r.LunchDish == "" || r.DinnerDish == "" {
		return invalid("dish ids", "breakfast, lunch and dinner are all required")
	}
	return nil
}

// Validate checks the profile subset the generator needs.
func (r GenerateMealPlanRequest) Validate() error {
	if r.Age <= 0 {
		return invalid("age", "must be positive")
	}
	if r.Height <= 0 || r.Weight <= 0 {
		return invalid("measurements", "height and weight must be positive")
	}
	return nil
}

// Validate requires at least one ingredient to recommend from.
func (r RecipeRecommendationRequest) Validate() error {
	if len(r.AvailableIngredients) == 0 {
		return invalid("availableIngredients", "must not be empty")
	}
	return nil
}
