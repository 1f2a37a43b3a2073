package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/nutriplan/nutriplan-client/internal/types"
)

// ListMealPlans returns every persisted meal plan. Public listing endpoint.
func ListMealPlans(ctx context.Context, hc HTTPClient, baseURL string) ([]types.MealPlan, error) {
	env, err := getJSON(ctx, hc, baseURL+"/meal/all", "")
	if err != nil {
		return nil, err
	}
	var plans []types.MealPlan
	if err := env.Decode(&plans); err != nil {
		return nil, err
	}
	return plans, nil
}

// CreateMealPlan persists a day plan referencing three dishes.
func CreateMealPlan(ctx context.Context, hc HTTPClient, baseURL, tok string, req types.CreateMealPlanRequest) (*types.MealPlan, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	env, err := doJSON(ctx, hc, http.MethodPost, baseURL+"/meal", tok, req)
	if err != nil {
		return nil, err
	}
	var p types.MealPlan
	if err := env.Decode(&p); err != nil {
		return nil, err
	}
	return &p, nil
}

// UpdateMealPlan replaces a persisted plan's fields.
func UpdateMealPlan(ctx context.Context, hc HTTPClient, baseURL, tok, planID string, req types.CreateMealPlanRequest) (*types.MealPlan, error) {
	env, err := doJSON(ctx, hc, http.MethodPut, fmt.Sprintf("%s/meal/%s", baseURL, planID), tok, req)
	if err != nil {
		return nil, err
	}
	var p types.MealPlan
	if err := env.Decode(&p); err != nil {
		return nil, err
	}
	return &p, nil
}

// DeleteMealPlan removes a persisted plan by ID.
func DeleteMealPlan(ctx context.Context, hc HTTPClient, baseURL, tok, planID string) error {
	_, err := doJSON(ctx, hc, http.MethodDelete, fmt.Sprintf("%s/meal/%s", baseURL, planID), tok, nil)
	return err
}

// GenerateMealPlan asks the backend to generate a day plan from a health
// profile. Generation is not persistence: the result holds MealInfo values,
// not dish references, until explicitly approved.
func GenerateMealPlan(ctx context.Context, hc HTTPClient, baseURL, tok string, req types.GenerateMealPlanRequest) (*types.GeneratedMealPlan, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	env, err := doJSON(ctx, hc, http.MethodPost, baseURL+"/mealGen", tok, req)
	if err != nil {
		return nil, err
	}
	var p types.GeneratedMealPlan
	if err := env.Decode(&p); err != nil {
		return nil, err
	}
	return &p, nil
}
