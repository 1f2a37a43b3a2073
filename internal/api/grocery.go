package api

import (
	"context"
	"net/http"

	"github.com/nutriplan/nutriplan-client/internal/types"
)

// GenerateGroceryList derives a shopping list from a generated meal plan.
// A missing plan is rejected before any network I/O.
func GenerateGroceryList(ctx context.Context, hc HTTPClient, baseURL, tok string, req types.GroceryListRequest) ([]types.GroceryItem, error) {
	if req.MealPlan == nil {
		return nil, types.ErrNoMealPlan
	}
	env, err := doJSON(ctx, hc, http.MethodPost, baseURL+"/grocery", tok, req)
	if err != nil {
		return nil, err
	}
	var items []types.GroceryItem
	if err := env.Decode(&items); err != nil {
		return nil, err
	}
	return items, nil
}
