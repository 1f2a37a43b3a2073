package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/nutriplan/nutriplan-client/internal/types"
)

// ListDishes returns every dish. Public listing endpoint.
func ListDishes(ctx context.Context, hc HTTPClient, baseURL string) ([]types.Dish, error) {
	env, err := getJSON(ctx, hc, baseURL+"/dish/all", "")
	if err != nil {
		return nil, err
	}
	var dishes []types.Dish
	if err := env.Decode(&dishes); err != nil {
		return nil, err
	}
	return dishes, nil
}

// AddDish persists a new dish, typically one approved from a generated
// meal or recipe recommendation.
func AddDish(ctx context.Context, hc HTTPClient, baseURL, tok string, req types.AddDishRequest) (*types.Dish, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	env, err := doJSON(ctx, hc, http.MethodPost, baseURL+"/dish", tok, req)
	if err != nil {
		return nil, err
	}
	var d types.Dish
	if err := env.Decode(&d); err != nil {
		return nil, err
	}
	return &d, nil
}

// UpdateDish replaces a dish's fields.
func UpdateDish(ctx context.Context, hc HTTPClient, baseURL, tok, dishID string, req types.AddDishRequest) (*types.Dish, error) {
	env, err := doJSON(ctx, hc, http.MethodPut, fmt.Sprintf("%s/dish/%s", baseURL, dishID), tok, req)
	if err != nil {
		return nil, err
	}
	var d types.Dish
	if err := env.Decode(&d); err != nil {
		return nil, err
	}
	return &d, nil
}

// DeleteDish removes a dish by ID.
func DeleteDish(ctx context.Context, hc HTTPClient, baseURL, tok, dishID string) error {
	_, err := doJSON(ctx, hc, http.MethodDelete, fmt.Sprintf("%s/dish/%s", baseURL, dishID), tok, nil)
	return err
}
