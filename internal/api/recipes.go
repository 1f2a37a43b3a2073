package api

import (
	"context"
	"net/http"

	"github.com/nutriplan/nutriplan-client/internal/types"
)

// RecommendRecipes returns suggestions for the ingredients on hand. Results
// are not persisted until a recommendation is approved into a dish.
func RecommendRecipes(ctx context.Context, hc HTTPClient, baseURL, tok string, req types.RecipeRecommendationRequest) ([]types.RecipeRecommendation, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	env, err := doJSON(ctx, hc, http.MethodPost, baseURL+"/recipe", tok, req)
	if err != nil {
		return nil, err
	}
	var recs []types.RecipeRecommendation
	if err := env.Decode(&recs); err != nil {
		return nil, err
	}
	return recs, nil
}
