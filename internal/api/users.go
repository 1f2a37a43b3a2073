package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/nutriplan/nutriplan-client/internal/types"
)

// GetProfile retrieves the authenticated user's profile.
func GetProfile(ctx context.Context, hc HTTPClient, baseURL, tok string) (*types.UserProfile, error) {
	env, err := getJSON(ctx, hc, baseURL+"/profile", tok)
	if err != nil {
		return nil, err
	}
	var u types.UserProfile
	if err := env.Decode(&u); err != nil {
		return nil, err
	}
	return &u, nil
}

// UpdateProfile applies a partial update to the authenticated user's
// profile.
func UpdateProfile(ctx context.Context, hc HTTPClient, baseURL, tok string, req types.UpdateProfileRequest) (*types.UserProfile, error) {
	env, err := doJSON(ctx, hc, http.MethodPatch, baseURL+"/profile/update", tok, req)
	if err != nil {
		return nil, err
	}
	var u types.UserProfile
	if err := env.Decode(&u); err != nil {
		return nil, err
	}
	return &u, nil
}

// UpdateUser applies a partial update to an arbitrary user. Admin-only in
// practice; the server enforces it.
func UpdateUser(ctx context.Context, hc HTTPClient, baseURL, tok, userID string, req types.UpdateProfileRequest) (*types.UserProfile, error) {
	env, err := doJSON(ctx, hc, http.MethodPatch, fmt.Sprintf("%s/update/%s", baseURL, userID), tok, req)
	if err != nil {
		return nil, err
	}
	var u types.UserProfile
	if err := env.Decode(&u); err != nil {
		return nil, err
	}
	return &u, nil
}

// DeleteUser removes a user by ID. The bearer header is attached like on
// every other mutating route.
func DeleteUser(ctx context.Context, hc HTTPClient, baseURL, tok, userID string) error {
	_, err := doJSON(ctx, hc, http.MethodDelete, fmt.Sprintf("%s/%s", baseURL, userID), tok, nil)
	return err
}

// ListUsers returns every user. Public listing endpoint.
func ListUsers(ctx context.Context, hc HTTPClient, baseURL string) ([]types.UserProfile, error) {
	env, err := getJSON(ctx, hc, baseURL+"/all", "")
	if err != nil {
		return nil, err
	}
	var users []types.UserProfile
	if err := env.Decode(&users); err != nil {
		return nil, err
	}
	return users, nil
}
