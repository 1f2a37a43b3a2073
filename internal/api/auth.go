package api

import (
	"context"
	"net/http"

	"github.com/nutriplan/nutriplan-client/internal/types"
)

// Register creates a new account. Public: no bearer header even when a
// session exists. The role defaults server-side.
func Register(ctx context.Context, hc HTTPClient, baseURL string, req types.RegisterRequest) (*types.UserProfile, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	env, err := doJSON(ctx, hc, http.MethodPost, baseURL+"/register", "", req)
	if err != nil {
		return nil, err
	}
	var u types.UserProfile
	if err := env.Decode(&u); err != nil {
		return nil, err
	}
	return &u, nil
}

// Login exchanges credentials for a token and user. Public. Persisting the
// resulting session is the caller's responsibility.
func Login(ctx context.Context, hc HTTPClient, baseURL string, req types.LoginRequest) (*types.LoginData, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	env, err := doJSON(ctx, hc, http.MethodPost, baseURL+"/login", "", req)
	if err != nil {
		return nil, err
	}
	var ld types.LoginData
	if err := env.Decode(&ld); err != nil {
		return nil, err
	}
	return &ld, nil
}
