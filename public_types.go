package client

import (
	"github.com/nutriplan/nutriplan-client/internal/session"
	"github.com/nutriplan/nutriplan-client/internal/types"
)

// Public type aliases so SDK consumers can import only the client package.

// Requests
type (
	RegisterRequest             = types.RegisterRequest
	LoginRequest                = types.LoginRequest
	UpdateProfileRequest        = types.UpdateProfileRequest
	AddDishRequest              = types.AddDishRequest
	CreateMealPlanRequest       = types.CreateMealPlanRequest
	GenerateMealPlanRequest     = types.GenerateMealPlanRequest
	RecipeRecommendationRequest = types.RecipeRecommendationRequest
	GroceryListRequest          = types.GroceryListRequest
)

// Domain entities
type (
	UserProfile          = types.UserProfile
	Dish                 = types.Dish
	MealInfo             = types.MealInfo
	MealPlan             = types.MealPlan
	GeneratedMealPlan    = types.GeneratedMealPlan
	RecipeRecommendation = types.RecipeRecommendation
	GroceryItem          = types.GroceryItem
	Session              = types.Session
)

// Responses
type (
	LoginData = types.LoginData
	DeleteAck = types.DeleteAck
)

// Role values returned by the backend.
const (
	RoleUser  = types.RoleUser
	RoleAdmin = types.RoleAdmin
)

// SessionStore is the single canonical read/write path for the persisted
// token and cached user.
type SessionStore = session.Store

// NewFileSessionStore returns a store persisting the session as a JSON
// file with 0600 permissions.
func NewFileSessionStore(path string) SessionStore { return session.NewFileStore(path) }

// NewMemorySessionStore returns a process-memory store, useful in tests
// and for embedders that manage persistence themselves.
func NewMemorySessionStore() SessionStore { return session.NewMemStore() }
