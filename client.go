// Package client is the Go SDK for the NutriPlan nutrition-planning
// backend. It is the sole component performing network I/O: a typed gateway
// over the REST API, the session/token lifecycle, and uniform response
// normalization.
package client

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/nutriplan/nutriplan-client/internal/api"
	"github.com/nutriplan/nutriplan-client/internal/apierr"
	"github.com/nutriplan/nutriplan-client/internal/session"
	"github.com/nutriplan/nutriplan-client/internal/types"
	"github.com/nutriplan/nutriplan-client/internal/writequeue"
)

// Client is the API gateway. All methods are safe for concurrent use.
//
// Mutating methods are serialized per resource key through an internal
// write queue so rapid updates to the same resource cannot land out of
// order; reads go straight to the transport.
type Client struct {
	baseURL string
	http    *http.Client
	store   session.Store

	queue    *writequeue.Queue
	queueCfg writequeue.Config
	useQueue bool

	staticToken string

	hooksMu        sync.Mutex
	onTokenRefused []func()

	closedOnce uint32
}

// New constructs a Client for the given base URL. Additional behavior is
// configured through functional options.
func New(baseURL string, opts ...Option) (*Client, error) {
	if baseURL == "" {
		return nil, errors.New("baseURL cannot be empty")
	}

	c := &Client{
		baseURL:  strings.TrimRight(baseURL, "/"),
		http:     &http.Client{Timeout: 30 * time.Second},
		useQueue: true,
	}

	// Auto-enable debug via env variable without changing code.
	if debugLoggingRequested() {
		opts = append(opts, WithDebugLogging(true))
	}

	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}

	if c.store == nil {
		path, err := session.DefaultPath()
		if err != nil {
			return nil, err
		}
		c.store = session.NewFileStore(path)
	}
	if c.staticToken != "" {
		if err := c.store.Save(types.Session{Token: c.staticToken}); err != nil {
			return nil, err
		}
	}
	if c.useQueue {
		c.queue = writequeue.New(c.queueCfg)
	}

	// Outermost transport: request IDs and exchange metrics.
	c.http.Transport = &instrumentedTransport{base: c.http.Transport}

	return c, nil
}

// instrumentedTransport stamps each request with an X-Request-Id and
// records exchange metrics.
type instrumentedTransport struct {
	base http.RoundTripper
}

func (t *instrumentedTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	base := t.base
	if base == nil {
		base = http.DefaultTransport
	}
	cloned := req.Clone(req.Context())
	if cloned.Header.Get("X-Request-Id") == "" {
		cloned.Header.Set("X-Request-Id", uuid.NewString())
	}
	requestsTotal.WithLabelValues(cloned.Method).Inc()
	resp, err := base.RoundTrip(cloned)
	if err != nil {
		requestErrorsTotal.WithLabelValues(cloned.Method).Inc()
	}
	return resp, err
}

// Close stops the write queue, draining pending jobs. Safe to call more
// than once.
func (c *Client) Close() error {
	if !atomic.CompareAndSwapUint32(&c.closedOnce, 0, 1) {
		return nil
	}
	if c.queue != nil {
		c.queue.Stop()
	}
	return nil
}

// Store exposes the session store so auth layers share the canonical
// read/write path.
func (c *Client) Store() SessionStore { return c.store }

// token loads the bearer token for an authenticated call, failing fast
// when no session is held.
func (c *Client) token() (string, error) {
	s, err := c.store.Load()
	if err != nil {
		return "", err
	}
	if !s.Valid() {
		return "", ErrNotAuthenticated
	}
	return s.Token, nil
}

// tokenRefused registers fn to run after the session is cleared because the
// backend rejected its token. The auth manager hooks in here so its state
// tracks the store.
func (c *Client) tokenRefused(fn func()) {
	c.hooksMu.Lock()
	defer c.hooksMu.Unlock()
	c.onTokenRefused = append(c.onTokenRefused, fn)
}

// noteAuthError inspects an authenticated call's failure. A 401/403 means
// the backend refused the held token (expired, revoked, insufficient), so
// keeping it would only produce more failures: the session is cleared and
// registered listeners are notified. Every other error passes through.
func (c *Client) noteAuthError(err error) error {
	if err == nil {
		return nil
	}
	var ae *apierr.Error
	if !errors.As(err, &ae) {
		return err
	}
	if ae.StatusCode != http.StatusUnauthorized && ae.StatusCode != http.StatusForbidden {
		return err
	}
	if cerr := c.store.Clear(); cerr != nil {
		log.Warn().Err(cerr).Msg("could not clear refused session")
	}
	c.hooksMu.Lock()
	hooks := make([]func(), len(c.onTokenRefused))
	copy(hooks, c.onTokenRefused)
	c.hooksMu.Unlock()
	for _, fn := range hooks {
		fn()
	}
	return err
}

// runWrite funnels a mutating call through the write queue under key. With
// the queue disabled the call runs inline. A canceled context abandons the
// wait and the result is discarded, never applied late.
func runWrite[T any](ctx context.Context, c *Client, key string, fn func(context.Context) (T, error)) (T, error) {
	var out T
	call := func(jctx context.Context) error {
		v, err := fn(jctx)
		if err != nil {
			return err
		}
		out = v
		return nil
	}
	if c.queue == nil {
		err := call(ctx)
		return out, c.noteAuthError(err)
	}
	if err := c.queue.Do(ctx, key, call); err != nil {
		var zero T
		return zero, c.noteAuthError(err)
	}
	return out, nil
}

// --------------------------------------------------------------------
// Auth and account operations - delegated to internal/api
// --------------------------------------------------------------------

// Register creates a new account. Public endpoint: no bearer header is
// attached even when a session is held.
func (c *Client) Register(ctx context.Context, req RegisterRequest) (*UserProfile, error) {
	return api.Register(ctx, c.http, c.baseURL, req)
}

// Login exchanges credentials for a bearer token and user profile. It does
// not persist the session; use Auth.Login for the full lifecycle.
func (c *Client) Login(ctx context.Context, req LoginRequest) (*LoginData, error) {
	return api.Login(ctx, c.http, c.baseURL, req)
}

// --------------------------------------------------------------------
// User operations
// --------------------------------------------------------------------

// GetUserProfile retrieves the authenticated user's profile.
func (c *Client) GetUserProfile(ctx context.Context) (*UserProfile, error) {
	tok, err := c.token()
	if err != nil {
		return nil, err
	}
	u, err := api.GetProfile(ctx, c.http, c.baseURL, tok)
	return u, c.noteAuthError(err)
}

// UpdateUserProfile applies a partial update to the authenticated user's
// profile. Updates are serialized so two rapid edits cannot land out of
// order.
func (c *Client) UpdateUserProfile(ctx context.Context, req UpdateProfileRequest) (*UserProfile, error) {
	tok, err := c.token()
	if err != nil {
		return nil, err
	}
	return runWrite(ctx, c, "profile", func(jctx context.Context) (*UserProfile, error) {
		return api.UpdateProfile(jctx, c.http, c.baseURL, tok, req)
	})
}

// UpdateUser applies a partial update to an arbitrary user. Admin-only in
// practice; enforcement lives server-side.
func (c *Client) UpdateUser(ctx context.Context, userID string, req UpdateProfileRequest) (*UserProfile, error) {
	tok, err := c.token()
	if err != nil {
		return nil, err
	}
	return runWrite(ctx, c, "user/"+userID, func(jctx context.Context) (*UserProfile, error) {
		return api.UpdateUser(jctx, c.http, c.baseURL, tok, userID, req)
	})
}

// DeleteUser removes a user by ID.
func (c *Client) DeleteUser(ctx context.Context, userID string) error {
	tok, err := c.token()
	if err != nil {
		return err
	}
	_, err = runWrite(ctx, c, "user/"+userID, func(jctx context.Context) (struct{}, error) {
		return struct{}{}, api.DeleteUser(jctx, c.http, c.baseURL, tok, userID)
	})
	return err
}

// ListUsers returns every user. Public listing endpoint: no bearer header.
func (c *Client) ListUsers(ctx context.Context) ([]UserProfile, error) {
	return api.ListUsers(ctx, c.http, c.baseURL)
}

// --------------------------------------------------------------------
// Dish operations
// --------------------------------------------------------------------

// ListDishes returns every dish. Public listing endpoint.
func (c *Client) ListDishes(ctx context.Context) ([]Dish, error) {
	return api.ListDishes(ctx, c.http, c.baseURL)
}

// AddDish persists a new dish.
func (c *Client) AddDish(ctx context.Context, req AddDishRequest) (*Dish, error) {
	tok, err := c.token()
	if err != nil {
		return nil, err
	}
	return runWrite(ctx, c, "dish", func(jctx context.Context) (*Dish, error) {
		return api.AddDish(jctx, c.http, c.baseURL, tok, req)
	})
}

// UpdateDish replaces a dish's fields.
func (c *Client) UpdateDish(ctx context.Context, dishID string, req AddDishRequest) (*Dish, error) {
	tok, err := c.token()
	if err != nil {
		return nil, err
	}
	return runWrite(ctx, c, "dish/"+dishID, func(jctx context.Context) (*Dish, error) {
		return api.UpdateDish(jctx, c.http, c.baseURL, tok, dishID, req)
	})
}

// DeleteDish removes a dish by ID.
func (c *Client) DeleteDish(ctx context.Context, dishID string) error {
	tok, err := c.token()
	if err != nil {
		return err
	}
	_, err = runWrite(ctx, c, "dish/"+dishID, func(jctx context.Context) (struct{}, error) {
		return struct{}{}, api.DeleteDish(jctx, c.http, c.baseURL, tok, dishID)
	})
	return err
}

// --------------------------------------------------------------------
// Meal-plan operations
// --------------------------------------------------------------------

// ListMealPlans returns every persisted plan. Public listing endpoint.
func (c *Client) ListMealPlans(ctx context.Context) ([]MealPlan, error) {
	return api.ListMealPlans(ctx, c.http, c.baseURL)
}

// CreateMealPlan persists a day plan referencing three dishes.
func (c *Client) CreateMealPlan(ctx context.Context, req CreateMealPlanRequest) (*MealPlan, error) {
	tok, err := c.token()
	if err != nil {
		return nil, err
	}
	return runWrite(ctx, c, "meal", func(jctx context.Context) (*MealPlan, error) {
		return api.CreateMealPlan(jctx, c.http, c.baseURL, tok, req)
	})
}

// UpdateMealPlan replaces a persisted plan's fields.
func (c *Client) UpdateMealPlan(ctx context.Context, planID string, req CreateMealPlanRequest) (*MealPlan, error) {
	tok, err := c.token()
	if err != nil {
		return nil, err
	}
	return runWrite(ctx, c, "meal/"+planID, func(jctx context.Context) (*MealPlan, error) {
		return api.UpdateMealPlan(jctx, c.http, c.baseURL, tok, planID, req)
	})
}

// DeleteMealPlan removes a persisted plan by ID.
func (c *Client) DeleteMealPlan(ctx context.Context, planID string) error {
	tok, err := c.token()
	if err != nil {
		return err
	}
	_, err = runWrite(ctx, c, "meal/"+planID, func(jctx context.Context) (struct{}, error) {
		return struct{}{}, api.DeleteMealPlan(jctx, c.http, c.baseURL, tok, planID)
	})
	return err
}

// GenerateMealPlan asks the backend to generate a day plan from a health
// profile. The result is not persisted; approve meals into dishes and
// create a plan explicitly.
func (c *Client) GenerateMealPlan(ctx context.Context, req GenerateMealPlanRequest) (*GeneratedMealPlan, error) {
	tok, err := c.token()
	if err != nil {
		return nil, err
	}
	p, err := api.GenerateMealPlan(ctx, c.http, c.baseURL, tok, req)
	return p, c.noteAuthError(err)
}

// --------------------------------------------------------------------
// Recipe and grocery operations
// --------------------------------------------------------------------

// RecommendRecipes returns suggestions for the ingredients on hand.
func (c *Client) RecommendRecipes(ctx context.Context, req RecipeRecommendationRequest) ([]RecipeRecommendation, error) {
	tok, err := c.token()
	if err != nil {
		return nil, err
	}
	rs, err := api.RecommendRecipes(ctx, c.http, c.baseURL, tok, req)
	return rs, c.noteAuthError(err)
}

// GenerateGroceryList derives a shopping list from a generated meal plan.
// Calling it without a plan fails client-side with ErrNoMealPlan before any
// network I/O.
func (c *Client) GenerateGroceryList(ctx context.Context, req GroceryListRequest) ([]GroceryItem, error) {
	if req.MealPlan == nil {
		return nil, ErrNoMealPlan
	}
	tok, err := c.token()
	if err != nil {
		return nil, err
	}
	items, err := api.GenerateGroceryList(ctx, c.http, c.baseURL, tok, req)
	return items, c.noteAuthError(err)
}
