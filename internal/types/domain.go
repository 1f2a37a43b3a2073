package types

// ------------------------------
// Core Domain Entities
// ------------------------------

// Role values returned by the backend.
const (
	RoleUser  = "USER"
	RoleAdmin = "ADMIN"
)

// UserProfile represents a user account. The optional fields fill in
// progressively as the user completes their health profile; the server is
// the authority for all of them.
//
// Field tags mirror the backend's wire names exactly, including the
// "dietaryPreferance" spelling.
type UserProfile struct {
	ID                string  `json:"_id"`
	Email             string  `json:"email"`
	Role              string  `json:"role"`
	Name              string  `json:"name,omitempty"`
	Age               int     `json:"age,omitempty"`
	Gender            string  `json:"gender,omitempty"`
	Height            float64 `json:"height,omitempty"`
	Weight            float64 `json:"weight,omitempty"`
	ActivityLevel     string  `json:"activityLevel,omitempty"`
	DietaryPreference string  `json:"dietaryPreferance,omitempty"`
	HealthGoal        string  `json:"healthGoal,omitempty"`
}

// IsAdmin reports whether the profile carries the admin role.
func (u *UserProfile) IsAdmin() bool { return u != nil && u.Role == RoleAdmin }

// Dish is a persisted recipe/food record with nutrition and dietary-tag
// metadata.
type Dish struct {
	ID              string   `json:"_id,omitempty"`
	Name            string   `json:"name"`
	Description     string   `json:"description"`
	Ingredients     []string `json:"ingredients"`
	Instructions    []string `json:"instructions"`
	CookTime        int      `json:"cookTime"`
	Servings        int      `json:"servings"`
	Calories        float64  `json:"calories"`
	Protein         float64  `json:"protein"`
	Carbs           float64  `json:"carbs"`
	Fat             float64  `json:"fat"`
	MealType        string   `json:"meal_type"`
	IsVegetarian    bool     `json:"is_vegetarian"`
	IsVegan         bool     `json:"is_vegan"`
	IsGlutenFree    bool     `json:"is_gluten_free"`
	IsDairyFree     bool     `json:"is_dairy_free"`
	IsKeto          bool     `json:"is_keto"`
	CuisineType     string   `json:"cuisine_type"`
	DifficultyLevel string   `json:"difficulty_level"`
	Tags            []string `json:"tags"`
}

// MealInfo is one generated meal inside a generated plan. It is not
// persisted until the caller converts it into a Dish and adds it.
type MealInfo struct {
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	Ingredients  []string `json:"ingredients"`
	Instructions []string `json:"instructions"`
	PrepTime     int      `json:"prepTime"`
	Calories     float64  `json:"calories"`
	Protein      float64  `json:"protein"`
	Carbs        float64  `json:"carbs"`
	Fat          float64  `json:"fat"`
	Servings     int      `json:"servings"`
}

// MealPlan is a persisted day plan referencing three dishes by ID. Totals
// are computed server-side and merely displayed by consumers.
type MealPlan struct {
	ID            string  `json:"_id,omitempty"`
	Date          string  `json:"date"`
	BreakfastDish string  `json:"breakfast_dish_id"`
	LunchDish     string  `json:"lunch_dish_id"`
	DinnerDish    string  `json:"dinner_dish_id"`
	TotalCalories float64 `json:"totalCalories"`
	TotalProtein  float64 `json:"totalProtein"`
	TotalCarbs    float64 `json:"totalCarbs"`
	TotalFat      float64 `json:"totalFat"`
	UserID        string  `json:"userId,omitempty"`
}

// GeneratedMealPlan is what /mealGen returns: a full day of MealInfo values
// plus totals, not yet persisted.
type GeneratedMealPlan struct {
	Date          string   `json:"date"`
	Breakfast     MealInfo `json:"breakfast"`
	Lunch         MealInfo `json:"lunch"`
	Dinner        MealInfo `json:"dinner"`
	TotalCalories float64  `json:"totalCalories"`
	TotalProtein  float64  `json:"totalProtein"`
	TotalCarbs    float64  `json:"totalCarbs"`
	TotalFat      float64  `json:"totalFat"`
}

// RecipeRecommendation is one suggestion from /recipe. Not persisted until
// explicitly approved.
type RecipeRecommendation struct {
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	Ingredients  []string `json:"ingredients"`
	Instructions []string `json:"instructions"`
	PrepTime     int      `json:"prepTime"`
	CookTime     int      `json:"cookTime"`
	Servings     int      `json:"servings"`
	Calories     float64  `json:"calories"`
	Protein      float64  `json:"protein"`
	Tags         []string `json:"tags"`
	Difficulty   string   `json:"difficulty"`
}

// GroceryItem is one derived shopping-list line. Ephemeral: never persisted
// beyond an in-memory list or a text export.
type GroceryItem struct {
	Name     string `json:"name"`
	Quantity string `json:"quantity"`
	Category string `json:"category"`
}

// Session is the client-held pair of bearer token and cached user profile.
// Token is non-empty iff the session counts as authenticated.
type Session struct {
	Token string       `json:"token"`
	User  *UserProfile `json:"user,omitempty"`
}

// Valid reports whether the session represents an authenticated identity.
func (s Session) Valid() bool { return s.Token != "" }
