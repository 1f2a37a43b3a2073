package types

// ------------------------------
// Request Types
// ------------------------------

// RegisterRequest holds parameters for account creation. Role defaults
// server-side.
type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest holds login credentials.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UpdateProfileRequest is a partial profile update; zero-valued fields are
// omitted from the wire payload.
type UpdateProfileRequest struct {
	Name              string  `json:"name,omitempty"`
	Age               int     `json:"age,omitempty"`
	Gender            string  `json:"gender,omitempty"`
	Height            float64 `json:"height,omitempty"`
	Weight            float64 `json:"weight,omitempty"`
	ActivityLevel     string  `json:"activityLevel,omitempty"`
	DietaryPreference string  `json:"dietaryPreferance,omitempty"`
	HealthGoal        string  `json:"healthGoal,omitempty"`
	Role              string  `json:"role,omitempty"`
}

// AddDishRequest holds parameters for a new dish. The shape matches Dish
// minus the server-assigned ID.
type AddDishRequest struct {
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

// CreateMealPlanRequest holds parameters for persisting a day plan.
type CreateMealPlanRequest struct {
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

// GenerateMealPlanRequest is the health-profile subset the generator needs.
type GenerateMealPlanRequest struct {
	HealthGoal        string  `json:"healthGoal"`
	DietaryPreference string  `json:"dietaryPreferance"`
	ActivityLevel     string  `json:"activityLevel"`
	Height            float64 `json:"height"`
	Weight            float64 `json:"weight"`
	Gender            string  `json:"gender"`
	Age               int     `json:"age"`
}

// RecipeRecommendationRequest asks for suggestions from on-hand ingredients.
type RecipeRecommendationRequest struct {
	AvailableIngredients []string `json:"availableIngredients"`
	DietaryPreferences   []string `json:"dietaryPreferences,omitempty"`
	MaxPrepTime          int      `json:"maxPrepTime,omitempty"`
	CuisineType          string   `json:"cuisineType,omitempty"`
}

// GroceryListRequest derives a shopping list from a generated plan.
type GroceryListRequest struct {
	MealPlan *GeneratedMealPlan `json:"mealPlan"`
}
