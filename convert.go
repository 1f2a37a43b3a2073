package client

// Approval conversions: generation is not persistence. A generated meal or
// recipe recommendation becomes durable only when converted into a dish and
// added through the gateway.

// Meal type values the backend recognizes.
const (
	MealTypeBreakfast = "breakfast"
	MealTypeLunch     = "lunch"
	MealTypeDinner    = "dinner"
)

// AddDishRequestFromMealInfo converts one generated meal into an add-dish
// request for the given meal type.
func AddDishRequestFromMealInfo(m MealInfo, mealType string) AddDishRequest {
	return AddDishRequest{
		Name:         m.Name,
		Description:  m.Description,
		Ingredients:  m.Ingredients,
		Instructions: m.Instructions,
		CookTime:     m.PrepTime,
		Servings:     m.Servings,
		Calories:     m.Calories,
		Protein:      m.Protein,
		Carbs:        m.Carbs,
		Fat:          m.Fat,
		MealType:     mealType,
	}
}

// AddDishRequestFromRecipe converts an approved recommendation into an
// add-dish request for the given meal type.
func AddDishRequestFromRecipe(r RecipeRecommendation, mealType string) AddDishRequest {
	return AddDishRequest{
		Name:            r.Name,
		Description:     r.Description,
		Ingredients:     r.Ingredients,
		Instructions:    r.Instructions,
		CookTime:        r.CookTime,
		Servings:        r.Servings,
		Calories:        r.Calories,
		Protein:         r.Protein,
		MealType:        mealType,
		DifficultyLevel: r.Difficulty,
		Tags:            r.Tags,
	}
}
