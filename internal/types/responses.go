package types

// MealItems holds the food items and total calories for a single meal.
type MealItems struct {
	Items    []string `json:"items"`
	Calories int      `json:"calories"`
}

// Meals groups the three required meals of a daily plan.
type Meals struct {
	Breakfast MealItems `json:"breakfast"`
	Lunch     MealItems `json:"lunch"`
	Dinner    MealItems `json:"dinner"`
}

// DailyPlan is a single representative day of the generated diet.
type DailyPlan struct {
	TotalCalories int      `json:"total_calories"`
	Meals         Meals    `json:"meals"`
	Snacks        []string `json:"snacks"`
}

// DietPlanResponse is the response body for diet plan generation.
type DietPlanResponse struct {
	DailyPlan DailyPlan `json:"daily_plan"`
}

// MacroNutrients holds macronutrient totals in grams.
type MacroNutrients struct {
	Protein float64 `json:"protein"`
	Carbs   float64 `json:"carbs"`
	Fat     float64 `json:"fat"`
}

// NutritionBreakdown is the per-item nutritional breakdown.
type NutritionBreakdown struct {
	Item     string  `json:"item"`
	Calories int     `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
}

// MealNutrition is the complete nutrition analysis for a meal.
type MealNutrition struct {
	TotalCalories int                  `json:"total_calories"`
	Macros        MacroNutrients       `json:"macros"`
	Breakdown     []NutritionBreakdown `json:"breakdown"`
}

// NutritionBreakdownResponse is the response body for nutrition analysis.
type NutritionBreakdownResponse struct {
	MealNutrition MealNutrition `json:"meal_nutrition"`
}
