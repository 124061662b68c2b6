package types

// DietPlanRequest represents the request body for diet plan generation
type DietPlanRequest struct {
	Name              string   `json:"name" binding:"required"`
	Age               int      `json:"age" binding:"required"`
	Goal              string   `json:"goal" binding:"required"`
	Height            int      `json:"height" binding:"required"`
	CurrentWeight     float64  `json:"current_weight" binding:"required"`
	TargetWeight      float64  `json:"target_weight" binding:"required"`
	HealthConditions  []string `json:"health_conditions"`
	Region            string   `json:"region" binding:"required"`
	CuisinePreference string   `json:"cuisine_preference" binding:"required"`
	Allergies         []string `json:"allergies"`
}

// FoodItem is a single food entry with a free-form quantity, e.g. "200 gms"
// or "4 pieces".
type FoodItem struct {
	Item     string `json:"item" binding:"required"`
	Quantity string `json:"quantity" binding:"required"`
}

// NutritionRequest represents the request body for nutrition breakdown
type NutritionRequest struct {
	Foods []FoodItem `json:"foods" binding:"required"`
}
