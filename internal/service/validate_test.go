package service

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validDietPlanJSON = `{
  "daily_plan": {
    "total_calories": 1800,
    "meals": {
      "breakfast": {"items": ["Oats upma", "Buttermilk"], "calories": 400},
      "lunch": {"items": ["Dal", "Brown rice", "Salad"], "calories": 650},
      "dinner": {"items": ["Paneer bhurji", "Roti"], "calories": 550}
    },
    "snacks": ["Roasted chana", "Fruit bowl"]
  }
}`

const validNutritionJSON = `{
  "meal_nutrition": {
    "total_calories": 620,
    "macros": {"protein": 28.5, "carbs": 74, "fat": 22.1},
    "breakdown": [
      {"item": "Rice (200 gms)", "calories": 260, "protein": 5.4, "carbs": 56, "fat": 0.6},
      {"item": "Eggs (4 pieces)", "calories": 360, "protein": 23.1, "carbs": 18, "fat": 21.5}
    ]
  }
}`

func parseDoc(t *testing.T, doc string) map[string]any {
	t.Helper()
	var raw map[string]any
	require.NoError(t, json.Unmarshal([]byte(doc), &raw))
	return raw
}

func TestDecodeDietPlanResponse(t *testing.T) {
	resp, err := DecodeDietPlanResponse(parseDoc(t, validDietPlanJSON))
	require.NoError(t, err)

	assert.Equal(t, 1800, resp.DailyPlan.TotalCalories)
	assert.Equal(t, []string{"Oats upma", "Buttermilk"}, resp.DailyPlan.Meals.Breakfast.Items)
	assert.Equal(t, 650, resp.DailyPlan.Meals.Lunch.Calories)
	assert.Equal(t, 550, resp.DailyPlan.Meals.Dinner.Calories)
	assert.Equal(t, []string{"Roasted chana", "Fruit bowl"}, resp.DailyPlan.Snacks)
}

func TestDecodeDietPlanRoundTrip(t *testing.T) {
	resp, err := DecodeDietPlanResponse(parseDoc(t, validDietPlanJSON))
	require.NoError(t, err)

	out, err := json.Marshal(resp)
	require.NoError(t, err)
	assert.JSONEq(t, validDietPlanJSON, string(out))
}

func TestDecodeDietPlanRejectsMissingSnacks(t *testing.T) {
	raw := parseDoc(t, validDietPlanJSON)
	delete(raw["daily_plan"].(map[string]any), "snacks")

	_, err := DecodeDietPlanResponse(raw)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "daily_plan.snacks")
}

func TestDecodeDietPlanRejectsStringCalories(t *testing.T) {
	raw := parseDoc(t, validDietPlanJSON)
	meals := raw["daily_plan"].(map[string]any)["meals"].(map[string]any)
	meals["lunch"].(map[string]any)["calories"] = "650"

	_, err := DecodeDietPlanResponse(raw)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "daily_plan.meals.lunch.calories")
}

func TestDecodeDietPlanRejectsMissingMeal(t *testing.T) {
	raw := parseDoc(t, validDietPlanJSON)
	meals := raw["daily_plan"].(map[string]any)["meals"].(map[string]any)
	delete(meals, "dinner")

	_, err := DecodeDietPlanResponse(raw)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "daily_plan.meals.dinner")
}

func TestDecodeDietPlanRejectsFractionalCalories(t *testing.T) {
	raw := parseDoc(t, validDietPlanJSON)
	raw["daily_plan"].(map[string]any)["total_calories"] = 1800.5

	_, err := DecodeDietPlanResponse(raw)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "daily_plan.total_calories")
}

func TestDecodeDietPlanAggregatesIssues(t *testing.T) {
	raw := parseDoc(t, validDietPlanJSON)
	plan := raw["daily_plan"].(map[string]any)
	delete(plan, "snacks")
	delete(plan, "total_calories")
	plan["meals"].(map[string]any)["breakfast"].(map[string]any)["items"] = "oats"

	_, err := DecodeDietPlanResponse(raw)
	require.Error(t, err)

	var validationErr *ValidationError
	require.True(t, errors.As(err, &validationErr))
	assert.Len(t, validationErr.Issues, 3)
}

func TestDecodeDietPlanRejectsNonObjectRoot(t *testing.T) {
	_, err := DecodeDietPlanResponse(map[string]any{"daily_plan": "not an object"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "daily_plan")
}

func TestDecodeNutritionResponse(t *testing.T) {
	resp, err := DecodeNutritionResponse(parseDoc(t, validNutritionJSON))
	require.NoError(t, err)

	assert.Equal(t, 620, resp.MealNutrition.TotalCalories)
	assert.Equal(t, 28.5, resp.MealNutrition.Macros.Protein)
	assert.Equal(t, 22.1, resp.MealNutrition.Macros.Fat)
	require.Len(t, resp.MealNutrition.Breakdown, 2)
	assert.Equal(t, "Rice (200 gms)", resp.MealNutrition.Breakdown[0].Item)
	assert.Equal(t, 360, resp.MealNutrition.Breakdown[1].Calories)
}

func TestDecodeNutritionRoundTrip(t *testing.T) {
	resp, err := DecodeNutritionResponse(parseDoc(t, validNutritionJSON))
	require.NoError(t, err)

	out, err := json.Marshal(resp)
	require.NoError(t, err)
	assert.JSONEq(t, validNutritionJSON, string(out))
}

func TestDecodeNutritionRejectsMissingMacro(t *testing.T) {
	raw := parseDoc(t, validNutritionJSON)
	macros := raw["meal_nutrition"].(map[string]any)["macros"].(map[string]any)
	delete(macros, "fat")

	_, err := DecodeNutritionResponse(raw)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "meal_nutrition.macros.fat")
}

func TestDecodeNutritionRejectsBadBreakdownEntry(t *testing.T) {
	raw := parseDoc(t, validNutritionJSON)
	nutrition := raw["meal_nutrition"].(map[string]any)
	nutrition["breakdown"] = []any{"not an object"}

	_, err := DecodeNutritionResponse(raw)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "meal_nutrition.breakdown[0]")
}

func TestDecodeNutritionRejectsStringCaloriesInBreakdown(t *testing.T) {
	raw := parseDoc(t, validNutritionJSON)
	breakdown := raw["meal_nutrition"].(map[string]any)["breakdown"].([]any)
	breakdown[0].(map[string]any)["calories"] = "260"

	_, err := DecodeNutritionResponse(raw)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "meal_nutrition.breakdown[0].calories")
}
