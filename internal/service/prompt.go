package service

import (
	"fmt"
	"strings"

	"github.com/nutriplan/backend/internal/types"
)

const dietPlanPromptTemplate = `You are a professional nutritionist and dietitian. Generate a personalized diet plan as a JSON object.

User Profile:
- Name: %s
- Age: %d years
- Goal: %s
- Height: %d cm
- Current Weight: %v kg
- Target Weight: %v kg
- Health Conditions: %s
- Region: %s
- Cuisine Preference: %s
- Allergies: %s

Calculate appropriate daily calorie intake based on the user's goal and body metrics.

Requirements:
1. Generate a SINGLE representative daily plan (not 7 separate days)
2. Total daily calories should be appropriate for the user's goal
3. Include breakfast, lunch, and dinner with specific items
4. All food items must comply with cuisine preference and avoid allergens
5. Use regional cuisine from %s
6. Consider health conditions when selecting foods
7. Include 2-3 healthy snacks

Output Format (valid JSON only, no markdown):
{
  "daily_plan": {
    "total_calories": <number>,
    "meals": {
      "breakfast": {
        "items": ["item1", "item2"],
        "calories": <number>
      },
      "lunch": {
        "items": ["item1", "item2", "item3"],
        "calories": <number>
      },
      "dinner": {
        "items": ["item1", "item2"],
        "calories": <number>
      }
    },
    "snacks": ["snack1", "snack2"]
  }
}

Important:
- Return ONLY valid JSON, no additional text or explanation
- Make the diet plan healthy, balanced, and appropriate for the goal
- Ensure item names are clear and specific`

const nutritionPromptTemplate = `You are a professional nutritionist. Analyze the nutritional content of the following food items.

Food Items:
%s

Provide accurate nutritional breakdown including calories, protein, carbohydrates, and fats.

Output Format (valid JSON only, no markdown):
{
  "meal_nutrition": {
    "total_calories": <number>,
    "macros": {
      "protein": <number in grams>,
      "carbs": <number in grams>,
      "fat": <number in grams>
    },
    "breakdown": [
      {
        "item": "<name> (<quantity>)",
        "calories": <number>,
        "protein": <number in grams>,
        "carbs": <number in grams>,
        "fat": <number in grams>
      }
    ]
  }
}

Important:
- Return ONLY valid JSON, no additional text or explanation
- Provide realistic and accurate nutritional values
- Ensure breakdown matches individual food items`

// BuildDietPlanPrompt renders the diet plan prompt for a validated request.
// Every user-supplied field is embedded verbatim; empty list fields render
// as "None" so the model never sees an empty slot.
func BuildDietPlanPrompt(req types.DietPlanRequest) string {
	return fmt.Sprintf(dietPlanPromptTemplate,
		req.Name,
		req.Age,
		req.Goal,
		req.Height,
		req.CurrentWeight,
		req.TargetWeight,
		joinOrNone(req.HealthConditions),
		req.Region,
		req.CuisinePreference,
		joinOrNone(req.Allergies),
		req.Region,
	)
}

// BuildNutritionPrompt renders the nutrition analysis prompt, enumerating
// each food item with its quantity on its own line.
func BuildNutritionPrompt(req types.NutritionRequest) string {
	lines := make([]string, 0, len(req.Foods))
	for _, food := range req.Foods {
		lines = append(lines, fmt.Sprintf("- %s: %s", food.Item, food.Quantity))
	}
	return fmt.Sprintf(nutritionPromptTemplate, strings.Join(lines, "\n"))
}

func joinOrNone(values []string) string {
	if len(values) == 0 {
		return "None"
	}
	return strings.Join(values, ", ")
}
