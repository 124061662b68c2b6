package service

import (
	"fmt"
	"math"

	"github.com/nutriplan/backend/internal/types"
)

// decoder walks the generic JSON tree produced by ExtractJSON and collects
// every structural mismatch instead of stopping at the first one.
type decoder struct {
	issues []string
}

func (d *decoder) fail(path, format string, args ...any) {
	d.issues = append(d.issues, path+": "+fmt.Sprintf(format, args...))
}

func (d *decoder) err() error {
	if len(d.issues) > 0 {
		return &ValidationError{Issues: d.issues}
	}
	return nil
}

// lookup fetches a required field. A nil parent means the parent itself was
// already reported missing or mistyped, so no further issue is recorded.
func (d *decoder) lookup(parent map[string]any, key, path string) (any, bool) {
	if parent == nil {
		return nil, false
	}
	value, ok := parent[key]
	if !ok {
		d.fail(path, "required field is missing")
		return nil, false
	}
	return value, true
}

func (d *decoder) object(parent map[string]any, key, path string) map[string]any {
	value, ok := d.lookup(parent, key, path)
	if !ok {
		return nil
	}
	obj, ok := value.(map[string]any)
	if !ok {
		d.fail(path, "expected an object, got %T", value)
		return nil
	}
	return obj
}

func (d *decoder) str(parent map[string]any, key, path string) string {
	value, ok := d.lookup(parent, key, path)
	if !ok {
		return ""
	}
	s, ok := value.(string)
	if !ok {
		d.fail(path, "expected a string, got %T", value)
		return ""
	}
	return s
}

// integer accepts JSON numbers with no fractional part. Strings and
// everything else are rejected.
func (d *decoder) integer(parent map[string]any, key, path string) int {
	value, ok := d.lookup(parent, key, path)
	if !ok {
		return 0
	}
	n, ok := value.(float64)
	if !ok {
		d.fail(path, "expected an integer, got %T", value)
		return 0
	}
	if n != math.Trunc(n) {
		d.fail(path, "expected an integer, got %v", n)
		return 0
	}
	return int(n)
}

func (d *decoder) number(parent map[string]any, key, path string) float64 {
	value, ok := d.lookup(parent, key, path)
	if !ok {
		return 0
	}
	n, ok := value.(float64)
	if !ok {
		d.fail(path, "expected a number, got %T", value)
		return 0
	}
	return n
}

func (d *decoder) stringList(parent map[string]any, key, path string) []string {
	value, ok := d.lookup(parent, key, path)
	if !ok {
		return nil
	}
	list, ok := value.([]any)
	if !ok {
		d.fail(path, "expected a list, got %T", value)
		return nil
	}
	out := make([]string, 0, len(list))
	for i, element := range list {
		s, ok := element.(string)
		if !ok {
			d.fail(fmt.Sprintf("%s[%d]", path, i), "expected a string, got %T", element)
			continue
		}
		out = append(out, s)
	}
	return out
}

func (d *decoder) meal(parent map[string]any, key, path string) types.MealItems {
	obj := d.object(parent, key, path)
	return types.MealItems{
		Items:    d.stringList(obj, "items", path+".items"),
		Calories: d.integer(obj, "calories", path+".calories"),
	}
}

// DecodeDietPlanResponse validates the parsed model output against the diet
// plan response shape. Every required field must be present with the right
// type; all mismatches are reported together in one ValidationError.
func DecodeDietPlanResponse(raw map[string]any) (*types.DietPlanResponse, error) {
	d := &decoder{}

	plan := d.object(raw, "daily_plan", "daily_plan")
	meals := d.object(plan, "meals", "daily_plan.meals")

	resp := &types.DietPlanResponse{
		DailyPlan: types.DailyPlan{
			TotalCalories: d.integer(plan, "total_calories", "daily_plan.total_calories"),
			Meals: types.Meals{
				Breakfast: d.meal(meals, "breakfast", "daily_plan.meals.breakfast"),
				Lunch:     d.meal(meals, "lunch", "daily_plan.meals.lunch"),
				Dinner:    d.meal(meals, "dinner", "daily_plan.meals.dinner"),
			},
			Snacks: d.stringList(plan, "snacks", "daily_plan.snacks"),
		},
	}

	if err := d.err(); err != nil {
		return nil, err
	}
	return resp, nil
}

// DecodeNutritionResponse validates the parsed model output against the
// nutrition breakdown response shape.
func DecodeNutritionResponse(raw map[string]any) (*types.NutritionBreakdownResponse, error) {
	d := &decoder{}

	nutrition := d.object(raw, "meal_nutrition", "meal_nutrition")
	macros := d.object(nutrition, "macros", "meal_nutrition.macros")

	resp := &types.NutritionBreakdownResponse{
		MealNutrition: types.MealNutrition{
			TotalCalories: d.integer(nutrition, "total_calories", "meal_nutrition.total_calories"),
			Macros: types.MacroNutrients{
				Protein: d.number(macros, "protein", "meal_nutrition.macros.protein"),
				Carbs:   d.number(macros, "carbs", "meal_nutrition.macros.carbs"),
				Fat:     d.number(macros, "fat", "meal_nutrition.macros.fat"),
			},
		},
	}

	if value, ok := d.lookup(nutrition, "breakdown", "meal_nutrition.breakdown"); ok {
		list, isList := value.([]any)
		if !isList {
			d.fail("meal_nutrition.breakdown", "expected a list, got %T", value)
		}
		for i, element := range list {
			path := fmt.Sprintf("meal_nutrition.breakdown[%d]", i)
			obj, isObj := element.(map[string]any)
			if !isObj {
				d.fail(path, "expected an object, got %T", element)
				continue
			}
			resp.MealNutrition.Breakdown = append(resp.MealNutrition.Breakdown, types.NutritionBreakdown{
				Item:     d.str(obj, "item", path+".item"),
				Calories: d.integer(obj, "calories", path+".calories"),
				Protein:  d.number(obj, "protein", path+".protein"),
				Carbs:    d.number(obj, "carbs", path+".carbs"),
				Fat:      d.number(obj, "fat", path+".fat"),
			})
		}
	}

	if err := d.err(); err != nil {
		return nil, err
	}
	return resp, nil
}
