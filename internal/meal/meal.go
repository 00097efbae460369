package meal

import "github.com/sanaresoma/sanaresoma-backend/internal/food"

var AllowedTypes = []string{"breakfast", "lunch", "dinner", "snack"}

// Item is one food of a meal with the number of servings eaten.
type Item struct {
	FoodID   int     `json:"foodId"`
	Quantity float64 `json:"quantity"`
}

type Meal struct {
	ID       int    `json:"mealId"`
	MealDate string `json:"mealDate"`
	MealTime string `json:"mealTime"`
	MealType string `json:"mealType"`
	Foods    []Item `json:"foods"`
}

// Totals is the body of GET /meals/:id/totals.
type Totals struct {
	MealID int `json:"mealId"`
	food.Nutrients
}

// Sum adds up the nutrients of the meal's items. Items whose food is missing
// from foods are skipped.
func Sum(items []Item, foods map[int]food.Food) food.Nutrients {
	var total food.Nutrients
	for _, it := range items {
		f, ok := foods[it.FoodID]
		if !ok {
			continue
		}
		total = total.Add(f.Scaled(it.Quantity))
	}
	return total.Rounded()
}
