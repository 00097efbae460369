package nutrition

// Nutrition is a named meal plan.
type Nutrition struct {
	ID      int    `json:"nutritionId"`
	Name    string `json:"name"`
	MealIDs []int  `json:"mealIds"`
}
