package meal

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"

	"github.com/sanaresoma/sanaresoma-backend/internal/food"
)

func newApp() *fiber.App {
	foods := food.NewService(food.NewInMemoryRepository([]food.Food{
		{ID: 1, FoodName: "Egg", Calories: 78, Protein: 6, Carbohydrates: 1, Fat: 5},
		{ID: 2, FoodName: "Toast", Calories: 80, Protein: 3, Carbohydrates: 14, Fat: 1},
	}))
	app := fiber.New()
	NewHandler(NewService(NewInMemoryRepository(nil), foods)).RegisterRoutes(app)
	return app
}

func call(t *testing.T, app *fiber.App, method, path, body string) (int, []byte) {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	res, err := app.Test(req)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}
	b, _ := io.ReadAll(res.Body)
	return res.StatusCode, b
}

func TestMealCRUD_WithFoodsAndTotals(t *testing.T) {
	app := newApp()

	status, body := call(t, app, "POST", "/meals/", `{"mealDate":"2025-03-10","mealTime":"08:15","mealType":"breakfast","foods":[{"foodId":1,"quantity":2},{"foodId":2}]}`)
	if status != fiber.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", status, body)
	}
	var m Meal
	_ = json.Unmarshal(body, &m)
	if len(m.Foods) != 2 || m.Foods[1].Quantity != 1 {
		t.Fatalf("expected default quantity 1, got %+v", m.Foods)
	}

	status, body = call(t, app, "GET", "/meals/1/totals", "")
	if status != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", status)
	}
	var totals Totals
	_ = json.Unmarshal(body, &totals)
	if totals.MealID != 1 || totals.Calories != 236 || totals.Protein != 15 || totals.Fat != 11 {
		t.Fatalf("unexpected totals %+v", totals)
	}

	status, _ = call(t, app, "PUT", "/meals/1", `{"mealDate":"2025-03-10","mealTime":"08:30","mealType":"breakfast","foods":[]}`)
	if status != fiber.StatusOK {
		t.Fatalf("expected 200 on update, got %d", status)
	}

	status, _ = call(t, app, "DELETE", "/meals/1", "")
	if status != fiber.StatusNoContent {
		t.Fatalf("expected 204, got %d", status)
	}
	status, _ = call(t, app, "GET", "/meals/1", "")
	if status != fiber.StatusNotFound {
		t.Fatalf("expected 404, got %d", status)
	}
}

func TestCreateMeal_Validation(t *testing.T) {
	app := newApp()

	status, body := call(t, app, "POST", "/meals", `{"mealDate":"2025-13-01","mealTime":"8am","mealType":"brunch","foods":[{"foodId":1},{"foodId":1},{"foodId":7}]}`)
	if status != fiber.StatusBadRequest {
		t.Fatalf("expected 400, got %d", status)
	}
	var payload struct {
		Errors map[string]string `json:"errors"`
	}
	_ = json.Unmarshal(body, &payload)
	for _, field := range []string{"mealDate", "mealTime", "mealType", "foods"} {
		if _, ok := payload.Errors[field]; !ok {
			t.Fatalf("expected %s error, got %v", field, payload.Errors)
		}
	}
}
