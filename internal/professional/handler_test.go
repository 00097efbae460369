package professional

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
)

func TestProfessionalCRUD(t *testing.T) {
	app := fiber.New()
	NewHandler(NewService(NewInMemoryRepository(nil)).WithHashCost(bcrypt.MinCost)).RegisterRoutes(app)

	req := httptest.NewRequest("POST", "/professionals/", strings.NewReader(`{"username":"coach","password":"pw","email":"coach@example.com","profession":"Trainer","specialty":"Strength"}`))
	req.Header.Set("Content-Type", "application/json")
	res, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if res.StatusCode != fiber.StatusCreated {
		t.Fatalf("expected 201, got %d", res.StatusCode)
	}
	b, _ := io.ReadAll(res.Body)
	if strings.Contains(string(b), `"password"`) {
		t.Fatalf("password must not be returned: %s", b)
	}
	var created Professional
	_ = json.Unmarshal(b, &created)

	res, _ = app.Test(httptest.NewRequest("GET", "/professionals/1", nil))
	if res.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", res.StatusCode)
	}
	b, _ = io.ReadAll(res.Body)
	var got Professional
	_ = json.Unmarshal(b, &got)
	if got.Specialty != "Strength" || got.Profession != "Trainer" || got.ID != created.ID {
		t.Fatalf("unexpected professional %+v", got)
	}

	req = httptest.NewRequest("PUT", "/professionals/1", strings.NewReader(`{"username":"coach","email":"coach@example.com","specialty":"Mobility"}`))
	req.Header.Set("Content-Type", "application/json")
	res, _ = app.Test(req, -1)
	if res.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200 on update, got %d", res.StatusCode)
	}

	res, _ = app.Test(httptest.NewRequest("DELETE", "/professionals/1", nil))
	if res.StatusCode != fiber.StatusNoContent {
		t.Fatalf("expected 204, got %d", res.StatusCode)
	}
	res, _ = app.Test(httptest.NewRequest("GET", "/professionals/1", nil))
	if res.StatusCode != fiber.StatusNotFound {
		t.Fatalf("expected 404 after delete, got %d", res.StatusCode)
	}
}

func TestCreateProfessional_MissingFields(t *testing.T) {
	app := fiber.New()
	NewHandler(NewService(NewInMemoryRepository(nil)).WithHashCost(bcrypt.MinCost)).RegisterRoutes(app)

	req := httptest.NewRequest("POST", "/professionals", strings.NewReader(`{"profession":"Dietitian"}`))
	req.Header.Set("Content-Type", "application/json")
	res, _ := app.Test(req, -1)
	if res.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("expected 400, got %d", res.StatusCode)
	}
	b, _ := io.ReadAll(res.Body)
	for _, field := range []string{"username", "email", "password"} {
		if !strings.Contains(string(b), `"`+field+`"`) {
			t.Fatalf("expected %s error in %s", field, b)
		}
	}
}
