package user

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
)

func makeApp(seed []User) *fiber.App {
	app := fiber.New()
	NewHandler(NewService(NewInMemoryRepository(seed)).WithHashCost(bcrypt.MinCost)).RegisterRoutes(app)
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path, body string) (*http.Response, string) {
	t.Helper()
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, r)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	res, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("%s %s failed: %v", method, path, err)
	}
	b, _ := io.ReadAll(res.Body)
	return res, string(b)
}

func TestUserCRUD_RoundTrip(t *testing.T) {
	app := makeApp(nil)

	res, body := doJSON(t, app, "POST", "/users/", `{"username":"mika","password":"s3cret","email":"mika@example.com","gender":"female","height":180,"weight":75,"dateOfBirth":"1995-04-02"}`)
	if res.StatusCode != fiber.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", res.StatusCode, body)
	}
	if strings.Contains(body, "password") || strings.Contains(body, "s3cret") {
		t.Fatalf("password leaked in response: %s", body)
	}
	var created User
	if err := json.Unmarshal([]byte(body), &created); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if created.ID != 1 || created.Username != "mika" || created.DateOfBirth == nil || *created.DateOfBirth != "1995-04-02" {
		t.Fatalf("unexpected created user %+v", created)
	}

	res, body = doJSON(t, app, "GET", "/users/1", "")
	if res.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", res.StatusCode)
	}
	var got User
	_ = json.Unmarshal([]byte(body), &got)
	if got.Email != created.Email || got.Height != 180 || got.Weight != 75 {
		t.Fatalf("get returned different fields: %+v", got)
	}

	res, body = doJSON(t, app, "PUT", "/users/1", `{"username":"mika","email":"mika@example.org","height":181,"weight":74}`)
	if res.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200 on update, got %d: %s", res.StatusCode, body)
	}
	if !strings.Contains(body, "mika@example.org") {
		t.Fatalf("update not applied: %s", body)
	}

	res, _ = doJSON(t, app, "GET", "/users/", "")
	if res.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200 on list, got %d", res.StatusCode)
	}

	res, _ = doJSON(t, app, "DELETE", "/users/1", "")
	if res.StatusCode != fiber.StatusNoContent {
		t.Fatalf("expected 204, got %d", res.StatusCode)
	}
	res, body = doJSON(t, app, "GET", "/users/1", "")
	if res.StatusCode != fiber.StatusNotFound {
		t.Fatalf("expected 404 after delete, got %d", res.StatusCode)
	}
	if !strings.Contains(body, "user not found") {
		t.Fatalf("unexpected 404 body %s", body)
	}
}

func TestUserList_EmptyArray(t *testing.T) {
	app := makeApp(nil)
	_, body := doJSON(t, app, "GET", "/users", "")
	if strings.TrimSpace(body) != "[]" {
		t.Fatalf("expected empty JSON array, got %q", body)
	}
}

func TestCreateUser_Validation(t *testing.T) {
	app := makeApp(nil)
	res, body := doJSON(t, app, "POST", "/users", `{"email":"not-an-email","gender":"robot","height":-1}`)
	if res.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("expected 400, got %d", res.StatusCode)
	}

	var payload struct {
		Errors map[string]string `json:"errors"`
	}
	if err := json.Unmarshal([]byte(body), &payload); err != nil {
		t.Fatalf("decode: %v", err)
	}
	for _, field := range []string{"username", "password", "email", "gender", "height"} {
		if _, ok := payload.Errors[field]; !ok {
			t.Fatalf("expected error for %s, got %v", field, payload.Errors)
		}
	}
}

func TestUserHandler_BadIDAndMalformedBody(t *testing.T) {
	app := makeApp(nil)

	res, _ := doJSON(t, app, "GET", "/users/abc", "")
	if res.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("expected 400 for non-numeric id, got %d", res.StatusCode)
	}

	res, _ = doJSON(t, app, "POST", "/users", `{"username":`)
	if res.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("expected 400 for malformed body, got %d", res.StatusCode)
	}

	res, _ = doJSON(t, app, "PUT", "/users/42", `{"username":"x","email":"x@example.com"}`)
	if res.StatusCode != fiber.StatusNotFound {
		t.Fatalf("expected 404 updating missing user, got %d", res.StatusCode)
	}
}

func TestGetBMI(t *testing.T) {
	app := makeApp([]User{
		{ID: 1, Username: "testuser", Email: "t@example.com", Height: 180, Weight: 75},
		{ID: 2, Username: "nomeasure", Email: "n@example.com"},
	})

	res, body := doJSON(t, app, "GET", "/users/1/bmi", "")
	if res.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", res.StatusCode)
	}
	var report BMIReport
	if err := json.Unmarshal([]byte(body), &report); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if report.BMI != 23.15 {
		t.Fatalf("expected bmi 23.15, got %v", report.BMI)
	}
	if report.Category != "Normal weight" {
		t.Fatalf("unexpected category %q", report.Category)
	}

	res, _ = doJSON(t, app, "GET", "/users/2/bmi", "")
	if res.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("expected 400 without measurements, got %d", res.StatusCode)
	}

	res, _ = doJSON(t, app, "GET", "/users/9/bmi", "")
	if res.StatusCode != fiber.StatusNotFound {
		t.Fatalf("expected 404 for missing user, got %d", res.StatusCode)
	}
}
