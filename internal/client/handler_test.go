package client

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"

	"github.com/sanaresoma/sanaresoma-backend/internal/professional"
	"github.com/sanaresoma/sanaresoma-backend/internal/user"
)

func newApp() *fiber.App {
	users := user.NewService(user.NewInMemoryRepository([]user.User{
		{ID: 1, Username: "alice", Email: "alice@example.com"},
		{ID: 2, Username: "bob", Email: "bob@example.com"},
	}))
	pros := professional.NewService(professional.NewInMemoryRepository([]professional.Professional{
		{ID: 1, Username: "coach", Email: "coach@example.com"},
		{ID: 2, Username: "dietitian", Email: "diet@example.com"},
	}))
	app := fiber.New()
	NewHandler(NewService(NewInMemoryRepository(nil), users, pros)).RegisterRoutes(app)
	return app
}

func sendJSON(t *testing.T, app *fiber.App, method, path, body string) (int, []byte) {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	res, err := app.Test(req)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}
	b, _ := io.ReadAll(res.Body)
	return res.StatusCode, b
}

func TestClientCRUD(t *testing.T) {
	app := newApp()

	status, body := sendJSON(t, app, "POST", "/clients/", `{"userId":1,"professionalId":1}`)
	if status != fiber.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", status, body)
	}
	var cl Client
	_ = json.Unmarshal(body, &cl)
	if cl != (Client{ID: 1, UserID: 1, ProfessionalID: 1}) {
		t.Fatalf("unexpected client %+v", cl)
	}

	status, body = sendJSON(t, app, "PUT", "/clients/1", `{"userId":2,"professionalId":2}`)
	if status != fiber.StatusOK {
		t.Fatalf("expected 200, got %d: %s", status, body)
	}
	_ = json.Unmarshal(body, &cl)
	if cl.UserID != 2 || cl.ProfessionalID != 2 {
		t.Fatalf("unexpected update %+v", cl)
	}

	status, _ = sendJSON(t, app, "DELETE", "/clients/1", "")
	if status != fiber.StatusNoContent {
		t.Fatalf("expected 204, got %d", status)
	}
	status, _ = sendJSON(t, app, "DELETE", "/clients/1", "")
	if status != fiber.StatusNotFound {
		t.Fatalf("expected 404 on second delete, got %d", status)
	}
}

func TestCreateClient_UnknownReferences(t *testing.T) {
	app := newApp()

	status, body := sendJSON(t, app, "POST", "/clients", `{"userId":9,"professionalId":0}`)
	if status != fiber.StatusBadRequest {
		t.Fatalf("expected 400, got %d", status)
	}
	var payload struct {
		Errors map[string]string `json:"errors"`
	}
	_ = json.Unmarshal(body, &payload)
	if payload.Errors["userId"] != "user does not exist" || payload.Errors["professionalId"] != "professionalId is required" {
		t.Fatalf("unexpected errors %v", payload.Errors)
	}
}

func TestListForProfessional(t *testing.T) {
	app := newApp()
	sendJSON(t, app, "POST", "/clients", `{"userId":1,"professionalId":1}`)
	sendJSON(t, app, "POST", "/clients", `{"userId":2,"professionalId":2}`)
	sendJSON(t, app, "POST", "/clients", `{"userId":2,"professionalId":1}`)

	status, body := sendJSON(t, app, "GET", "/professionals/1/clients", "")
	if status != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", status)
	}
	var list []Client
	_ = json.Unmarshal(body, &list)
	if len(list) != 2 || list[0].UserID != 1 || list[1].UserID != 2 {
		t.Fatalf("unexpected clients %+v", list)
	}

	status, body = sendJSON(t, app, "GET", "/professionals/7/clients", "")
	if status != fiber.StatusNotFound || !strings.Contains(string(body), "professional not found") {
		t.Fatalf("expected 404, got %d: %s", status, body)
	}
}

func TestCreateClient_DuplicatePair(t *testing.T) {
	app := newApp()
	if status, body := sendJSON(t, app, "POST", "/clients", `{"userId":1,"professionalId":1}`); status != fiber.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", status, body)
	}

	status, body := sendJSON(t, app, "POST", "/clients", `{"userId":1,"professionalId":1}`)
	if status != fiber.StatusBadRequest {
		t.Fatalf("expected 400 for duplicate pair, got %d: %s", status, body)
	}
	var payload struct {
		Errors map[string]string `json:"errors"`
	}
	_ = json.Unmarshal(body, &payload)
	if payload.Errors["userId"] != "user is already a client of this professional" {
		t.Fatalf("unexpected errors %v", payload.Errors)
	}

	// The same user with another professional is fine, and so is re-saving
	// the existing record unchanged.
	if status, body := sendJSON(t, app, "POST", "/clients", `{"userId":1,"professionalId":2}`); status != fiber.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", status, body)
	}
	if status, body := sendJSON(t, app, "PUT", "/clients/1", `{"userId":1,"professionalId":1}`); status != fiber.StatusOK {
		t.Fatalf("expected 200, got %d: %s", status, body)
	}
	if status, _ := sendJSON(t, app, "PUT", "/clients/2", `{"userId":1,"professionalId":1}`); status != fiber.StatusBadRequest {
		t.Fatalf("expected 400 when moving onto an existing pair, got %d", status)
	}
}
