package respond

import (
	"errors"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"

	"github.com/sanaresoma/sanaresoma-backend/internal/validation"
)

var errThingNotFound = errors.New("thing not found")

func TestError_StatusMapping(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
		body   string
	}{
		{"validation", validation.Errors{"name": "name is required"}, fiber.StatusBadRequest, `"name":"name is required"`},
		{"not found", errThingNotFound, fiber.StatusNotFound, `"message":"thing not found"`},
		{"wrapped not found", errors.Join(errors.New("ctx"), errThingNotFound), fiber.StatusNotFound, "thing not found"},
		{"other", errors.New("boom"), fiber.StatusInternalServerError, `"message":"boom"`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			app := fiber.New()
			app.Get("/", func(c *fiber.Ctx) error { return Error(c, tc.err, errThingNotFound) })

			res, err := app.Test(httptest.NewRequest("GET", "/", nil))
			if err != nil {
				t.Fatalf("request failed: %v", err)
			}
			if res.StatusCode != tc.status {
				t.Fatalf("expected %d, got %d", tc.status, res.StatusCode)
			}
			b, _ := io.ReadAll(res.Body)
			if !strings.Contains(string(b), tc.body) {
				t.Fatalf("expected body to contain %s, got %s", tc.body, b)
			}
		})
	}
}

func TestID(t *testing.T) {
	app := fiber.New()
	app.Get("/things/:id", func(c *fiber.Ctx) error {
		id, ok, err := ID(c, "id")
		if !ok {
			return err
		}
		return c.JSON(fiber.Map{"id": id})
	})

	res, _ := app.Test(httptest.NewRequest("GET", "/things/12", nil))
	if res.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", res.StatusCode)
	}

	for _, p := range []string{"/things/abc", "/things/0", "/things/-3"} {
		res, _ := app.Test(httptest.NewRequest("GET", p, nil))
		if res.StatusCode != fiber.StatusBadRequest {
			t.Fatalf("%s: expected 400, got %d", p, res.StatusCode)
		}
	}
}
