package goal

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"

	"github.com/sanaresoma/sanaresoma-backend/internal/professional"
	"github.com/sanaresoma/sanaresoma-backend/internal/user"
)

type recordingListener struct {
	goals  []Goal
	owners []user.User
}

func (l *recordingListener) GoalCreated(_ context.Context, g Goal, owner user.User) {
	l.goals = append(l.goals, g)
	l.owners = append(l.owners, owner)
}

func makeApp(goals []Goal, listener Listener) *fiber.App {
	users := user.NewService(user.NewInMemoryRepository([]user.User{
		{ID: 1, Username: "testuser", Email: "t@example.com", Height: 180, Weight: 74.5},
	}))
	pros := professional.NewService(professional.NewInMemoryRepository([]professional.Professional{
		{ID: 1, Username: "coach", Email: "c@example.com"},
	}))
	svc := NewService(NewInMemoryRepository(goals), users, pros)
	if listener != nil {
		svc.WithListener(listener)
	}
	app := fiber.New()
	NewHandler(svc).RegisterRoutes(app)
	return app
}

func send(t *testing.T, app *fiber.App, method, path, body string) (*http.Response, []byte) {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	res, err := app.Test(req)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}
	b, _ := io.ReadAll(res.Body)
	return res, b
}

func TestGoalCRUD_AndListener(t *testing.T) {
	listener := &recordingListener{}
	app := makeApp(nil, listener)

	res, body := send(t, app, "POST", "/goals/", `{"userId":1,"professionalId":1,"goalType":"Weight Loss","goalValue":10,"startDate":"2025-01-01","endDate":"2025-02-01"}`)
	if res.StatusCode != fiber.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", res.StatusCode, body)
	}
	if len(listener.goals) != 1 || listener.owners[0].Username != "testuser" {
		t.Fatalf("listener not notified with owner: %+v", listener)
	}

	res, body = send(t, app, "GET", "/goals/1", "")
	if res.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", res.StatusCode)
	}
	var g Goal
	_ = json.Unmarshal(body, &g)
	if g.GoalType != "Weight Loss" || g.GoalValue != 10 || g.ProfessionalID == nil || *g.ProfessionalID != 1 {
		t.Fatalf("unexpected goal %+v", g)
	}

	res, _ = send(t, app, "PUT", "/goals/1", `{"userId":1,"goalType":"Weight Loss","goalValue":8,"startDate":"2025-01-01","endDate":"2025-03-01"}`)
	if res.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200 on update, got %d", res.StatusCode)
	}

	res, _ = send(t, app, "DELETE", "/goals/1", "")
	if res.StatusCode != fiber.StatusNoContent {
		t.Fatalf("expected 204, got %d", res.StatusCode)
	}
	res, _ = send(t, app, "GET", "/goals/1", "")
	if res.StatusCode != fiber.StatusNotFound {
		t.Fatalf("expected 404, got %d", res.StatusCode)
	}
}

func TestCreateGoal_Validation(t *testing.T) {
	app := makeApp(nil, nil)

	res, body := send(t, app, "POST", "/goals", `{"userId":99,"professionalId":5,"startDate":"2025-02-01","endDate":"2025-01-01"}`)
	if res.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("expected 400, got %d", res.StatusCode)
	}
	var payload struct {
		Errors map[string]string `json:"errors"`
	}
	_ = json.Unmarshal(body, &payload)
	for _, field := range []string{"userId", "professionalId", "goalType", "endDate"} {
		if _, ok := payload.Errors[field]; !ok {
			t.Fatalf("expected %s error, got %v", field, payload.Errors)
		}
	}
}

func TestGoalAchievement(t *testing.T) {
	app := makeApp([]Goal{
		{ID: 1, UserID: 1, GoalType: "weight_loss", GoalValue: 75, StartDate: "2025-01-01", EndDate: "2025-03-01"},
		{ID: 2, UserID: 1, GoalType: "run_marathon", GoalValue: 42, StartDate: "2025-01-01", EndDate: "2025-03-01"},
	}, nil)

	res, body := send(t, app, "GET", "/goals/1/achievement", "")
	if res.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", res.StatusCode)
	}
	var a Achievement
	_ = json.Unmarshal(body, &a)
	if !a.Achieved {
		t.Fatalf("expected achieved for 74.5kg against 75kg weight loss target: %+v", a)
	}

	_, body = send(t, app, "GET", "/goals/2/achievement", "")
	_ = json.Unmarshal(body, &a)
	if a.Achieved || a.Reason != "unsupported goal type" {
		t.Fatalf("unexpected achievement %+v", a)
	}

	res, _ = send(t, app, "GET", "/goals/3/achievement", "")
	if res.StatusCode != fiber.StatusNotFound {
		t.Fatalf("expected 404, got %d", res.StatusCode)
	}
}

func TestListGoalsForUser(t *testing.T) {
	app := makeApp([]Goal{
		{ID: 1, UserID: 1, GoalType: "weight_loss", GoalValue: 70, StartDate: "2025-01-01", EndDate: "2025-03-01"},
		{ID: 2, UserID: 2, GoalType: "weight_gain", GoalValue: 80, StartDate: "2025-01-01", EndDate: "2025-03-01"},
	}, nil)

	res, body := send(t, app, "GET", "/users/1/goals", "")
	if res.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", res.StatusCode)
	}
	var goals []Goal
	_ = json.Unmarshal(body, &goals)
	if len(goals) != 1 || goals[0].ID != 1 {
		t.Fatalf("unexpected goals %+v", goals)
	}

	res, body = send(t, app, "GET", "/users/2/goals", "")
	if res.StatusCode != fiber.StatusNotFound || !strings.Contains(string(body), "user not found") {
		t.Fatalf("expected user 404, got %d %s", res.StatusCode, body)
	}
}

func TestEvaluate(t *testing.T) {
	cases := []struct {
		goalType string
		target   float64
		weight   float64
		want     bool
	}{
		{"Weight Loss", 75, 74.5, true},
		{"weight_loss", 70, 74.5, false},
		{"lose_weight", 70, 0, false},
		{"Muscle Gain", 80, 81, true},
		{"weight_gain", 80, 79.9, false},
	}
	for _, tc := range cases {
		got := Evaluate(Goal{GoalType: tc.goalType, GoalValue: tc.target}, tc.weight)
		if got.Achieved != tc.want {
			t.Fatalf("Evaluate(%q, %v, %v) = %v, want %v", tc.goalType, tc.target, tc.weight, got.Achieved, tc.want)
		}
	}
}
