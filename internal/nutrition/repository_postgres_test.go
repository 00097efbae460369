package nutrition

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestPostgresList_EmptyMealArray(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	defer db.Close()
	repo := NewPostgresRepository(db)

	rows := sqlmock.NewRows([]string{"nutrition_id", "name", "meal_ids_text"}).
		AddRow(1, "Cut", "2,4").
		AddRow(2, "Rest", nil)
	mock.ExpectQuery("FROM nutritions").WillReturnRows(rows)

	plans, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(plans) != 2 {
		t.Fatalf("expected 2 plans, got %d", len(plans))
	}
	if len(plans[0].MealIDs) != 2 || plans[0].MealIDs[1] != 4 {
		t.Fatalf("unexpected meal ids %v", plans[0].MealIDs)
	}
	if plans[1].MealIDs == nil || len(plans[1].MealIDs) != 0 {
		t.Fatalf("expected empty non-nil meal ids, got %v", plans[1].MealIDs)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}
