package food

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
)

var foodRowColumns = []string{"food_id", "food_name", "food_brand", "serving_size", "serving_unit",
	"calories", "protein", "carbohydrates", "fat", "sodium"}

func TestPostgresGetByID_NullBrand(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	defer db.Close()
	repo := NewPostgresRepository(db)

	rows := sqlmock.NewRows(foodRowColumns).AddRow(2, "Oats", nil, 40.0, nil, 150.0, 5.0, 27.0, 3.0, 0.0)
	mock.ExpectQuery("FROM foods").WithArgs(2).WillReturnRows(rows)

	f, err := repo.GetByID(context.Background(), 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if f.FoodBrand != nil || f.ServingUnit != "" {
		t.Fatalf("expected empty brand and unit, got %v %q", f.FoodBrand, f.ServingUnit)
	}
	if f.Calories != 150 {
		t.Fatalf("expected 150 calories, got %v", f.Calories)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestPostgresListByIDs_EmptySkipsQuery(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	defer db.Close()
	repo := NewPostgresRepository(db)

	foods, err := repo.ListByIDs(context.Background(), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(foods) != 0 {
		t.Fatalf("expected no foods, got %d", len(foods))
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestPostgresDelete_NotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	defer db.Close()
	repo := NewPostgresRepository(db)

	mock.ExpectExec("DELETE FROM foods").WithArgs(9).WillReturnResult(sqlmock.NewResult(0, 0))

	if err := repo.Delete(context.Background(), 9); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}
