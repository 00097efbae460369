package client

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestPostgresListByProfessional(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	defer db.Close()
	repo := NewPostgresRepository(db)

	rows := sqlmock.NewRows([]string{"client_id", "user_id", "professional_id"}).
		AddRow(1, 10, 3).
		AddRow(4, 12, 3)
	mock.ExpectQuery("WHERE professional_id = \\$1").WithArgs(3).WillReturnRows(rows)

	list, err := repo.ListByProfessional(context.Background(), 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(list) != 2 || list[1].UserID != 12 {
		t.Fatalf("unexpected clients %+v", list)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestPostgresUpdate_MissingRow(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	defer db.Close()
	repo := NewPostgresRepository(db)

	mock.ExpectExec("UPDATE clients").WithArgs(1, 2, 5).WillReturnResult(sqlmock.NewResult(0, 0))

	if _, err := repo.Update(context.Background(), 5, Client{UserID: 1, ProfessionalID: 2}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}
