package professional

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/sanaresoma/sanaresoma-backend/internal/database"
)

type PostgresRepository struct {
	db *sql.DB
}

type rowScanner interface {
	Scan(dest ...any) error
}

const (
	listProfessionalsQuery = `
		SELECT professional_id, username, password, email, profession, specialty, routine_id, nutrition_id, created_at, updated_at
		FROM professionals
		ORDER BY professional_id
	`
	getProfessionalByIDQuery = `
		SELECT professional_id, username, password, email, profession, specialty, routine_id, nutrition_id, created_at, updated_at
		FROM professionals
		WHERE professional_id = $1
	`
	insertProfessionalQuery = `
		INSERT INTO professionals (username, password, email, profession, specialty, routine_id, nutrition_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING professional_id
	`
	updateProfessionalQuery = `
		UPDATE professionals
		SET username = $1,
			password = $2,
			email = $3,
			profession = $4,
			specialty = $5,
			routine_id = $6,
			nutrition_id = $7,
			updated_at = $8
		WHERE professional_id = $9
	`
	deleteProfessionalQuery = `DELETE FROM professionals WHERE professional_id = $1`
)

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) List(ctx context.Context) ([]Professional, error) {
	rows, err := r.db.QueryContext(ctx, listProfessionalsQuery)
	if err != nil {
		return nil, fmt.Errorf("list professionals: %w", err)
	}
	defer rows.Close()

	out := make([]Professional, 0)
	for rows.Next() {
		p, err := scanProfessional(rows)
		if err != nil {
			return nil, fmt.Errorf("scan professional: %w", err)
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *PostgresRepository) GetByID(ctx context.Context, id int) (Professional, error) {
	p, err := scanProfessional(r.db.QueryRowContext(ctx, getProfessionalByIDQuery, id))
	if errors.Is(err, sql.ErrNoRows) {
		return Professional{}, ErrNotFound
	}
	if err != nil {
		return Professional{}, fmt.Errorf("get professional %d: %w", id, err)
	}
	return p, nil
}

func (r *PostgresRepository) Create(ctx context.Context, p Professional) (Professional, error) {
	err := r.db.QueryRowContext(ctx, insertProfessionalQuery,
		p.Username, p.Password, p.Email, p.Profession, p.Specialty,
		database.NullInt(p.RoutineID), database.NullInt(p.NutritionID),
		p.CreatedAt, p.UpdatedAt,
	).Scan(&p.ID)
	if err != nil {
		return Professional{}, fmt.Errorf("insert professional: %w", err)
	}
	return p, nil
}

func (r *PostgresRepository) Update(ctx context.Context, id int, p Professional) (Professional, error) {
	result, err := r.db.ExecContext(ctx, updateProfessionalQuery,
		p.Username, p.Password, p.Email, p.Profession, p.Specialty,
		database.NullInt(p.RoutineID), database.NullInt(p.NutritionID),
		p.UpdatedAt, id,
	)
	if err != nil {
		return Professional{}, fmt.Errorf("update professional %d: %w", id, err)
	}
	if n, err := result.RowsAffected(); err != nil {
		return Professional{}, err
	} else if n == 0 {
		return Professional{}, ErrNotFound
	}
	return r.GetByID(ctx, id)
}

func (r *PostgresRepository) Delete(ctx context.Context, id int) error {
	result, err := r.db.ExecContext(ctx, deleteProfessionalQuery, id)
	if err != nil {
		return fmt.Errorf("delete professional %d: %w", id, err)
	}
	if n, err := result.RowsAffected(); err != nil {
		return err
	} else if n == 0 {
		return ErrNotFound
	}
	return nil
}

func scanProfessional(scanner rowScanner) (Professional, error) {
	var (
		p           Professional
		profession  sql.NullString
		specialty   sql.NullString
		routineID   sql.NullInt64
		nutritionID sql.NullInt64
		createdAt   sql.NullString
		updatedAt   sql.NullString
	)
	if err := scanner.Scan(&p.ID, &p.Username, &p.Password, &p.Email, &profession, &specialty,
		&routineID, &nutritionID, &createdAt, &updatedAt); err != nil {
		return Professional{}, err
	}
	p.Profession = profession.String
	p.Specialty = specialty.String
	p.RoutineID = database.IntPtr(routineID)
	p.NutritionID = database.IntPtr(nutritionID)
	p.CreatedAt = createdAt.String
	p.UpdatedAt = updatedAt.String
	return p, nil
}
