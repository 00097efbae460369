package nutrition

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"github.com/sanaresoma/sanaresoma-backend/internal/database"
)

type PostgresRepository struct {
	db *sql.DB
}

type rowScanner interface {
	Scan(dest ...any) error
}

const (
	listNutritionsQuery = `
		SELECT nutrition_id, name, array_to_string(meal_ids, ',') AS meal_ids_text
		FROM nutritions
		ORDER BY nutrition_id
	`
	getNutritionByIDQuery = `
		SELECT nutrition_id, name, array_to_string(meal_ids, ',') AS meal_ids_text
		FROM nutritions
		WHERE nutrition_id = $1
	`
	insertNutritionQuery = `
		INSERT INTO nutritions (name, meal_ids)
		VALUES ($1, $2::int[])
		RETURNING nutrition_id
	`
	updateNutritionQuery = `
		UPDATE nutritions
		SET name = $1,
			meal_ids = $2::int[]
		WHERE nutrition_id = $3
	`
	deleteNutritionQuery = `DELETE FROM nutritions WHERE nutrition_id = $1`
)

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) List(ctx context.Context) ([]Nutrition, error) {
	rows, err := r.db.QueryContext(ctx, listNutritionsQuery)
	if err != nil {
		return nil, fmt.Errorf("list nutritions: %w", err)
	}
	defer rows.Close()

	out := make([]Nutrition, 0)
	for rows.Next() {
		p, err := scanNutrition(rows)
		if err != nil {
			return nil, fmt.Errorf("scan nutrition: %w", err)
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *PostgresRepository) GetByID(ctx context.Context, id int) (Nutrition, error) {
	p, err := scanNutrition(r.db.QueryRowContext(ctx, getNutritionByIDQuery, id))
	if errors.Is(err, sql.ErrNoRows) {
		return Nutrition{}, ErrNotFound
	}
	if err != nil {
		return Nutrition{}, fmt.Errorf("get nutrition %d: %w", id, err)
	}
	return p, nil
}

func (r *PostgresRepository) Create(ctx context.Context, p Nutrition) (Nutrition, error) {
	if p.MealIDs == nil {
		p.MealIDs = []int{}
	}
	if err := r.db.QueryRowContext(ctx, insertNutritionQuery, p.Name, pq.Array(p.MealIDs)).Scan(&p.ID); err != nil {
		return Nutrition{}, fmt.Errorf("insert nutrition: %w", err)
	}
	return p, nil
}

func (r *PostgresRepository) Update(ctx context.Context, id int, p Nutrition) (Nutrition, error) {
	if p.MealIDs == nil {
		p.MealIDs = []int{}
	}
	result, err := r.db.ExecContext(ctx, updateNutritionQuery, p.Name, pq.Array(p.MealIDs), id)
	if err != nil {
		return Nutrition{}, fmt.Errorf("update nutrition %d: %w", id, err)
	}
	if n, err := result.RowsAffected(); err != nil {
		return Nutrition{}, err
	} else if n == 0 {
		return Nutrition{}, ErrNotFound
	}
	p.ID = id
	return p, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id int) error {
	result, err := r.db.ExecContext(ctx, deleteNutritionQuery, id)
	if err != nil {
		return fmt.Errorf("delete nutrition %d: %w", id, err)
	}
	if n, err := result.RowsAffected(); err != nil {
		return err
	} else if n == 0 {
		return ErrNotFound
	}
	return nil
}

func scanNutrition(scanner rowScanner) (Nutrition, error) {
	var (
		p       Nutrition
		idsText sql.NullString
	)
	if err := scanner.Scan(&p.ID, &p.Name, &idsText); err != nil {
		return Nutrition{}, err
	}
	ids, err := database.ParseIntList(idsText)
	if err != nil {
		return Nutrition{}, err
	}
	p.MealIDs = ids
	return p, nil
}
