package meal

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/lib/pq"
)

type PostgresRepository struct {
	db *sql.DB
}

type rowScanner interface {
	Scan(dest ...any) error
}

const (
	listMealsQuery = `
		SELECT meal_id, meal_date, meal_time, meal_type, foods
		FROM meals
		ORDER BY meal_id
	`
	listMealsByIDsQuery = `
		SELECT meal_id, meal_date, meal_time, meal_type, foods
		FROM meals
		WHERE meal_id = ANY($1::int[])
		ORDER BY meal_id
	`
	getMealByIDQuery = `
		SELECT meal_id, meal_date, meal_time, meal_type, foods
		FROM meals
		WHERE meal_id = $1
	`
	insertMealQuery = `
		INSERT INTO meals (meal_date, meal_time, meal_type, foods)
		VALUES ($1, $2, $3, $4::jsonb)
		RETURNING meal_id
	`
	updateMealQuery = `
		UPDATE meals
		SET meal_date = $1,
			meal_time = $2,
			meal_type = $3,
			foods = $4::jsonb
		WHERE meal_id = $5
	`
	deleteMealQuery = `DELETE FROM meals WHERE meal_id = $1`
)

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) List(ctx context.Context) ([]Meal, error) {
	return r.query(ctx, listMealsQuery)
}

func (r *PostgresRepository) ListByIDs(ctx context.Context, ids []int) ([]Meal, error) {
	if len(ids) == 0 {
		return []Meal{}, nil
	}
	return r.query(ctx, listMealsByIDsQuery, pq.Array(ids))
}

func (r *PostgresRepository) query(ctx context.Context, q string, args ...any) ([]Meal, error) {
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("list meals: %w", err)
	}
	defer rows.Close()

	out := make([]Meal, 0)
	for rows.Next() {
		m, err := scanMeal(rows)
		if err != nil {
			return nil, fmt.Errorf("scan meal: %w", err)
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

func (r *PostgresRepository) GetByID(ctx context.Context, id int) (Meal, error) {
	m, err := scanMeal(r.db.QueryRowContext(ctx, getMealByIDQuery, id))
	if errors.Is(err, sql.ErrNoRows) {
		return Meal{}, ErrNotFound
	}
	if err != nil {
		return Meal{}, fmt.Errorf("get meal %d: %w", id, err)
	}
	return m, nil
}

func (r *PostgresRepository) Create(ctx context.Context, m Meal) (Meal, error) {
	foodsJSON, err := encodeItems(m.Foods)
	if err != nil {
		return Meal{}, err
	}
	if err := r.db.QueryRowContext(ctx, insertMealQuery, m.MealDate, m.MealTime, m.MealType, foodsJSON).Scan(&m.ID); err != nil {
		return Meal{}, fmt.Errorf("insert meal: %w", err)
	}
	if m.Foods == nil {
		m.Foods = []Item{}
	}
	return m, nil
}

func (r *PostgresRepository) Update(ctx context.Context, id int, m Meal) (Meal, error) {
	foodsJSON, err := encodeItems(m.Foods)
	if err != nil {
		return Meal{}, err
	}
	result, err := r.db.ExecContext(ctx, updateMealQuery, m.MealDate, m.MealTime, m.MealType, foodsJSON, id)
	if err != nil {
		return Meal{}, fmt.Errorf("update meal %d: %w", id, err)
	}
	if n, err := result.RowsAffected(); err != nil {
		return Meal{}, err
	} else if n == 0 {
		return Meal{}, ErrNotFound
	}
	return r.GetByID(ctx, id)
}

func (r *PostgresRepository) Delete(ctx context.Context, id int) error {
	result, err := r.db.ExecContext(ctx, deleteMealQuery, id)
	if err != nil {
		return fmt.Errorf("delete meal %d: %w", id, err)
	}
	if n, err := result.RowsAffected(); err != nil {
		return err
	} else if n == 0 {
		return ErrNotFound
	}
	return nil
}

func encodeItems(items []Item) (string, error) {
	if items == nil {
		items = []Item{}
	}
	b, err := json.Marshal(items)
	if err != nil {
		return "", fmt.Errorf("encode meal foods: %w", err)
	}
	return string(b), nil
}

func scanMeal(scanner rowScanner) (Meal, error) {
	var (
		m         Meal
		foodsJSON []byte
	)
	if err := scanner.Scan(&m.ID, &m.MealDate, &m.MealTime, &m.MealType, &foodsJSON); err != nil {
		return Meal{}, err
	}
	m.Foods = []Item{}
	if len(foodsJSON) > 0 {
		if err := json.Unmarshal(foodsJSON, &m.Foods); err != nil {
			return Meal{}, fmt.Errorf("decode meal foods: %w", err)
		}
	}
	return m, nil
}
