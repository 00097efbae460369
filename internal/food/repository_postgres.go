package food

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
	foodColumns = `food_id, food_name, food_brand, serving_size, serving_unit, calories, protein, carbohydrates, fat, sodium`

	listFoodsQuery = `
		SELECT ` + foodColumns + `
		FROM foods
		ORDER BY food_id
	`
	listFoodsByIDsQuery = `
		SELECT ` + foodColumns + `
		FROM foods
		WHERE food_id = ANY($1::int[])
		ORDER BY food_id
	`
	getFoodByIDQuery = `
		SELECT ` + foodColumns + `
		FROM foods
		WHERE food_id = $1
	`
	insertFoodQuery = `
		INSERT INTO foods (food_name, food_brand, serving_size, serving_unit, calories, protein, carbohydrates, fat, sodium)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING food_id
	`
	updateFoodQuery = `
		UPDATE foods
		SET food_name = $1,
			food_brand = $2,
			serving_size = $3,
			serving_unit = $4,
			calories = $5,
			protein = $6,
			carbohydrates = $7,
			fat = $8,
			sodium = $9
		WHERE food_id = $10
	`
	deleteFoodQuery = `DELETE FROM foods WHERE food_id = $1`
)

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) List(ctx context.Context) ([]Food, error) {
	return r.query(ctx, listFoodsQuery)
}

func (r *PostgresRepository) ListByIDs(ctx context.Context, ids []int) ([]Food, error) {
	if len(ids) == 0 {
		return []Food{}, nil
	}
	return r.query(ctx, listFoodsByIDsQuery, pq.Array(ids))
}

func (r *PostgresRepository) query(ctx context.Context, q string, args ...any) ([]Food, error) {
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("list foods: %w", err)
	}
	defer rows.Close()

	out := make([]Food, 0)
	for rows.Next() {
		f, err := scanFood(rows)
		if err != nil {
			return nil, fmt.Errorf("scan food: %w", err)
		}
		out = append(out, f)
	}
	return out, rows.Err()
}

func (r *PostgresRepository) GetByID(ctx context.Context, id int) (Food, error) {
	f, err := scanFood(r.db.QueryRowContext(ctx, getFoodByIDQuery, id))
	if errors.Is(err, sql.ErrNoRows) {
		return Food{}, ErrNotFound
	}
	if err != nil {
		return Food{}, fmt.Errorf("get food %d: %w", id, err)
	}
	return f, nil
}

func (r *PostgresRepository) Create(ctx context.Context, f Food) (Food, error) {
	if err := r.db.QueryRowContext(ctx, insertFoodQuery,
		f.FoodName, database.NullString(f.FoodBrand), f.ServingSize, f.ServingUnit,
		f.Calories, f.Protein, f.Carbohydrates, f.Fat, f.Sodium,
	).Scan(&f.ID); err != nil {
		return Food{}, fmt.Errorf("insert food: %w", err)
	}
	return f, nil
}

func (r *PostgresRepository) Update(ctx context.Context, id int, f Food) (Food, error) {
	result, err := r.db.ExecContext(ctx, updateFoodQuery,
		f.FoodName, database.NullString(f.FoodBrand), f.ServingSize, f.ServingUnit,
		f.Calories, f.Protein, f.Carbohydrates, f.Fat, f.Sodium, id,
	)
	if err != nil {
		return Food{}, fmt.Errorf("update food %d: %w", id, err)
	}
	if n, err := result.RowsAffected(); err != nil {
		return Food{}, err
	} else if n == 0 {
		return Food{}, ErrNotFound
	}
	f.ID = id
	return f, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id int) error {
	result, err := r.db.ExecContext(ctx, deleteFoodQuery, id)
	if err != nil {
		return fmt.Errorf("delete food %d: %w", id, err)
	}
	if n, err := result.RowsAffected(); err != nil {
		return err
	} else if n == 0 {
		return ErrNotFound
	}
	return nil
}

func scanFood(scanner rowScanner) (Food, error) {
	var (
		f     Food
		brand sql.NullString
		unit  sql.NullString
	)
	if err := scanner.Scan(&f.ID, &f.FoodName, &brand, &f.ServingSize, &unit,
		&f.Calories, &f.Protein, &f.Carbohydrates, &f.Fat, &f.Sodium); err != nil {
		return Food{}, err
	}
	f.FoodBrand = database.StringPtr(brand)
	f.ServingUnit = unit.String
	return f, nil
}
