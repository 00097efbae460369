package goal

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
	listGoalsQuery = `
		SELECT goal_id, user_id, professional_id, goal_type, goal_value, start_date, end_date
		FROM goals
		ORDER BY goal_id
	`
	listGoalsByUserQuery = `
		SELECT goal_id, user_id, professional_id, goal_type, goal_value, start_date, end_date
		FROM goals
		WHERE user_id = $1
		ORDER BY goal_id
	`
	getGoalByIDQuery = `
		SELECT goal_id, user_id, professional_id, goal_type, goal_value, start_date, end_date
		FROM goals
		WHERE goal_id = $1
	`
	insertGoalQuery = `
		INSERT INTO goals (user_id, professional_id, goal_type, goal_value, start_date, end_date)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING goal_id
	`
	updateGoalQuery = `
		UPDATE goals
		SET user_id = $1,
			professional_id = $2,
			goal_type = $3,
			goal_value = $4,
			start_date = $5,
			end_date = $6
		WHERE goal_id = $7
	`
	deleteGoalQuery = `DELETE FROM goals WHERE goal_id = $1`
)

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) List(ctx context.Context) ([]Goal, error) {
	return r.query(ctx, listGoalsQuery)
}

func (r *PostgresRepository) ListByUser(ctx context.Context, userID int) ([]Goal, error) {
	return r.query(ctx, listGoalsByUserQuery, userID)
}

func (r *PostgresRepository) query(ctx context.Context, q string, args ...any) ([]Goal, error) {
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("list goals: %w", err)
	}
	defer rows.Close()

	out := make([]Goal, 0)
	for rows.Next() {
		g, err := scanGoal(rows)
		if err != nil {
			return nil, fmt.Errorf("scan goal: %w", err)
		}
		out = append(out, g)
	}
	return out, rows.Err()
}

func (r *PostgresRepository) GetByID(ctx context.Context, id int) (Goal, error) {
	g, err := scanGoal(r.db.QueryRowContext(ctx, getGoalByIDQuery, id))
	if errors.Is(err, sql.ErrNoRows) {
		return Goal{}, ErrNotFound
	}
	if err != nil {
		return Goal{}, fmt.Errorf("get goal %d: %w", id, err)
	}
	return g, nil
}

func (r *PostgresRepository) Create(ctx context.Context, g Goal) (Goal, error) {
	err := r.db.QueryRowContext(ctx, insertGoalQuery,
		g.UserID, database.NullInt(g.ProfessionalID), g.GoalType, g.GoalValue, g.StartDate, g.EndDate,
	).Scan(&g.ID)
	if err != nil {
		return Goal{}, fmt.Errorf("insert goal: %w", err)
	}
	return g, nil
}

func (r *PostgresRepository) Update(ctx context.Context, id int, g Goal) (Goal, error) {
	result, err := r.db.ExecContext(ctx, updateGoalQuery,
		g.UserID, database.NullInt(g.ProfessionalID), g.GoalType, g.GoalValue, g.StartDate, g.EndDate, id,
	)
	if err != nil {
		return Goal{}, fmt.Errorf("update goal %d: %w", id, err)
	}
	if n, err := result.RowsAffected(); err != nil {
		return Goal{}, err
	} else if n == 0 {
		return Goal{}, ErrNotFound
	}
	g.ID = id
	return g, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id int) error {
	result, err := r.db.ExecContext(ctx, deleteGoalQuery, id)
	if err != nil {
		return fmt.Errorf("delete goal %d: %w", id, err)
	}
	if n, err := result.RowsAffected(); err != nil {
		return err
	} else if n == 0 {
		return ErrNotFound
	}
	return nil
}

func scanGoal(scanner rowScanner) (Goal, error) {
	var (
		g     Goal
		proID sql.NullInt64
	)
	if err := scanner.Scan(&g.ID, &g.UserID, &proID, &g.GoalType, &g.GoalValue, &g.StartDate, &g.EndDate); err != nil {
		return Goal{}, err
	}
	g.ProfessionalID = database.IntPtr(proID)
	return g, nil
}
