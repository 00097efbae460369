package activity

import (
	"context"
	"database/sql"
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
	listActivitiesQuery = `
		SELECT activity_id, activity_type, activity_date, start_time, end_time
		FROM activities
		ORDER BY activity_id
	`
	listActivitiesByIDsQuery = `
		SELECT activity_id, activity_type, activity_date, start_time, end_time
		FROM activities
		WHERE activity_id = ANY($1::int[])
		ORDER BY activity_id
	`
	getActivityByIDQuery = `
		SELECT activity_id, activity_type, activity_date, start_time, end_time
		FROM activities
		WHERE activity_id = $1
	`
	insertActivityQuery = `
		INSERT INTO activities (activity_type, activity_date, start_time, end_time)
		VALUES ($1, $2, $3, $4)
		RETURNING activity_id
	`
	updateActivityQuery = `
		UPDATE activities
		SET activity_type = $1,
			activity_date = $2,
			start_time = $3,
			end_time = $4
		WHERE activity_id = $5
	`
	deleteActivityQuery = `DELETE FROM activities WHERE activity_id = $1`
)

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) List(ctx context.Context) ([]Activity, error) {
	return r.query(ctx, listActivitiesQuery)
}

func (r *PostgresRepository) ListByIDs(ctx context.Context, ids []int) ([]Activity, error) {
	if len(ids) == 0 {
		return []Activity{}, nil
	}
	return r.query(ctx, listActivitiesByIDsQuery, pq.Array(ids))
}

func (r *PostgresRepository) query(ctx context.Context, q string, args ...any) ([]Activity, error) {
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("list activities: %w", err)
	}
	defer rows.Close()

	out := make([]Activity, 0)
	for rows.Next() {
		a, err := scanActivity(rows)
		if err != nil {
			return nil, fmt.Errorf("scan activity: %w", err)
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func (r *PostgresRepository) GetByID(ctx context.Context, id int) (Activity, error) {
	a, err := scanActivity(r.db.QueryRowContext(ctx, getActivityByIDQuery, id))
	if errors.Is(err, sql.ErrNoRows) {
		return Activity{}, ErrNotFound
	}
	if err != nil {
		return Activity{}, fmt.Errorf("get activity %d: %w", id, err)
	}
	return a, nil
}

func (r *PostgresRepository) Create(ctx context.Context, a Activity) (Activity, error) {
	if err := r.db.QueryRowContext(ctx, insertActivityQuery,
		a.ActivityType, a.ActivityDate, a.StartTime, a.EndTime,
	).Scan(&a.ID); err != nil {
		return Activity{}, fmt.Errorf("insert activity: %w", err)
	}
	return a, nil
}

func (r *PostgresRepository) Update(ctx context.Context, id int, a Activity) (Activity, error) {
	result, err := r.db.ExecContext(ctx, updateActivityQuery,
		a.ActivityType, a.ActivityDate, a.StartTime, a.EndTime, id,
	)
	if err != nil {
		return Activity{}, fmt.Errorf("update activity %d: %w", id, err)
	}
	if n, err := result.RowsAffected(); err != nil {
		return Activity{}, err
	} else if n == 0 {
		return Activity{}, ErrNotFound
	}
	a.ID = id
	return a, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id int) error {
	result, err := r.db.ExecContext(ctx, deleteActivityQuery, id)
	if err != nil {
		return fmt.Errorf("delete activity %d: %w", id, err)
	}
	if n, err := result.RowsAffected(); err != nil {
		return err
	} else if n == 0 {
		return ErrNotFound
	}
	return nil
}

func scanActivity(scanner rowScanner) (Activity, error) {
	var a Activity
	err := scanner.Scan(&a.ID, &a.ActivityType, &a.ActivityDate, &a.StartTime, &a.EndTime)
	return a, err
}
