package routine

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
	listRoutinesQuery = `
		SELECT routine_id, name, array_to_string(activity_ids, ',') AS activity_ids_text
		FROM routines
		ORDER BY routine_id
	`
	getRoutineByIDQuery = `
		SELECT routine_id, name, array_to_string(activity_ids, ',') AS activity_ids_text
		FROM routines
		WHERE routine_id = $1
	`
	insertRoutineQuery = `
		INSERT INTO routines (name, activity_ids)
		VALUES ($1, $2::int[])
		RETURNING routine_id
	`
	updateRoutineQuery = `
		UPDATE routines
		SET name = $1,
			activity_ids = $2::int[]
		WHERE routine_id = $3
	`
	deleteRoutineQuery = `DELETE FROM routines WHERE routine_id = $1`
)

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) List(ctx context.Context) ([]Routine, error) {
	rows, err := r.db.QueryContext(ctx, listRoutinesQuery)
	if err != nil {
		return nil, fmt.Errorf("list routines: %w", err)
	}
	defer rows.Close()

	out := make([]Routine, 0)
	for rows.Next() {
		rt, err := scanRoutine(rows)
		if err != nil {
			return nil, fmt.Errorf("scan routine: %w", err)
		}
		out = append(out, rt)
	}
	return out, rows.Err()
}

func (r *PostgresRepository) GetByID(ctx context.Context, id int) (Routine, error) {
	rt, err := scanRoutine(r.db.QueryRowContext(ctx, getRoutineByIDQuery, id))
	if errors.Is(err, sql.ErrNoRows) {
		return Routine{}, ErrNotFound
	}
	if err != nil {
		return Routine{}, fmt.Errorf("get routine %d: %w", id, err)
	}
	return rt, nil
}

func (r *PostgresRepository) Create(ctx context.Context, rt Routine) (Routine, error) {
	if rt.ActivityIDs == nil {
		rt.ActivityIDs = []int{}
	}
	if err := r.db.QueryRowContext(ctx, insertRoutineQuery, rt.Name, pq.Array(rt.ActivityIDs)).Scan(&rt.ID); err != nil {
		return Routine{}, fmt.Errorf("insert routine: %w", err)
	}
	return rt, nil
}

func (r *PostgresRepository) Update(ctx context.Context, id int, rt Routine) (Routine, error) {
	if rt.ActivityIDs == nil {
		rt.ActivityIDs = []int{}
	}
	result, err := r.db.ExecContext(ctx, updateRoutineQuery, rt.Name, pq.Array(rt.ActivityIDs), id)
	if err != nil {
		return Routine{}, fmt.Errorf("update routine %d: %w", id, err)
	}
	if n, err := result.RowsAffected(); err != nil {
		return Routine{}, err
	} else if n == 0 {
		return Routine{}, ErrNotFound
	}
	rt.ID = id
	return rt, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id int) error {
	result, err := r.db.ExecContext(ctx, deleteRoutineQuery, id)
	if err != nil {
		return fmt.Errorf("delete routine %d: %w", id, err)
	}
	if n, err := result.RowsAffected(); err != nil {
		return err
	} else if n == 0 {
		return ErrNotFound
	}
	return nil
}

func scanRoutine(scanner rowScanner) (Routine, error) {
	var (
		rt      Routine
		idsText sql.NullString
	)
	if err := scanner.Scan(&rt.ID, &rt.Name, &idsText); err != nil {
		return Routine{}, err
	}
	ids, err := database.ParseIntList(idsText)
	if err != nil {
		return Routine{}, err
	}
	rt.ActivityIDs = ids
	return rt, nil
}
