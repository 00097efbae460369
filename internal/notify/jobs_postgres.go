package notify

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/sanaresoma/sanaresoma-backend/internal/database"
)

type PostgresJobStore struct {
	db *sql.DB
}

const (
	saveJobQuery = `
		INSERT INTO notification_jobs (job_id, task, args, status, result, error, created_at, updated_at)
		VALUES ($1, $2, $3::jsonb, $4, $5, $6, $7, $8)
		ON CONFLICT (job_id) DO UPDATE
		SET status = EXCLUDED.status,
			result = EXCLUDED.result,
			error = EXCLUDED.error,
			updated_at = EXCLUDED.updated_at
	`
	getJobQuery = `
		SELECT job_id, task, args, status, result, error, created_at, updated_at
		FROM notification_jobs
		WHERE job_id = $1
	`
)

func NewPostgresJobStore(db *sql.DB) *PostgresJobStore {
	return &PostgresJobStore{db: db}
}

func nullText(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func (s *PostgresJobStore) Save(ctx context.Context, j Job) error {
	args := string(j.Args)
	if args == "" {
		args = "{}"
	}
	_, err := s.db.ExecContext(ctx, saveJobQuery,
		j.ID.String(), j.Task, args, string(j.Status),
		database.NullString(nullText(j.Result)), database.NullString(nullText(j.Error)),
		j.CreatedAt.UTC().Format(time.RFC3339Nano), j.UpdatedAt.UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("save job %s: %w", j.ID, err)
	}
	return nil
}

func (s *PostgresJobStore) Get(ctx context.Context, id uuid.UUID) (Job, error) {
	var (
		j                    Job
		rawID, status        string
		args                 []byte
		result, errText      sql.NullString
		createdAt, updatedAt sql.NullString
	)
	err := s.db.QueryRowContext(ctx, getJobQuery, id.String()).
		Scan(&rawID, &j.Task, &args, &status, &result, &errText, &createdAt, &updatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return Job{}, ErrJobNotFound
	}
	if err != nil {
		return Job{}, fmt.Errorf("get job %s: %w", id, err)
	}
	if j.ID, err = uuid.Parse(rawID); err != nil {
		return Job{}, fmt.Errorf("parse job id %q: %w", rawID, err)
	}
	j.Args = args
	j.Status = Status(status)
	j.Result = result.String
	j.Error = errText.String
	j.CreatedAt, _ = time.Parse(time.RFC3339Nano, createdAt.String)
	j.UpdatedAt, _ = time.Parse(time.RFC3339Nano, updatedAt.String)
	return j, nil
}
