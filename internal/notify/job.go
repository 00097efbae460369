package notify

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrJobNotFound = errors.New("task not found")

type Status string

const (
	StatusPending Status = "PENDING"
	StatusStarted Status = "STARTED"
	StatusSuccess Status = "SUCCESS"
	StatusFailure Status = "FAILURE"
)

type Job struct {
	ID        uuid.UUID       `json:"taskId"`
	Task      string          `json:"task"`
	Args      json.RawMessage `json:"args"`
	Status    Status          `json:"status"`
	Result    string          `json:"result,omitempty"`
	Error     string          `json:"error,omitempty"`
	CreatedAt time.Time       `json:"createdAt"`
	UpdatedAt time.Time       `json:"updatedAt"`
}

// View drops the fields that do not belong to the job's status.
func (j Job) View() Job {
	if j.Status != StatusSuccess {
		j.Result = ""
	}
	if j.Status != StatusFailure {
		j.Error = ""
	}
	if len(j.Args) == 0 {
		j.Args = json.RawMessage("{}")
	}
	return j
}

// JobStore persists job records. Save inserts or replaces by ID.
type JobStore interface {
	Save(ctx context.Context, j Job) error
	Get(ctx context.Context, id uuid.UUID) (Job, error)
}
