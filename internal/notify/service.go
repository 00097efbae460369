package notify

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// TaskInfo is one row of GET /notifications.
type TaskInfo struct {
	Task     string `json:"task"`
	Schedule string `json:"schedule"`
}

// Service accepts task submissions and answers job status queries.
type Service struct {
	registry   *Registry
	store      JobStore
	dispatcher Dispatcher
	now        func() time.Time
}

func NewService(registry *Registry, store JobStore, dispatcher Dispatcher) *Service {
	return &Service{registry: registry, store: store, dispatcher: dispatcher, now: time.Now}
}

func (s *Service) Tasks() []TaskInfo {
	all := s.registry.All()
	out := make([]TaskInfo, 0, len(all))
	for _, t := range all {
		info := TaskInfo{Task: t.Name}
		if t.Schedule != nil {
			info.Schedule = t.Schedule.String()
		}
		out = append(out, info)
	}
	return out
}

// Submit records a PENDING job and dispatches it. A dispatch failure leaves
// the job marked FAILURE and is returned.
func (s *Service) Submit(ctx context.Context, task string, args json.RawMessage) (Job, error) {
	if _, ok := s.registry.Lookup(task); !ok {
		return Job{}, ErrUnknownTask
	}
	now := s.now()
	job := Job{ID: uuid.New(), Task: task, Args: args, Status: StatusPending, CreatedAt: now, UpdatedAt: now}
	if err := s.store.Save(ctx, job); err != nil {
		return Job{}, err
	}
	if err := s.dispatcher.Dispatch(ctx, Envelope{TaskID: job.ID, Task: task, Args: args}); err != nil {
		job.Status, job.Error, job.UpdatedAt = StatusFailure, err.Error(), s.now()
		_ = s.store.Save(ctx, job)
		return Job{}, err
	}
	return job, nil
}

func (s *Service) Job(ctx context.Context, id uuid.UUID) (Job, error) {
	j, err := s.store.Get(ctx, id)
	if err != nil {
		return Job{}, err
	}
	return j.View(), nil
}
