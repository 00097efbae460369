package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Envelope is the unit handed from a dispatcher to an executor. On the queue
// it travels as JSON.
type Envelope struct {
	TaskID uuid.UUID       `json:"taskId"`
	Task   string          `json:"task"`
	Args   json.RawMessage `json:"args,omitempty"`
}

// Executor runs envelopes and records each transition in the job store.
type Executor struct {
	registry *Registry
	runner   *Runner
	store    JobStore
	now      func() time.Time
	log      logrus.FieldLogger
}

func NewExecutor(registry *Registry, runner *Runner, store JobStore, log logrus.FieldLogger) *Executor {
	return &Executor{registry: registry, runner: runner, store: store, now: time.Now, log: log}
}

// Execute returns the task failure, if any, after it has been recorded.
func (e *Executor) Execute(ctx context.Context, env Envelope) error {
	log := e.log.WithFields(logrus.Fields{"task": env.Task, "taskId": env.TaskID})

	job, err := e.store.Get(ctx, env.TaskID)
	if err != nil {
		// The worker may not share the API's store; start a record here.
		job = Job{ID: env.TaskID, Task: env.Task, Args: env.Args, CreatedAt: e.now()}
	}
	job.Status = StatusStarted
	job.UpdatedAt = e.now()
	if err := e.store.Save(ctx, job); err != nil {
		return err
	}
	log.Info("task started")

	result, runErr := e.run(ctx, env)
	job.UpdatedAt = e.now()
	if runErr != nil {
		job.Status, job.Error = StatusFailure, runErr.Error()
		log.WithError(runErr).Error("task failed")
	} else {
		job.Status, job.Result = StatusSuccess, result
		log.WithField("result", result).Info("task finished")
	}
	if err := e.store.Save(ctx, job); err != nil {
		return err
	}
	return runErr
}

func (e *Executor) run(ctx context.Context, env Envelope) (string, error) {
	t, ok := e.registry.Lookup(env.Task)
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnknownTask, env.Task)
	}
	return e.runner.Run(ctx, t, env.Args)
}
