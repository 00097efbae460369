package notify

import (
	"context"
	"encoding/json"
	"time"

	"github.com/sirupsen/logrus"
)

type Submitter interface {
	Submit(ctx context.Context, task string, args json.RawMessage) (Job, error)
}

// Scheduler submits every periodic task at its next fire time.
type Scheduler struct {
	tasks  []Task
	submit Submitter
	loc    *time.Location
	now    func() time.Time
	log    logrus.FieldLogger
}

func NewScheduler(tasks []Task, submit Submitter, loc *time.Location, log logrus.FieldLogger) *Scheduler {
	if loc == nil {
		loc = time.UTC
	}
	return &Scheduler{tasks: tasks, submit: submit, loc: loc, now: time.Now, log: log}
}

// next returns the earliest fire time after after and every task due then.
func (s *Scheduler) next(after time.Time) (time.Time, []Task) {
	var (
		at  time.Time
		due []Task
	)
	for _, t := range s.tasks {
		if t.Schedule == nil {
			continue
		}
		n := t.Schedule.Next(after)
		switch {
		case at.IsZero() || n.Before(at):
			at, due = n, []Task{t}
		case n.Equal(at):
			due = append(due, t)
		}
	}
	return at, due
}

// Run blocks until ctx is done.
func (s *Scheduler) Run(ctx context.Context) error {
	after := s.now().In(s.loc)
	for {
		at, due := s.next(after)
		if len(due) == 0 {
			<-ctx.Done()
			return nil
		}
		s.log.WithField("at", at.Format(time.RFC3339)).Debugf("next %d scheduled tasks", len(due))

		timer := time.NewTimer(at.Sub(s.now()))
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil
		case <-timer.C:
		}

		for _, t := range due {
			job, err := s.submit.Submit(ctx, t.Name, nil)
			entry := s.log.WithField("task", t.Name)
			if err != nil {
				entry.WithError(err).Error("scheduled submit failed")
				continue
			}
			entry.WithField("taskId", job.ID).Info("scheduled task submitted")
		}
		after = at
	}
}
