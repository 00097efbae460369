package notify

import (
	"context"
	"encoding/json"

	"github.com/sirupsen/logrus"

	"github.com/sanaresoma/sanaresoma-backend/internal/goal"
	"github.com/sanaresoma/sanaresoma-backend/internal/user"
)

// GoalEvents turns goal creation into notification tasks.
type GoalEvents struct {
	submit Submitter
	log    logrus.FieldLogger
}

func NewGoalEvents(submit Submitter, log logrus.FieldLogger) *GoalEvents {
	return &GoalEvents{submit: submit, log: log}
}

func (e *GoalEvents) GoalCreated(ctx context.Context, g goal.Goal, owner user.User) {
	e.send(ctx, "validate_goal_input", GoalArgs{GoalID: g.ID})
	switch {
	case g.ProfessionalID != nil:
		e.send(ctx, "notify_client_about_new_goal", NewGoalArgs{
			ProfessionalID: *g.ProfessionalID,
			ClientID:       g.UserID,
			GoalID:         g.ID,
		})
	case owner.ProfessionalID != nil:
		e.send(ctx, "notify_professional_about_client_goal", ClientGoalArgs{ClientID: owner.ID, GoalID: g.ID})
	}
}

func (e *GoalEvents) send(ctx context.Context, task string, args any) {
	raw, err := json.Marshal(args)
	if err == nil {
		_, err = e.submit.Submit(ctx, task, raw)
	}
	if err != nil {
		e.log.WithError(err).WithField("task", task).Error("goal event submit failed")
	}
}
