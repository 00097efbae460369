package notify

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"

	"github.com/sanaresoma/sanaresoma-backend/internal/goal"
	"github.com/sanaresoma/sanaresoma-backend/internal/user"
)

type submission struct {
	task string
	args string
}

type fakeSubmitter struct {
	got []submission
}

func (f *fakeSubmitter) Submit(_ context.Context, task string, args json.RawMessage) (Job, error) {
	f.got = append(f.got, submission{task: task, args: string(args)})
	return Job{Task: task, Status: StatusPending}, nil
}

func TestGoalEvents_GoalSetByProfessional(t *testing.T) {
	sub := &fakeSubmitter{}
	g := goal.Goal{ID: 5, UserID: 1, ProfessionalID: intPtr(2)}

	NewGoalEvents(sub, logrus.New()).GoalCreated(context.Background(), g, user.User{ID: 1})

	assert.Equal(t, []submission{
		{task: "validate_goal_input", args: `{"goalId":5}`},
		{task: "notify_client_about_new_goal", args: `{"professionalId":2,"clientId":1,"goalId":5}`},
	}, sub.got)
}

func TestGoalEvents_GoalSubmittedByClient(t *testing.T) {
	sub := &fakeSubmitter{}
	g := goal.Goal{ID: 6, UserID: 1}

	NewGoalEvents(sub, logrus.New()).GoalCreated(context.Background(), g, user.User{ID: 1, ProfessionalID: intPtr(3)})

	assert.Equal(t, []submission{
		{task: "validate_goal_input", args: `{"goalId":6}`},
		{task: "notify_professional_about_client_goal", args: `{"clientId":1,"goalId":6}`},
	}, sub.got)
}

func TestGoalEvents_NoProfessional(t *testing.T) {
	sub := &fakeSubmitter{}

	NewGoalEvents(sub, logrus.New()).GoalCreated(context.Background(), goal.Goal{ID: 7, UserID: 2}, user.User{ID: 2})

	assert.Len(t, sub.got, 1)
}
