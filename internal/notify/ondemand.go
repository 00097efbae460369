package notify

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/sanaresoma/sanaresoma-backend/internal/goal"
	"github.com/sanaresoma/sanaresoma-backend/internal/professional"
	"github.com/sanaresoma/sanaresoma-backend/internal/routine"
	"github.com/sanaresoma/sanaresoma-backend/internal/user"
)

// GoalArgs and friends are the JSON argument shapes of the on-demand tasks.
type GoalArgs struct {
	GoalID int `json:"goalId"`
}

type NewGoalArgs struct {
	ProfessionalID int `json:"professionalId"`
	ClientID       int `json:"clientId"`
	GoalID         int `json:"goalId"`
}

type ClientGoalArgs struct {
	ClientID int `json:"clientId"`
	GoalID   int `json:"goalId"`
}

type MessageArgs struct {
	ProfessionalID int    `json:"professionalId"`
	ClientID       int    `json:"clientId"`
	Message        string `json:"message"`
}

type CertificateArgs struct {
	UserID    int `json:"userId"`
	RoutineID int `json:"routineId"`
}

func onDemandTasks() []Task {
	return []Task{
		{Name: "notify_client_about_new_goal", compose: notifyClientAboutNewGoal},
		{Name: "notify_professional_about_client_goal", compose: notifyProfessionalAboutClientGoal},
		{Name: "notify_client_of_message", compose: notifyClientOfMessage},
		{Name: "notify_professional_of_message", compose: notifyProfessionalOfMessage},
		{Name: "routine_completion_certificate", compose: routineCompletionCertificate},
		{Name: "validate_goal_input", compose: validateGoalInput},
		{Name: "backup_database", compose: backupDatabase},
	}
}

func decodeArgs(raw json.RawMessage, dst any) error {
	if len(raw) == 0 {
		return errors.New("missing task arguments")
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return fmt.Errorf("decode task arguments: %w", err)
	}
	return nil
}

func findUser(snap *Snapshot, id int, role string) (user.User, error) {
	u, ok := snap.User(id)
	if !ok {
		return user.User{}, fmt.Errorf("%s with ID %d does not exist.", role, id)
	}
	return u, nil
}

func findProfessional(snap *Snapshot, id int) (professional.Professional, error) {
	p, ok := snap.Professional(id)
	if !ok {
		return professional.Professional{}, fmt.Errorf("Professional with ID %d does not exist.", id)
	}
	return p, nil
}

func findGoal(snap *Snapshot, id int) (goal.Goal, error) {
	g, ok := snap.Goal(id)
	if !ok {
		return goal.Goal{}, fmt.Errorf("Goal with ID %d does not exist.", id)
	}
	return g, nil
}

func findRoutine(snap *Snapshot, id int) (routine.Routine, error) {
	r, ok := snap.Routine(id)
	if !ok {
		return routine.Routine{}, fmt.Errorf("Routine with ID %d does not exist.", id)
	}
	return r, nil
}

func goalDetails(g goal.Goal) string {
	return fmt.Sprintf("- Goal Type: %s\n- Target Value: %s\n- Start Date: %s\n- End Date: %s\n\n",
		g.GoalType, num(g.GoalValue), g.StartDate, g.EndDate)
}

func notifyClientAboutNewGoal(in Input) (Output, error) {
	var args NewGoalArgs
	if err := decodeArgs(in.Args, &args); err != nil {
		return Output{}, err
	}
	p, err := findProfessional(in.Snap, args.ProfessionalID)
	if err != nil {
		return Output{}, err
	}
	cu, err := findUser(in.Snap, args.ClientID, "Client")
	if err != nil {
		return Output{}, err
	}
	g, err := findGoal(in.Snap, args.GoalID)
	if err != nil {
		return Output{}, err
	}
	body := fmt.Sprintf("Hi %s,\n\nYour professional, %s, has set a new goal for you:\n\n%s"+
		"Log in to your account to view more details.", cu.Username, p.Username, goalDetails(g))
	return Output{Messages: []Message{{To: cu.Email, Subject: "New Goal Set by Your Professional", Body: body}}}, nil
}

// notifyProfessionalAboutClientGoal mails the professional assigned to the
// client on the user record.
func notifyProfessionalAboutClientGoal(in Input) (Output, error) {
	var args ClientGoalArgs
	if err := decodeArgs(in.Args, &args); err != nil {
		return Output{}, err
	}
	cu, err := findUser(in.Snap, args.ClientID, "Client")
	if err != nil {
		return Output{}, err
	}
	g, err := findGoal(in.Snap, args.GoalID)
	if err != nil {
		return Output{}, err
	}
	if cu.ProfessionalID == nil {
		return Output{}, fmt.Errorf("Client with ID %d has no professional.", cu.ID)
	}
	p, err := findProfessional(in.Snap, *cu.ProfessionalID)
	if err != nil {
		return Output{}, err
	}
	body := fmt.Sprintf("Hi %s,\n\nYour client, %s, has submitted a new goal:\n\n%s"+
		"Log in to your account to view more details.", p.Username, cu.Username, goalDetails(g))
	return Output{Messages: []Message{{To: p.Email, Subject: "New Goal Submitted by Your Client", Body: body}}}, nil
}

func messageBody(recipient, sender, content string) string {
	return fmt.Sprintf("Hi %s,\n\nYou have received a new message from %s:\n\n\"%s\"\n\n"+
		"Please log in to your account to respond or view more details.", recipient, sender, content)
}

func notifyClientOfMessage(in Input) (Output, error) {
	var args MessageArgs
	if err := decodeArgs(in.Args, &args); err != nil {
		return Output{}, err
	}
	p, err := findProfessional(in.Snap, args.ProfessionalID)
	if err != nil {
		return Output{}, err
	}
	cu, err := findUser(in.Snap, args.ClientID, "Client")
	if err != nil {
		return Output{}, err
	}
	return Output{Messages: []Message{{
		To:      cu.Email,
		Subject: "New Message from Your Professional",
		Body:    messageBody(cu.Username, p.Username, args.Message),
	}}}, nil
}

func notifyProfessionalOfMessage(in Input) (Output, error) {
	var args MessageArgs
	if err := decodeArgs(in.Args, &args); err != nil {
		return Output{}, err
	}
	cu, err := findUser(in.Snap, args.ClientID, "Client")
	if err != nil {
		return Output{}, err
	}
	p, err := findProfessional(in.Snap, args.ProfessionalID)
	if err != nil {
		return Output{}, err
	}
	return Output{Messages: []Message{{
		To:      p.Email,
		Subject: "New Message from Your Client",
		Body:    messageBody(p.Username, cu.Username, args.Message),
	}}}, nil
}

func routineCompletionCertificate(in Input) (Output, error) {
	var args CertificateArgs
	if err := decodeArgs(in.Args, &args); err != nil {
		return Output{}, err
	}
	u, err := findUser(in.Snap, args.UserID, "User")
	if err != nil {
		return Output{}, err
	}
	rt, err := findRoutine(in.Snap, args.RoutineID)
	if err != nil {
		return Output{}, err
	}
	body := fmt.Sprintf("Hi %s,\n\nCongratulations on completing the routine \"%s\"!\n"+
		"Your dedication and hard work have paid off. Keep striving for greatness!\n\n"+
		"Attached is your certificate of completion.", u.Username, rt.Name)
	return Output{Messages: []Message{{To: u.Email, Subject: "Congratulations on Completing Your Routine!", Body: body}}}, nil
}

func validateGoalInput(in Input) (Output, error) {
	var args GoalArgs
	if err := decodeArgs(in.Args, &args); err != nil {
		return Output{}, err
	}
	g, err := findGoal(in.Snap, args.GoalID)
	if err != nil {
		return Output{}, err
	}
	if g.GoalValue <= 0 {
		return Output{Note: fmt.Sprintf("invalid goal value for goal %d", g.ID)}, nil
	}
	return Output{Note: fmt.Sprintf("goal %d is valid", g.ID)}, nil
}
