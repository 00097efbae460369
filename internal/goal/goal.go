package goal

import "strings"

type Goal struct {
	ID             int     `json:"goalId"`
	UserID         int     `json:"userId"`
	ProfessionalID *int    `json:"professionalId"`
	GoalType       string  `json:"goalType"`
	GoalValue      float64 `json:"goalValue"`
	StartDate      string  `json:"startDate"`
	EndDate        string  `json:"endDate"`
}

// Achievement is the body of GET /goals/:id/achievement.
type Achievement struct {
	GoalID   int    `json:"goalId"`
	Achieved bool   `json:"achieved"`
	Reason   string `json:"reason"`
}

// Evaluate checks a weight-based goal against the owner's current weight.
// Goal types compare case-insensitively with spaces read as underscores, so
// "Weight Loss" and "weight_loss" are the same type.
func Evaluate(g Goal, currentWeight float64) Achievement {
	a := Achievement{GoalID: g.ID}
	switch normalizeType(g.GoalType) {
	case "weight_loss", "lose_weight":
		a.Achieved = currentWeight > 0 && currentWeight <= g.GoalValue
		if a.Achieved {
			a.Reason = "current weight is at or below the target"
		} else {
			a.Reason = "current weight is above the target"
		}
	case "weight_gain", "gain_weight", "muscle_gain":
		a.Achieved = currentWeight >= g.GoalValue
		if a.Achieved {
			a.Reason = "current weight is at or above the target"
		} else {
			a.Reason = "current weight is below the target"
		}
	default:
		a.Reason = "unsupported goal type"
	}
	return a
}

func normalizeType(t string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(t)), " ", "_")
}
