package user

// User is a person tracking their own fitness and nutrition. Password is only
// accepted on input and is blanked before a user is rendered.
type User struct {
	ID             int     `json:"userId"`
	Username       string  `json:"username"`
	Password       string  `json:"password,omitempty"`
	Email          string  `json:"email"`
	Gender         string  `json:"gender"`
	Height         float64 `json:"height"`
	Weight         float64 `json:"weight"`
	DateOfBirth    *string `json:"dateOfBirth"`
	GoalID         *int    `json:"goalId"`
	RoutineID      *int    `json:"routineId"`
	NutritionID    *int    `json:"nutritionId"`
	ProfessionalID *int    `json:"professionalId"`
	CreatedAt      string  `json:"createdAt"`
	UpdatedAt      string  `json:"updatedAt"`
}

var AllowedGenders = []string{"male", "female", "other"}

// Public returns a copy safe to serialise.
func (u User) Public() User {
	u.Password = ""
	return u
}
