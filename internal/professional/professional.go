package professional

// Professional is a coach or clinician who manages clients.
type Professional struct {
	ID          int    `json:"professionalId"`
	Username    string `json:"username"`
	Password    string `json:"password,omitempty"`
	Email       string `json:"email"`
	Profession  string `json:"profession"`
	Specialty   string `json:"specialty"`
	RoutineID   *int   `json:"routineId"`
	NutritionID *int   `json:"nutritionId"`
	CreatedAt   string `json:"createdAt"`
	UpdatedAt   string `json:"updatedAt"`
}

func (p Professional) Public() Professional {
	p.Password = ""
	return p
}
