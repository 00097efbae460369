package client

// Client links a user to the professional coaching them.
type Client struct {
	ID             int `json:"clientId"`
	UserID         int `json:"userId"`
	ProfessionalID int `json:"professionalId"`
}
