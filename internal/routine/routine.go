package routine

// Routine groups activities into a plan a user or professional follows.
type Routine struct {
	ID          int    `json:"routineId"`
	Name        string `json:"name"`
	ActivityIDs []int  `json:"activityIds"`
}
