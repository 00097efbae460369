package activity

type Activity struct {
	ID           int    `json:"activityId"`
	ActivityType string `json:"activityType"`
	ActivityDate string `json:"activityDate"`
	StartTime    string `json:"startTime"`
	EndTime      string `json:"endTime"`
}
