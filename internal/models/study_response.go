package models

// StudyPlanResponse represents a stored study plan returned to the client
type StudyPlanResponse struct {
	ID      int    `json:"id"`
	Subject string `json:"subject"`
	Hours   int    `json:"hours"`
}

// WeeklyProgressResponse represents the weekly progress summary
type WeeklyProgressResponse struct {
	TotalHours int `json:"total_hours"`
}
