package models

// StudyPlanRequest represents the request body for creating a study plan
type StudyPlanRequest struct {
	Subject string `json:"subject" binding:"required"`
	Hours   int    `json:"hours" binding:"required,gt=0"`
}
