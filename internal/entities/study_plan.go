package entities

import "time"

// StudyPlan represents a single weekly study commitment for a user
type StudyPlan struct {
	ID        int       `json:"id"`
	UserID    int       `json:"user_id"`
	Subject   string    `json:"subject"`
	Hours     int       `json:"hours"`
	CreatedAt time.Time `json:"created_at"`
}
