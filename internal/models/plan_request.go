package models

// PlanRequest is the shared request body for the smart planner and the
// AI plan/timetable generators.
//
// Category is one of "theory", "problem", "practical"; difficulty is
// "easy" or "hard". Other values are accepted and passed through: the
// smart planner degrades to an empty breakdown and the AI generators
// simply embed the value in the prompt.
type PlanRequest struct {
	Subject    string `json:"subject" binding:"required"`
	Hours      int    `json:"hours" binding:"required,gt=0"`
	Category   string `json:"category" binding:"required"`
	Difficulty string `json:"difficulty" binding:"required"`
}
