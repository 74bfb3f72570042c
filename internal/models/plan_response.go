package models

// SmartPlanResponse is the deterministic breakdown returned by the smart planner
type SmartPlanResponse struct {
	Subject         string             `json:"subject"`
	WeeklyHours     int                `json:"weekly_hours"`
	Breakdown       map[string]float64 `json:"breakdown"`
	DailySuggestion string             `json:"daily_suggestion"`
	Tips            []string           `json:"tips"`
}

// AIPlanResponse wraps the free-text plan returned by the completion service
type AIPlanResponse struct {
	AIPlan string `json:"ai_plan"`
}
