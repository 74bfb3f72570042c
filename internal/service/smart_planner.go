package service

import (
	"fmt"
	"math"

	"studypath-be/internal/models"
)

// GenerateSmartPlan builds a deterministic weekly breakdown from fixed
// percentage splits keyed by category, plus category- and difficulty-specific
// tips. It is a pure function with no I/O.
//
// Unrecognized categories yield an empty breakdown and unrecognized
// difficulties add no tips; inputs are not validated here beyond what the
// request binding enforces.
func GenerateSmartPlan(req *models.PlanRequest) *models.SmartPlanResponse {
	hours := float64(req.Hours)
	breakdown := map[string]float64{}
	tips := []string{} // marshals as [] rather than null when nothing matches

	switch req.Category {
	case "theory":
		breakdown = map[string]float64{
			"Reading":  round1(hours * 0.5),
			"Notes":    round1(hours * 0.3),
			"Revision": round1(hours * 0.2),
		}
		tips = append(tips, "Understand concepts before memorizing.")

	case "problem":
		breakdown = map[string]float64{
			"Concept Review": round1(hours * 0.2),
			"Practice":       round1(hours * 0.6),
			"Revision":       round1(hours * 0.2),
		}
		tips = append(tips, "Daily practice improves speed and accuracy.")

	case "practical":
		breakdown = map[string]float64{
			"Learning":           round1(hours * 0.3),
			"Hands-on":           round1(hours * 0.5),
			"Debugging & Review": round1(hours * 0.2),
		}
		tips = append(tips, "Code more than you watch tutorials.")
	}

	// Difficulty tips always follow the category tip
	switch req.Difficulty {
	case "hard":
		tips = append(tips, "Use shorter Pomodoro sessions.")
		tips = append(tips, "Add extra revision on weekends.")
	case "easy":
		tips = append(tips, "Consistency matters more than extra hours.")
	}

	daily := round1(hours / 6)

	return &models.SmartPlanResponse{
		Subject:         req.Subject,
		WeeklyHours:     req.Hours,
		Breakdown:       breakdown,
		DailySuggestion: fmt.Sprintf("%.1f hrs/day (Mon–Sat)", daily),
		Tips:            tips,
	}
}

// round1 rounds to one decimal place
func round1(x float64) float64 {
	return math.Round(x*10) / 10
}
