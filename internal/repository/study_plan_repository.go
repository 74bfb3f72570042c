package repository

import (
	"database/sql"
	"fmt"
	"time"

	"studypath-be/internal/entities"
)

// StudyPlanRepository defines the interface for study plan database operations
type StudyPlanRepository interface {
	Create(userID int, subject string, hours int) (*entities.StudyPlan, error)
	FindByUserID(userID int) ([]*entities.StudyPlan, error)
	SumHoursSince(userID int, since time.Time) (int, error)
}

type studyPlanRepository struct {
	db *sql.DB
}

// NewStudyPlanRepository creates a new study plan repository
func NewStudyPlanRepository(db *sql.DB) StudyPlanRepository {
	return &studyPlanRepository{db: db}
}

// Create inserts a new study plan for a user
func (r *studyPlanRepository) Create(userID int, subject string, hours int) (*entities.StudyPlan, error) {
	query := `
		INSERT INTO study_plans (user_id, subject, hours)
		VALUES ($1, $2, $3)
		RETURNING id, user_id, subject, hours, created_at
	`

	var plan entities.StudyPlan
	err := r.db.QueryRow(query, userID, subject, hours).Scan(
		&plan.ID,
		&plan.UserID,
		&plan.Subject,
		&plan.Hours,
		&plan.CreatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("failed to create study plan: %w", err)
	}

	return &plan, nil
}

// FindByUserID returns all study plans owned by a user, newest first
func (r *studyPlanRepository) FindByUserID(userID int) ([]*entities.StudyPlan, error) {
	query := `
		SELECT id, user_id, subject, hours, created_at
		FROM study_plans
		WHERE user_id = $1
		ORDER BY created_at DESC
	`

	rows, err := r.db.Query(query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list study plans: %w", err)
	}
	defer rows.Close()

	var plans []*entities.StudyPlan
	for rows.Next() {
		var plan entities.StudyPlan
		if err := rows.Scan(
			&plan.ID,
			&plan.UserID,
			&plan.Subject,
			&plan.Hours,
			&plan.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan study plan: %w", err)
		}
		plans = append(plans, &plan)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read study plans: %w", err)
	}

	return plans, nil
}

// SumHoursSince sums the hours of a user's plans created at or after the cutoff.
// Returns 0 when no rows match.
func (r *studyPlanRepository) SumHoursSince(userID int, since time.Time) (int, error) {
	query := `
		SELECT COALESCE(SUM(hours), 0)
		FROM study_plans
		WHERE user_id = $1 AND created_at >= $2
	`

	var total int
	if err := r.db.QueryRow(query, userID, since).Scan(&total); err != nil {
		return 0, fmt.Errorf("failed to sum study plan hours: %w", err)
	}

	return total, nil
}
