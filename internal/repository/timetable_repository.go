package repository

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"studypath-be/internal/entities"
)

// TimetableRepository defines the interface for AI timetable database operations
type TimetableRepository interface {
	Create(userID int, subject string, timetable json.RawMessage) (*entities.AITimetable, error)
	FindLatestByUserID(userID int) (*entities.AITimetable, error)
}

// ErrNoTimetable is returned when a user has no stored timetable yet
var ErrNoTimetable = fmt.Errorf("no timetable found")

type timetableRepository struct {
	db *sql.DB
}

// NewTimetableRepository creates a new timetable repository
func NewTimetableRepository(db *sql.DB) TimetableRepository {
	return &timetableRepository{db: db}
}

// Create inserts a newly generated timetable for a user
func (r *timetableRepository) Create(userID int, subject string, timetable json.RawMessage) (*entities.AITimetable, error) {
	query := `
		INSERT INTO ai_timetables (user_id, subject, timetable)
		VALUES ($1, $2, $3)
		RETURNING id, user_id, subject, timetable, created_at
	`

	var record entities.AITimetable
	err := r.db.QueryRow(query, userID, subject, []byte(timetable)).Scan(
		&record.ID,
		&record.UserID,
		&record.Subject,
		(*[]byte)(&record.Timetable),
		&record.CreatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("failed to create timetable: %w", err)
	}

	return &record, nil
}

// FindLatestByUserID returns the most recently generated timetable for a user
func (r *timetableRepository) FindLatestByUserID(userID int) (*entities.AITimetable, error) {
	query := `
		SELECT id, user_id, subject, timetable, created_at
		FROM ai_timetables
		WHERE user_id = $1
		ORDER BY id DESC
		LIMIT 1
	`

	var record entities.AITimetable
	err := r.db.QueryRow(query, userID).Scan(
		&record.ID,
		&record.UserID,
		&record.Subject,
		(*[]byte)(&record.Timetable),
		&record.CreatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrNoTimetable
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find timetable: %w", err)
	}

	return &record, nil
}
