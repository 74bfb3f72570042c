package entities

import (
	"encoding/json"
	"time"
)

// AITimetable represents a generated weekly timetable stored as JSONB.
// The timetable column maps weekday names to ordered task lists.
type AITimetable struct {
	ID        int             `json:"id"`
	UserID    int             `json:"user_id"`
	Subject   string          `json:"subject"`
	Timetable json.RawMessage `json:"timetable"`
	CreatedAt time.Time       `json:"created_at"`
}
