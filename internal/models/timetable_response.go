package models

// Timetable maps weekday names to ordered task lists
type Timetable map[string][]string

// TimetableResponse wraps a generated or stored timetable
type TimetableResponse struct {
	Timetable Timetable `json:"timetable"`
}
