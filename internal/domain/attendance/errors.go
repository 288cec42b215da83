package attendance

import "errors"

// Attendance domain errors
var (
	// Scan / ingestion errors
	ErrInvalidEventType = errors.New("event type must be one of: signin, signout, break_start, break_end")
	ErrEventNotFound    = errors.New("attendance event not found")

	// Adherence errors
	ErrNotEligibleForAbsence = errors.New("day is not eligible to be marked absent")
	ErrAdherenceMarkNotFound = errors.New("no absence mark exists for this day")
	ErrUnauthorized          = errors.New("unauthorized to access this attendance record")
)
