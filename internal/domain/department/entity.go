package department

import (
	"time"
)

// Department owns the shift configuration its employees are classified
// against.
type Department struct {
	ID        string      `json:"id"`
	CompanyID string      `json:"company_id"`
	Name      string      `json:"name"`
	Shift     ShiftConfig `json:"shift"`
	CreatedAt time.Time   `json:"created_at"`
	UpdatedAt time.Time   `json:"updated_at"`
}

// ShiftConfig is the expected daily window plus the grace period during
// which a signin still counts as on time. Start and End carry only the
// clock-time portion (the date part is ignored).
type ShiftConfig struct {
	StartTime          time.Time `json:"shift_start_time"`
	EndTime            time.Time `json:"shift_end_time"`
	GracePeriodMinutes int       `json:"grace_period_minutes"`
}

// DefaultShiftConfig is 09:00-17:00 with a 30 minute grace period.
func DefaultShiftConfig() ShiftConfig {
	return ShiftConfig{
		StartTime:          time.Date(0, 1, 1, 9, 0, 0, 0, time.UTC),
		EndTime:            time.Date(0, 1, 1, 17, 0, 0, 0, time.UTC),
		GracePeriodMinutes: 30,
	}
}

// StartOn anchors the shift start to the given calendar day in loc.
func (s ShiftConfig) StartOn(day time.Time, loc *time.Location) time.Time {
	return time.Date(day.Year(), day.Month(), day.Day(),
		s.StartTime.Hour(), s.StartTime.Minute(), s.StartTime.Second(), 0, loc)
}

// GraceDeadlineOn returns the latest on-time signin instant for the given
// day in loc.
func (s ShiftConfig) GraceDeadlineOn(day time.Time, loc *time.Location) time.Time {
	return s.StartOn(day, loc).Add(time.Duration(s.GracePeriodMinutes) * time.Minute)
}
