package company

import (
	"time"
)

// Company holds organization-level configuration. Timezone is an IANA zone
// name; every calendar-day bucketing in the engine goes through it.
type Company struct {
	ID        string
	Name      string
	Timezone  string
	CreatedAt time.Time
	UpdatedAt time.Time
}
