package attendance

import (
	"time"

	"github.com/punchpoint/punchpoint-backend-go/internal/domain/attendance"
)

// MaxShiftDuration bounds any single period's contribution to totals.
// A forgotten sign-out otherwise inflates a day with an implausibly long
// period; capping keeps the record while protecting the totals.
const MaxShiftDuration = 16 * time.Hour

// capDuration returns the period's bounded duration and whether the cap was
// applied. The raw duration stays available via Period.Duration for
// diagnostics. Negative durations cannot occur after reconciliation but are
// clamped to zero anyway.
func capDuration(p attendance.Period, max time.Duration) (time.Duration, bool) {
	d := p.Duration()
	if d < 0 {
		return 0, false
	}
	if d > max {
		return max, true
	}
	return d, false
}
