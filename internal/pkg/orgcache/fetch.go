package orgcache

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/punchpoint/punchpoint-backend-go/internal/domain/company"
	"github.com/punchpoint/punchpoint-backend-go/internal/domain/department"
)

// NewRepositoryFetch builds the upstream FetchFunc over the company and
// department repositories. Configuration problems degrade instead of
// failing: an unknown or invalid timezone falls back to UTC and a missing
// department falls back to the default shift, because a misconfigured org
// must not block metrics computation.
func NewRepositoryFetch(companies company.CompanyRepository, departments department.DepartmentRepository) FetchFunc {
	return func(ctx context.Context, userID string) (Config, error) {
		timezone := "UTC"
		tz, err := companies.GetTimezoneByUserID(ctx, userID)
		switch {
		case err == nil:
			timezone = tz
		case errors.Is(err, company.ErrCompanyNotFound):
			slog.Warn("No company for user, defaulting timezone to UTC", "user_id", userID)
		default:
			return Config{}, fmt.Errorf("failed to get timezone for user: %w", err)
		}

		loc, err := time.LoadLocation(timezone)
		if err != nil {
			slog.Warn("Invalid organization timezone, falling back to UTC",
				"user_id", userID, "timezone", timezone, "error", err)
			loc = time.UTC
			timezone = "UTC"
		}

		shift := department.DefaultShiftConfig()
		s, err := departments.GetShiftByUserID(ctx, userID)
		switch {
		case err == nil:
			shift = s
		case errors.Is(err, department.ErrDepartmentNotFound):
			slog.Warn("No department for user, using default shift config", "user_id", userID)
		default:
			return Config{}, fmt.Errorf("failed to get shift config for user: %w", err)
		}

		return Config{
			Timezone: timezone,
			Location: loc,
			Shift:    shift,
		}, nil
	}
}
