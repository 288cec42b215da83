package company

import (
	"context"
)

// CompanyRepository resolves organization configuration.
type CompanyRepository interface {
	GetByID(ctx context.Context, id string) (Company, error)

	// GetTimezoneByUserID returns the IANA timezone of the organization the
	// user belongs to.
	GetTimezoneByUserID(ctx context.Context, userID string) (string, error)
}
