package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/punchpoint/punchpoint-backend-go/internal/domain/company"
	"github.com/punchpoint/punchpoint-backend-go/internal/pkg/database"
)

type companyRepository struct {
	db *database.DB
}

func NewCompanyRepository(db *database.DB) company.CompanyRepository {
	return &companyRepository{db: db}
}

// GetByID implements company.CompanyRepository.
func (r *companyRepository) GetByID(ctx context.Context, id string) (company.Company, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, timezone, created_at, updated_at
		FROM companies
		WHERE id = $1
	`

	var c company.Company
	err := q.QueryRow(ctx, query, id).Scan(&c.ID, &c.Name, &c.Timezone, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return company.Company{}, company.ErrCompanyNotFound
		}
		return company.Company{}, fmt.Errorf("failed to get company: %w", err)
	}

	return c, nil
}

// GetTimezoneByUserID implements company.CompanyRepository.
func (r *companyRepository) GetTimezoneByUserID(ctx context.Context, userID string) (string, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT c.timezone
		FROM companies c
		JOIN users u ON u.company_id = c.id
		WHERE u.id = $1
	`

	var timezone string
	err := q.QueryRow(ctx, query, userID).Scan(&timezone)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", company.ErrCompanyNotFound
		}
		return "", fmt.Errorf("failed to get timezone by user id: %w", err)
	}

	return timezone, nil
}
