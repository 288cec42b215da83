package postgresql

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"

	"github.com/punchpoint/punchpoint-backend-go/internal/pkg/database"
)

type stubTx struct {
	pgx.Tx
}

func TestGetQuerierPrefersInjectedTransaction(t *testing.T) {
	db := &database.DB{}
	tx := stubTx{}

	q := GetQuerier(InjectTx(context.Background(), tx), db)
	assert.Equal(t, tx, q)
}

func TestGetQuerierFallsBackToPool(t *testing.T) {
	db := &database.DB{}

	q := GetQuerier(context.Background(), db)
	assert.Equal(t, database.Querier(db.Pool), q)
}
