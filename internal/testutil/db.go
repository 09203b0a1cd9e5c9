//go:build integration

package testutil

import (
	"context"
	"database/sql"
	"testing"

	_ "github.com/lib/pq"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"

	"github.com/mwhite7112/cityform/internal/db"
)

// SetupDB starts a throwaway Postgres container, applies migrations, and
// returns an open connection. Everything is torn down with the test.
func SetupDB(t *testing.T) *sql.DB {
	t.Helper()
	ctx := context.Background()

	container, err := postgres.Run(ctx, "postgres:17-alpine",
		postgres.WithDatabase("cityform"),
		postgres.WithUsername("cityform"),
		postgres.WithPassword("cityform"),
		postgres.BasicWaitStrategies(),
	)
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = testcontainers.TerminateContainer(container)
	})

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	sqlDB, err := sql.Open("postgres", connStr)
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, sqlDB.PingContext(ctx))
	require.NoError(t, db.Migrate(sqlDB))
	return sqlDB
}
