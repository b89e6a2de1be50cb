package postgres

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"

	"github.com/oshokin/panic-button/internal/config"
)

var errTestExec = errors.New("test exec error")

// TestStatements checks the embedded schema splits into the expected statements.
func TestStatements(t *testing.T) {
	t.Parallel()

	statements := Statements()
	require.Len(t, statements, 3)
	require.Contains(t, statements[0], "CREATE TABLE IF NOT EXISTS users")
	require.Contains(t, statements[1], "CREATE TABLE IF NOT EXISTS contacts")
	require.Contains(t, statements[2], "CREATE INDEX IF NOT EXISTS contacts_user_id_idx")
}

// TestEnsureSchema applies every statement and stops at the first failure.
func TestEnsureSchema(t *testing.T) {
	t.Parallel()

	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	db := sqlx.NewDb(mockDB, "sqlmock")
	defer db.Close()

	for _, statement := range Statements() {
		mock.ExpectExec(regexp.QuoteMeta(statement)).WillReturnResult(sqlmock.NewResult(0, 0))
	}

	require.NoError(t, EnsureSchema(context.Background(), db))
	require.NoError(t, mock.ExpectationsWereMet())

	mock.ExpectExec("CREATE TABLE IF NOT EXISTS users").WillReturnError(errTestExec)
	require.ErrorIs(t, EnsureSchema(context.Background(), db), errTestExec)
}

// TestOpen_RequiresDSN rejects an empty DSN before touching the network.
func TestOpen_RequiresDSN(t *testing.T) {
	t.Parallel()

	db, err := Open(context.Background(), config.DatabaseConfig{}, time.Second)
	require.ErrorIs(t, err, errDSNRequired)
	require.Nil(t, db)
}
