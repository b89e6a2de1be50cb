package status

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/oshokin/panic-button/internal/domain/alert"
)

const (
	updateStatusQuery = `UPDATE users SET status = $1, status_updated_at = now() WHERE id = $2`

	updateStatusWithLocationQuery = `UPDATE users
SET status = $1, last_lat = $2, last_lng = $3, status_updated_at = now()
WHERE id = $4`

	selectStatusQuery = `SELECT id, status, last_lat, last_lng, status_updated_at FROM users WHERE id = $1`
)

// PostgresRepository stores the status in the users table.
type PostgresRepository struct {
	db *sqlx.DB
}

// NewPostgresRepository creates a repository on top of a shared pool.
func NewPostgresRepository(db *sqlx.DB) *PostgresRepository {
	return &PostgresRepository{
		db: db,
	}
}

// statusRow mirrors the selected users columns.
type statusRow struct {
	ID        int64           `db:"id"`
	Status    string          `db:"status"`
	LastLat   sql.NullFloat64 `db:"last_lat"`
	LastLng   sql.NullFloat64 `db:"last_lng"`
	UpdatedAt sql.NullTime    `db:"status_updated_at"`
}

// SetStatus updates the status, and the location for a safe status with a location,
// in a single statement.
func (r *PostgresRepository) SetStatus(
	ctx context.Context,
	userID int64,
	status alert.Status,
	location *alert.Location,
) error {
	var (
		result sql.Result
		err    error
	)

	if writesLocation(status, location) {
		result, err = r.db.ExecContext(ctx, updateStatusWithLocationQuery,
			string(status), location.Latitude, location.Longitude, userID)
	} else {
		result, err = r.db.ExecContext(ctx, updateStatusQuery, string(status), userID)
	}

	if err != nil {
		return fmt.Errorf("update status: %w: %w", alert.ErrStoreUnavailable, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("update status rows: %w: %w", alert.ErrStoreUnavailable, err)
	}

	if affected == 0 {
		return fmt.Errorf("update status of user %d: %w", userID, alert.ErrUserNotFound)
	}

	return nil
}

// GetStatus reads the status and last known location of a user.
func (r *PostgresRepository) GetStatus(ctx context.Context, userID int64) (*alert.UserStatus, error) {
	var row statusRow
	if err := r.db.GetContext(ctx, &row, selectStatusQuery, userID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("get status of user %d: %w", userID, alert.ErrUserNotFound)
		}

		return nil, fmt.Errorf("get status: %w: %w", alert.ErrStoreUnavailable, err)
	}

	result := &alert.UserStatus{
		UserID: row.ID,
		Status: alert.Status(row.Status),
	}

	if row.LastLat.Valid && row.LastLng.Valid {
		result.Location = &alert.Location{
			Latitude:  row.LastLat.Float64,
			Longitude: row.LastLng.Float64,
		}
	}

	if row.UpdatedAt.Valid {
		result.UpdatedAt = row.UpdatedAt.Time
	}

	return result, nil
}
