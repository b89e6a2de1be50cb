package contact

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"

	"github.com/oshokin/panic-button/internal/domain/alert"
)

const (
	listContactsQuery = `SELECT id, user_id, name, phone FROM contacts WHERE user_id = $1 ORDER BY id`

	insertContactQuery = `INSERT INTO contacts (user_id, name, phone) VALUES ($1, $2, $3) RETURNING id`

	// foreignKeyViolation is the Postgres SQLSTATE for a missing referenced row.
	foreignKeyViolation = "23503"
)

// PostgresRepository reads and writes the contacts table.
type PostgresRepository struct {
	db *sqlx.DB
}

// NewPostgresRepository creates a repository on top of a shared pool.
func NewPostgresRepository(db *sqlx.DB) *PostgresRepository {
	return &PostgresRepository{
		db: db,
	}
}

// contactRow mirrors the contacts table.
type contactRow struct {
	ID     int64  `db:"id"`
	UserID int64  `db:"user_id"`
	Name   string `db:"name"`
	Phone  string `db:"phone"`
}

// List returns the contacts of a user ordered by id.
func (r *PostgresRepository) List(ctx context.Context, userID int64) ([]alert.Contact, error) {
	var rows []contactRow
	if err := r.db.SelectContext(ctx, &rows, listContactsQuery, userID); err != nil {
		return nil, fmt.Errorf("list contacts: %w: %w", alert.ErrStoreUnavailable, err)
	}

	contacts := make([]alert.Contact, 0, len(rows))
	for _, row := range rows {
		contacts = append(contacts, alert.Contact{
			ID:     row.ID,
			UserID: row.UserID,
			Name:   row.Name,
			Phone:  row.Phone,
		})
	}

	return contacts, nil
}

// Add inserts a contact for its owner.
func (r *PostgresRepository) Add(ctx context.Context, contact *alert.Contact) (*alert.Contact, error) {
	if err := contact.Validate(); err != nil {
		return nil, err
	}

	var id int64

	err := r.db.QueryRowxContext(ctx, insertContactQuery, contact.UserID, contact.Name, contact.Phone).Scan(&id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == foreignKeyViolation {
			return nil, fmt.Errorf("add contact for user %d: %w", contact.UserID, alert.ErrUserNotFound)
		}

		return nil, fmt.Errorf("add contact: %w: %w", alert.ErrStoreUnavailable, err)
	}

	stored := *contact
	stored.ID = id

	return &stored, nil
}
