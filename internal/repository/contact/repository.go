package contact

import (
	"context"

	"github.com/oshokin/panic-button/internal/domain/alert"
)

// Repository defines access to a user's contacts.
type Repository interface {
	// List returns the contacts of a user ordered by id.
	// A user without contacts yields an empty slice and no error.
	List(ctx context.Context, userID int64) ([]alert.Contact, error)
	// Add stores a new contact and returns it with its id set.
	Add(ctx context.Context, contact *alert.Contact) (*alert.Contact, error)
}
