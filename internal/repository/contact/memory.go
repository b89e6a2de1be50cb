package contact

import (
	"context"
	"sync"

	"github.com/oshokin/panic-button/internal/domain/alert"
)

// MemoryRepository keeps contacts in memory.
type MemoryRepository struct {
	// byUser maps user ids to contacts in insertion order.
	byUser map[int64][]alert.Contact
	// lastID is the id of the last stored contact.
	lastID int64
	// mu protects byUser and lastID.
	mu sync.RWMutex
}

// NewMemoryRepository creates an empty in-memory repository.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		byUser: make(map[int64][]alert.Contact),
	}
}

// List returns a copy of the user's contacts.
func (r *MemoryRepository) List(_ context.Context, userID int64) ([]alert.Contact, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	contacts := make([]alert.Contact, len(r.byUser[userID]))
	copy(contacts, r.byUser[userID])

	return contacts, nil
}

// Add stores a contact with the next id.
func (r *MemoryRepository) Add(_ context.Context, contact *alert.Contact) (*alert.Contact, error) {
	if err := contact.Validate(); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.lastID++

	stored := *contact
	stored.ID = r.lastID
	r.byUser[stored.UserID] = append(r.byUser[stored.UserID], stored)

	return &stored, nil
}
