package status

import (
	"context"
	"sync"
	"time"

	"github.com/oshokin/panic-button/internal/domain/alert"
)

// MemoryRepository keeps statuses in memory.
// Every user id is known: users that never wrote a status read as unset.
type MemoryRepository struct {
	// statuses maps user ids to their current status.
	statuses map[int64]*alert.UserStatus
	// mu protects concurrent access to statuses.
	mu sync.RWMutex
}

// NewMemoryRepository creates an empty in-memory repository.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		statuses: make(map[int64]*alert.UserStatus),
	}
}

// SetStatus records the status following the same location rules as Postgres.
func (r *MemoryRepository) SetStatus(
	_ context.Context,
	userID int64,
	status alert.Status,
	location *alert.Location,
) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	current, ok := r.statuses[userID]
	if !ok {
		current = &alert.UserStatus{UserID: userID}
		r.statuses[userID] = current
	}

	current.Status = status
	current.UpdatedAt = time.Now()

	if writesLocation(status, location) {
		current.Location = location.Clone()
	}

	return nil
}

// GetStatus returns a copy of the stored status.
func (r *MemoryRepository) GetStatus(_ context.Context, userID int64) (*alert.UserStatus, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	current, ok := r.statuses[userID]
	if !ok {
		return &alert.UserStatus{
			UserID: userID,
			Status: alert.StatusUnset,
		}, nil
	}

	return current.Clone(), nil
}
