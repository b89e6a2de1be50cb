package alert

import (
	"fmt"
	"strings"
	"time"
)

// Status is the user's declared state.
type Status string

const (
	// StatusUnset is the state of a user who never triggered anything.
	StatusUnset Status = "unset"
	// StatusSafe declares that the user is safe.
	StatusSafe Status = "safe"
	// StatusPanic declares an emergency.
	StatusPanic Status = "panic"
)

// ParseStatus converts user input into a triggerable status.
// Only panic and safe can be triggered; unset is never accepted.
func ParseStatus(s string) (Status, error) {
	switch Status(strings.ToLower(strings.TrimSpace(s))) {
	case StatusPanic:
		return StatusPanic, nil
	case StatusSafe:
		return StatusSafe, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidStatus, s)
	}
}

// String implements fmt.Stringer.
func (s Status) String() string {
	if s == "" {
		return string(StatusUnset)
	}

	return string(s)
}

// Identity is an already authenticated caller.
type Identity struct {
	// UserID identifies the user the session belongs to.
	UserID int64
	// Email is informational and only used in logs.
	Email string
}

// Valid reports whether the identity can be used to act on behalf of a user.
func (i *Identity) Valid() bool {
	return i != nil && i.UserID > 0
}

// UserStatus is the persisted status of a user.
type UserStatus struct {
	// UserID identifies the user.
	UserID int64
	// Status is the last declared status.
	Status Status
	// Location is the last known safe location, nil when never recorded.
	Location *Location
	// UpdatedAt is when the status last changed.
	UpdatedAt time.Time
}

// Clone returns a copy of the status that shares no pointers with the original.
func (s *UserStatus) Clone() *UserStatus {
	if s == nil {
		return nil
	}

	return &UserStatus{
		UserID:    s.UserID,
		Status:    s.Status,
		Location:  s.Location.Clone(),
		UpdatedAt: s.UpdatedAt,
	}
}

// Contact is a person notified when the user changes status.
type Contact struct {
	// ID is the store identifier of the contact.
	ID int64
	// UserID is the owner of the contact.
	UserID int64
	// Name is the display name.
	Name string
	// Phone is the address the messaging channel delivers to.
	Phone string
}

// Validate checks that the contact can be stored.
func (c *Contact) Validate() error {
	if strings.TrimSpace(c.Name) == "" || strings.TrimSpace(c.Phone) == "" {
		return ErrInvalidContact
	}

	return nil
}
