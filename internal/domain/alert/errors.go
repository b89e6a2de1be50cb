package alert

import "errors"

var (
	// ErrUnauthenticated means the caller has no valid identity.
	ErrUnauthenticated = errors.New("unauthenticated")
	// ErrStoreUnavailable means a status or contact store could not be reached.
	ErrStoreUnavailable = errors.New("store unavailable")
	// ErrDeliveryFailure marks a failed send to a single contact.
	ErrDeliveryFailure = errors.New("delivery failure")
	// ErrUserNotFound means the identity points to a user the store does not know.
	ErrUserNotFound = errors.New("user not found")
	// ErrInvalidStatus is returned for status values other than panic or safe.
	ErrInvalidStatus = errors.New("status must be panic or safe")
	// ErrInvalidLocation is returned for partial or out-of-range coordinates.
	ErrInvalidLocation = errors.New("invalid location")
	// ErrInvalidContact is returned when a contact lacks a name or phone.
	ErrInvalidContact = errors.New("contact name and phone are required")
)
