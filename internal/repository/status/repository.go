package status

import (
	"context"

	"github.com/oshokin/panic-button/internal/domain/alert"
)

// Repository defines persistence operations for user status.
type Repository interface {
	// SetStatus records the status. A location is written only together with
	// alert.StatusSafe; otherwise the stored location is left untouched.
	SetStatus(ctx context.Context, userID int64, status alert.Status, location *alert.Location) error
	// GetStatus returns the stored status of a user.
	GetStatus(ctx context.Context, userID int64) (*alert.UserStatus, error)
}

// writesLocation reports whether a write must overwrite the stored location.
func writesLocation(status alert.Status, location *alert.Location) bool {
	return status == alert.StatusSafe && location != nil
}
