package status

import (
	"context"
	"errors"

	"google.golang.org/grpc/codes"
	grpcstatus "google.golang.org/grpc/status"

	"github.com/oshokin/panic-button/internal/domain/alert"
)

// toStatusError maps domain errors onto gRPC status codes.
func toStatusError(err error) error {
	if err == nil {
		return nil
	}

	if _, ok := grpcstatus.FromError(err); ok {
		return err
	}

	var code codes.Code

	switch {
	case errors.Is(err, alert.ErrUnauthenticated):
		code = codes.Unauthenticated
	case errors.Is(err, alert.ErrInvalidStatus),
		errors.Is(err, alert.ErrInvalidLocation),
		errors.Is(err, alert.ErrInvalidContact):
		code = codes.InvalidArgument
	case errors.Is(err, alert.ErrUserNotFound):
		code = codes.NotFound
	case errors.Is(err, alert.ErrStoreUnavailable):
		code = codes.Unavailable
	case errors.Is(err, context.DeadlineExceeded):
		code = codes.DeadlineExceeded
	case errors.Is(err, context.Canceled):
		code = codes.Canceled
	default:
		code = codes.Internal
	}

	return grpcstatus.Error(code, err.Error())
}
