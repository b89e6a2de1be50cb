package status

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"

	"github.com/oshokin/panic-button/internal/domain/alert"
	"github.com/oshokin/panic-button/internal/logger"
	"github.com/oshokin/panic-button/internal/repository/session"
)

// AuthorizationHeader is the metadata key carrying the session token.
const AuthorizationHeader = "authorization"

const bearerPrefix = "bearer "

type identityKey struct{}

// WithIdentity returns a context carrying the authenticated identity.
func WithIdentity(ctx context.Context, identity *alert.Identity) context.Context {
	return context.WithValue(ctx, identityKey{}, identity)
}

// IdentityFromContext returns the identity attached by the auth interceptor, or nil.
func IdentityFromContext(ctx context.Context) *alert.Identity {
	identity, _ := ctx.Value(identityKey{}).(*alert.Identity)

	return identity
}

// WithToken appends the bearer token to the outgoing metadata.
func WithToken(ctx context.Context, token string) context.Context {
	return metadata.AppendToOutgoingContext(ctx, AuthorizationHeader, "Bearer "+token)
}

// AuthInterceptor resolves the bearer token into an identity.
//
// A request without a token reaches the handler without an identity and is
// rejected by the service; a token the session store does not know fails here.
func AuthInterceptor(authenticator session.Authenticator) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, _ *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		token := tokenFromMetadata(ctx)
		if token == "" {
			return handler(ctx, req)
		}

		identity, err := authenticator.Authenticate(ctx, token)
		if err != nil {
			logger.FromContext(ctx).Warnw("Authentication failed", "error", err)

			return nil, toStatusError(err)
		}

		ctx = logger.WithKV(ctx, "user_id", identity.UserID)

		return handler(WithIdentity(ctx, identity), req)
	}
}

// LoggingInterceptor attaches a request-scoped logger and logs every call.
func LoggingInterceptor() grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		ctx = logger.WithFields(
			logger.WithName(ctx, "grpc"),
			"request_id", uuid.NewString(),
			"method", info.FullMethod,
		)

		start := time.Now()
		resp, err := handler(ctx, req)

		if err != nil {
			logger.FromContext(ctx).Infow("Call failed", "error", err, "duration", time.Since(start))
		} else {
			logger.FromContext(ctx).Debugw("Call handled", "duration", time.Since(start))
		}

		return resp, err
	}
}

func tokenFromMetadata(ctx context.Context) string {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return ""
	}

	for _, value := range md.Get(AuthorizationHeader) {
		value = strings.TrimSpace(value)
		if len(value) > len(bearerPrefix) && strings.EqualFold(value[:len(bearerPrefix)], bearerPrefix) {
			return strings.TrimSpace(value[len(bearerPrefix):])
		}
	}

	return ""
}
