package session

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/oshokin/panic-button/internal/config"
	"github.com/oshokin/panic-button/internal/domain/alert"
)

const (
	fieldUserID = "user_id"
	fieldEmail  = "email"
)

// errRedisURLRequired is returned when a client is requested without a URL.
var errRedisURLRequired = errors.New("redis url must be provided")

// Authenticator resolves a token into an identity.
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (*alert.Identity, error)
}

// NewClient connects to Redis and verifies the connection.
func NewClient(ctx context.Context, cfg config.RedisConfig, pingTimeout time.Duration) (*redis.Client, error) {
	if cfg.URL == "" {
		return nil, errRedisURLRequired
	}

	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("parse redis URL: %w", err)
	}

	if cfg.PoolSize > 0 {
		opts.PoolSize = cfg.PoolSize
	}

	client := redis.NewClient(opts)

	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()

		return nil, fmt.Errorf("redis ping failed: %w", err)
	}

	return client, nil
}

// RedisRepository reads sessions written by the login flow.
type RedisRepository struct {
	client redis.Cmdable
	prefix string
}

// NewRedisRepository creates a session repository using the given key prefix.
func NewRedisRepository(client redis.Cmdable, prefix string) *RedisRepository {
	if prefix == "" {
		prefix = config.DefaultSessionPrefix
	}

	return &RedisRepository{
		client: client,
		prefix: prefix,
	}
}

// Authenticate returns the identity behind a token.
// Unknown, empty or malformed sessions yield alert.ErrUnauthenticated.
func (r *RedisRepository) Authenticate(ctx context.Context, token string) (*alert.Identity, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil, alert.ErrUnauthenticated
	}

	fields, err := r.client.HGetAll(ctx, r.prefix+token).Result()
	if err != nil {
		return nil, fmt.Errorf("read session: %w: %w", alert.ErrStoreUnavailable, err)
	}

	if len(fields) == 0 {
		return nil, alert.ErrUnauthenticated
	}

	userID, err := strconv.ParseInt(fields[fieldUserID], 10, 64)
	if err != nil || userID <= 0 {
		return nil, fmt.Errorf("%w: malformed session", alert.ErrUnauthenticated)
	}

	return &alert.Identity{
		UserID: userID,
		Email:  fields[fieldEmail],
	}, nil
}
