package server

import (
	"context"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"

	"github.com/oshokin/panic-button/internal/api/http/ops"
	"github.com/oshokin/panic-button/internal/config"
	"github.com/oshokin/panic-button/internal/logger"
	"github.com/oshokin/panic-button/internal/messaging/dryrun"
	"github.com/oshokin/panic-button/internal/messaging/twilio"
	"github.com/oshokin/panic-button/internal/metrics"
	contactrepo "github.com/oshokin/panic-button/internal/repository/contact"
	"github.com/oshokin/panic-button/internal/repository/postgres"
	"github.com/oshokin/panic-button/internal/repository/session"
	statusrepo "github.com/oshokin/panic-button/internal/repository/status"
	"github.com/oshokin/panic-button/internal/service/dispatch"
	statusservice "github.com/oshokin/panic-button/internal/service/status"
)

// ErrNoSessionStore indicates that no Redis URL is configured.
var ErrNoSessionStore = errors.New("no session store configured: redis.url is required")

// dependencies holds everything the server needs, built from the settings.
type dependencies struct {
	// db is nil when the in-memory stores are used.
	db *sqlx.DB
	// redis backs the session store.
	redis *redis.Client

	metrics  *metrics.Metrics
	sessions session.Authenticator
	service  *statusservice.Service
}

// openDependencies connects the stores and the messaging channel.
// A nil sender is picked from the settings.
// On error everything opened so far is closed.
func openDependencies(ctx context.Context, settings *config.Config, sender dispatch.Sender) (*dependencies, error) {
	if settings.Redis.URL == "" {
		return nil, ErrNoSessionStore
	}

	deps := &dependencies{
		metrics: metrics.New(),
	}

	if err := deps.open(ctx, settings, sender); err != nil {
		deps.Close()

		return nil, err
	}

	return deps, nil
}

// open fills the dependencies; the caller closes them on error.
func (d *dependencies) open(ctx context.Context, settings *config.Config, sender dispatch.Sender) error {
	var err error

	// Relational stores, or in-memory ones for local runs.
	var (
		statuses statusrepo.Repository
		contacts contactrepo.Repository
	)

	if settings.Database.DSN != "" {
		d.db, err = postgres.Open(ctx, settings.Database, settings.Timeout)
		if err != nil {
			return err
		}

		if err = postgres.EnsureSchema(ctx, d.db); err != nil {
			return err
		}

		statuses = statusrepo.NewPostgresRepository(d.db)
		contacts = contactrepo.NewPostgresRepository(d.db)
	} else {
		logger.Warn(ctx, "No database DSN configured, using in-memory stores")

		statuses = statusrepo.NewMemoryRepository()
		contacts = contactrepo.NewMemoryRepository()
	}

	// Session store.
	d.redis, err = session.NewClient(ctx, settings.Redis, settings.Timeout)
	if err != nil {
		return err
	}

	d.sessions = session.NewRedisRepository(d.redis, settings.Redis.SessionPrefix)

	// Messaging channel.
	if sender == nil {
		sender, err = newSender(ctx, settings.Twilio)
		if err != nil {
			return err
		}
	}

	dispatcher := dispatch.New(
		sender,
		dispatch.WithFanOutLimit(settings.Dispatch.FanOutLimit),
		dispatch.WithSendTimeout(settings.Dispatch.SendTimeout),
		dispatch.WithMetrics(d.metrics),
	)

	d.service = statusservice.New(statuses, contacts, dispatcher, d.metrics)

	return nil
}

// newSender returns the Twilio sender, or the dry-run one when Twilio is not configured.
func newSender(ctx context.Context, cfg config.TwilioConfig) (dispatch.Sender, error) {
	if !cfg.Enabled() {
		logger.Warn(ctx, "Twilio is not configured, messages are only logged")

		return dryrun.New(), nil
	}

	sender, err := twilio.New(cfg)
	if err != nil {
		return nil, fmt.Errorf("create twilio sender: %w", err)
	}

	return sender, nil
}

// healthChecks lists the dependencies /healthz pings.
func (d *dependencies) healthChecks() []ops.Check {
	checks := make([]ops.Check, 0, 2) //nolint:mnd // Database and Redis.

	if d.db != nil {
		checks = append(checks, ops.Check{Name: "postgres", Pinger: d.db})
	}

	if d.redis != nil {
		client := d.redis
		checks = append(checks, ops.Check{
			Name: "redis",
			Pinger: ops.PingFunc(func(ctx context.Context) error {
				return client.Ping(ctx).Err()
			}),
		})
	}

	return checks
}

// Close releases the connections.
func (d *dependencies) Close() {
	if d == nil {
		return
	}

	if d.db != nil {
		_ = d.db.Close()
	}

	if d.redis != nil {
		_ = d.redis.Close()
	}
}
