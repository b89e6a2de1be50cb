package dispatch

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/oshokin/panic-button/internal/config"
	"github.com/oshokin/panic-button/internal/domain/alert"
	"github.com/oshokin/panic-button/internal/logger"
	"github.com/oshokin/panic-button/internal/metrics"
)

// Sender delivers one text message to one address.
// It returns the channel's message identifier on acceptance.
type Sender interface {
	Send(ctx context.Context, to, body string) (string, error)
}

// ResponseReserve is kept free before the caller's deadline so the outcome
// reaches the caller before it gives up.
const ResponseReserve = 250 * time.Millisecond

var (
	// errEmptyAddress is returned for contacts without a phone.
	errEmptyAddress = errors.New("contact has no address")
	// errSenderPanicked is returned when a sender panics during a send.
	errSenderPanicked = errors.New("sender panicked")
)

// Dispatcher sends alert messages to contacts.
type Dispatcher struct {
	// sender is the messaging channel.
	sender Sender
	// metrics records per-contact outcomes, may be nil.
	metrics *metrics.Metrics
	// fanOutLimit caps concurrent sends of one dispatch.
	fanOutLimit int
	// sendTimeout bounds a single send.
	sendTimeout time.Duration
}

// Option configures dispatcher behaviour.
type Option func(*Dispatcher)

// WithFanOutLimit caps the number of concurrent sends per dispatch.
func WithFanOutLimit(limit int) Option {
	return func(d *Dispatcher) {
		if limit > 0 {
			d.fanOutLimit = limit
		}
	}
}

// WithSendTimeout sets the per-contact send timeout.
func WithSendTimeout(timeout time.Duration) Option {
	return func(d *Dispatcher) {
		if timeout > 0 {
			d.sendTimeout = timeout
		}
	}
}

// WithMetrics records delivery outcomes.
func WithMetrics(m *metrics.Metrics) Option {
	return func(d *Dispatcher) {
		d.metrics = m
	}
}

// New creates a dispatcher on top of a sender.
func New(sender Sender, opts ...Option) *Dispatcher {
	d := &Dispatcher{
		sender:      sender,
		fanOutLimit: config.DefaultFanOutLimit,
		sendTimeout: config.DefaultSendTimeout,
	}

	for _, opt := range opts {
		opt(d)
	}

	return d
}

// Dispatch sends the message to every contact and returns one outcome per
// contact in the same order. It never fails as a whole. Sends are not tied to
// the caller's cancellation: once started, an alert goes out to everyone.
// A caller deadline still bounds the whole fan-out, less ResponseReserve;
// contacts not reached by then are reported as failed and never sent to.
// Calling Dispatch twice sends the message twice.
func (d *Dispatcher) Dispatch(ctx context.Context, contacts []alert.Contact, message alert.Message) []alert.DeliveryOutcome {
	outcomes := make([]alert.DeliveryOutcome, len(contacts))
	if len(contacts) == 0 {
		return outcomes
	}

	sendCtx := context.WithoutCancel(ctx)

	if deadline, ok := ctx.Deadline(); ok {
		var cancel context.CancelFunc

		sendCtx, cancel = context.WithDeadline(sendCtx, deadline.Add(-ResponseReserve))
		defer cancel()
	}

	var group errgroup.Group

	group.SetLimit(d.fanOutLimit)

	for i := range contacts {
		group.Go(func() error {
			outcomes[i] = d.sendOne(sendCtx, &contacts[i], message)

			return nil
		})
	}

	// Workers never return errors, outcomes carry them.
	_ = group.Wait()

	return outcomes
}

// sendOne delivers the message to a single contact under the send timeout.
func (d *Dispatcher) sendOne(ctx context.Context, contact *alert.Contact, message alert.Message) alert.DeliveryOutcome {
	ctx = logger.WithFields(ctx, "contact", contact.Name, "contact_id", contact.ID)

	ctx, cancel := context.WithTimeout(ctx, d.sendTimeout)
	defer cancel()

	started := time.Now()
	messageID, err := d.deliver(ctx, contact.Phone, message.Body)
	took := time.Since(started)

	d.metrics.ObserveDelivery(message.Status.String(), err == nil, took)

	outcome := alert.DeliveryOutcome{
		ContactID:   contact.ID,
		ContactName: contact.Name,
		Duration:    took,
	}

	if err != nil {
		outcome.Err = fmt.Errorf("%w: %w", alert.ErrDeliveryFailure, err)

		logger.ErrorKV(ctx, "SMS delivery failed", "error", err, "took", took)

		return outcome
	}

	outcome.Delivered = true
	outcome.MessageID = messageID

	logger.InfoKV(ctx, "SMS sent", "message_id", messageID, "took", took)

	return outcome
}

// deliver runs the sender and stops waiting once ctx is done,
// so a sender that ignores its context cannot hold the request.
func (d *Dispatcher) deliver(ctx context.Context, to, body string) (string, error) {
	if strings.TrimSpace(to) == "" {
		return "", errEmptyAddress
	}

	// A contact queued behind the fan-out limit may find the budget spent.
	if err := ctx.Err(); err != nil {
		return "", fmt.Errorf("send aborted: %w", err)
	}

	type ack struct {
		messageID string
		err       error
	}

	acks := make(chan ack, 1)

	go func() {
		defer func() {
			if r := recover(); r != nil {
				acks <- ack{err: fmt.Errorf("%w: %v", errSenderPanicked, r)}
			}
		}()

		messageID, err := d.sender.Send(ctx, to, body)
		acks <- ack{messageID: messageID, err: err}
	}()

	select {
	case <-ctx.Done():
		return "", fmt.Errorf("send aborted: %w", ctx.Err())
	case a := <-acks:
		return a.messageID, a.err
	}
}
