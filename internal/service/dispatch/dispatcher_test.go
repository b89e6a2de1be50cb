package dispatch

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"testing/synctest"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/oshokin/panic-button/internal/domain/alert"
	"github.com/oshokin/panic-button/internal/metrics"
)

var errTestChannel = errors.New("channel rejected message")

// sentMessage is one recorded call to the fake sender.
type sentMessage struct {
	to   string
	body string
}

// fakeSender records sends and delegates to sendFn when set.
type fakeSender struct {
	// sendFn overrides the default acknowledgement.
	sendFn func(ctx context.Context, to, body string) (string, error)

	// mu protects sent.
	mu sync.Mutex
	// sent holds every message passed to Send.
	sent []sentMessage
}

// Send records the call and acknowledges it with an id derived from the address.
func (f *fakeSender) Send(ctx context.Context, to, body string) (string, error) {
	f.mu.Lock()
	f.sent = append(f.sent, sentMessage{to: to, body: body})
	f.mu.Unlock()

	if f.sendFn != nil {
		return f.sendFn(ctx, to, body)
	}

	return "SM-" + to, nil
}

// calls returns a snapshot of the recorded sends.
func (f *fakeSender) calls() []sentMessage {
	f.mu.Lock()
	defer f.mu.Unlock()

	return append([]sentMessage(nil), f.sent...)
}

func family() []alert.Contact {
	return []alert.Contact{
		{ID: 1, UserID: 7, Name: "Mom", Phone: "+15550000001"},
		{ID: 2, UserID: 7, Name: "Dad", Phone: "+15550000002"},
		{ID: 3, UserID: 7, Name: "Sis", Phone: "+15550000003"},
	}
}

// TestDispatch_AllDelivered sends the same body to everyone and keeps contact order.
func TestDispatch_AllDelivered(t *testing.T) {
	t.Parallel()

	sender := new(fakeSender)
	d := New(sender, WithMetrics(metrics.New()))
	msg := alert.Compose(alert.StatusPanic, &alert.Location{Latitude: 12.34, Longitude: 56.78})

	outcomes := d.Dispatch(context.Background(), family(), msg)

	require.Len(t, outcomes, 3)

	for i, contact := range family() {
		require.Equal(t, contact.ID, outcomes[i].ContactID)
		require.Equal(t, contact.Name, outcomes[i].ContactName)
		require.True(t, outcomes[i].Delivered)
		require.Equal(t, "SM-"+contact.Phone, outcomes[i].MessageID)
		require.NoError(t, outcomes[i].Err)
	}

	calls := sender.calls()
	require.Len(t, calls, 3)

	for _, call := range calls {
		require.Equal(t, msg.Body, call.body)
	}
}

// TestDispatch_FailuresAreIndependent checks one failing recipient does not affect the others.
func TestDispatch_FailuresAreIndependent(t *testing.T) {
	t.Parallel()

	sender := &fakeSender{
		sendFn: func(_ context.Context, to, _ string) (string, error) {
			if to == "+15550000002" {
				return "", errTestChannel
			}

			return "ok-" + to, nil
		},
	}

	outcomes := New(sender).Dispatch(context.Background(), family(), alert.Compose(alert.StatusSafe, nil))

	require.Len(t, outcomes, 3)
	require.True(t, outcomes[0].Delivered)
	require.False(t, outcomes[1].Delivered)
	require.ErrorIs(t, outcomes[1].Err, alert.ErrDeliveryFailure)
	require.ErrorIs(t, outcomes[1].Err, errTestChannel)
	require.Empty(t, outcomes[1].MessageID)
	require.True(t, outcomes[2].Delivered)
}

// TestDispatch_OutcomeCountMatchesContacts holds for any list size, even when every send fails.
func TestDispatch_OutcomeCountMatchesContacts(t *testing.T) {
	t.Parallel()

	sender := &fakeSender{
		sendFn: func(context.Context, string, string) (string, error) {
			return "", errTestChannel
		},
	}
	d := New(sender, WithFanOutLimit(2))

	for n := range 12 {
		contacts := make([]alert.Contact, n)
		for i := range contacts {
			contacts[i] = alert.Contact{ID: int64(i + 1), Name: "c", Phone: "+1555"}
		}

		outcomes := d.Dispatch(context.Background(), contacts, alert.Compose(alert.StatusPanic, nil))
		require.Len(t, outcomes, n)

		for _, outcome := range outcomes {
			require.False(t, outcome.Delivered)
		}
	}
}

// TestDispatch_Empty returns an empty outcome list without touching the channel.
func TestDispatch_Empty(t *testing.T) {
	t.Parallel()

	sender := new(fakeSender)

	outcomes := New(sender).Dispatch(context.Background(), nil, alert.Compose(alert.StatusSafe, nil))
	require.NotNil(t, outcomes)
	require.Empty(t, outcomes)
	require.Empty(t, sender.calls())
}

// TestDispatch_TimeoutFailsOnlySlowContact uses a fake clock to time out a sender that never answers.
func TestDispatch_TimeoutFailsOnlySlowContact(t *testing.T) {
	t.Parallel()

	synctest.Test(t, func(t *testing.T) {
		sender := &fakeSender{
			sendFn: func(ctx context.Context, to, _ string) (string, error) {
				if to == "+15550000001" {
					<-ctx.Done()

					return "", ctx.Err()
				}

				return "ok", nil
			},
		}

		started := time.Now()
		outcomes := New(sender, WithSendTimeout(3*time.Second)).
			Dispatch(context.Background(), family(), alert.Compose(alert.StatusPanic, nil))

		require.Equal(t, 3*time.Second, time.Since(started))
		require.False(t, outcomes[0].Delivered)
		require.ErrorIs(t, outcomes[0].Err, context.DeadlineExceeded)
		require.True(t, outcomes[1].Delivered)
		require.True(t, outcomes[2].Delivered)
	})
}

// TestDispatch_IgnoredContextStillTimesOut covers senders that never look at their context.
func TestDispatch_IgnoredContextStillTimesOut(t *testing.T) {
	t.Parallel()

	synctest.Test(t, func(t *testing.T) {
		sender := &fakeSender{
			sendFn: func(context.Context, string, string) (string, error) {
				time.Sleep(time.Minute)

				return "late", nil
			},
		}

		outcomes := New(sender, WithSendTimeout(time.Second)).
			Dispatch(context.Background(), family()[:1], alert.Compose(alert.StatusPanic, nil))

		require.Len(t, outcomes, 1)
		require.False(t, outcomes[0].Delivered)
		require.ErrorIs(t, outcomes[0].Err, context.DeadlineExceeded)

		// Let the abandoned sender finish before the bubble closes.
		time.Sleep(time.Minute)
	})
}

// TestDispatch_FanOutLimit checks sends run concurrently but never above the limit.
func TestDispatch_FanOutLimit(t *testing.T) {
	t.Parallel()

	synctest.Test(t, func(t *testing.T) {
		var inFlight, peak atomic.Int32

		sender := &fakeSender{
			sendFn: func(context.Context, string, string) (string, error) {
				current := inFlight.Add(1)
				for {
					old := peak.Load()
					if current <= old || peak.CompareAndSwap(old, current) {
						break
					}
				}

				time.Sleep(time.Second)
				inFlight.Add(-1)

				return "ok", nil
			},
		}

		contacts := make([]alert.Contact, 10)
		for i := range contacts {
			contacts[i] = alert.Contact{ID: int64(i + 1), Name: "c", Phone: "+1555"}
		}

		started := time.Now()
		outcomes := New(sender, WithFanOutLimit(3), WithSendTimeout(time.Minute)).
			Dispatch(context.Background(), contacts, alert.Compose(alert.StatusPanic, nil))

		require.Len(t, outcomes, 10)
		require.Equal(t, int32(3), peak.Load())
		require.Equal(t, 4*time.Second, time.Since(started))
	})
}

// TestDispatch_SenderPanicIsRecorded turns a panicking sender into a failed outcome.
func TestDispatch_SenderPanicIsRecorded(t *testing.T) {
	t.Parallel()

	sender := &fakeSender{
		sendFn: func(context.Context, string, string) (string, error) {
			panic("boom")
		},
	}

	outcomes := New(sender).Dispatch(context.Background(), family()[:2], alert.Compose(alert.StatusSafe, nil))

	require.Len(t, outcomes, 2)

	for _, outcome := range outcomes {
		require.False(t, outcome.Delivered)
		require.ErrorIs(t, outcome.Err, errSenderPanicked)
	}
}

// TestDispatch_CallerCancellationDoesNotAbortSends keeps sending after the caller goes away.
func TestDispatch_CallerCancellationDoesNotAbortSends(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	sender := &fakeSender{
		sendFn: func(ctx context.Context, _, _ string) (string, error) {
			if err := ctx.Err(); err != nil {
				return "", err
			}

			return "ok", nil
		},
	}

	outcomes := New(sender).Dispatch(ctx, family(), alert.Compose(alert.StatusPanic, nil))

	for _, outcome := range outcomes {
		require.True(t, outcome.Delivered)
	}
}

// TestDispatch_CallerDeadlineBoundsFanOut stops sending before the caller's deadline.
func TestDispatch_CallerDeadlineBoundsFanOut(t *testing.T) {
	t.Parallel()

	synctest.Test(t, func(t *testing.T) {
		sender := &fakeSender{
			sendFn: func(ctx context.Context, _, _ string) (string, error) {
				select {
				case <-time.After(800 * time.Millisecond):
					return "ok", nil
				case <-ctx.Done():
					return "", ctx.Err()
				}
			},
		}

		ctx, cancel := context.WithTimeout(context.Background(), 1500*time.Millisecond)
		defer cancel()

		started := time.Now()
		outcomes := New(sender, WithFanOutLimit(1), WithSendTimeout(time.Second)).
			Dispatch(ctx, family(), alert.Compose(alert.StatusPanic, nil))

		// The second send is cut at the budget, the third never starts.
		require.Equal(t, 1500*time.Millisecond-ResponseReserve, time.Since(started))
		require.True(t, outcomes[0].Delivered)
		require.False(t, outcomes[1].Delivered)
		require.ErrorIs(t, outcomes[1].Err, context.DeadlineExceeded)
		require.False(t, outcomes[2].Delivered)
		require.ErrorIs(t, outcomes[2].Err, context.DeadlineExceeded)
		require.Len(t, sender.calls(), 2)
		require.NoError(t, ctx.Err())
	})
}

// TestDispatch_EmptyAddress fails the contact without calling the channel.
func TestDispatch_EmptyAddress(t *testing.T) {
	t.Parallel()

	sender := new(fakeSender)
	contacts := []alert.Contact{{ID: 1, Name: "Nobody", Phone: " "}}

	outcomes := New(sender).Dispatch(context.Background(), contacts, alert.Compose(alert.StatusPanic, nil))

	require.ErrorIs(t, outcomes[0].Err, errEmptyAddress)
	require.Empty(t, sender.calls())
}
