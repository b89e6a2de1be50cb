package status

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/oshokin/panic-button/internal/domain/alert"
	"github.com/oshokin/panic-button/internal/metrics"
	contactrepo "github.com/oshokin/panic-button/internal/repository/contact"
	statusrepo "github.com/oshokin/panic-button/internal/repository/status"
	"github.com/oshokin/panic-button/internal/service/dispatch"
)

var (
	errTestStatusDown  = errors.New("status store down")
	errTestContactDown = errors.New("contact store down")
	errTestSMS         = errors.New("sms rejected")
)

// statusCall is one recorded SetStatus call.
type statusCall struct {
	userID   int64
	status   alert.Status
	location *alert.Location
}

// recordingStatuses wraps the memory repository and records writes.
type recordingStatuses struct {
	*statusrepo.MemoryRepository

	// setErr fails SetStatus when set.
	setErr error

	mu    sync.Mutex
	calls []statusCall
}

// SetStatus records the call and delegates unless setErr is set.
func (r *recordingStatuses) SetStatus(ctx context.Context, userID int64, s alert.Status, loc *alert.Location) error {
	r.mu.Lock()
	r.calls = append(r.calls, statusCall{userID: userID, status: s, location: loc})
	r.mu.Unlock()

	if r.setErr != nil {
		return r.setErr
	}

	return r.MemoryRepository.SetStatus(ctx, userID, s, loc)
}

// recordingContacts wraps the memory repository and counts reads.
type recordingContacts struct {
	*contactrepo.MemoryRepository

	// listErr fails List when set.
	listErr error

	mu    sync.Mutex
	lists int
}

// List counts the call and delegates unless listErr is set.
func (r *recordingContacts) List(ctx context.Context, userID int64) ([]alert.Contact, error) {
	r.mu.Lock()
	r.lists++
	r.mu.Unlock()

	if r.listErr != nil {
		return nil, r.listErr
	}

	return r.MemoryRepository.List(ctx, userID)
}

// sentSMS is one message handed to the fake sender.
type sentSMS struct {
	to   string
	body string
}

// fakeSender records messages and fails for the addresses in failFor.
type fakeSender struct {
	failFor map[string]bool

	mu   sync.Mutex
	sent []sentSMS
}

// Send records the message.
func (f *fakeSender) Send(_ context.Context, to, body string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.sent = append(f.sent, sentSMS{to: to, body: body})

	if f.failFor[to] {
		return "", errTestSMS
	}

	return "SM-" + to, nil
}

// countingDispatcher counts Dispatch calls around a real dispatcher.
type countingDispatcher struct {
	inner Dispatcher
	calls int
}

// Dispatch counts and delegates.
func (c *countingDispatcher) Dispatch(ctx context.Context, contacts []alert.Contact, m alert.Message) []alert.DeliveryOutcome {
	c.calls++

	return c.inner.Dispatch(ctx, contacts, m)
}

// fixture bundles a service with its recording collaborators.
type fixture struct {
	service    *Service
	statuses   *recordingStatuses
	contacts   *recordingContacts
	sender     *fakeSender
	dispatcher *countingDispatcher
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	f := &fixture{
		statuses: &recordingStatuses{MemoryRepository: statusrepo.NewMemoryRepository()},
		contacts: &recordingContacts{MemoryRepository: contactrepo.NewMemoryRepository()},
		sender:   &fakeSender{failFor: make(map[string]bool)},
	}

	f.dispatcher = &countingDispatcher{inner: dispatch.New(f.sender)}
	f.service = New(f.statuses, f.contacts, f.dispatcher, metrics.New())

	return f
}

func (f *fixture) addContact(t *testing.T, userID int64, name, phone string) {
	t.Helper()

	_, err := f.contacts.Add(context.Background(), &alert.Contact{UserID: userID, Name: name, Phone: phone})
	require.NoError(t, err)
}

// TestChangeStatus_PanicNotifiesEveryContact is the Mom and Dad scenario.
func TestChangeStatus_PanicNotifiesEveryContact(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	ctx := context.Background()
	user := &alert.Identity{UserID: 7}

	f.addContact(t, 7, "Mom", "+15550000001")
	f.addContact(t, 7, "Dad", "+15550000002")

	// A previously recorded safe location must survive the panic.
	home := &alert.Location{Latitude: 1.5, Longitude: 2.5}
	require.NoError(t, f.statuses.MemoryRepository.SetStatus(ctx, 7, alert.StatusSafe, home))

	result, err := f.service.ChangeStatus(ctx, user, Trigger{
		Status:   alert.StatusPanic,
		Location: &alert.Location{Latitude: 12.34, Longitude: 56.78},
	})
	require.NoError(t, err)

	require.Equal(t, []statusCall{{userID: 7, status: alert.StatusPanic, location: nil}}, f.statuses.calls)

	require.Len(t, f.sender.sent, 2)
	require.Equal(t, f.sender.sent[0].body, f.sender.sent[1].body)
	require.Contains(t, f.sender.sent[0].body, "https://www.google.com/maps?q=12.34,56.78")

	require.True(t, result.StatusWritten)
	require.ElementsMatch(t, []string{"Mom", "Dad"}, result.Notified)
	require.Empty(t, result.Failed)
	require.Equal(t, "https://www.google.com/maps?q=12.34,56.78", result.MapLink)
	require.Contains(t, result.Summary(), "Mom, Dad")
	require.Len(t, result.Event.Outcomes, 2)
	require.NotEmpty(t, result.Event.ID)

	stored, err := f.statuses.GetStatus(ctx, 7)
	require.NoError(t, err)
	require.Equal(t, alert.StatusPanic, stored.Status)
	require.Equal(t, home, stored.Location)
	require.Equal(t, 1, f.dispatcher.calls)
}

// TestChangeStatus_SafeWithoutContacts is the zero contacts scenario.
func TestChangeStatus_SafeWithoutContacts(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	ctx := context.Background()

	home := &alert.Location{Latitude: 3, Longitude: 4}
	require.NoError(t, f.statuses.MemoryRepository.SetStatus(ctx, 9, alert.StatusSafe, home))

	result, err := f.service.ChangeStatus(ctx, &alert.Identity{UserID: 9}, Trigger{Status: alert.StatusSafe})
	require.NoError(t, err)

	require.True(t, result.StatusWritten)
	require.True(t, result.NoContacts())
	require.Empty(t, result.Event.Outcomes)
	require.Equal(t, alert.LocationUnavailable, result.MapLink)
	require.Contains(t, result.Summary(), alert.NoContactsToNotify)
	require.Empty(t, f.sender.sent)

	stored, err := f.statuses.GetStatus(ctx, 9)
	require.NoError(t, err)
	require.Equal(t, alert.StatusSafe, stored.Status)
	require.Equal(t, home, stored.Location)
}

// TestChangeStatus_SafeWithLocationUpdatesLocation writes both status and location.
func TestChangeStatus_SafeWithLocationUpdatesLocation(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	ctx := context.Background()
	here := &alert.Location{Latitude: -33.8688, Longitude: 151.2093}

	_, err := f.service.ChangeStatus(ctx, &alert.Identity{UserID: 3}, Trigger{Status: alert.StatusSafe, Location: here})
	require.NoError(t, err)

	require.Equal(t, here, f.statuses.calls[0].location)

	stored, err := f.statuses.GetStatus(ctx, 3)
	require.NoError(t, err)
	require.Equal(t, alert.StatusSafe, stored.Status)
	require.Equal(t, here, stored.Location)
}

// TestChangeStatus_ContactFailureKeepsStatus is the contact-read failure scenario.
func TestChangeStatus_ContactFailureKeepsStatus(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	ctx := context.Background()
	f.contacts.listErr = errors.Join(alert.ErrStoreUnavailable, errTestContactDown)

	result, err := f.service.ChangeStatus(ctx, &alert.Identity{UserID: 5}, Trigger{Status: alert.StatusPanic})
	require.ErrorIs(t, err, alert.ErrStoreUnavailable)
	require.Nil(t, result)
	require.Equal(t, 0, f.dispatcher.calls)

	stored, err := f.statuses.GetStatus(ctx, 5)
	require.NoError(t, err)
	require.Equal(t, alert.StatusPanic, stored.Status)
}

// TestChangeStatus_StatusFailureStopsEverything skips contacts and dispatch on a failed write.
func TestChangeStatus_StatusFailureStopsEverything(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	f.statuses.setErr = errors.Join(alert.ErrStoreUnavailable, errTestStatusDown)
	f.addContact(t, 5, "Mom", "+15550000001")

	_, err := f.service.ChangeStatus(context.Background(), &alert.Identity{UserID: 5}, Trigger{Status: alert.StatusPanic})
	require.ErrorIs(t, err, alert.ErrStoreUnavailable)
	require.ErrorIs(t, err, errTestStatusDown)
	require.Equal(t, 0, f.contacts.lists)
	require.Equal(t, 0, f.dispatcher.calls)
	require.Empty(t, f.sender.sent)
}

// TestChangeStatus_Unauthenticated never reaches a store.
func TestChangeStatus_Unauthenticated(t *testing.T) {
	t.Parallel()

	f := newFixture(t)

	for _, identity := range []*alert.Identity{nil, {}, {UserID: -1}} {
		_, err := f.service.ChangeStatus(context.Background(), identity, Trigger{Status: alert.StatusPanic})
		require.ErrorIs(t, err, alert.ErrUnauthenticated)
	}

	require.Empty(t, f.statuses.calls)
	require.Equal(t, 0, f.contacts.lists)
	require.Equal(t, 0, f.dispatcher.calls)

	_, err := f.service.GetStatus(context.Background(), nil)
	require.ErrorIs(t, err, alert.ErrUnauthenticated)

	_, err = f.service.ListContacts(context.Background(), nil)
	require.ErrorIs(t, err, alert.ErrUnauthenticated)

	_, err = f.service.AddContact(context.Background(), nil, "Mom", "+1")
	require.ErrorIs(t, err, alert.ErrUnauthenticated)
	require.Equal(t, 0, f.contacts.lists)
}

// TestChangeStatus_AllDeliveriesFailStillSucceeds reports failures without failing the request.
func TestChangeStatus_AllDeliveriesFailStillSucceeds(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	f.addContact(t, 4, "Mom", "+15550000001")
	f.addContact(t, 4, "Dad", "+15550000002")
	f.sender.failFor["+15550000001"] = true
	f.sender.failFor["+15550000002"] = true

	result, err := f.service.ChangeStatus(context.Background(), &alert.Identity{UserID: 4}, Trigger{Status: alert.StatusPanic})
	require.NoError(t, err)
	require.True(t, result.StatusWritten)
	require.Empty(t, result.Notified)
	require.Len(t, result.Failed, 2)
	require.Contains(t, result.Summary(), "Failed: ")

	for _, outcome := range result.Event.Outcomes {
		require.ErrorIs(t, outcome.Err, alert.ErrDeliveryFailure)
	}
}

// TestChangeStatus_PartialDelivery lists the delivered and the failed contacts separately.
func TestChangeStatus_PartialDelivery(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	f.addContact(t, 4, "Mom", "+15550000001")
	f.addContact(t, 4, "Dad", "+15550000002")
	f.sender.failFor["+15550000002"] = true

	result, err := f.service.ChangeStatus(context.Background(), &alert.Identity{UserID: 4}, Trigger{Status: alert.StatusSafe})
	require.NoError(t, err)
	require.Equal(t, []string{"Mom"}, result.Notified)
	require.Len(t, result.Failed, 1)
	require.Equal(t, "Dad", result.Failed[0].Name)
}

// TestChangeStatus_InvalidTrigger rejects bad statuses and coordinates before any write.
func TestChangeStatus_InvalidTrigger(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	user := &alert.Identity{UserID: 1}

	_, err := f.service.ChangeStatus(context.Background(), user, Trigger{Status: alert.StatusUnset})
	require.ErrorIs(t, err, alert.ErrInvalidStatus)

	_, err = f.service.ChangeStatus(context.Background(), user, Trigger{
		Status:   alert.StatusSafe,
		Location: &alert.Location{Latitude: 123, Longitude: 0},
	})
	require.ErrorIs(t, err, alert.ErrInvalidLocation)

	require.Empty(t, f.statuses.calls)
}

// TestContacts_AddAndList goes through the service for contact management.
func TestContacts_AddAndList(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	user := &alert.Identity{UserID: 2}

	stored, err := f.service.AddContact(context.Background(), user, "Mom", "+15550000001")
	require.NoError(t, err)
	require.Equal(t, int64(2), stored.UserID)

	_, err = f.service.AddContact(context.Background(), user, "", "")
	require.ErrorIs(t, err, alert.ErrInvalidContact)

	contacts, err := f.service.ListContacts(context.Background(), user)
	require.NoError(t, err)
	require.Equal(t, []alert.Contact{*stored}, contacts)

	current, err := f.service.GetStatus(context.Background(), user)
	require.NoError(t, err)
	require.Equal(t, alert.StatusUnset, current.Status)
}
