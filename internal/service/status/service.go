package status

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/oshokin/panic-button/internal/domain/alert"
	"github.com/oshokin/panic-button/internal/logger"
	"github.com/oshokin/panic-button/internal/metrics"
	contactrepo "github.com/oshokin/panic-button/internal/repository/contact"
	statusrepo "github.com/oshokin/panic-button/internal/repository/status"
)

// Dispatcher fans a message out to contacts, one outcome per contact.
type Dispatcher interface {
	Dispatch(ctx context.Context, contacts []alert.Contact, message alert.Message) []alert.DeliveryOutcome
}

// Trigger is one status change request.
type Trigger struct {
	// Status is alert.StatusPanic or alert.StatusSafe.
	Status alert.Status
	// Location is the optional snapshot sent along with the alert.
	Location *alert.Location
}

// Service orchestrates status changes.
// It holds no per-request state and is safe for concurrent use.
type Service struct {
	// statuses persists the declared status.
	statuses statusrepo.Repository
	// contacts resolves who to notify.
	contacts contactrepo.Repository
	// dispatcher delivers the alert.
	dispatcher Dispatcher
	// metrics counts requests by outcome, may be nil.
	metrics *metrics.Metrics
}

// New creates a service from its collaborators.
func New(
	statuses statusrepo.Repository,
	contacts contactrepo.Repository,
	dispatcher Dispatcher,
	m *metrics.Metrics,
) *Service {
	return &Service{
		statuses:   statuses,
		contacts:   contacts,
		dispatcher: dispatcher,
		metrics:    m,
	}
}

// ChangeStatus records the new status and alerts the caller's contacts.
//
// The status write happens before the contact lookup and is not undone when
// the lookup fails. Once contacts are resolved the call succeeds, even when no
// delivery went through; the result lists every failed contact.
func (s *Service) ChangeStatus(ctx context.Context, identity *alert.Identity, trigger Trigger) (*alert.Result, error) {
	if !identity.Valid() {
		s.metrics.ObserveStatusChange(trigger.Status.String(), metrics.OutcomeUnauthenticated)

		return nil, alert.ErrUnauthenticated
	}

	if err := validateTrigger(trigger); err != nil {
		s.metrics.ObserveStatusChange(trigger.Status.String(), metrics.OutcomeInvalid)

		return nil, err
	}

	eventID := uuid.NewString()
	ctx = logger.WithFields(ctx,
		"request_id", eventID,
		"user_id", identity.UserID,
		"status", trigger.Status,
	)

	// Panic does not mean the user is at a resolved position.
	storedLocation := trigger.Location
	if trigger.Status == alert.StatusPanic {
		storedLocation = nil
	}

	if err := s.statuses.SetStatus(ctx, identity.UserID, trigger.Status, storedLocation); err != nil {
		logger.ErrorKV(ctx, "Failed to persist status", "error", err)
		s.metrics.ObserveStatusChange(trigger.Status.String(), metrics.OutcomeStoreError)

		return nil, fmt.Errorf("persist status: %w", err)
	}

	contacts, err := s.contacts.List(ctx, identity.UserID)
	if err != nil {
		logger.ErrorKV(ctx, "Failed to resolve contacts, status is kept", "error", err)
		s.metrics.ObserveStatusChange(trigger.Status.String(), metrics.OutcomeStoreError)

		return nil, fmt.Errorf("resolve contacts: %w", err)
	}

	message := alert.Compose(trigger.Status, trigger.Location)
	event := &alert.Event{
		ID:       eventID,
		Status:   trigger.Status,
		Location: trigger.Location.Clone(),
		Message:  message,
		Outcomes: s.dispatcher.Dispatch(ctx, contacts, message),
	}

	result := alert.NewResult(event)

	logger.InfoKV(ctx, "Alert dispatched",
		"contacts", len(contacts),
		"notified", result.Notified,
		"failed", len(result.Failed),
		"map_link", result.MapLink,
	)

	s.metrics.ObserveStatusChange(trigger.Status.String(), metrics.OutcomeOK)

	return result, nil
}

// GetStatus returns the caller's stored status.
func (s *Service) GetStatus(ctx context.Context, identity *alert.Identity) (*alert.UserStatus, error) {
	if !identity.Valid() {
		return nil, alert.ErrUnauthenticated
	}

	current, err := s.statuses.GetStatus(ctx, identity.UserID)
	if err != nil {
		return nil, fmt.Errorf("get status: %w", err)
	}

	return current, nil
}

// ListContacts returns the caller's contacts.
func (s *Service) ListContacts(ctx context.Context, identity *alert.Identity) ([]alert.Contact, error) {
	if !identity.Valid() {
		return nil, alert.ErrUnauthenticated
	}

	contacts, err := s.contacts.List(ctx, identity.UserID)
	if err != nil {
		return nil, fmt.Errorf("list contacts: %w", err)
	}

	return contacts, nil
}

// AddContact stores a new contact for the caller.
func (s *Service) AddContact(ctx context.Context, identity *alert.Identity, name, phone string) (*alert.Contact, error) {
	if !identity.Valid() {
		return nil, alert.ErrUnauthenticated
	}

	stored, err := s.contacts.Add(ctx, &alert.Contact{
		UserID: identity.UserID,
		Name:   name,
		Phone:  phone,
	})
	if err != nil {
		return nil, fmt.Errorf("add contact: %w", err)
	}

	logger.InfoKV(ctx, "Contact added", "user_id", identity.UserID, "contact_id", stored.ID)

	return stored, nil
}

// validateTrigger rejects statuses that cannot be triggered and invalid coordinates.
func validateTrigger(trigger Trigger) error {
	if trigger.Status != alert.StatusPanic && trigger.Status != alert.StatusSafe {
		return fmt.Errorf("%w: %q", alert.ErrInvalidStatus, trigger.Status)
	}

	if trigger.Location != nil {
		if _, err := alert.NewLocation(trigger.Location.Latitude, trigger.Location.Longitude); err != nil {
			return err
		}
	}

	return nil
}
