package alert

import (
	"strings"
	"time"
)

// NoContactsToNotify is reported when the user has no contacts.
const NoContactsToNotify = "no contacts to notify"

// DeliveryOutcome is the result of sending the alert to one contact.
type DeliveryOutcome struct {
	// ContactID identifies the contact.
	ContactID int64
	// ContactName is kept for the caller-facing summary.
	ContactName string
	// MessageID is the channel acknowledgement, empty on failure.
	MessageID string
	// Delivered reports whether the channel accepted the message.
	Delivered bool
	// Err describes the failure; it wraps ErrDeliveryFailure.
	Err error
	// Duration is how long the send took.
	Duration time.Duration
}

// Detail returns the failure description or an empty string.
func (o *DeliveryOutcome) Detail() string {
	if o.Err == nil {
		return ""
	}

	return o.Err.Error()
}

// Event is the ephemeral record of one triggered alert.
type Event struct {
	// ID correlates logs of one triggering request.
	ID string
	// Status is the triggered status.
	Status Status
	// Location is the snapshot supplied with the trigger.
	Location *Location
	// Message is what every contact received.
	Message Message
	// Outcomes holds exactly one entry per resolved contact.
	Outcomes []DeliveryOutcome
}

// FailedContact names a contact the alert could not be delivered to.
type FailedContact struct {
	Name   string
	Reason string
}

// Result is the consolidated answer of one status change.
type Result struct {
	// Status is the status that was written.
	Status Status
	// StatusWritten is true once the status store accepted the write.
	StatusWritten bool
	// Notified lists names of contacts the channel accepted the message for.
	Notified []string
	// Failed lists contacts whose delivery failed.
	Failed []FailedContact
	// MapLink is the link used in the message.
	MapLink string
	// Event is the alert event behind this result.
	Event *Event
}

// NewResult consolidates an alert event into a caller-facing result.
func NewResult(event *Event) *Result {
	result := &Result{
		Status:        event.Status,
		StatusWritten: true,
		Notified:      make([]string, 0, len(event.Outcomes)),
		MapLink:       event.Message.MapLink,
		Event:         event,
	}

	for i := range event.Outcomes {
		outcome := &event.Outcomes[i]
		if outcome.Delivered {
			result.Notified = append(result.Notified, outcome.ContactName)
			continue
		}

		result.Failed = append(result.Failed, FailedContact{
			Name:   outcome.ContactName,
			Reason: outcome.Detail(),
		})
	}

	return result
}

// NoContacts reports whether the user had nobody to notify.
func (r *Result) NoContacts() bool {
	return len(r.Notified) == 0 && len(r.Failed) == 0
}

// Summary renders the text shown to the user who triggered the alert.
func (r *Result) Summary() string {
	var b strings.Builder

	if r.Status == StatusPanic {
		b.WriteString("🚨 Panic alert sent to: ")
	} else {
		b.WriteString("✅ You are safe! Notified: ")
	}

	switch {
	case r.NoContacts():
		b.WriteString(NoContactsToNotify)
	case len(r.Notified) == 0:
		b.WriteString("nobody")
	default:
		b.WriteString(strings.Join(r.Notified, ", "))
	}

	if len(r.Failed) > 0 {
		failed := make([]string, 0, len(r.Failed))
		for _, f := range r.Failed {
			failed = append(failed, f.Name+" ("+f.Reason+")")
		}

		b.WriteString("\nFailed: ")
		b.WriteString(strings.Join(failed, ", "))
	}

	b.WriteString("\nLocation: ")
	b.WriteString(r.MapLink)

	return b.String()
}
