// Package form implements the enquiry form's conditional "other event" field
// and its submit-time validation.
package form

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// EventTypeOthers is the event type that reveals the free-text field.
const EventTypeOthers = "Others"

// Enquiry is the fixed field set collected on submit.
type Enquiry struct {
	Name       string `json:"name" validate:"required,max=100"`
	Email      string `json:"email" validate:"required,email,max=255"`
	Mobile     string `json:"mobile" validate:"required,mobile"`
	City       string `json:"city" validate:"required,max=200"`
	EventType  string `json:"eventType" validate:"required,max=100"`
	OtherEvent string `json:"otherEvent" validate:"max=200"`
	Message    string `json:"message" validate:"max=2000"`
}

// trimmed returns a copy with every free-text field trimmed. EventType comes
// from a fixed list and is kept as given.
func (e Enquiry) trimmed() Enquiry {
	return Enquiry{
		Name:       strings.TrimSpace(e.Name),
		Email:      strings.TrimSpace(e.Email),
		Mobile:     strings.TrimSpace(e.Mobile),
		City:       strings.TrimSpace(e.City),
		EventType:  e.EventType,
		OtherEvent: strings.TrimSpace(e.OtherEvent),
		Message:    strings.TrimSpace(e.Message),
	}
}

// Ack is returned by a Submitter once an enquiry has been accepted.
type Ack struct {
	ID         uuid.UUID `json:"id"`
	ReceivedAt time.Time `json:"received_at"`
}
