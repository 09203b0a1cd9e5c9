package db

import (
	"time"

	"github.com/google/uuid"
)

type Enquiry struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Mobile     string    `json:"mobile"`
	City       string    `json:"city"`
	EventType  string    `json:"event_type"`
	OtherEvent string    `json:"other_event"`
	Message    string    `json:"message"`
	CreatedAt  time.Time `json:"created_at"`
}
