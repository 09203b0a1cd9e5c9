package form

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/mwhite7112/cityform/internal/db"
)

// EnquiryPublisher announces stored enquiries.
type EnquiryPublisher interface {
	PublishEnquiryReceived(ctx context.Context, id uuid.UUID, city, eventType string) error
}

// StoreSubmitter persists enquiries and, when a publisher is set, announces
// them. Once the row is stored the enquiry counts as received even if the
// publish fails.
type StoreSubmitter struct {
	q         db.Querier
	publisher EnquiryPublisher
}

func NewStoreSubmitter(q db.Querier, publisher EnquiryPublisher) *StoreSubmitter {
	return &StoreSubmitter{q: q, publisher: publisher}
}

func (s *StoreSubmitter) Submit(ctx context.Context, enq Enquiry) (Ack, error) {
	row, err := s.q.CreateEnquiry(ctx, db.CreateEnquiryParams{
		Name:       enq.Name,
		Email:      enq.Email,
		Mobile:     enq.Mobile,
		City:       enq.City,
		EventType:  enq.EventType,
		OtherEvent: enq.OtherEvent,
		Message:    enq.Message,
	})
	if err != nil {
		return Ack{}, fmt.Errorf("store enquiry: %w", err)
	}

	if s.publisher != nil {
		if err := s.publisher.PublishEnquiryReceived(ctx, row.ID, row.City, row.EventType); err != nil {
			log.Warn().Err(err).Str("enquiry_id", row.ID.String()).Msg("publish enquiry.received failed")
		}
	}
	return Ack{ID: row.ID, ReceivedAt: row.CreatedAt}, nil
}

// LogSubmitter accepts every enquiry and only logs it. It is the transport
// used when no database is configured.
type LogSubmitter struct{}

func (LogSubmitter) Submit(_ context.Context, enq Enquiry) (Ack, error) {
	ack := Ack{ID: uuid.New(), ReceivedAt: time.Now().UTC()}
	log.Info().
		Str("enquiry_id", ack.ID.String()).
		Str("city", enq.City).
		Str("event_type", enq.EventType).
		Msg("enquiry accepted without storage")
	return ack, nil
}
