package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
)

const (
	exchangeName = "cityform.topic"
	routingKey   = "enquiry.received"
)

// EnquiryPublisher publishes enquiry.received events.
type EnquiryPublisher struct {
	conn *amqp.Connection
}

type enquiryReceivedEvent struct {
	Timestamp string    `json:"timestamp"`
	EnquiryID uuid.UUID `json:"enquiry_id"`
	City      string    `json:"city"`
	EventType string    `json:"event_type"`
}

// NewEnquiryPublisher creates a RabbitMQ publisher and ensures the topic
// exchange exists.
func NewEnquiryPublisher(rabbitmqURL string) (*EnquiryPublisher, error) {
	conn, err := amqp.Dial(rabbitmqURL)
	if err != nil {
		return nil, fmt.Errorf("connect rabbitmq: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}
	defer ch.Close()

	if err := ch.ExchangeDeclare(
		exchangeName,
		"topic",
		true,
		false,
		false,
		false,
		nil,
	); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("declare exchange %q: %w", exchangeName, err)
	}

	return &EnquiryPublisher{conn: conn}, nil
}

// PublishEnquiryReceived publishes the minimal enquiry.received payload. The
// contact details stay in the database.
func (p *EnquiryPublisher) PublishEnquiryReceived(ctx context.Context, id uuid.UUID, city, eventType string) error {
	ch, err := p.conn.Channel()
	if err != nil {
		return fmt.Errorf("open channel: %w", err)
	}
	defer ch.Close()

	body, err := encodeEnquiryReceived(id, city, eventType, time.Now().UTC())
	if err != nil {
		return err
	}

	if err := ch.PublishWithContext(ctx, exchangeName, routingKey, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		MessageId:    id.String(),
		Timestamp:    time.Now().UTC(),
		Body:         body,
	}); err != nil {
		return fmt.Errorf("publish enquiry.received: %w", err)
	}

	return nil
}

func encodeEnquiryReceived(id uuid.UUID, city, eventType string, at time.Time) ([]byte, error) {
	body, err := json.Marshal(enquiryReceivedEvent{
		Timestamp: at.Format(time.RFC3339),
		EnquiryID: id,
		City:      city,
		EventType: eventType,
	})
	if err != nil {
		return nil, fmt.Errorf("marshal enquiry.received event: %w", err)
	}
	return body, nil
}

// Close closes the RabbitMQ connection.
func (p *EnquiryPublisher) Close() error {
	return p.conn.Close()
}
