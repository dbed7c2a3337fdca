package events

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/apache/pulsar-client-go/pulsar"
	"github.com/easyearn/admin-console/models"
)

// Notifier publishes audit events for actions taken in the console.
type Notifier interface {
	Publish(ctx context.Context, event models.AuditEvent) error
	Close()
}

type EventPublisher struct {
	client   pulsar.Client
	producer pulsar.Producer
}

// NewEventPublisher initializes the Pulsar client and producer.
func NewEventPublisher(pulsarURL, topic string) (*EventPublisher, error) {
	client, err := pulsar.NewClient(pulsar.ClientOptions{
		URL: pulsarURL,
	})
	if err != nil {
		return nil, fmt.Errorf("could not create Pulsar client: %w", err)
	}

	producer, err := client.CreateProducer(pulsar.ProducerOptions{
		Topic: topic,
	})
	if err != nil {
		client.Close()
		return nil, fmt.Errorf("could not create Pulsar producer: %w", err)
	}

	return &EventPublisher{client: client, producer: producer}, nil
}

// Publish sends an audit event, keyed by its ID.
func (p *EventPublisher) Publish(ctx context.Context, event models.AuditEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("could not serialize audit event: %w", err)
	}

	_, err = p.producer.Send(ctx, &pulsar.ProducerMessage{
		Key:        event.ID.String(),
		Payload:    payload,
		Properties: map[string]string{"action": event.Action},
		EventTime:  event.CreatedAt,
	})
	if err != nil {
		return fmt.Errorf("could not send audit event to Pulsar: %w", err)
	}

	return nil
}

// Close cleans up the Pulsar producer and client.
func (p *EventPublisher) Close() {
	if p.producer != nil {
		p.producer.Close()
	}
	if p.client != nil {
		p.client.Close()
	}
}

// DecodeAuditEvent parses a message payload produced by Publish.
func DecodeAuditEvent(payload []byte) (models.AuditEvent, error) {
	var event models.AuditEvent
	if err := json.Unmarshal(payload, &event); err != nil {
		return event, fmt.Errorf("could not decode audit event: %w", err)
	}
	if event.Action == "" {
		return event, fmt.Errorf("audit event %s has no action", event.ID)
	}
	return event, nil
}
