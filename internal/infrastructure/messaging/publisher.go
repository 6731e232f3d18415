package messaging

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/bibbank/message-adapter/internal/domain/port"
	"github.com/bibbank/message-adapter/internal/events"
	"github.com/bibbank/message-adapter/internal/infrastructure/kafka"
)

var _ port.EventPublisher = (*Publisher)(nil)

// producer is the slice of kafka.Producer the publisher needs. Narrowed for
// testability.
type producer interface {
	Publish(ctx context.Context, topic string, messages ...kafka.Message) error
}

// Publisher implements EventPublisher using Kafka.
type Publisher struct {
	producer producer
}

func NewPublisher(p producer) *Publisher {
	return &Publisher{producer: p}
}

func (p *Publisher) Publish(ctx context.Context, topic string, domainEvents ...events.DomainEvent) error {
	var messages []kafka.Message
	for _, evt := range domainEvents {
		payload, err := json.Marshal(evt)
		if err != nil {
			return fmt.Errorf("marshal event %s: %w", evt.EventType(), err)
		}
		messages = append(messages, kafka.Message{
			Key:   []byte(evt.AggregateID()),
			Value: payload,
			Headers: map[string]string{
				"event_type":     evt.EventType(),
				"aggregate_type": evt.AggregateType(),
				"event_id":       evt.EventID().String(),
			},
		})
	}
	if err := p.producer.Publish(ctx, topic, messages...); err != nil {
		return fmt.Errorf("kafka publish: %w", err)
	}
	return nil
}
