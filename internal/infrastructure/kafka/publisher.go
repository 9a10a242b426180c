package kafka

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/hm-yang2/board-share/internal/domain/events"
	"github.com/hm-yang2/board-share/internal/infrastructure/metrics"
)

// EventPublisher adapts KafkaProducer to events.Publisher
type EventPublisher struct {
	producer *KafkaProducer
	topic    string
	metrics  *metrics.Metrics
}

// NewEventPublisher creates a publisher writing to a single topic
func NewEventPublisher(producer *KafkaProducer, topic string, m *metrics.Metrics) *EventPublisher {
	return &EventPublisher{producer: producer, topic: topic, metrics: m}
}

// Publish sends the event keyed by its channel or user
func (p *EventPublisher) Publish(ctx context.Context, event events.Event) error {
	start := time.Now()
	if err := p.producer.SendToTopic(ctx, p.topic, event.Key(), event); err != nil {
		p.metrics.RecordEventError("send_failed")
		return err
	}
	p.metrics.RecordEventPublished(event.Type, time.Since(start))
	return nil
}

// IsHealthy reports the producer state
func (p *EventPublisher) IsHealthy() bool {
	return p.producer.IsHealthy()
}

// LogPublisher records events in the log when Kafka is disabled
type LogPublisher struct {
	logger  zerolog.Logger
	metrics *metrics.Metrics
}

// NewLogPublisher creates a publisher that only logs
func NewLogPublisher(logger zerolog.Logger, m *metrics.Metrics) *LogPublisher {
	return &LogPublisher{logger: logger, metrics: m}
}

// Publish logs the event
func (p *LogPublisher) Publish(_ context.Context, event events.Event) error {
	p.logger.Info().
		Str("type", event.Type).
		Uint("actor_id", event.ActorID).
		Uint("channel_id", event.ChannelID).
		Uint("user_id", event.UserID).
		Uint("record_id", event.RecordID).
		Msg("domain event")
	p.metrics.RecordEventPublished(event.Type, 0)
	return nil
}

// IsHealthy is always true
func (p *LogPublisher) IsHealthy() bool {
	return true
}
