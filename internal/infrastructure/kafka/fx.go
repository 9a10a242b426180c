package kafka

import (
	"context"

	"github.com/rs/zerolog"
	"go.uber.org/fx"

	"github.com/hm-yang2/board-share/config"
	"github.com/hm-yang2/board-share/internal/domain/events"
	"github.com/hm-yang2/board-share/internal/infrastructure/metrics"
)

// HealthReporter exposes publisher health to the health endpoints
type HealthReporter interface {
	IsHealthy() bool
}

// PublisherResult is fx.Out struct exposing the publisher under both roles
type PublisherResult struct {
	fx.Out

	Publisher events.Publisher
	Health    HealthReporter
}

// Module provides the domain event publisher for fx DI
var Module = fx.Module("kafka",
	fx.Provide(NewPublisherFx),
)

// NewPublisherFx builds a Kafka-backed publisher, or a log-only one when Kafka is disabled
func NewPublisherFx(
	lc fx.Lifecycle,
	kafkaCfg *config.KafkaConfig,
	serviceCfg *config.ServiceConfig,
	m *metrics.Metrics,
	logger zerolog.Logger,
) (PublisherResult, error) {
	log := logger.With().Str("component", "event-publisher").Logger()

	if !kafkaCfg.Enabled {
		log.Info().Msg("Kafka disabled, domain events are logged only")
		p := NewLogPublisher(log, m)
		return PublisherResult{Publisher: p, Health: p}, nil
	}

	producer, err := NewKafkaProducer(kafkaCfg.Brokers, serviceCfg.Name+"-producer", kafkaCfg.PublishTimeout, log)
	if err != nil {
		return PublisherResult{}, err
	}

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			log.Info().Msg("closing kafka producer...")
			return producer.Close()
		},
	})

	p := NewEventPublisher(producer, kafkaCfg.Topic, m)
	return PublisherResult{Publisher: p, Health: p}, nil
}
