package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/IBM/sarama"
	"github.com/rs/zerolog"
)

// KafkaProducer sends JSON events synchronously
type KafkaProducer struct {
	producer     sarama.SyncProducer
	sendTimeout  time.Duration
	logger       zerolog.Logger
	successCount atomic.Uint64
	errorCount   atomic.Uint64
	lastErr      atomic.Bool
}

// NewKafkaProducer creates a SyncProducer whose retries fit inside sendTimeout
func NewKafkaProducer(brokers []string, clientID string, sendTimeout time.Duration, logger zerolog.Logger) (*KafkaProducer, error) {
	if len(brokers) == 0 {
		return nil, fmt.Errorf("no kafka brokers specified")
	}

	config := sarama.NewConfig()
	config.ClientID = clientID
	config.Producer.Return.Successes = true
	config.Producer.Retry.Max = 2
	config.Producer.Retry.Backoff = 100 * time.Millisecond
	config.Producer.Timeout = sendTimeout
	config.Metadata.Retry.Max = 1
	config.Net.DialTimeout = sendTimeout
	config.Net.ReadTimeout = sendTimeout
	config.Net.WriteTimeout = sendTimeout
	config.Producer.RequiredAcks = sarama.WaitForAll
	config.Producer.Partitioner = sarama.NewHashPartitioner

	producer, err := sarama.NewSyncProducer(brokers, config)
	if err != nil {
		logger.Error().Err(err).Msg("failed to create Kafka SyncProducer")
		return nil, err
	}

	logger.Info().Strs("brokers", brokers).Msg("Kafka SyncProducer successfully initialized")

	return NewKafkaProducerWith(producer, sendTimeout, logger), nil
}

// NewKafkaProducerWith wraps an existing sarama producer
func NewKafkaProducerWith(producer sarama.SyncProducer, sendTimeout time.Duration, logger zerolog.Logger) *KafkaProducer {
	return &KafkaProducer{
		producer:    producer,
		sendTimeout: sendTimeout,
		logger:      logger,
	}
}

type sendResult struct {
	partition int32
	offset    int64
	err       error
}

// SendToTopic sends any event to a specific topic.
// It gives up after sendTimeout or when ctx ends; an abandoned message may still be delivered.
func (p *KafkaProducer) SendToTopic(ctx context.Context, topic string, key string, event any) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context cancelled before sending: %w", err)
	}

	bytes, err := json.Marshal(event)
	if err != nil {
		p.errorCount.Add(1)
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	msg := &sarama.ProducerMessage{
		Topic: topic,
		Key:   sarama.StringEncoder(key),
		Value: sarama.ByteEncoder(bytes),
	}

	sendCtx, cancel := context.WithTimeout(ctx, p.sendTimeout)
	defer cancel()

	done := make(chan sendResult, 1)
	start := time.Now()
	go func() {
		partition, offset, err := p.producer.SendMessage(msg)
		done <- sendResult{partition: partition, offset: offset, err: err}
	}()

	var res sendResult
	select {
	case res = <-done:
	case <-sendCtx.Done():
		res.err = fmt.Errorf("kafka send abandoned: %w", sendCtx.Err())
	}
	partition, offset, err := res.partition, res.offset, res.err
	latency := time.Since(start)

	if err != nil {
		count := p.errorCount.Add(1)
		p.lastErr.Store(true)
		p.logger.Error().
			Err(err).
			Str("topic", topic).
			Str("key", key).
			Dur("latency", latency).
			Uint64("error_count", count).
			Msg("failed to send event to kafka")
		return err
	}

	count := p.successCount.Add(1)
	p.lastErr.Store(false)

	p.logger.Debug().
		Str("topic", topic).
		Str("key", key).
		Int32("partition", partition).
		Int64("offset", offset).
		Dur("latency", latency).
		Uint64("success_count", count).
		Msg("event sent to kafka")

	return nil
}

// IsHealthy reports false while the most recent send failed
func (p *KafkaProducer) IsHealthy() bool {
	return !p.lastErr.Load()
}

// Close flushes and closes the underlying producer
func (p *KafkaProducer) Close() error {
	if p.producer == nil {
		return nil
	}

	if err := p.producer.Close(); err != nil {
		p.logger.Error().Err(err).Msg("failed to close Kafka producer")
		return err
	}

	p.logger.Info().Msg("Kafka producer successfully closed")
	return nil
}
