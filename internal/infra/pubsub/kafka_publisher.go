package pubsub

import (
	"context"
	"crypto/tls"
	"encoding/json"
	"log/slog"
	"time"

	"pixorva/config"
	"pixorva/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/segmentio/kafka-go"
	"github.com/segmentio/kafka-go/sasl/plain"
)

// messageWriter is the subset of *kafka.Writer used by the publisher
type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// kafkaPublisher implements EventPublisher on a Kafka topic
type kafkaPublisher struct {
	writer messageWriter
	logger *slog.Logger
}

// NewKafkaPublisher creates a synchronous writer. SASL/PLAIN over TLS is used when a username is set.
func NewKafkaPublisher(cfg *config.KafkaConfig, logger *slog.Logger) service.EventPublisher {
	writer := &kafka.Writer{
		Addr:         kafka.TCP(cfg.Brokers...),
		Topic:        cfg.Topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireAll,
		Async:        false,
		WriteTimeout: 10 * time.Second,
	}
	if cfg.Username != "" {
		writer.Transport = &kafka.Transport{
			SASL: plain.Mechanism{
				Username: cfg.Username,
				Password: cfg.Password,
			},
			TLS: &tls.Config{MinVersion: tls.VersionTLS12},
		}
	}

	return newKafkaPublisher(writer, logger)
}

func newKafkaPublisher(writer messageWriter, logger *slog.Logger) *kafkaPublisher {
	return &kafkaPublisher{writer: writer, logger: logger}
}

// PublishMarketplaceEvent writes the event keyed by subject so one principal's events share a partition
func (p *kafkaPublisher) PublishMarketplaceEvent(ctx context.Context, event *service.MarketplaceEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return errors.WithStack(err)
	}

	attributes := eventAttributes(event)
	headers := make([]kafka.Header, 0, len(attributes))
	for k, v := range attributes {
		headers = append(headers, kafka.Header{Key: k, Value: []byte(v)})
	}

	p.logger.Info("[Kafka] Publishing event",
		slog.String("event_id", event.EventID),
		slog.String("type", event.Type),
	)

	if err := p.writer.WriteMessages(ctx, kafka.Message{
		Key:     []byte(event.SubjectID),
		Value:   data,
		Headers: headers,
		Time:    event.OccurredAt,
	}); err != nil {
		return errors.Wrap(err, "failed to write kafka message")
	}

	return nil
}

// Close flushes and closes the writer
func (p *kafkaPublisher) Close() error {
	return errors.WithStack(p.writer.Close())
}
