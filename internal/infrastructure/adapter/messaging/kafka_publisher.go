package messaging

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"

	coreport "github.com/amirhossein-jamali/arena-wallet/internal/domain/port/core"
)

// messageWriter is the part of *kafka.Writer the publisher uses
type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// KafkaPublisher publishes lifecycle events keyed by entity id, so events of one request stay ordered
type KafkaPublisher struct {
	writer messageWriter
	logger coreport.Logger
}

// NewKafkaPublisher creates an async, batching writer for the topic
func NewKafkaPublisher(brokers []string, topic string, logger coreport.Logger) *KafkaPublisher {
	writer := &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireOne,
		Async:        true,
		MaxAttempts:  3,
		BatchSize:    100,
		BatchTimeout: 10 * time.Millisecond,
		WriteTimeout: 10 * time.Second,
		Compression:  kafka.Snappy,
		Completion: func(messages []kafka.Message, err error) {
			if err != nil {
				logger.Error("Failed to deliver lifecycle events", map[string]any{
					"count": len(messages),
					"topic": topic,
					"error": err.Error(),
				})
			}
		},
		ErrorLogger: kafka.LoggerFunc(func(msg string, args ...any) {
			logger.Warn(fmt.Sprintf(msg, args...), map[string]any{"source": "kafka"})
		}),
	}

	logger.Info("Kafka publisher initialized", map[string]any{
		"brokers": brokers,
		"topic":   topic,
		"mode":    "async",
	})
	return newKafkaPublisher(writer, logger)
}

func newKafkaPublisher(writer messageWriter, logger coreport.Logger) *KafkaPublisher {
	return &KafkaPublisher{writer: writer, logger: logger}
}

// Publish encodes the event as JSON and hands it to the writer
func (p *KafkaPublisher) Publish(ctx context.Context, event coreport.Event) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to encode event: %w", err)
	}

	msg := kafka.Message{
		Key:   []byte(event.EntityID),
		Value: payload,
		Time:  event.OccurredAt,
		Headers: []kafka.Header{
			{Key: "event-type", Value: []byte(event.Type)},
		},
	}
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("failed to publish %s: %w", event.Type, err)
	}
	return nil
}

// Close flushes pending messages
func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}

// NoopPublisher drops every event; used when Kafka is disabled
type NoopPublisher struct{}

// NewNoopPublisher creates a publisher that does nothing
func NewNoopPublisher() *NoopPublisher {
	return &NoopPublisher{}
}

// Publish does nothing
func (NoopPublisher) Publish(context.Context, coreport.Event) error { return nil }

// Close does nothing
func (NoopPublisher) Close() error { return nil }

var (
	_ coreport.EventPublisher = (*KafkaPublisher)(nil)
	_ coreport.EventPublisher = NoopPublisher{}
)
