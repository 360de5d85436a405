package messaging

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	coreport "github.com/amirhossein-jamali/arena-wallet/internal/domain/port/core"
	"github.com/amirhossein-jamali/arena-wallet/internal/infrastructure/adapter/logger"
)

type recordingWriter struct {
	messages []kafka.Message
	err      error
	closed   bool
}

func (w *recordingWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	if w.err != nil {
		return w.err
	}
	w.messages = append(w.messages, msgs...)
	return nil
}

func (w *recordingWriter) Close() error {
	w.closed = true
	return nil
}

func TestKafkaPublisher_Publish(t *testing.T) {
	writer := &recordingWriter{}
	publisher := newKafkaPublisher(writer, logger.NewNoopLogger())
	event := coreport.Event{
		Type:       "request.processed",
		EntityID:   "wdr_01TEST",
		Kind:       "withdrawal",
		Status:     "completed",
		UserID:     "user-1",
		ActorID:    "admin-1",
		Amount:     "500.00",
		OccurredAt: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
	}

	require.NoError(t, publisher.Publish(context.Background(), event))
	require.Len(t, writer.messages, 1)

	msg := writer.messages[0]
	assert.Equal(t, "wdr_01TEST", string(msg.Key))
	assert.Equal(t, event.OccurredAt, msg.Time)
	assert.Equal(t, "request.processed", string(msg.Headers[0].Value))

	var decoded coreport.Event
	require.NoError(t, json.Unmarshal(msg.Value, &decoded))
	assert.Equal(t, event, decoded)

	require.NoError(t, publisher.Close())
	assert.True(t, writer.closed)
}

func TestKafkaPublisher_PublishError(t *testing.T) {
	publisher := newKafkaPublisher(&recordingWriter{err: errors.New("broker down")}, logger.NewNoopLogger())

	err := publisher.Publish(context.Background(), coreport.Event{Type: "request.submitted"})

	assert.ErrorContains(t, err, "broker down")
}
