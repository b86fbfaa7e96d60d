package pubsub

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"pixorva/config"
	"pixorva/internal/domain/constants"
	"pixorva/internal/domain/service"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestEvent() *service.MarketplaceEvent {
	return &service.MarketplaceEvent{
		EventID:    "evt-1",
		Type:       constants.EventProductCreated,
		RequestID:  "req-1",
		SubjectID:  "uid-1",
		ResourceID: "prod-1",
		OccurredAt: time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC),
	}
}

func TestLocalHTTPPublisher_PublishMarketplaceEvent(t *testing.T) {
	var received PubSubPushMessage
	var requestID string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID = r.Header.Get("X-Request-Id")
		_ = json.NewDecoder(r.Body).Decode(&received)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, newTestLogger())

	err := publisher.PublishMarketplaceEvent(context.Background(), newTestEvent())

	require.NoError(t, err)
	assert.Equal(t, "req-1", requestID)
	assert.Equal(t, "evt-1", received.Message.MessageID)
	assert.Equal(t, constants.EventProductCreated, received.Message.Attributes["event_type"])

	data, err := base64.StdEncoding.DecodeString(received.Message.Data)
	require.NoError(t, err)
	var decoded service.MarketplaceEvent
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, "prod-1", decoded.ResourceID)
}

func TestLocalHTTPPublisher_NonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, newTestLogger())

	err := publisher.PublishMarketplaceEvent(context.Background(), newTestEvent())

	assert.Error(t, err)
}

type fakeWriter struct {
	messages []kafka.Message
	err      error
	closed   bool
}

func (w *fakeWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	if w.err != nil {
		return w.err
	}
	w.messages = append(w.messages, msgs...)

	return nil
}

func (w *fakeWriter) Close() error {
	w.closed = true

	return nil
}

func TestKafkaPublisher_PublishMarketplaceEvent(t *testing.T) {
	writer := &fakeWriter{}
	publisher := newKafkaPublisher(writer, newTestLogger())

	require.NoError(t, publisher.PublishMarketplaceEvent(context.Background(), newTestEvent()))
	require.NoError(t, publisher.Close())

	require.Len(t, writer.messages, 1)
	msg := writer.messages[0]
	assert.Equal(t, "uid-1", string(msg.Key))
	assert.Contains(t, string(msg.Value), `"type":"product.created"`)
	assert.True(t, writer.closed)

	headers := map[string]string{}
	for _, h := range msg.Headers {
		headers[h.Key] = string(h.Value)
	}
	assert.Equal(t, "evt-1", headers["event_id"])
	assert.Equal(t, "req-1", headers["request_id"])
}

func TestNewEventPublisher_Providers(t *testing.T) {
	t.Run("not configured uses noop", func(t *testing.T) {
		publisher, err := NewEventPublisher(PublisherParams{
			Lc:     fxtest.NewLifecycle(t),
			Ctx:    context.Background(),
			Config: &config.Config{},
			Logger: newTestLogger(),
		})

		require.NoError(t, err)
		assert.IsType(t, &noopPublisher{}, publisher)
		assert.NoError(t, publisher.PublishMarketplaceEvent(context.Background(), newTestEvent()))
	})

	t.Run("unknown provider fails", func(t *testing.T) {
		_, err := NewEventPublisher(PublisherParams{
			Lc:     fxtest.NewLifecycle(t),
			Ctx:    context.Background(),
			Config: &config.Config{PubSub: &config.PubSubConfig{Provider: "carrier-pigeon"}},
			Logger: newTestLogger(),
		})

		assert.Error(t, err)
	})

	t.Run("kafka requires brokers", func(t *testing.T) {
		_, err := NewEventPublisher(PublisherParams{
			Lc:     fxtest.NewLifecycle(t),
			Ctx:    context.Background(),
			Config: &config.Config{PubSub: &config.PubSubConfig{Provider: constants.PubSubProviderKafka}},
			Logger: newTestLogger(),
		})

		assert.Error(t, err)
	})

	t.Run("local provider", func(t *testing.T) {
		lc := fxtest.NewLifecycle(t)
		publisher, err := NewEventPublisher(PublisherParams{
			Lc:     lc,
			Ctx:    context.Background(),
			Config: &config.Config{PubSub: &config.PubSubConfig{Provider: constants.PubSubProviderLocal, LocalEndpoint: "http://localhost:9/push"}},
			Logger: newTestLogger(),
		})

		require.NoError(t, err)
		assert.NotNil(t, publisher)
		lc.RequireStart().RequireStop()
	})
}
