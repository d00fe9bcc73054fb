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

	"taskflow/config"
	"taskflow/internal/domain/constants"
	"taskflow/internal/domain/entity"
	"taskflow/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	cdkpubsub "gocloud.dev/pubsub"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestEvent() *service.TaskEvent {
	return &service.TaskEvent{
		RequestID:  "req-42",
		Type:       entity.TaskEventCreated,
		TaskID:     "5f0c6f9e-6a55-4f43-9a44-0b2a3f2c1d10",
		UserID:     "0b8d3d61-2f7b-4a38-8a8e-3c7cbbd7d7e5",
		Status:     entity.TaskStatusTodo,
		OccurredAt: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestNewPublisher_NoProvider(t *testing.T) {
	publisher, err := newPublisher(context.Background(), &config.PubSubConfig{}, newDiscardLogger())
	require.NoError(t, err)

	assert.IsType(t, &noopPublisher{}, publisher)
	assert.NoError(t, publisher.PublishTaskEvent(context.Background(), newTestEvent()))
	assert.NoError(t, publisher.Close())
}

func TestNewPublisher_InvalidConfig(t *testing.T) {
	tests := []struct {
		name string
		cfg  *config.PubSubConfig
	}{
		{name: "local without endpoint", cfg: &config.PubSubConfig{Provider: constants.PubSubProviderLocal}},
		{name: "google without project", cfg: &config.PubSubConfig{Provider: constants.PubSubProviderGoogle, TopicID: "t"}},
		{name: "google without topic", cfg: &config.PubSubConfig{Provider: constants.PubSubProviderGoogle, ProjectID: "p"}},
		{name: "gocloud without url", cfg: &config.PubSubConfig{Provider: constants.PubSubProviderGoCloud}},
		{name: "unknown provider", cfg: &config.PubSubConfig{Provider: "kafka"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := newPublisher(context.Background(), tt.cfg, newDiscardLogger())
			assert.Error(t, err)
		})
	}
}

func TestLocalHTTPPublisher_PostsPushEnvelope(t *testing.T) {
	var (
		received  PubSubPushMessage
		requestID string
	)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID = r.Header.Get("X-Request-Id")
		_ = json.NewDecoder(r.Body).Decode(&received)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	publisher, err := newPublisher(context.Background(), &config.PubSubConfig{
		Provider:      constants.PubSubProviderLocal,
		LocalEndpoint: server.URL,
	}, newDiscardLogger())
	require.NoError(t, err)

	event := newTestEvent()
	require.NoError(t, publisher.PublishTaskEvent(context.Background(), event))

	assert.Equal(t, "req-42", requestID)
	assert.Equal(t, "task.created", received.Message.Attributes["event_type"])
	assert.Equal(t, event.TaskID, received.Message.Attributes["task_id"])
	assert.NotEmpty(t, received.Message.MessageID)

	data, err := base64.StdEncoding.DecodeString(received.Message.Data)
	require.NoError(t, err)

	var decoded service.TaskEvent
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, event.Type, decoded.Type)
	assert.Equal(t, event.UserID, decoded.UserID)
}

func TestLocalHTTPPublisher_NonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, newDiscardLogger())

	err := publisher.PublishTaskEvent(context.Background(), newTestEvent())

	assert.ErrorContains(t, err, "503")
}

func TestGoCloudPublisher_DeliversToSubscription(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	publisher, err := newPublisher(ctx, &config.PubSubConfig{
		Provider: constants.PubSubProviderGoCloud,
		TopicURL: "mem://task-events-test",
	}, newDiscardLogger())
	require.NoError(t, err)
	defer publisher.Close()

	subscription, err := cdkpubsub.OpenSubscription(ctx, "mem://task-events-test")
	require.NoError(t, err)
	defer subscription.Shutdown(ctx)

	event := newTestEvent()
	require.NoError(t, publisher.PublishTaskEvent(ctx, event))

	msg, err := subscription.Receive(ctx)
	require.NoError(t, err)
	msg.Ack()

	assert.Equal(t, "req-42", msg.Metadata["request_id"])

	var decoded service.TaskEvent
	require.NoError(t, json.Unmarshal(msg.Body, &decoded))
	assert.Equal(t, entity.TaskEventCreated, decoded.Type)
	assert.Equal(t, event.TaskID, decoded.TaskID)
}
