package pubsub

import (
	"context"
	"encoding/json"
	"log/slog"

	"taskflow/internal/domain/lifecycle"
	"taskflow/internal/domain/service"

	"github.com/pkg/errors"
	cdkpubsub "gocloud.dev/pubsub"
	_ "gocloud.dev/pubsub/mempubsub" // registers mem://
)

// goCloudPublisher implements EventPublisher on a portable Go CDK topic.
type goCloudPublisher struct {
	topic  *cdkpubsub.Topic
	logger *slog.Logger
}

// NewGoCloudPublisher opens the topic behind topicURL, e.g. "mem://task-events".
func NewGoCloudPublisher(ctx context.Context, topicURL string, logger *slog.Logger) (service.EventPublisher, error) {
	topic, err := cdkpubsub.OpenTopic(ctx, topicURL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open topic %s", topicURL)
	}

	return &goCloudPublisher{topic: topic, logger: logger}, nil
}

func (p *goCloudPublisher) PublishTaskEvent(ctx context.Context, event *service.TaskEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return errors.WithStack(err)
	}

	if err := p.topic.Send(ctx, &cdkpubsub.Message{
		Body:     body,
		Metadata: eventAttributes(event),
	}); err != nil {
		return errors.WithStack(err)
	}

	p.logger.Debug("[GoCloudPubSub] Event published",
		slog.String("type", string(event.Type)),
		slog.String("task_id", event.TaskID),
	)

	return nil
}

func (p *goCloudPublisher) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
	defer cancel()

	return errors.WithStack(p.topic.Shutdown(ctx))
}
