package pubsub

import (
	"context"
	"fmt"
	"log"

	pubsubV2 "cloud.google.com/go/pubsub/v2"
	"cloud.google.com/go/pubsub/v2/apiv1/pubsubpb"
	"github.com/cleitonmarx/symbiont-ai-mathsolver/internal/domain"
	"github.com/cleitonmarx/symbiont-ai-mathsolver/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// PubSubEventPublisher implements domain.EventPublisher using Google Cloud Pub/Sub
type PubSubEventPublisher struct {
	Client *pubsubV2.Client
}

// NewPubSubEventPublisher creates a new instance of PubSubEventPublisher
func NewPubSubEventPublisher(client *pubsubV2.Client) PubSubEventPublisher {
	return PubSubEventPublisher{Client: client}
}

// PublishEvent publishes the given event to the appropriate Pub/Sub topic
func (p PubSubEventPublisher) PublishEvent(ctx context.Context, event domain.OutboxEvent) error {
	spanCtx, span := telemetry.Start(ctx,
		trace.WithAttributes(
			attribute.String("event_id", event.ID.String()),
			attribute.String("event_type", string(event.EventType)),
			attribute.String("topic", string(event.Topic)),
		),
	)
	defer span.End()

	result := p.Client.Publisher(string(event.Topic)).Publish(spanCtx, &pubsubV2.Message{
		Data: event.Payload,
		Attributes: map[string]string{
			"event_type":  string(event.EventType),
			"entity_type": string(event.EntityType),
			"entity_id":   event.EntityID,
		},
	})

	_, err := result.Get(spanCtx)
	telemetry.RecordErrorAndStatus(span, err)
	return err
}

// EnsureTopic creates the topic when it does not exist yet.
func (p PubSubEventPublisher) EnsureTopic(ctx context.Context, topic domain.OutboxTopic) error {
	name := fmt.Sprintf("projects/%s/topics/%s", p.Client.Project(), topic)
	_, err := p.Client.TopicAdminClient.CreateTopic(ctx, &pubsubpb.Topic{Name: name})
	if err != nil && status.Code(err) != codes.AlreadyExists {
		return fmt.Errorf("failed to create topic %s: %w", topic, err)
	}
	return nil
}

// LogEventPublisher implements domain.EventPublisher by logging events. It is
// used when no broker is configured.
type LogEventPublisher struct {
	Logger *log.Logger
}

// PublishEvent logs the event and always succeeds.
func (p LogEventPublisher) PublishEvent(_ context.Context, event domain.OutboxEvent) error {
	p.Logger.Printf("LogEventPublisher: %s %s %s", event.Topic, event.EventType, event.Payload)
	return nil
}

// InitPublisher registers the domain.EventPublisher implementation.
type InitPublisher struct {
	Logger    *log.Logger `resolve:""`
	ProjectID string      `config:"PUBSUB_PROJECT_ID" default:"-"`
}

// Initialize registers a PubSubEventPublisher when Pub/Sub is configured and a
// LogEventPublisher otherwise.
func (i *InitPublisher) Initialize(ctx context.Context) (context.Context, error) {
	if i.ProjectID == "-" {
		depend.Register[domain.EventPublisher](LogEventPublisher{Logger: i.Logger})
		return ctx, nil
	}

	client, err := depend.Resolve[*pubsubV2.Client]()
	if err != nil {
		return ctx, err
	}

	publisher := NewPubSubEventPublisher(client)
	if err := publisher.EnsureTopic(ctx, domain.OutboxTopic_ModelConfig); err != nil {
		return ctx, err
	}

	depend.Register[domain.EventPublisher](publisher)
	return ctx, nil
}
