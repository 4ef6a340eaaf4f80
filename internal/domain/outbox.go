package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// OutboxStatus represents the processing lifecycle status of an outbox event.
type OutboxStatus string

const (
	// OutboxStatus_Pending indicates the event is ready to be processed.
	OutboxStatus_Pending OutboxStatus = "PENDING"
	// OutboxStatus_Failed indicates the event exceeded retries and stopped processing.
	OutboxStatus_Failed OutboxStatus = "FAILED"
)

// OutboxEntityType identifies the configuration entity represented by an outbox event.
type OutboxEntityType string

const (
	// OutboxEntityType_SolveModel represents solve model descriptor events.
	OutboxEntityType_SolveModel OutboxEntityType = "SolveModel"
	// OutboxEntityType_ModelSettings represents endpoint settings events.
	OutboxEntityType_ModelSettings OutboxEntityType = "ModelSettings"
)

// OutboxTopic identifies the broker topic used for publishing outbox events.
type OutboxTopic string

const (
	// OutboxTopic_ModelConfig is the topic for model configuration events.
	OutboxTopic_ModelConfig OutboxTopic = "ModelConfig"
)

// DefaultOutboxMaxRetries is the number of publish attempts before an event is marked failed.
const DefaultOutboxMaxRetries = 5

// OutboxEvent represents an event stored in the outbox.
type OutboxEvent struct {
	ID         uuid.UUID
	EntityType OutboxEntityType
	EntityID   string
	Topic      OutboxTopic
	EventType  EventType
	Payload    []byte
	Status     OutboxStatus
	RetryCount int
	MaxRetries int
	LastError  *string
	CreatedAt  time.Time
}

// OutboxRepository defines the interface for managing outbox events.
type OutboxRepository interface {
	// CreateModelConfigEvent records a configuration change event in the outbox.
	CreateModelConfigEvent(ctx context.Context, event ModelConfigEvent) error
	// FetchPendingEvents retrieves a batch of pending outbox events.
	FetchPendingEvents(ctx context.Context, limit int) ([]OutboxEvent, error)
	// UpdateEvent updates the status, retry count, and last error of an outbox event.
	UpdateEvent(ctx context.Context, eventID uuid.UUID, status OutboxStatus, retryCount int, lastError string) error
	// DeleteEvent deletes an event from the outbox.
	DeleteEvent(ctx context.Context, eventID uuid.UUID) error
}
