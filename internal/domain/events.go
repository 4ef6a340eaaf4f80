package domain

import (
	"context"
	"time"
)

// EventType identifies the kind of configuration change an event records.
type EventType string

const (
	// EventType_SOLVE_MODEL_CREATED represents the event when a solve model descriptor is created.
	EventType_SOLVE_MODEL_CREATED EventType = "SOLVE_MODEL.CREATED"
	// EventType_SOLVE_MODEL_UPDATED represents the event when a solve model descriptor is changed.
	EventType_SOLVE_MODEL_UPDATED EventType = "SOLVE_MODEL.UPDATED"
	// EventType_SOLVE_MODEL_DELETED represents the event when a solve model descriptor is removed.
	EventType_SOLVE_MODEL_DELETED EventType = "SOLVE_MODEL.DELETED"
	// EventType_MODEL_SETTINGS_UPDATED represents the event when endpoint settings are edited.
	EventType_MODEL_SETTINGS_UPDATED EventType = "MODEL_SETTINGS.UPDATED"
)

// ModelConfigEvent records an administrative change of the model configuration.
type ModelConfigEvent struct {
	Type      EventType `json:"type"`
	EntityID  string    `json:"entity_id"`
	ModelID   string    `json:"model_id,omitempty"`
	Keys      []string  `json:"keys,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// EventPublisher defines the interface for publishing events.
type EventPublisher interface {
	PublishEvent(ctx context.Context, event OutboxEvent) error
}

// EntityType returns the outbox entity type the event refers to.
func (e ModelConfigEvent) EntityType() OutboxEntityType {
	if e.Type == EventType_MODEL_SETTINGS_UPDATED {
		return OutboxEntityType_ModelSettings
	}
	return OutboxEntityType_SolveModel
}
