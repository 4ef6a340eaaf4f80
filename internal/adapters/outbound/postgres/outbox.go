package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/cleitonmarx/symbiont-ai-mathsolver/internal/domain"
	"github.com/cleitonmarx/symbiont-ai-mathsolver/internal/telemetry"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

var (
	outboxEventFields = []string{
		"id",
		"entity_type",
		"entity_id",
		"topic",
		"event_type",
		"payload",
		"retry_count",
		"max_retries",
		"last_error",
		"created_at",
	}
)

// OutboxRepository implements domain.OutboxRepository using PostgreSQL.
type OutboxRepository struct {
	sb squirrel.StatementBuilderType
}

// NewOutboxRepository creates a new instance of OutboxRepository.
func NewOutboxRepository(br squirrel.BaseRunner) OutboxRepository {
	return OutboxRepository{
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar).RunWith(br),
	}
}

// CreateModelConfigEvent records a configuration change event in the outbox.
func (op OutboxRepository) CreateModelConfigEvent(ctx context.Context, event domain.ModelConfigEvent) error {
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(
		attribute.String("event_type", string(event.Type)),
		attribute.String("entity_id", event.EntityID),
	))
	defer span.End()

	payload, err := json.Marshal(event)
	if telemetry.RecordErrorAndStatus(span, err) {
		return fmt.Errorf("failed to marshal event payload: %w", err)
	}

	_, err = op.sb.Insert("outbox_events").
		Columns(
			outboxEventFields...,
		).
		Values(
			uuid.New(),
			string(event.EntityType()),
			event.EntityID,
			string(domain.OutboxTopic_ModelConfig),
			string(event.Type),
			payload,
			0,
			domain.DefaultOutboxMaxRetries,
			nil,
			event.CreatedAt,
		).
		ExecContext(spanCtx)

	if telemetry.RecordErrorAndStatus(span, err) {
		return fmt.Errorf("failed to insert outbox event: %w", err)
	}

	return nil
}

// FetchPendingEvents retrieves a batch of pending outbox events from the database.
// Rows are locked for the surrounding transaction.
func (op OutboxRepository) FetchPendingEvents(ctx context.Context, limit int) ([]domain.OutboxEvent, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	rows, err := op.sb.
		Select(
			outboxEventFields...,
		).
		From("outbox_events").
		Where(squirrel.Eq{"status": string(domain.OutboxStatus_Pending)}).
		OrderBy("created_at ASC").
		Limit(uint64(limit)).
		Suffix("FOR UPDATE SKIP LOCKED").
		QueryContext(spanCtx)

	if telemetry.RecordErrorAndStatus(span, err) {
		return nil, err
	}
	defer rows.Close() //nolint:errcheck

	var events []domain.OutboxEvent
	for rows.Next() {
		oe := domain.OutboxEvent{Status: domain.OutboxStatus_Pending}
		err := rows.Scan(
			&oe.ID,
			&oe.EntityType,
			&oe.EntityID,
			&oe.Topic,
			&oe.EventType,
			&oe.Payload,
			&oe.RetryCount,
			&oe.MaxRetries,
			&oe.LastError,
			&oe.CreatedAt,
		)
		if telemetry.RecordErrorAndStatus(span, err) {
			return nil, err
		}

		events = append(events, oe)
	}

	if err := rows.Err(); telemetry.RecordErrorAndStatus(span, err) {
		return nil, err
	}

	return events, nil
}

// UpdateEvent updates the status, retry count, and last error of an outbox event.
func (op OutboxRepository) UpdateEvent(ctx context.Context, eventID uuid.UUID, status domain.OutboxStatus, retryCount int, lastError string) error {
	_, err := op.sb.
		Update("outbox_events").
		Set("status", string(status)).
		Set("retry_count", retryCount).
		Set("last_error", lastError).
		Where(squirrel.Eq{"id": eventID}).
		ExecContext(ctx)

	return err
}

// DeleteEvent deletes an outbox event from the database.
func (op OutboxRepository) DeleteEvent(ctx context.Context, eventID uuid.UUID) error {
	_, err := op.sb.
		Delete("outbox_events").
		Where(squirrel.Eq{"id": eventID}).
		ExecContext(ctx)

	return err
}
