package postgres

import (
	"context"
	"database/sql"

	"github.com/Masterminds/squirrel"
	"github.com/cleitonmarx/symbiont-ai-mathsolver/internal/domain"
	"github.com/cleitonmarx/symbiont-ai-mathsolver/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// SettingsRepository implements domain.SettingsRepository on the system_settings table.
type SettingsRepository struct {
	sb squirrel.StatementBuilderType
}

// NewSettingsRepository creates a new instance of SettingsRepository.
func NewSettingsRepository(br squirrel.BaseRunner) SettingsRepository {
	return SettingsRepository{
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar).RunWith(br),
	}
}

// GetSettings returns the stored values of the given keys. NULL values are returned as blank.
func (sr SettingsRepository) GetSettings(ctx context.Context, keys []string) (map[string]string, error) {
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(
		attribute.StringSlice("keys", keys),
	))
	defer span.End()

	settings := make(map[string]string, len(keys))
	if len(keys) == 0 {
		return settings, nil
	}

	rows, err := sr.sb.
		Select("key", "value").
		From("system_settings").
		Where(squirrel.Eq{"key": keys}).
		QueryContext(spanCtx)
	if telemetry.RecordErrorAndStatus(span, err) {
		return nil, err
	}
	defer rows.Close() //nolint:errcheck

	for rows.Next() {
		var (
			key   string
			value sql.NullString
		)
		if err := rows.Scan(&key, &value); telemetry.RecordErrorAndStatus(span, err) {
			return nil, err
		}
		settings[key] = value.String
	}

	if err := rows.Err(); telemetry.RecordErrorAndStatus(span, err) {
		return nil, err
	}

	return settings, nil
}

// UpsertSetting stores value under key, replacing any existing value.
func (sr SettingsRepository) UpsertSetting(ctx context.Context, key, value string) error {
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(
		attribute.String("key", key),
	))
	defer span.End()

	_, err := sr.sb.
		Insert("system_settings").
		Columns("key", "value").
		Values(key, value).
		Suffix("ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value").
		ExecContext(spanCtx)

	if telemetry.RecordErrorAndStatus(span, err) {
		return err
	}
	return nil
}

// DeleteSetting removes key.
func (sr SettingsRepository) DeleteSetting(ctx context.Context, key string) error {
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(
		attribute.String("key", key),
	))
	defer span.End()

	_, err := sr.sb.
		Delete("system_settings").
		Where(squirrel.Eq{"key": key}).
		ExecContext(spanCtx)

	if telemetry.RecordErrorAndStatus(span, err) {
		return err
	}
	return nil
}

// InitSettingsRepository is a Symbiont initializer for SettingsRepository.
type InitSettingsRepository struct {
	DB *sql.DB `resolve:""`
}

// Initialize registers the SettingsRepository in the dependency container.
func (sr InitSettingsRepository) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[domain.SettingsRepository](NewSettingsRepository(sr.DB))
	return ctx, nil
}
