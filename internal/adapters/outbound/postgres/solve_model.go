package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/Masterminds/squirrel"
	"github.com/cleitonmarx/symbiont-ai-mathsolver/internal/domain"
	"github.com/cleitonmarx/symbiont-ai-mathsolver/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/jackc/pgx/v5/pgconn"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// uniqueViolation is the Postgres SQLSTATE for a unique constraint violation.
const uniqueViolation = "23505"

var (
	solveModelFields = []string{
		"id",
		"model_id",
		"display_name",
		"sort_order",
		"enabled",
		"created_at",
	}
)

// SolveModelRepository implements domain.SolveModelRepository using PostgreSQL.
type SolveModelRepository struct {
	sb squirrel.StatementBuilderType
}

// NewSolveModelRepository creates a new instance of SolveModelRepository.
func NewSolveModelRepository(br squirrel.BaseRunner) SolveModelRepository {
	return SolveModelRepository{
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar).RunWith(br),
	}
}

// ListSolveModels lists descriptors ordered by sort order then id.
func (sr SolveModelRepository) ListSolveModels(ctx context.Context, enabledOnly bool) ([]domain.SolveModel, error) {
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(
		attribute.Bool("enabled_only", enabledOnly),
	))
	defer span.End()

	qry := sr.sb.
		Select(solveModelFields...).
		From("solve_models").
		OrderBy("sort_order", "id")

	if enabledOnly {
		qry = qry.Where(squirrel.Eq{"enabled": true})
	}

	rows, err := qry.QueryContext(spanCtx)
	if telemetry.RecordErrorAndStatus(span, err) {
		return nil, err
	}
	defer rows.Close() //nolint:errcheck

	models := []domain.SolveModel{}
	for rows.Next() {
		var m domain.SolveModel
		err := rows.Scan(
			&m.ID,
			&m.ModelID,
			&m.DisplayName,
			&m.SortOrder,
			&m.Enabled,
			&m.CreatedAt,
		)
		if telemetry.RecordErrorAndStatus(span, err) {
			return nil, err
		}
		models = append(models, m)
	}

	if err := rows.Err(); telemetry.RecordErrorAndStatus(span, err) {
		return nil, err
	}

	return models, nil
}

// CountSolveModels returns the number of stored descriptors.
func (sr SolveModelRepository) CountSolveModels(ctx context.Context) (int, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	var count int
	err := sr.sb.
		Select("COUNT(*)").
		From("solve_models").
		QueryRowContext(spanCtx).
		Scan(&count)

	if telemetry.RecordErrorAndStatus(span, err) {
		return 0, err
	}
	return count, nil
}

// GetSolveModel retrieves a descriptor by its id.
func (sr SolveModelRepository) GetSolveModel(ctx context.Context, id int64) (domain.SolveModel, bool, error) {
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(
		attribute.Int64("id", id),
	))
	defer span.End()

	return sr.getBy(spanCtx, span, squirrel.Eq{"id": id})
}

// GetSolveModelByModelID retrieves a descriptor by its upstream model id.
func (sr SolveModelRepository) GetSolveModelByModelID(ctx context.Context, modelID string) (domain.SolveModel, bool, error) {
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(
		attribute.String("model_id", modelID),
	))
	defer span.End()

	return sr.getBy(spanCtx, span, squirrel.Eq{"model_id": modelID})
}

func (sr SolveModelRepository) getBy(ctx context.Context, span trace.Span, where squirrel.Eq) (domain.SolveModel, bool, error) {
	var m domain.SolveModel
	err := sr.sb.
		Select(solveModelFields...).
		From("solve_models").
		Where(where).
		QueryRowContext(ctx).
		Scan(
			&m.ID,
			&m.ModelID,
			&m.DisplayName,
			&m.SortOrder,
			&m.Enabled,
			&m.CreatedAt,
		)

	if errors.Is(err, sql.ErrNoRows) {
		return domain.SolveModel{}, false, nil
	}
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.SolveModel{}, false, err
	}
	return m, true, nil
}

// CreateSolveModel inserts a descriptor and returns it with its generated id.
func (sr SolveModelRepository) CreateSolveModel(ctx context.Context, model domain.SolveModel) (domain.SolveModel, error) {
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(
		attribute.String("model_id", model.ModelID),
	))
	defer span.End()

	err := sr.sb.
		Insert("solve_models").
		Columns(
			"model_id",
			"display_name",
			"sort_order",
			"enabled",
			"created_at",
		).
		Values(
			model.ModelID,
			model.DisplayName,
			model.SortOrder,
			model.Enabled,
			model.CreatedAt,
		).
		Suffix("RETURNING id").
		QueryRowContext(spanCtx).
		Scan(&model.ID)

	if telemetry.RecordErrorAndStatus(span, err) {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return domain.SolveModel{}, domain.NewValidationErr("model id already exists")
		}
		return domain.SolveModel{}, err
	}

	return model, nil
}

// UpdateSolveModel stores the mutable fields of a descriptor.
func (sr SolveModelRepository) UpdateSolveModel(ctx context.Context, model domain.SolveModel) error {
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(
		attribute.Int64("id", model.ID),
	))
	defer span.End()

	_, err := sr.sb.
		Update("solve_models").
		Set("display_name", model.DisplayName).
		Set("sort_order", model.SortOrder).
		Set("enabled", model.Enabled).
		Where(squirrel.Eq{"id": model.ID}).
		ExecContext(spanCtx)

	if telemetry.RecordErrorAndStatus(span, err) {
		return err
	}
	return nil
}

// DeleteSolveModel deletes a descriptor by its id.
func (sr SolveModelRepository) DeleteSolveModel(ctx context.Context, id int64) error {
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(
		attribute.Int64("id", id),
	))
	defer span.End()

	_, err := sr.sb.
		Delete("solve_models").
		Where(squirrel.Eq{"id": id}).
		ExecContext(spanCtx)

	if telemetry.RecordErrorAndStatus(span, err) {
		return err
	}
	return nil
}

// InitSolveModelRepository is a Symbiont initializer for SolveModelRepository.
type InitSolveModelRepository struct {
	DB *sql.DB `resolve:""`
}

// Initialize registers the SolveModelRepository in the dependency container.
func (sr InitSolveModelRepository) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[domain.SolveModelRepository](NewSolveModelRepository(sr.DB))
	return ctx, nil
}
