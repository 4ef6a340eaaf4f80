package usecases

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/cleitonmarx/symbiont-ai-mathsolver/internal/domain"
	"github.com/cleitonmarx/symbiont-ai-mathsolver/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// ManageSolveModels defines the administrative use cases for solve model descriptors.
type ManageSolveModels interface {
	// List returns every descriptor, enabled or not, in display order.
	List(ctx context.Context) ([]domain.SolveModel, error)
	Create(ctx context.Context, draft domain.SolveModelDraft) (domain.SolveModel, error)
	Update(ctx context.Context, id int64, patch domain.SolveModelPatch) (domain.SolveModel, error)
	Delete(ctx context.Context, id int64) error
}

// ManageSolveModelsImpl is the implementation of the ManageSolveModels use cases.
type ManageSolveModelsImpl struct {
	uow          domain.UnitOfWork
	timeProvider domain.CurrentTimeProvider
}

// NewManageSolveModelsImpl creates a new ManageSolveModelsImpl.
func NewManageSolveModelsImpl(uow domain.UnitOfWork, timeProvider domain.CurrentTimeProvider) ManageSolveModelsImpl {
	return ManageSolveModelsImpl{
		uow:          uow,
		timeProvider: timeProvider,
	}
}

// List returns every descriptor.
func (uc ManageSolveModelsImpl) List(ctx context.Context) ([]domain.SolveModel, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	models, err := uc.uow.SolveModels().ListSolveModels(spanCtx, false)
	if telemetry.RecordErrorAndStatus(span, err) {
		return nil, err
	}
	return models, nil
}

// Create adds a descriptor. A blank display name falls back to the known name of the model.
func (uc ManageSolveModelsImpl) Create(ctx context.Context, draft domain.SolveModelDraft) (domain.SolveModel, error) {
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(
		attribute.String("model_id", draft.ModelID),
	))
	defer span.End()

	modelID := strings.TrimSpace(draft.ModelID)
	if modelID == "" {
		err := domain.NewValidationErr("model id cannot be empty")
		telemetry.RecordErrorAndStatus(span, err)
		return domain.SolveModel{}, err
	}

	model := domain.SolveModel{
		ModelID:     modelID,
		DisplayName: firstNonBlank(draft.DisplayName, domain.DisplayNameFor(modelID)),
		SortOrder:   draft.SortOrder,
		Enabled:     true,
		CreatedAt:   uc.timeProvider.Now(),
	}
	if draft.Enabled != nil {
		model.Enabled = *draft.Enabled
	}

	err := uc.uow.Execute(spanCtx, func(uow domain.UnitOfWork) error {
		_, exists, err := uow.SolveModels().GetSolveModelByModelID(spanCtx, modelID)
		if err != nil {
			return err
		}
		if exists {
			return domain.NewValidationErr("model id already exists")
		}

		model, err = uow.SolveModels().CreateSolveModel(spanCtx, model)
		if err != nil {
			return err
		}
		return uow.Outbox().CreateModelConfigEvent(spanCtx, uc.event(domain.EventType_SOLVE_MODEL_CREATED, model))
	})
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.SolveModel{}, err
	}
	return model, nil
}

// Update applies the non-nil fields of patch to the descriptor with the given id.
func (uc ManageSolveModelsImpl) Update(ctx context.Context, id int64, patch domain.SolveModelPatch) (domain.SolveModel, error) {
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(
		attribute.Int64("id", id),
	))
	defer span.End()

	var model domain.SolveModel
	err := uc.uow.Execute(spanCtx, func(uow domain.UnitOfWork) error {
		current, found, err := uow.SolveModels().GetSolveModel(spanCtx, id)
		if err != nil {
			return err
		}
		if !found {
			return notFoundSolveModel(id)
		}

		model = patch.Apply(current)
		if err := uow.SolveModels().UpdateSolveModel(spanCtx, model); err != nil {
			return err
		}
		return uow.Outbox().CreateModelConfigEvent(spanCtx, uc.event(domain.EventType_SOLVE_MODEL_UPDATED, model))
	})
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.SolveModel{}, err
	}
	return model, nil
}

// Delete removes the descriptor with the given id.
func (uc ManageSolveModelsImpl) Delete(ctx context.Context, id int64) error {
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(
		attribute.Int64("id", id),
	))
	defer span.End()

	err := uc.uow.Execute(spanCtx, func(uow domain.UnitOfWork) error {
		current, found, err := uow.SolveModels().GetSolveModel(spanCtx, id)
		if err != nil {
			return err
		}
		if !found {
			return notFoundSolveModel(id)
		}

		if err := uow.SolveModels().DeleteSolveModel(spanCtx, id); err != nil {
			return err
		}
		return uow.Outbox().CreateModelConfigEvent(spanCtx, uc.event(domain.EventType_SOLVE_MODEL_DELETED, current))
	})
	if telemetry.RecordErrorAndStatus(span, err) {
		return err
	}
	return nil
}

func (uc ManageSolveModelsImpl) event(eventType domain.EventType, model domain.SolveModel) domain.ModelConfigEvent {
	return domain.ModelConfigEvent{
		Type:      eventType,
		EntityID:  strconv.FormatInt(model.ID, 10),
		ModelID:   model.ModelID,
		CreatedAt: uc.timeProvider.Now(),
	}
}

func notFoundSolveModel(id int64) error {
	return domain.NewNotFoundErr(fmt.Sprintf("solve model %d not found", id))
}

// InitManageSolveModels is the initializer for the ManageSolveModels use cases.
type InitManageSolveModels struct {
	Uow          domain.UnitOfWork          `resolve:""`
	TimeProvider domain.CurrentTimeProvider `resolve:""`
}

// Initialize registers the ManageSolveModels use cases in the dependency container.
func (i InitManageSolveModels) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[ManageSolveModels](NewManageSolveModelsImpl(i.Uow, i.TimeProvider))
	return ctx, nil
}
