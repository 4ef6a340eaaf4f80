package usecases

import (
	"context"

	"github.com/cleitonmarx/symbiont-ai-mathsolver/internal/domain"
	"github.com/cleitonmarx/symbiont-ai-mathsolver/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// UpdateModelSettings defines the use case for editing the stored endpoint configuration.
type UpdateModelSettings interface {
	Execute(ctx context.Context, patch domain.ModelSettingsPatch) error
}

// UpdateModelSettingsImpl is the implementation of the UpdateModelSettings use case.
type UpdateModelSettingsImpl struct {
	uow          domain.UnitOfWork
	timeProvider domain.CurrentTimeProvider
}

// NewUpdateModelSettingsImpl creates a new UpdateModelSettingsImpl.
func NewUpdateModelSettingsImpl(uow domain.UnitOfWork, timeProvider domain.CurrentTimeProvider) UpdateModelSettingsImpl {
	return UpdateModelSettingsImpl{
		uow:          uow,
		timeProvider: timeProvider,
	}
}

// Execute applies the patch and records a settings event in the same unit of work.
// An empty patch is a no-op.
func (uc UpdateModelSettingsImpl) Execute(ctx context.Context, patch domain.ModelSettingsPatch) error {
	changes := patch.Changes()

	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(
		attribute.Int("changes", len(changes)),
	))
	defer span.End()

	if len(changes) == 0 {
		return nil
	}

	keys := make([]string, 0, len(changes))
	for _, c := range changes {
		keys = append(keys, c.Key)
	}

	err := uc.uow.Execute(spanCtx, func(uow domain.UnitOfWork) error {
		for _, c := range changes {
			if c.Delete {
				if err := uow.Settings().DeleteSetting(spanCtx, c.Key); err != nil {
					return err
				}
				continue
			}
			if err := uow.Settings().UpsertSetting(spanCtx, c.Key, c.Value); err != nil {
				return err
			}
		}

		return uow.Outbox().CreateModelConfigEvent(spanCtx, domain.ModelConfigEvent{
			Type:      domain.EventType_MODEL_SETTINGS_UPDATED,
			EntityID:  "settings",
			Keys:      keys,
			CreatedAt: uc.timeProvider.Now(),
		})
	})
	if telemetry.RecordErrorAndStatus(span, err) {
		return err
	}
	return nil
}

// InitUpdateModelSettings is the initializer for the UpdateModelSettings use case.
type InitUpdateModelSettings struct {
	Uow          domain.UnitOfWork          `resolve:""`
	TimeProvider domain.CurrentTimeProvider `resolve:""`
}

// Initialize registers the UpdateModelSettings use case in the dependency container.
func (i InitUpdateModelSettings) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[UpdateModelSettings](NewUpdateModelSettingsImpl(i.Uow, i.TimeProvider))
	return ctx, nil
}
