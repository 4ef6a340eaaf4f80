package usecases

import (
	"context"
	"log"

	"github.com/cleitonmarx/symbiont-ai-mathsolver/internal/domain"
	"github.com/cleitonmarx/symbiont-ai-mathsolver/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
)

// ListSolveModels defines the use case for listing the selectable solving models.
type ListSolveModels interface {
	// Query returns the enabled models in display order. It falls back to the
	// static list when the store has none or cannot be read.
	Query(ctx context.Context) []domain.SolveModelOption
}

// ListSolveModelsImpl is the implementation of the ListSolveModels use case.
type ListSolveModelsImpl struct {
	solveModelRepo domain.SolveModelRepository
	defaults       domain.StaticDefaults
	logger         *log.Logger
}

// NewListSolveModelsImpl creates a new ListSolveModelsImpl.
func NewListSolveModelsImpl(solveModelRepo domain.SolveModelRepository, defaults domain.StaticDefaults, logger *log.Logger) ListSolveModelsImpl {
	return ListSolveModelsImpl{
		solveModelRepo: solveModelRepo,
		defaults:       defaults,
		logger:         logger,
	}
}

// Query returns the selectable solving models.
func (uc ListSolveModelsImpl) Query(ctx context.Context) []domain.SolveModelOption {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	models, err := uc.solveModelRepo.ListSolveModels(spanCtx, true)
	if err != nil {
		uc.logger.Printf("ListSolveModels: failed to list solve models, using static list: %v", err)
		return uc.defaults.SolveModelOptions()
	}
	if len(models) == 0 {
		return uc.defaults.SolveModelOptions()
	}

	options := make([]domain.SolveModelOption, 0, len(models))
	for _, m := range models {
		options = append(options, m.Option())
	}
	return options
}

// InitListSolveModels is the initializer for the ListSolveModels use case.
type InitListSolveModels struct {
	SolveModelRepo domain.SolveModelRepository `resolve:""`
	Defaults       domain.StaticDefaults       `resolve:""`
	Logger         *log.Logger                 `resolve:""`
}

// Initialize registers the ListSolveModels use case in the dependency container.
func (i InitListSolveModels) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[ListSolveModels](NewListSolveModelsImpl(i.SolveModelRepo, i.Defaults, i.Logger))
	return ctx, nil
}
