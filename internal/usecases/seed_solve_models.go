package usecases

import (
	"context"
	"log"

	"github.com/cleitonmarx/symbiont-ai-mathsolver/internal/domain"
	"github.com/cleitonmarx/symbiont-ai-mathsolver/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
)

// SeedSolveModels defines the use case for populating an empty descriptor table.
type SeedSolveModels interface {
	// Execute inserts the static solve models when no descriptor exists and
	// returns how many were inserted.
	Execute(ctx context.Context) (int, error)
}

// SeedSolveModelsImpl is the implementation of the SeedSolveModels use case.
type SeedSolveModelsImpl struct {
	uow          domain.UnitOfWork
	defaults     domain.StaticDefaults
	timeProvider domain.CurrentTimeProvider
}

// NewSeedSolveModelsImpl creates a new SeedSolveModelsImpl.
func NewSeedSolveModelsImpl(uow domain.UnitOfWork, defaults domain.StaticDefaults, timeProvider domain.CurrentTimeProvider) SeedSolveModelsImpl {
	return SeedSolveModelsImpl{
		uow:          uow,
		defaults:     defaults,
		timeProvider: timeProvider,
	}
}

// Execute seeds the descriptor table.
func (uc SeedSolveModelsImpl) Execute(ctx context.Context) (int, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	inserted := 0
	err := uc.uow.Execute(spanCtx, func(uow domain.UnitOfWork) error {
		count, err := uow.SolveModels().CountSolveModels(spanCtx)
		if err != nil {
			return err
		}
		if count > 0 {
			return nil
		}

		now := uc.timeProvider.Now()
		for i, opt := range uc.defaults.SolveModelOptions() {
			_, err := uow.SolveModels().CreateSolveModel(spanCtx, domain.SolveModel{
				ModelID:     opt.ID,
				DisplayName: opt.Name,
				SortOrder:   i,
				Enabled:     true,
				CreatedAt:   now,
			})
			if err != nil {
				return err
			}
			inserted++
		}
		return nil
	})
	if telemetry.RecordErrorAndStatus(span, err) {
		return 0, err
	}
	return inserted, nil
}

// InitSeedSolveModels seeds the descriptor table at startup.
type InitSeedSolveModels struct {
	Uow          domain.UnitOfWork          `resolve:""`
	Defaults     domain.StaticDefaults      `resolve:""`
	TimeProvider domain.CurrentTimeProvider `resolve:""`
	Logger       *log.Logger                `resolve:""`
}

// Initialize registers the SeedSolveModels use case and runs it once.
func (i InitSeedSolveModels) Initialize(ctx context.Context) (context.Context, error) {
	uc := NewSeedSolveModelsImpl(i.Uow, i.Defaults, i.TimeProvider)
	depend.Register[SeedSolveModels](uc)

	n, err := uc.Execute(ctx)
	if err != nil {
		return ctx, err
	}
	if n > 0 {
		i.Logger.Printf("InitSeedSolveModels: seeded %d solve models", n)
	}
	return ctx, nil
}
