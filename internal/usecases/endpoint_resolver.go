package usecases

import (
	"context"
	"log"
	"strings"

	"github.com/cleitonmarx/symbiont-ai-mathsolver/internal/domain"
	"github.com/cleitonmarx/symbiont-ai-mathsolver/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// EndpointResolver resolves the endpoint configuration of each model role from
// the settings store layered over the static defaults. It never fails: an
// unavailable store behaves like an empty one.
type EndpointResolver interface {
	// Resolve returns the endpoint configuration for role. An unknown role
	// yields the zero EndpointConfig.
	Resolve(ctx context.Context, role domain.ModelRole) domain.EndpointConfig
	// ResolveDefaultModel returns the store-wide default model, or the static default.
	ResolveDefaultModel(ctx context.Context) string
}

// EndpointResolverImpl is the implementation of the EndpointResolver interface.
type EndpointResolverImpl struct {
	settingsRepo domain.SettingsRepository
	defaults     domain.StaticDefaults
	logger       *log.Logger
}

// NewEndpointResolverImpl creates a new EndpointResolverImpl.
func NewEndpointResolverImpl(settingsRepo domain.SettingsRepository, defaults domain.StaticDefaults, logger *log.Logger) EndpointResolverImpl {
	return EndpointResolverImpl{
		settingsRepo: settingsRepo,
		defaults:     defaults,
		logger:       logger,
	}
}

// Resolve returns the endpoint configuration for role.
func (r EndpointResolverImpl) Resolve(ctx context.Context, role domain.ModelRole) domain.EndpointConfig {
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(
		attribute.String("role", string(role)),
	))
	defer span.End()

	snapshot := r.snapshot(spanCtx)

	solve := domain.EndpointConfig{
		BaseURL: firstNonBlank(snapshot[domain.ModelRole_Solve.BaseURLKey()], r.defaults.BaseURL),
		Token:   firstNonBlank(snapshot[domain.ModelRole_Solve.TokenKey()], r.defaults.Token),
		ModelID: r.defaults.DefaultModel(),
	}

	switch role {
	case domain.ModelRole_Solve:
		return solve
	case domain.ModelRole_Knowledge, domain.ModelRole_Semantic:
		return domain.EndpointConfig{
			BaseURL: firstNonBlank(snapshot[role.BaseURLKey()], solve.BaseURL),
			Token:   firstNonBlank(snapshot[role.TokenKey()], solve.Token),
			ModelID: firstNonBlank(snapshot[role.ModelKey()], r.defaultModel(snapshot)),
		}
	}
	return domain.EndpointConfig{}
}

// ResolveDefaultModel returns the store-wide default model, or the static default.
func (r EndpointResolverImpl) ResolveDefaultModel(ctx context.Context) string {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	return r.defaultModel(r.snapshot(spanCtx))
}

func (r EndpointResolverImpl) defaultModel(snapshot map[string]string) string {
	return firstNonBlank(snapshot[domain.ModelRole_Solve.ModelKey()], r.defaults.DefaultModel())
}

// snapshot reads every setting key once and keeps the trimmed non-blank values.
func (r EndpointResolverImpl) snapshot(ctx context.Context) map[string]string {
	values, err := r.settingsRepo.GetSettings(ctx, domain.AllSettingKeys())
	if err != nil {
		r.logger.Printf("EndpointResolver: settings store unavailable, using static defaults: %v", err)
		return map[string]string{}
	}

	snapshot := make(map[string]string, len(values))
	for k, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			snapshot[k] = v
		}
	}
	return snapshot
}

func firstNonBlank(values ...string) string {
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			return v
		}
	}
	return ""
}

// InitEndpointResolver is the initializer for the EndpointResolver.
type InitEndpointResolver struct {
	SettingsRepo domain.SettingsRepository `resolve:""`
	Defaults     domain.StaticDefaults     `resolve:""`
	Logger       *log.Logger               `resolve:""`
}

// Initialize registers the EndpointResolver in the dependency container.
func (i InitEndpointResolver) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[EndpointResolver](NewEndpointResolverImpl(i.SettingsRepo, i.Defaults, i.Logger))
	return ctx, nil
}
