package usecases

import (
	"context"
	"strings"

	"github.com/cleitonmarx/symbiont-ai-mathsolver/internal/domain"
	"github.com/cleitonmarx/symbiont-ai-mathsolver/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
)

// GetModelSettings defines the use case for reading the stored endpoint configuration.
type GetModelSettings interface {
	Query(ctx context.Context) (domain.ModelSettings, error)
}

// GetModelSettingsImpl is the implementation of the GetModelSettings use case.
type GetModelSettingsImpl struct {
	settingsRepo domain.SettingsRepository
	defaults     domain.StaticDefaults
}

// NewGetModelSettingsImpl creates a new GetModelSettingsImpl.
func NewGetModelSettingsImpl(settingsRepo domain.SettingsRepository, defaults domain.StaticDefaults) GetModelSettingsImpl {
	return GetModelSettingsImpl{
		settingsRepo: settingsRepo,
		defaults:     defaults,
	}
}

// Query returns the solve endpoint layered over the static defaults. Role
// overrides are nil when their key is absent or blank.
func (uc GetModelSettingsImpl) Query(ctx context.Context) (domain.ModelSettings, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	values, err := uc.settingsRepo.GetSettings(spanCtx, domain.AllSettingKeys())
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.ModelSettings{}, err
	}

	return domain.ModelSettings{
		BaseURL:   firstNonBlank(values[domain.ModelRole_Solve.BaseURLKey()], uc.defaults.BaseURL),
		Token:     firstNonBlank(values[domain.ModelRole_Solve.TokenKey()], uc.defaults.Token),
		Model:     firstNonBlank(values[domain.ModelRole_Solve.ModelKey()], uc.defaults.DefaultModel()),
		Knowledge: roleOverride(values, domain.ModelRole_Knowledge),
		Semantic:  roleOverride(values, domain.ModelRole_Semantic),
	}, nil
}

func roleOverride(values map[string]string, role domain.ModelRole) domain.RoleOverride {
	lookup := func(key string) *string {
		if v := strings.TrimSpace(values[key]); v != "" {
			return &v
		}
		return nil
	}
	return domain.RoleOverride{
		BaseURL: lookup(role.BaseURLKey()),
		Token:   lookup(role.TokenKey()),
		Model:   lookup(role.ModelKey()),
	}
}

// InitGetModelSettings is the initializer for the GetModelSettings use case.
type InitGetModelSettings struct {
	SettingsRepo domain.SettingsRepository `resolve:""`
	Defaults     domain.StaticDefaults     `resolve:""`
}

// Initialize registers the GetModelSettings use case in the dependency container.
func (i InitGetModelSettings) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[GetModelSettings](NewGetModelSettingsImpl(i.SettingsRepo, i.Defaults))
	return ctx, nil
}
