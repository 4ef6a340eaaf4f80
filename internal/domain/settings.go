package domain

import (
	"context"
	"strings"
)

// SettingsRepository is the key/value store of endpoint overrides.
type SettingsRepository interface {
	// GetSettings returns the stored values of the given keys. Absent keys are omitted.
	GetSettings(ctx context.Context, keys []string) (map[string]string, error)
	// UpsertSetting stores value under key.
	UpsertSetting(ctx context.Context, key, value string) error
	// DeleteSetting removes key. Deleting an absent key is not an error.
	DeleteSetting(ctx context.Context, key string) error
}

// RoleOverride holds the raw role-specific overrides of a classification endpoint.
type RoleOverride struct {
	BaseURL *string
	Token   *string
	Model   *string
}

// ModelSettings is the administrator's view of the endpoint configuration.
type ModelSettings struct {
	BaseURL   string
	Token     string
	Model     string
	Knowledge RoleOverride
	Semantic  RoleOverride
}

// Complete reports whether the solve endpoint has both a base URL and a token.
func (s ModelSettings) Complete() bool {
	return EndpointConfig{BaseURL: s.BaseURL, Token: s.Token}.Usable()
}

// ModelSettingsPatch describes an edit of the endpoint configuration. Nil fields are left untouched.
type ModelSettingsPatch struct {
	BaseURL   *string
	Token     *string
	Model     *string
	Knowledge RoleOverride
	Semantic  RoleOverride
}

// SettingChange is a single write produced by a ModelSettingsPatch.
type SettingChange struct {
	Key    string
	Value  string
	Delete bool
}

// Changes translates the patch into store writes. A blank default model
// deletes its key so the static default applies again; every other field is
// stored trimmed, blank included.
func (p ModelSettingsPatch) Changes() []SettingChange {
	var changes []SettingChange
	set := func(key string, v *string) {
		if v != nil {
			changes = append(changes, SettingChange{Key: key, Value: strings.TrimSpace(*v)})
		}
	}

	set(ModelRole_Solve.BaseURLKey(), p.BaseURL)
	set(ModelRole_Solve.TokenKey(), p.Token)
	if p.Model != nil {
		if m := strings.TrimSpace(*p.Model); m != "" {
			changes = append(changes, SettingChange{Key: ModelRole_Solve.ModelKey(), Value: m})
		} else {
			changes = append(changes, SettingChange{Key: ModelRole_Solve.ModelKey(), Delete: true})
		}
	}

	set(ModelRole_Knowledge.BaseURLKey(), p.Knowledge.BaseURL)
	set(ModelRole_Knowledge.TokenKey(), p.Knowledge.Token)
	set(ModelRole_Knowledge.ModelKey(), p.Knowledge.Model)
	set(ModelRole_Semantic.BaseURLKey(), p.Semantic.BaseURL)
	set(ModelRole_Semantic.TokenKey(), p.Semantic.Token)
	set(ModelRole_Semantic.ModelKey(), p.Semantic.Model)
	return changes
}
