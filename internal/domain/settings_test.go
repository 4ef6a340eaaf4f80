package domain

import (
	"testing"

	"github.com/cleitonmarx/symbiont-ai-mathsolver/internal/common"
	"github.com/stretchr/testify/assert"
)

func TestModelSettingsPatch_Changes(t *testing.T) {
	tests := map[string]struct {
		patch ModelSettingsPatch
		want  []SettingChange
	}{
		"empty-patch": {
			patch: ModelSettingsPatch{},
			want:  nil,
		},
		"solve-fields-are-trimmed": {
			patch: ModelSettingsPatch{
				BaseURL: common.Ptr(" https://api.example.com "),
				Token:   common.Ptr(" sk-1 "),
				Model:   common.Ptr(" gpt-4o "),
			},
			want: []SettingChange{
				{Key: "UNIAPI_BASE_URL", Value: "https://api.example.com"},
				{Key: "UNIAPI_TOKEN", Value: "sk-1"},
				{Key: "UNIAPI_MODEL", Value: "gpt-4o"},
			},
		},
		"blank-model-deletes-key": {
			patch: ModelSettingsPatch{Model: common.Ptr("  ")},
			want:  []SettingChange{{Key: "UNIAPI_MODEL", Delete: true}},
		},
		"blank-token-is-stored-empty": {
			patch: ModelSettingsPatch{Token: common.Ptr("")},
			want:  []SettingChange{{Key: "UNIAPI_TOKEN", Value: ""}},
		},
		"role-overrides": {
			patch: ModelSettingsPatch{
				Knowledge: RoleOverride{Model: common.Ptr("qwen2.5-72b-instruct")},
				Semantic:  RoleOverride{BaseURL: common.Ptr(""), Token: common.Ptr("sk-sem")},
			},
			want: []SettingChange{
				{Key: "UNIAPI_MODEL_KNOWLEDGE", Value: "qwen2.5-72b-instruct"},
				{Key: "UNIAPI_BASE_URL_SEMANTIC", Value: ""},
				{Key: "UNIAPI_TOKEN_SEMANTIC", Value: "sk-sem"},
			},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.patch.Changes())
		})
	}
}

func TestModelSettings_Complete(t *testing.T) {
	assert.True(t, ModelSettings{BaseURL: "https://api.example.com", Token: "sk-1"}.Complete())
	assert.False(t, ModelSettings{BaseURL: "https://api.example.com"}.Complete())
	assert.False(t, ModelSettings{Token: "sk-1"}.Complete())
}
