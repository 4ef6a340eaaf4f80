package config

import (
	"context"
	"testing"

	"github.com/cleitonmarx/symbiont-ai-mathsolver/internal/domain"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/stretchr/testify/assert"
)

func TestInitStaticDefaults_Initialize(t *testing.T) {
	tests := map[string]struct {
		init     InitStaticDefaults
		expected domain.StaticDefaults
	}{
		"unset-values": {
			init: InitStaticDefaults{
				BaseURL:     "-",
				Token:       "-",
				Model:       "gpt-5.2",
				SolveModels: "-",
			},
			expected: domain.StaticDefaults{Model: "gpt-5.2"},
		},
		"configured-values": {
			init: InitStaticDefaults{
				BaseURL:     "https://api.example.com",
				Token:       "sk-1",
				Model:       "gpt-4o",
				SolveModels: "gpt-4o, deepseek-v3",
			},
			expected: domain.StaticDefaults{
				BaseURL:     "https://api.example.com",
				Token:       "sk-1",
				Model:       "gpt-4o",
				SolveModels: []string{"gpt-4o", "deepseek-v3"},
			},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := tt.init.Initialize(context.Background())
			assert.NoError(t, err)

			got, err := depend.Resolve[domain.StaticDefaults]()
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}
