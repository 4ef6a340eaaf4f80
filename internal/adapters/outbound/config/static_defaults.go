package config

import (
	"context"

	"github.com/cleitonmarx/symbiont-ai-mathsolver/internal/domain"
	"github.com/cleitonmarx/symbiont/depend"
)

// unset marks a configuration value that was not provided.
const unset = "-"

// InitStaticDefaults builds the process-level endpoint fallbacks from
// configuration and registers them as an immutable domain.StaticDefaults.
type InitStaticDefaults struct {
	BaseURL     string `config:"UNIAPI_BASE_URL" default:"-"`
	Token       string `config:"UNIAPI_TOKEN" default:"-"`
	Model       string `config:"UNIAPI_MODEL" default:"gpt-5.2"`
	SolveModels string `config:"UNIAPI_SOLVE_MODELS" default:"gpt-5.2,gpt-4o,qwen2.5-72b-instruct,deepseek-v3"`
}

// Initialize registers domain.StaticDefaults in the dependency container.
func (i InitStaticDefaults) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register(domain.NewStaticDefaults(
		orEmpty(i.BaseURL),
		orEmpty(i.Token),
		orEmpty(i.Model),
		orEmpty(i.SolveModels),
	))
	return ctx, nil
}

func orEmpty(v string) string {
	if v == unset {
		return ""
	}
	return v
}
