package modelrunner

import (
	"context"
	"net/http"
	"strings"

	"github.com/cleitonmarx/symbiont-ai-mathsolver/internal/domain"
	"github.com/cleitonmarx/symbiont-ai-mathsolver/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// ModelCaller implements domain.ModelCaller on top of ChatCompletionsClient.
// A client is built per call because every role may target a different endpoint.
type ModelCaller struct {
	httpClient      *http.Client
	instructionRole string
	defaultModel    string
}

// NewModelCaller creates a new ModelCaller.
func NewModelCaller(httpClient *http.Client, instructionRole, defaultModel string) ModelCaller {
	return ModelCaller{
		httpClient:      httpClient,
		instructionRole: instructionRole,
		defaultModel:    defaultModel,
	}
}

// Call implements domain.ModelCaller.
func (mc ModelCaller) Call(ctx context.Context, endpoint domain.EndpointConfig, systemPrompt, userMessage string) (string, error) {
	model := strings.TrimSpace(endpoint.ModelID)
	if model == "" {
		model = mc.defaultModel
	}

	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(
		attribute.String("model", model),
	))
	defer span.End()

	if !endpoint.Usable() {
		err := domain.NewConfigurationErr("model endpoint is not configured, please contact an administrator")
		telemetry.RecordErrorAndStatus(span, err)
		return "", err
	}

	client := NewChatCompletionsClient(
		strings.TrimSpace(endpoint.BaseURL),
		strings.TrimSpace(endpoint.Token),
		mc.httpClient,
	)

	content, err := client.Chat(spanCtx, ChatRequest{
		Model: model,
		Messages: []ChatMessage{
			{Role: mc.instructionRole, Content: systemPrompt},
			{Role: "user", Content: userMessage},
		},
	})
	if telemetry.RecordErrorAndStatus(span, err) {
		return "", err
	}

	return content, nil
}

// InitModelCaller is the initializer for the domain.ModelCaller implementation.
type InitModelCaller struct {
	HttpClient      *http.Client          `resolve:""`
	Defaults        domain.StaticDefaults `resolve:""`
	InstructionRole string                `config:"LLM_INSTRUCTION_ROLE" default:"developer"`
}

// Initialize registers the ModelCaller in the dependency container.
func (i InitModelCaller) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[domain.ModelCaller](NewModelCaller(
		i.HttpClient,
		i.InstructionRole,
		i.Defaults.DefaultModel(),
	))
	return ctx, nil
}
