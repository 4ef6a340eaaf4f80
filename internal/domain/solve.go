package domain

import (
	"context"
	"strings"
	"time"
)

// ModelCaller sends one chat-completion exchange to a resolved endpoint and
// returns the reply text. The call deadline is carried by ctx.
//
// Implementations fail with ConfigurationErr when the endpoint is not usable,
// UpstreamTimeoutErr when the deadline expires, UpstreamStatusErr on a non-2xx
// response and UpstreamTransportErr on any other network failure. A reply of
// an unexpected shape yields an empty string and no error.
type ModelCaller interface {
	Call(ctx context.Context, endpoint EndpointConfig, systemPrompt, userMessage string) (string, error)
}

// ExtractionResult holds the tags identified for a question.
type ExtractionResult struct {
	KnowledgePoints  []string
	SemanticContexts []string
}

// SolveResult is the successful outcome of solving a question.
type SolveResult struct {
	Content          string
	KnowledgePoints  []string
	SemanticContexts []string
}

// ConnectionTestResult is the outcome of an endpoint self-test.
type ConnectionTestResult struct {
	Role     ModelRole
	Model    string
	Duration time.Duration
}

// ValidateQuestion trims the question and rejects it when blank.
func ValidateQuestion(question string) (string, error) {
	q := strings.TrimSpace(question)
	if q == "" {
		return "", NewValidationErr(EmptyQuestionMessage)
	}
	return q, nil
}
