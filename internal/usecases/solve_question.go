package usecases

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/cleitonmarx/symbiont-ai-mathsolver/internal/domain"
	"github.com/cleitonmarx/symbiont-ai-mathsolver/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// SolveParams holds the input of a solve request.
type SolveParams struct {
	Question string
	// Model is the requested solving model; blank selects the default.
	Model string
	// SuppliedTags skips extraction when non-nil, even if both lists are empty.
	SuppliedTags *domain.ExtractionResult
}

// SolveQuestion defines the use case for solving a math question.
type SolveQuestion interface {
	Execute(ctx context.Context, params SolveParams) (domain.SolveResult, error)
}

// SolveQuestionImpl is the implementation of the SolveQuestion use case.
type SolveQuestionImpl struct {
	resolver  EndpointResolver
	extractor TagExtractor
	caller    domain.ModelCaller
	logger    *log.Logger
	timeout   time.Duration
}

// NewSolveQuestionImpl creates a new SolveQuestionImpl.
func NewSolveQuestionImpl(
	resolver EndpointResolver,
	extractor TagExtractor,
	caller domain.ModelCaller,
	logger *log.Logger,
	timeout time.Duration,
) SolveQuestionImpl {
	return SolveQuestionImpl{
		resolver:  resolver,
		extractor: extractor,
		caller:    caller,
		logger:    logger,
		timeout:   timeout,
	}
}

// Execute classifies the question unless tags were supplied, then asks the
// solve model for a worked solution.
func (uc SolveQuestionImpl) Execute(ctx context.Context, params SolveParams) (domain.SolveResult, error) {
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(
		attribute.String("model", params.Model),
		attribute.Bool("tags_supplied", params.SuppliedTags != nil),
	))
	defer span.End()

	result, outcome, err := uc.execute(spanCtx, params)
	RecordSolveRequest(spanCtx, outcome)
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.SolveResult{}, err
	}
	return result, nil
}

func (uc SolveQuestionImpl) execute(ctx context.Context, params SolveParams) (domain.SolveResult, string, error) {
	question, err := domain.ValidateQuestion(params.Question)
	if err != nil {
		return domain.SolveResult{}, SolveOutcome_Invalid, err
	}

	endpoint := uc.resolver.Resolve(ctx, domain.ModelRole_Solve)
	if !endpoint.Usable() {
		return domain.SolveResult{}, SolveOutcome_Misconfigured, domain.NewConfigurationErr(misconfiguredEndpointMessage)
	}
	endpoint = endpoint.WithModel(params.Model)

	var tags domain.ExtractionResult
	if params.SuppliedTags != nil {
		tags = *params.SuppliedTags
	} else {
		tags = uc.extractor.Extract(
			ctx,
			question,
			uc.resolver.Resolve(ctx, domain.ModelRole_Knowledge),
			uc.resolver.Resolve(ctx, domain.ModelRole_Semantic),
		)
	}
	tags = normalizeTags(tags)

	solveCtx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	start := time.Now()
	content, err := uc.caller.Call(solveCtx, endpoint, prompts.SolveSystem, BuildSolvePrompt(question, tags))
	RecordModelCallDuration(ctx, domain.ModelRole_Solve, time.Since(start))
	if err != nil {
		uc.logger.Printf("SolveQuestion: solve call with model %s failed: %v", endpoint.ModelID, err)
		outcome, cerr := classifySolveError(err)
		return domain.SolveResult{}, outcome, cerr
	}

	if content == "" {
		return domain.SolveResult{}, SolveOutcome_EmptyReply, domain.NewEmptyReplyErr()
	}

	return domain.SolveResult{
		Content:          content,
		KnowledgePoints:  tags.KnowledgePoints,
		SemanticContexts: tags.SemanticContexts,
	}, SolveOutcome_Success, nil
}

// classifySolveError keeps timeouts and upstream status failures and wraps
// everything else as an internal error.
func classifySolveError(err error) (string, error) {
	var (
		timeoutErr *domain.UpstreamTimeoutErr
		statusErr  *domain.UpstreamStatusErr
		configErr  *domain.ConfigurationErr
	)
	switch {
	case errors.As(err, &timeoutErr):
		return SolveOutcome_Timeout, timeoutErr
	case errors.As(err, &statusErr):
		return SolveOutcome_Upstream, statusErr
	case errors.As(err, &configErr):
		return SolveOutcome_Misconfigured, configErr
	}
	return SolveOutcome_Internal, domain.NewInternalErr(err)
}

// normalizeTags replaces nil lists with empty ones.
func normalizeTags(tags domain.ExtractionResult) domain.ExtractionResult {
	if tags.KnowledgePoints == nil {
		tags.KnowledgePoints = []string{}
	}
	if tags.SemanticContexts == nil {
		tags.SemanticContexts = []string{}
	}
	return tags
}

// BuildSolvePrompt assembles the user message sent to the solve model.
// Empty tag lists are omitted.
func BuildSolvePrompt(question string, tags domain.ExtractionResult) string {
	var sb strings.Builder
	sb.WriteString(prompts.QuestionLabel)
	sb.WriteString("\n")
	sb.WriteString(question)

	if len(tags.KnowledgePoints) > 0 {
		sb.WriteString("\n\n")
		sb.WriteString(prompts.KnowledgeLabel)
		sb.WriteString("\n")
		sb.WriteString(strings.Join(tags.KnowledgePoints, prompts.TagSeparator))
	}
	if len(tags.SemanticContexts) > 0 {
		sb.WriteString("\n\n")
		sb.WriteString(prompts.SemanticLabel)
		sb.WriteString("\n")
		sb.WriteString(strings.Join(tags.SemanticContexts, prompts.TagSeparator))
	}

	sb.WriteString("\n\n")
	sb.WriteString(prompts.ClosingInstruction)
	return sb.String()
}

// InitSolveQuestion is the initializer for the SolveQuestion use case.
type InitSolveQuestion struct {
	Resolver  EndpointResolver   `resolve:""`
	Extractor TagExtractor       `resolve:""`
	Caller    domain.ModelCaller `resolve:""`
	Logger    *log.Logger        `resolve:""`
	Timeout   time.Duration      `config:"SOLVE_TIMEOUT" default:"90s"`
}

// Initialize registers the SolveQuestion use case in the dependency container.
func (i InitSolveQuestion) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[SolveQuestion](NewSolveQuestionImpl(
		i.Resolver,
		i.Extractor,
		i.Caller,
		i.Logger,
		i.Timeout,
	))
	return ctx, nil
}
