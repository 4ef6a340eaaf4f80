package usecases

import (
	"context"
	"strings"

	"github.com/cleitonmarx/symbiont-ai-mathsolver/internal/domain"
	"github.com/cleitonmarx/symbiont-ai-mathsolver/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
)

// misconfiguredEndpointMessage is returned when the solve endpoint cannot be called.
const misconfiguredEndpointMessage = "model endpoint is not configured, please contact an administrator"

// AnalyzeQuestion defines the use case for classifying a question without solving it.
type AnalyzeQuestion interface {
	Execute(ctx context.Context, question string) (domain.ExtractionResult, error)
}

// AnalyzeQuestionImpl is the implementation of the AnalyzeQuestion use case.
type AnalyzeQuestionImpl struct {
	resolver  EndpointResolver
	extractor TagExtractor
}

// NewAnalyzeQuestionImpl creates a new AnalyzeQuestionImpl.
func NewAnalyzeQuestionImpl(resolver EndpointResolver, extractor TagExtractor) AnalyzeQuestionImpl {
	return AnalyzeQuestionImpl{
		resolver:  resolver,
		extractor: extractor,
	}
}

// Execute validates the question and returns its knowledge points and semantic contexts.
func (uc AnalyzeQuestionImpl) Execute(ctx context.Context, question string) (domain.ExtractionResult, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	q, err := domain.ValidateQuestion(question)
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.ExtractionResult{}, err
	}

	// Only a missing token stops analysis; a blank base URL fails each classifier on its own.
	if strings.TrimSpace(uc.resolver.Resolve(spanCtx, domain.ModelRole_Solve).Token) == "" {
		err := domain.NewConfigurationErr(misconfiguredEndpointMessage)
		telemetry.RecordErrorAndStatus(span, err)
		return domain.ExtractionResult{}, err
	}

	return uc.extractor.Extract(
		spanCtx,
		q,
		uc.resolver.Resolve(spanCtx, domain.ModelRole_Knowledge),
		uc.resolver.Resolve(spanCtx, domain.ModelRole_Semantic),
	), nil
}

// InitAnalyzeQuestion is the initializer for the AnalyzeQuestion use case.
type InitAnalyzeQuestion struct {
	Resolver  EndpointResolver `resolve:""`
	Extractor TagExtractor     `resolve:""`
}

// Initialize registers the AnalyzeQuestion use case in the dependency container.
func (i InitAnalyzeQuestion) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[AnalyzeQuestion](NewAnalyzeQuestionImpl(i.Resolver, i.Extractor))
	return ctx, nil
}
