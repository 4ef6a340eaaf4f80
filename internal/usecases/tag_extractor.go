package usecases

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/cleitonmarx/symbiont-ai-mathsolver/internal/domain"
	"github.com/cleitonmarx/symbiont-ai-mathsolver/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
)

// TagExtractor classifies a question into knowledge points and semantic contexts.
type TagExtractor interface {
	// Extract runs both classifications concurrently under one shared deadline.
	// A failing classification yields an empty list; Extract itself never fails.
	Extract(ctx context.Context, question string, knowledge, semantic domain.EndpointConfig) domain.ExtractionResult
}

// TagExtractorImpl is the implementation of the TagExtractor interface.
type TagExtractorImpl struct {
	caller  domain.ModelCaller
	logger  *log.Logger
	timeout time.Duration
}

// NewTagExtractorImpl creates a new TagExtractorImpl.
func NewTagExtractorImpl(caller domain.ModelCaller, logger *log.Logger, timeout time.Duration) TagExtractorImpl {
	return TagExtractorImpl{
		caller:  caller,
		logger:  logger,
		timeout: timeout,
	}
}

// Extract classifies question with the knowledge and semantic endpoints.
func (e TagExtractorImpl) Extract(ctx context.Context, question string, knowledge, semantic domain.EndpointConfig) domain.ExtractionResult {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	extractCtx, cancel := context.WithTimeout(spanCtx, e.timeout)
	defer cancel()

	var (
		wg               sync.WaitGroup
		knowledgePoints  []string
		semanticContexts []string
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		knowledgePoints = e.classify(extractCtx, domain.ModelRole_Knowledge, knowledge, prompts.KnowledgeSystem, question)
	}()
	go func() {
		defer wg.Done()
		semanticContexts = e.classify(extractCtx, domain.ModelRole_Semantic, semantic, prompts.SemanticSystem, question)
	}()
	wg.Wait()

	return domain.ExtractionResult{
		KnowledgePoints:  knowledgePoints,
		SemanticContexts: semanticContexts,
	}
}

// classify runs a single classification call. Every failure, panics
// included, degrades to an empty list.
func (e TagExtractorImpl) classify(ctx context.Context, role domain.ModelRole, endpoint domain.EndpointConfig, systemPrompt, question string) (tags []string) {
	defer func() {
		if r := recover(); r != nil {
			e.logger.Printf("TagExtractor: %s classification panicked: %v", role, r)
			RecordTagClassificationFailure(ctx, role)
			tags = []string{}
		}
	}()

	start := time.Now()
	reply, err := e.caller.Call(ctx, endpoint, systemPrompt, question)
	RecordModelCallDuration(ctx, role, time.Since(start))
	if err != nil {
		e.logger.Printf("TagExtractor: %s classification failed: %v", role, err)
		RecordTagClassificationFailure(ctx, role)
		return []string{}
	}

	return domain.ParseTagList(reply)
}

// InitTagExtractor is the initializer for the TagExtractor.
type InitTagExtractor struct {
	Caller  domain.ModelCaller `resolve:""`
	Logger  *log.Logger        `resolve:""`
	Timeout time.Duration      `config:"EXTRACTION_TIMEOUT" default:"60s"`
}

// Initialize registers the TagExtractor in the dependency container.
func (i InitTagExtractor) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[TagExtractor](NewTagExtractorImpl(i.Caller, i.Logger, i.Timeout))
	return ctx, nil
}
