package usecases

import (
	"context"
	"log"
	"time"

	"github.com/cleitonmarx/symbiont-ai-mathsolver/internal/domain"
	"github.com/cleitonmarx/symbiont-ai-mathsolver/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// TestModelConnection defines the use case for probing a role's endpoint with a fixed prompt.
type TestModelConnection interface {
	// Execute sends the self-test exchange to the endpoint of role. For the
	// solve role a non-blank modelID selects the model to probe.
	Execute(ctx context.Context, role domain.ModelRole, modelID string) (domain.ConnectionTestResult, error)
}

// TestModelConnectionImpl is the implementation of the TestModelConnection use case.
type TestModelConnectionImpl struct {
	resolver       EndpointResolver
	solveModelRepo domain.SolveModelRepository
	caller         domain.ModelCaller
	timeProvider   domain.CurrentTimeProvider
	logger         *log.Logger
	timeout        time.Duration
}

// NewTestModelConnectionImpl creates a new TestModelConnectionImpl.
func NewTestModelConnectionImpl(
	resolver EndpointResolver,
	solveModelRepo domain.SolveModelRepository,
	caller domain.ModelCaller,
	timeProvider domain.CurrentTimeProvider,
	logger *log.Logger,
	timeout time.Duration,
) TestModelConnectionImpl {
	return TestModelConnectionImpl{
		resolver:       resolver,
		solveModelRepo: solveModelRepo,
		caller:         caller,
		timeProvider:   timeProvider,
		logger:         logger,
		timeout:        timeout,
	}
}

// Execute runs the self-test for role.
func (uc TestModelConnectionImpl) Execute(ctx context.Context, role domain.ModelRole, modelID string) (domain.ConnectionTestResult, error) {
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(
		attribute.String("role", string(role)),
		attribute.String("model_id", modelID),
	))
	defer span.End()

	result, err := uc.execute(spanCtx, role, modelID)
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.ConnectionTestResult{}, err
	}
	return result, nil
}

func (uc TestModelConnectionImpl) execute(ctx context.Context, role domain.ModelRole, modelID string) (domain.ConnectionTestResult, error) {
	role, err := domain.ParseModelRole(string(role))
	if err != nil {
		return domain.ConnectionTestResult{}, err
	}

	endpoint := uc.resolver.Resolve(ctx, role)
	if role == domain.ModelRole_Solve {
		endpoint = endpoint.WithModel(uc.solveModelFor(ctx, modelID))
	}
	if !endpoint.Usable() {
		return domain.ConnectionTestResult{}, domain.NewConfigurationErr(misconfiguredEndpointMessage)
	}

	testCtx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	start := uc.timeProvider.Now()
	if _, err := uc.caller.Call(testCtx, endpoint, connectionTestSystem(role), prompts.ConnectionTestUser); err != nil {
		uc.logger.Printf("TestModelConnection: %s endpoint with model %s failed: %v", role, endpoint.ModelID, err)
		return domain.ConnectionTestResult{}, err
	}

	return domain.ConnectionTestResult{
		Role:     role,
		Model:    endpoint.ModelID,
		Duration: uc.timeProvider.Now().Sub(start),
	}, nil
}

// connectionTestSystem returns the system prompt a role is tested with.
// Classifiers are tested with their own instruction.
func connectionTestSystem(role domain.ModelRole) string {
	switch role {
	case domain.ModelRole_Knowledge:
		return prompts.KnowledgeSystem
	case domain.ModelRole_Semantic:
		return prompts.SemanticSystem
	}
	return prompts.ConnectionTestSystem
}

// solveModelFor picks the explicit model, else the first enabled descriptor.
// A blank result keeps the resolved default.
func (uc TestModelConnectionImpl) solveModelFor(ctx context.Context, modelID string) string {
	if m := firstNonBlank(modelID); m != "" {
		return m
	}
	models, err := uc.solveModelRepo.ListSolveModels(ctx, true)
	if err != nil {
		uc.logger.Printf("TestModelConnection: failed to list solve models: %v", err)
		return ""
	}
	if len(models) == 0 {
		return ""
	}
	return models[0].ModelID
}

// InitTestModelConnection is the initializer for the TestModelConnection use case.
type InitTestModelConnection struct {
	Resolver       EndpointResolver            `resolve:""`
	SolveModelRepo domain.SolveModelRepository `resolve:""`
	Caller         domain.ModelCaller          `resolve:""`
	TimeProvider   domain.CurrentTimeProvider  `resolve:""`
	Logger         *log.Logger                 `resolve:""`
	Timeout        time.Duration               `config:"SELF_TEST_TIMEOUT" default:"30s"`
}

// Initialize registers the TestModelConnection use case in the dependency container.
func (i InitTestModelConnection) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[TestModelConnection](NewTestModelConnectionImpl(
		i.Resolver,
		i.SolveModelRepo,
		i.Caller,
		i.TimeProvider,
		i.Logger,
		i.Timeout,
	))
	return ctx, nil
}
