package app

import (
	"github.com/cleitonmarx/symbiont"
	"github.com/cleitonmarx/symbiont-ai-mathsolver/internal/adapters/inbound/http"
	"github.com/cleitonmarx/symbiont-ai-mathsolver/internal/adapters/inbound/mcp"
	"github.com/cleitonmarx/symbiont-ai-mathsolver/internal/adapters/inbound/workers"
	"github.com/cleitonmarx/symbiont-ai-mathsolver/internal/adapters/outbound/config"
	"github.com/cleitonmarx/symbiont-ai-mathsolver/internal/adapters/outbound/log"
	"github.com/cleitonmarx/symbiont-ai-mathsolver/internal/adapters/outbound/modelrunner"
	"github.com/cleitonmarx/symbiont-ai-mathsolver/internal/adapters/outbound/postgres"
	"github.com/cleitonmarx/symbiont-ai-mathsolver/internal/adapters/outbound/pubsub"
	"github.com/cleitonmarx/symbiont-ai-mathsolver/internal/adapters/outbound/time"
	"github.com/cleitonmarx/symbiont-ai-mathsolver/internal/telemetry"
	"github.com/cleitonmarx/symbiont-ai-mathsolver/internal/usecases"
)

// NewMathSolverApp creates and returns a new instance of the MathSolver application.
func NewMathSolverApp(initializers ...symbiont.Initializer) *symbiont.App {
	return symbiont.NewApp().
		Initialize(initializers...).
		Initialize(
			&log.InitLogger{},
			&telemetry.InitOpenTelemetry{},
			&telemetry.InitHttpClient{},
			&config.InitVaultProvider{},
			&config.InitStaticDefaults{},
			&postgres.InitDB{},
			&postgres.InitUnitOfWork{},
			&postgres.InitSettingsRepository{},
			&postgres.InitSolveModelRepository{},
			&time.InitCurrentTimeProvider{},
			&pubsub.InitClient{},
			&pubsub.InitPublisher{},
			&modelrunner.InitModelCaller{},

			&usecases.InitEndpointResolver{},
			&usecases.InitTagExtractor{},
			&usecases.InitSeedSolveModels{},
			&usecases.InitListSolveModels{},
			&usecases.InitAnalyzeQuestion{},
			&usecases.InitSolveQuestion{},
			&usecases.InitGetModelSettings{},
			&usecases.InitUpdateModelSettings{},
			&usecases.InitManageSolveModels{},
			&usecases.InitTestModelConnection{},
			&usecases.InitRelayOutbox{},
		).
		Host(
			&http.MathSolverServer{},
			&mcp.MathSolverMCPServer{},
			&workers.MessageRelay{},
		).
		Introspect(&MermaidGraphIntrospector{})
}
