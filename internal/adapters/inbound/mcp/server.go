// Package mcp exposes the solve workflow as Model Context Protocol tools so
// agents can list models, analyze and solve questions.
package mcp

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/cleitonmarx/symbiont-ai-mathsolver/internal/telemetry"
	"github.com/cleitonmarx/symbiont-ai-mathsolver/internal/usecases"
	sdk "github.com/modelcontextprotocol/go-sdk/mcp"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const serverVersion = "v1.0.0"

// MathSolverMCPServer serves the solve tools over streamable HTTP at /mcp.
type MathSolverMCPServer struct {
	Port                   int                      `config:"MCP_PORT" default:"8090"`
	Logger                 *log.Logger              `resolve:""`
	ListSolveModelsUseCase usecases.ListSolveModels `resolve:""`
	AnalyzeQuestionUseCase usecases.AnalyzeQuestion `resolve:""`
	SolveQuestionUseCase   usecases.SolveQuestion   `resolve:""`
}

type ListSolveModelsInput struct{}

type SolveModelOption struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type ListSolveModelsOutput struct {
	Models []SolveModelOption `json:"models"`
}

type AnalyzeProblemInput struct {
	Question string `json:"question" jsonschema:"the math word problem to classify"`
}

type AnalyzeProblemOutput struct {
	KnowledgePoints  []string `json:"knowledge_points"`
	SemanticContexts []string `json:"semantic_contexts"`
}

type SolveProblemInput struct {
	Question string `json:"question" jsonschema:"the math word problem to solve"`
	Model    string `json:"model,omitempty" jsonschema:"solving model id, the configured default when omitted"`
}

type SolveProblemOutput struct {
	Content          string   `json:"content"`
	KnowledgePoints  []string `json:"knowledge_points"`
	SemanticContexts []string `json:"semantic_contexts"`
}

// NewServer builds the MCP server with every solve tool registered.
func (s MathSolverMCPServer) NewServer() *sdk.Server {
	server := sdk.NewServer(&sdk.Implementation{Name: "mathsolver", Version: serverVersion}, nil)

	sdk.AddTool(server, &sdk.Tool{
		Name:        "list_solve_models",
		Description: "List the models that can be selected to solve a problem.",
	}, s.listSolveModels)

	sdk.AddTool(server, &sdk.Tool{
		Name:        "analyze_problem",
		Description: "Identify the knowledge points and semantic contexts of a math word problem.",
	}, s.analyzeProblem)

	sdk.AddTool(server, &sdk.Tool{
		Name:        "solve_problem",
		Description: "Solve a math word problem step by step, guided by its knowledge points and semantic contexts.",
	}, s.solveProblem)

	return server
}

func (s MathSolverMCPServer) listSolveModels(ctx context.Context, _ *sdk.CallToolRequest, _ ListSolveModelsInput) (*sdk.CallToolResult, ListSolveModelsOutput, error) {
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(attribute.String("mcp.tool", "list_solve_models")))
	defer span.End()

	options := s.ListSolveModelsUseCase.Query(spanCtx)
	out := ListSolveModelsOutput{Models: make([]SolveModelOption, 0, len(options))}
	for _, o := range options {
		out.Models = append(out.Models, SolveModelOption{ID: o.ID, Name: o.Name})
	}
	return nil, out, nil
}

func (s MathSolverMCPServer) analyzeProblem(ctx context.Context, _ *sdk.CallToolRequest, in AnalyzeProblemInput) (*sdk.CallToolResult, AnalyzeProblemOutput, error) {
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(attribute.String("mcp.tool", "analyze_problem")))
	defer span.End()

	tags, err := s.AnalyzeQuestionUseCase.Execute(spanCtx, in.Question)
	if telemetry.RecordErrorAndStatus(span, err) {
		s.Logger.Printf("MathSolverMCPServer: analyze_problem failed: %v", err)
		return nil, AnalyzeProblemOutput{}, err
	}
	return nil, AnalyzeProblemOutput{
		KnowledgePoints:  tags.KnowledgePoints,
		SemanticContexts: tags.SemanticContexts,
	}, nil
}

func (s MathSolverMCPServer) solveProblem(ctx context.Context, _ *sdk.CallToolRequest, in SolveProblemInput) (*sdk.CallToolResult, SolveProblemOutput, error) {
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(
		attribute.String("mcp.tool", "solve_problem"),
		attribute.String("model", in.Model),
	))
	defer span.End()

	result, err := s.SolveQuestionUseCase.Execute(spanCtx, usecases.SolveParams{
		Question: in.Question,
		Model:    in.Model,
	})
	if telemetry.RecordErrorAndStatus(span, err) {
		s.Logger.Printf("MathSolverMCPServer: solve_problem failed: %v", err)
		return nil, SolveProblemOutput{}, err
	}

	// The solution text doubles as the unstructured content for clients
	// that ignore structured output.
	res := &sdk.CallToolResult{
		Content: []sdk.Content{&sdk.TextContent{Text: result.Content}},
	}
	return res, SolveProblemOutput{
		Content:          result.Content,
		KnowledgePoints:  result.KnowledgePoints,
		SemanticContexts: result.SemanticContexts,
	}, nil
}

// Handler returns the streamable HTTP handler serving the tools at /mcp.
func (s MathSolverMCPServer) Handler() http.Handler {
	server := s.NewServer()
	mux := http.NewServeMux()
	mux.Handle("/mcp", sdk.NewStreamableHTTPHandler(func(*http.Request) *sdk.Server {
		return server
	}, nil))
	return telemetry.Middleware("mathsolver-mcp")(mux)
}

// Run starts the MCP HTTP server.
func (s MathSolverMCPServer) Run(ctx context.Context) error {
	srv := &http.Server{
		Handler: s.Handler(),
		Addr:    fmt.Sprintf(":%d", s.Port),
	}

	errCh := make(chan error, 1)
	go func() {
		s.Logger.Printf("MathSolverMCPServer: Listening on port %d", s.Port)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		err := srv.Shutdown(shutdownCtx)
		if err != nil {
			s.Logger.Printf("MathSolverMCPServer: error during shutdown: %v", err)
		} else {
			s.Logger.Println("MathSolverMCPServer: stopped")
		}
		return err
	case err := <-errCh:
		return err
	}
}
