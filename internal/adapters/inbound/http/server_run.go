package http

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/cleitonmarx/symbiont-ai-mathsolver/internal/telemetry"
	"github.com/cleitonmarx/symbiont-ai-mathsolver/internal/usecases"
	"github.com/rs/cors"
)

// MathSolverServer is the REST API HTTP server of the math solver.
type MathSolverServer struct {
	Port                       int                          `config:"HTTP_PORT" default:"8000"`
	AdminSecret                string                       `config:"ADMIN_SECRET" default:"-"`
	Logger                     *log.Logger                  `resolve:""`
	ListSolveModelsUseCase     usecases.ListSolveModels     `resolve:""`
	AnalyzeQuestionUseCase     usecases.AnalyzeQuestion     `resolve:""`
	SolveQuestionUseCase       usecases.SolveQuestion       `resolve:""`
	GetModelSettingsUseCase    usecases.GetModelSettings    `resolve:""`
	UpdateModelSettingsUseCase usecases.UpdateModelSettings `resolve:""`
	ManageSolveModelsUseCase   usecases.ManageSolveModels   `resolve:""`
	TestModelConnectionUseCase usecases.TestModelConnection `resolve:""`
}

// Handler builds the routed, instrumented and CORS-enabled handler.
func (api MathSolverServer) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", api.Health)
	// Register introspection endpoint for debugging and testing purposes
	mux.HandleFunc("GET /introspect", IntrospectHandler)

	mux.HandleFunc("GET /api/solve/models", api.ListSolveModels)
	mux.HandleFunc("POST /api/solve/analyze", api.AnalyzeQuestion)
	mux.HandleFunc("POST /api/solve", api.SolveQuestion)

	mux.Handle("GET /api/admin/uniapi-config", api.requireAdmin(api.GetModelSettings))
	mux.Handle("PATCH /api/admin/uniapi-config", api.requireAdmin(api.UpdateModelSettings))
	mux.Handle("GET /api/admin/solve-models", api.requireAdmin(api.ListAllSolveModels))
	mux.Handle("POST /api/admin/solve-models", api.requireAdmin(api.CreateSolveModel))
	mux.Handle("PATCH /api/admin/solve-models/{id}", api.requireAdmin(api.UpdateSolveModel))
	mux.Handle("DELETE /api/admin/solve-models/{id}", api.requireAdmin(api.DeleteSolveModel))
	mux.Handle("GET /api/admin/test/{role}", api.requireAdmin(api.TestModelConnection))

	h := telemetry.Middleware("mathsolver-api")(mux)

	// Apply CORS at the top-level so preflight requests hit it, too.
	return cors.AllowAll().Handler(h)
}

// Run starts the HTTP server for the MathSolverServer.
func (api MathSolverServer) Run(ctx context.Context) error {
	s := &http.Server{
		Handler: api.Handler(),
		Addr:    fmt.Sprintf(":%d", api.Port),
	}

	errCh := make(chan error, 1)
	go func() {
		api.Logger.Printf("MathSolverServer: Listening on port %d", api.Port)
		errCh <- s.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		err := s.Shutdown(shutdownCtx)
		if err != nil {
			api.Logger.Printf("MathSolverServer: error during shutdown: %v", err)
		} else {
			api.Logger.Println("MathSolverServer: stopped")
		}
		return err
	case err := <-errCh:
		return err
	}
}

// IsReady checks if the MathSolverServer is ready by performing a health check.
func (api MathSolverServer) IsReady(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fmt.Sprintf("http://:%d/health", api.Port), nil)
	if err != nil {
		return err
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}
	return nil
}

// Health reports that the server is accepting requests.
func (api MathSolverServer) Health(w http.ResponseWriter, r *http.Request) {
	respondOK(w, HealthResp{Status: "ok"})
}
