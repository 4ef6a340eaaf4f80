package http

import (
	"crypto/subtle"
	"net/http"
	"strconv"
	"strings"

	"github.com/cleitonmarx/symbiont-ai-mathsolver/internal/domain"
)

// requireAdmin rejects requests that do not carry the admin secret in
// X-Admin-Token or a Bearer authorization header. An unset secret rejects everything.
func (api MathSolverServer) requireAdmin(next http.HandlerFunc) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := strings.TrimSpace(r.Header.Get("X-Admin-Token"))
		if token == "" {
			if auth := r.Header.Get("Authorization"); strings.HasPrefix(auth, "Bearer ") {
				token = strings.TrimSpace(strings.TrimPrefix(auth, "Bearer "))
			}
		}

		secret := api.AdminSecret
		if secret == "" || secret == "-" || subtle.ConstantTimeCompare([]byte(token), []byte(secret)) != 1 {
			respondError(w, Envelope{
				ErrCode: http.StatusUnauthorized,
				ErrMsg:  "admin authentication failed",
				ErrType: UNAUTHORIZED,
			})
			return
		}
		next(w, r)
	})
}

func (api MathSolverServer) GetModelSettings(w http.ResponseWriter, r *http.Request) {
	settings, err := api.GetModelSettingsUseCase.Query(r.Context())
	if err != nil {
		api.Logger.Printf("Error getting model settings: %v", err)
		respondError(w, toError(err))
		return
	}

	if !settings.Complete() {
		respondError(w, Envelope{
			ErrCode: http.StatusBadRequest,
			ErrMsg:  "solve endpoint is not fully configured, base URL or token is empty",
			ErrType: MISCONFIGUREDENDPOINT,
			Data:    toModelSettings(settings),
		})
		return
	}
	respondOK(w, toModelSettings(settings))
}

func (api MathSolverServer) UpdateModelSettings(w http.ResponseWriter, r *http.Request) {
	var req ModelSettingsPatch
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, badRequest("%v", err))
		return
	}

	if err := api.UpdateModelSettingsUseCase.Execute(r.Context(), toModelSettingsPatch(req)); err != nil {
		api.Logger.Printf("Error updating model settings: %v", err)
		respondError(w, toError(err))
		return
	}

	settings, err := api.GetModelSettingsUseCase.Query(r.Context())
	if err != nil {
		api.Logger.Printf("Error getting model settings: %v", err)
		respondError(w, toError(err))
		return
	}
	respondOK(w, toModelSettings(settings))
}

func (api MathSolverServer) ListAllSolveModels(w http.ResponseWriter, r *http.Request) {
	models, err := api.ManageSolveModelsUseCase.List(r.Context())
	if err != nil {
		api.Logger.Printf("Error listing solve models: %v", err)
		respondError(w, toError(err))
		return
	}

	resp := make([]SolveModel, 0, len(models))
	for _, m := range models {
		resp = append(resp, toSolveModel(m))
	}
	respondOK(w, resp)
}

func (api MathSolverServer) CreateSolveModel(w http.ResponseWriter, r *http.Request) {
	var req CreateSolveModelRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, badRequest("%v", err))
		return
	}

	model, err := api.ManageSolveModelsUseCase.Create(r.Context(), domain.SolveModelDraft{
		ModelID:     req.ModelID,
		DisplayName: req.DisplayName,
		SortOrder:   req.SortOrder,
		Enabled:     req.Enabled,
	})
	if err != nil {
		api.Logger.Printf("Error creating solve model: %v", err)
		respondError(w, toError(err))
		return
	}
	respondOK(w, toSolveModel(model))
}

func (api MathSolverServer) UpdateSolveModel(w http.ResponseWriter, r *http.Request) {
	id, ok := solveModelID(w, r)
	if !ok {
		return
	}

	var req UpdateSolveModelRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, badRequest("%v", err))
		return
	}

	model, err := api.ManageSolveModelsUseCase.Update(r.Context(), id, domain.SolveModelPatch{
		DisplayName: req.DisplayName,
		SortOrder:   req.SortOrder,
		Enabled:     req.Enabled,
	})
	if err != nil {
		api.Logger.Printf("Error updating solve model %d: %v", id, err)
		respondError(w, toError(err))
		return
	}
	respondOK(w, toSolveModel(model))
}

func (api MathSolverServer) DeleteSolveModel(w http.ResponseWriter, r *http.Request) {
	id, ok := solveModelID(w, r)
	if !ok {
		return
	}

	if err := api.ManageSolveModelsUseCase.Delete(r.Context(), id); err != nil {
		api.Logger.Printf("Error deleting solve model %d: %v", id, err)
		respondError(w, toError(err))
		return
	}
	respondOK(w, nil)
}

func (api MathSolverServer) TestModelConnection(w http.ResponseWriter, r *http.Request) {
	role, err := domain.ParseModelRole(r.PathValue("role"))
	if err != nil {
		respondError(w, toError(err))
		return
	}

	result, err := api.TestModelConnectionUseCase.Execute(r.Context(), role, r.URL.Query().Get("model_id"))
	if err != nil {
		api.Logger.Printf("Error testing %s endpoint: %v", role, err)
		errResp := toError(err)
		errResp.Data = ConnectionTestResp{Success: false}
		respondError(w, errResp)
		return
	}

	respondOK(w, ConnectionTestResp{
		Success:    true,
		DurationMs: result.Duration.Milliseconds(),
		Model:      result.Model,
	})
}

func solveModelID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || id <= 0 {
		respondError(w, badRequest("invalid solve model id %q", r.PathValue("id")))
		return 0, false
	}
	return id, true
}
