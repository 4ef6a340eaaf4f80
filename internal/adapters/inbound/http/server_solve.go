package http

import (
	"net/http"
)

func (api MathSolverServer) ListSolveModels(w http.ResponseWriter, r *http.Request) {
	respondOK(w, toSolveModelOptions(api.ListSolveModelsUseCase.Query(r.Context())))
}

func (api MathSolverServer) AnalyzeQuestion(w http.ResponseWriter, r *http.Request) {
	var req AnalyzeRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, badRequest("%v", err))
		return
	}

	tags, err := api.AnalyzeQuestionUseCase.Execute(r.Context(), req.Question)
	if err != nil {
		api.Logger.Printf("Error analyzing question: %v", err)
		respondError(w, toError(err))
		return
	}

	respondOK(w, AnalyzeResp{
		KnowledgePoints:  tags.KnowledgePoints,
		SemanticContexts: tags.SemanticContexts,
	})
}

func (api MathSolverServer) SolveQuestion(w http.ResponseWriter, r *http.Request) {
	var req SolveRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, badRequest("%v", err))
		return
	}

	result, err := api.SolveQuestionUseCase.Execute(r.Context(), toSolveParams(req))
	if err != nil {
		api.Logger.Printf("Error solving question: %v", err)
		respondError(w, toError(err))
		return
	}

	respondOK(w, SolveResp{
		Content:          result.Content,
		KnowledgePoints:  result.KnowledgePoints,
		SemanticContexts: result.SemanticContexts,
	})
}
