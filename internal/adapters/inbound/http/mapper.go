package http

import (
	"net/http"

	"github.com/cleitonmarx/symbiont-ai-mathsolver/internal/domain"
	"github.com/cleitonmarx/symbiont-ai-mathsolver/internal/usecases"
)

func toError(err error) Envelope {
	errResp := Envelope{}
	switch e := err.(type) {
	case *domain.ValidationErr:
		errResp.ErrCode = http.StatusBadRequest
		errResp.ErrType = BADREQUEST
		if e.IsEmptyQuestion() {
			errResp.ErrType = EMPTYQUESTION
		}
		errResp.ErrMsg = e.Error()
	case *domain.ConfigurationErr:
		errResp.ErrCode = http.StatusBadRequest
		errResp.ErrType = MISCONFIGUREDENDPOINT
		errResp.ErrMsg = e.Error()
	case *domain.NotFoundErr:
		errResp.ErrCode = http.StatusNotFound
		errResp.ErrType = NOTFOUND
		errResp.ErrMsg = e.Error()
	case *domain.UpstreamTimeoutErr:
		errResp.ErrCode = http.StatusGatewayTimeout
		errResp.ErrType = REQUESTTIMEOUT
		errResp.ErrMsg = e.Error()
	case *domain.UpstreamStatusErr:
		errResp.ErrCode = http.StatusBadGateway
		errResp.ErrType = UPSTREAMFAILURE
		errResp.ErrMsg = e.Error()
	case *domain.UpstreamTransportErr:
		errResp.ErrCode = http.StatusBadGateway
		errResp.ErrType = UPSTREAMFAILURE
		errResp.ErrMsg = e.Error()
	case *domain.EmptyReplyErr:
		errResp.ErrCode = http.StatusBadGateway
		errResp.ErrType = EMPTYUPSTREAMREPLY
		errResp.ErrMsg = e.Error()
	case *domain.InternalErr:
		errResp.ErrCode = http.StatusInternalServerError
		errResp.ErrType = INTERNALERROR
		errResp.ErrMsg = e.Error()
	default:
		errResp.ErrCode = http.StatusInternalServerError
		errResp.ErrType = INTERNALERROR
		errResp.ErrMsg = "internal server error"
	}
	return errResp
}

func toSolveModelOptions(options []domain.SolveModelOption) []SolveModelOption {
	resp := make([]SolveModelOption, 0, len(options))
	for _, o := range options {
		resp = append(resp, SolveModelOption{ID: o.ID, Name: o.Name})
	}
	return resp
}

func toSolveModel(m domain.SolveModel) SolveModel {
	return SolveModel{
		ID:          m.ID,
		ModelID:     m.ModelID,
		DisplayName: m.DisplayName,
		SortOrder:   m.SortOrder,
		Enabled:     m.Enabled,
		CreatedAt:   m.CreatedAt,
	}
}

func toModelSettings(s domain.ModelSettings) ModelSettings {
	return ModelSettings{
		BaseURL:          s.BaseURL,
		Token:            s.Token,
		Model:            s.Model,
		BaseURLKnowledge: s.Knowledge.BaseURL,
		TokenKnowledge:   s.Knowledge.Token,
		ModelKnowledge:   s.Knowledge.Model,
		BaseURLSemantic:  s.Semantic.BaseURL,
		TokenSemantic:    s.Semantic.Token,
		ModelSemantic:    s.Semantic.Model,
	}
}

func toModelSettingsPatch(p ModelSettingsPatch) domain.ModelSettingsPatch {
	return domain.ModelSettingsPatch{
		BaseURL: p.BaseURL,
		Token:   p.Token,
		Model:   p.Model,
		Knowledge: domain.RoleOverride{
			BaseURL: p.BaseURLKnowledge,
			Token:   p.TokenKnowledge,
			Model:   p.ModelKnowledge,
		},
		Semantic: domain.RoleOverride{
			BaseURL: p.BaseURLSemantic,
			Token:   p.TokenSemantic,
			Model:   p.ModelSemantic,
		},
	}
}

func toSolveParams(req SolveRequest) usecases.SolveParams {
	params := usecases.SolveParams{Question: req.Question}
	if req.Model != nil {
		params.Model = *req.Model
	}
	if req.KnowledgePoints != nil && req.SemanticContexts != nil {
		params.SuppliedTags = &domain.ExtractionResult{
			KnowledgePoints:  *req.KnowledgePoints,
			SemanticContexts: *req.SemanticContexts,
		}
	}
	return params
}
