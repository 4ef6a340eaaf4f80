package http

import "time"

// ErrorCode is the machine-readable errType of a failed response.
type ErrorCode string

const (
	EMPTYQUESTION         ErrorCode = "EMPTY_QUESTION"
	BADREQUEST            ErrorCode = "BAD_REQUEST"
	MISCONFIGUREDENDPOINT ErrorCode = "MISCONFIGURED_ENDPOINT"
	NOTFOUND              ErrorCode = "NOT_FOUND"
	REQUESTTIMEOUT        ErrorCode = "REQUEST_TIMEOUT"
	UPSTREAMFAILURE       ErrorCode = "UPSTREAM_FAILURE"
	EMPTYUPSTREAMREPLY    ErrorCode = "EMPTY_UPSTREAM_REPLY"
	INTERNALERROR         ErrorCode = "INTERNAL_ERROR"
	UNAUTHORIZED          ErrorCode = "UNAUTHORIZED"
)

// Envelope wraps every JSON response. ErrCode is 0 on success and mirrors the HTTP status otherwise.
type Envelope struct {
	ErrCode int       `json:"errCode"`
	ErrMsg  string    `json:"errMsg"`
	ErrType ErrorCode `json:"errType,omitempty"`
	Data    any       `json:"data"`
}

type SolveModelOption struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type AnalyzeRequest struct {
	Question string `json:"question"`
}

type AnalyzeResp struct {
	KnowledgePoints  []string `json:"knowledge_points"`
	SemanticContexts []string `json:"semantic_contexts"`
}

// SolveRequest skips extraction only when both tag lists are present, even if empty.
type SolveRequest struct {
	Question         string    `json:"question"`
	Model            *string   `json:"model,omitempty"`
	KnowledgePoints  *[]string `json:"knowledge_points,omitempty"`
	SemanticContexts *[]string `json:"semantic_contexts,omitempty"`
}

type SolveResp struct {
	Content          string   `json:"content"`
	KnowledgePoints  []string `json:"knowledge_points"`
	SemanticContexts []string `json:"semantic_contexts"`
}

type ModelSettings struct {
	BaseURL          string  `json:"base_url"`
	Token            string  `json:"token"`
	Model            string  `json:"model"`
	BaseURLKnowledge *string `json:"base_url_knowledge"`
	TokenKnowledge   *string `json:"token_knowledge"`
	ModelKnowledge   *string `json:"model_knowledge"`
	BaseURLSemantic  *string `json:"base_url_semantic"`
	TokenSemantic    *string `json:"token_semantic"`
	ModelSemantic    *string `json:"model_semantic"`
}

type ModelSettingsPatch struct {
	BaseURL          *string `json:"base_url,omitempty"`
	Token            *string `json:"token,omitempty"`
	Model            *string `json:"model,omitempty"`
	BaseURLKnowledge *string `json:"base_url_knowledge,omitempty"`
	TokenKnowledge   *string `json:"token_knowledge,omitempty"`
	ModelKnowledge   *string `json:"model_knowledge,omitempty"`
	BaseURLSemantic  *string `json:"base_url_semantic,omitempty"`
	TokenSemantic    *string `json:"token_semantic,omitempty"`
	ModelSemantic    *string `json:"model_semantic,omitempty"`
}

type SolveModel struct {
	ID          int64     `json:"id"`
	ModelID     string    `json:"model_id"`
	DisplayName string    `json:"display_name"`
	SortOrder   int       `json:"sort_order"`
	Enabled     bool      `json:"enabled"`
	CreatedAt   time.Time `json:"created_at"`
}

type CreateSolveModelRequest struct {
	ModelID     string `json:"model_id"`
	DisplayName string `json:"display_name,omitempty"`
	SortOrder   int    `json:"sort_order,omitempty"`
	Enabled     *bool  `json:"enabled,omitempty"`
}

type UpdateSolveModelRequest struct {
	DisplayName *string `json:"display_name,omitempty"`
	SortOrder   *int    `json:"sort_order,omitempty"`
	Enabled     *bool   `json:"enabled,omitempty"`
}

type ConnectionTestResp struct {
	Success    bool   `json:"success"`
	DurationMs int64  `json:"durationMs"`
	Model      string `json:"model,omitempty"`
}

type HealthResp struct {
	Status string `json:"status"`
}
