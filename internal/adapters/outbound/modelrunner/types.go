package modelrunner

import "encoding/json"

// ChatRequest is an OpenAI-compatible chat completions request
type ChatRequest struct {
	Model    string        `json:"model"`
	Messages []ChatMessage `json:"messages"`
}

// ChatMessage is an OpenAI-compatible message
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ChatResponse is an OpenAI-compatible response. Only the fields read by
// this package are declared.
type ChatResponse struct {
	ID      string   `json:"id"`
	Model   string   `json:"model"`
	Choices []Choice `json:"choices"`
}

// Choice represents a completion choice
type Choice struct {
	Index        int     `json:"index"`
	FinishReason string  `json:"finish_reason"`
	Message      Message `json:"message"`
}

// Message represents the assistant message. Content is kept raw because
// providers are not consistent about its type.
type Message struct {
	Role    string          `json:"role"`
	Content json.RawMessage `json:"content"`
}

// errorResponse is the error envelope used by OpenAI-compatible providers.
type errorResponse struct {
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}
