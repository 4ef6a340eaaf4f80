// Package modelrunner provides a small client for OpenAI-compatible
// chat-completions endpoints and adapts it to domain.ModelCaller.
package modelrunner

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"

	"github.com/cleitonmarx/symbiont-ai-mathsolver/internal/domain"
)

const chatCompletionsPath = "/v1/chat/completions"

// ChatCompletionsClient is a thin client for one OpenAI-compatible endpoint.
type ChatCompletionsClient struct {
	baseURL string
	apiKey  string
	http    *http.Client
}

// NewChatCompletionsClient creates a new client
func NewChatCompletionsClient(baseURL string, apiKey string, httpClient *http.Client) ChatCompletionsClient {
	return ChatCompletionsClient{
		baseURL: baseURL,
		apiKey:  apiKey,
		http:    httpClient,
	}
}

// Chat sends a non-streaming request and returns the content of the first choice.
// A successful response of an unexpected shape yields an empty string.
func (c ChatCompletionsClient) Chat(ctx context.Context, req ChatRequest) (string, error) {
	if req.Model == "" {
		return "", errors.New("model is required")
	}
	if len(req.Messages) == 0 {
		return "", errors.New("messages are required")
	}

	httpReq, err := c.newPostRequest(ctx, chatCompletionsPath, req)
	if err != nil {
		return "", err
	}

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return "", classifyTransportErr(ctx, err)
	}
	defer resp.Body.Close() //nolint:errcheck

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", classifyTransportErr(ctx, fmt.Errorf("read response: %w", err))
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", domain.NewUpstreamStatusErr(resp.StatusCode, errorDetail(respBody))
	}

	return firstChoiceContent(respBody), nil
}

func (c ChatCompletionsClient) newPostRequest(ctx context.Context, path string, body any) (*http.Request, error) {
	endpoint, err := url.JoinPath(c.baseURL, path)
	if err != nil {
		return nil, fmt.Errorf("invalid base URL: %w", err)
	}
	b, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}
	return req, nil
}

// classifyTransportErr maps a failed exchange to a timeout or transport error.
func classifyTransportErr(ctx context.Context, err error) error {
	if errors.Is(ctx.Err(), context.DeadlineExceeded) || errors.Is(err, context.DeadlineExceeded) {
		return domain.NewUpstreamTimeoutErr("model request timed out, please retry later")
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return domain.NewUpstreamTimeoutErr("model request timed out, please retry later")
	}
	return domain.NewUpstreamTransportErr(err)
}

// errorDetail extracts error.message from a JSON error body, falling back to the raw text.
func errorDetail(body []byte) string {
	var payload errorResponse
	if err := json.Unmarshal(body, &payload); err == nil {
		if msg := strings.TrimSpace(payload.Error.Message); msg != "" {
			return msg
		}
	}
	return strings.TrimSpace(string(body))
}

func firstChoiceContent(body []byte) string {
	var out ChatResponse
	if err := json.Unmarshal(body, &out); err != nil || len(out.Choices) == 0 {
		return ""
	}
	var content string
	if err := json.Unmarshal(out.Choices[0].Message.Content, &content); err != nil {
		return ""
	}
	return content
}
