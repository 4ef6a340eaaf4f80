package modelrunner

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/cleitonmarx/symbiont-ai-mathsolver/internal/domain"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestModelCaller_Call(t *testing.T) {
	tests := map[string]struct {
		handler      http.HandlerFunc
		endpoint     func(serverURL string) domain.EndpointConfig
		timeout      time.Duration
		closeServer  bool
		expectHits   int32
		expected     string
		validateErr func(t *testing.T, err error)
	}{
		"success": {
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				_, _ = io.WriteString(w, `{"id":"c1","choices":[{"index":0,"message":{"role":"assistant","content":"x = 4"}}]}`)
			},
			endpoint: func(u string) domain.EndpointConfig {
				return domain.EndpointConfig{BaseURL: u, Token: "sk-test", ModelID: "gpt-4o"}
			},
			expectHits: 1,
			expected:   "x = 4",
		},
		"trailing-slash-and-padding-normalized": {
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = io.WriteString(w, `{"choices":[{"message":{"content":"ok"}}]}`)
			},
			endpoint: func(u string) domain.EndpointConfig {
				return domain.EndpointConfig{BaseURL: " " + u + "/ ", Token: " sk-test ", ModelID: "gpt-4o"}
			},
			expectHits: 1,
			expected:   "ok",
		},
		"unusable-endpoint-makes-no-request": {
			handler: func(w http.ResponseWriter, r *http.Request) {},
			endpoint: func(u string) domain.EndpointConfig {
				return domain.EndpointConfig{BaseURL: u, Token: "  "}
			},
			expectHits: 0,
			validateErr: func(t *testing.T, err error) {
				assert.IsType(t, &domain.ConfigurationErr{}, err)
			},
		},
		"non-2xx-with-json-error-message": {
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusUnauthorized)
				_, _ = io.WriteString(w, `{"error":{"message":"invalid api key","type":"auth"}}`)
			},
			endpoint: func(u string) domain.EndpointConfig {
				return domain.EndpointConfig{BaseURL: u, Token: "sk-bad", ModelID: "gpt-4o"}
			},
			expectHits: 1,
			validateErr: func(t *testing.T, err error) {
				var statusErr *domain.UpstreamStatusErr
				require.ErrorAs(t, err, &statusErr)
				assert.Equal(t, http.StatusUnauthorized, statusErr.StatusCode)
				assert.Equal(t, "invalid api key", statusErr.Detail)
			},
		},
		"non-2xx-with-raw-text": {
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusServiceUnavailable)
				_, _ = io.WriteString(w, "upstream overloaded\n")
			},
			endpoint: func(u string) domain.EndpointConfig {
				return domain.EndpointConfig{BaseURL: u, Token: "sk-test", ModelID: "gpt-4o"}
			},
			expectHits: 1,
			validateErr: func(t *testing.T, err error) {
				var statusErr *domain.UpstreamStatusErr
				require.ErrorAs(t, err, &statusErr)
				assert.Equal(t, http.StatusServiceUnavailable, statusErr.StatusCode)
				assert.Equal(t, "upstream overloaded", statusErr.Detail)
			},
		},
		"non-2xx-with-json-without-message": {
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusBadRequest)
				_, _ = io.WriteString(w, `{"error":"bad model"}`)
			},
			endpoint: func(u string) domain.EndpointConfig {
				return domain.EndpointConfig{BaseURL: u, Token: "sk-test", ModelID: "gpt-4o"}
			},
			expectHits: 1,
			validateErr: func(t *testing.T, err error) {
				var statusErr *domain.UpstreamStatusErr
				require.ErrorAs(t, err, &statusErr)
				assert.Equal(t, `{"error":"bad model"}`, statusErr.Detail)
			},
		},
		"content-of-unexpected-type": {
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = io.WriteString(w, `{"choices":[{"message":{"content":[{"type":"text","text":"hi"}]}}]}`)
			},
			endpoint: func(u string) domain.EndpointConfig {
				return domain.EndpointConfig{BaseURL: u, Token: "sk-test", ModelID: "gpt-4o"}
			},
			expectHits: 1,
			expected:   "",
		},
		"null-content": {
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = io.WriteString(w, `{"choices":[{"message":{"content":null}}]}`)
			},
			endpoint: func(u string) domain.EndpointConfig {
				return domain.EndpointConfig{BaseURL: u, Token: "sk-test", ModelID: "gpt-4o"}
			},
			expectHits: 1,
			expected:   "",
		},
		"no-choices": {
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = io.WriteString(w, `{"choices":[]}`)
			},
			endpoint: func(u string) domain.EndpointConfig {
				return domain.EndpointConfig{BaseURL: u, Token: "sk-test", ModelID: "gpt-4o"}
			},
			expectHits: 1,
			expected:   "",
		},
		"non-json-success-body": {
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = io.WriteString(w, "<html>ok</html>")
			},
			endpoint: func(u string) domain.EndpointConfig {
				return domain.EndpointConfig{BaseURL: u, Token: "sk-test", ModelID: "gpt-4o"}
			},
			expectHits: 1,
			expected:   "",
		},
		"deadline-exceeded": {
			handler: func(w http.ResponseWriter, r *http.Request) {
				select {
				case <-time.After(2 * time.Second):
				case <-r.Context().Done():
				}
			},
			endpoint: func(u string) domain.EndpointConfig {
				return domain.EndpointConfig{BaseURL: u, Token: "sk-test", ModelID: "gpt-4o"}
			},
			timeout:    50 * time.Millisecond,
			expectHits: 1,
			validateErr: func(t *testing.T, err error) {
				assert.IsType(t, &domain.UpstreamTimeoutErr{}, err)
			},
		},
		"connection-refused": {
			handler: func(w http.ResponseWriter, r *http.Request) {},
			endpoint: func(u string) domain.EndpointConfig {
				return domain.EndpointConfig{BaseURL: u, Token: "sk-test", ModelID: "gpt-4o"}
			},
			closeServer: true,
			expectHits:  0,
			validateErr: func(t *testing.T, err error) {
				assert.IsType(t, &domain.UpstreamTransportErr{}, err)
			},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			var hits atomic.Int32
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				hits.Add(1)
				tt.handler(w, r)
			}))
			defer server.Close()
			if tt.closeServer {
				server.Close()
			}

			ctx := context.Background()
			if tt.timeout > 0 {
				var cancel context.CancelFunc
				ctx, cancel = context.WithTimeout(ctx, tt.timeout)
				defer cancel()
			}

			caller := NewModelCaller(&http.Client{}, "developer", "gpt-5.2")
			got, err := caller.Call(ctx, tt.endpoint(server.URL), "system prompt", "user message")

			if tt.validateErr != nil {
				assert.Error(t, err)
				tt.validateErr(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expected, got)
			}
			assert.Equal(t, tt.expectHits, hits.Load())
		})
	}
}

func TestModelCaller_Call_Request(t *testing.T) {
	tests := map[string]struct {
		modelID       string
		expectedModel string
	}{
		"explicit-model": {
			modelID:       "deepseek-v3",
			expectedModel: "deepseek-v3",
		},
		"blank-model-uses-default": {
			modelID:       "  ",
			expectedModel: "gpt-5.2",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			var captured ChatRequest
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodPost, r.Method)
				assert.Equal(t, "/v1/chat/completions", r.URL.Path)
				assert.Equal(t, "Bearer sk-test", r.Header.Get("Authorization"))
				assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
				assert.NoError(t, json.NewDecoder(r.Body).Decode(&captured))
				_, _ = io.WriteString(w, `{"choices":[{"message":{"content":"2"}}]}`)
			}))
			defer server.Close()

			caller := NewModelCaller(server.Client(), "developer", "gpt-5.2")
			got, err := caller.Call(context.Background(), domain.EndpointConfig{
				BaseURL: server.URL,
				Token:   "sk-test",
				ModelID: tt.modelID,
			}, "Reply only with the number 2.", "1+1=?")

			require.NoError(t, err)
			assert.Equal(t, "2", got)
			assert.Equal(t, ChatRequest{
				Model: tt.expectedModel,
				Messages: []ChatMessage{
					{Role: "developer", Content: "Reply only with the number 2."},
					{Role: "user", Content: "1+1=?"},
				},
			}, captured)
		})
	}
}

func TestInitModelCaller_Initialize(t *testing.T) {
	init := InitModelCaller{
		HttpClient:      &http.Client{},
		Defaults:        domain.NewStaticDefaults("", "", "", ""),
		InstructionRole: "developer",
	}

	_, err := init.Initialize(context.Background())
	assert.NoError(t, err)

	caller, err := depend.Resolve[domain.ModelCaller]()
	assert.NoError(t, err)
	assert.Equal(t, NewModelCaller(init.HttpClient, "developer", "gpt-5.2"), caller)
}
