package usecases

import (
	"context"
	"errors"
	"io"
	"log"
	"testing"
	"time"

	"github.com/cleitonmarx/symbiont-ai-mathsolver/internal/domain"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

var (
	knowledgeEndpoint = domain.EndpointConfig{BaseURL: "https://knowledge.example/v1", Token: "sk-k", ModelID: "knowledge-model"}
	semanticEndpoint  = domain.EndpointConfig{BaseURL: "https://semantic.example/v1", Token: "sk-s", ModelID: "semantic-model"}
)

func TestTagExtractorImpl_Extract(t *testing.T) {
	const question = "甲乙两车相向而行，3小时后相遇，求两地距离。"

	tests := map[string]struct {
		setExpectations func(caller *domain.MockModelCaller)
		expected        domain.ExtractionResult
	}{
		"both-succeed": {
			setExpectations: func(caller *domain.MockModelCaller) {
				caller.EXPECT().
					Call(mock.Anything, knowledgeEndpoint, prompts.KnowledgeSystem, question).
					Return(`["一元一次方程", "相遇问题"]`, nil).
					Once()
				caller.EXPECT().
					Call(mock.Anything, semanticEndpoint, prompts.SemanticSystem, question).
					Return("行程问题", nil).
					Once()
			},
			expected: domain.ExtractionResult{
				KnowledgePoints:  []string{"一元一次方程", "相遇问题"},
				SemanticContexts: []string{"行程问题"},
			},
		},
		"knowledge-fails": {
			setExpectations: func(caller *domain.MockModelCaller) {
				caller.EXPECT().
					Call(mock.Anything, knowledgeEndpoint, mock.Anything, mock.Anything).
					Return("", domain.NewUpstreamStatusErr(500, "")).
					Once()
				caller.EXPECT().
					Call(mock.Anything, semanticEndpoint, mock.Anything, mock.Anything).
					Return("行程问题\n生活中的速度", nil).
					Once()
			},
			expected: domain.ExtractionResult{
				KnowledgePoints:  []string{},
				SemanticContexts: []string{"行程问题", "生活中的速度"},
			},
		},
		"semantic-panics": {
			setExpectations: func(caller *domain.MockModelCaller) {
				caller.EXPECT().
					Call(mock.Anything, knowledgeEndpoint, mock.Anything, mock.Anything).
					Return("分数、比例", nil).
					Once()
				caller.EXPECT().
					Call(mock.Anything, semanticEndpoint, mock.Anything, mock.Anything).
					RunAndReturn(func(context.Context, domain.EndpointConfig, string, string) (string, error) {
						panic("unexpected reply shape")
					}).
					Once()
			},
			expected: domain.ExtractionResult{
				KnowledgePoints:  []string{"分数", "比例"},
				SemanticContexts: []string{},
			},
		},
		"both-fail": {
			setExpectations: func(caller *domain.MockModelCaller) {
				caller.EXPECT().
					Call(mock.Anything, mock.Anything, mock.Anything, mock.Anything).
					Return("", errors.New("connection reset")).
					Twice()
			},
			expected: domain.ExtractionResult{
				KnowledgePoints:  []string{},
				SemanticContexts: []string{},
			},
		},
		"blank-replies": {
			setExpectations: func(caller *domain.MockModelCaller) {
				caller.EXPECT().
					Call(mock.Anything, mock.Anything, mock.Anything, mock.Anything).
					Return("   ", nil).
					Twice()
			},
			expected: domain.ExtractionResult{
				KnowledgePoints:  []string{},
				SemanticContexts: []string{},
			},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			caller := domain.NewMockModelCaller(t)
			tt.setExpectations(caller)

			e := NewTagExtractorImpl(caller, log.New(io.Discard, "", 0), time.Second)
			got := e.Extract(context.Background(), question, knowledgeEndpoint, semanticEndpoint)

			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestTagExtractorImpl_Extract_SharedDeadline(t *testing.T) {
	const question = "某商品打八折后售价为160元，求原价。"

	blockUntilDone := func(ctx context.Context, _ domain.EndpointConfig, _, _ string) (string, error) {
		<-ctx.Done()
		return "", domain.NewUpstreamTimeoutErr("model request timed out")
	}
	replyAfter := func(delay time.Duration, reply string) func(context.Context, domain.EndpointConfig, string, string) (string, error) {
		return func(ctx context.Context, _ domain.EndpointConfig, _, _ string) (string, error) {
			select {
			case <-time.After(delay):
				return reply, nil
			case <-ctx.Done():
				return "", domain.NewUpstreamTimeoutErr("model request timed out")
			}
		}
	}

	tests := map[string]struct {
		timeout   time.Duration
		knowledge func(context.Context, domain.EndpointConfig, string, string) (string, error)
		semantic  func(context.Context, domain.EndpointConfig, string, string) (string, error)
		bound     time.Duration
		expected  domain.ExtractionResult
	}{
		"both-slow-replies-overlap": {
			timeout:   time.Second,
			knowledge: replyAfter(300*time.Millisecond, `["百分数"]`),
			semantic:  replyAfter(300*time.Millisecond, "利润问题"),
			bound:     600 * time.Millisecond,
			expected: domain.ExtractionResult{
				KnowledgePoints:  []string{"百分数"},
				SemanticContexts: []string{"利润问题"},
			},
		},
		"both-hit-one-deadline": {
			timeout:   200 * time.Millisecond,
			knowledge: blockUntilDone,
			semantic:  blockUntilDone,
			bound:     400 * time.Millisecond,
			expected: domain.ExtractionResult{
				KnowledgePoints:  []string{},
				SemanticContexts: []string{},
			},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			caller := domain.NewMockModelCaller(t)
			caller.EXPECT().
				Call(mock.Anything, knowledgeEndpoint, mock.Anything, mock.Anything).
				RunAndReturn(tt.knowledge).
				Once()
			caller.EXPECT().
				Call(mock.Anything, semanticEndpoint, mock.Anything, mock.Anything).
				RunAndReturn(tt.semantic).
				Once()

			e := NewTagExtractorImpl(caller, log.New(io.Discard, "", 0), tt.timeout)

			start := time.Now()
			got := e.Extract(context.Background(), question, knowledgeEndpoint, semanticEndpoint)
			elapsed := time.Since(start)

			assert.Equal(t, tt.expected, got)
			assert.Less(t, elapsed, tt.bound)
		})
	}
}

func TestInitTagExtractor_Initialize(t *testing.T) {
	init := InitTagExtractor{
		Caller:  domain.NewMockModelCaller(t),
		Logger:  log.New(io.Discard, "", 0),
		Timeout: time.Second,
	}

	_, err := init.Initialize(context.Background())
	assert.NoError(t, err)

	e, err := depend.Resolve[TagExtractor]()
	assert.NoError(t, err)
	assert.NotNil(t, e)
}
