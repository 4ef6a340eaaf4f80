package usecases

import (
	"context"
	"testing"

	"github.com/cleitonmarx/symbiont-ai-mathsolver/internal/domain"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

var solveEndpoint = domain.EndpointConfig{BaseURL: "https://solve.example/v1", Token: "sk-solve", ModelID: "gpt-5.2"}

func TestAnalyzeQuestionImpl_Execute(t *testing.T) {
	tags := domain.ExtractionResult{
		KnowledgePoints:  []string{"勾股定理"},
		SemanticContexts: []string{"几何测量"},
	}

	tests := map[string]struct {
		question        string
		setExpectations func(resolver *MockEndpointResolver, extractor *MockTagExtractor)
		expected        domain.ExtractionResult
		expectedErr     error
	}{
		"success": {
			question: "  直角三角形两直角边分别为3和4，求斜边。 ",
			setExpectations: func(resolver *MockEndpointResolver, extractor *MockTagExtractor) {
				resolver.EXPECT().Resolve(mock.Anything, domain.ModelRole_Solve).Return(solveEndpoint).Once()
				resolver.EXPECT().Resolve(mock.Anything, domain.ModelRole_Knowledge).Return(knowledgeEndpoint).Once()
				resolver.EXPECT().Resolve(mock.Anything, domain.ModelRole_Semantic).Return(semanticEndpoint).Once()
				extractor.EXPECT().
					Extract(mock.Anything, "直角三角形两直角边分别为3和4，求斜边。", knowledgeEndpoint, semanticEndpoint).
					Return(tags).
					Once()
			},
			expected: tags,
		},
		"empty-question": {
			question:        " \n\t ",
			setExpectations: func(resolver *MockEndpointResolver, extractor *MockTagExtractor) {},
			expectedErr:     domain.NewValidationErr(domain.EmptyQuestionMessage),
		},
		"misconfigured-endpoint": {
			question: "1+1=?",
			setExpectations: func(resolver *MockEndpointResolver, extractor *MockTagExtractor) {
				resolver.EXPECT().
					Resolve(mock.Anything, domain.ModelRole_Solve).
					Return(domain.EndpointConfig{BaseURL: "https://solve.example/v1", ModelID: "gpt-5.2"}).
					Once()
			},
			expectedErr: domain.NewConfigurationErr(misconfiguredEndpointMessage),
		},
		"token-without-base-url-still-extracts": {
			question: "1+1",
			setExpectations: func(resolver *MockEndpointResolver, extractor *MockTagExtractor) {
				tokenOnly := domain.EndpointConfig{Token: "sk", ModelID: "gpt-5.2"}
				resolver.EXPECT().Resolve(mock.Anything, domain.ModelRole_Solve).Return(tokenOnly).Once()
				resolver.EXPECT().Resolve(mock.Anything, domain.ModelRole_Knowledge).Return(tokenOnly).Once()
				resolver.EXPECT().Resolve(mock.Anything, domain.ModelRole_Semantic).Return(tokenOnly).Once()
				extractor.EXPECT().
					Extract(mock.Anything, "1+1", tokenOnly, tokenOnly).
					Return(domain.ExtractionResult{KnowledgePoints: []string{}, SemanticContexts: []string{}}).
					Once()
			},
			expected: domain.ExtractionResult{KnowledgePoints: []string{}, SemanticContexts: []string{}},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			resolver := NewMockEndpointResolver(t)
			extractor := NewMockTagExtractor(t)
			tt.setExpectations(resolver, extractor)

			uc := NewAnalyzeQuestionImpl(resolver, extractor)
			got, err := uc.Execute(context.Background(), tt.question)

			assert.Equal(t, tt.expectedErr, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestInitAnalyzeQuestion_Initialize(t *testing.T) {
	init := InitAnalyzeQuestion{
		Resolver:  NewMockEndpointResolver(t),
		Extractor: NewMockTagExtractor(t),
	}

	_, err := init.Initialize(context.Background())
	assert.NoError(t, err)

	uc, err := depend.Resolve[AnalyzeQuestion]()
	assert.NoError(t, err)
	assert.NotNil(t, uc)
}
