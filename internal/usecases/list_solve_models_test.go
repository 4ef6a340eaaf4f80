package usecases

import (
	"context"
	"errors"
	"io"
	"log"
	"testing"

	"github.com/cleitonmarx/symbiont-ai-mathsolver/internal/domain"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestListSolveModelsImpl_Query(t *testing.T) {
	staticOptions := []domain.SolveModelOption{
		{ID: "gpt-5.2", Name: "GPT-5.2"},
		{ID: "my-local-model", Name: "my-local-model"},
	}

	tests := map[string]struct {
		setExpectations func(repo *domain.MockSolveModelRepository)
		expected        []domain.SolveModelOption
	}{
		"stored-models": {
			setExpectations: func(repo *domain.MockSolveModelRepository) {
				repo.EXPECT().
					ListSolveModels(mock.Anything, true).
					Return([]domain.SolveModel{
						{ID: 2, ModelID: "deepseek-v3", DisplayName: "DeepSeek-V3", SortOrder: 0, Enabled: true},
						{ID: 1, ModelID: "gpt-4o", DisplayName: "GPT-4o (fast)", SortOrder: 1, Enabled: true},
					}, nil).
					Once()
			},
			expected: []domain.SolveModelOption{
				{ID: "deepseek-v3", Name: "DeepSeek-V3"},
				{ID: "gpt-4o", Name: "GPT-4o (fast)"},
			},
		},
		"no-enabled-models": {
			setExpectations: func(repo *domain.MockSolveModelRepository) {
				repo.EXPECT().ListSolveModels(mock.Anything, true).Return([]domain.SolveModel{}, nil).Once()
			},
			expected: staticOptions,
		},
		"store-error": {
			setExpectations: func(repo *domain.MockSolveModelRepository) {
				repo.EXPECT().ListSolveModels(mock.Anything, true).Return(nil, errors.New("relation does not exist")).Once()
			},
			expected: staticOptions,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			repo := domain.NewMockSolveModelRepository(t)
			tt.setExpectations(repo)

			defaults := domain.NewStaticDefaults("", "", "", "gpt-5.2, my-local-model")
			uc := NewListSolveModelsImpl(repo, defaults, log.New(io.Discard, "", 0))

			assert.Equal(t, tt.expected, uc.Query(context.Background()))
		})
	}
}

func TestInitListSolveModels_Initialize(t *testing.T) {
	init := InitListSolveModels{
		SolveModelRepo: domain.NewMockSolveModelRepository(t),
		Defaults:       domain.NewStaticDefaults("", "", "", ""),
		Logger:         log.New(io.Discard, "", 0),
	}

	_, err := init.Initialize(context.Background())
	assert.NoError(t, err)

	uc, err := depend.Resolve[ListSolveModels]()
	assert.NoError(t, err)
	assert.NotNil(t, uc)
}
