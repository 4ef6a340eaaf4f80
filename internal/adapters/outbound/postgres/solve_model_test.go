package postgres

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/cleitonmarx/symbiont-ai-mathsolver/internal/domain"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

const selectSolveModels = "SELECT id, model_id, display_name, sort_order, enabled, created_at FROM solve_models"

func TestSolveModelRepository_ListSolveModels(t *testing.T) {
	fixedTime := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

	tests := map[string]struct {
		enabledOnly     bool
		setExpectations func(mock sqlmock.Sqlmock)
		expected        []domain.SolveModel
		expectErr       bool
	}{
		"all-models": {
			setExpectations: func(mock sqlmock.Sqlmock) {
				rows := sqlmock.NewRows(solveModelFields).
					AddRow(int64(1), "gpt-5.2", "GPT-5.2", 0, true, fixedTime).
					AddRow(int64(2), "gpt-4o", "GPT-4o", 1, false, fixedTime)
				mock.ExpectQuery(selectSolveModels + " ORDER BY sort_order, id").
					WillReturnRows(rows)
			},
			expected: []domain.SolveModel{
				{ID: 1, ModelID: "gpt-5.2", DisplayName: "GPT-5.2", SortOrder: 0, Enabled: true, CreatedAt: fixedTime},
				{ID: 2, ModelID: "gpt-4o", DisplayName: "GPT-4o", SortOrder: 1, Enabled: false, CreatedAt: fixedTime},
			},
		},
		"enabled-only": {
			enabledOnly: true,
			setExpectations: func(mock sqlmock.Sqlmock) {
				rows := sqlmock.NewRows(solveModelFields).
					AddRow(int64(1), "gpt-5.2", "GPT-5.2", 0, true, fixedTime)
				mock.ExpectQuery(selectSolveModels + " WHERE enabled = $1 ORDER BY sort_order, id").
					WithArgs(true).
					WillReturnRows(rows)
			},
			expected: []domain.SolveModel{
				{ID: 1, ModelID: "gpt-5.2", DisplayName: "GPT-5.2", SortOrder: 0, Enabled: true, CreatedAt: fixedTime},
			},
		},
		"empty": {
			setExpectations: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(selectSolveModels + " ORDER BY sort_order, id").
					WillReturnRows(sqlmock.NewRows(solveModelFields))
			},
			expected: []domain.SolveModel{},
		},
		"database-error": {
			setExpectations: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(selectSolveModels + " ORDER BY sort_order, id").
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
		"scan-error": {
			setExpectations: func(mock sqlmock.Sqlmock) {
				rows := sqlmock.NewRows(solveModelFields).
					AddRow("not-a-number", "gpt-5.2", "GPT-5.2", 0, true, fixedTime)
				mock.ExpectQuery(selectSolveModels + " ORDER BY sort_order, id").
					WillReturnRows(rows)
			},
			expectErr: true,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
			assert.NoError(t, err)
			defer db.Close() // nolint:errcheck

			tt.setExpectations(mock)

			repo := NewSolveModelRepository(db)
			got, err := repo.ListSolveModels(context.Background(), tt.enabledOnly)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expected, got)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestSolveModelRepository_CountSolveModels(t *testing.T) {
	tests := map[string]struct {
		setExpectations func(mock sqlmock.Sqlmock)
		expected        int
		expectErr       bool
	}{
		"success": {
			setExpectations: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("SELECT COUNT(*) FROM solve_models").
					WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(4))
			},
			expected: 4,
		},
		"database-error": {
			setExpectations: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("SELECT COUNT(*) FROM solve_models").
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
			assert.NoError(t, err)
			defer db.Close() // nolint:errcheck

			tt.setExpectations(mock)

			repo := NewSolveModelRepository(db)
			got, err := repo.CountSolveModels(context.Background())
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expected, got)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestSolveModelRepository_GetSolveModel(t *testing.T) {
	fixedTime := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	model := domain.SolveModel{ID: 7, ModelID: "gpt-4o", DisplayName: "GPT-4o", SortOrder: 1, Enabled: true, CreatedAt: fixedTime}

	tests := map[string]struct {
		setExpectations func(mock sqlmock.Sqlmock)
		expected        domain.SolveModel
		expectedFound   bool
		expectErr       bool
	}{
		"success": {
			setExpectations: func(mock sqlmock.Sqlmock) {
				rows := sqlmock.NewRows(solveModelFields).
					AddRow(model.ID, model.ModelID, model.DisplayName, model.SortOrder, model.Enabled, model.CreatedAt)
				mock.ExpectQuery(selectSolveModels + " WHERE id = $1").
					WithArgs(int64(7)).
					WillReturnRows(rows)
			},
			expected:      model,
			expectedFound: true,
		},
		"not-found": {
			setExpectations: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(selectSolveModels + " WHERE id = $1").
					WithArgs(int64(7)).
					WillReturnError(sql.ErrNoRows)
			},
		},
		"database-error": {
			setExpectations: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(selectSolveModels + " WHERE id = $1").
					WithArgs(int64(7)).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
			assert.NoError(t, err)
			defer db.Close() // nolint:errcheck

			tt.setExpectations(mock)

			repo := NewSolveModelRepository(db)
			got, found, err := repo.GetSolveModel(context.Background(), 7)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.expectedFound, found)
			assert.Equal(t, tt.expected, got)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestSolveModelRepository_GetSolveModelByModelID(t *testing.T) {
	fixedTime := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
	assert.NoError(t, err)
	defer db.Close() // nolint:errcheck

	mock.ExpectQuery(selectSolveModels + " WHERE model_id = $1").
		WithArgs("deepseek-v3").
		WillReturnRows(sqlmock.NewRows(solveModelFields).
			AddRow(int64(4), "deepseek-v3", "DeepSeek-V3", 3, true, fixedTime))
	mock.ExpectQuery(selectSolveModels + " WHERE model_id = $1").
		WithArgs("missing").
		WillReturnError(sql.ErrNoRows)

	repo := NewSolveModelRepository(db)

	got, found, err := repo.GetSolveModelByModelID(context.Background(), "deepseek-v3")
	assert.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, int64(4), got.ID)

	_, found, err = repo.GetSolveModelByModelID(context.Background(), "missing")
	assert.NoError(t, err)
	assert.False(t, found)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSolveModelRepository_CreateSolveModel(t *testing.T) {
	fixedTime := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	model := domain.SolveModel{ModelID: "gpt-4o", DisplayName: "GPT-4o", SortOrder: 1, Enabled: true, CreatedAt: fixedTime}
	insertSQL := "INSERT INTO solve_models (model_id,display_name,sort_order,enabled,created_at) VALUES ($1,$2,$3,$4,$5) RETURNING id"

	tests := map[string]struct {
		setExpectations func(mock sqlmock.Sqlmock)
		expectedID      int64
		validateErr     func(t *testing.T, err error)
	}{
		"success": {
			setExpectations: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(insertSQL).
					WithArgs(model.ModelID, model.DisplayName, model.SortOrder, model.Enabled, model.CreatedAt).
					WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(9)))
			},
			expectedID: 9,
		},
		"duplicate-model-id": {
			setExpectations: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(insertSQL).
					WithArgs(model.ModelID, model.DisplayName, model.SortOrder, model.Enabled, model.CreatedAt).
					WillReturnError(&pgconn.PgError{Code: "23505", Message: "duplicate key value"})
			},
			validateErr: func(t *testing.T, err error) {
				var validationErr *domain.ValidationErr
				assert.ErrorAs(t, err, &validationErr)
				assert.EqualError(t, err, "model id already exists")
			},
		},
		"database-error": {
			setExpectations: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(insertSQL).
					WithArgs(model.ModelID, model.DisplayName, model.SortOrder, model.Enabled, model.CreatedAt).
					WillReturnError(errors.New("database error"))
			},
			validateErr: func(t *testing.T, err error) {
				assert.EqualError(t, err, "database error")
			},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
			assert.NoError(t, err)
			defer db.Close() // nolint:errcheck

			tt.setExpectations(mock)

			repo := NewSolveModelRepository(db)
			got, err := repo.CreateSolveModel(context.Background(), model)
			if tt.validateErr != nil {
				tt.validateErr(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedID, got.ID)
				assert.Equal(t, model.ModelID, got.ModelID)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestSolveModelRepository_UpdateSolveModel(t *testing.T) {
	model := domain.SolveModel{ID: 7, ModelID: "gpt-4o", DisplayName: "GPT-4o mini", SortOrder: 2, Enabled: false}

	tests := map[string]struct {
		setExpectations func(mock sqlmock.Sqlmock)
		expectedErr     error
	}{
		"success": {
			setExpectations: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec("UPDATE solve_models SET display_name = $1, sort_order = $2, enabled = $3 WHERE id = $4").
					WithArgs(model.DisplayName, model.SortOrder, model.Enabled, model.ID).
					WillReturnResult(sqlmock.NewResult(0, 1))
			},
		},
		"database-error": {
			setExpectations: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec("UPDATE solve_models SET display_name = $1, sort_order = $2, enabled = $3 WHERE id = $4").
					WithArgs(model.DisplayName, model.SortOrder, model.Enabled, model.ID).
					WillReturnError(errors.New("database error"))
			},
			expectedErr: errors.New("database error"),
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
			assert.NoError(t, err)
			defer db.Close() // nolint:errcheck

			tt.setExpectations(mock)

			repo := NewSolveModelRepository(db)
			gotErr := repo.UpdateSolveModel(context.Background(), model)
			assert.Equal(t, tt.expectedErr, gotErr)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestSolveModelRepository_DeleteSolveModel(t *testing.T) {
	tests := map[string]struct {
		setExpectations func(mock sqlmock.Sqlmock)
		expectedErr     error
	}{
		"success": {
			setExpectations: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec("DELETE FROM solve_models WHERE id = $1").
					WithArgs(int64(7)).
					WillReturnResult(sqlmock.NewResult(0, 1))
			},
		},
		"database-error": {
			setExpectations: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec("DELETE FROM solve_models WHERE id = $1").
					WithArgs(int64(7)).
					WillReturnError(errors.New("database error"))
			},
			expectedErr: errors.New("database error"),
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
			assert.NoError(t, err)
			defer db.Close() // nolint:errcheck

			tt.setExpectations(mock)

			repo := NewSolveModelRepository(db)
			gotErr := repo.DeleteSolveModel(context.Background(), 7)
			assert.Equal(t, tt.expectedErr, gotErr)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestInitSolveModelRepository_Initialize(t *testing.T) {
	i := InitSolveModelRepository{
		DB: &sql.DB{},
	}

	_, err := i.Initialize(context.Background())
	assert.NoError(t, err)

	_, err = depend.Resolve[domain.SolveModelRepository]()
	assert.NoError(t, err)
}
