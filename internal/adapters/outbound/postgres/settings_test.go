package postgres

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/cleitonmarx/symbiont-ai-mathsolver/internal/domain"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/stretchr/testify/assert"
)

func TestSettingsRepository_GetSettings(t *testing.T) {
	tests := map[string]struct {
		keys            []string
		setExpectations func(mock sqlmock.Sqlmock)
		expected        map[string]string
		expectErr       bool
	}{
		"success": {
			keys: []string{"UNIAPI_BASE_URL", "UNIAPI_TOKEN", "UNIAPI_MODEL"},
			setExpectations: func(mock sqlmock.Sqlmock) {
				rows := sqlmock.NewRows([]string{"key", "value"}).
					AddRow("UNIAPI_BASE_URL", "https://api.example.com").
					AddRow("UNIAPI_TOKEN", nil)
				mock.ExpectQuery("SELECT key, value FROM system_settings WHERE key IN ($1,$2,$3)").
					WithArgs("UNIAPI_BASE_URL", "UNIAPI_TOKEN", "UNIAPI_MODEL").
					WillReturnRows(rows)
			},
			expected: map[string]string{
				"UNIAPI_BASE_URL": "https://api.example.com",
				"UNIAPI_TOKEN":    "",
			},
		},
		"no-keys": {
			keys:            nil,
			setExpectations: func(mock sqlmock.Sqlmock) {},
			expected:        map[string]string{},
		},
		"database-error": {
			keys: []string{"UNIAPI_MODEL"},
			setExpectations: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("SELECT key, value FROM system_settings WHERE key IN ($1)").
					WithArgs("UNIAPI_MODEL").
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
		"scan-error": {
			keys: []string{"UNIAPI_MODEL"},
			setExpectations: func(mock sqlmock.Sqlmock) {
				rows := sqlmock.NewRows([]string{"key"}).
					AddRow("UNIAPI_MODEL")
				mock.ExpectQuery("SELECT key, value FROM system_settings WHERE key IN ($1)").
					WithArgs("UNIAPI_MODEL").
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

			repo := NewSettingsRepository(db)
			got, err := repo.GetSettings(context.Background(), tt.keys)
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

func TestSettingsRepository_UpsertSetting(t *testing.T) {
	tests := map[string]struct {
		setExpectations func(mock sqlmock.Sqlmock)
		expectedErr     error
	}{
		"success": {
			setExpectations: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec("INSERT INTO system_settings (key,value) VALUES ($1,$2) ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value").
					WithArgs("UNIAPI_MODEL", "gpt-4o").
					WillReturnResult(sqlmock.NewResult(0, 1))
			},
		},
		"database-error": {
			setExpectations: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec("INSERT INTO system_settings (key,value) VALUES ($1,$2) ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value").
					WithArgs("UNIAPI_MODEL", "gpt-4o").
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

			repo := NewSettingsRepository(db)
			gotErr := repo.UpsertSetting(context.Background(), "UNIAPI_MODEL", "gpt-4o")
			assert.Equal(t, tt.expectedErr, gotErr)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestSettingsRepository_DeleteSetting(t *testing.T) {
	tests := map[string]struct {
		setExpectations func(mock sqlmock.Sqlmock)
		expectedErr     error
	}{
		"success": {
			setExpectations: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec("DELETE FROM system_settings WHERE key = $1").
					WithArgs("UNIAPI_MODEL").
					WillReturnResult(sqlmock.NewResult(0, 1))
			},
		},
		"absent-key": {
			setExpectations: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec("DELETE FROM system_settings WHERE key = $1").
					WithArgs("UNIAPI_MODEL").
					WillReturnResult(sqlmock.NewResult(0, 0))
			},
		},
		"database-error": {
			setExpectations: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec("DELETE FROM system_settings WHERE key = $1").
					WithArgs("UNIAPI_MODEL").
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

			repo := NewSettingsRepository(db)
			gotErr := repo.DeleteSetting(context.Background(), "UNIAPI_MODEL")
			assert.Equal(t, tt.expectedErr, gotErr)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestInitSettingsRepository_Initialize(t *testing.T) {
	i := InitSettingsRepository{
		DB: &sql.DB{},
	}

	_, err := i.Initialize(context.Background())
	assert.NoError(t, err)

	_, err = depend.Resolve[domain.SettingsRepository]()
	assert.NoError(t, err)
}
