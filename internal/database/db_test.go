package database

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kvgkvg/MEnglish/internal/config"
)

func TestOpen(t *testing.T) {
	tests := []struct {
		name       string
		cfg        config.DatabaseConfig
		wantDriver string
		wantErr    bool
	}{
		{
			name: "creates connection with valid config",
			cfg: config.DatabaseConfig{
				Driver:   "mysql",
				Host:     "localhost",
				Port:     3306,
				Database: "testdb",
				Username: "testuser",
				Password: "testpass",
			},
			wantDriver: "mysql",
		},
		{
			name: "empty driver defaults to mysql",
			cfg: config.DatabaseConfig{
				Host:     "db.example.com",
				Port:     3307,
				Database: "menglish",
				Username: "admin",
				Password: "secret",
			},
			wantDriver: "mysql",
		},
		{
			name: "creates connection with pool settings",
			cfg: config.DatabaseConfig{
				Driver:          "mysql",
				Host:            "localhost",
				Port:            3306,
				Database:        "testdb",
				Username:        "testuser",
				Password:        "testpass",
				MaxOpenConns:    25,
				MaxIdleConns:    5,
				ConnMaxLifetime: 300,
			},
			wantDriver: "mysql",
		},
		{
			name: "creates connection with TLS and custom params",
			cfg: config.DatabaseConfig{
				Driver:   "mysql",
				Host:     "localhost",
				Port:     3306,
				Database: "testdb",
				Username: "testuser",
				TLS:      true,
				Params:   map[string]string{"charset": "utf8mb4", "loc": "UTC"},
			},
			wantDriver: "mysql",
		},
		{
			name: "creates sqlite connection",
			cfg: config.DatabaseConfig{
				Driver: "sqlite3",
				Path:   filepath.Join(t.TempDir(), "menglish.db"),
			},
			wantDriver: "sqlite3",
		},
		{
			name:    "unsupported driver",
			cfg:     config.DatabaseConfig{Driver: "oracle"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Open(tt.cfg)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, got)
			defer got.Close()

			assert.Equal(t, tt.wantDriver, got.DriverName())
		})
	}
}

func TestMySQLDSN(t *testing.T) {
	got := mysqlDSN(config.DatabaseConfig{
		Host:     "localhost",
		Port:     3306,
		Database: "menglish",
		Username: "user",
		Password: "pass",
	})
	assert.Contains(t, got, "user:pass@tcp(localhost:3306)/menglish")
	assert.Contains(t, got, "parseTime=true")
	assert.Contains(t, got, "multiStatements=true")
}

func TestRunInTx(t *testing.T) {
	tests := []struct {
		name      string
		fn        func(ctx context.Context, tx *sqlx.Tx) error
		setupMock func(mock sqlmock.Sqlmock)
		wantErr   bool
		errMsg    string
	}{
		{
			name: "commits on success",
			fn: func(ctx context.Context, tx *sqlx.Tx) error {
				return nil
			},
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectCommit()
			},
		},
		{
			name: "rolls back on error",
			fn: func(ctx context.Context, tx *sqlx.Tx) error {
				return fmt.Errorf("something failed")
			},
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectRollback()
			},
			wantErr: true,
			errMsg:  "something failed",
		},
		{
			name: "begin error",
			fn: func(ctx context.Context, tx *sqlx.Tx) error {
				return nil
			},
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin().WillReturnError(fmt.Errorf("begin failed"))
			},
			wantErr: true,
			errMsg:  "begin transaction",
		},
		{
			name: "commit error",
			fn: func(ctx context.Context, tx *sqlx.Tx) error {
				return nil
			},
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectCommit().WillReturnError(fmt.Errorf("commit failed"))
			},
			wantErr: true,
			errMsg:  "commit transaction",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			sqlxDB := sqlx.NewDb(db, "mysql")
			tt.setupMock(mock)

			err = RunInTx(context.Background(), sqlxDB, tt.fn)
			if tt.wantErr {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
			} else {
				require.NoError(t, err)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
