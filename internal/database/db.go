// Package database provides database connection management.
package database

import (
	"context"
	"fmt"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"

	"github.com/kvgkvg/MEnglish/internal/config"
)

const (
	DriverMySQL  = "mysql"
	DriverSQLite = "sqlite3"
)

// Open opens a connection for the configured driver.
func Open(cfg config.DatabaseConfig) (*sqlx.DB, error) {
	var (
		db  *sqlx.DB
		err error
	)
	switch cfg.Driver {
	case DriverSQLite:
		// foreign keys are off by default in SQLite
		db, err = sqlx.Open(DriverSQLite, fmt.Sprintf("file:%s?_foreign_keys=on", cfg.Path))
		if err != nil {
			return nil, fmt.Errorf("sqlx.Open(%s) > %w", DriverSQLite, err)
		}
		// SQLite doesn't support multiple writers
		db.SetMaxOpenConns(1)
		return db, nil
	case DriverMySQL, "":
		db, err = sqlx.Open(DriverMySQL, mysqlDSN(cfg))
		if err != nil {
			return nil, fmt.Errorf("sqlx.Open(%s) > %w", DriverMySQL, err)
		}
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}

	if cfg.MaxOpenConns > 0 {
		db.SetMaxOpenConns(cfg.MaxOpenConns)
	}
	if cfg.MaxIdleConns > 0 {
		db.SetMaxIdleConns(cfg.MaxIdleConns)
	}
	if cfg.ConnMaxLifetime > 0 {
		db.SetConnMaxLifetime(time.Duration(cfg.ConnMaxLifetime) * time.Second)
	}

	return db, nil
}

func mysqlDSN(cfg config.DatabaseConfig) string {
	mysqlCfg := mysql.NewConfig()
	mysqlCfg.User = cfg.Username
	mysqlCfg.Passwd = cfg.Password
	mysqlCfg.Net = "tcp"
	mysqlCfg.Addr = fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)
	mysqlCfg.DBName = cfg.Database
	mysqlCfg.ParseTime = true
	mysqlCfg.MultiStatements = true
	if cfg.TLS {
		mysqlCfg.TLSConfig = "true"
	}
	if len(cfg.Params) > 0 {
		mysqlCfg.Params = cfg.Params
	}
	return mysqlCfg.FormatDSN()
}

// RunInTx runs fn within a database transaction.
// If fn returns an error, the transaction is rolled back; otherwise, it is committed.
func RunInTx(ctx context.Context, db *sqlx.DB, fn func(ctx context.Context, tx *sqlx.Tx) error) error {
	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}

	if err := fn(ctx, tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return fmt.Errorf("rollback transaction: %w (original error: %v)", rbErr, err)
		}
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
