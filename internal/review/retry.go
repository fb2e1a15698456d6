package review

import (
	"context"
	"database/sql/driver"
	"errors"
	"log/slog"
	"time"

	"github.com/avast/retry-go"
	"github.com/go-sql-driver/mysql"
	"github.com/mattn/go-sqlite3"
)

const (
	mysqlLockWaitTimeout = 1205
	mysqlDeadlock        = 1213
)

// isRetryableError reports whether a write failed for a reason that may go away
func isRetryableError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, driver.ErrBadConn) {
		return true
	}

	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) {
		return mysqlErr.Number == mysqlDeadlock || mysqlErr.Number == mysqlLockWaitTimeout
	}

	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.Code == sqlite3.ErrBusy || sqliteErr.Code == sqlite3.ErrLocked
	}
	return false
}

func (s *Service) withRetry(ctx context.Context, fn func() error) error {
	return retry.Do(
		func() error {
			err := fn()
			if err != nil && !isRetryableError(err) {
				return retry.Unrecoverable(err)
			}
			return err
		},
		retry.Context(ctx),
		retry.Attempts(s.maxRetryAttempts+1),
		retry.Delay(s.retryDelay),
		retry.DelayType(func(n uint, err error, config *retry.Config) time.Duration {
			return retry.BackOffDelay(n, err, config)
		}),
		retry.LastErrorOnly(true),
		retry.OnRetry(func(n uint, err error) {
			slog.Warn("retrying progress write", "attempt", n+1, "error", err)
		}),
	)
}
