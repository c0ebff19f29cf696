package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/sethvargo/go-retry"

	"github.com/MKhiriev/go-patient-registry/internal/config"
	"github.com/MKhiriev/go-patient-registry/internal/logger"
	"github.com/MKhiriev/go-patient-registry/migrations"
)

// Dialect identifies the SQL backend behind a [DB].
type Dialect string

const (
	DialectPostgres Dialect = migrations.DialectPostgres
	DialectSQLite   Dialect = migrations.DialectSQLite
)

// retry policy for read queries that fail with a Retryable error
const (
	maxReadRetries = 2
	readRetryDelay = 50 * time.Millisecond
)

type DB struct {
	*sql.DB
	dialect            Dialect
	queryTimeout       time.Duration
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// NewConnect opens the backend that matches cfg.DSN: postgres:// and
// postgresql:// use pgx, file:, sqlite: and *.db paths use go-sqlite3.
func NewConnect(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	dialect, err := DialectFromDSN(cfg.DSN)
	if err != nil {
		log.Err(err).Str("func", "NewConnect").Msg("cannot choose database driver")
		return nil, err
	}

	switch dialect {
	case DialectPostgres:
		return NewConnectPostgres(ctx, cfg, log)
	default:
		return NewConnectSQLite(ctx, cfg, log)
	}
}

// DialectFromDSN maps a DSN to the dialect that can serve it.
func DialectFromDSN(dsn string) (Dialect, error) {
	d := strings.ToLower(strings.TrimSpace(dsn))
	switch {
	case strings.HasPrefix(d, "postgres://"), strings.HasPrefix(d, "postgresql://"):
		return DialectPostgres, nil
	case strings.HasPrefix(d, "file:"), strings.HasPrefix(d, "sqlite:"),
		strings.HasSuffix(d, ".db"), d == ":memory:":
		return DialectSQLite, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedDSN, redactDSN(dsn))
	}
}

// Migrate applies the embedded schema for the connection's dialect.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, string(db.dialect))
}

// Dialect reports the backend behind db.
func (db *DB) Dialect() Dialect {
	return db.dialect
}

// builder returns a squirrel statement builder with the dialect's
// placeholder format.
func (db *DB) builder() sq.StatementBuilderType {
	return statementBuilder(db.dialect)
}

func statementBuilder(dialect Dialect) sq.StatementBuilderType {
	if dialect == DialectPostgres {
		return sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	}
	return sq.StatementBuilder.PlaceholderFormat(sq.Question)
}

// withTimeout bounds ctx by the configured query timeout.
func (db *DB) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if db.queryTimeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, db.queryTimeout)
}

// retryRead runs fn until it succeeds, fails with a non-retryable error or
// runs out of retries. Delays grow 50ms, 100ms.
func (db *DB) retryRead(ctx context.Context, fn func(ctx context.Context) error) error {
	backoff := retry.WithMaxRetries(maxReadRetries, retry.NewFibonacci(readRetryDelay))

	attempt := 0
	return retry.Do(ctx, backoff, func(ctx context.Context) error {
		attempt++
		err := fn(ctx)
		if err == nil || db.errorClassificator == nil || db.errorClassificator.Classify(err) != Retryable {
			return err
		}

		logger.FromContext(ctx).Warn().Err(err).
			Str("func", "DB.retryRead").
			Int("attempt", attempt).
			Msg("retryable database error")

		return retry.RetryableError(err)
	})
}

// isUniqueViolation reports whether err violates a unique constraint.
func (db *DB) isUniqueViolation(err error) bool {
	return db.errorClassificator != nil && db.errorClassificator.IsUniqueViolation(err)
}

func redactDSN(dsn string) string {
	if i := strings.Index(dsn, "@"); i >= 0 {
		if j := strings.Index(dsn, "://"); j >= 0 && j < i {
			return dsn[:j+3] + "***" + dsn[i:]
		}
	}
	return dsn
}
