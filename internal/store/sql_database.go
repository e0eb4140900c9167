package store

import (
	"context"
	"database/sql"
	"strings"

	"github.com/MKhiriev/go-event-planner/internal/config"
	"github.com/MKhiriev/go-event-planner/internal/logger"
	"github.com/MKhiriev/go-event-planner/migrations"
	sq "github.com/Masterminds/squirrel"
)

// Dialect identifies the SQL backend behind a [DB].
type Dialect string

const (
	DialectPostgres Dialect = "postgres"
	DialectSQLite   Dialect = "sqlite"
)

// DB wraps *sql.DB with the dialect-specific pieces the repositories need:
// placeholder format and error classification.
type DB struct {
	*sql.DB
	dialect            Dialect
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// NewConnect opens the database selected by the DSN scheme.
// "sqlite://<path>" and "file:<path>" select SQLite, everything else is
// handed to the pgx driver.
func NewConnect(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	switch DialectFromDSN(cfg.DSN) {
	case DialectSQLite:
		return NewConnectSQLite(ctx, cfg, log)
	default:
		return NewConnectPostgres(ctx, cfg, log)
	}
}

// DialectFromDSN picks the backend for a connection string.
func DialectFromDSN(dsn string) Dialect {
	if strings.HasPrefix(dsn, sqliteScheme) || strings.HasPrefix(dsn, sqliteFileScheme) {
		return DialectSQLite
	}
	return DialectPostgres
}

// Dialect returns the backend of the connection.
func (db *DB) Dialect() Dialect {
	return db.dialect
}

// Migrate applies the embedded schema for the connection's dialect.
func (db *DB) Migrate() error {
	gooseDialect := migrations.DialectPostgres
	if db.dialect == DialectSQLite {
		gooseDialect = migrations.DialectSQLite
	}

	if err := migrations.Migrate(db.DB, gooseDialect); err != nil {
		db.logger.Err(err).Str("func", "*DB.Migrate").Msg("error applying migrations")
		return err
	}

	db.logger.Info().Str("dialect", string(db.dialect)).Msg("migrations applied")
	return nil
}

// builder returns a squirrel statement builder with the dialect's placeholders.
func (db *DB) builder() sq.StatementBuilderType {
	return sq.StatementBuilder.PlaceholderFormat(db.placeholder())
}

// rebind converts a query written with "?" placeholders to the dialect's format.
func (db *DB) rebind(query string) string {
	q, err := db.placeholder().ReplacePlaceholders(query)
	if err != nil {
		return query
	}
	return q
}

func (db *DB) placeholder() sq.PlaceholderFormat {
	if db.dialect == DialectSQLite {
		return sq.Question
	}
	return sq.Dollar
}

func (db *DB) isUniqueViolation(err error) bool {
	return db.errorClassificator != nil && db.errorClassificator.IsUniqueViolation(err)
}

func (db *DB) isRetryable(err error) bool {
	return db.errorClassificator != nil && db.errorClassificator.Classify(err) == Retryable
}
