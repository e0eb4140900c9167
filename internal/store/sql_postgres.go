package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-event-planner/internal/config"
	"github.com/MKhiriev/go-event-planner/internal/logger"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/stdlib"
)

const (
	postgresMaxOpenConns = 10
	postgresMaxIdleConns = 4
)

// NewConnectPostgres opens a database/sql pool backed by pgx and pings it.
// A malformed DSN is rejected before any network traffic.
func NewConnectPostgres(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	connConfig, err := pgx.ParseConfig(cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("error parsing postgres DSN: %w", err)
	}

	conn := stdlib.OpenDB(*connConfig)
	conn.SetMaxOpenConns(postgresMaxOpenConns)
	conn.SetMaxIdleConns(postgresMaxIdleConns)

	if err = conn.PingContext(ctx); err != nil {
		_ = conn.Close()
		log.Err(err).
			Str("host", connConfig.Host).
			Str("database", connConfig.Database).
			Msg("error connecting to postgres")
		return nil, fmt.Errorf("error connecting database: %w", err)
	}

	log.Info().
		Str("host", connConfig.Host).
		Str("database", connConfig.Database).
		Msg("connected to postgres")

	return &DB{
		DB:                 conn,
		dialect:            DialectPostgres,
		logger:             log,
		errorClassificator: NewPostgresErrorClassifier(),
	}, nil
}
