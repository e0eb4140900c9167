// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is everything the server needs at startup. It is merged
// from defaults, env, flags and an optional JSON file; see GetStructuredConfig.
type StructuredConfig struct {
	App     App     `envPrefix:"APP_"`
	Storage Storage `envPrefix:"STORAGE_"`
	Server  Server  `envPrefix:"SERVER_"`
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath comes from CONFIG or -c/-config.
	JSONFilePath string `env:"CONFIG"`
}

type Storage struct {
	DB DB `envPrefix:"DB_"`
}

type App struct {
	// TokenSignKey is the HS256 secret. There is no default.
	TokenSignKey  string        `env:"TOKEN_SIGN_KEY"`
	TokenIssuer   string        `env:"TOKEN_ISSUER"`
	TokenDuration time.Duration `env:"TOKEN_DURATION"`

	// PasswordHashCost is the bcrypt cost, bcrypt.MinCost..bcrypt.MaxCost.
	PasswordHashCost int `env:"PASSWORD_HASH_COST"`

	// Version overrides the linker-injected build version in GET /version.
	Version  string `env:"VERSION"`
	LogLevel string `env:"LOG_LEVEL"`
}

type Server struct {
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds reading a request and writing its response.
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// AuthRateLimit and AuthRateBurst size the per-IP token bucket in front
	// of /register and /login.
	AuthRateLimit float64 `env:"AUTH_RATE_LIMIT"`
	AuthRateBurst int     `env:"AUTH_RATE_BURST"`
}

// DB selects the backend by DSN scheme: postgres:// or postgresql:// for
// PostgreSQL, sqlite://<path> or file:<path> for SQLite.
type DB struct {
	DSN string `env:"DATABASE_URI"`
}

type Workers struct {
	ReminderPollInterval time.Duration `env:"REMINDER_POLL_INTERVAL"`

	// ReminderBatchSize caps how many due reminders one poll fires.
	ReminderBatchSize int `env:"REMINDER_BATCH_SIZE"`
}

// Default values applied before any other configuration source.
const (
	DefaultTokenIssuer          = "go-event-planner"
	DefaultTokenDuration        = 24 * time.Hour
	DefaultPasswordHashCost     = 10
	DefaultLogLevel             = "debug"
	DefaultHTTPAddress          = "0.0.0.0:3000"
	DefaultRequestTimeout       = 30 * time.Second
	DefaultAuthRateLimit        = 5
	DefaultAuthRateBurst        = 10
	DefaultReminderPollInterval = time.Second
	DefaultReminderBatchSize    = 100
)

// Secrets and the DSN have no default.
func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenIssuer:      DefaultTokenIssuer,
			TokenDuration:    DefaultTokenDuration,
			PasswordHashCost: DefaultPasswordHashCost,
			LogLevel:         DefaultLogLevel,
		},
		Server: Server{
			HTTPAddress:    DefaultHTTPAddress,
			RequestTimeout: DefaultRequestTimeout,
			AuthRateLimit:  DefaultAuthRateLimit,
			AuthRateBurst:  DefaultAuthRateBurst,
		},
		Workers: Workers{
			ReminderPollInterval: DefaultReminderPollInterval,
			ReminderBatchSize:    DefaultReminderBatchSize,
		},
	}
}

// GetStructuredConfig merges, lowest priority first: defaults, environment,
// flags (args excludes the program name), then the JSON file named by
// CONFIG or -c. A later source wins only for the fields it sets.
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder(args).
		withDefaults().
		withEnv().
		withFlags().
		withJSON().
		build()
}
