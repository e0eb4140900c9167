package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig is the on-disk layout of the -c/-config file.
type StructuredJSONConfig struct {
	App struct {
		TokenSignKey     string   `json:"token_sign_key"`
		TokenIssuer      string   `json:"token_issuer"`
		TokenDuration    Duration `json:"token_duration"`
		PasswordHashCost int      `json:"password_hash_cost"`
		Version          string   `json:"version"`
		LogLevel         string   `json:"log_level"`
	} `json:"app,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
		AuthRateLimit  float64  `json:"auth_rate_limit"`
		AuthRateBurst  int      `json:"auth_rate_burst"`
	} `json:"server,omitempty"`

	Workers struct {
		ReminderPollInterval Duration `json:"reminder_poll_interval"`
		ReminderBatchSize    int      `json:"reminder_batch_size"`
	} `json:"workers,omitempty"`
}

func parseJSON(path string) (*StructuredConfig, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}

	var file StructuredJSONConfig
	if err = json.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	return file.toStructured(), nil
}

// toStructured never sets JSONFilePath: a config file cannot chain another.
func (f *StructuredJSONConfig) toStructured() *StructuredConfig {
	cfg := &StructuredConfig{}

	cfg.App = App{
		TokenSignKey:     f.App.TokenSignKey,
		TokenIssuer:      f.App.TokenIssuer,
		TokenDuration:    time.Duration(f.App.TokenDuration),
		PasswordHashCost: f.App.PasswordHashCost,
		Version:          f.App.Version,
		LogLevel:         f.App.LogLevel,
	}
	cfg.Storage.DB.DSN = f.Storage.DB.DSN
	cfg.Server = Server{
		HTTPAddress:    f.Server.HTTPAddress,
		RequestTimeout: time.Duration(f.Server.RequestTimeout),
		AuthRateLimit:  f.Server.AuthRateLimit,
		AuthRateBurst:  f.Server.AuthRateBurst,
	}
	cfg.Workers = Workers{
		ReminderPollInterval: time.Duration(f.Workers.ReminderPollInterval),
		ReminderBatchSize:    f.Workers.ReminderBatchSize,
	}

	return cfg
}

// Duration accepts either a time.ParseDuration string ("30s") or an integer
// count of nanoseconds.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var text string
	if err := json.Unmarshal(b, &text); err == nil {
		parsed, err := time.ParseDuration(text)
		if err != nil {
			return fmt.Errorf("error parsing duration %q: %w", text, err)
		}
		*d = Duration(parsed)
		return nil
	}

	var nanos int64
	if err := json.Unmarshal(b, &nanos); err != nil {
		return fmt.Errorf("duration must be a string or integer nanoseconds: %w", err)
	}
	*d = Duration(nanos)
	return nil
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
