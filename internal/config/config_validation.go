// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// validate runs on the merged config. The sign key and the DSN have no
// defaults, so they must come from env, flags or the JSON file.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.TokenSignKey == "" {
		return fmt.Errorf("%w: token sign key is required", ErrInvalidAppConfigs)
	}
	if cfg.App.TokenIssuer == "" {
		return fmt.Errorf("%w: token issuer is required", ErrInvalidAppConfigs)
	}
	if cfg.App.TokenDuration <= 0 {
		return fmt.Errorf("%w: token duration must be positive", ErrInvalidAppConfigs)
	}
	if cfg.App.PasswordHashCost < bcrypt.MinCost || cfg.App.PasswordHashCost > bcrypt.MaxCost {
		return fmt.Errorf("%w: password hash cost must be in [%d, %d]", ErrInvalidAppConfigs, bcrypt.MinCost, bcrypt.MaxCost)
	}

	if cfg.Storage.DB.DSN == "" {
		return fmt.Errorf("%w: database DSN is required", ErrInvalidStorageConfigs)
	}

	if cfg.Server.HTTPAddress == "" {
		return fmt.Errorf("%w: http address is required", ErrInvalidServerConfigs)
	}
	if cfg.Server.AuthRateLimit <= 0 || cfg.Server.AuthRateBurst <= 0 {
		return fmt.Errorf("%w: auth rate limit and burst must be positive", ErrInvalidServerConfigs)
	}

	if cfg.Workers.ReminderPollInterval <= 0 {
		return fmt.Errorf("%w: reminder poll interval must be positive", ErrInvalidWorkerConfigs)
	}
	if cfg.Workers.ReminderBatchSize <= 0 {
		return fmt.Errorf("%w: reminder batch size must be positive", ErrInvalidWorkerConfigs)
	}

	return nil
}
