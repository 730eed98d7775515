// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"time"

	"golang.org/x/crypto/bcrypt"
)

const (
	defaultHTTPAddress      = "0.0.0.0:5000"
	defaultTokenIssuer      = "go-job-board"
	defaultTokenDuration    = 24 * time.Hour
	defaultOTPDuration      = 24 * time.Hour
	defaultPasswordHashCost = 8
	defaultRequestTimeout   = 30 * time.Second
	defaultNATSTimeout      = 5 * time.Second
	defaultVersion          = "dev"
)

// setDefaults fills every optional field that no source has set.
func (cfg *StructuredConfig) setDefaults() {
	if cfg.Server.HTTPAddress == "" {
		cfg.Server.HTTPAddress = defaultHTTPAddress
	}
	if cfg.Server.RequestTimeout == 0 {
		cfg.Server.RequestTimeout = defaultRequestTimeout
	}
	if len(cfg.Server.CORSOrigins) == 0 {
		cfg.Server.CORSOrigins = []string{"*"}
	}
	if cfg.App.TokenIssuer == "" {
		cfg.App.TokenIssuer = defaultTokenIssuer
	}
	if cfg.App.TokenDuration == 0 {
		cfg.App.TokenDuration = defaultTokenDuration
	}
	if cfg.App.OTPDuration == 0 {
		cfg.App.OTPDuration = defaultOTPDuration
	}
	if cfg.App.PasswordHashCost == 0 {
		cfg.App.PasswordHashCost = defaultPasswordHashCost
	}
	if cfg.App.HashKey == "" {
		cfg.App.HashKey = cfg.App.TokenSignKey
	}
	if cfg.App.Version == "" {
		cfg.App.Version = defaultVersion
	}
	if cfg.Events.ConnTimeout == 0 {
		cfg.Events.ConnTimeout = defaultNATSTimeout
	}
}

// validate checks that the final merged [StructuredConfig] satisfies all
// invariants required at startup. All violations are reported together.
func (cfg *StructuredConfig) validate() error {
	var err error

	if cfg.Storage.DB.DSN == "" {
		err = errors.Join(err, ErrMissingDSN)
	}
	if cfg.App.TokenSignKey == "" {
		err = errors.Join(err, ErrMissingTokenSignKey)
	}
	if cfg.App.CryptoSecret == "" {
		err = errors.Join(err, ErrMissingCryptoSecret)
	}
	if cfg.App.PasswordHashCost < bcrypt.MinCost || cfg.App.PasswordHashCost > bcrypt.MaxCost {
		err = errors.Join(err, ErrInvalidHashCost)
	}
	if cfg.App.TokenDuration < 0 || cfg.App.OTPDuration < 0 || cfg.Server.RequestTimeout < 0 {
		err = errors.Join(err, ErrNegativeDuration)
	}

	return err
}
