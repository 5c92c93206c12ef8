/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package samplekit

import (
	"fmt"
	"io"
	"log/slog"
	
	"github.com/suparena/samplekit/config"
	"github.com/suparena/samplekit/logging"
	"github.com/suparena/samplekit/userservice"
)

// Kit bundles a configured logger with a user registry seeded from config.
type Kit struct {
	Config config.Config
	Logger *slog.Logger
	Users  *userservice.UserService
}

// New validates cfg and builds a Kit whose logger writes to w.
func New(cfg config.Config, w io.Writer) (*Kit, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	
	logger := logging.New(cfg.LogLevel, cfg.LogFormat, w)
	users := userservice.New(
		userservice.WithLogger(logger.With("component", "userservice")),
		userservice.WithUsers(cfg.Users),
	)
	
	logger.Debug("kit ready", "users", users.GetUserCount(), "version", GetVersionInfo())
	return &Kit{
		Config: cfg,
		Logger: logger,
		Users:  users,
	}, nil
}

// Open loads configuration from path and envFiles, then calls New.
func Open(path string, w io.Writer, envFiles ...string) (*Kit, error) {
	cfg, err := config.Load(path, envFiles...)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	return New(cfg, w)
}
