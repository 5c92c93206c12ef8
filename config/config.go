/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package config

import (
	"fmt"
	"io"
	"os"
	
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
	
	"github.com/suparena/samplekit/errors"
)

// Environment variable names consulted by Load
const (
	EnvLogLevel  = "SAMPLEKIT_LOG_LEVEL"
	EnvLogFormat = "SAMPLEKIT_LOG_FORMAT"
)

// Config holds the settings used to build a Kit
type Config struct {
	// LogLevel is one of debug, info, warn or error
	LogLevel string `yaml:"log_level"`
	// LogFormat is text or json
	LogFormat string `yaml:"log_format"`
	// Users seeds the user registry, keyed by id
	Users map[string]string `yaml:"users"`
}

// Default returns the configuration used when nothing else is supplied
func Default() Config {
	return Config{
		LogLevel:  "info",
		LogFormat: "text",
		Users:     map[string]string{},
	}
}

// Load builds a Config from defaults, the YAML file at path (skipped when path
// is empty), each env file in order and finally the process environment.
// Missing env files are ignored. The process environment is never modified.
func Load(path string, envFiles ...string) (Config, error) {
	cfg := Default()
	
	if path != "" {
		if err := cfg.decodeFile(path); err != nil {
			return Config{}, err
		}
	}
	
	for _, file := range envFiles {
		vars, err := godotenv.Read(file)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return Config{}, fmt.Errorf("failed to read env file %s: %w", file, err)
		}
		cfg.applyEnv(func(key string) (string, bool) {
			v, ok := vars[key]
			return v, ok
		})
	}
	cfg.applyEnv(os.LookupEnv)
	
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) decodeFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open config file: %w", err)
	}
	defer f.Close()
	
	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(c); err != nil && err != io.EOF {
		return fmt.Errorf("failed to decode config file %s: %w", path, err)
	}
	if c.Users == nil {
		c.Users = map[string]string{}
	}
	return nil
}

func (c *Config) applyEnv(lookup func(string) (string, bool)) {
	if v, ok := lookup(EnvLogLevel); ok {
		c.LogLevel = v
	}
	if v, ok := lookup(EnvLogFormat); ok {
		c.LogFormat = v
	}
}

// Validate checks the logging settings
func (c Config) Validate() error {
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return errors.NewValidationError("log_level", fmt.Sprintf("unknown level %q", c.LogLevel))
	}
	switch c.LogFormat {
	case "text", "json":
	default:
		return errors.NewValidationError("log_format", fmt.Sprintf("unknown format %q", c.LogFormat))
	}
	return nil
}
