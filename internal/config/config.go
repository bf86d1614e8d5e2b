// Copyright 2025 The OpenWeather MCP Authors. All rights reserved.
// Use of this source code is governed by a Apache-2.0
// license that can be found in the LICENSE file.

// Package config reads the server configuration from the environment,
// with an optional .env file for local development.
package config

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// Config is the environment-driven server configuration.
type Config struct {
	// Transport selects how tool calls arrive: "stdio" for a single
	// interactive session, "http" for the multiplexed streamable
	// handler.
	Transport string `validate:"oneof=stdio http"`

	// HTTPAddr and HTTPPath configure the HTTP listener. Ignored on
	// stdio.
	HTTPAddr string `validate:"required"`
	HTTPPath string `validate:"required,startswith=/"`

	// APIKey is the upstream OpenWeather credential. Required on stdio,
	// where it establishes the process-wide session; on HTTP each
	// request carries its own key and this field stays empty.
	APIKey string `validate:"omitempty,min=32"`

	// LogLevel is a zap level string: debug, info, warn, error.
	LogLevel string `validate:"oneof=debug info warn error"`
}

// Load reads configuration from the environment with defaults. A .env
// file in the working directory is honored when present.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Transport: getenvDefault("MCP_TRANSPORT", "stdio"),
		HTTPAddr:  ":" + getenvDefault("MCP_HTTP_PORT", "8080"),
		HTTPPath:  getenvDefault("MCP_HTTP_PATH", "/mcp"),
		APIKey:    os.Getenv("OPENWEATHER_API_KEY"),
		LogLevel:  getenvDefault("LOG_LEVEL", "info"),
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	if cfg.Transport == "stdio" && cfg.APIKey == "" {
		return nil, fmt.Errorf("OPENWEATHER_API_KEY is required for the stdio transport")
	}
	return cfg, nil
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
