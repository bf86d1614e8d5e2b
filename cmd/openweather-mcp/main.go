// Copyright 2025 The OpenWeather MCP Authors. All rights reserved.
// Use of this source code is governed by a Apache-2.0
// license that can be found in the LICENSE file.

// openweather-mcp exposes the OpenWeather API as MCP tools over stdio or
// streamable HTTP.
//
// Run over stdio (single session, credential from the environment):
//
//	OPENWEATHER_API_KEY=... openweather-mcp
//
// Run over HTTP (per-request Bearer credentials):
//
//	MCP_TRANSPORT=http MCP_HTTP_PORT=8080 openweather-mcp
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/weathertools/openweather-mcp/internal/config"
	"github.com/weathertools/openweather-mcp/internal/docs"
	"github.com/weathertools/openweather-mcp/internal/session"
	"github.com/weathertools/openweather-mcp/internal/tools"
)

const (
	serverName    = "openweather-mcp"
	serverVersion = "1.0.0"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		// No logger yet; this is the one place plain stderr is used.
		os.Stderr.WriteString("openweather-mcp: " + err.Error() + "\n")
		os.Exit(1)
	}

	log, err := newLogger(cfg)
	if err != nil {
		os.Stderr.WriteString("openweather-mcp: " + err.Error() + "\n")
		os.Exit(1)
	}
	defer log.Sync()

	registry := session.NewRegistry()

	server := mcp.NewServer(&mcp.Implementation{
		Name:    serverName,
		Version: serverVersion,
	}, nil)
	tools.Register(server, tools.NewHandlers(registry, log))
	docs.Register(server)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	switch cfg.Transport {
	case "http":
		handler := mcp.NewStreamableHTTPHandler(
			func(*http.Request) *mcp.Server { return server },
			nil,
		)
		mux := http.NewServeMux()
		mux.Handle(cfg.HTTPPath, session.Middleware(handler, log))

		log.Info("listening",
			zap.String("transport", "http"),
			zap.String("addr", cfg.HTTPAddr),
			zap.String("path", cfg.HTTPPath))
		if err := http.ListenAndServe(cfg.HTTPAddr, mux); err != nil {
			log.Fatal("http server failed", zap.Error(err))
		}

	default: // stdio
		// The process-wide session: established once from the
		// environment, held for the process lifetime, never refreshed.
		s, err := session.NewSession(cfg.APIKey)
		if err != nil {
			log.Fatal("invalid OPENWEATHER_API_KEY", zap.Error(err))
		}
		registry.SetProcessSession(s)

		log.Info("serving", zap.String("transport", "stdio"))
		if err := server.Run(ctx, &mcp.StdioTransport{}); err != nil {
			log.Fatal("stdio server failed", zap.Error(err))
		}
	}
}

// newLogger builds the process logger. On stdio, logs must stay off
// stdout (the protocol channel), so everything goes to stderr.
func newLogger(cfg *config.Config) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	zc := zap.NewProductionConfig()
	zc.Level = zap.NewAtomicLevelAt(level)
	zc.OutputPaths = []string{"stderr"}
	zc.ErrorOutputPaths = []string{"stderr"}
	return zc.Build()
}
