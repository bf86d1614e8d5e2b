// Copyright 2025 The OpenWeather MCP Authors. All rights reserved.
// Use of this source code is governed by a Apache-2.0
// license that can be found in the LICENSE file.

// Package tools exposes the OpenWeather capabilities as MCP tools. Each
// handler resolves the caller's client from the session registry, builds
// an immutable query, issues one upstream fetch, and normalizes the
// payload into its canonical document.
package tools

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"go.uber.org/zap"

	"github.com/weathertools/openweather-mcp/internal/owm"
	"github.com/weathertools/openweather-mcp/internal/session"
)

// Handlers carries the shared collaborators of every tool handler.
type Handlers struct {
	registry *session.Registry
	log      *zap.Logger
}

// NewHandlers builds the handler set. A nil logger disables logging.
func NewHandlers(registry *session.Registry, log *zap.Logger) *Handlers {
	if log == nil {
		log = zap.NewNop()
	}
	return &Handlers{registry: registry, log: log}
}

// client resolves the upstream client for the current call: the
// request-scoped session when one is on the context (HTTP), otherwise
// the process-wide stdio session.
func (h *Handlers) client(ctx context.Context) (*owm.Client, error) {
	return h.registry.Resolve(session.FromContext(ctx))
}

// Register adds all eleven tools to the server.
func Register(server *mcp.Server, h *Handlers) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "get-current-weather",
		Description: "Get current weather conditions for a location. Accepts a city name, zip code, or coordinates as 'lat,lon'.",
	}, h.getCurrentWeather)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "get-weather-forecast",
		Description: "Get a 5-day weather forecast for a location, one representative entry per day.",
	}, h.getWeatherForecast)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "get-hourly-forecast",
		Description: "Get an hour-by-hour forecast for a location, up to 48 hours ahead.",
	}, h.getHourlyForecast)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "get-daily-forecast",
		Description: "Get a day-by-day forecast for a location, up to 8 days ahead, with morning/day/evening/night temperatures.",
	}, h.getDailyForecast)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "get-minutely-forecast",
		Description: "Get a minute-by-minute precipitation forecast for the next hour.",
	}, h.getMinutelyForecast)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "get-weather-alerts",
		Description: "Get active government weather alerts for a location, with severity classification.",
	}, h.getWeatherAlerts)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "get-current-air-pollution",
		Description: "Get the current air quality index and pollutant concentrations for a location.",
	}, h.getCurrentAirPollution)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "get-location-info",
		Description: "Look up place names for a coordinate pair (reverse geocoding).",
	}, h.getLocationInfo)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "get-onecall-weather",
		Description: "Get comprehensive weather for a coordinate pair in one call: current conditions plus minutely, hourly and daily forecasts and alerts.",
	}, h.getOneCallWeather)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "get-air-pollution",
		Description: "Get the current air quality index and pollutant concentrations for a coordinate pair.",
	}, h.getAirPollution)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "geocode-location",
		Description: "Resolve a place-name query to candidate locations with coordinates.",
	}, h.geocodeLocation)
}

// clamp normalizes an optional integer argument: zero means unset and
// takes the default; anything else is clamped to [lo, hi].
func clamp(v, lo, hi, def int) int {
	switch {
	case v == 0:
		return def
	case v < lo:
		return lo
	case v > hi:
		return hi
	default:
		return v
	}
}
