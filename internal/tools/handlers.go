// Copyright 2025 The OpenWeather MCP Authors. All rights reserved.
// Use of this source code is governed by a Apache-2.0
// license that can be found in the LICENSE file.

package tools

import (
	"context"

	"github.com/google/uuid"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"go.uber.org/zap"

	"github.com/weathertools/openweather-mcp/internal/location"
	"github.com/weathertools/openweather-mcp/internal/normalize"
	"github.com/weathertools/openweather-mcp/internal/owm"
	"github.com/weathertools/openweather-mcp/internal/units"
)

// invocation logs a tool call's intent and returns the logger used for
// the rest of the call, tagged with a fresh request id.
func (h *Handlers) invocation(tool string, fields ...zap.Field) *zap.Logger {
	log := h.log.With(append([]zap.Field{
		zap.String("tool", tool),
		zap.String("request_id", uuid.NewString()),
	}, fields...)...)
	log.Info("tool invoked")
	return log
}

// fail logs a failure with the original error and translates it into
// the user-facing form.
func fail(log *zap.Logger, action string, err error) error {
	log.Error("tool failed", zap.Error(err))
	return translate(action, err)
}

// ---------------------------------------------------------------------------
// Location-keyed tools
// ---------------------------------------------------------------------------

type CurrentWeatherInput struct {
	Location string `json:"location" jsonschema:"city name, zip code, or coordinates as 'lat,lon'"`
	Units    string `json:"units,omitempty" jsonschema:"unit system: metric, imperial, or standard (default metric)"`
}

func (h *Handlers) getCurrentWeather(ctx context.Context, _ *mcp.CallToolRequest, in CurrentWeatherInput) (*mcp.CallToolResult, *normalize.Current, error) {
	const action = "fetch current weather"
	log := h.invocation("get-current-weather", zap.String("location", in.Location), zap.String("units", in.Units))

	client, err := h.client(ctx)
	if err != nil {
		return nil, nil, fail(log, action, err)
	}
	q, err := Configure(in.Location, in.Units)
	if err != nil {
		return nil, nil, fail(log, action, err)
	}
	raw, err := client.CurrentWeather(ctx, q)
	if err != nil {
		return nil, nil, fail(log, action, err)
	}
	return nil, normalize.CurrentDocument(raw, q.Units, location.Format(q.Location)), nil
}

type WeatherForecastInput struct {
	Location string `json:"location" jsonschema:"city name, zip code, or coordinates as 'lat,lon'"`
	Units    string `json:"units,omitempty" jsonschema:"unit system: metric, imperial, or standard (default metric)"`
	Days     int    `json:"days,omitempty" jsonschema:"number of forecast days (1-5, default 5)"`
}

func (h *Handlers) getWeatherForecast(ctx context.Context, _ *mcp.CallToolRequest, in WeatherForecastInput) (*mcp.CallToolResult, *normalize.FiveDayForecast, error) {
	const action = "fetch weather forecast"
	log := h.invocation("get-weather-forecast", zap.String("location", in.Location), zap.Int("days", in.Days))

	client, err := h.client(ctx)
	if err != nil {
		return nil, nil, fail(log, action, err)
	}
	q, err := Configure(in.Location, in.Units)
	if err != nil {
		return nil, nil, fail(log, action, err)
	}
	days := clamp(in.Days, 1, 5, 5)
	raw, err := client.Forecast(ctx, q, days*8)
	if err != nil {
		return nil, nil, fail(log, action, err)
	}
	return nil, normalize.FiveDayDocument(raw, q.Units, days), nil
}

type HourlyForecastInput struct {
	Location string `json:"location" jsonschema:"city name, zip code, or coordinates as 'lat,lon'"`
	Units    string `json:"units,omitempty" jsonschema:"unit system: metric, imperial, or standard (default metric)"`
	Hours    int    `json:"hours,omitempty" jsonschema:"number of forecast hours (1-48, default 24)"`
}

func (h *Handlers) getHourlyForecast(ctx context.Context, _ *mcp.CallToolRequest, in HourlyForecastInput) (*mcp.CallToolResult, *normalize.HourlyForecast, error) {
	const action = "fetch hourly forecast"
	log := h.invocation("get-hourly-forecast", zap.String("location", in.Location), zap.Int("hours", in.Hours))

	client, err := h.client(ctx)
	if err != nil {
		return nil, nil, fail(log, action, err)
	}
	q, err := Configure(in.Location, in.Units)
	if err != nil {
		return nil, nil, fail(log, action, err)
	}
	raw, err := client.OneCall(ctx, q, []string{"current", "minutely", "daily", "alerts"})
	if err != nil {
		return nil, nil, fail(log, action, err)
	}
	hours := clamp(in.Hours, 1, 48, 24)
	return nil, normalize.HourlyDocument(raw, q.Units, hours, location.Format(q.Location)), nil
}

type DailyForecastInput struct {
	Location     string `json:"location" jsonschema:"city name, zip code, or coordinates as 'lat,lon'"`
	Units        string `json:"units,omitempty" jsonschema:"unit system: metric, imperial, or standard (default metric)"`
	Days         int    `json:"days,omitempty" jsonschema:"number of forecast days (1-8, default 8)"`
	IncludeToday bool   `json:"include_today,omitempty" jsonschema:"include today's forecast as the first entry (default false)"`
}

func (h *Handlers) getDailyForecast(ctx context.Context, _ *mcp.CallToolRequest, in DailyForecastInput) (*mcp.CallToolResult, *normalize.DailyForecast, error) {
	const action = "fetch daily forecast"
	log := h.invocation("get-daily-forecast", zap.String("location", in.Location), zap.Int("days", in.Days), zap.Bool("include_today", in.IncludeToday))

	client, err := h.client(ctx)
	if err != nil {
		return nil, nil, fail(log, action, err)
	}
	q, err := Configure(in.Location, in.Units)
	if err != nil {
		return nil, nil, fail(log, action, err)
	}
	raw, err := client.OneCall(ctx, q, []string{"current", "minutely", "hourly", "alerts"})
	if err != nil {
		return nil, nil, fail(log, action, err)
	}
	days := clamp(in.Days, 1, 8, 8)
	return nil, normalize.DailyDocument(raw, q.Units, days, in.IncludeToday, location.Format(q.Location)), nil
}

type MinutelyForecastInput struct {
	Location string `json:"location" jsonschema:"city name, zip code, or coordinates as 'lat,lon'"`
	Limit    int    `json:"limit,omitempty" jsonschema:"number of minutes to include (1-60, default 60)"`
}

func (h *Handlers) getMinutelyForecast(ctx context.Context, _ *mcp.CallToolRequest, in MinutelyForecastInput) (*mcp.CallToolResult, *normalize.MinutelyForecast, error) {
	const action = "fetch minutely forecast"
	log := h.invocation("get-minutely-forecast", zap.String("location", in.Location), zap.Int("limit", in.Limit))

	client, err := h.client(ctx)
	if err != nil {
		return nil, nil, fail(log, action, err)
	}
	q, err := Configure(in.Location, "")
	if err != nil {
		return nil, nil, fail(log, action, err)
	}
	raw, err := client.OneCall(ctx, q, []string{"current", "hourly", "daily", "alerts"})
	if err != nil {
		return nil, nil, fail(log, action, err)
	}
	limit := clamp(in.Limit, 1, 60, 60)
	return nil, normalize.MinutelyDocument(raw, limit, location.Format(q.Location)), nil
}

type WeatherAlertsInput struct {
	Location string `json:"location" jsonschema:"city name, zip code, or coordinates as 'lat,lon'"`
}

func (h *Handlers) getWeatherAlerts(ctx context.Context, _ *mcp.CallToolRequest, in WeatherAlertsInput) (*mcp.CallToolResult, *normalize.Alerts, error) {
	const action = "fetch weather alerts"
	log := h.invocation("get-weather-alerts", zap.String("location", in.Location))

	client, err := h.client(ctx)
	if err != nil {
		return nil, nil, fail(log, action, err)
	}
	q, err := Configure(in.Location, "")
	if err != nil {
		return nil, nil, fail(log, action, err)
	}
	raw, err := client.OneCall(ctx, q, []string{"current", "minutely", "hourly", "daily"})
	if err != nil {
		return nil, nil, fail(log, action, err)
	}
	return nil, normalize.AlertsDocument(raw, location.Format(q.Location)), nil
}

type CurrentAirPollutionInput struct {
	Location string `json:"location" jsonschema:"city name, zip code, or coordinates as 'lat,lon'"`
}

func (h *Handlers) getCurrentAirPollution(ctx context.Context, _ *mcp.CallToolRequest, in CurrentAirPollutionInput) (*mcp.CallToolResult, *normalize.AirQuality, error) {
	const action = "fetch air pollution data"
	log := h.invocation("get-current-air-pollution", zap.String("location", in.Location))

	client, err := h.client(ctx)
	if err != nil {
		return nil, nil, fail(log, action, err)
	}
	q, err := Configure(in.Location, "")
	if err != nil {
		return nil, nil, fail(log, action, err)
	}
	raw, err := client.AirPollution(ctx, q)
	if err != nil {
		return nil, nil, fail(log, action, err)
	}
	return nil, normalize.AirQualityDocument(raw, location.Format(q.Location)), nil
}

// ---------------------------------------------------------------------------
// Coordinate-keyed tools
// ---------------------------------------------------------------------------

type LocationInfoInput struct {
	Latitude  float64 `json:"latitude" jsonschema:"latitude coordinate (-90 to 90)"`
	Longitude float64 `json:"longitude" jsonschema:"longitude coordinate (-180 to 180)"`
}

func (h *Handlers) getLocationInfo(ctx context.Context, _ *mcp.CallToolRequest, in LocationInfoInput) (*mcp.CallToolResult, *normalize.ReverseGeocode, error) {
	const action = "look up location info"
	log := h.invocation("get-location-info", zap.Float64("latitude", in.Latitude), zap.Float64("longitude", in.Longitude))

	if err := validateCoordinates(in.Latitude, in.Longitude); err != nil {
		return nil, nil, fail(log, action, err)
	}
	client, err := h.client(ctx)
	if err != nil {
		return nil, nil, fail(log, action, err)
	}
	results, err := client.ReverseGeocode(ctx, in.Latitude, in.Longitude, 5)
	if err != nil {
		return nil, nil, fail(log, action, err)
	}
	return nil, normalize.ReverseGeocodeDocument(in.Latitude, in.Longitude, results), nil
}

type OneCallWeatherInput struct {
	Latitude  float64  `json:"latitude" jsonschema:"latitude coordinate (-90 to 90)"`
	Longitude float64  `json:"longitude" jsonschema:"longitude coordinate (-180 to 180)"`
	Units     string   `json:"units,omitempty" jsonschema:"unit system: metric, imperial, or standard (default metric)"`
	Exclude   []string `json:"exclude,omitempty" jsonschema:"response blocks to omit: current, minutely, hourly, daily, alerts"`
}

func (h *Handlers) getOneCallWeather(ctx context.Context, _ *mcp.CallToolRequest, in OneCallWeatherInput) (*mcp.CallToolResult, *normalize.OneCallDocument, error) {
	const action = "fetch comprehensive weather"
	log := h.invocation("get-onecall-weather", zap.Float64("latitude", in.Latitude), zap.Float64("longitude", in.Longitude), zap.Strings("exclude", in.Exclude))

	if err := validateCoordinates(in.Latitude, in.Longitude); err != nil {
		return nil, nil, fail(log, action, err)
	}
	client, err := h.client(ctx)
	if err != nil {
		return nil, nil, fail(log, action, err)
	}
	u := units.ParseSystem(in.Units)
	q := owm.Query{Location: location.Coordinates(in.Latitude, in.Longitude), Units: u}
	raw, err := client.OneCall(ctx, q, in.Exclude)
	if err != nil {
		return nil, nil, fail(log, action, err)
	}
	return nil, normalize.OneCallFullDocument(raw, u), nil
}

type AirPollutionInput struct {
	Latitude  float64 `json:"latitude" jsonschema:"latitude coordinate (-90 to 90)"`
	Longitude float64 `json:"longitude" jsonschema:"longitude coordinate (-180 to 180)"`
}

func (h *Handlers) getAirPollution(ctx context.Context, _ *mcp.CallToolRequest, in AirPollutionInput) (*mcp.CallToolResult, *normalize.AirQuality, error) {
	const action = "fetch air pollution data"
	log := h.invocation("get-air-pollution", zap.Float64("latitude", in.Latitude), zap.Float64("longitude", in.Longitude))

	if err := validateCoordinates(in.Latitude, in.Longitude); err != nil {
		return nil, nil, fail(log, action, err)
	}
	client, err := h.client(ctx)
	if err != nil {
		return nil, nil, fail(log, action, err)
	}
	q := owm.Query{Location: location.Coordinates(in.Latitude, in.Longitude), Units: units.Default}
	raw, err := client.AirPollution(ctx, q)
	if err != nil {
		return nil, nil, fail(log, action, err)
	}
	return nil, normalize.AirQualityDocument(raw, location.Format(q.Location)), nil
}

type GeocodeInput struct {
	Query string `json:"query" jsonschema:"place name to resolve, e.g. 'Paris' or 'Springfield,US'"`
	Limit int    `json:"limit,omitempty" jsonschema:"maximum number of matches (1-10, default 5)"`
}

func (h *Handlers) geocodeLocation(ctx context.Context, _ *mcp.CallToolRequest, in GeocodeInput) (*mcp.CallToolResult, *normalize.Geocode, error) {
	const action = "geocode location"
	log := h.invocation("geocode-location", zap.String("query", in.Query), zap.Int("limit", in.Limit))

	if in.Query == "" {
		return nil, nil, fail(log, action, ErrInvalidLocation)
	}
	client, err := h.client(ctx)
	if err != nil {
		return nil, nil, fail(log, action, err)
	}
	limit := clamp(in.Limit, 1, 10, 5)
	results, err := client.Geocode(ctx, in.Query, limit)
	if err != nil {
		return nil, nil, fail(log, action, err)
	}
	return nil, normalize.GeocodeDocument(in.Query, results), nil
}
