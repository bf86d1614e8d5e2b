// Copyright 2025 The OpenWeather MCP Authors. All rights reserved.
// Use of this source code is governed by a Apache-2.0
// license that can be found in the LICENSE file.

// Package docs serves the static API-reference resource describing the
// tool surface.
package docs

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// URI is the fixed resource URI of the API reference.
const URI = "weather://docs/api-reference"

const reference = `# OpenWeather MCP Server

Weather, forecast, air-quality and geocoding tools backed by the
OpenWeather API. Location-keyed tools accept a city name ("London"), a
city with country code ("London,GB"), a zip code, or coordinates given
as "lat,lon" ("51.5072,-0.1276"). Unit systems: metric (°C, m/s),
imperial (°F, mph), standard (K, m/s); metric is the default.

## Tools

| Tool | Parameters | Returns |
|------|------------|---------|
| get-current-weather | location, units? | Current conditions: temperature, feels-like, humidity, wind with compass direction, visibility, clouds, precipitation |
| get-weather-forecast | location, units?, days? (1-5) | Five-day forecast, one representative entry per day |
| get-hourly-forecast | location, units?, hours? (1-48) | Hour-by-hour forecast |
| get-daily-forecast | location, units?, days? (1-8), include_today? | Day-by-day forecast with morning/day/evening/night temperatures |
| get-minutely-forecast | location, limit? (default 60) | Minute-by-minute precipitation for the next hour |
| get-weather-alerts | location | Active government alerts with High/Medium/Low severity |
| get-current-air-pollution | location | Air quality index, label, and pollutant concentrations |
| get-location-info | latitude, longitude | Place names for a coordinate pair (reverse geocoding) |
| get-onecall-weather | latitude, longitude, units?, exclude? | Combined current + minutely + hourly + daily + alerts |
| get-air-pollution | latitude, longitude | Air quality index, label, and pollutant concentrations |
| geocode-location | query, limit? (1-10) | Candidate locations with coordinates |

## Authentication

On stdio the server reads OPENWEATHER_API_KEY from the environment at
startup. Over HTTP each request must carry the key in an
"Authorization: Bearer <key>" header.

## Errors

Errors come back as a single human-readable message. Unresolvable place
names report "Location not found"; rejected credentials report
"Invalid API key"; out-of-range coordinates report the valid ranges.
Calls are never retried.
`

// Register adds the API-reference resource to the server.
func Register(server *mcp.Server) {
	server.AddResource(&mcp.Resource{
		URI:         URI,
		Name:        "api-reference",
		Description: "Reference documentation for the weather tool surface",
		MIMEType:    "text/markdown",
	}, func(_ context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
		return &mcp.ReadResourceResult{
			Contents: []*mcp.ResourceContents{{
				URI:      req.Params.URI,
				MIMEType: "text/markdown",
				Text:     reference,
			}},
		}, nil
	})
}
