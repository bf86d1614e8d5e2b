// Copyright 2025 The OpenWeather MCP Authors. All rights reserved.
// Use of this source code is governed by a Apache-2.0
// license that can be found in the LICENSE file.

package tools

import (
	"errors"

	"github.com/weathertools/openweather-mcp/internal/location"
	"github.com/weathertools/openweather-mcp/internal/owm"
	"github.com/weathertools/openweather-mcp/internal/units"
)

// ErrInvalidLocation means the location argument parsed to an empty or
// incomplete descriptor. Raised before any upstream call is made.
var ErrInvalidLocation = errors.New("invalid location: provide a place name or coordinates as 'lat,lon'")

// Configure builds the immutable per-call query from a raw location
// argument and an optional units argument. The query travels alongside
// the shared client instead of being set on it, so concurrent calls on
// one cached client cannot observe each other's configuration.
func Configure(locationInput, unitsInput string) (owm.Query, error) {
	desc := location.Parse(locationInput)
	switch desc.Kind {
	case location.KindCoordinates:
		if desc.Lat == nil || desc.Lon == nil {
			return owm.Query{}, ErrInvalidLocation
		}
	case location.KindPlace:
		if desc.Query == "" {
			return owm.Query{}, ErrInvalidLocation
		}
	}
	return owm.Query{
		Location: desc,
		Units:    units.ParseSystem(unitsInput),
	}, nil
}
