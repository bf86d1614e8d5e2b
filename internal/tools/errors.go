// Copyright 2025 The OpenWeather MCP Authors. All rights reserved.
// Use of this source code is governed by a Apache-2.0
// license that can be found in the LICENSE file.

package tools

import (
	"errors"
	"fmt"
	"strings"

	"github.com/weathertools/openweather-mcp/internal/session"
)

// User-facing messages for the recognized upstream failure classes.
const (
	msgLocationNotFound = "Location not found. Check the spelling of the place name, or provide coordinates as 'lat,lon'."
	msgBadAPIKey        = "Invalid API key. Verify your OpenWeather credential and that it is activated."
	msgBadCoordinates   = "Invalid coordinates. Latitude must be between -90 and 90 and longitude between -180 and 180."
)

// translate classifies an upstream failure by substring against the
// known OpenWeather error phrases and rewrites it as one user-facing
// message. Errors raised before the upstream call (missing session,
// invalid location) pass through untouched; anything unrecognized is
// wrapped with the tool's action and the original message preserved
// verbatim. Nothing is retried: the first failure always surfaces.
func translate(action string, err error) error {
	if errors.Is(err, session.ErrNoSession) ||
		errors.Is(err, session.ErrBadCredential) ||
		errors.Is(err, ErrInvalidLocation) {
		return err
	}

	msg := err.Error()
	switch {
	case strings.Contains(msg, "city not found"):
		return errors.New(msgLocationNotFound)
	case strings.Contains(msg, "Invalid API key"):
		return errors.New(msgBadAPIKey)
	case strings.Contains(msg, "Invalid coordinates"),
		strings.Contains(msg, "wrong latitude"),
		strings.Contains(msg, "wrong longitude"):
		return errors.New(msgBadCoordinates)
	default:
		return fmt.Errorf("Failed to %s: %s", action, msg)
	}
}

// validateCoordinates guards the coordinate-typed tools, surfacing the
// range-validation message before any upstream call.
func validateCoordinates(lat, lon float64) error {
	if lat < -90 || lat > 90 || lon < -180 || lon > 180 {
		return errors.New(msgBadCoordinates)
	}
	return nil
}
