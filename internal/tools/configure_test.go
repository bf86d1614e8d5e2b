// Copyright 2025 The OpenWeather MCP Authors. All rights reserved.
// Use of this source code is governed by a Apache-2.0
// license that can be found in the LICENSE file.

package tools

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/weathertools/openweather-mcp/internal/location"
	"github.com/weathertools/openweather-mcp/internal/units"
)

func TestConfigure(t *testing.T) {
	t.Run("coordinates with units", func(t *testing.T) {
		q, err := Configure("40.7128,-74.0060", "imperial")
		require.NoError(t, err)
		assert.Equal(t, location.KindCoordinates, q.Location.Kind)
		assert.Equal(t, 40.7128, *q.Location.Lat)
		assert.Equal(t, units.Imperial, q.Units)
	})

	t.Run("place name defaults to metric", func(t *testing.T) {
		q, err := Configure("London", "")
		require.NoError(t, err)
		assert.Equal(t, location.KindPlace, q.Location.Kind)
		assert.Equal(t, "London", q.Location.Query)
		assert.Equal(t, units.Metric, q.Units)
	})

	t.Run("out-of-range pair becomes a query", func(t *testing.T) {
		q, err := Configure("91,0", "")
		require.NoError(t, err)
		assert.Equal(t, location.KindPlace, q.Location.Kind)
		assert.Equal(t, "91,0", q.Location.Query)
	})

	t.Run("empty location fails before any upstream call", func(t *testing.T) {
		_, err := Configure("", "")
		assert.ErrorIs(t, err, ErrInvalidLocation)

		_, err = Configure("   ", "metric")
		assert.ErrorIs(t, err, ErrInvalidLocation)
	})
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 5, clamp(0, 1, 10, 5))  // unset takes the default
	assert.Equal(t, 1, clamp(-3, 1, 10, 5)) // below range
	assert.Equal(t, 10, clamp(99, 1, 10, 5))
	assert.Equal(t, 7, clamp(7, 1, 10, 5))
}
