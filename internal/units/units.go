// Copyright 2025 The OpenWeather MCP Authors. All rights reserved.
// Use of this source code is governed by a Apache-2.0
// license that can be found in the LICENSE file.

// Package units holds the pure display conversions shared by every tool:
// temperature and wind-speed labels, distance conversion, compass bearings,
// air-quality labels, and precipitation intensity buckets. Everything is
// keyed off a System value and carries no state.
package units

import (
	"fmt"
	"math"
	"strings"
)

// System selects the measurement system for upstream requests and for
// display formatting. The zero value is not valid; use Default.
type System string

const (
	Metric   System = "metric"
	Imperial System = "imperial"
	Standard System = "standard"
)

// Default is the system used wherever a caller leaves units unspecified.
const Default = Metric

// ParseSystem maps a raw units argument onto a System, falling back to
// Default for empty or unrecognized input.
func ParseSystem(s string) System {
	switch System(strings.ToLower(strings.TrimSpace(s))) {
	case Metric:
		return Metric
	case Imperial:
		return Imperial
	case Standard:
		return Standard
	default:
		return Default
	}
}

// TempSymbol returns the temperature unit symbol for the system:
// "C" for metric, "F" for imperial, "K" for standard.
func TempSymbol(s System) string {
	switch s {
	case Imperial:
		return "F"
	case Standard:
		return "K"
	default:
		return "C"
	}
}

// WindUnit returns the wind-speed unit label: "mph" for imperial,
// otherwise "m/s".
func WindUnit(s System) string {
	if s == Imperial {
		return "mph"
	}
	return "m/s"
}

// DistanceUnit returns the visibility/distance unit label: "mi" for
// imperial, otherwise "km".
func DistanceUnit(s System) string {
	if s == Imperial {
		return "mi"
	}
	return "km"
}

// RoundTemp rounds a raw temperature to the nearest integer for display.
// Raw values are kept alongside rounded ones in the canonical documents,
// so precision is never lost to this rounding.
func RoundTemp(v float64) int {
	return int(math.Round(v))
}

// FormatWind renders a wind speed to one decimal place.
func FormatWind(v float64) string {
	return fmt.Sprintf("%.1f", v)
}

const metersPerMile = 1609.34

// Visibility converts a visibility in meters into the system's distance
// unit (miles for imperial, kilometers otherwise), rounded to one decimal
// place.
func Visibility(meters float64, s System) float64 {
	var v float64
	if s == Imperial {
		v = meters / metersPerMile
	} else {
		v = meters / 1000
	}
	return math.Round(v*10) / 10
}

// compassPoints are the 16 sectors of the compass rose, each spanning
// 22.5 degrees centered on the named point.
var compassPoints = [16]string{
	"N", "NNE", "NE", "ENE", "E", "ESE", "SE", "SSE",
	"S", "SSW", "SW", "WSW", "W", "WNW", "NW", "NNW",
}

// WindDirection maps a bearing in degrees onto the nearest compass point.
// 360 wraps back to N.
func WindDirection(degrees float64) string {
	idx := int(math.Round(degrees/22.5)) % 16
	if idx < 0 {
		idx += 16
	}
	return compassPoints[idx]
}

// AirQualityLabel maps the OpenWeather AQI (1-5) onto its label. Any
// other value is "Unknown".
func AirQualityLabel(aqi int) string {
	switch aqi {
	case 1:
		return "Good"
	case 2:
		return "Fair"
	case 3:
		return "Moderate"
	case 4:
		return "Poor"
	case 5:
		return "Very Poor"
	default:
		return "Unknown"
	}
}

// PrecipitationIntensity buckets a minutely rain rate (mm) into a
// human-readable intensity.
func PrecipitationIntensity(mm float64) string {
	switch {
	case mm <= 0:
		return "No precipitation"
	case mm < 0.1:
		return "Light rain"
	case mm < 0.5:
		return "Moderate rain"
	default:
		return "Heavy rain"
	}
}

// TitleCase capitalizes the first letter of each whitespace-delimited word
// of a free-text weather description ("scattered clouds" -> "Scattered
// Clouds"). Internal spacing is preserved.
func TitleCase(desc string) string {
	var b strings.Builder
	b.Grow(len(desc))
	startOfWord := true
	for _, r := range desc {
		switch {
		case r == ' ' || r == '\t':
			startOfWord = true
			b.WriteRune(r)
		case startOfWord:
			b.WriteString(strings.ToUpper(string(r)))
			startOfWord = false
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
