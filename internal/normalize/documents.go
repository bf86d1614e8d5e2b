// Copyright 2025 The OpenWeather MCP Authors. All rights reserved.
// Use of this source code is governed by a Apache-2.0
// license that can be found in the LICENSE file.

package normalize

// Canonical document shapes, one per tool family. Conventions shared by
// all of them:
//
//   - Timestamps appear twice: the raw upstream epoch seconds in the
//     *_raw / *Raw field, and the same instant rendered as an ISO-8601
//     UTC string in its unsuffixed sibling.
//   - Numeric display values are rounded per field rule (temperatures to
//     the nearest integer, wind to one decimal); the unrounded source
//     value rides alongside where downstream consumers want precision.
//   - Optional upstream fields (gusts, snow, rain) are always present,
//     defaulting to zero, so consumers can parse every document with one
//     schema.

// Temperature is a rounded display temperature plus its raw source value
// and unit symbol.
type Temperature struct {
	Value int     `json:"value"`
	Raw   float64 `json:"raw"`
	Unit  string  `json:"unit"`
}

// Wind is a display wind reading: speed to one decimal with its unit,
// the raw value, bearing in degrees and the derived compass direction.
type Wind struct {
	Speed     string  `json:"speed"`
	SpeedRaw  float64 `json:"speed_raw"`
	Unit      string  `json:"unit"`
	Degrees   float64 `json:"degrees"`
	Direction string  `json:"direction"`
	Gust      float64 `json:"gust"`
}

// Visibility is a converted distance with its unit label.
type Visibility struct {
	Value float64 `json:"value"`
	Unit  string  `json:"unit"`
}

// Current is the canonical current-weather document.
type Current struct {
	Location     string      `json:"location"`
	Latitude     float64     `json:"latitude"`
	Longitude    float64     `json:"longitude"`
	Timestamp    string      `json:"timestamp"`
	TimestampRaw int64       `json:"timestamp_raw"`
	Conditions   string      `json:"conditions"`
	Temperature  Temperature `json:"temperature"`
	FeelsLike    Temperature `json:"feels_like"`
	Humidity     int         `json:"humidity"`
	Pressure     int         `json:"pressure"`
	Wind         Wind        `json:"wind"`
	Clouds       int         `json:"clouds"`
	Visibility   Visibility  `json:"visibility"`
	Rain1h       float64     `json:"rain_1h"`
	Snow1h       float64     `json:"snow_1h"`
	Sunrise      string      `json:"sunrise"`
	Sunset       string      `json:"sunset"`
}

// ForecastStep is one sampled step of the five-day forecast.
type ForecastStep struct {
	Date         string      `json:"date"`
	DateRaw      int64       `json:"date_raw"`
	Conditions   string      `json:"conditions"`
	Temperature  Temperature `json:"temperature"`
	FeelsLike    Temperature `json:"feels_like"`
	TempMin      Temperature `json:"temp_min"`
	TempMax      Temperature `json:"temp_max"`
	Humidity     int         `json:"humidity"`
	Wind         Wind        `json:"wind"`
	Clouds       int         `json:"clouds"`
	PrecipChance float64     `json:"precipitation_chance"`
	Rain3h       float64     `json:"rain_3h"`
	Snow3h       float64     `json:"snow_3h"`
}

// FiveDayForecast is the canonical document of the 5-day forecast tool.
// Days are representative samples of the 3-hour series, not aggregates.
type FiveDayForecast struct {
	Location string         `json:"location"`
	Days     []ForecastStep `json:"days"`
}

// HourlyEntry is one hour of the hourly forecast document.
type HourlyEntry struct {
	Time         string      `json:"time"`
	TimeRaw      int64       `json:"time_raw"`
	Conditions   string      `json:"conditions"`
	Temperature  Temperature `json:"temperature"`
	FeelsLike    Temperature `json:"feels_like"`
	Humidity     int         `json:"humidity"`
	Wind         Wind        `json:"wind"`
	Clouds       int         `json:"clouds"`
	UVIndex      float64     `json:"uv_index"`
	PrecipChance float64     `json:"precipitation_chance"`
	Rain1h       float64     `json:"rain_1h"`
	Snow1h       float64     `json:"snow_1h"`
}

// HourlyForecast is the canonical document of the hourly forecast tool.
type HourlyForecast struct {
	Location string        `json:"location"`
	Timezone string        `json:"timezone"`
	Hours    []HourlyEntry `json:"hours"`
}

// DayTemperatures carries the daily temperature sub-fields verbatim from
// the source (rounded per display convention, never averaged).
type DayTemperatures struct {
	Morning Temperature `json:"morning"`
	Day     Temperature `json:"day"`
	Evening Temperature `json:"evening"`
	Night   Temperature `json:"night"`
	Min     Temperature `json:"min"`
	Max     Temperature `json:"max"`
}

// DailyEntry is one day of the daily forecast document.
type DailyEntry struct {
	Date         string          `json:"date"`
	DateRaw      int64           `json:"date_raw"`
	Summary      string          `json:"summary"`
	Conditions   string          `json:"conditions"`
	Temperatures DayTemperatures `json:"temperatures"`
	Humidity     int             `json:"humidity"`
	Wind         Wind            `json:"wind"`
	Clouds       int             `json:"clouds"`
	UVIndex      float64         `json:"uv_index"`
	PrecipChance float64         `json:"precipitation_chance"`
	Rain         float64         `json:"rain"`
	Snow         float64         `json:"snow"`
	Sunrise      string          `json:"sunrise"`
	Sunset       string          `json:"sunset"`
}

// DailyForecast is the canonical document of the daily forecast tool.
type DailyForecast struct {
	Location string       `json:"location"`
	Timezone string       `json:"timezone"`
	Days     []DailyEntry `json:"days"`
}

// MinutelyEntry is one minute of precipitation forecast.
type MinutelyEntry struct {
	Time          string  `json:"time"`
	TimeRaw       int64   `json:"time_raw"`
	Precipitation float64 `json:"precipitation_mm"`
	Intensity     string  `json:"intensity"`
}

// MinutelyForecast is the canonical document of the minutely tool.
type MinutelyForecast struct {
	Location string          `json:"location"`
	Summary  string          `json:"summary"`
	Minutes  []MinutelyEntry `json:"minutes"`
}

// AlertEntry is one normalized weather alert.
type AlertEntry struct {
	Event       string   `json:"event"`
	Severity    string   `json:"severity"`
	Sender      string   `json:"sender"`
	Start       string   `json:"start"`
	StartRaw    int64    `json:"start_raw"`
	End         string   `json:"end"`
	EndRaw      int64    `json:"end_raw"`
	Description string   `json:"description"`
	Tags        []string `json:"tags"`
}

// Alerts is the canonical document of the weather-alerts tool.
type Alerts struct {
	Location string       `json:"location"`
	Count    int          `json:"count"`
	Alerts   []AlertEntry `json:"alerts"`
}

// AirQuality is the canonical document of the air-pollution tools.
type AirQuality struct {
	Location     string  `json:"location"`
	Latitude     float64 `json:"latitude"`
	Longitude    float64 `json:"longitude"`
	Timestamp    string  `json:"timestamp"`
	TimestampRaw int64   `json:"timestamp_raw"`
	AQI          int     `json:"aqi"`
	AQILabel     string  `json:"aqi_label"`
	CO           float64 `json:"co"`
	NO           float64 `json:"no"`
	NO2          float64 `json:"no2"`
	O3           float64 `json:"o3"`
	SO2          float64 `json:"so2"`
	PM25         float64 `json:"pm2_5"`
	PM10         float64 `json:"pm10"`
	NH3          float64 `json:"nh3"`
}

// GeocodeMatch is one candidate from the geocoding tools.
type GeocodeMatch struct {
	Name      string  `json:"name"`
	Country   string  `json:"country"`
	State     string  `json:"state,omitempty"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Geocode is the canonical document of the geocode-location tool.
type Geocode struct {
	Query   string         `json:"query"`
	Count   int            `json:"count"`
	Matches []GeocodeMatch `json:"matches"`
}

// ReverseGeocode is the canonical document of the get-location-info tool.
type ReverseGeocode struct {
	Latitude  float64        `json:"latitude"`
	Longitude float64        `json:"longitude"`
	Matches   []GeocodeMatch `json:"matches"`
}

// OneCallDocument is the combined document of the comprehensive tool.
// Omitted blocks (excluded by the caller or absent upstream) are null.
type OneCallDocument struct {
	Latitude  float64           `json:"latitude"`
	Longitude float64           `json:"longitude"`
	Timezone  string            `json:"timezone"`
	Current   *Current          `json:"current"`
	Minutely  *MinutelyForecast `json:"minutely"`
	Hourly    *HourlyForecast   `json:"hourly"`
	Daily     *DailyForecast    `json:"daily"`
	Alerts    *Alerts           `json:"alerts"`
}
