// Copyright 2025 The OpenWeather MCP Authors. All rights reserved.
// Use of this source code is governed by a Apache-2.0
// license that can be found in the LICENSE file.

package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/weathertools/openweather-mcp/internal/owm"
	"github.com/weathertools/openweather-mcp/internal/units"
)

func TestAlertSeverity(t *testing.T) {
	tests := []struct {
		name string
		tags []string
		want string
	}{
		{"extreme", []string{"extreme"}, "High"},
		{"severe", []string{"wind", "severe"}, "High"},
		{"severe beats moderate", []string{"moderate", "severe"}, "High"},
		{"moderate only", []string{"moderate"}, "Medium"},
		{"unrelated tags", []string{"wind", "coastal"}, "Low"},
		{"no tags", nil, "Low"},
		{"case sensitive", []string{"Extreme", "MODERATE"}, "Low"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, AlertSeverity(tt.tags))
		})
	}
}

func sampleCurrent() *owm.CurrentWeather {
	raw := &owm.CurrentWeather{}
	raw.Coord = owm.Coord{Lat: 51.5072, Lon: -0.1276}
	raw.Weather = []owm.Condition{{Main: "Clouds", Description: "scattered clouds"}}
	raw.Main.Temp = 18.6
	raw.Main.FeelsLike = 17.9
	raw.Main.Humidity = 72
	raw.Main.Pressure = 1014
	raw.Visibility = 10000
	raw.Wind.Speed = 5.66
	raw.Wind.Deg = 250
	raw.Dt = 1700000000
	raw.Sys.Country = "GB"
	raw.Sys.Sunrise = 1699987000
	raw.Sys.Sunset = 1700020000
	raw.Name = "London"
	return raw
}

func TestCurrentDocument(t *testing.T) {
	doc := CurrentDocument(sampleCurrent(), units.Metric, "fallback")

	assert.Equal(t, "London, GB", doc.Location)
	assert.Equal(t, 51.5072, doc.Latitude)
	assert.Equal(t, "2023-11-14T22:13:20Z", doc.Timestamp)
	assert.Equal(t, int64(1700000000), doc.TimestampRaw)
	assert.Equal(t, "Scattered Clouds", doc.Conditions)

	// Rounded display value with the raw reading preserved.
	assert.Equal(t, 19, doc.Temperature.Value)
	assert.Equal(t, 18.6, doc.Temperature.Raw)
	assert.Equal(t, "C", doc.Temperature.Unit)

	assert.Equal(t, "5.7", doc.Wind.Speed)
	assert.Equal(t, "m/s", doc.Wind.Unit)
	assert.Equal(t, "WSW", doc.Wind.Direction)
	assert.Equal(t, 10.0, doc.Visibility.Value)
	assert.Equal(t, "km", doc.Visibility.Unit)

	// Absent optional fields are zero, never omitted.
	assert.Zero(t, doc.Wind.Gust)
	assert.Zero(t, doc.Rain1h)
	assert.Zero(t, doc.Snow1h)
}

func TestCurrentDocument_Imperial(t *testing.T) {
	doc := CurrentDocument(sampleCurrent(), units.Imperial, "fallback")
	assert.Equal(t, "F", doc.Temperature.Unit)
	assert.Equal(t, "mph", doc.Wind.Unit)
	assert.Equal(t, "mi", doc.Visibility.Unit)
	assert.Equal(t, 6.2, doc.Visibility.Value)
}

func TestCurrentDocument_FallbackLocation(t *testing.T) {
	raw := sampleCurrent()
	raw.Name = ""
	raw.Sys.Country = ""
	doc := CurrentDocument(raw, units.Metric, "51.5072, -0.1276")
	assert.Equal(t, "51.5072, -0.1276", doc.Location)
}

func TestFiveDayDocument_SamplesEveryEighthEntry(t *testing.T) {
	raw := &owm.Forecast{}
	raw.City.Name = "Oslo"
	raw.City.Country = "NO"
	for i := 0; i < 40; i++ {
		var e owm.ForecastEntry
		e.Dt = int64(i) // index marker
		e.Main.Temp = float64(i)
		e.Weather = []owm.Condition{{Description: "clear sky"}}
		raw.List = append(raw.List, e)
	}

	doc := FiveDayDocument(raw, units.Metric, 5)
	require.Len(t, doc.Days, 5)
	assert.Equal(t, "Oslo, NO", doc.Location)
	// Representative samples at indices 0, 8, 16, 24, 32 — a sampling of
	// the 3-hour series, not a daily aggregate.
	for i, day := range doc.Days {
		assert.Equal(t, int64(i*8), day.DateRaw)
	}
}

func TestFiveDayDocument_DaysClampedBySeries(t *testing.T) {
	raw := &owm.Forecast{}
	for i := 0; i < 16; i++ {
		var e owm.ForecastEntry
		e.Dt = int64(i)
		raw.List = append(raw.List, e)
	}
	doc := FiveDayDocument(raw, units.Metric, 5)
	assert.Len(t, doc.Days, 2)
}

func sampleOneCall() *owm.OneCall {
	raw := &owm.OneCall{Lat: 59.91, Lon: 10.75, Timezone: "Europe/Oslo"}
	for i := 0; i < 8; i++ {
		var d owm.OneCallDay
		d.Dt = int64(1700000000 + i*86400)
		d.Temp.Morn = 3.2
		d.Temp.Day = 7.8
		d.Temp.Eve = 5.1
		d.Temp.Night = 1.4
		d.Temp.Min = 0.9
		d.Temp.Max = 8.3
		d.Weather = []owm.Condition{{Description: "light snow"}}
		raw.Daily = append(raw.Daily, d)
	}
	for i := 0; i < 48; i++ {
		var h owm.OneCallCurrent
		h.Dt = int64(1700000000 + i*3600)
		h.Temp = 5.5
		h.Weather = []owm.Condition{{Description: "overcast clouds"}}
		raw.Hourly = append(raw.Hourly, h)
	}
	for i := 0; i < 60; i++ {
		raw.Minutely = append(raw.Minutely, owm.OneCallMinute{
			Dt:            int64(1700000000 + i*60),
			Precipitation: 0.3,
		})
	}
	return raw
}

func TestDailyDocument_IncludeToday(t *testing.T) {
	raw := sampleOneCall()

	withToday := DailyDocument(raw, units.Metric, 8, true, "Oslo")
	require.Len(t, withToday.Days, 8)
	assert.Equal(t, raw.Daily[0].Dt, withToday.Days[0].DateRaw)

	withoutToday := DailyDocument(raw, units.Metric, 8, false, "Oslo")
	require.Len(t, withoutToday.Days, 7)
	assert.Equal(t, raw.Daily[1].Dt, withoutToday.Days[0].DateRaw)
}

func TestDailyDocument_TemperatureSubfieldsVerbatim(t *testing.T) {
	doc := DailyDocument(sampleOneCall(), units.Metric, 1, true, "Oslo")
	require.Len(t, doc.Days, 1)
	temps := doc.Days[0].Temperatures
	assert.Equal(t, 3.2, temps.Morning.Raw)
	assert.Equal(t, 7.8, temps.Day.Raw)
	assert.Equal(t, 5.1, temps.Evening.Raw)
	assert.Equal(t, 1.4, temps.Night.Raw)
	assert.Equal(t, 0.9, temps.Min.Raw)
	assert.Equal(t, 8.3, temps.Max.Raw)
	// Rounded, not averaged or reinterpreted.
	assert.Equal(t, 8, temps.Day.Value)
}

func TestHourlyDocument_Limit(t *testing.T) {
	doc := HourlyDocument(sampleOneCall(), units.Metric, 24, "Oslo")
	assert.Len(t, doc.Hours, 24)
	assert.Equal(t, "Europe/Oslo", doc.Timezone)
	assert.Equal(t, "Overcast Clouds", doc.Hours[0].Conditions)
}

func TestMinutelyDocument(t *testing.T) {
	doc := MinutelyDocument(sampleOneCall(), 30, "Oslo")
	require.Len(t, doc.Minutes, 30)
	assert.Equal(t, "Moderate rain", doc.Minutes[0].Intensity)
	assert.Contains(t, doc.Summary, "Precipitation expected")

	dry := &owm.OneCall{}
	for i := 0; i < 60; i++ {
		dry.Minutely = append(dry.Minutely, owm.OneCallMinute{Dt: int64(i)})
	}
	doc = MinutelyDocument(dry, 60, "Oslo")
	assert.Equal(t, "No precipitation", doc.Minutes[0].Intensity)
	assert.Contains(t, doc.Summary, "No precipitation expected")
}

func TestAlertsDocument(t *testing.T) {
	raw := &owm.OneCall{
		Alerts: []owm.Alert{
			{
				SenderName:  "NWS",
				Event:       "Flood Warning",
				Start:       1700000000,
				End:         1700080000,
				Description: "Flooding expected",
				Tags:        []string{"flood", "severe"},
			},
			{Event: "Wind Advisory", Tags: nil},
		},
	}
	doc := AlertsDocument(raw, "Springfield")
	assert.Equal(t, 2, doc.Count)
	assert.Equal(t, "High", doc.Alerts[0].Severity)
	assert.Equal(t, "2023-11-14T22:13:20Z", doc.Alerts[0].Start)
	assert.Equal(t, int64(1700000000), doc.Alerts[0].StartRaw)
	assert.Equal(t, "Low", doc.Alerts[1].Severity)
	// Tags stay present (empty, not null) for uniform parsing.
	assert.NotNil(t, doc.Alerts[1].Tags)
}

func TestAirQualityDocument(t *testing.T) {
	raw := &owm.AirPollution{Coord: owm.Coord{Lat: 48.85, Lon: 2.35}}
	var s owm.PollutionSample
	s.Dt = 1700000000
	s.Main.AQI = 2
	s.Components.PM25 = 8.2
	s.Components.O3 = 61.5
	raw.List = []owm.PollutionSample{s}

	doc := AirQualityDocument(raw, "Paris")
	assert.Equal(t, 2, doc.AQI)
	assert.Equal(t, "Fair", doc.AQILabel)
	assert.Equal(t, 8.2, doc.PM25)
	assert.Equal(t, 61.5, doc.O3)
	assert.Equal(t, "2023-11-14T22:13:20Z", doc.Timestamp)
}

func TestAirQualityDocument_EmptySampleList(t *testing.T) {
	doc := AirQualityDocument(&owm.AirPollution{}, "Nowhere")
	assert.Equal(t, "Unknown", doc.AQILabel)
	assert.Zero(t, doc.AQI)
}

func TestGeocodeDocuments(t *testing.T) {
	results := []owm.GeoResult{
		{Name: "Springfield", Country: "US", State: "Illinois", Lat: 39.8, Lon: -89.6},
		{Name: "Springfield", Country: "US", State: "Missouri", Lat: 37.2, Lon: -93.3},
	}

	geo := GeocodeDocument("Springfield", results)
	assert.Equal(t, 2, geo.Count)
	assert.Equal(t, "Illinois", geo.Matches[0].State)

	rev := ReverseGeocodeDocument(39.8, -89.6, results[:1])
	assert.Equal(t, 39.8, rev.Latitude)
	require.Len(t, rev.Matches, 1)
	assert.Equal(t, "Springfield", rev.Matches[0].Name)
}

func TestOneCallFullDocument(t *testing.T) {
	raw := sampleOneCall()
	raw.Current = &owm.OneCallCurrent{
		Dt:      1700000000,
		Temp:    4.4,
		Weather: []owm.Condition{{Description: "light snow"}},
	}
	raw.Alerts = []owm.Alert{{Event: "Storm", Tags: []string{"moderate"}}}

	doc := OneCallFullDocument(raw, units.Metric)
	require.NotNil(t, doc.Current)
	assert.Equal(t, 4, doc.Current.Temperature.Value)
	assert.Equal(t, 59.91, doc.Current.Latitude)
	require.NotNil(t, doc.Hourly)
	assert.Len(t, doc.Hourly.Hours, 48)
	require.NotNil(t, doc.Daily)
	assert.Len(t, doc.Daily.Days, 8)
	require.NotNil(t, doc.Minutely)
	require.NotNil(t, doc.Alerts)
	assert.Equal(t, "Medium", doc.Alerts.Alerts[0].Severity)
}

func TestOneCallFullDocument_ExcludedBlocksAreNull(t *testing.T) {
	raw := &owm.OneCall{Lat: 1, Lon: 2, Timezone: "UTC"}
	doc := OneCallFullDocument(raw, units.Metric)
	assert.Nil(t, doc.Current)
	assert.Nil(t, doc.Minutely)
	assert.Nil(t, doc.Hourly)
	assert.Nil(t, doc.Daily)
	assert.Nil(t, doc.Alerts)
}
