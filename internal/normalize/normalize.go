// Copyright 2025 The OpenWeather MCP Authors. All rights reserved.
// Use of this source code is governed by a Apache-2.0
// license that can be found in the LICENSE file.

// Package normalize maps raw OpenWeather payloads onto the canonical
// documents returned by each tool, applying the display conversions of
// the units package along the way.
package normalize

import (
	"fmt"
	"time"

	"github.com/weathertools/openweather-mcp/internal/owm"
	"github.com/weathertools/openweather-mcp/internal/units"
)

// iso renders an upstream epoch-seconds timestamp as an ISO-8601 UTC
// string. Zero stays empty rather than rendering the Unix epoch.
func iso(epoch int64) string {
	if epoch == 0 {
		return ""
	}
	return time.Unix(epoch, 0).UTC().Format(time.RFC3339)
}

func temperature(raw float64, u units.System) Temperature {
	return Temperature{
		Value: units.RoundTemp(raw),
		Raw:   raw,
		Unit:  units.TempSymbol(u),
	}
}

func wind(speed, deg, gust float64, u units.System) Wind {
	return Wind{
		Speed:     units.FormatWind(speed),
		SpeedRaw:  speed,
		Unit:      units.WindUnit(u),
		Degrees:   deg,
		Direction: units.WindDirection(deg),
		Gust:      gust,
	}
}

func visibility(meters int, u units.System) Visibility {
	return Visibility{
		Value: units.Visibility(float64(meters), u),
		Unit:  units.DistanceUnit(u),
	}
}

// conditions renders the first weather condition's description in title
// case. Payloads with an empty weather array render "Unknown".
func conditions(list []owm.Condition) string {
	if len(list) == 0 {
		return "Unknown"
	}
	return units.TitleCase(list[0].Description)
}

// AlertSeverity classifies an alert's raw tag set: a tag exactly equal
// to "severe" or "extreme" is High, else "moderate" is Medium, else Low.
// The comparison is deliberately case-sensitive against the raw provider
// strings.
func AlertSeverity(tags []string) string {
	severity := "Low"
	for _, t := range tags {
		switch t {
		case "severe", "extreme":
			return "High"
		case "moderate":
			severity = "Medium"
		}
	}
	return severity
}

// ---------------------------------------------------------------------------
// Per-family mappings
// ---------------------------------------------------------------------------

// CurrentDocument maps a current-weather payload. fallbackLocation names
// the place when the upstream response carries no name of its own.
func CurrentDocument(raw *owm.CurrentWeather, u units.System, fallbackLocation string) *Current {
	loc := fallbackLocation
	if raw.Name != "" {
		loc = raw.Name
		if raw.Sys.Country != "" {
			loc += ", " + raw.Sys.Country
		}
	}
	return &Current{
		Location:     loc,
		Latitude:     raw.Coord.Lat,
		Longitude:    raw.Coord.Lon,
		Timestamp:    iso(raw.Dt),
		TimestampRaw: raw.Dt,
		Conditions:   conditions(raw.Weather),
		Temperature:  temperature(raw.Main.Temp, u),
		FeelsLike:    temperature(raw.Main.FeelsLike, u),
		Humidity:     raw.Main.Humidity,
		Pressure:     raw.Main.Pressure,
		Wind:         wind(raw.Wind.Speed, raw.Wind.Deg, raw.Wind.Gust, u),
		Clouds:       raw.Clouds.All,
		Visibility:   visibility(raw.Visibility, u),
		Rain1h:       raw.Rain.OneH,
		Snow1h:       raw.Snow.OneH,
		Sunrise:      iso(raw.Sys.Sunrise),
		Sunset:       iso(raw.Sys.Sunset),
	}
}

// forecastSampleStride is the number of 3-hour steps per day: one sampled
// entry every 24h of the series stands in for that day.
const forecastSampleStride = 8

// FiveDayDocument maps the 3-hour forecast series onto up to days
// representative samples, one per 24 hours, starting at index 0. This is
// a sampling of the series, not a min/max/avg aggregate across the day;
// consumers depend on this exact behavior.
func FiveDayDocument(raw *owm.Forecast, u units.System, days int) *FiveDayForecast {
	loc := raw.City.Name
	if raw.City.Country != "" {
		loc += ", " + raw.City.Country
	}
	doc := &FiveDayForecast{Location: loc, Days: []ForecastStep{}}
	for i := 0; i < len(raw.List) && len(doc.Days) < days; i += forecastSampleStride {
		e := raw.List[i]
		doc.Days = append(doc.Days, ForecastStep{
			Date:         iso(e.Dt),
			DateRaw:      e.Dt,
			Conditions:   conditions(e.Weather),
			Temperature:  temperature(e.Main.Temp, u),
			FeelsLike:    temperature(e.Main.FeelsLike, u),
			TempMin:      temperature(e.Main.TempMin, u),
			TempMax:      temperature(e.Main.TempMax, u),
			Humidity:     e.Main.Humidity,
			Wind:         wind(e.Wind.Speed, e.Wind.Deg, e.Wind.Gust, u),
			Clouds:       e.Clouds.All,
			PrecipChance: e.Pop,
			Rain3h:       e.Rain.ThreeH,
			Snow3h:       e.Snow.ThreeH,
		})
	}
	return doc
}

// HourlyDocument maps up to hours entries of the One Call hourly series.
func HourlyDocument(raw *owm.OneCall, u units.System, hours int, loc string) *HourlyForecast {
	doc := &HourlyForecast{Location: loc, Timezone: raw.Timezone, Hours: []HourlyEntry{}}
	for i, h := range raw.Hourly {
		if i >= hours {
			break
		}
		doc.Hours = append(doc.Hours, HourlyEntry{
			Time:         iso(h.Dt),
			TimeRaw:      h.Dt,
			Conditions:   conditions(h.Weather),
			Temperature:  temperature(h.Temp, u),
			FeelsLike:    temperature(h.FeelsLike, u),
			Humidity:     h.Humidity,
			Wind:         wind(h.WindSpeed, h.WindDeg, h.WindGust, u),
			Clouds:       h.Clouds,
			UVIndex:      h.UVI,
			PrecipChance: h.Pop,
			Rain1h:       h.Rain.OneH,
			Snow1h:       h.Snow.OneH,
		})
	}
	return doc
}

// DailyDocument maps up to days entries of the One Call daily series.
// When includeToday is false the leading entry (today) is skipped before
// counting.
func DailyDocument(raw *owm.OneCall, u units.System, days int, includeToday bool, loc string) *DailyForecast {
	doc := &DailyForecast{Location: loc, Timezone: raw.Timezone, Days: []DailyEntry{}}
	series := raw.Daily
	if !includeToday && len(series) > 0 {
		series = series[1:]
	}
	for i, d := range series {
		if i >= days {
			break
		}
		doc.Days = append(doc.Days, DailyEntry{
			Date:       iso(d.Dt),
			DateRaw:    d.Dt,
			Summary:    d.Summary,
			Conditions: conditions(d.Weather),
			Temperatures: DayTemperatures{
				Morning: temperature(d.Temp.Morn, u),
				Day:     temperature(d.Temp.Day, u),
				Evening: temperature(d.Temp.Eve, u),
				Night:   temperature(d.Temp.Night, u),
				Min:     temperature(d.Temp.Min, u),
				Max:     temperature(d.Temp.Max, u),
			},
			Humidity:     d.Humidity,
			Wind:         wind(d.WindSpeed, d.WindDeg, d.WindGust, u),
			Clouds:       d.Clouds,
			UVIndex:      d.UVI,
			PrecipChance: d.Pop,
			Rain:         d.Rain,
			Snow:         d.Snow,
			Sunrise:      iso(d.Sunrise),
			Sunset:       iso(d.Sunset),
		})
	}
	return doc
}

// MinutelyDocument maps up to limit minutes of the One Call minutely
// precipitation series, bucketing each rate into an intensity label and
// summarizing the window as a whole.
func MinutelyDocument(raw *owm.OneCall, limit int, loc string) *MinutelyForecast {
	doc := &MinutelyForecast{Location: loc, Minutes: []MinutelyEntry{}}
	total := 0.0
	for i, m := range raw.Minutely {
		if i >= limit {
			break
		}
		total += m.Precipitation
		doc.Minutes = append(doc.Minutes, MinutelyEntry{
			Time:          iso(m.Dt),
			TimeRaw:       m.Dt,
			Precipitation: m.Precipitation,
			Intensity:     units.PrecipitationIntensity(m.Precipitation),
		})
	}
	if total > 0 {
		doc.Summary = fmt.Sprintf("Precipitation expected within the next %d minutes", len(doc.Minutes))
	} else {
		doc.Summary = fmt.Sprintf("No precipitation expected in the next %d minutes", len(doc.Minutes))
	}
	return doc
}

// AlertsDocument maps the One Call alert list, classifying each alert's
// severity from its raw tags.
func AlertsDocument(raw *owm.OneCall, loc string) *Alerts {
	doc := &Alerts{Location: loc, Alerts: []AlertEntry{}}
	for _, a := range raw.Alerts {
		tags := a.Tags
		if tags == nil {
			tags = []string{}
		}
		doc.Alerts = append(doc.Alerts, AlertEntry{
			Event:       a.Event,
			Severity:    AlertSeverity(a.Tags),
			Sender:      a.SenderName,
			Start:       iso(a.Start),
			StartRaw:    a.Start,
			End:         iso(a.End),
			EndRaw:      a.End,
			Description: a.Description,
			Tags:        tags,
		})
	}
	doc.Count = len(doc.Alerts)
	return doc
}

// AirQualityDocument maps the most recent air-pollution sample.
func AirQualityDocument(raw *owm.AirPollution, loc string) *AirQuality {
	doc := &AirQuality{
		Location:  loc,
		Latitude:  raw.Coord.Lat,
		Longitude: raw.Coord.Lon,
		AQILabel:  units.AirQualityLabel(0),
	}
	if len(raw.List) == 0 {
		return doc
	}
	s := raw.List[0]
	doc.Timestamp = iso(s.Dt)
	doc.TimestampRaw = s.Dt
	doc.AQI = s.Main.AQI
	doc.AQILabel = units.AirQualityLabel(s.Main.AQI)
	doc.CO = s.Components.CO
	doc.NO = s.Components.NO
	doc.NO2 = s.Components.NO2
	doc.O3 = s.Components.O3
	doc.SO2 = s.Components.SO2
	doc.PM25 = s.Components.PM25
	doc.PM10 = s.Components.PM10
	doc.NH3 = s.Components.NH3
	return doc
}

func geocodeMatches(results []owm.GeoResult) []GeocodeMatch {
	matches := make([]GeocodeMatch, len(results))
	for i, r := range results {
		matches[i] = GeocodeMatch{
			Name:      r.Name,
			Country:   r.Country,
			State:     r.State,
			Latitude:  r.Lat,
			Longitude: r.Lon,
		}
	}
	return matches
}

// GeocodeDocument maps direct-geocoding results.
func GeocodeDocument(query string, results []owm.GeoResult) *Geocode {
	return &Geocode{
		Query:   query,
		Count:   len(results),
		Matches: geocodeMatches(results),
	}
}

// ReverseGeocodeDocument maps reverse-geocoding results.
func ReverseGeocodeDocument(lat, lon float64, results []owm.GeoResult) *ReverseGeocode {
	return &ReverseGeocode{
		Latitude:  lat,
		Longitude: lon,
		Matches:   geocodeMatches(results),
	}
}

// currentFromOneCall adapts the One Call current block to the canonical
// current-weather shape.
func currentFromOneCall(c *owm.OneCallCurrent, u units.System, loc string) *Current {
	return &Current{
		Location:     loc,
		Timestamp:    iso(c.Dt),
		TimestampRaw: c.Dt,
		Conditions:   conditions(c.Weather),
		Temperature:  temperature(c.Temp, u),
		FeelsLike:    temperature(c.FeelsLike, u),
		Humidity:     c.Humidity,
		Pressure:     c.Pressure,
		Wind:         wind(c.WindSpeed, c.WindDeg, c.WindGust, u),
		Clouds:       c.Clouds,
		Visibility:   visibility(c.Visibility, u),
		Rain1h:       c.Rain.OneH,
		Snow1h:       c.Snow.OneH,
		Sunrise:      iso(c.Sunrise),
		Sunset:       iso(c.Sunset),
	}
}

// OneCallFullDocument maps a combined One Call payload into one document.
// Blocks excluded from the upstream call (or absent from the payload)
// are left null.
func OneCallFullDocument(raw *owm.OneCall, u units.System) *OneCallDocument {
	loc := raw.Timezone
	doc := &OneCallDocument{
		Latitude:  raw.Lat,
		Longitude: raw.Lon,
		Timezone:  raw.Timezone,
	}
	if raw.Current != nil {
		doc.Current = currentFromOneCall(raw.Current, u, loc)
		doc.Current.Latitude = raw.Lat
		doc.Current.Longitude = raw.Lon
	}
	if len(raw.Minutely) > 0 {
		doc.Minutely = MinutelyDocument(raw, len(raw.Minutely), loc)
	}
	if len(raw.Hourly) > 0 {
		doc.Hourly = HourlyDocument(raw, u, len(raw.Hourly), loc)
	}
	if len(raw.Daily) > 0 {
		doc.Daily = DailyDocument(raw, u, len(raw.Daily), true, loc)
	}
	if len(raw.Alerts) > 0 {
		doc.Alerts = AlertsDocument(raw, loc)
	}
	return doc
}
