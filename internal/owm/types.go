// Copyright 2025 The OpenWeather MCP Authors. All rights reserved.
// Use of this source code is governed by a Apache-2.0
// license that can be found in the LICENSE file.

package owm

// ---------------------------------------------------------------------------
// Shared fragments
// ---------------------------------------------------------------------------

// Coord is a latitude/longitude pair as returned by the API.
type Coord struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// Condition is one entry of the "weather" array present on most payloads.
type Condition struct {
	ID          int    `json:"id"`
	Main        string `json:"main"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

// Precipitation carries the 1h/3h accumulation fields of the "rain" and
// "snow" objects. Absent objects decode to zero values.
type Precipitation struct {
	OneH   float64 `json:"1h"`
	ThreeH float64 `json:"3h"`
}

// ---------------------------------------------------------------------------
// /data/2.5/weather
// ---------------------------------------------------------------------------

// CurrentWeather is the payload of the current-weather endpoint.
type CurrentWeather struct {
	Coord   Coord       `json:"coord"`
	Weather []Condition `json:"weather"`
	Main    struct {
		Temp      float64 `json:"temp"`
		FeelsLike float64 `json:"feels_like"`
		TempMin   float64 `json:"temp_min"`
		TempMax   float64 `json:"temp_max"`
		Pressure  int     `json:"pressure"`
		Humidity  int     `json:"humidity"`
	} `json:"main"`
	Visibility int `json:"visibility"`
	Wind       struct {
		Speed float64 `json:"speed"`
		Deg   float64 `json:"deg"`
		Gust  float64 `json:"gust"`
	} `json:"wind"`
	Clouds struct {
		All int `json:"all"`
	} `json:"clouds"`
	Rain Precipitation `json:"rain"`
	Snow Precipitation `json:"snow"`
	Dt   int64         `json:"dt"`
	Sys  struct {
		Country string `json:"country"`
		Sunrise int64  `json:"sunrise"`
		Sunset  int64  `json:"sunset"`
	} `json:"sys"`
	Timezone int    `json:"timezone"`
	Name     string `json:"name"`
}

// ---------------------------------------------------------------------------
// /data/2.5/forecast (3-hour steps, up to 5 days)
// ---------------------------------------------------------------------------

// ForecastEntry is one 3-hour step of the forecast series.
type ForecastEntry struct {
	Dt   int64 `json:"dt"`
	Main struct {
		Temp      float64 `json:"temp"`
		FeelsLike float64 `json:"feels_like"`
		TempMin   float64 `json:"temp_min"`
		TempMax   float64 `json:"temp_max"`
		Pressure  int     `json:"pressure"`
		Humidity  int     `json:"humidity"`
	} `json:"main"`
	Weather []Condition `json:"weather"`
	Clouds  struct {
		All int `json:"all"`
	} `json:"clouds"`
	Wind struct {
		Speed float64 `json:"speed"`
		Deg   float64 `json:"deg"`
		Gust  float64 `json:"gust"`
	} `json:"wind"`
	Visibility int           `json:"visibility"`
	Pop        float64       `json:"pop"`
	Rain       Precipitation `json:"rain"`
	Snow       Precipitation `json:"snow"`
	DtTxt      string        `json:"dt_txt"`
}

// Forecast is the payload of the 5-day/3-hour forecast endpoint.
type Forecast struct {
	List []ForecastEntry `json:"list"`
	City struct {
		Name     string `json:"name"`
		Coord    Coord  `json:"coord"`
		Country  string `json:"country"`
		Timezone int    `json:"timezone"`
		Sunrise  int64  `json:"sunrise"`
		Sunset   int64  `json:"sunset"`
	} `json:"city"`
}

// ---------------------------------------------------------------------------
// /data/3.0/onecall
// ---------------------------------------------------------------------------

// OneCallCurrent is the instantaneous block of a One Call response. The
// hourly series reuses the same shape plus a probability-of-precipitation
// field.
type OneCallCurrent struct {
	Dt         int64         `json:"dt"`
	Sunrise    int64         `json:"sunrise"`
	Sunset     int64         `json:"sunset"`
	Temp       float64       `json:"temp"`
	FeelsLike  float64       `json:"feels_like"`
	Pressure   int           `json:"pressure"`
	Humidity   int           `json:"humidity"`
	DewPoint   float64       `json:"dew_point"`
	UVI        float64       `json:"uvi"`
	Clouds     int           `json:"clouds"`
	Visibility int           `json:"visibility"`
	WindSpeed  float64       `json:"wind_speed"`
	WindDeg    float64       `json:"wind_deg"`
	WindGust   float64       `json:"wind_gust"`
	Pop        float64       `json:"pop"`
	Rain       Precipitation `json:"rain"`
	Snow       Precipitation `json:"snow"`
	Weather    []Condition   `json:"weather"`
}

// OneCallMinute is one minute of the minutely precipitation series.
type OneCallMinute struct {
	Dt            int64   `json:"dt"`
	Precipitation float64 `json:"precipitation"`
}

// OneCallDay is one day of the daily series. Temperature sub-fields are
// carried through verbatim; consumers see morning/day/evening/night as
// the API reported them.
type OneCallDay struct {
	Dt        int64   `json:"dt"`
	Sunrise   int64   `json:"sunrise"`
	Sunset    int64   `json:"sunset"`
	Moonrise  int64   `json:"moonrise"`
	Moonset   int64   `json:"moonset"`
	MoonPhase float64 `json:"moon_phase"`
	Summary   string  `json:"summary"`
	Temp      struct {
		Day   float64 `json:"day"`
		Min   float64 `json:"min"`
		Max   float64 `json:"max"`
		Night float64 `json:"night"`
		Eve   float64 `json:"eve"`
		Morn  float64 `json:"morn"`
	} `json:"temp"`
	FeelsLike struct {
		Day   float64 `json:"day"`
		Night float64 `json:"night"`
		Eve   float64 `json:"eve"`
		Morn  float64 `json:"morn"`
	} `json:"feels_like"`
	Pressure  int         `json:"pressure"`
	Humidity  int         `json:"humidity"`
	DewPoint  float64     `json:"dew_point"`
	WindSpeed float64     `json:"wind_speed"`
	WindDeg   float64     `json:"wind_deg"`
	WindGust  float64     `json:"wind_gust"`
	Weather   []Condition `json:"weather"`
	Clouds    int         `json:"clouds"`
	Pop       float64     `json:"pop"`
	Rain      float64     `json:"rain"`
	Snow      float64     `json:"snow"`
	UVI       float64     `json:"uvi"`
}

// Alert is a government weather alert attached to a One Call response.
type Alert struct {
	SenderName  string   `json:"sender_name"`
	Event       string   `json:"event"`
	Start       int64    `json:"start"`
	End         int64    `json:"end"`
	Description string   `json:"description"`
	Tags        []string `json:"tags"`
}

// OneCall is the combined payload of the One Call 3.0 endpoint.
type OneCall struct {
	Lat            float64          `json:"lat"`
	Lon            float64          `json:"lon"`
	Timezone       string           `json:"timezone"`
	TimezoneOffset int              `json:"timezone_offset"`
	Current        *OneCallCurrent  `json:"current"`
	Minutely       []OneCallMinute  `json:"minutely"`
	Hourly         []OneCallCurrent `json:"hourly"`
	Daily          []OneCallDay     `json:"daily"`
	Alerts         []Alert          `json:"alerts"`
}

// ---------------------------------------------------------------------------
// /data/2.5/air_pollution
// ---------------------------------------------------------------------------

// PollutionComponents are pollutant concentrations in μg/m³.
type PollutionComponents struct {
	CO   float64 `json:"co"`
	NO   float64 `json:"no"`
	NO2  float64 `json:"no2"`
	O3   float64 `json:"o3"`
	SO2  float64 `json:"so2"`
	PM25 float64 `json:"pm2_5"`
	PM10 float64 `json:"pm10"`
	NH3  float64 `json:"nh3"`
}

// PollutionSample is one timestamped air-quality reading.
type PollutionSample struct {
	Dt   int64 `json:"dt"`
	Main struct {
		AQI int `json:"aqi"`
	} `json:"main"`
	Components PollutionComponents `json:"components"`
}

// AirPollution is the payload of the air-pollution endpoint.
type AirPollution struct {
	Coord Coord             `json:"coord"`
	List  []PollutionSample `json:"list"`
}

// ---------------------------------------------------------------------------
// /geo/1.0
// ---------------------------------------------------------------------------

// GeoResult is one match from the direct or reverse geocoding endpoints.
type GeoResult struct {
	Name       string            `json:"name"`
	LocalNames map[string]string `json:"local_names"`
	Lat        float64           `json:"lat"`
	Lon        float64           `json:"lon"`
	Country    string            `json:"country"`
	State      string            `json:"state"`
}
