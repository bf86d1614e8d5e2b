// Copyright 2025 The OpenWeather MCP Authors. All rights reserved.
// Use of this source code is governed by a Apache-2.0
// license that can be found in the LICENSE file.

// Package owm is a typed client for the OpenWeather data, One Call and
// geocoding APIs. A Client is immutable after construction and safe for
// concurrent use: per-request state (location, units) travels in a Query
// value rather than being set on the client.
package owm

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/sony/gobreaker"

	"github.com/weathertools/openweather-mcp/internal/location"
	"github.com/weathertools/openweather-mcp/internal/units"
)

const (
	defaultDataURL = "https://api.openweathermap.org/data"
	defaultGeoURL  = "https://api.openweathermap.org/geo/1.0"
)

// Query is the immutable per-call request configuration: where to look
// and which measurement system the upstream should report in.
type Query struct {
	Location location.Descriptor
	Units    units.System
}

// APIError is a non-2xx response from the upstream API. Message carries
// the upstream error text verbatim; callers classify it by substring.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("openweather: unexpected status %d", e.Status)
}

// Client talks to the OpenWeather HTTP API. One Client exists per
// credential for the process lifetime (see the session registry); all of
// its fields are set at construction and never mutated.
type Client struct {
	apiKey  string
	dataURL string
	geoURL  string
	http    *http.Client
	breaker *gobreaker.CircuitBreaker
}

// Option configures a Client at construction.
type Option func(*Client)

// WithBaseURLs overrides the data and geocoding API base URLs. Used by
// tests to point the client at a local server.
func WithBaseURLs(dataURL, geoURL string) Option {
	return func(c *Client) {
		c.dataURL = dataURL
		c.geoURL = geoURL
	}
}

// WithHTTPClient overrides the underlying HTTP client.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

// NewClient builds a Client for the given API key.
func NewClient(apiKey string, opts ...Option) *Client {
	c := &Client{
		apiKey:  apiKey,
		dataURL: defaultDataURL,
		geoURL:  defaultGeoURL,
		http:    &http.Client{Timeout: 10 * time.Second},
		breaker: gobreaker.NewCircuitBreaker(gobreaker.Settings{
			Name:        "openweather",
			MaxRequests: 5,
			Interval:    1 * time.Minute,
			Timeout:     2 * time.Minute,
		}),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// get issues one GET, routed through the circuit breaker, and decodes the
// response into out. API error bodies ({"cod": "...", "message": "..."})
// become *APIError with the upstream message preserved. Nothing is
// retried; the first failure surfaces.
func (c *Client) get(ctx context.Context, rawURL string, out any) error {
	body, err := c.breaker.Execute(func() (any, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
		if err != nil {
			return nil, err
		}
		resp, err := c.http.Do(req)
		if err != nil {
			return nil, err
		}
		defer resp.Body.Close()

		data, err := io.ReadAll(resp.Body)
		if err != nil {
			return nil, err
		}
		if resp.StatusCode != http.StatusOK {
			var apiErr struct {
				Message string `json:"message"`
			}
			_ = json.Unmarshal(data, &apiErr)
			return nil, &APIError{Status: resp.StatusCode, Message: apiErr.Message}
		}
		return data, nil
	})
	if err != nil {
		return err
	}
	return json.Unmarshal(body.([]byte), out)
}

// locationValues encodes a Query's location as request parameters:
// lat/lon for coordinates, q for a place name.
func locationValues(q Query) url.Values {
	v := url.Values{}
	if q.Location.Kind == location.KindCoordinates {
		v.Set("lat", strconv.FormatFloat(*q.Location.Lat, 'f', -1, 64))
		v.Set("lon", strconv.FormatFloat(*q.Location.Lon, 'f', -1, 64))
	} else {
		v.Set("q", q.Location.Query)
	}
	return v
}

func (c *Client) dataEndpoint(version, name string, v url.Values) string {
	v.Set("appid", c.apiKey)
	return fmt.Sprintf("%s/%s/%s?%s", c.dataURL, version, name, v.Encode())
}

func (c *Client) geoEndpoint(name string, v url.Values) string {
	v.Set("appid", c.apiKey)
	return fmt.Sprintf("%s/%s?%s", c.geoURL, name, v.Encode())
}

// CurrentWeather fetches current conditions for the query's location.
func (c *Client) CurrentWeather(ctx context.Context, q Query) (*CurrentWeather, error) {
	v := locationValues(q)
	v.Set("units", string(q.Units))
	var out CurrentWeather
	if err := c.get(ctx, c.dataEndpoint("2.5", "weather", v), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Forecast fetches up to count 3-hour forecast steps (max 40, covering
// five days) for the query's location.
func (c *Client) Forecast(ctx context.Context, q Query, count int) (*Forecast, error) {
	v := locationValues(q)
	v.Set("units", string(q.Units))
	if count > 0 {
		v.Set("cnt", strconv.Itoa(count))
	}
	var out Forecast
	if err := c.get(ctx, c.dataEndpoint("2.5", "forecast", v), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// OneCall fetches the combined One Call 3.0 payload. The endpoint only
// accepts coordinates; a place-name query is resolved through the
// geocoding API first, so callers still observe a single logical fetch.
// exclude names response blocks to omit (current, minutely, hourly,
// daily, alerts).
func (c *Client) OneCall(ctx context.Context, q Query, exclude []string) (*OneCall, error) {
	lat, lon, err := c.resolveCoordinates(ctx, q)
	if err != nil {
		return nil, err
	}
	v := url.Values{}
	v.Set("lat", strconv.FormatFloat(lat, 'f', -1, 64))
	v.Set("lon", strconv.FormatFloat(lon, 'f', -1, 64))
	v.Set("units", string(q.Units))
	if len(exclude) > 0 {
		ex := exclude[0]
		for _, e := range exclude[1:] {
			ex += "," + e
		}
		v.Set("exclude", ex)
	}
	var out OneCall
	if err := c.get(ctx, c.dataEndpoint("3.0", "onecall", v), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// AirPollution fetches the current air-quality reading. Like OneCall,
// the endpoint is coordinate-only and place names are resolved first.
func (c *Client) AirPollution(ctx context.Context, q Query) (*AirPollution, error) {
	lat, lon, err := c.resolveCoordinates(ctx, q)
	if err != nil {
		return nil, err
	}
	v := url.Values{}
	v.Set("lat", strconv.FormatFloat(lat, 'f', -1, 64))
	v.Set("lon", strconv.FormatFloat(lon, 'f', -1, 64))
	var out AirPollution
	if err := c.get(ctx, c.dataEndpoint("2.5", "air_pollution", v), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Geocode resolves a place-name query to up to limit candidate locations.
func (c *Client) Geocode(ctx context.Context, query string, limit int) ([]GeoResult, error) {
	v := url.Values{}
	v.Set("q", query)
	if limit > 0 {
		v.Set("limit", strconv.Itoa(limit))
	}
	var out []GeoResult
	if err := c.get(ctx, c.geoEndpoint("direct", v), &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ReverseGeocode resolves coordinates to up to limit named places.
func (c *Client) ReverseGeocode(ctx context.Context, lat, lon float64, limit int) ([]GeoResult, error) {
	v := url.Values{}
	v.Set("lat", strconv.FormatFloat(lat, 'f', -1, 64))
	v.Set("lon", strconv.FormatFloat(lon, 'f', -1, 64))
	if limit > 0 {
		v.Set("limit", strconv.Itoa(limit))
	}
	var out []GeoResult
	if err := c.get(ctx, c.geoEndpoint("reverse", v), &out); err != nil {
		return nil, err
	}
	return out, nil
}

// resolveCoordinates returns the query's coordinates, geocoding a
// place-name query when necessary. An unresolvable place reports the
// upstream "city not found" phrasing so it classifies like a direct
// not-found response.
func (c *Client) resolveCoordinates(ctx context.Context, q Query) (float64, float64, error) {
	if q.Location.Kind == location.KindCoordinates {
		return *q.Location.Lat, *q.Location.Lon, nil
	}
	results, err := c.Geocode(ctx, q.Location.Query, 1)
	if err != nil {
		return 0, 0, err
	}
	if len(results) == 0 {
		return 0, 0, &APIError{Status: http.StatusNotFound, Message: "city not found"}
	}
	return results[0].Lat, results[0].Lon, nil
}
