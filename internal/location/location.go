// Copyright 2025 The OpenWeather MCP Authors. All rights reserved.
// Use of this source code is governed by a Apache-2.0
// license that can be found in the LICENSE file.

// Package location turns free-form location strings into a structured
// descriptor: either a validated coordinate pair or a place-name query.
// Parsing never fails; anything that is not a well-formed, in-range
// coordinate pair degrades to a place-name lookup.
package location

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Kind discriminates the two descriptor variants.
type Kind int

const (
	// KindPlace is a place-name query (possibly empty).
	KindPlace Kind = iota
	// KindCoordinates is a validated latitude/longitude pair.
	KindCoordinates
)

// Descriptor is the parsed form of a location argument. For
// KindCoordinates, Lat and Lon are both set; for KindPlace, Query holds
// the outer-trimmed original string.
//
// Lat and Lon are pointers so a half-formed descriptor built elsewhere
// (not by Parse, which always sets both) is representable and renders
// visibly in Format.
type Descriptor struct {
	Kind  Kind
	Lat   *float64
	Lon   *float64
	Query string
}

// Coordinates builds a coordinate descriptor from a validated pair.
func Coordinates(lat, lon float64) Descriptor {
	return Descriptor{Kind: KindCoordinates, Lat: &lat, Lon: &lon}
}

// Place builds a place-name descriptor.
func Place(query string) Descriptor {
	return Descriptor{Kind: KindPlace, Query: query}
}

var (
	// Labeled form: "lat: 40.7, lon: -74" / "latitude 40.7 longitude -74".
	// The separator between marker and number (colon or whitespace) is
	// optional, so "lat40.7,lon-74" also matches; the two halves are
	// separated by a comma or whitespace.
	labeledPattern = regexp.MustCompile(
		`(?i)^lat(?:itude)?[:\s]?\s*(-?\d+(?:\.\d+)?)[,\s]+lon(?:gitude)?[:\s]?\s*(-?\d+(?:\.\d+)?)$`)

	// Bare pair spanning the entire string: "40.7128,-74.0060" / "40.7 -74".
	barePairPattern = regexp.MustCompile(
		`^(-?\d+(?:\.\d+)?)[,\s]+(-?\d+(?:\.\d+)?)$`)
)

func inRange(lat, lon float64) bool {
	return lat >= -90 && lat <= 90 && lon >= -180 && lon <= 180
}

// Parse converts a raw location string into a Descriptor. The input is
// trimmed of surrounding whitespace, then matched against the labeled
// coordinate form and the bare-pair form, in that order. A match whose
// numbers fall outside geographic bounds is not an error: the whole
// string falls through to a place-name query, preserved verbatim after
// the outer trim. A lone number, or a dangling "lat:" without its
// longitude half, is likewise a place name.
func Parse(input string) Descriptor {
	trimmed := strings.TrimSpace(input)

	for _, re := range []*regexp.Regexp{labeledPattern, barePairPattern} {
		m := re.FindStringSubmatch(trimmed)
		if m == nil {
			continue
		}
		lat, err1 := strconv.ParseFloat(m[1], 64)
		lon, err2 := strconv.ParseFloat(m[2], 64)
		if err1 == nil && err2 == nil && inRange(lat, lon) {
			return Coordinates(lat, lon)
		}
		// Numeric-looking but out of range: treat as a query.
		break
	}

	return Place(trimmed)
}

// Format renders a descriptor for display and logging. Coordinates are
// fixed to four decimal places and joined by ", "; a missing component
// renders the literal "undefined" (kept for compatibility with existing
// consumers of the output). Place names render their query, or "Unknown
// location" when the query is empty.
func Format(d Descriptor) string {
	if d.Kind == KindCoordinates {
		return formatComponent(d.Lat) + ", " + formatComponent(d.Lon)
	}
	if d.Query == "" {
		return "Unknown location"
	}
	return d.Query
}

func formatComponent(v *float64) string {
	if v == nil {
		return "undefined"
	}
	return fmt.Sprintf("%.4f", *v)
}
