// Package geo holds the pure route math shared by activity creation and the
// map viewport endpoints: great-circle distance, average speed and the
// centroid/span pair used to frame a recorded route on a map.
package geo

import (
	"github.com/golang/geo/s2"
)

const (
	// EarthRadiusKm is Earth's mean radius in kilometers.
	EarthRadiusKm = 6371.0

	// SpanPadding is added to both viewport axes so that a route whose points
	// all coincide still produces a non-zero viewport.
	SpanPadding = 0.0005
)

// Coord is a single GPS sample of a recorded route, in degrees.
type Coord struct {
	Latitude  float64 `json:"latitude" validate:"gte=-90,lte=90"`
	Longitude float64 `json:"longitude" validate:"gte=-180,lte=180"`
}

// Viewport frames a route on a map: the arithmetic-mean center of all samples
// and the coordinate extent per axis, padded by SpanPadding.
type Viewport struct {
	CenterLat float64 `json:"centerLat"`
	CenterLon float64 `json:"centerLon"`
	LatSpan   float64 `json:"latSpan"`
	LonSpan   float64 `json:"lonSpan"`
}

// DistanceKm returns the great-circle distance between two samples in kilometers.
func DistanceKm(a, b Coord) float64 {
	p1 := s2.LatLngFromDegrees(a.Latitude, a.Longitude)
	p2 := s2.LatLngFromDegrees(b.Latitude, b.Longitude)
	return p1.Distance(p2).Radians() * EarthRadiusKm
}

// TotalDistanceKm sums the great-circle distance over adjacent sample pairs.
// Routes with fewer than two samples cover no distance.
func TotalDistanceKm(route []Coord) float64 {
	total := 0.0
	for i := 1; i < len(route); i++ {
		total += DistanceKm(route[i-1], route[i])
	}
	return total
}

// AverageSpeedKmh derives the average speed from a precomputed distance and a
// duration in minutes. A zero or negative duration yields 0 rather than an error:
// an activity saved the instant it started simply has no meaningful speed.
func AverageSpeedKmh(totalDistanceKm, durationMinutes float64) float64 {
	if durationMinutes <= 0 {
		return 0
	}
	return totalDistanceKm / (durationMinutes / 60)
}

// CentroidSpan computes the map viewport for a route. The second return value
// is false for an empty route: there is nothing to frame, and callers are
// expected to fall back to their default region.
func CentroidSpan(route []Coord) (Viewport, bool) {
	if len(route) == 0 {
		return Viewport{}, false
	}

	sumLat, sumLon := 0.0, 0.0
	minLat, maxLat := route[0].Latitude, route[0].Latitude
	minLon, maxLon := route[0].Longitude, route[0].Longitude
	for _, p := range route {
		sumLat += p.Latitude
		sumLon += p.Longitude
		if p.Latitude < minLat {
			minLat = p.Latitude
		}
		if p.Latitude > maxLat {
			maxLat = p.Latitude
		}
		if p.Longitude < minLon {
			minLon = p.Longitude
		}
		if p.Longitude > maxLon {
			maxLon = p.Longitude
		}
	}

	n := float64(len(route))
	return Viewport{
		CenterLat: sumLat / n,
		CenterLon: sumLon / n,
		LatSpan:   (maxLat - minLat) + SpanPadding,
		LonSpan:   (maxLon - minLon) + SpanPadding,
	}, true
}
