package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTotalDistanceKm(t *testing.T) {
	t.Run("EmptyAndSingleRoutes", func(t *testing.T) {
		assert.Zero(t, TotalDistanceKm(nil))
		assert.Zero(t, TotalDistanceKm([]Coord{}))
		assert.Zero(t, TotalDistanceKm([]Coord{{Latitude: -25.7479, Longitude: 28.2293}}))
	})

	t.Run("SumsAdjacentPairs", func(t *testing.T) {
		route := []Coord{
			{Latitude: 0, Longitude: 0},
			{Latitude: 0, Longitude: 1},
			{Latitude: 1, Longitude: 1},
		}

		want := DistanceKm(route[0], route[1]) + DistanceKm(route[1], route[2])
		assert.InDelta(t, want, TotalDistanceKm(route), 1e-9)

		// one degree of arc is roughly 111 km on a 6371 km sphere
		assert.InDelta(t, 111.19, DistanceKm(route[0], route[1]), 0.5)
	})

	t.Run("MonotonicUnderAppend", func(t *testing.T) {
		route := []Coord{
			{Latitude: 51.5007, Longitude: -0.1246},
			{Latitude: 51.5033, Longitude: -0.1195},
			{Latitude: 51.5081, Longitude: -0.0759},
			{Latitude: 51.5138, Longitude: -0.0984},
		}

		prev := 0.0
		for i := range route {
			cur := TotalDistanceKm(route[:i+1])
			assert.GreaterOrEqual(t, cur, prev, "appending a sample must never decrease total distance")
			prev = cur
		}
	})

	t.Run("CoincidingPoints", func(t *testing.T) {
		p := Coord{Latitude: 47.6062, Longitude: -122.3321}
		assert.Zero(t, TotalDistanceKm([]Coord{p, p, p}))
	})
}

func TestAverageSpeedKmh(t *testing.T) {
	tests := []struct {
		name            string
		distanceKm      float64
		durationMinutes float64
		want            float64
	}{
		{"ThirtyMinuteFiveKm", 5, 30, 10},
		{"ZeroDuration", 12.3, 0, 0},
		{"NegativeDuration", 12.3, -5, 0},
		{"ZeroDistance", 0, 45, 0},
		{"OneHour", 21.0975, 60, 21.0975},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, AverageSpeedKmh(tt.distanceKm, tt.durationMinutes), 1e-9)
		})
	}
}

func TestCentroidSpan(t *testing.T) {
	t.Run("EmptyRouteHasNoViewport", func(t *testing.T) {
		_, ok := CentroidSpan(nil)
		assert.False(t, ok)
	})

	t.Run("MeanCenterAndPaddedSpan", func(t *testing.T) {
		route := []Coord{
			{Latitude: 0, Longitude: 0},
			{Latitude: 0, Longitude: 1},
			{Latitude: 1, Longitude: 1},
		}

		vp, ok := CentroidSpan(route)
		assert.True(t, ok)
		assert.InDelta(t, 1.0/3.0, vp.CenterLat, 1e-9)
		assert.InDelta(t, 2.0/3.0, vp.CenterLon, 1e-9)
		assert.InDelta(t, 1+SpanPadding, vp.LatSpan, 1e-9)
		assert.InDelta(t, 1+SpanPadding, vp.LonSpan, 1e-9)
	})

	t.Run("SinglePointStillFramable", func(t *testing.T) {
		vp, ok := CentroidSpan([]Coord{{Latitude: -25.7479, Longitude: 28.2293}})
		assert.True(t, ok)
		assert.InDelta(t, -25.7479, vp.CenterLat, 1e-9)
		assert.InDelta(t, 28.2293, vp.CenterLon, 1e-9)
		assert.InDelta(t, SpanPadding, vp.LatSpan, 1e-9)
		assert.InDelta(t, SpanPadding, vp.LonSpan, 1e-9)
	})
}
