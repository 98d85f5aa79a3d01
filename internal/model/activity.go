package model

import (
	"time"

	"github.com/uptrace/bun"

	"github.com/mydestination/backend/internal/pkg/geo"
)

// Activity is a recorded outdoor session. Route keeps the GPS samples in the
// order they were recorded; the derived stats are computed once at creation and
// stored with the activity, the same way the mobile client precomputed them.
type Activity struct {
	bun.BaseModel `bun:"activities,alias:a"`

	ActivityID  string `bun:"activity_id,pk" json:"id"`
	UserID      string `bun:"user_id" json:"userId"`
	Name        string `bun:"name" json:"activityName"`
	Description string `bun:"description" json:"description"`
	Location    string `bun:"location" json:"location"`
	Category    string `bun:"category" json:"type"`
	Difficulty  string `bun:"difficulty" json:"difficulty"`

	Route []geo.Coord `bun:"route,type:jsonb" json:"route"`

	StartTime time.Time `bun:"start_time" json:"startTime"`
	EndTime   time.Time `bun:"end_time" json:"endTime"`

	DurationMinutes float64 `bun:"duration_minutes" json:"durationMinutes"`
	TotalDistanceKm float64 `bun:"total_distance_km" json:"totalDistance"`
	AverageSpeedKmh float64 `bun:"average_speed_kmh" json:"averageSpeed"`

	CreatedAt time.Time `bun:"created_at,nullzero,default:now()" json:"createdAt"`
}

// ActivityDetail is the detail-screen payload: the activity, its current score
// and, when the route is non-empty, the viewport framing it on a map.
type ActivityDetail struct {
	*Activity

	Score    int           `json:"score"`
	Viewport *geo.Viewport `json:"viewport,omitempty"`
}
