package types

import (
	"time"

	"github.com/mydestination/backend/internal/pkg/geo"
)

type CreateActivityRequest struct {
	Name        string `json:"activityName" validate:"required,lte=120"`
	Description string `json:"description" validate:"lte=2000"`
	Location    string `json:"location" validate:"lte=200"`
	Category    string `json:"type" validate:"required,lte=60"`
	Difficulty  string `json:"difficulty" validate:"lte=60"`

	Route     []geo.Coord `json:"route" validate:"dive"`
	StartTime time.Time   `json:"startTime" validate:"required"`
	EndTime   time.Time   `json:"endTime" validate:"required"`
}
