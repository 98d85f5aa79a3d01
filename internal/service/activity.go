package service

import (
	"context"
	"math"
	"time"

	"github.com/rs/xid"

	"github.com/mydestination/backend/internal/model"
	"github.com/mydestination/backend/internal/model/cache"
	"github.com/mydestination/backend/internal/pkg/geo"
	"github.com/mydestination/backend/internal/repo"
)

type Activity struct {
	ActivityRepo *repo.Activity
	ScoreService *Score
}

func NewActivity(activityRepo *repo.Activity, scoreService *Score) *Activity {
	return &Activity{
		ActivityRepo: activityRepo,
		ScoreService: scoreService,
	}
}

// Cache: (singular) activities, 5 min; records last modified time.
// The returned slice is shared with the cache; callers must treat it as read-only.
func (s *Activity) GetActivities(ctx context.Context) ([]*model.Activity, error) {
	var activities []*model.Activity
	err := cache.Activities.Get(&activities)
	if err == nil {
		return activities, nil
	}

	activities, err = s.ActivityRepo.GetActivities(ctx)
	if err != nil {
		return nil, err
	}
	cache.Activities.Set(activities, time.Minute*5)
	cache.LastModifiedTime.Set("[activities]", time.Now(), 0)
	return activities, nil
}

// LastModified reports when the activity listing last changed, recorded at
// cache fill and creation time.
func (s *Activity) LastModified() (time.Time, error) {
	var lastModified time.Time
	err := cache.LastModifiedTime.Get("[activities]", &lastModified)
	return lastModified, err
}

// Cache: activity#activityId:{activityId}, 24 hrs. Activities are immutable
// once created, so the entry never needs invalidation.
func (s *Activity) GetActivityById(ctx context.Context, activityId string) (*model.Activity, error) {
	var activity model.Activity
	err := cache.ActivityByID.Get(activityId, &activity)
	if err == nil {
		return &activity, nil
	}

	dbActivity, err := s.ActivityRepo.GetActivityById(ctx, activityId)
	if err != nil {
		return nil, err
	}
	go cache.ActivityByID.Set(activityId, *dbActivity, time.Hour*24)
	return dbActivity, nil
}

// GetActivityDetail composes the detail-screen payload: the activity itself,
// its current score and the viewport framing its route. An empty route yields
// no viewport; the client falls back to its default region.
func (s *Activity) GetActivityDetail(ctx context.Context, activityId string) (*model.ActivityDetail, error) {
	activity, err := s.GetActivityById(ctx, activityId)
	if err != nil {
		return nil, err
	}

	score, err := s.ScoreService.GetScore(ctx, activityId)
	if err != nil {
		return nil, err
	}

	detail := &model.ActivityDetail{
		Activity: activity,
		Score:    score,
	}
	if viewport, ok := geo.CentroidSpan(activity.Route); ok {
		detail.Viewport = &viewport
	}
	return detail, nil
}

func (s *Activity) GetUserActivities(ctx context.Context, userId string) ([]*model.Activity, error) {
	return s.ActivityRepo.GetActivitiesByUserId(ctx, userId)
}

// CreateActivity derives the stored stats from the recorded route and timing,
// then persists the activity together with its zeroed score row. The client
// used to precompute these; deriving them here keeps them consistent no matter
// what the client sends.
func (s *Activity) CreateActivity(ctx context.Context, activity *model.Activity) (*model.Activity, error) {
	activity.ActivityID = xid.New().String()

	durationMinutes := activity.EndTime.Sub(activity.StartTime).Minutes()
	if durationMinutes < 0 {
		durationMinutes = 0
	}
	activity.DurationMinutes = math.Floor(durationMinutes)
	activity.TotalDistanceKm = geo.TotalDistanceKm(activity.Route)
	activity.AverageSpeedKmh = geo.AverageSpeedKmh(activity.TotalDistanceKm, activity.DurationMinutes)

	if err := s.ActivityRepo.CreateActivity(ctx, activity); err != nil {
		return nil, err
	}

	cache.Activities.Delete()
	cache.LastModifiedTime.Set("[activities]", time.Now(), 0)
	return activity, nil
}
