package service

import (
	"context"

	gocache "github.com/patrickmn/go-cache"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"github.com/mydestination/backend/internal/app/appconfig"
	"github.com/mydestination/backend/internal/constant"
	"github.com/mydestination/backend/internal/model"
	"github.com/mydestination/backend/internal/pkg/mderr"
	"github.com/mydestination/backend/internal/repo"
)

type scoreStore interface {
	GetScore(ctx context.Context, activityId string) (int, error)
	IncrementScore(ctx context.Context, activityId string, delta int) error
}

type activityGetter interface {
	GetActivityById(ctx context.Context, activityId string) (*model.Activity, error)
	GetActivitiesByUserId(ctx context.Context, userId string) ([]*model.Activity, error)
}

type Score struct {
	store      scoreStore
	activities activityGetter

	// liked remembers viewer|activity pairs for the session window. There is no
	// per-viewer like ledger in storage; this guard is in-process only and
	// resets on restart, the same way the original app's UI flag reset on
	// relaunch.
	liked *gocache.Cache
}

func NewScore(scoreRepo *repo.Score, activityRepo *repo.Activity, conf *appconfig.Config) *Score {
	return &Score{
		store:      scoreRepo,
		activities: activityRepo,
		liked:      gocache.New(conf.LikeSessionTTL, conf.LikeSessionTTL),
	}
}

// GetScore returns the activity's current score. An activity without a score
// row simply has not been liked yet; absence maps to 0, not an error.
func (s *Score) GetScore(ctx context.Context, activityId string) (int, error) {
	score, err := s.store.GetScore(ctx, activityId)
	if errors.Is(err, mderr.ErrNotFound) {
		return 0, nil
	} else if err != nil {
		return 0, err
	}
	return score, nil
}

// Like increments the activity's score on behalf of viewer. A viewer cannot
// like their own activity, and a given activity at most once per session.
// Deltas are clamped to [1, constant.LikeMaxDelta].
func (s *Score) Like(ctx context.Context, viewer *model.User, activityId string, delta int) error {
	if delta <= 0 {
		return mderr.ErrInvalidReq.Msg("like delta must be positive")
	}
	if delta > constant.LikeMaxDelta {
		delta = constant.LikeMaxDelta
	}

	activity, err := s.activities.GetActivityById(ctx, activityId)
	if err != nil {
		return err
	}
	if activity.UserID == viewer.UserID {
		return mderr.ErrForbidden.Msg("cannot like your own activity")
	}

	key := viewer.UserID + "|" + activityId
	if _, alreadyLiked := s.liked.Get(key); alreadyLiked {
		return mderr.ErrForbidden.Msg("activity already liked in this session")
	}

	if err := s.store.IncrementScore(ctx, activityId, delta); err != nil {
		log.Warn().Err(err).Str("activityId", activityId).Msg("failed to increment score")
		return err
	}
	s.liked.SetDefault(key, struct{}{})

	return nil
}

// GetTotalScoreForUser sums the score of every activity the user owns. Scores
// are resolved per activity; there is no batch join path for this in storage.
func (s *Score) GetTotalScoreForUser(ctx context.Context, userId string) (int, error) {
	activities, err := s.activities.GetActivitiesByUserId(ctx, userId)
	if err != nil {
		return 0, err
	}

	total := 0
	for _, activity := range activities {
		score, err := s.GetScore(ctx, activity.ActivityID)
		if err != nil {
			return 0, err
		}
		total += score
	}
	return total, nil
}
