package service

import (
	"context"
	"sort"
	"time"

	"github.com/go-redsync/redsync/v4"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"

	"github.com/mydestination/backend/internal/model"
	"github.com/mydestination/backend/internal/model/cache"
	"github.com/mydestination/backend/internal/repo"
)

const (
	leaderboardCacheKey    = "latest"
	leaderboardCacheExpire = time.Minute * 10

	// the podium always shows three slots, scored or not
	topThreeSize = 3

	unknownProfileName = "Unknown User"
)

// refreshLock is the part of *redsync.Mutex the refresh path uses; the
// indirection lets tests stand in a local lock.
type refreshLock interface {
	TryLockContext(ctx context.Context) error
	UnlockContext(ctx context.Context) (bool, error)
}

type Leaderboard struct {
	UserRepo     *repo.User
	ActivityRepo *repo.Activity
	ScoreRepo    *repo.Score

	lock refreshLock
}

func NewLeaderboard(userRepo *repo.User, activityRepo *repo.Activity, scoreRepo *repo.Score, lock *redsync.Redsync) *Leaderboard {
	return &Leaderboard{
		UserRepo:     userRepo,
		ActivityRepo: activityRepo,
		ScoreRepo:    scoreRepo,
		lock:         lock.NewMutex("mutex:leaderboard-refresh", redsync.WithExpiry(5*time.Minute), redsync.WithTries(1)),
	}
}

// Cache: leaderboard#snapshot:latest, 10 min
func (s *Leaderboard) Get(ctx context.Context) (*model.Leaderboard, error) {
	var board model.Leaderboard
	_, err := cache.Leaderboard.MutexGetSet(leaderboardCacheKey, &board, func() (model.Leaderboard, error) {
		return s.calculate(ctx)
	}, leaderboardCacheExpire)
	if err != nil {
		return nil, err
	}
	return &board, nil
}

// Refresh recalculates the snapshot and overwrites the cached copy. The
// distributed lock makes the recompute single-flight across instances; a
// refresh already running elsewhere is not an error, the snapshot it writes
// serves everyone.
func (s *Leaderboard) Refresh(ctx context.Context) error {
	if err := s.lock.TryLockContext(ctx); err != nil {
		log.Info().Err(err).Msg("leaderboard refresh is already running elsewhere; skipping")
		return nil
	}
	defer func() {
		if _, err := s.lock.UnlockContext(ctx); err != nil {
			log.Warn().Err(err).Msg("failed to release leaderboard refresh lock")
		}
	}()

	board, err := s.calculate(ctx)
	if err != nil {
		return err
	}
	return cache.Leaderboard.Set(leaderboardCacheKey, board, leaderboardCacheExpire)
}

func (s *Leaderboard) calculate(ctx context.Context) (model.Leaderboard, error) {
	activities, err := s.ActivityRepo.GetActivities(ctx)
	if err != nil {
		return model.Leaderboard{}, err
	}

	scoreRows, err := s.ScoreRepo.GetScores(ctx)
	if err != nil {
		return model.Leaderboard{}, err
	}
	scores := make(map[string]model.ScoreValue, len(scoreRows))
	for _, row := range scoreRows {
		scores[row.ActivityID] = model.ScalarScore(row.Score)
	}

	users, err := s.UserRepo.GetUsers(ctx)
	if err != nil {
		return model.Leaderboard{}, err
	}

	return *BuildLeaderboard(activities, scores, users), nil
}

// BuildLeaderboard ranks users by the summed score of the activities they own.
// Every known user appears exactly once, including those without activities.
// Owners of activities that have no profile row are still ranked, under a
// placeholder name. Ties keep their relative input order.
func BuildLeaderboard(activities []*model.Activity, scores map[string]model.ScoreValue, users []*model.User) *model.Leaderboard {
	byOwner := lo.GroupBy(activities, func(a *model.Activity) string {
		return a.UserID
	})

	totalFor := func(userId string) int {
		return lo.SumBy(byOwner[userId], func(a *model.Activity) int {
			return scores[a.ActivityID].Total()
		})
	}

	entries := make([]model.LeaderboardEntry, 0, len(users))
	seen := make(map[string]struct{}, len(users))
	for _, user := range users {
		seen[user.UserID] = struct{}{}
		entries = append(entries, model.LeaderboardEntry{
			UserID:      user.UserID,
			ProfileName: user.ProfileName,
			TotalScore:  totalFor(user.UserID),
		})
	}
	for _, activity := range activities {
		if _, ok := seen[activity.UserID]; ok {
			continue
		}
		seen[activity.UserID] = struct{}{}
		entries = append(entries, model.LeaderboardEntry{
			UserID:      activity.UserID,
			ProfileName: unknownProfileName,
			TotalScore:  totalFor(activity.UserID),
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].TotalScore > entries[j].TotalScore
	})

	board := &model.Leaderboard{
		TopThree:    []model.LeaderboardEntry{},
		Scored:      []model.LeaderboardEntry{},
		Unscored:    []model.LeaderboardEntry{},
		GeneratedAt: time.Now(),
	}
	for i, entry := range entries {
		switch {
		case i < topThreeSize:
			board.TopThree = append(board.TopThree, entry)
		case entry.TotalScore > 0:
			board.Scored = append(board.Scored, entry)
		default:
			board.Unscored = append(board.Unscored, entry)
		}
	}
	return board
}
