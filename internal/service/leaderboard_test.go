package service

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mydestination/backend/internal/model"
)

func user(id, name string) *model.User {
	return &model.User{UserID: id, ProfileName: name}
}

func activity(id, userId string) *model.Activity {
	return &model.Activity{ActivityID: id, UserID: userId}
}

func TestBuildLeaderboardOrdering(t *testing.T) {
	activities := []*model.Activity{
		activity("act-1", "alice"),
		activity("act-2", "bob"),
		activity("act-3", "carol"),
	}
	scores := map[string]model.ScoreValue{
		"act-1": model.ScalarScore(10),
		"act-2": model.ScalarScore(0),
		"act-3": model.ScalarScore(5),
	}
	users := []*model.User{
		user("alice", "Alice"),
		user("bob", "Bob"),
		user("carol", "Carol"),
	}

	board := BuildLeaderboard(activities, scores, users)

	assert.Len(t, board.TopThree, 3)
	assert.Equal(t, "alice", board.TopThree[0].UserID)
	assert.Equal(t, "carol", board.TopThree[1].UserID)
	assert.Equal(t, "bob", board.TopThree[2].UserID)
	assert.Equal(t, 10, board.TopThree[0].TotalScore)
	assert.Empty(t, board.Scored)
	assert.Empty(t, board.Unscored)
}

func TestBuildLeaderboardSumsPerOwner(t *testing.T) {
	activities := []*model.Activity{
		activity("act-1", "alice"),
		activity("act-2", "alice"),
		activity("act-3", "bob"),
	}
	scores := map[string]model.ScoreValue{
		"act-1": model.ScalarScore(3),
		"act-2": model.ScoreEntries(1, 2, 4),
		"act-3": model.ScalarScore(8),
	}
	users := []*model.User{
		user("alice", "Alice"),
		user("bob", "Bob"),
	}

	board := BuildLeaderboard(activities, scores, users)

	assert.Equal(t, "alice", board.TopThree[0].UserID)
	assert.Equal(t, 10, board.TopThree[0].TotalScore)
	assert.Equal(t, 8, board.TopThree[1].TotalScore)
}

func TestBuildLeaderboardBuckets(t *testing.T) {
	activities := []*model.Activity{
		activity("act-1", "u1"),
		activity("act-2", "u2"),
		activity("act-3", "u3"),
		activity("act-4", "u4"),
	}
	scores := map[string]model.ScoreValue{
		"act-1": model.ScalarScore(9),
		"act-2": model.ScalarScore(7),
		"act-3": model.ScalarScore(5),
		"act-4": model.ScalarScore(3),
	}
	users := []*model.User{
		user("u1", "One"),
		user("u2", "Two"),
		user("u3", "Three"),
		user("u4", "Four"),
		user("u5", "Five"),
		user("u6", "Six"),
	}

	board := BuildLeaderboard(activities, scores, users)

	// first three always fill the podium, the rest split on score > 0
	assert.Len(t, board.TopThree, 3)
	assert.Len(t, board.Scored, 1)
	assert.Equal(t, "u4", board.Scored[0].UserID)
	assert.Len(t, board.Unscored, 2)
	assert.Equal(t, "u5", board.Unscored[0].UserID)
	assert.Equal(t, "u6", board.Unscored[1].UserID)
}

func TestBuildLeaderboardStableTies(t *testing.T) {
	users := []*model.User{
		user("u1", "One"),
		user("u2", "Two"),
		user("u3", "Three"),
		user("u4", "Four"),
	}

	board := BuildLeaderboard(nil, nil, users)

	// all zero: enumeration order is preserved throughout
	assert.Equal(t, "u1", board.TopThree[0].UserID)
	assert.Equal(t, "u2", board.TopThree[1].UserID)
	assert.Equal(t, "u3", board.TopThree[2].UserID)
	assert.Equal(t, "u4", board.Unscored[0].UserID)
}

func TestBuildLeaderboardUnknownOwner(t *testing.T) {
	activities := []*model.Activity{
		activity("act-1", "ghost"),
	}
	scores := map[string]model.ScoreValue{
		"act-1": model.ScalarScore(4),
	}
	users := []*model.User{
		user("alice", "Alice"),
	}

	board := BuildLeaderboard(activities, scores, users)

	assert.Len(t, board.TopThree, 2)
	assert.Equal(t, "ghost", board.TopThree[0].UserID)
	assert.Equal(t, "Unknown User", board.TopThree[0].ProfileName)
	assert.Equal(t, 4, board.TopThree[0].TotalScore)
	assert.Equal(t, "alice", board.TopThree[1].UserID)
}

type heldLock struct {
	tryCalls    int
	unlockCalls int
}

func (l *heldLock) TryLockContext(ctx context.Context) error {
	l.tryCalls++
	return errors.New("lock already taken")
}

func (l *heldLock) UnlockContext(ctx context.Context) (bool, error) {
	l.unlockCalls++
	return false, nil
}

func TestRefreshSkipsWhenLockHeld(t *testing.T) {
	// nil repos: a refresh running elsewhere must return before touching
	// storage or the cache
	svc := &Leaderboard{lock: &heldLock{}}

	err := svc.Refresh(context.Background())
	require.NoError(t, err)

	lock := svc.lock.(*heldLock)
	assert.Equal(t, 1, lock.tryCalls)
	assert.Zero(t, lock.unlockCalls, "a lock that was never acquired must not be released")
}

func TestBuildLeaderboardEmpty(t *testing.T) {
	board := BuildLeaderboard(nil, nil, nil)

	assert.NotNil(t, board.TopThree)
	assert.Empty(t, board.TopThree)
	assert.Empty(t, board.Scored)
	assert.Empty(t, board.Unscored)
	assert.False(t, board.GeneratedAt.IsZero())
}
