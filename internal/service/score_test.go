package service

import (
	"context"
	"sync"
	"testing"
	"time"

	gocache "github.com/patrickmn/go-cache"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mydestination/backend/internal/model"
	"github.com/mydestination/backend/internal/pkg/mderr"
)

type fakeScoreStore struct {
	mu     sync.Mutex
	scores map[string]int
}

func newFakeScoreStore() *fakeScoreStore {
	return &fakeScoreStore{scores: map[string]int{}}
}

func (f *fakeScoreStore) GetScore(ctx context.Context, activityId string) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	score, ok := f.scores[activityId]
	if !ok {
		return 0, mderr.ErrNotFound
	}
	return score, nil
}

func (f *fakeScoreStore) IncrementScore(ctx context.Context, activityId string, delta int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.scores[activityId] += delta
	return nil
}

type fakeActivityGetter struct {
	activities map[string]*model.Activity
}

func (f *fakeActivityGetter) GetActivityById(ctx context.Context, activityId string) (*model.Activity, error) {
	activity, ok := f.activities[activityId]
	if !ok {
		return nil, mderr.ErrNotFound
	}
	return activity, nil
}

func (f *fakeActivityGetter) GetActivitiesByUserId(ctx context.Context, userId string) ([]*model.Activity, error) {
	var owned []*model.Activity
	for _, activity := range f.activities {
		if activity.UserID == userId {
			owned = append(owned, activity)
		}
	}
	return owned, nil
}

func newTestScore(activities ...*model.Activity) (*Score, *fakeScoreStore) {
	store := newFakeScoreStore()
	getter := &fakeActivityGetter{activities: map[string]*model.Activity{}}
	for _, activity := range activities {
		getter.activities[activity.ActivityID] = activity
	}
	return &Score{
		store:      store,
		activities: getter,
		liked:      gocache.New(time.Hour, time.Hour),
	}, store
}

func TestGetScoreAbsentIsZero(t *testing.T) {
	svc, _ := newTestScore()

	score, err := svc.GetScore(context.Background(), "never-liked")
	require.NoError(t, err)
	assert.Equal(t, 0, score)
}

func TestLikeIncrements(t *testing.T) {
	svc, _ := newTestScore(activity("act-1", "alice"))
	viewer := user("bob", "Bob")

	err := svc.Like(context.Background(), viewer, "act-1", 5)
	require.NoError(t, err)

	score, err := svc.GetScore(context.Background(), "act-1")
	require.NoError(t, err)
	assert.Equal(t, 5, score)
}

func TestLikeOwnActivityDenied(t *testing.T) {
	svc, store := newTestScore(activity("act-1", "alice"))
	owner := user("alice", "Alice")

	err := svc.Like(context.Background(), owner, "act-1", 1)
	require.Error(t, err)
	assert.ErrorIs(t, err, mderr.ErrForbidden)
	assert.Empty(t, store.scores)
}

func TestLikeOncePerSession(t *testing.T) {
	svc, _ := newTestScore(activity("act-1", "alice"))
	viewer := user("bob", "Bob")

	require.NoError(t, svc.Like(context.Background(), viewer, "act-1", 1))

	err := svc.Like(context.Background(), viewer, "act-1", 1)
	require.Error(t, err)
	assert.ErrorIs(t, err, mderr.ErrForbidden)

	score, err := svc.GetScore(context.Background(), "act-1")
	require.NoError(t, err)
	assert.Equal(t, 1, score)

	// another viewer is not affected by bob's session
	require.NoError(t, svc.Like(context.Background(), user("carol", "Carol"), "act-1", 1))
	score, err = svc.GetScore(context.Background(), "act-1")
	require.NoError(t, err)
	assert.Equal(t, 2, score)
}

func TestLikeUnknownActivity(t *testing.T) {
	svc, _ := newTestScore()

	err := svc.Like(context.Background(), user("bob", "Bob"), "missing", 1)
	assert.ErrorIs(t, err, mderr.ErrNotFound)
}

func TestLikeDeltaValidation(t *testing.T) {
	svc, _ := newTestScore(activity("act-1", "alice"))
	viewer := user("bob", "Bob")

	err := svc.Like(context.Background(), viewer, "act-1", 0)
	assert.ErrorIs(t, err, mderr.ErrInvalidReq)

	err = svc.Like(context.Background(), viewer, "act-1", -3)
	assert.ErrorIs(t, err, mderr.ErrInvalidReq)

	// oversized deltas clamp instead of failing
	require.NoError(t, svc.Like(context.Background(), viewer, "act-1", 100))
	score, err := svc.GetScore(context.Background(), "act-1")
	require.NoError(t, err)
	assert.Equal(t, 5, score)
}

func TestConcurrentLikesDoNotLoseUpdates(t *testing.T) {
	svc, _ := newTestScore(activity("act-1", "alice"))

	var wg sync.WaitGroup
	for _, viewerId := range []string{"bob", "carol"} {
		wg.Add(1)
		go func(id string) {
			defer wg.Done()
			assert.NoError(t, svc.Like(context.Background(), user(id, id), "act-1", 1))
		}(viewerId)
	}
	wg.Wait()

	score, err := svc.GetScore(context.Background(), "act-1")
	require.NoError(t, err)
	assert.Equal(t, 2, score)
}

func TestGetTotalScoreForUser(t *testing.T) {
	svc, store := newTestScore(
		activity("act-1", "alice"),
		activity("act-2", "alice"),
		activity("act-3", "bob"),
	)
	store.scores["act-1"] = 3
	store.scores["act-3"] = 9

	total, err := svc.GetTotalScoreForUser(context.Background(), "alice")
	require.NoError(t, err)
	assert.Equal(t, 3, total)

	total, err = svc.GetTotalScoreForUser(context.Background(), "nobody")
	require.NoError(t, err)
	assert.Equal(t, 0, total)
}
