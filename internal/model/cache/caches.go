package cache

import (
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/mydestination/backend/internal/model"
	"github.com/mydestination/backend/internal/pkg/cache"
)

var (
	UserByID *cache.Set[model.User]
	Users    *cache.Singular[[]*model.User]

	Activities   *cache.Singular[[]*model.Activity]
	ActivityByID *cache.Set[model.Activity]

	Leaderboard *cache.Set[model.Leaderboard]

	LastModifiedTime *cache.Set[time.Time]

	once sync.Once
)

func Initialize(client *redis.Client) {
	once.Do(func() {
		cache.Populate(client)
		initializeCaches()
	})
}

func initializeCaches() {
	// user
	UserByID = cache.NewSet[model.User]("user#userId")
	Users = cache.NewSingular[[]*model.User]("users")

	// activity
	Activities = cache.NewSingular[[]*model.Activity]("activities")
	ActivityByID = cache.NewSet[model.Activity]("activity#activityId")

	// leaderboard
	Leaderboard = cache.NewSet[model.Leaderboard]("leaderboard#snapshot")

	// others
	LastModifiedTime = cache.NewSet[time.Time]("lastModifiedTime#key")
}
