package service

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/mydestination/backend/internal/model"
	"github.com/mydestination/backend/internal/model/cache"
	"github.com/mydestination/backend/internal/pkg/mderr"
	"github.com/mydestination/backend/internal/pkg/mdid"
	"github.com/mydestination/backend/internal/repo"
)

type User struct {
	UserRepo     *repo.User
	ActivityRepo *repo.Activity
	ScoreService *Score
}

func NewUser(userRepo *repo.User, activityRepo *repo.Activity, scoreService *Score) *User {
	return &User{
		UserRepo:     userRepo,
		ActivityRepo: activityRepo,
		ScoreService: scoreService,
	}
}

// Cache: (singular) users, 5 min.
// The returned slice is shared with the cache; callers must treat it as read-only.
func (s *User) GetUsers(ctx context.Context) ([]*model.User, error) {
	var users []*model.User
	err := cache.Users.Get(&users)
	if err == nil {
		return users, nil
	}

	users, err = s.UserRepo.GetUsers(ctx)
	if err != nil {
		return nil, err
	}
	cache.Users.Set(users, time.Minute*5)
	return users, nil
}

// Cache: user#userId:{userId}, 24 hrs
func (s *User) GetUserById(ctx context.Context, userId string) (*model.User, error) {
	var user model.User
	err := cache.UserByID.Get(userId, &user)
	if err == nil {
		return &user, nil
	}

	dbUser, err := s.UserRepo.GetUserById(ctx, userId)
	if err != nil {
		return nil, err
	}
	go cache.UserByID.Set(userId, *dbUser, time.Hour*24)
	return dbUser, nil
}

// GetUserProfile assembles the profile-screen payload: the user, their
// activities and the summed score across those activities.
func (s *User) GetUserProfile(ctx context.Context, userId string) (*model.UserWithScore, error) {
	user, err := s.GetUserById(ctx, userId)
	if err != nil {
		return nil, err
	}

	activities, err := s.ActivityRepo.GetActivitiesByUserId(ctx, userId)
	if err != nil {
		return nil, err
	}
	user.Activities = activities

	total, err := s.ScoreService.GetTotalScoreForUser(ctx, userId)
	if err != nil {
		return nil, err
	}

	return &model.UserWithScore{
		User:       user,
		TotalScore: total,
	}, nil
}

// SaveProfile upserts the user's own profile document. The write path is
// keyed on the identity extracted from the request, never on the payload, so
// a user can only ever touch their own row.
func (s *User) SaveProfile(ctx context.Context, user *model.User) (*model.User, error) {
	if user.UserID == "" {
		return nil, mderr.ErrInvalidReq.Msg("user id is required")
	}

	if err := s.UserRepo.UpsertUser(ctx, user); err != nil {
		return nil, err
	}

	cache.Users.Delete()
	if err := cache.UserByID.Delete(user.UserID); err != nil {
		log.Warn().Err(err).Str("userId", user.UserID).Msg("failed to invalidate user cache")
	}
	return s.UserRepo.GetUserById(ctx, user.UserID)
}

// GetUserFromRequest resolves the requesting user from the request identity.
func (s *User) GetUserFromRequest(ctx *fiber.Ctx) (*model.User, error) {
	userId := mdid.Extract(ctx)
	if userId == "" {
		return nil, mderr.ErrInvalidReq.Msg("missing user identity in request")
	}

	user, err := s.GetUserById(ctx.UserContext(), userId)
	if err != nil {
		return nil, mderr.ErrInvalidReq.Msg("unknown user identity")
	}
	return user, nil
}
