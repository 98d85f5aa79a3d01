package controller

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/fx"

	"github.com/mydestination/backend/internal/model"
	"github.com/mydestination/backend/internal/model/types"
	"github.com/mydestination/backend/internal/pkg/mderr"
	"github.com/mydestination/backend/internal/pkg/mdid"
	"github.com/mydestination/backend/internal/server/svr"
	"github.com/mydestination/backend/internal/service"
	"github.com/mydestination/backend/internal/util/rekuest"
)

type User struct {
	fx.In

	UserService     *service.User
	ActivityService *service.Activity
}

func RegisterUser(v1 *svr.V1, c User) {
	v1.Get("/users", c.GetUsers)
	v1.Post("/users", c.CreateUser)
	v1.Get("/users/:userId", sanitizeUserID, c.GetUserById)
	v1.Put("/users/:userId", sanitizeUserID, c.SaveProfile)
	v1.Get("/users/:userId/activities", sanitizeUserID, c.GetUserActivities)
}

func sanitizeUserID(ctx *fiber.Ctx) error {
	if strings.TrimSpace(ctx.Params("userId")) == "" {
		return mderr.ErrInvalidReq.Msg("invalid or missing userId")
	}
	return ctx.Next()
}

func (c *User) GetUsers(ctx *fiber.Ctx) error {
	users, err := c.UserService.GetUsers(ctx.UserContext())
	if err != nil {
		return err
	}

	return ctx.JSON(users)
}

func (c *User) GetUserById(ctx *fiber.Ctx) error {
	userId := ctx.Params("userId")

	profile, err := c.UserService.GetUserProfile(ctx.UserContext(), userId)
	if err != nil {
		return err
	}

	return ctx.JSON(profile)
}

// CreateUser registers the profile document right after the identity
// provider's sign-up flow completes. The id is whatever the provider issued;
// repeating the call refreshes the profile fields.
func (c *User) CreateUser(ctx *fiber.Ctx) error {
	requesterId := mdid.Extract(ctx)
	if requesterId == "" {
		return mderr.ErrInvalidReq.Msg("missing user identity in request")
	}

	var request types.SaveProfileRequest
	if err := rekuest.ValidBody(ctx, &request); err != nil {
		return err
	}

	user, err := c.UserService.SaveProfile(ctx.UserContext(), &model.User{
		UserID:       requesterId,
		Email:        request.Email,
		ProfileName:  request.ProfileName,
		ProfileImage: request.ProfileImage,
		Role:         request.Role,
	})
	if err != nil {
		return err
	}

	mdid.Inject(ctx, user.UserID)
	return ctx.Status(fiber.StatusCreated).JSON(user)
}

// SaveProfile upserts the caller's own profile. The row is keyed on the
// identity carried by the request; a mismatching path segment is rejected
// rather than silently redirected.
func (c *User) SaveProfile(ctx *fiber.Ctx) error {
	requesterId := mdid.Extract(ctx)
	if requesterId == "" {
		return mderr.ErrInvalidReq.Msg("missing user identity in request")
	}
	if requesterId != ctx.Params("userId") {
		return mderr.ErrForbidden.Msg("cannot modify another user's profile")
	}

	var request types.SaveProfileRequest
	if err := rekuest.ValidBody(ctx, &request); err != nil {
		return err
	}

	user, err := c.UserService.SaveProfile(ctx.UserContext(), &model.User{
		UserID:       requesterId,
		Email:        request.Email,
		ProfileName:  request.ProfileName,
		ProfileImage: request.ProfileImage,
		Role:         request.Role,
	})
	if err != nil {
		return err
	}

	mdid.Inject(ctx, user.UserID)
	return ctx.JSON(user)
}

func (c *User) GetUserActivities(ctx *fiber.Ctx) error {
	activities, err := c.ActivityService.GetUserActivities(ctx.UserContext(), ctx.Params("userId"))
	if err != nil {
		return err
	}

	return ctx.JSON(activities)
}
