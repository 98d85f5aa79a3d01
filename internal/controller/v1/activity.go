package controller

import (
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/fx"

	"github.com/mydestination/backend/internal/model"
	"github.com/mydestination/backend/internal/model/types"
	"github.com/mydestination/backend/internal/pkg/mderr"
	"github.com/mydestination/backend/internal/server/svr"
	"github.com/mydestination/backend/internal/service"
	"github.com/mydestination/backend/internal/util/rekuest"
)

type Activity struct {
	fx.In

	ActivityService *service.Activity
	ScoreService    *service.Score
	UserService     *service.User
}

func RegisterActivity(v1 *svr.V1, c Activity) {
	v1.Get("/activities", c.GetActivities)
	v1.Post("/activities", c.CreateActivity)
	v1.Get("/activities/:activityId", sanitizeActivityID, c.GetActivityById)
	v1.Get("/activities/:activityId/score", sanitizeActivityID, c.GetScore)
	v1.Post("/activities/:activityId/score/like", sanitizeActivityID, c.LikeActivity)
}

func sanitizeActivityID(ctx *fiber.Ctx) error {
	if strings.TrimSpace(ctx.Params("activityId")) == "" {
		return mderr.ErrInvalidReq.Msg("invalid or missing activityId")
	}
	return ctx.Next()
}

func (c *Activity) GetActivities(ctx *fiber.Ctx) error {
	activities, err := c.ActivityService.GetActivities(ctx.UserContext())
	if err != nil {
		return err
	}

	if lastModified, err := c.ActivityService.LastModified(); err == nil {
		ctx.Set(fiber.HeaderLastModified, lastModified.UTC().Format(http.TimeFormat))
	}

	return ctx.JSON(activities)
}

func (c *Activity) GetActivityById(ctx *fiber.Ctx) error {
	activityId := ctx.Params("activityId")

	detail, err := c.ActivityService.GetActivityDetail(ctx.UserContext(), activityId)
	if err != nil {
		return err
	}

	return ctx.JSON(detail)
}

func (c *Activity) CreateActivity(ctx *fiber.Ctx) error {
	owner, err := c.UserService.GetUserFromRequest(ctx)
	if err != nil {
		return err
	}

	var request types.CreateActivityRequest
	if err := rekuest.ValidBody(ctx, &request); err != nil {
		return err
	}

	activity, err := c.ActivityService.CreateActivity(ctx.UserContext(), &model.Activity{
		UserID:      owner.UserID,
		Name:        request.Name,
		Description: request.Description,
		Location:    request.Location,
		Category:    request.Category,
		Difficulty:  request.Difficulty,
		Route:       request.Route,
		StartTime:   request.StartTime,
		EndTime:     request.EndTime,
	})
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusCreated).JSON(activity)
}

func (c *Activity) GetScore(ctx *fiber.Ctx) error {
	activityId := ctx.Params("activityId")

	score, err := c.ScoreService.GetScore(ctx.UserContext(), activityId)
	if err != nil {
		return err
	}

	return ctx.JSON(fiber.Map{
		"activityId": activityId,
		"score":      score,
	})
}

func (c *Activity) LikeActivity(ctx *fiber.Ctx) error {
	viewer, err := c.UserService.GetUserFromRequest(ctx)
	if err != nil {
		return err
	}

	var request types.LikeRequest
	if len(ctx.Body()) > 0 {
		if err := rekuest.ValidBody(ctx, &request); err != nil {
			return err
		}
	}
	if request.Delta == 0 {
		request.Delta = 1
	}

	activityId := ctx.Params("activityId")
	if err := c.ScoreService.Like(ctx.UserContext(), viewer, activityId, request.Delta); err != nil {
		return err
	}

	score, err := c.ScoreService.GetScore(ctx.UserContext(), activityId)
	if err != nil {
		return err
	}

	return ctx.JSON(fiber.Map{
		"activityId": activityId,
		"score":      score,
	})
}
