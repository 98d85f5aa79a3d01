package controller

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/fx"

	"github.com/mydestination/backend/internal/server/svr"
	"github.com/mydestination/backend/internal/service"
)

type Leaderboard struct {
	fx.In

	LeaderboardService *service.Leaderboard
}

func RegisterLeaderboard(v1 *svr.V1, c Leaderboard) {
	v1.Get("/leaderboard", c.GetLeaderboard)
}

func (c *Leaderboard) GetLeaderboard(ctx *fiber.Ctx) error {
	board, err := c.LeaderboardService.Get(ctx.UserContext())
	if err != nil {
		return err
	}

	return ctx.JSON(board)
}
