package controller

import (
	"go.uber.org/fx"
)

func Module() fx.Option {
	return fx.Module("controllers.v1", fx.Invoke(
		RegisterUser,
		RegisterActivity,
		RegisterLeaderboard,
	))
}
