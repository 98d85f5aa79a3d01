package app

import (
	"os"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"

	"github.com/mydestination/backend/cmd/app/server"
	"github.com/mydestination/backend/internal/pkg/bininfo"
)

func Run() {
	app := &cli.App{
		Name:        "mdbackend",
		Description: "The myDestination backend. Built with Go, fiber, bun and go.uber.org/fx. Stores activities and users in PostgreSQL and keeps leaderboard snapshots in Redis.",
		Version:     bininfo.Version,
		Commands: []*cli.Command{
			server.Command(),
		},
	}
	if err := app.Run(os.Args); err != nil {
		log.Fatal().Err(err).Msg("failed to run app")
	}
}
