// Package boardwkr periodically recalculates the leaderboard snapshot so that
// API reads almost always hit a warm cache.
package boardwkr

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"
	"go.uber.org/fx"

	"github.com/mydestination/backend/internal/app/appconfig"
	"github.com/mydestination/backend/internal/service"
)

type refresher interface {
	Refresh(ctx context.Context) error
}

type WorkerDeps struct {
	fx.In
	LeaderboardService *service.Leaderboard
}

type Worker struct {
	// count counts batches worker has completed so far
	count int

	// interval describes the interval in-between different batches of job running
	interval time.Duration

	// timeout bounds a single refresh
	timeout time.Duration

	board refresher
}

func Start(conf *appconfig.Config, deps WorkerDeps, lc fx.Lifecycle) {
	if !conf.WorkerEnabled {
		log.Info().Msg("leaderboard worker is disabled")
		return
	}

	cancel := (&Worker{
		interval: conf.WorkerInterval,
		timeout:  conf.WorkerTimeout,
		board:    deps.LeaderboardService,
	}).do()

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			cancel()
			return nil
		},
	})
}

func (w *Worker) do() context.CancelFunc {
	parent, cancel := context.WithCancel(context.Background())
	go func() {
		for {
			log.Info().
				Int("count", w.count).
				Msg("worker batch started")

			func() {
				ctx, cancel := context.WithTimeout(parent, w.timeout)
				defer cancel()

				if err := w.board.Refresh(ctx); err != nil {
					log.Error().Err(err).Msg("worker failed to refresh leaderboard")
					return
				}
				log.Debug().Int("count", w.count).Msg("worker finished")
			}()

			w.count++

			select {
			case <-parent.Done():
				return
			case <-time.After(w.interval):
			}
		}
	}()

	return cancel
}

func (w *Worker) Count() int {
	return w.count
}
