package repo

import (
	"context"
	"database/sql"

	"github.com/pkg/errors"
	"github.com/uptrace/bun"

	"github.com/mydestination/backend/internal/model"
	"github.com/mydestination/backend/internal/pkg/mderr"
)

type Score struct {
	db *bun.DB
}

func NewScore(db *bun.DB) *Score {
	return &Score{db: db}
}

func (r *Score) GetScore(ctx context.Context, activityId string) (int, error) {
	var score model.Score
	err := r.db.NewSelect().
		Model(&score).
		Where("activity_id = ?", activityId).
		Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, mderr.ErrNotFound
	} else if err != nil {
		return 0, err
	}

	return score.Score, nil
}

func (r *Score) GetScores(ctx context.Context) ([]*model.Score, error) {
	var scores []*model.Score
	err := r.db.NewSelect().
		Model(&scores).
		Scan(ctx)

	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}

	return scores, nil
}

// IncrementScore adds delta to the activity's counter in a single statement.
// The counter update happens entirely inside the database, so concurrent likes
// against the same activity cannot lose an update.
func (r *Score) IncrementScore(ctx context.Context, activityId string, delta int) error {
	_, err := r.db.NewInsert().
		Model(&model.Score{ActivityID: activityId, Score: delta}).
		On("CONFLICT (activity_id) DO UPDATE").
		Set("score = s.score + EXCLUDED.score").
		Exec(ctx)
	return err
}
