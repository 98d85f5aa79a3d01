package repo

import (
	"context"
	"database/sql"

	"github.com/pkg/errors"
	"github.com/uptrace/bun"

	"github.com/mydestination/backend/internal/model"
	"github.com/mydestination/backend/internal/repo/selector"
)

type Activity struct {
	db  *bun.DB
	sel selector.S[model.Activity]
}

func NewActivity(db *bun.DB) *Activity {
	return &Activity{
		db:  db,
		sel: selector.New[model.Activity](db),
	}
}

func (r *Activity) GetActivities(ctx context.Context) ([]*model.Activity, error) {
	var activities []*model.Activity
	err := r.db.NewSelect().
		Model(&activities).
		Order("created_at DESC").
		Scan(ctx)

	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}

	return activities, nil
}

func (r *Activity) GetActivityById(ctx context.Context, activityId string) (*model.Activity, error) {
	return r.sel.SelectOne(ctx, func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.Where("activity_id = ?", activityId)
	})
}

func (r *Activity) GetActivitiesByUserId(ctx context.Context, userId string) ([]*model.Activity, error) {
	return r.sel.SelectMany(ctx, func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.Where("user_id = ?", userId).Order("created_at DESC")
	})
}

// CreateActivity inserts the activity and its zeroed score row in one
// transaction, so an activity can never exist without a score counter.
func (r *Activity) CreateActivity(ctx context.Context, activity *model.Activity) error {
	return r.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		if _, err := tx.NewInsert().Model(activity).Exec(ctx); err != nil {
			return err
		}
		score := &model.Score{
			ActivityID: activity.ActivityID,
			Score:      0,
		}
		_, err := tx.NewInsert().Model(score).Exec(ctx)
		return err
	})
}
