package repo

import (
	"context"
	"database/sql"

	"github.com/pkg/errors"
	"github.com/uptrace/bun"

	"github.com/mydestination/backend/internal/model"
	"github.com/mydestination/backend/internal/repo/selector"
)

type User struct {
	db  *bun.DB
	sel selector.S[model.User]
}

func NewUser(db *bun.DB) *User {
	return &User{
		db:  db,
		sel: selector.New[model.User](db),
	}
}

func (r *User) GetUsers(ctx context.Context) ([]*model.User, error) {
	var users []*model.User
	err := r.db.NewSelect().
		Model(&users).
		Order("created_at ASC").
		Scan(ctx)

	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}

	return users, nil
}

func (r *User) GetUserById(ctx context.Context, userId string) (*model.User, error) {
	return r.sel.SelectOne(ctx, func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.Where("user_id = ?", userId)
	})
}

// UpsertUser inserts the profile document on first sign-in and refreshes the
// mutable profile fields on subsequent saves. Only the owning user reaches
// this path; the ownership check lives in the service layer.
func (r *User) UpsertUser(ctx context.Context, user *model.User) error {
	_, err := r.db.NewInsert().
		Model(user).
		On("CONFLICT (user_id) DO UPDATE").
		Set("email = EXCLUDED.email").
		Set("profile_name = EXCLUDED.profile_name").
		Set("profile_image = EXCLUDED.profile_image").
		Set("role = EXCLUDED.role").
		Exec(ctx)
	return err
}
