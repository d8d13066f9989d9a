package userrepo

import (
	"context"

	"librarymgmt/model"
	"librarymgmt/util/database"
)

type Repo interface {
	Create(ctx context.Context, u *model.User) error
	ByEmail(ctx context.Context, email string) (*model.User, error)
}

type repo struct{ db *database.DB }

func New(db *database.DB) Repo { return &repo{db} }

func (r *repo) Create(ctx context.Context, u *model.User) error {
	return r.db.Pool.QueryRow(ctx, `
		INSERT INTO users(email, hashed_password, is_active, is_superuser)
		VALUES ($1,$2,$3,$4)
		RETURNING id`,
		u.Email, u.HashedPassword, u.IsActive, u.IsSuperuser,
	).Scan(&u.ID)
}

func (r *repo) ByEmail(ctx context.Context, email string) (*model.User, error) {
	u := &model.User{}
	err := r.db.Pool.QueryRow(ctx, `
		SELECT id, email, hashed_password, is_active, is_superuser
		FROM users
		WHERE lower(email) = lower($1)`,
		email,
	).Scan(&u.ID, &u.Email, &u.HashedPassword, &u.IsActive, &u.IsSuperuser)
	if err != nil {
		return nil, err
	}
	return u, nil
}
