package repository

import (
	"context"
	"database/sql"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	"github.com/Astemirdum/lending-service/lending/internal/errs"
	"github.com/Astemirdum/lending-service/lending/internal/model"
)

func (r *repository) GetUser(ctx context.Context, id int) (model.User, error) {
	return r.getUser(ctx, id, "")
}

func (r *repository) LockUser(ctx context.Context, id int) (model.User, error) {
	return r.getUser(ctx, id, "FOR UPDATE")
}

func (r *repository) getUser(ctx context.Context, id int, suffix string) (model.User, error) {
	b := qb.Select("id", "name", "role", "library_card_no").
		From(usersTableName).
		Where(sq.Eq{"id": id}).
		Limit(1)
	if suffix != "" {
		b = b.Suffix(suffix)
	}
	query, args, err := b.ToSql()
	if err != nil {
		return model.User{}, err
	}
	var user model.User
	if err := sqlx.GetContext(ctx, r.ext, &user, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.User{}, errs.ErrUserNotFound
		}
		return model.User{}, errors.Wrap(err, "getUser")
	}
	return user, nil
}
