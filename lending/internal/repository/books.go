package repository

import (
	"context"
	"database/sql"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/Astemirdum/lending-service/lending/internal/errs"
	"github.com/Astemirdum/lending-service/lending/internal/model"
)

var bookColumns = []string{"id", "title", "author", "isbn", "category", "total_copies", "available_copies"}

func (r *repository) GetBook(ctx context.Context, id int) (model.Book, error) {
	return r.getBook(ctx, qb.Select(bookColumns...).From(booksTableName).Where(sq.Eq{"id": id}))
}

func (r *repository) LockBook(ctx context.Context, id int) (model.Book, error) {
	return r.getBook(ctx, qb.Select(bookColumns...).From(booksTableName).Where(sq.Eq{"id": id}).Suffix("FOR UPDATE"))
}

func (r *repository) FindBookByISBN(ctx context.Context, isbn string) (model.Book, error) {
	return r.getBook(ctx, qb.Select(bookColumns...).From(booksTableName).Where(sq.Eq{"isbn": isbn}))
}

func (r *repository) getBook(ctx context.Context, b sq.SelectBuilder) (model.Book, error) {
	query, args, err := b.Limit(1).ToSql()
	if err != nil {
		return model.Book{}, err
	}
	var book model.Book
	if err := sqlx.GetContext(ctx, r.ext, &book, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Book{}, errs.ErrBookNotFound
		}
		r.log.Error("getBook", zap.String("q", query), zap.Any("args", args), zap.Error(err))
		return model.Book{}, errors.Wrap(err, "getBook")
	}
	return book, nil
}

func (r *repository) ListBooks(ctx context.Context, filter model.BookFilter) ([]model.Book, error) {
	q := qb.Select(bookColumns...).From(booksTableName).OrderBy("title", "id")
	if filter.Query != "" {
		pattern := "%" + filter.Query + "%"
		q = q.Where(sq.Or{sq.ILike{"title": pattern}, sq.ILike{"author": pattern}})
	}
	if filter.Category != "" {
		q = q.Where(sq.Eq{"category": filter.Category})
	}
	query, args, err := q.ToSql()
	if err != nil {
		return nil, err
	}
	r.log.Debug("ListBooks", zap.String("query", query), zap.Any("args", args))

	books := make([]model.Book, 0)
	if err := sqlx.SelectContext(ctx, r.ext, &books, query, args...); err != nil {
		return nil, errors.Wrap(err, "ListBooks")
	}
	return books, nil
}

func (r *repository) Categories(ctx context.Context) ([]string, error) {
	query, args, err := qb.Select("category").Distinct().
		From(booksTableName).
		Where(sq.NotEq{"category": ""}).
		OrderBy("category").
		ToSql()
	if err != nil {
		return nil, err
	}
	categories := make([]string, 0)
	if err := sqlx.SelectContext(ctx, r.ext, &categories, query, args...); err != nil {
		return nil, errors.Wrap(err, "Categories")
	}
	return categories, nil
}

func (r *repository) CreateBook(ctx context.Context, book model.Book) (model.Book, error) {
	query, args, err := qb.Insert(booksTableName).
		Columns("title", "author", "isbn", "category", "total_copies", "available_copies").
		Values(book.Title, book.Author, book.ISBN, book.Category, book.TotalCopies, book.AvailableCopies).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return model.Book{}, err
	}
	if err := sqlx.GetContext(ctx, r.ext, &book.ID, query, args...); err != nil {
		if isUniqueViolation(err) {
			return model.Book{}, errs.ErrDuplicateISBN
		}
		return model.Book{}, errors.Wrap(err, "CreateBook")
	}
	return book, nil
}

func (r *repository) UpdateBook(ctx context.Context, book model.Book) (model.Book, error) {
	query, args, err := qb.Update(booksTableName).
		SetMap(map[string]interface{}{
			"title":            book.Title,
			"author":           book.Author,
			"isbn":             book.ISBN,
			"category":         book.Category,
			"total_copies":     book.TotalCopies,
			"available_copies": book.AvailableCopies,
		}).
		Where(sq.Eq{"id": book.ID}).
		ToSql()
	if err != nil {
		return model.Book{}, err
	}
	res, err := r.ext.ExecContext(ctx, query, args...)
	if err != nil {
		if isUniqueViolation(err) {
			return model.Book{}, errs.ErrDuplicateISBN
		}
		return model.Book{}, errors.Wrap(err, "UpdateBook")
	}
	if err := expectRows(res, errs.ErrBookNotFound); err != nil {
		return model.Book{}, err
	}
	return book, nil
}

func (r *repository) DeleteBook(ctx context.Context, id int) error {
	query, args, err := qb.Delete(booksTableName).Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return err
	}
	res, err := r.ext.ExecContext(ctx, query, args...)
	if err != nil {
		return errors.Wrap(err, "DeleteBook")
	}
	return expectRows(res, errs.ErrBookNotFound)
}

func (r *repository) Reserve(ctx context.Context, id int) error {
	query, args, err := qb.Update(booksTableName).
		Set("available_copies", sq.Expr("available_copies - 1")).
		Where(sq.Eq{"id": id}).
		Where(sq.Gt{"available_copies": 0}).
		ToSql()
	if err != nil {
		return err
	}
	return r.adjustCopies(ctx, id, query, args, errs.ErrBookUnavailable)
}

func (r *repository) Release(ctx context.Context, id int) error {
	query, args, err := qb.Update(booksTableName).
		Set("available_copies", sq.Expr("available_copies + 1")).
		Where(sq.Eq{"id": id}).
		Where("available_copies < total_copies").
		ToSql()
	if err != nil {
		return err
	}
	return r.adjustCopies(ctx, id, query, args, errs.ErrOverRelease)
}

// adjustCopies runs a guarded counter update. When no row changed it tells a
// missing book apart from a failed guard.
func (r *repository) adjustCopies(ctx context.Context, id int, query string, args []interface{}, guardErr error) error {
	res, err := r.ext.ExecContext(ctx, query, args...)
	if err != nil {
		return errors.Wrap(err, "adjustCopies")
	}
	n, err := res.RowsAffected()
	if err != nil {
		return errors.Wrap(err, "RowsAffected")
	}
	if n > 0 {
		return nil
	}
	if _, err := r.GetBook(ctx, id); err != nil {
		return err
	}
	return guardErr
}

func expectRows(res sql.Result, notFound error) error {
	n, err := res.RowsAffected()
	if err != nil {
		return errors.Wrap(err, "RowsAffected")
	}
	if n == 0 {
		return notFound
	}
	return nil
}
