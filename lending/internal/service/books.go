package service

import (
	"context"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/Astemirdum/lending-service/lending/internal/errs"
	"github.com/Astemirdum/lending-service/lending/internal/model"
	"github.com/Astemirdum/lending-service/lending/internal/repository"
)

func (s *Service) ListBooks(ctx context.Context, caller model.Caller, filter model.BookFilter) ([]model.Book, error) {
	if err := requireKnownRole(caller); err != nil {
		return nil, err
	}
	books, err := s.repo.ListBooks(ctx, filter)
	if err != nil {
		return nil, errs.Storage(err)
	}
	return books, nil
}

func (s *Service) Categories(ctx context.Context, caller model.Caller) ([]string, error) {
	if err := requireKnownRole(caller); err != nil {
		return nil, err
	}
	categories, err := s.repo.Categories(ctx)
	if err != nil {
		return nil, errs.Storage(err)
	}
	return categories, nil
}

// AddBook creates a book with every copy available.
func (s *Service) AddBook(ctx context.Context, caller model.Caller, req model.CreateBookRequest) (model.Book, error) {
	if err := requireRole(caller, model.RoleAdmin); err != nil {
		return model.Book{}, err
	}
	if err := s.validateStruct(req); err != nil {
		return model.Book{}, err
	}
	var book model.Book
	err := s.repo.WithinTx(ctx, func(ctx context.Context, tx repository.Store) error {
		if err := isbnFree(ctx, tx, req.ISBN, 0); err != nil {
			return err
		}
		var err error
		book, err = tx.CreateBook(ctx, model.Book{
			Title:           req.Title,
			Author:          req.Author,
			ISBN:            req.ISBN,
			Category:        req.Category,
			TotalCopies:     req.TotalCopies,
			AvailableCopies: req.TotalCopies,
		})
		return err
	})
	if err != nil {
		return model.Book{}, errs.Storage(err)
	}
	s.log.Info("book added", zap.Int("book_id", book.ID), zap.String("isbn", book.ISBN))
	return book, nil
}

// EditBook applies the given fields. A new total_copies may not drop below
// the available or the borrowed copies; available_copies moves by the same
// delta so the borrowed count is kept.
func (s *Service) EditBook(ctx context.Context, caller model.Caller, req model.EditBookRequest) (model.Book, error) {
	if err := requireRole(caller, model.RoleAdmin); err != nil {
		return model.Book{}, err
	}
	if err := s.validateStruct(req); err != nil {
		return model.Book{}, err
	}

	var book model.Book
	err := s.repo.WithinTx(ctx, func(ctx context.Context, tx repository.Store) error {
		var err error
		if book, err = tx.LockBook(ctx, req.ID); err != nil {
			return err
		}
		if req.Title != nil {
			book.Title = *req.Title
		}
		if req.Author != nil {
			book.Author = *req.Author
		}
		if req.ISBN != nil && *req.ISBN != book.ISBN {
			if err := isbnFree(ctx, tx, *req.ISBN, book.ID); err != nil {
				return err
			}
			book.ISBN = *req.ISBN
		}
		if req.Category != nil {
			book.Category = *req.Category
		}
		if req.TotalCopies != nil {
			borrowed := book.TotalCopies - book.AvailableCopies
			switch {
			case *req.TotalCopies < book.AvailableCopies:
				return errs.ErrCopiesBelowAvailable
			case *req.TotalCopies < borrowed:
				return errs.ErrCopiesBelowBorrowed
			}
			book.TotalCopies = *req.TotalCopies
			book.AvailableCopies = book.TotalCopies - borrowed
		}
		book, err = tx.UpdateBook(ctx, book)
		return err
	})
	if err != nil {
		return model.Book{}, errs.Storage(err)
	}
	return book, nil
}

// DeleteBook refuses to delete a book while any copy is on loan.
func (s *Service) DeleteBook(ctx context.Context, caller model.Caller, bookID int) error {
	if err := requireRole(caller, model.RoleAdmin); err != nil {
		return err
	}
	if bookID <= 0 {
		return errs.ErrBookNotFound
	}
	err := s.repo.WithinTx(ctx, func(ctx context.Context, tx repository.Store) error {
		if _, err := tx.LockBook(ctx, bookID); err != nil {
			return err
		}
		open, err := tx.CountOpenLoansByBook(ctx, bookID)
		if err != nil {
			return err
		}
		if open > 0 {
			return errs.ErrBookHasOpenLoans
		}
		return tx.DeleteBook(ctx, bookID)
	})
	if err != nil {
		return errs.Storage(err)
	}
	s.log.Info("book deleted", zap.Int("book_id", bookID))
	return nil
}

// isbnFree fails with ErrDuplicateISBN when another book already uses isbn.
func isbnFree(ctx context.Context, tx repository.Store, isbn string, bookID int) error {
	other, err := tx.FindBookByISBN(ctx, isbn)
	switch {
	case errors.Is(err, errs.ErrBookNotFound):
		return nil
	case err != nil:
		return err
	case other.ID != bookID:
		return errs.ErrDuplicateISBN
	}
	return nil
}
