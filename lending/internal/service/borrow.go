package service

import (
	"context"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/Astemirdum/lending-service/lending/internal/errs"
	"github.com/Astemirdum/lending-service/lending/internal/fine"
	"github.com/Astemirdum/lending-service/lending/internal/model"
	"github.com/Astemirdum/lending-service/lending/internal/repository"
)

// RequestBorrow checks that the reader may borrow the book and returns the
// payload an admin confirms with BorrowConfirm. Nothing is mutated.
func (s *Service) RequestBorrow(ctx context.Context, caller model.Caller, req model.BookRequest) (model.Confirmation, error) {
	if err := requireRole(caller, model.RoleReader); err != nil {
		return model.Confirmation{}, err
	}
	if err := s.validateStruct(req); err != nil {
		return model.Confirmation{}, err
	}

	book, err := s.repo.GetBook(ctx, req.BookID)
	if err != nil {
		return model.Confirmation{}, errs.Storage(err)
	}
	if book.AvailableCopies <= 0 {
		return model.Confirmation{}, errs.ErrBookUnavailable
	}
	switch _, err := s.repo.FindOpenLoan(ctx, caller.ID, req.BookID); {
	case err == nil:
		return model.Confirmation{}, errs.ErrDuplicateLoan
	case !errors.Is(err, errs.ErrNoActiveLoan):
		return model.Confirmation{}, errs.Storage(err)
	}

	return model.Confirmation{UserID: caller.ID, BookID: req.BookID, Action: model.ActionBorrow}, nil
}

// RequestReturn checks that the reader holds the book.
func (s *Service) RequestReturn(ctx context.Context, caller model.Caller, req model.BookRequest) (model.Confirmation, error) {
	if err := requireRole(caller, model.RoleReader); err != nil {
		return model.Confirmation{}, err
	}
	if err := s.validateStruct(req); err != nil {
		return model.Confirmation{}, err
	}
	if _, err := s.repo.FindOpenLoan(ctx, caller.ID, req.BookID); err != nil {
		return model.Confirmation{}, errs.Storage(err)
	}
	return model.Confirmation{UserID: caller.ID, BookID: req.BookID, Action: model.ActionReturn}, nil
}

// BorrowConfirm reserves a copy and opens a loan in one critical section.
func (s *Service) BorrowConfirm(ctx context.Context, caller model.Caller, req model.ConfirmRequest) (model.Loan, error) {
	if err := requireRole(caller, model.RoleAdmin); err != nil {
		return model.Loan{}, err
	}
	if err := s.validateStruct(req); err != nil {
		return model.Loan{}, err
	}
	if req.Action != model.ActionBorrow {
		return model.Loan{}, errs.ErrWrongAction
	}

	now := s.now()
	var loan model.Loan
	err := s.repo.WithinTx(ctx, func(ctx context.Context, tx repository.Store) error {
		if _, err := tx.GetUser(ctx, req.UserID); err != nil {
			return err
		}
		book, err := tx.LockBook(ctx, req.BookID)
		if err != nil {
			return err
		}
		if book.AvailableCopies <= 0 {
			return errs.ErrBookUnavailable
		}
		switch _, err := tx.FindOpenLoan(ctx, req.UserID, req.BookID); {
		case err == nil:
			return errs.ErrDuplicateLoan
		case !errors.Is(err, errs.ErrNoActiveLoan):
			return err
		}
		if err := tx.Reserve(ctx, req.BookID); err != nil {
			return err
		}
		loan, err = tx.OpenLoan(ctx, model.Loan{
			UserID:     req.UserID,
			BookID:     req.BookID,
			BorrowDate: now,
			DueDate:    fine.DueDate(now, s.borrowPeriod),
		})
		return err
	})
	if err != nil {
		return model.Loan{}, errs.Storage(err)
	}

	s.log.Info("book borrowed",
		zap.Int("loan_id", loan.ID),
		zap.Int("user_id", loan.UserID),
		zap.Int("book_id", loan.BookID),
		zap.Time("due_date", loan.DueDate))
	event := model.NewEvent(model.EventBookBorrowed, loan.UserID, now)
	event.BookID, event.LoanID = loan.BookID, loan.ID
	s.publish(ctx, event)
	return loan, nil
}

// ReturnConfirm closes the open loan with its final fine and releases the copy.
func (s *Service) ReturnConfirm(ctx context.Context, caller model.Caller, req model.ConfirmRequest) (model.Loan, error) {
	if err := requireRole(caller, model.RoleAdmin); err != nil {
		return model.Loan{}, err
	}
	if err := s.validateStruct(req); err != nil {
		return model.Loan{}, err
	}
	if req.Action != model.ActionReturn {
		return model.Loan{}, errs.ErrWrongAction
	}

	now := s.now()
	var loan model.Loan
	err := s.repo.WithinTx(ctx, func(ctx context.Context, tx repository.Store) error {
		open, err := tx.FindOpenLoan(ctx, req.UserID, req.BookID)
		if err != nil {
			return err
		}
		if _, err := tx.LockBook(ctx, req.BookID); err != nil {
			return err
		}
		amount := open.Fine
		if !open.FinePaid {
			amount = s.calc.Fine(open, now)
		}
		if err := tx.Release(ctx, req.BookID); err != nil {
			return err
		}
		loan, err = tx.CloseLoan(ctx, open.ID, now, amount)
		return err
	})
	if err != nil {
		return model.Loan{}, errs.Storage(err)
	}

	s.log.Info("book returned",
		zap.Int("loan_id", loan.ID),
		zap.Int("user_id", loan.UserID),
		zap.Int("book_id", loan.BookID),
		zap.String("fine", loan.Fine.StringFixed(2)))
	event := model.NewEvent(model.EventBookReturned, loan.UserID, now)
	event.BookID, event.LoanID, event.Amount = loan.BookID, loan.ID, loan.Fine
	s.publish(ctx, event)
	return loan, nil
}
