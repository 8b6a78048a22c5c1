package repository

import (
	"context"
	"database/sql"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/Astemirdum/lending-service/lending/internal/errs"
	"github.com/Astemirdum/lending-service/lending/internal/model"
)

var loanColumns = []string{
	"id", "user_id", "book_id", "borrow_date", "due_date", "return_date",
	"status", "fine", "fine_paid", "payment_status",
}

func (r *repository) OpenLoan(ctx context.Context, loan model.Loan) (model.Loan, error) {
	loan.Status = model.LoanBorrowed
	loan.ReturnDate = nil
	loan.FinePaid = false
	loan.PaymentStatus = model.PaymentNone

	query, args, err := qb.Insert(transactionsTableName).
		Columns("user_id", "book_id", "borrow_date", "due_date", "status", "fine", "fine_paid").
		Values(loan.UserID, loan.BookID, loan.BorrowDate, loan.DueDate, loan.Status, loan.Fine, loan.FinePaid).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return model.Loan{}, err
	}
	if err := sqlx.GetContext(ctx, r.ext, &loan.ID, query, args...); err != nil {
		if isUniqueViolation(err) {
			return model.Loan{}, errs.ErrDuplicateLoan
		}
		return model.Loan{}, errors.Wrap(err, "OpenLoan")
	}
	return loan, nil
}

func (r *repository) CloseLoan(ctx context.Context, id int, returnDate time.Time, fine decimal.Decimal) (model.Loan, error) {
	query, args, err := qb.Update(transactionsTableName).
		Set("status", model.LoanReturned).
		Set("return_date", returnDate).
		Set("fine", fine).
		Where(sq.Eq{"id": id, "status": model.LoanBorrowed}).
		Suffix("RETURNING " + strings.Join(loanColumns, ", ")).
		ToSql()
	if err != nil {
		return model.Loan{}, err
	}
	var loan model.Loan
	if err := sqlx.GetContext(ctx, r.ext, &loan, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Loan{}, errs.ErrNoActiveLoan
		}
		return model.Loan{}, errors.Wrap(err, "CloseLoan")
	}
	return loan, nil
}

func (r *repository) FindOpenLoan(ctx context.Context, userID, bookID int) (model.Loan, error) {
	query, args, err := qb.Select(loanColumns...).
		From(transactionsTableName).
		Where(sq.Eq{"user_id": userID, "book_id": bookID, "status": model.LoanBorrowed}).
		Limit(1).
		ToSql()
	if err != nil {
		return model.Loan{}, err
	}
	var loan model.Loan
	if err := sqlx.GetContext(ctx, r.ext, &loan, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Loan{}, errs.ErrNoActiveLoan
		}
		return model.Loan{}, errors.Wrap(err, "FindOpenLoan")
	}
	return loan, nil
}

func (r *repository) loanViews() sq.SelectBuilder {
	cols := make([]string, 0, len(loanColumns)+2)
	for _, c := range loanColumns {
		cols = append(cols, "t."+c)
	}
	cols = append(cols, "COALESCE(b.title, '') AS title", "u.name AS user_name")
	return qb.Select(cols...).
		From(transactionsTableName + " t").
		LeftJoin(booksTableName + " b ON b.id = t.book_id").
		Join(usersTableName + " u ON u.id = t.user_id").
		OrderBy("t.borrow_date DESC", "t.id DESC")
}

func (r *repository) ListLoansByUser(ctx context.Context, userID int) ([]model.LoanView, error) {
	return r.selectLoanViews(ctx, r.loanViews().Where(sq.Eq{"t.user_id": userID}))
}

func (r *repository) ListLoans(ctx context.Context) ([]model.LoanView, error) {
	return r.selectLoanViews(ctx, r.loanViews())
}

func (r *repository) selectLoanViews(ctx context.Context, b sq.SelectBuilder) ([]model.LoanView, error) {
	query, args, err := b.ToSql()
	if err != nil {
		return nil, err
	}
	loans := make([]model.LoanView, 0)
	if err := sqlx.SelectContext(ctx, r.ext, &loans, query, args...); err != nil {
		r.log.Error("selectLoanViews", zap.String("q", query), zap.Error(err))
		return nil, errors.Wrap(err, "selectLoanViews")
	}
	return loans, nil
}

func (r *repository) ListOpenLoans(ctx context.Context) ([]model.Loan, error) {
	query, args, err := qb.Select(loanColumns...).
		From(transactionsTableName).
		Where(sq.Eq{"status": model.LoanBorrowed, "fine_paid": false}).
		OrderBy("id").
		ToSql()
	if err != nil {
		return nil, err
	}
	loans := make([]model.Loan, 0)
	if err := sqlx.SelectContext(ctx, r.ext, &loans, query, args...); err != nil {
		return nil, errors.Wrap(err, "ListOpenLoans")
	}
	return loans, nil
}

func (r *repository) CountOpenLoansByBook(ctx context.Context, bookID int) (int, error) {
	query, args, err := qb.Select("COUNT(*)").
		From(transactionsTableName).
		Where(sq.Eq{"book_id": bookID, "status": model.LoanBorrowed}).
		ToSql()
	if err != nil {
		return 0, err
	}
	var n int
	if err := sqlx.GetContext(ctx, r.ext, &n, query, args...); err != nil {
		return 0, errors.Wrap(err, "CountOpenLoansByBook")
	}
	return n, nil
}

func (r *repository) UpdateFine(ctx context.Context, id int, fine decimal.Decimal) error {
	query, args, err := qb.Update(transactionsTableName).
		Set("fine", fine).
		Where(sq.Eq{"id": id, "fine_paid": false}).
		ToSql()
	if err != nil {
		return err
	}
	if _, err := r.ext.ExecContext(ctx, query, args...); err != nil {
		return errors.Wrap(err, "UpdateFine")
	}
	return nil
}

func (r *repository) UpdatePaymentStatus(ctx context.Context, id int, status model.PaymentStatus) error {
	query, args, err := qb.Update(transactionsTableName).
		Set("payment_status", status).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return err
	}
	res, err := r.ext.ExecContext(ctx, query, args...)
	if err != nil {
		return errors.Wrap(err, "UpdatePaymentStatus")
	}
	return expectRows(res, errs.ErrLoanNotFound)
}

func (r *repository) SettleFine(ctx context.Context, id int) error {
	query, args, err := qb.Update(transactionsTableName).
		Set("fine_paid", true).
		Set("payment_status", model.PaymentApproved).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return err
	}
	res, err := r.ext.ExecContext(ctx, query, args...)
	if err != nil {
		return errors.Wrap(err, "SettleFine")
	}
	return expectRows(res, errs.ErrLoanNotFound)
}
