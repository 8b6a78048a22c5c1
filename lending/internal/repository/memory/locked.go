package memory

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Astemirdum/lending-service/lending/internal/model"
)

// Calls outside WithinTx are each atomic on their own.

func get[T any](r *Repository, fn func(s *store) (T, error)) (T, error) {
	var v T
	err := r.do(func(s *store) error {
		var err error
		v, err = fn(s)
		return err
	})
	return v, err
}

func (r *Repository) GetBook(ctx context.Context, id int) (model.Book, error) {
	return get(r, func(s *store) (model.Book, error) { return s.GetBook(ctx, id) })
}

func (r *Repository) LockBook(ctx context.Context, id int) (model.Book, error) {
	return get(r, func(s *store) (model.Book, error) { return s.LockBook(ctx, id) })
}

func (r *Repository) FindBookByISBN(ctx context.Context, isbn string) (model.Book, error) {
	return get(r, func(s *store) (model.Book, error) { return s.FindBookByISBN(ctx, isbn) })
}

func (r *Repository) ListBooks(ctx context.Context, filter model.BookFilter) ([]model.Book, error) {
	return get(r, func(s *store) ([]model.Book, error) { return s.ListBooks(ctx, filter) })
}

func (r *Repository) Categories(ctx context.Context) ([]string, error) {
	return get(r, func(s *store) ([]string, error) { return s.Categories(ctx) })
}

func (r *Repository) CreateBook(ctx context.Context, book model.Book) (model.Book, error) {
	return get(r, func(s *store) (model.Book, error) { return s.CreateBook(ctx, book) })
}

func (r *Repository) UpdateBook(ctx context.Context, book model.Book) (model.Book, error) {
	return get(r, func(s *store) (model.Book, error) { return s.UpdateBook(ctx, book) })
}

func (r *Repository) DeleteBook(ctx context.Context, id int) error {
	return r.do(func(s *store) error { return s.DeleteBook(ctx, id) })
}

func (r *Repository) Reserve(ctx context.Context, id int) error {
	return r.do(func(s *store) error { return s.Reserve(ctx, id) })
}

func (r *Repository) Release(ctx context.Context, id int) error {
	return r.do(func(s *store) error { return s.Release(ctx, id) })
}

func (r *Repository) OpenLoan(ctx context.Context, loan model.Loan) (model.Loan, error) {
	return get(r, func(s *store) (model.Loan, error) { return s.OpenLoan(ctx, loan) })
}

func (r *Repository) CloseLoan(ctx context.Context, id int, returnDate time.Time, fine decimal.Decimal) (model.Loan, error) {
	return get(r, func(s *store) (model.Loan, error) { return s.CloseLoan(ctx, id, returnDate, fine) })
}

func (r *Repository) FindOpenLoan(ctx context.Context, userID, bookID int) (model.Loan, error) {
	return get(r, func(s *store) (model.Loan, error) { return s.FindOpenLoan(ctx, userID, bookID) })
}

func (r *Repository) ListLoansByUser(ctx context.Context, userID int) ([]model.LoanView, error) {
	return get(r, func(s *store) ([]model.LoanView, error) { return s.ListLoansByUser(ctx, userID) })
}

func (r *Repository) ListLoans(ctx context.Context) ([]model.LoanView, error) {
	return get(r, func(s *store) ([]model.LoanView, error) { return s.ListLoans(ctx) })
}

func (r *Repository) ListOpenLoans(ctx context.Context) ([]model.Loan, error) {
	return get(r, func(s *store) ([]model.Loan, error) { return s.ListOpenLoans(ctx) })
}

func (r *Repository) CountOpenLoansByBook(ctx context.Context, bookID int) (int, error) {
	return get(r, func(s *store) (int, error) { return s.CountOpenLoansByBook(ctx, bookID) })
}

func (r *Repository) UpdateFine(ctx context.Context, id int, fine decimal.Decimal) error {
	return r.do(func(s *store) error { return s.UpdateFine(ctx, id, fine) })
}

func (r *Repository) UpdatePaymentStatus(ctx context.Context, id int, status model.PaymentStatus) error {
	return r.do(func(s *store) error { return s.UpdatePaymentStatus(ctx, id, status) })
}

func (r *Repository) SettleFine(ctx context.Context, id int) error {
	return r.do(func(s *store) error { return s.SettleFine(ctx, id) })
}

func (r *Repository) GetUser(ctx context.Context, id int) (model.User, error) {
	return get(r, func(s *store) (model.User, error) { return s.GetUser(ctx, id) })
}

func (r *Repository) LockUser(ctx context.Context, id int) (model.User, error) {
	return get(r, func(s *store) (model.User, error) { return s.LockUser(ctx, id) })
}
