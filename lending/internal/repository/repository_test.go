package repository

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Astemirdum/lending-service/lending/internal/errs"
	"github.com/Astemirdum/lending-service/lending/internal/model"
)

func newMockRepo(t *testing.T) (*repository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, mock.ExpectationsWereMet())
		db.Close()
	})
	r, err := NewRepository(sqlx.NewDb(db, "sqlmock"), zap.NewExample().Named("test"))
	require.NoError(t, err)
	return r, mock
}

var bookRowColumns = []string{"id", "title", "author", "isbn", "category", "total_copies", "available_copies"}

func TestRepository_Reserve(t *testing.T) {
	t.Parallel()
	const reserveSQL = `UPDATE books SET available_copies = available_copies - 1 WHERE id = \$1 AND available_copies > \$2`
	const getBookSQL = `SELECT id, title, author, isbn, category, total_copies, available_copies FROM books WHERE id = \$1 LIMIT 1`

	tests := []struct {
		name    string
		mock    func(m sqlmock.Sqlmock)
		wantErr error
	}{
		{
			name: "ok",
			mock: func(m sqlmock.Sqlmock) {
				m.ExpectExec(reserveSQL).WithArgs(7, 0).WillReturnResult(sqlmock.NewResult(0, 1))
			},
		},
		{
			name: "no copies left",
			mock: func(m sqlmock.Sqlmock) {
				m.ExpectExec(reserveSQL).WithArgs(7, 0).WillReturnResult(sqlmock.NewResult(0, 0))
				m.ExpectQuery(getBookSQL).WithArgs(7).
					WillReturnRows(sqlmock.NewRows(bookRowColumns).AddRow(7, "Dune", "Herbert", "1", "sf", 1, 0))
			},
			wantErr: errs.ErrBookUnavailable,
		},
		{
			name: "unknown book",
			mock: func(m sqlmock.Sqlmock) {
				m.ExpectExec(reserveSQL).WithArgs(7, 0).WillReturnResult(sqlmock.NewResult(0, 0))
				m.ExpectQuery(getBookSQL).WithArgs(7).WillReturnRows(sqlmock.NewRows(bookRowColumns))
			},
			wantErr: errs.ErrBookNotFound,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			r, mock := newMockRepo(t)
			tt.mock(mock)
			err := r.Reserve(context.Background(), 7)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestRepository_Release(t *testing.T) {
	t.Parallel()
	r, mock := newMockRepo(t)
	mock.ExpectExec(`UPDATE books SET available_copies = available_copies \+ 1 WHERE id = \$1 AND available_copies < total_copies`).
		WithArgs(3).WillReturnResult(sqlmock.NewResult(0, 1))
	require.NoError(t, r.Release(context.Background(), 3))
}

func TestRepository_CreateBookDuplicateISBN(t *testing.T) {
	t.Parallel()
	r, mock := newMockRepo(t)
	mock.ExpectQuery(`INSERT INTO books`).
		WillReturnError(&pgconn.PgError{Code: pgerrcode.UniqueViolation})

	_, err := r.CreateBook(context.Background(), model.Book{Title: "Dune", ISBN: "1"})
	require.ErrorIs(t, err, errs.ErrDuplicateISBN)
}

func TestRepository_FindBookByISBN(t *testing.T) {
	t.Parallel()
	const findSQL = `SELECT id, title, author, isbn, category, total_copies, available_copies FROM books WHERE isbn = \$1 LIMIT 1`
	r, mock := newMockRepo(t)
	mock.ExpectQuery(findSQL).WithArgs("978-1").
		WillReturnRows(sqlmock.NewRows(bookRowColumns).AddRow(3, "Dune", "Herbert", "978-1", "sf", 2, 1))
	mock.ExpectQuery(findSQL).WithArgs("978-2").WillReturnRows(sqlmock.NewRows(bookRowColumns))

	book, err := r.FindBookByISBN(context.Background(), "978-1")
	require.NoError(t, err)
	require.Equal(t, 3, book.ID)

	_, err = r.FindBookByISBN(context.Background(), "978-2")
	require.ErrorIs(t, err, errs.ErrBookNotFound)
}

func TestRepository_ListBooksFilter(t *testing.T) {
	t.Parallel()
	r, mock := newMockRepo(t)
	mock.ExpectQuery(`FROM books WHERE \(title ILIKE \$1 OR author ILIKE \$2\) AND category = \$3 ORDER BY title, id`).
		WithArgs("%dun%", "%dun%", "sf").
		WillReturnRows(sqlmock.NewRows(bookRowColumns).AddRow(1, "Dune", "Herbert", "1", "sf", 2, 1))

	books, err := r.ListBooks(context.Background(), model.BookFilter{Query: "dun", Category: "sf"})
	require.NoError(t, err)
	require.Equal(t, []model.Book{{ID: 1, Title: "Dune", Author: "Herbert", ISBN: "1", Category: "sf", TotalCopies: 2, AvailableCopies: 1}}, books)
}

func TestRepository_WithinTx(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	now := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	t.Run("commit", func(t *testing.T) {
		t.Parallel()
		r, mock := newMockRepo(t)
		mock.ExpectBegin()
		mock.ExpectExec(`UPDATE books SET available_copies = available_copies - 1`).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectQuery(`INSERT INTO borrow_transactions .* RETURNING id`).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(11))
		mock.ExpectCommit()

		var loan model.Loan
		err := r.WithinTx(ctx, func(ctx context.Context, s Store) error {
			if err := s.Reserve(ctx, 1); err != nil {
				return err
			}
			var err error
			loan, err = s.OpenLoan(ctx, model.Loan{UserID: 2, BookID: 1, BorrowDate: now, DueDate: now.Add(14 * 24 * time.Hour)})
			return err
		})
		require.NoError(t, err)
		require.Equal(t, 11, loan.ID)
		require.Equal(t, model.LoanBorrowed, loan.Status)
	})

	t.Run("rollback on duplicate loan", func(t *testing.T) {
		t.Parallel()
		r, mock := newMockRepo(t)
		mock.ExpectBegin()
		mock.ExpectExec(`UPDATE books SET available_copies = available_copies - 1`).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectQuery(`INSERT INTO borrow_transactions`).
			WillReturnError(&pgconn.PgError{Code: pgerrcode.UniqueViolation})
		mock.ExpectRollback()

		err := r.WithinTx(ctx, func(ctx context.Context, s Store) error {
			if err := s.Reserve(ctx, 1); err != nil {
				return err
			}
			_, err := s.OpenLoan(ctx, model.Loan{UserID: 2, BookID: 1, BorrowDate: now})
			return err
		})
		require.ErrorIs(t, err, errs.ErrDuplicateLoan)
	})
}

func TestRepository_CloseLoan(t *testing.T) {
	t.Parallel()
	r, mock := newMockRepo(t)
	borrow := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	due := borrow.Add(14 * 24 * time.Hour)
	ret := due.Add(2 * 24 * time.Hour)

	mock.ExpectQuery(`UPDATE borrow_transactions SET status = \$1, return_date = \$2, fine = \$3 WHERE id = \$4 AND status = \$5 RETURNING`).
		WithArgs("returned", ret, sqlmock.AnyArg(), 4, "borrowed").
		WillReturnRows(sqlmock.NewRows(loanColumns).
			AddRow(4, 2, 1, borrow, due, ret, "returned", "2.00", false, nil))

	loan, err := r.CloseLoan(context.Background(), 4, ret, decimal.NewFromInt(2))
	require.NoError(t, err)
	require.Equal(t, model.LoanReturned, loan.Status)
	require.Equal(t, "2.00", loan.Fine.StringFixed(2))
	require.Equal(t, model.PaymentNone, loan.PaymentStatus)
	require.NotNil(t, loan.ReturnDate)
	require.True(t, ret.Equal(*loan.ReturnDate))
}

func TestRepository_UpdateFineSkipsPaid(t *testing.T) {
	t.Parallel()
	r, mock := newMockRepo(t)
	mock.ExpectExec(`UPDATE borrow_transactions SET fine = \$1 WHERE fine_paid = \$2 AND id = \$3`).
		WithArgs(sqlmock.AnyArg(), false, 9).
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, r.UpdateFine(context.Background(), 9, decimal.NewFromInt(4)))
}

func TestRepository_GetUserNotFound(t *testing.T) {
	t.Parallel()
	r, mock := newMockRepo(t)
	mock.ExpectQuery(`SELECT id, name, role, library_card_no FROM users WHERE id = \$1 LIMIT 1 FOR UPDATE`).
		WithArgs(5).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "role", "library_card_no"}))

	_, err := r.LockUser(context.Background(), 5)
	require.ErrorIs(t, err, errs.ErrUserNotFound)
}
