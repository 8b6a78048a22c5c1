package repository

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/Astemirdum/lending-service/lending/internal/model"
)

// Ledger owns per-book copy counts.
type Ledger interface {
	GetBook(ctx context.Context, id int) (model.Book, error)
	// LockBook reads the book and holds its row until the enclosing transaction ends.
	LockBook(ctx context.Context, id int) (model.Book, error)
	FindBookByISBN(ctx context.Context, isbn string) (model.Book, error)
	ListBooks(ctx context.Context, filter model.BookFilter) ([]model.Book, error)
	Categories(ctx context.Context) ([]string, error)
	CreateBook(ctx context.Context, book model.Book) (model.Book, error)
	UpdateBook(ctx context.Context, book model.Book) (model.Book, error)
	DeleteBook(ctx context.Context, id int) error
	// Reserve takes one available copy or fails with ErrBookUnavailable.
	Reserve(ctx context.Context, id int) error
	// Release returns one copy; it never lets available exceed total.
	Release(ctx context.Context, id int) error
}

// LoanStore owns borrow transactions.
type LoanStore interface {
	OpenLoan(ctx context.Context, loan model.Loan) (model.Loan, error)
	CloseLoan(ctx context.Context, id int, returnDate time.Time, fine decimal.Decimal) (model.Loan, error)
	FindOpenLoan(ctx context.Context, userID, bookID int) (model.Loan, error)
	ListLoansByUser(ctx context.Context, userID int) ([]model.LoanView, error)
	ListLoans(ctx context.Context) ([]model.LoanView, error)
	ListOpenLoans(ctx context.Context) ([]model.Loan, error)
	CountOpenLoansByBook(ctx context.Context, bookID int) (int, error)
	// UpdateFine leaves loans with a paid fine untouched.
	UpdateFine(ctx context.Context, id int, fine decimal.Decimal) error
	UpdatePaymentStatus(ctx context.Context, id int, status model.PaymentStatus) error
	SettleFine(ctx context.Context, id int) error
}

type Users interface {
	GetUser(ctx context.Context, id int) (model.User, error)
	// LockUser serializes fine workflow operations of one user.
	LockUser(ctx context.Context, id int) (model.User, error)
}

type Store interface {
	Ledger
	LoanStore
	Users
}

type Repository interface {
	Store
	// WithinTx runs fn as one all-or-nothing critical section. Changes made
	// through the Store passed to fn are discarded when fn returns an error.
	WithinTx(ctx context.Context, fn func(ctx context.Context, s Store) error) error
}

type repository struct {
	db  *sqlx.DB
	ext sqlx.ExtContext
	log *zap.Logger
}

func NewRepository(db *sqlx.DB, log *zap.Logger) (*repository, error) {
	return &repository{
		db:  db,
		ext: db,
		log: log.Named("repo"),
	}, nil
}

const (
	usersTableName        = `users`
	booksTableName        = `books`
	transactionsTableName = `borrow_transactions`
)

var qb = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

func (r *repository) WithinTx(ctx context.Context, fn func(ctx context.Context, s Store) error) (err error) {
	if r.db == nil {
		// already inside a transaction
		return fn(ctx, r)
	}
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return errors.Wrap(err, "begin tx")
	}
	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
		if err != nil {
			if rbErr := tx.Rollback(); rbErr != nil {
				r.log.Error("rollback", zap.Error(rbErr))
			}
		}
	}()

	if err = fn(ctx, &repository{ext: tx, log: r.log}); err != nil {
		return err
	}
	return errors.Wrap(tx.Commit(), "commit tx")
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation
}
