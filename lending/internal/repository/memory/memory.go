// Package memory is an in-process repository. A single mutex guards the
// whole state; WithinTx works on a copy that replaces the state only when
// the callback succeeds.
package memory

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Astemirdum/lending-service/lending/internal/errs"
	"github.com/Astemirdum/lending-service/lending/internal/model"
	"github.com/Astemirdum/lending-service/lending/internal/repository"
)

type state struct {
	users      map[int]model.User
	books      map[int]model.Book
	loans      map[int]model.Loan
	nextUserID int
	nextBookID int
	nextLoanID int
}

func newState() *state {
	return &state{
		users: make(map[int]model.User),
		books: make(map[int]model.Book),
		loans: make(map[int]model.Loan),
	}
}

func (s *state) clone() *state {
	c := &state{
		users:      make(map[int]model.User, len(s.users)),
		books:      make(map[int]model.Book, len(s.books)),
		loans:      make(map[int]model.Loan, len(s.loans)),
		nextUserID: s.nextUserID,
		nextBookID: s.nextBookID,
		nextLoanID: s.nextLoanID,
	}
	for k, v := range s.users {
		c.users[k] = v
	}
	for k, v := range s.books {
		c.books[k] = v
	}
	for k, v := range s.loans {
		if v.ReturnDate != nil {
			rd := *v.ReturnDate
			v.ReturnDate = &rd
		}
		c.loans[k] = v
	}
	return c
}

type Repository struct {
	mu sync.Mutex
	st *state
}

var _ repository.Repository = (*Repository)(nil)

func New() *Repository {
	return &Repository{st: newState()}
}

// AddUser registers a user; the directory is otherwise read-only.
func (r *Repository) AddUser(u model.User) model.User {
	r.mu.Lock()
	defer r.mu.Unlock()
	if u.ID == 0 {
		r.st.nextUserID++
		u.ID = r.st.nextUserID
	} else if u.ID > r.st.nextUserID {
		r.st.nextUserID = u.ID
	}
	r.st.users[u.ID] = u
	return u
}

func (r *Repository) WithinTx(ctx context.Context, fn func(ctx context.Context, s repository.Store) error) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := ctx.Err(); err != nil {
		return err
	}
	snapshot := r.st.clone()
	if err := fn(ctx, &store{st: snapshot}); err != nil {
		return err
	}
	r.st = snapshot
	return nil
}

func (r *Repository) do(fn func(s *store) error) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return fn(&store{st: r.st})
}

// store implements repository.Store over a state without locking.
type store struct {
	st *state
}

func (s *store) GetBook(_ context.Context, id int) (model.Book, error) {
	b, ok := s.st.books[id]
	if !ok {
		return model.Book{}, errs.ErrBookNotFound
	}
	return b, nil
}

func (s *store) LockBook(ctx context.Context, id int) (model.Book, error) {
	return s.GetBook(ctx, id)
}

func (s *store) FindBookByISBN(_ context.Context, isbn string) (model.Book, error) {
	for _, b := range s.st.books {
		if b.ISBN == isbn {
			return b, nil
		}
	}
	return model.Book{}, errs.ErrBookNotFound
}

func (s *store) ListBooks(_ context.Context, filter model.BookFilter) ([]model.Book, error) {
	query := strings.ToLower(filter.Query)
	books := make([]model.Book, 0, len(s.st.books))
	for _, b := range s.st.books {
		if query != "" &&
			!strings.Contains(strings.ToLower(b.Title), query) &&
			!strings.Contains(strings.ToLower(b.Author), query) {
			continue
		}
		if filter.Category != "" && b.Category != filter.Category {
			continue
		}
		books = append(books, b)
	}
	sort.Slice(books, func(i, j int) bool {
		if books[i].Title != books[j].Title {
			return books[i].Title < books[j].Title
		}
		return books[i].ID < books[j].ID
	})
	return books, nil
}

func (s *store) Categories(_ context.Context) ([]string, error) {
	seen := make(map[string]struct{})
	categories := make([]string, 0)
	for _, b := range s.st.books {
		if b.Category == "" {
			continue
		}
		if _, ok := seen[b.Category]; ok {
			continue
		}
		seen[b.Category] = struct{}{}
		categories = append(categories, b.Category)
	}
	sort.Strings(categories)
	return categories, nil
}

func (s *store) isbnTaken(isbn string, exceptID int) bool {
	for _, b := range s.st.books {
		if b.ISBN == isbn && b.ID != exceptID {
			return true
		}
	}
	return false
}

func (s *store) CreateBook(_ context.Context, book model.Book) (model.Book, error) {
	if s.isbnTaken(book.ISBN, 0) {
		return model.Book{}, errs.ErrDuplicateISBN
	}
	s.st.nextBookID++
	book.ID = s.st.nextBookID
	s.st.books[book.ID] = book
	return book, nil
}

func (s *store) UpdateBook(_ context.Context, book model.Book) (model.Book, error) {
	if _, ok := s.st.books[book.ID]; !ok {
		return model.Book{}, errs.ErrBookNotFound
	}
	if s.isbnTaken(book.ISBN, book.ID) {
		return model.Book{}, errs.ErrDuplicateISBN
	}
	s.st.books[book.ID] = book
	return book, nil
}

func (s *store) DeleteBook(_ context.Context, id int) error {
	if _, ok := s.st.books[id]; !ok {
		return errs.ErrBookNotFound
	}
	delete(s.st.books, id)
	return nil
}

func (s *store) Reserve(_ context.Context, id int) error {
	b, ok := s.st.books[id]
	if !ok {
		return errs.ErrBookNotFound
	}
	if b.AvailableCopies <= 0 {
		return errs.ErrBookUnavailable
	}
	b.AvailableCopies--
	s.st.books[id] = b
	return nil
}

func (s *store) Release(_ context.Context, id int) error {
	b, ok := s.st.books[id]
	if !ok {
		return errs.ErrBookNotFound
	}
	if b.AvailableCopies >= b.TotalCopies {
		return errs.ErrOverRelease
	}
	b.AvailableCopies++
	s.st.books[id] = b
	return nil
}

func (s *store) OpenLoan(_ context.Context, loan model.Loan) (model.Loan, error) {
	for _, l := range s.st.loans {
		if l.UserID == loan.UserID && l.BookID == loan.BookID && l.Status == model.LoanBorrowed {
			return model.Loan{}, errs.ErrDuplicateLoan
		}
	}
	s.st.nextLoanID++
	loan.ID = s.st.nextLoanID
	loan.Status = model.LoanBorrowed
	loan.ReturnDate = nil
	loan.FinePaid = false
	loan.PaymentStatus = model.PaymentNone
	s.st.loans[loan.ID] = loan
	return loan, nil
}

func (s *store) CloseLoan(_ context.Context, id int, returnDate time.Time, fine decimal.Decimal) (model.Loan, error) {
	l, ok := s.st.loans[id]
	if !ok || l.Status != model.LoanBorrowed {
		return model.Loan{}, errs.ErrNoActiveLoan
	}
	l.Status = model.LoanReturned
	l.ReturnDate = &returnDate
	l.Fine = fine
	s.st.loans[id] = l
	return l, nil
}

func (s *store) FindOpenLoan(_ context.Context, userID, bookID int) (model.Loan, error) {
	for _, l := range s.st.loans {
		if l.UserID == userID && l.BookID == bookID && l.Status == model.LoanBorrowed {
			return l, nil
		}
	}
	return model.Loan{}, errs.ErrNoActiveLoan
}

func (s *store) views(keep func(model.Loan) bool) []model.LoanView {
	views := make([]model.LoanView, 0)
	for _, l := range s.st.loans {
		if !keep(l) {
			continue
		}
		views = append(views, model.LoanView{
			Loan:     l,
			Title:    s.st.books[l.BookID].Title,
			UserName: s.st.users[l.UserID].Name,
		})
	}
	sort.Slice(views, func(i, j int) bool {
		if !views[i].BorrowDate.Equal(views[j].BorrowDate) {
			return views[i].BorrowDate.After(views[j].BorrowDate)
		}
		return views[i].ID > views[j].ID
	})
	return views
}

func (s *store) ListLoansByUser(_ context.Context, userID int) ([]model.LoanView, error) {
	return s.views(func(l model.Loan) bool { return l.UserID == userID }), nil
}

func (s *store) ListLoans(_ context.Context) ([]model.LoanView, error) {
	return s.views(func(model.Loan) bool { return true }), nil
}

func (s *store) ListOpenLoans(_ context.Context) ([]model.Loan, error) {
	loans := make([]model.Loan, 0)
	for _, l := range s.st.loans {
		if l.Status == model.LoanBorrowed && !l.FinePaid {
			loans = append(loans, l)
		}
	}
	sort.Slice(loans, func(i, j int) bool { return loans[i].ID < loans[j].ID })
	return loans, nil
}

func (s *store) CountOpenLoansByBook(_ context.Context, bookID int) (int, error) {
	n := 0
	for _, l := range s.st.loans {
		if l.BookID == bookID && l.Status == model.LoanBorrowed {
			n++
		}
	}
	return n, nil
}

func (s *store) UpdateFine(_ context.Context, id int, fine decimal.Decimal) error {
	l, ok := s.st.loans[id]
	if !ok || l.FinePaid {
		return nil
	}
	l.Fine = fine
	s.st.loans[id] = l
	return nil
}

func (s *store) UpdatePaymentStatus(_ context.Context, id int, status model.PaymentStatus) error {
	l, ok := s.st.loans[id]
	if !ok {
		return errs.ErrLoanNotFound
	}
	l.PaymentStatus = status
	s.st.loans[id] = l
	return nil
}

func (s *store) SettleFine(_ context.Context, id int) error {
	l, ok := s.st.loans[id]
	if !ok {
		return errs.ErrLoanNotFound
	}
	l.FinePaid = true
	l.PaymentStatus = model.PaymentApproved
	s.st.loans[id] = l
	return nil
}

func (s *store) GetUser(_ context.Context, id int) (model.User, error) {
	u, ok := s.st.users[id]
	if !ok {
		return model.User{}, errs.ErrUserNotFound
	}
	return u, nil
}

func (s *store) LockUser(ctx context.Context, id int) (model.User, error) {
	return s.GetUser(ctx, id)
}
