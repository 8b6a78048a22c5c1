package fine

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/Astemirdum/lending-service/lending/internal/model"
)

func TestCalculator_Fine(t *testing.T) {
	t.Parallel()
	borrow := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	due := DueDate(borrow, 14*day)
	at := func(d time.Duration) *time.Time {
		v := due.Add(d)
		return &v
	}

	tests := []struct {
		name  string
		loan  model.Loan
		today time.Time
		want  string
	}{
		{
			name:  "returned five days late",
			loan:  model.Loan{BorrowDate: borrow, DueDate: due, Status: model.LoanReturned, ReturnDate: at(5 * day)},
			today: due.Add(30 * day),
			want:  "5",
		},
		{
			name:  "returned exactly on due date",
			loan:  model.Loan{BorrowDate: borrow, DueDate: due, Status: model.LoanReturned, ReturnDate: at(0)},
			today: due.Add(30 * day),
			want:  "0",
		},
		{
			name:  "returned early",
			loan:  model.Loan{BorrowDate: borrow, DueDate: due, Status: model.LoanReturned, ReturnDate: at(-3 * day)},
			today: due,
			want:  "0",
		},
		{
			name:  "partial day does not count",
			loan:  model.Loan{BorrowDate: borrow, DueDate: due, Status: model.LoanReturned, ReturnDate: at(2*day + 23*time.Hour)},
			today: due,
			want:  "2",
		},
		{
			name:  "open loan accrues until today",
			loan:  model.Loan{BorrowDate: borrow, DueDate: due, Status: model.LoanBorrowed},
			today: due.Add(7*day + time.Minute),
			want:  "7",
		},
		{
			name:  "open loan not yet due",
			loan:  model.Loan{BorrowDate: borrow, DueDate: due, Status: model.LoanBorrowed},
			today: due.Add(-time.Hour),
			want:  "0",
		},
		{
			name:  "paid fine is zero",
			loan:  model.Loan{BorrowDate: borrow, DueDate: due, Status: model.LoanReturned, ReturnDate: at(10 * day), FinePaid: true, Fine: decimal.NewFromInt(10)},
			today: due.Add(30 * day),
			want:  "0",
		},
	}
	c := NewCalculator(DefaultPerDay)
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := c.Fine(tt.loan, tt.today)
			require.True(t, decimal.RequireFromString(tt.want).Equal(got), "got %s", got)
			require.Equal(t, got, c.Fine(tt.loan, tt.today))
		})
	}
}

func TestCalculator_FineRounding(t *testing.T) {
	t.Parallel()
	borrow := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	due := DueDate(borrow, 14*day)
	ret := due.Add(3 * day)
	loan := model.Loan{BorrowDate: borrow, DueDate: due, Status: model.LoanReturned, ReturnDate: &ret}

	got := NewCalculator(decimal.RequireFromString("0.335")).Fine(loan, ret)
	require.Equal(t, "1.01", got.StringFixed(2))

	got = NewCalculator(decimal.RequireFromString("0.125")).Fine(loan, ret)
	require.Equal(t, "0.38", got.StringFixed(2))
}

func TestDueDate(t *testing.T) {
	t.Parallel()
	borrow := time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC)
	require.Equal(t, time.Date(2024, 3, 15, 9, 30, 0, 0, time.UTC), DueDate(borrow, 14*day))
}
