// Package fine derives overdue fines from loan dates.
package fine

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/Astemirdum/lending-service/lending/internal/model"
)

const day = 24 * time.Hour

var DefaultPerDay = decimal.NewFromInt(1)

type Calculator struct {
	perDay decimal.Decimal
}

func NewCalculator(perDay decimal.Decimal) Calculator {
	return Calculator{perDay: perDay}
}

// Fine returns the amount owed on l as of today. Paid fines are zero and the
// end of an open loan is today. Only whole overdue days count.
func (c Calculator) Fine(l model.Loan, today time.Time) decimal.Decimal {
	if l.FinePaid {
		return decimal.Zero
	}

	var end time.Time
	switch {
	case l.Status == model.LoanReturned && l.ReturnDate != nil:
		end = *l.ReturnDate
	case l.Status == model.LoanBorrowed:
		end = today
	default:
		return decimal.Zero
	}

	if !end.After(l.DueDate) {
		return decimal.Zero
	}
	overdueDays := int64(end.Sub(l.DueDate) / day)
	return c.perDay.Mul(decimal.NewFromInt(overdueDays)).Round(2)
}

// DueDate is the date a loan opened at borrowDate must be returned by.
func DueDate(borrowDate time.Time, period time.Duration) time.Time {
	return borrowDate.Add(period)
}
