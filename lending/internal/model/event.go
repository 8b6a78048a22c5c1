package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type EventType string

const (
	EventBookBorrowed         EventType = "BOOK_BORROWED"
	EventBookReturned         EventType = "BOOK_RETURNED"
	EventFinePaymentRequested EventType = "FINE_PAYMENT_REQUESTED"
	EventFinePaymentApproved  EventType = "FINE_PAYMENT_APPROVED"
	EventFinePaymentRejected  EventType = "FINE_PAYMENT_REJECTED"
)

// Event describes a committed state change.
type Event struct {
	ID         uuid.UUID       `json:"id"`
	Type       EventType       `json:"type"`
	UserID     int             `json:"user_id"`
	BookID     int             `json:"book_id,omitempty"`
	LoanID     int             `json:"loan_id,omitempty"`
	Amount     decimal.Decimal `json:"amount"`
	OccurredAt time.Time       `json:"occurred_at"`
}

func NewEvent(t EventType, userID int, at time.Time) Event {
	return Event{
		ID:         uuid.New(),
		Type:       t,
		UserID:     userID,
		OccurredAt: at,
	}
}
