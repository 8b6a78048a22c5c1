package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

type Role string

const (
	RoleReader Role = "reader"
	RoleAdmin  Role = "admin"
)

// Caller is the authenticated principal an operation runs on behalf of.
type Caller struct {
	ID   int
	Role Role
}

type User struct {
	ID            int    `json:"id" db:"id"`
	Name          string `json:"name" db:"name"`
	Role          Role   `json:"role" db:"role"`
	LibraryCardNo string `json:"library_card_no" db:"library_card_no"`
}

type Book struct {
	ID              int    `json:"id" db:"id"`
	Title           string `json:"title" db:"title"`
	Author          string `json:"author" db:"author"`
	ISBN            string `json:"isbn" db:"isbn"`
	Category        string `json:"category" db:"category"`
	TotalCopies     int    `json:"total_copies" db:"total_copies"`
	AvailableCopies int    `json:"available_copies" db:"available_copies"`
}

type BookFilter struct {
	// Query matches title or author substrings.
	Query    string
	Category string
}

type LoanStatus string

const (
	LoanBorrowed LoanStatus = "borrowed"
	LoanReturned LoanStatus = "returned"
)

// PaymentStatus is stored as NULL when no payment was ever requested.
type PaymentStatus string

const (
	PaymentNone     PaymentStatus = ""
	PaymentPending  PaymentStatus = "pending"
	PaymentApproved PaymentStatus = "approved"
	PaymentRejected PaymentStatus = "rejected"
)

func (p *PaymentStatus) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*p = PaymentNone
	case string:
		*p = PaymentStatus(v)
	case []byte:
		*p = PaymentStatus(v)
	default:
		return fmt.Errorf("payment status: unsupported type %T", src)
	}
	return nil
}

func (p PaymentStatus) Value() (driver.Value, error) {
	if p == PaymentNone {
		return nil, nil
	}
	return string(p), nil
}

func (p PaymentStatus) MarshalJSON() ([]byte, error) {
	if p == PaymentNone {
		return []byte("null"), nil
	}
	return json.Marshal(string(p))
}

type Loan struct {
	ID            int             `json:"id" db:"id"`
	UserID        int             `json:"user_id" db:"user_id"`
	BookID        int             `json:"book_id" db:"book_id"`
	BorrowDate    time.Time       `json:"borrow_date" db:"borrow_date"`
	DueDate       time.Time       `json:"due_date" db:"due_date"`
	ReturnDate    *time.Time      `json:"return_date" db:"return_date"`
	Status        LoanStatus      `json:"status" db:"status"`
	Fine          decimal.Decimal `json:"fine" db:"fine"`
	FinePaid      bool            `json:"fine_paid" db:"fine_paid"`
	PaymentStatus PaymentStatus   `json:"payment_status" db:"payment_status"`
}

// LoanView is a loan joined with the names shown in listings.
type LoanView struct {
	Loan
	Title    string `json:"title" db:"title"`
	UserName string `json:"user_name" db:"user_name"`
}

type Action string

const (
	ActionBorrow Action = "borrow"
	ActionReturn Action = "return"
)

// Confirmation is handed to the reader and presented to an admin for confirmation.
type Confirmation struct {
	UserID int    `json:"user_id"`
	BookID int    `json:"book_id"`
	Action Action `json:"action"`
}

type FinePayment struct {
	UserID   int             `json:"user_id"`
	Affected int             `json:"affected"`
	Total    decimal.Decimal `json:"total"`
}

type FineSummary struct {
	UserID      int             `json:"user_id"`
	Outstanding decimal.Decimal `json:"outstanding"`
	Pending     decimal.Decimal `json:"pending"`
	Paid        decimal.Decimal `json:"paid"`
}
