package handler

import (
	"context"

	"github.com/Astemirdum/lending-service/lending/internal/model"
	"github.com/Astemirdum/lending-service/lending/internal/service"
)

//go:generate go run github.com/golang/mock/mockgen -source=service.go -destination=mocks/mock.go

type LendingService interface {
	ListBooks(ctx context.Context, caller model.Caller, filter model.BookFilter) ([]model.Book, error)
	Categories(ctx context.Context, caller model.Caller) ([]string, error)
	AddBook(ctx context.Context, caller model.Caller, req model.CreateBookRequest) (model.Book, error)
	EditBook(ctx context.Context, caller model.Caller, req model.EditBookRequest) (model.Book, error)
	DeleteBook(ctx context.Context, caller model.Caller, bookID int) error

	RequestBorrow(ctx context.Context, caller model.Caller, req model.BookRequest) (model.Confirmation, error)
	RequestReturn(ctx context.Context, caller model.Caller, req model.BookRequest) (model.Confirmation, error)
	BorrowConfirm(ctx context.Context, caller model.Caller, req model.ConfirmRequest) (model.Loan, error)
	ReturnConfirm(ctx context.Context, caller model.Caller, req model.ConfirmRequest) (model.Loan, error)

	ListLoans(ctx context.Context, caller model.Caller) ([]model.LoanView, error)
	ListUserLoans(ctx context.Context, caller model.Caller) ([]model.LoanView, error)

	RequestFinePayment(ctx context.Context, caller model.Caller) (model.FinePayment, error)
	DecideFinePayment(ctx context.Context, caller model.Caller, req model.DecideFineRequest) (model.FinePayment, error)
	FineSummary(ctx context.Context, caller model.Caller) (model.FineSummary, error)
}

var _ LendingService = (*service.Service)(nil)
