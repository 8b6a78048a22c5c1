package service

import (
	"context"

	"github.com/Astemirdum/lending-service/lending/internal/errs"
	"github.com/Astemirdum/lending-service/lending/internal/model"
)

func (s *Service) ListLoans(ctx context.Context, caller model.Caller) ([]model.LoanView, error) {
	if err := requireRole(caller, model.RoleAdmin); err != nil {
		return nil, err
	}
	loans, err := s.repo.ListLoans(ctx)
	if err != nil {
		return nil, errs.Storage(err)
	}
	return s.recompute(ctx, loans)
}

func (s *Service) ListUserLoans(ctx context.Context, caller model.Caller) ([]model.LoanView, error) {
	if err := requireRole(caller, model.RoleReader); err != nil {
		return nil, err
	}
	loans, err := s.repo.ListLoansByUser(ctx, caller.ID)
	if err != nil {
		return nil, errs.Storage(err)
	}
	return s.recompute(ctx, loans)
}

// recompute brings stored fines up to date before they are shown. It runs
// outside any critical section; UpdateFine never touches a paid fine.
func (s *Service) recompute(ctx context.Context, loans []model.LoanView) ([]model.LoanView, error) {
	now := s.now()
	for i := range loans {
		if loans[i].FinePaid {
			continue
		}
		amount := s.calc.Fine(loans[i].Loan, now)
		if amount.Equal(loans[i].Fine) {
			continue
		}
		if err := s.repo.UpdateFine(ctx, loans[i].ID, amount); err != nil {
			return nil, errs.Storage(err)
		}
		loans[i].Fine = amount
	}
	return loans, nil
}
