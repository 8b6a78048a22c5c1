package service

import (
	"context"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/Astemirdum/lending-service/lending/internal/errs"
	"github.com/Astemirdum/lending-service/lending/internal/model"
	"github.com/Astemirdum/lending-service/lending/internal/repository"
)

// RequestFinePayment moves every unpaid, non-pending loan of the caller that
// carries a fine to pending. Calling it again affects nothing.
func (s *Service) RequestFinePayment(ctx context.Context, caller model.Caller) (model.FinePayment, error) {
	if err := requireRole(caller, model.RoleReader); err != nil {
		return model.FinePayment{}, err
	}

	now := s.now()
	res := model.FinePayment{UserID: caller.ID, Total: decimal.Zero}
	err := s.repo.WithinTx(ctx, func(ctx context.Context, tx repository.Store) error {
		if _, err := tx.LockUser(ctx, caller.ID); err != nil {
			return err
		}
		loans, err := tx.ListLoansByUser(ctx, caller.ID)
		if err != nil {
			return err
		}
		for _, l := range loans {
			if l.FinePaid || l.PaymentStatus == model.PaymentPending {
				continue
			}
			amount := s.calc.Fine(l.Loan, now)
			if !amount.Equal(l.Fine) {
				if err := tx.UpdateFine(ctx, l.ID, amount); err != nil {
					return err
				}
			}
			if !amount.IsPositive() {
				continue
			}
			if err := tx.UpdatePaymentStatus(ctx, l.ID, model.PaymentPending); err != nil {
				return err
			}
			res.Affected++
			res.Total = res.Total.Add(amount)
		}
		return nil
	})
	if err != nil {
		return model.FinePayment{}, errs.Storage(err)
	}

	if res.Affected > 0 {
		s.log.Info("fine payment requested",
			zap.Int("user_id", caller.ID),
			zap.Int("loans", res.Affected),
			zap.String("total", res.Total.StringFixed(2)))
		event := model.NewEvent(model.EventFinePaymentRequested, caller.ID, now)
		event.Amount = res.Total
		s.publish(ctx, event)
	}
	return res, nil
}

// DecideFinePayment settles or rejects all pending loans of a user.
func (s *Service) DecideFinePayment(ctx context.Context, caller model.Caller, req model.DecideFineRequest) (model.FinePayment, error) {
	if err := requireRole(caller, model.RoleAdmin); err != nil {
		return model.FinePayment{}, err
	}
	if err := s.validateStruct(req); err != nil {
		return model.FinePayment{}, err
	}
	approve := *req.Approve

	now := s.now()
	res := model.FinePayment{UserID: req.UserID, Total: decimal.Zero}
	err := s.repo.WithinTx(ctx, func(ctx context.Context, tx repository.Store) error {
		if _, err := tx.LockUser(ctx, req.UserID); err != nil {
			return err
		}
		loans, err := tx.ListLoansByUser(ctx, req.UserID)
		if err != nil {
			return err
		}
		for _, l := range loans {
			if l.PaymentStatus != model.PaymentPending {
				continue
			}
			if !approve {
				if err := tx.UpdatePaymentStatus(ctx, l.ID, model.PaymentRejected); err != nil {
					return err
				}
				res.Affected++
				res.Total = res.Total.Add(l.Fine)
				continue
			}
			// the settled amount is frozen, so bring it up to date first
			amount := s.calc.Fine(l.Loan, now)
			if !amount.Equal(l.Fine) {
				if err := tx.UpdateFine(ctx, l.ID, amount); err != nil {
					return err
				}
			}
			if err := tx.SettleFine(ctx, l.ID); err != nil {
				return err
			}
			res.Affected++
			res.Total = res.Total.Add(amount)
		}
		if res.Affected == 0 {
			return errs.ErrNoPendingRequest
		}
		return nil
	})
	if err != nil {
		return model.FinePayment{}, errs.Storage(err)
	}

	eventType := model.EventFinePaymentRejected
	if approve {
		eventType = model.EventFinePaymentApproved
	}
	s.log.Info("fine payment decided",
		zap.Int("user_id", req.UserID),
		zap.Bool("approved", approve),
		zap.Int("loans", res.Affected),
		zap.String("total", res.Total.StringFixed(2)))
	event := model.NewEvent(eventType, req.UserID, now)
	event.Amount = res.Total
	s.publish(ctx, event)
	return res, nil
}

// FineSummary totals the caller's fines by payment state.
func (s *Service) FineSummary(ctx context.Context, caller model.Caller) (model.FineSummary, error) {
	loans, err := s.ListUserLoans(ctx, caller)
	if err != nil {
		return model.FineSummary{}, err
	}
	sum := model.FineSummary{
		UserID:      caller.ID,
		Outstanding: decimal.Zero,
		Pending:     decimal.Zero,
		Paid:        decimal.Zero,
	}
	for _, l := range loans {
		switch {
		case l.FinePaid:
			sum.Paid = sum.Paid.Add(l.Fine)
		case l.PaymentStatus == model.PaymentPending:
			sum.Pending = sum.Pending.Add(l.Fine)
		default:
			sum.Outstanding = sum.Outstanding.Add(l.Fine)
		}
	}
	return sum, nil
}

// RefreshFines recomputes the fines of open loans and returns how many changed.
func (s *Service) RefreshFines(ctx context.Context) (int, error) {
	loans, err := s.repo.ListOpenLoans(ctx)
	if err != nil {
		return 0, errs.Storage(err)
	}
	now := s.now()
	updated := 0
	for _, l := range loans {
		amount := s.calc.Fine(l, now)
		if amount.Equal(l.Fine) {
			continue
		}
		if err := s.repo.UpdateFine(ctx, l.ID, amount); err != nil {
			return updated, errs.Storage(err)
		}
		updated++
	}
	return updated, nil
}
