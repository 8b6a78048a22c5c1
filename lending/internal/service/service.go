package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/Astemirdum/lending-service/lending/internal/errs"
	"github.com/Astemirdum/lending-service/lending/internal/fine"
	"github.com/Astemirdum/lending-service/lending/internal/model"
	"github.com/Astemirdum/lending-service/lending/internal/repository"
	"github.com/Astemirdum/lending-service/pkg/validate"
)

const DefaultBorrowPeriod = 14 * 24 * time.Hour

type Publisher interface {
	Publish(ctx context.Context, event model.Event) error
}

type noopPublisher struct{}

func (noopPublisher) Publish(context.Context, model.Event) error { return nil }

type Service struct {
	log          *zap.Logger
	repo         repository.Repository
	calc         fine.Calculator
	validator    *validate.CustomValidator
	publisher    Publisher
	now          func() time.Time
	borrowPeriod time.Duration
}

type Option func(*Service)

func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

func WithPublisher(p Publisher) Option {
	return func(s *Service) { s.publisher = p }
}

func WithBorrowPeriod(d time.Duration) Option {
	return func(s *Service) { s.borrowPeriod = d }
}

func WithCalculator(c fine.Calculator) Option {
	return func(s *Service) { s.calc = c }
}

func NewService(repo repository.Repository, log *zap.Logger, opts ...Option) *Service {
	s := &Service{
		log:          log.Named("service"),
		repo:         repo,
		calc:         fine.NewCalculator(fine.DefaultPerDay),
		validator:    validate.NewCustomValidator(),
		publisher:    noopPublisher{},
		now:          time.Now,
		borrowPeriod: DefaultBorrowPeriod,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func requireRole(caller model.Caller, role model.Role) error {
	if caller.Role != role {
		return errs.ErrForbidden
	}
	return nil
}

func requireKnownRole(caller model.Caller) error {
	if caller.Role != model.RoleReader && caller.Role != model.RoleAdmin {
		return errs.ErrForbidden
	}
	return nil
}

func (s *Service) validateStruct(v interface{}) error {
	if err := s.validator.Validate(v); err != nil {
		return errs.Invalid(err)
	}
	return nil
}

// publish runs after commit, so a failure is logged and not returned.
func (s *Service) publish(ctx context.Context, event model.Event) {
	if err := s.publisher.Publish(ctx, event); err != nil {
		s.log.Warn("publish event",
			zap.String("type", string(event.Type)),
			zap.String("id", event.ID.String()),
			zap.Error(err))
	}
}
