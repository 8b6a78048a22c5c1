package jobs

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

type FineRefresher interface {
	RefreshFines(ctx context.Context) (int, error)
}

// Scheduler periodically brings stored fines of open loans up to date so
// that listings and exports do not depend on a prior read.
type Scheduler struct {
	cron    *cron.Cron
	svc     FineRefresher
	timeout time.Duration
	log     *zap.Logger
}

func NewScheduler(svc FineRefresher, spec string, timeout time.Duration, log *zap.Logger) (*Scheduler, error) {
	s := &Scheduler{
		cron:    cron.New(),
		svc:     svc,
		timeout: timeout,
		log:     log.Named("jobs"),
	}
	if _, err := s.cron.AddFunc(spec, s.RefreshFines); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Scheduler) RefreshFines() {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	started := time.Now()
	n, err := s.svc.RefreshFines(ctx)
	if err != nil {
		s.log.Error("refresh fines", zap.Int("updated", n), zap.Error(err))
		return
	}
	s.log.Info("refresh fines", zap.Int("updated", n), zap.Duration("took", time.Since(started)))
}

func (s *Scheduler) Start() {
	s.cron.Start()
}

// Stop waits for a running job to finish or ctx to expire.
func (s *Scheduler) Stop(ctx context.Context) {
	select {
	case <-s.cron.Stop().Done():
	case <-ctx.Done():
	}
}
