package app

import (
	"context"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/Astemirdum/lending-service/lending/config"
	"github.com/Astemirdum/lending-service/lending/internal/fine"
	"github.com/Astemirdum/lending-service/lending/internal/handler"
	"github.com/Astemirdum/lending-service/lending/internal/jobs"
	"github.com/Astemirdum/lending-service/lending/internal/server"
	"github.com/Astemirdum/lending-service/lending/internal/service"
	"github.com/Astemirdum/lending-service/pkg/logger"
)

func Run(cfg *config.Config) error {
	log := logger.NewLogger(cfg.Log, "lending")
	defer log.Sync() //nolint:errcheck

	if err := cfg.Auth.Validate(); err != nil {
		log.Error("auth config", zap.Error(err))
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	repo, closeRepo, err := newRepository(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer closeRepo()

	opts := []service.Option{
		service.WithBorrowPeriod(cfg.Lending.BorrowPeriod),
		service.WithCalculator(fine.NewCalculator(cfg.Lending.FinePerDay)),
	}
	if cfg.Kafka.Enabled() {
		publisher, closePublisher, err := newPublisher(cfg.Kafka, log)
		if err != nil {
			return err
		}
		defer closePublisher()
		opts = append(opts, service.WithPublisher(publisher))
	} else {
		log.Warn("kafka addrs are empty, lending events are not published")
	}
	svc := service.NewService(repo, log, opts...)

	var scheduler *jobs.Scheduler
	if cfg.Lending.FineRefreshSpec != "" {
		if scheduler, err = jobs.NewScheduler(svc, cfg.Lending.FineRefreshSpec, cfg.Lending.FineRefreshTimeout, log); err != nil {
			return err
		}
		scheduler.Start()
	}

	h := handler.New(svc, log, cfg.Auth)
	srv := server.NewServer(cfg.Server, h.NewRouter())

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("http server start ON: ",
			zap.String("addr",
				net.JoinHostPort(cfg.Server.Host, cfg.Server.Port)))
		return srv.Run()
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Debug("Graceful shutdown", zap.Error(context.Cause(gctx)))

		closeCtx, cancel := context.WithTimeout(context.Background(), time.Second*5)
		defer cancel()
		if scheduler != nil {
			scheduler.Stop(closeCtx)
		}
		return srv.Stop(closeCtx)
	})

	if err := g.Wait(); err != nil {
		log.Error("run", zap.Error(err))
		return err
	}
	log.Info("Graceful shutdown finished")
	return nil
}
