package app

import (
	"context"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/Astemirdum/lending-service/lending/config"
	"github.com/Astemirdum/lending-service/lending/internal/events"
	"github.com/Astemirdum/lending-service/lending/internal/model"
	"github.com/Astemirdum/lending-service/lending/internal/repository"
	"github.com/Astemirdum/lending-service/lending/internal/repository/memory"
	"github.com/Astemirdum/lending-service/lending/migrations"
	"github.com/Astemirdum/lending-service/pkg/circuit_breaker"
	"github.com/Astemirdum/lending-service/pkg/kafka"
	"github.com/Astemirdum/lending-service/pkg/postgres"
)

func newRepository(ctx context.Context, cfg *config.Config, log *zap.Logger) (repository.Repository, func(), error) {
	switch cfg.Lending.Storage {
	case config.StorageMemory:
		repo := memory.New()
		users, err := parseUsers(cfg.Lending.MemoryUsers)
		if err != nil {
			return nil, nil, err
		}
		for _, u := range users {
			repo.AddUser(u)
		}
		log.Warn("in-memory storage, state is lost on exit", zap.Int("users", len(users)))
		return repo, func() {}, nil
	case config.StoragePostgres, "":
		db, err := postgres.NewPostgresDB(ctx, &cfg.Database, migrations.MigrationFiles)
		if err != nil {
			return nil, nil, errors.Wrap(err, "db init")
		}
		repo, err := repository.NewRepository(db, log)
		if err != nil {
			db.Close()
			return nil, nil, errors.Wrap(err, "repo")
		}
		return repo, func() {
			if err := db.Close(); err != nil {
				log.Error("db close", zap.Error(err))
			}
		}, nil
	}
	return nil, nil, errors.Errorf("unknown storage %q", cfg.Lending.Storage)
}

// parseUsers reads "id:name:role" entries.
func parseUsers(entries []string) ([]model.User, error) {
	users := make([]model.User, 0, len(entries))
	for _, e := range entries {
		parts := strings.Split(strings.TrimSpace(e), ":")
		if len(parts) != 3 {
			return nil, errors.Errorf("user entry %q: want id:name:role", e)
		}
		id, err := strconv.Atoi(parts[0])
		if err != nil || id <= 0 {
			return nil, errors.Errorf("user entry %q: bad id", e)
		}
		role := model.Role(parts[2])
		if role != model.RoleReader && role != model.RoleAdmin {
			return nil, errors.Errorf("user entry %q: unknown role", e)
		}
		users = append(users, model.User{ID: id, Name: parts[1], Role: role, LibraryCardNo: "MEM-" + parts[0]})
	}
	return users, nil
}

func newPublisher(cfg kafka.Config, log *zap.Logger) (*events.Publisher, func(), error) {
	producer, err := kafka.NewProducer(cfg)
	if err != nil {
		return nil, nil, errors.Wrap(err, "kafka.NewProducer")
	}
	enq := kafka.NewEnqueuer(producer, circuit_breaker.New(cfg.Breaker))
	return events.NewPublisher(enq, cfg.Topic), func() {
		if err := enq.Close(); err != nil {
			log.Error("kafka producer close", zap.Error(err))
		}
	}, nil
}
