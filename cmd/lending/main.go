package main

import (
	"context"
	"errors"
	stdLog "log"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap/zapcore"

	"github.com/Astemirdum/lending-service/lending/app"
	"github.com/Astemirdum/lending-service/lending/config"
	"github.com/Astemirdum/lending-service/lending/migrations"
	"github.com/Astemirdum/lending-service/pkg/postgres"
)

func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		stdLog.Fatal("load envs from .env ", err)
	}
	if err := rootCmd().ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

func loadConfig(overrides ...config.Option) *config.Config {
	cfg := config.NewConfig(
		config.WithLogLevel(zapcore.DebugLevel),
		config.WithWriteTimeout(time.Minute),
	)
	for _, op := range overrides {
		op(cfg)
	}
	return cfg
}

// storageOverride applies the --storage flag on top of LENDING_STORAGE.
func storageOverride(storage string) []config.Option {
	if storage == "" {
		return nil
	}
	return []config.Option{config.WithStorage(config.Storage(storage))}
}

func rootCmd() *cobra.Command {
	var storage string
	root := &cobra.Command{
		Use:   "lending",
		Short: "Library lending service: inventory, loans and fines",
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.Run(loadConfig(storageOverride(storage)...))
		},
	}
	root.Flags().StringVar(&storage, "storage", "", "storage backend: postgres or memory")
	root.AddCommand(serveCmd(), migrateCmd())
	return root
}

func serveCmd() *cobra.Command {
	var storage string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.Run(loadConfig(storageOverride(storage)...))
		},
	}
	cmd.Flags().StringVar(&storage, "storage", "", "storage backend: postgres or memory")
	return cmd
}

func migrateCmd() *cobra.Command {
	var down bool
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply database migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := loadConfig()
			ctx, cancel := context.WithTimeout(cmd.Context(), time.Minute)
			defer cancel()

			db, err := postgres.NewPostgresDB(ctx, &cfg.Database, nil)
			if err != nil {
				return err
			}
			defer db.Close()

			if down {
				return postgres.MigrateDown(db, migrations.MigrationFiles)
			}
			return postgres.MigrateUp(db, migrations.MigrationFiles)
		},
	}
	cmd.Flags().BoolVar(&down, "down", false, "roll back the latest migration")
	return cmd
}
