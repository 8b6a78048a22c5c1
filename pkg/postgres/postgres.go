package postgres

import (
	"context"
	"fmt"
	"io/fs"
	"net"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	"github.com/pressly/goose/v3"
)

type DB struct {
	Host         string        `envconfig:"DB_HOST" default:"localhost"`
	Port         string        `envconfig:"DB_PORT" default:"5432"`
	Username     string        `envconfig:"DB_USER" default:"postgres"`
	Password     string        `envconfig:"DB_PASSWORD"`
	NameDB       string        `envconfig:"DB_NAME" default:"lending"`
	SSLMode      string        `envconfig:"DB_SSLMODE" default:"disable"`
	MaxOpenConns int           `envconfig:"DB_MAX_OPEN_CONNS" default:"20"`
	MaxIdleConns int           `envconfig:"DB_MAX_IDLE_CONNS" default:"5"`
	ConnLifetime time.Duration `envconfig:"DB_CONN_LIFETIME" default:"5m"`
}

func (cfg *DB) DSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s/%s?sslmode=%s",
		cfg.Username, cfg.Password, net.JoinHostPort(cfg.Host, cfg.Port), cfg.NameDB, cfg.SSLMode)
}

// NewPostgresDB connects and, when migrationFiles is non-nil, applies pending migrations.
func NewPostgresDB(ctx context.Context, cfg *DB, migrationFiles fs.FS) (*sqlx.DB, error) {
	db, err := sqlx.ConnectContext(ctx, "pgx", cfg.DSN())
	if err != nil {
		return nil, errors.Wrap(err, "sqlx.Connect")
	}
	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.ConnLifetime)

	if migrationFiles != nil {
		if err := MigrateUp(db, migrationFiles); err != nil {
			db.Close()
			return nil, err
		}
	}
	return db, nil
}

func MigrateUp(db *sqlx.DB, migrationFiles fs.FS) error {
	if err := prepareGoose(migrationFiles); err != nil {
		return err
	}
	return errors.Wrap(goose.Up(db.DB, "."), "goose.Up")
}

func MigrateDown(db *sqlx.DB, migrationFiles fs.FS) error {
	if err := prepareGoose(migrationFiles); err != nil {
		return err
	}
	return errors.Wrap(goose.Down(db.DB, "."), "goose.Down")
}

func prepareGoose(migrationFiles fs.FS) error {
	goose.SetBaseFS(migrationFiles)
	return errors.Wrap(goose.SetDialect("postgres"), "goose.SetDialect")
}
