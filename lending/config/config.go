package config

import (
	"encoding/json"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/shopspring/decimal"

	"github.com/Astemirdum/lending-service/pkg/auth"
	"github.com/Astemirdum/lending-service/pkg/kafka"
	"github.com/Astemirdum/lending-service/pkg/logger"
	"github.com/Astemirdum/lending-service/pkg/postgres"
)

type HTTPServer struct {
	Host         string        `envconfig:"LENDING_HTTP_HOST" default:"0.0.0.0"`
	Port         string        `envconfig:"LENDING_HTTP_PORT" default:"8080"`
	ReadTimeout  time.Duration `envconfig:"HTTP_READ" default:"10s"`
	WriteTimeout time.Duration `envconfig:"HTTP_WRITE"`
}

type Storage string

const (
	StoragePostgres Storage = "postgres"
	StorageMemory   Storage = "memory"
)

type Lending struct {
	Storage      Storage         `envconfig:"LENDING_STORAGE"`
	BorrowPeriod time.Duration   `envconfig:"LENDING_BORROW_PERIOD" default:"336h"`
	FinePerDay   decimal.Decimal `envconfig:"LENDING_FINE_PER_DAY" default:"1.00"`
	// FineRefreshSpec is a cron spec; empty disables the job.
	FineRefreshSpec    string        `envconfig:"LENDING_FINE_REFRESH_SPEC" default:"@every 1h"`
	FineRefreshTimeout time.Duration `envconfig:"LENDING_FINE_REFRESH_TIMEOUT" default:"1m"`
	// MemoryUsers seeds the in-memory user directory, e.g. "1:alice:admin,2:bob:reader".
	MemoryUsers []string `envconfig:"LENDING_MEMORY_USERS"`
}

type Config struct {
	Server   HTTPServer
	Database postgres.DB
	Kafka    kafka.Config
	Auth     auth.Config
	Lending  Lending
	Log      logger.Log
}

var (
	once sync.Once
	cfg  *Config
)

// NewConfig reads config from environment. Options set values that the
// environment may still override.
func NewConfig(ops ...Option) *Config {
	once.Do(func() {
		var config Config
		for _, op := range ops {
			op(&config)
		}
		if err := envconfig.Process("", &config); err != nil {
			log.Fatal("NewConfig ", err)
		}
		cfg = &config
		printConfig(cfg)
	})

	return cfg
}

func printConfig(cfg *Config) {
	masked := *cfg
	masked.Database.Password = "***"
	masked.Auth.Secret = "***"
	jscfg, _ := json.MarshalIndent(masked, "", "	") //nolint:errcheck
	fmt.Println(string(jscfg))
}
