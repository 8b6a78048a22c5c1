package logger

import (
	"os"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type Log struct {
	LogLevel zapcore.Level `envconfig:"LOG_LEVEL"`
	// Sink is a file path; stdout when empty.
	Sink string `envconfig:"LOG_SINK"`
}

// NewLogger writes JSON to stdout and to cfg.Sink when set. A sink that
// cannot be opened is reported on the returned logger.
func NewLogger(cfg Log, name string) *zap.Logger {
	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	encCfg.EncodeLevel = zapcore.CapitalLevelEncoder

	ws, sinkErr := newSink(cfg.Sink)
	core := zapcore.NewCore(zapcore.NewJSONEncoder(encCfg), ws, zap.NewAtomicLevelAt(cfg.LogLevel))
	log := zap.New(core, zap.AddCaller()).Named(name)
	if sinkErr != nil {
		log.Error("log sink", zap.String("path", cfg.Sink), zap.Error(sinkErr))
	}
	return log
}

func newSink(path string) (zapcore.WriteSyncer, error) {
	stdout := zapcore.AddSync(os.Stdout)
	if path == "" {
		return stdout, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return stdout, errors.Wrap(err, "open log sink")
	}
	return zapcore.NewMultiWriteSyncer(stdout, zapcore.AddSync(f)), nil
}
