package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type Log struct {
	LogLevel zapcore.Level `yaml:"level" envconfig:"LOG_LEVEL"`
	// Sink is an optional file path written alongside stdout.
	Sink string `yaml:"sink" envconfig:"LOG_SINK"`
}

func NewLogger(cfg Log, name string) *zap.Logger {
	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	encCfg.EncodeLevel = zapcore.CapitalLevelEncoder

	outputs := []string{"stdout"}
	if cfg.Sink != "" {
		outputs = append(outputs, cfg.Sink)
	}
	zapCfg := zap.Config{
		Level:            zap.NewAtomicLevelAt(cfg.LogLevel),
		Development:      cfg.LogLevel == zapcore.DebugLevel,
		Encoding:         "json",
		EncoderConfig:    encCfg,
		OutputPaths:      outputs,
		ErrorOutputPaths: []string{"stderr"},
	}
	log, err := zapCfg.Build()
	if err != nil {
		log = zap.NewExample()
		log.Warn("logger build failed, fallback to example logger", zap.Error(err))
	}
	return log.Named(name)
}
