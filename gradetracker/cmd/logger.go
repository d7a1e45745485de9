package cmd

import (
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// newLogger builds the diagnostic logger. Logs never go to stdout, which
// belongs to the menu.
func newLogger(cfg Config) (*zap.Logger, error) {
	if cfg.LogLevel == logLevelOff {
		return zap.NewNop(), nil
	}

	var level zapcore.Level
	if err := level.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		return nil, errors.Wrapf(err, "invalid log level %q", cfg.LogLevel)
	}

	zcfg := zap.NewDevelopmentConfig()
	if cfg.LogFormat == logFormatJSON {
		zcfg = zap.NewProductionConfig()
	}

	zcfg.Level = zap.NewAtomicLevelAt(level)
	zcfg.OutputPaths = []string{"stderr"}
	zcfg.ErrorOutputPaths = []string{"stderr"}

	if cfg.LogFile != "" {
		zcfg.OutputPaths = []string{cfg.LogFile}
	}

	logger, err := zcfg.Build()
	if err != nil {
		return nil, errors.Wrap(err, "could not build logger")
	}

	return logger, nil
}
