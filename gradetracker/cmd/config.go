package cmd

import (
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/multierr"
	"go.uber.org/zap/zapcore"
)

const envPrefix = "GRADETRACKER"

const (
	logLevelOff      = "off"
	logFormatConsole = "console"
	logFormatJSON    = "json"
)

// Config holds the settings of one run. Values come from GRADETRACKER_*
// environment variables and can be overridden by flags.
type Config struct {
	LogLevel  string `envconfig:"LOG_LEVEL" default:"off"`
	LogFormat string `envconfig:"LOG_FORMAT" default:"console"`
	LogFile   string `envconfig:"LOG_FILE"`
	Sample    bool   `envconfig:"SAMPLE" default:"false"`
}

// NewConfigFromEnv reads the configuration from the environment.
func NewConfigFromEnv() (cfg Config, err error) {
	err = envconfig.Process(envPrefix, &cfg)
	return cfg, err
}

// Validate reports every invalid field at once.
func (c Config) Validate() error {
	var err error

	if c.LogLevel != logLevelOff {
		var level zapcore.Level
		if levelErr := level.UnmarshalText([]byte(c.LogLevel)); levelErr != nil {
			err = multierr.Append(err,
				errors.Errorf("invalid log level %q", c.LogLevel))
		}
	}

	switch c.LogFormat {
	case logFormatConsole, logFormatJSON:
	default:
		err = multierr.Append(err,
			errors.Errorf("invalid log format %q", c.LogFormat))
	}

	return err
}

func loadConfig(cmd *cobra.Command) (Config, error) {
	flags := cmd.Flags()

	envFile, _ := flags.GetString("env-file")
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			return Config{}, errors.Wrapf(err, "could not load env file %s", envFile)
		}
	}

	cfg, err := NewConfigFromEnv()
	if err != nil {
		return Config{}, errors.Wrap(err, "could not read config from environment")
	}

	if flags.Changed("log-level") {
		cfg.LogLevel, _ = flags.GetString("log-level")
	}

	if flags.Changed("log-format") {
		cfg.LogFormat, _ = flags.GetString("log-format")
	}

	if flags.Changed("log-file") {
		cfg.LogFile, _ = flags.GetString("log-file")
	}

	if flags.Changed("sample") {
		cfg.Sample, _ = flags.GetBool("sample")
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, errors.Wrap(err, "invalid config")
	}

	return cfg, nil
}
