// Package cmd provides the command-line interface for the grade tracker.
package cmd

import (
	"github.com/spf13/cobra"
	"github.com/tebeka/atexit"
	"go.uber.org/zap"

	"github.com/sarchlab/gradetracker/console"
	"github.com/sarchlab/gradetracker/hooking"
	"github.com/sarchlab/gradetracker/idgen"
	"github.com/sarchlab/gradetracker/roster"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gradetracker",
		Short: "Keep a roster of students and their scores.",
		Long: `gradetracker is an interactive menu for keeping a roster of ` +
			`students and their scores (0-100) in memory. It can add, edit, ` +
			`remove and list students and report the average, highest and ` +
			`lowest scores. Nothing is saved when it exits.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE:         runTracker,
	}

	cmd.Flags().String("env-file", "",
		"Load GRADETRACKER_* variables from a dotenv file")
	cmd.Flags().String("log-level", logLevelOff,
		"Diagnostic log level: off, debug, info, warn or error")
	cmd.Flags().String("log-format", logFormatConsole,
		"Diagnostic log format: console or json")
	cmd.Flags().String("log-file", "",
		"Write diagnostic logs to this file instead of stderr")
	cmd.Flags().Bool("sample", false,
		"Start with the sample students loaded")

	return cmd
}

// Execute runs the root command. On failure it exits with status 1 after
// running the registered exit handlers.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		atexit.Exit(1)
	}
}

func runTracker(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	logger, err := newLogger(cfg)
	if err != nil {
		return err
	}
	atexit.Register(func() { _ = logger.Sync() })

	r := roster.New()
	r.AcceptHook(hooking.NewLogHook(logger, idgen.NewXID()))

	if cfg.Sample {
		r.LoadSample()
	}

	logger.Debug("config loaded",
		zap.String("log_level", cfg.LogLevel),
		zap.String("log_format", cfg.LogFormat),
		zap.Bool("sample", cfg.Sample))

	return console.MakeBuilder().
		WithInput(cmd.InOrStdin()).
		WithOutput(cmd.OutOrStdout()).
		WithLogger(logger).
		WithRoster(r).
		Build().
		Run()
}
