package commands

import (
	"context"
	"fmt"
	"os"

	"candidatescout/cmd/scout/config"
	"candidatescout/cmd/scout/globals"
	devenv "candidatescout/dev/env"
	"candidatescout/internal/components/chrono"
	"candidatescout/internal/components/telemetry"

	"github.com/spf13/cobra"
)

var (
	configPath *string
	envFile    *string
	verbose    *bool
)

// cleanup runs after every command in reverse order of registration.
var cleanup []func()

func init() {
	configPath = rootCmd.PersistentFlags().String("config", "config.json5", "The config file to read, a <name>.local.json5 next to it overrides it.")
	envFile = rootCmd.PersistentFlags().String("env", ".env", "A dotenv file to read credentials from.")
	verbose = rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Log debug information.")
}

var rootCmd = &cobra.Command{
	Use:           "scout",
	Short:         "scout searches for candidate profiles, stores them and serves them as a table.",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(*configPath, *envFile)
		if err != nil {
			return fmt.Errorf("failed to read config: %w", err)
		}

		logFile, err := devenv.ResolvePath(cfg.LogFile)
		if err != nil {
			return err
		}
		logger, closeLog, err := telemetry.InitSlog(*verbose, logFile)
		if err != nil {
			return err
		}
		cleanup = append(cleanup, func() { closeLog() })

		tel := telemetry.NewSlogAPI(logger)

		ctx := cmd.Context()
		otel, err := telemetry.SetupFromEnv(ctx, "candidatescout")
		if err != nil {
			tel.ReportWarning("scout.otel", err)
		}
		if otel.MeterProvider != nil {
			telemetry.InstrumentPerfStats(ctx, tel)
		}
		cleanup = append(cleanup, func() {
			err := otel.Shutdown(context.Background())
			if err != nil {
				tel.ReportWarning("scout.otel", err)
			}
		})

		cmd.SetContext(globals.Set(ctx, &globals.Value{
			Config: cfg,
			Logger: logger,
			Tel:    tel,
			Time:   chrono.NewStandardTime(),
		}))
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		runCleanup()
	},
}

func runCleanup() {
	for i := len(cleanup) - 1; i >= 0; i-- {
		cleanup[i]()
	}
	cleanup = nil
}

func ExecuteContext(ctx context.Context) {
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		runCleanup()
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
