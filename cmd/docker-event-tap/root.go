package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/auto-dns/docker-event-tap/internal/app"
	"github.com/auto-dns/docker-event-tap/internal/config"
	"github.com/auto-dns/docker-event-tap/internal/event"
	"github.com/auto-dns/docker-event-tap/internal/logger"
)

type contextKey string

const configKey = contextKey("config")

var rootCmd = &cobra.Command{
	Use:           "docker-event-tap",
	Short:         "Filter and render the Docker daemon event stream",
	Long:          "A diagnostic tool that attaches to the Docker event feed, filters it by container, event type and time window, and prints matching events until interrupted.",
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := config.InitConfig(); err != nil {
			return err
		}
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		ctx := context.WithValue(cmd.Context(), configKey, cfg)
		cmd.SetContext(ctx)
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := cmd.Context().Value(configKey).(*config.Config)

		// Set up logger. Diagnostics go to stderr; stdout carries the
		// rendered event stream.
		logInstance := logger.SetupLogger(&cfg.Logging)

		tap, err := app.New(cfg, logInstance)
		if err != nil {
			return err
		}
		var application application = tap
		defer application.Close()

		// Create a context with cancellation for graceful shutdown.
		ctx, cancel := context.WithCancel(cmd.Context())
		defer cancel()

		// Listen for OS signals. An interrupt ends the session cleanly.
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		go func() {
			sig := <-sigCh
			logInstance.Info().Msgf("Received signal: %v", sig)
			cancel()
		}()

		return application.Run(ctx)
	},
}

func init() {
	rootCmd.Flags().String("container", "", "only show events for this container name or ID")
	rootCmd.Flags().String("event-type", "", "only show events of this type (e.g. start, stop, die, oom, health_status)")
	rootCmd.Flags().String("since", "", "only show events after this timestamp or relative duration (e.g. 2024-01-02T15:04:05, 10m)")
	rootCmd.Flags().String("until", "", "only show events before this timestamp or relative duration")
	rootCmd.Flags().String("format", "plain", "output format: plain or json")
	rootCmd.PersistentFlags().String("log-level", "INFO", "set log level (e.g. INFO, DEBUG, WARN)")
	viper.BindPFlag("filter.container", rootCmd.Flags().Lookup("container"))
	viper.BindPFlag("filter.event_type", rootCmd.Flags().Lookup("event-type"))
	viper.BindPFlag("filter.since", rootCmd.Flags().Lookup("since"))
	viper.BindPFlag("filter.until", rootCmd.Flags().Lookup("until"))
	viper.BindPFlag("filter.format", rootCmd.Flags().Lookup("format"))
	viper.BindPFlag("log.level", rootCmd.PersistentFlags().Lookup("log-level"))

	// Enable automatic environment variable binding.
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
}

// Execute runs the root command and maps the outcome to an exit code:
// 0 on success or a user-initiated stop, 1 on argument errors, 2 when the
// daemon closed the event feed.
func Execute() int {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "docker-event-tap: %v\n", err)
		return exitCode(err)
	}
	return 0
}

// exitCode distinguishes an involuntary feed closure from argument and
// setup errors.
func exitCode(err error) int {
	var closed *event.StreamClosedError
	if errors.As(err, &closed) {
		return 2
	}
	return 1
}
