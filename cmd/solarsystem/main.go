package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"

	"SolarSystem/internal/config"
	"SolarSystem/internal/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type rootOptions struct {
	configPath string
	logLevel   string
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1:], os.Stderr)
	stop()
	os.Exit(code)
}

// run executes the command line and returns the process exit code. Errors
// are logged and written to stderr, since cobra's own printing is silenced.
func run(ctx context.Context, args []string, stderr io.Writer) int {
	root := newRootCommand()
	root.SetArgs(args)
	err := root.ExecuteContext(ctx)
	if err != nil {
		logger.Log.Error("Command failed", zap.Error(err))
		fmt.Fprintf(stderr, "solarsystem: %v\n", err)
	}
	logger.Sync()
	if err != nil {
		return 1
	}
	return 0
}

func newRootCommand() *cobra.Command {
	opts := &rootOptions{}
	view := newViewCommand(opts)

	root := &cobra.Command{
		Use:           "solarsystem",
		Short:         "Animated solar system with a procedural dyson sphere",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var level zapcore.Level
			if err := level.UnmarshalText([]byte(opts.logLevel)); err != nil {
				return fmt.Errorf("log level: %w", err)
			}
			logger.InitWithLevel(level)
			return nil
		},
		RunE: view.RunE,
	}
	root.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "settings file (TOML)")
	root.PersistentFlags().StringVar(&opts.logLevel, "log-level", "info", "debug, info, warn or error")
	root.Flags().AddFlagSet(view.Flags())

	root.AddCommand(view, newBakeCommand(opts))
	return root
}

// loadSettings reads the settings file, or returns the defaults when none is
// given.
func loadSettings(path string) (config.Settings, error) {
	if path == "" {
		return config.Default(), nil
	}
	s, err := config.Load(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			logger.Log.Error("Settings file not found", zap.String("path", path))
		}
		return config.Settings{}, err
	}
	logger.Log.Info("Settings loaded", zap.String("path", path))
	return s, nil
}
