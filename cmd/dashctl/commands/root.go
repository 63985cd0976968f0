// Package commands implements dashctl, the operator CLI for the dashboard server.
package commands

import (
	"context"
	"fmt"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"ai_dashboard_server/config"
	"ai_dashboard_server/internal/app"
	"ai_dashboard_server/internal/logger"
)

type options struct {
	configDir string
	envFile   string
	verbose   bool
}

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	root := &cobra.Command{
		Use:          "dashctl",
		Short:        "Operate the AI dashboard server: run flows, migrate, manage users",
		SilenceUsage: true,
	}

	root.PersistentFlags().StringVar(&opts.configDir, "config-dir", ".", "directory containing config.yaml")
	root.PersistentFlags().StringVar(&opts.envFile, "env-file", ".env", "dotenv file loaded before the environment is read")
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "log at debug level")

	root.AddCommand(flowsCmd(), runCmd(opts), migrateCmd(opts), createUserCmd(opts))
	return root
}

func (o *options) loadConfig() (config.Config, error) {
	// A missing .env is normal outside development.
	_ = godotenv.Load(o.envFile)
	cfg, _, err := config.LoadConfig(o.configDir)
	if err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

func (o *options) logger(cfg config.Config) *zap.Logger {
	level := "warn"
	if o.verbose {
		level = "debug"
	}
	log, err := logger.New(level, cfg.LogFormat)
	if err != nil {
		return zap.NewNop()
	}
	return log
}

// withApp builds the application for the duration of fn.
func (o *options) withApp(ctx context.Context, fn func(*app.App) error) error {
	cfg, err := o.loadConfig()
	if err != nil {
		return err
	}
	log := o.logger(cfg)
	defer log.Sync()

	a, err := app.New(ctx, cfg, log)
	if err != nil {
		return fmt.Errorf("initialize: %w", err)
	}
	defer a.Close(context.Background())
	return fn(a)
}
