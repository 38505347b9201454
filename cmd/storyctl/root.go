package main

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/pentest-stories/internal/adapter/postgres"
	"github.com/heartmarshall/pentest-stories/internal/app"
	"github.com/heartmarshall/pentest-stories/internal/config"
)

type rootOptions struct {
	envFile string
	timeout time.Duration
}

// env is what every subcommand gets after the persistent pre-run.
type env struct {
	cfg    *config.Config
	logger *slog.Logger
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	e := &env{}

	root := &cobra.Command{
		Use:           "storyctl",
		Short:         "Operator tooling for the pentest stories backend",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Usage errors first, before anything touches the environment.
			if err := cmd.ValidateRequiredFlags(); err != nil {
				return err
			}
			if err := config.LoadDotEnv(opts.envFile); err != nil {
				return err
			}
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			e.cfg = cfg
			e.logger = app.NewLogger(cfg.Log).With("cmd", cmd.Name())

			ctx, cancel := context.WithTimeout(cmd.Context(), opts.timeout)
			cobra.OnFinalize(cancel)
			cmd.SetContext(ctx)
			return nil
		},
	}

	root.PersistentFlags().StringVar(&opts.envFile, "env-file", ".env", "dotenv file loaded before configuration")
	root.PersistentFlags().DurationVar(&opts.timeout, "timeout", 30*time.Second, "deadline for the whole command")

	root.AddCommand(
		newMigrateCmd(e),
		newPromoteCmd(e),
		newResetPasswordCmd(e),
		newCleanupTokensCmd(e),
	)
	return root
}

// withRepos opens a pool for the duration of fn.
func (e *env) withRepos(ctx context.Context, fn func(*app.Repos) error) error {
	pool, err := postgres.NewPool(ctx, e.cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()
	return fn(app.NewRepos(pool))
}
