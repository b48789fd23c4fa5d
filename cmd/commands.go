package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yungbote/neuroadapt-backend/internal/app"
	"github.com/yungbote/neuroadapt-backend/internal/data/db"
	"github.com/yungbote/neuroadapt-backend/internal/data/repos"
	"github.com/yungbote/neuroadapt-backend/internal/data/seed"
	"github.com/yungbote/neuroadapt-backend/internal/platform/logger"
)

// newRootCmd serves when invoked without a subcommand.
func newRootCmd() *cobra.Command {
	serve := newServeCmd()
	root := &cobra.Command{
		Use:           "neuroadapt",
		Short:         "NeuroAdapt Learning API",
		Long:          "Backend that adapts educational text for neurodivergent learners.",
		Args:          cobra.NoArgs,
		RunE:          serve.RunE,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(serve, newMigrateCmd(), newSeedCmd())
	return root
}

// bootstrap loads config and builds the logger shared by every subcommand.
func bootstrap() (app.Config, *logger.Logger, error) {
	cfg, err := app.LoadConfig()
	if err != nil {
		return app.Config{}, nil, fmt.Errorf("load config: %w", err)
	}
	log, err := logger.New(cfg.LogMode)
	if err != nil {
		return app.Config{}, nil, fmt.Errorf("init logger: %w", err)
	}
	return cfg, log, nil
}

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, log, err := bootstrap()
			if err != nil {
				return err
			}
			defer log.Sync()

			a, err := app.New(cmd.Context(), log, cfg)
			if err != nil {
				log.Error("Startup failed", "error", err)
				return err
			}
			defer a.Close()

			if err := a.Run(cmd.Context()); err != nil {
				log.Error("Server stopped with error", "error", err)
				return err
			}
			log.Info("Server stopped")
			return nil
		},
	}
}

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "migrate [up|down]",
		Short:     "Apply the embedded schema migrations to DATABASE_URL",
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{db.MigrateUp, db.MigrateDown},
		RunE: func(_ *cobra.Command, args []string) error {
			cfg, log, err := bootstrap()
			if err != nil {
				return err
			}
			defer log.Sync()
			return db.Migrate(log, cfg.DatabaseURL, args[0])
		},
	}
}

func newSeedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Insert the reference neuroprofiles",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, log, err := bootstrap()
			if err != nil {
				return err
			}
			defer log.Sync()

			pg, err := db.NewPostgresService(log, cfg.DatabaseURL)
			if err != nil {
				return err
			}
			defer pg.Close()
			return seed.NeuroProfiles(cmd.Context(), log, repos.NewNeuroProfileRepo(pg.DB(), log))
		},
	}
}
