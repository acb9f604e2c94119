package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/adaobialike/ikeji-outreach/cmd/cli/commands"
	"github.com/adaobialike/ikeji-outreach/internal/config"
	"github.com/adaobialike/ikeji-outreach/pkg/cache"
	"github.com/adaobialike/ikeji-outreach/pkg/clients/apiclient"
	"github.com/adaobialike/ikeji-outreach/pkg/postgres"
	"github.com/adaobialike/ikeji-outreach/pkg/utils/logging"
)

var (
	env string
	// app is allocated up front so commands can close over it; initApp
	// fills it in before any RunE fires.
	app = &commands.AppContext{}
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "outreach",
		Short: "Ikeji Outreach CLI - back office for the foundation website",
		Long:  `A CLI for managing the foundation site's content, campaigns, testimonials, partnerships and sponsorship homes over its JSON API.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initApp()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if app.Logger != nil {
				app.Logger.Sync()
			}
			if app.Mirror != nil {
				app.Mirror.Close()
			}
		},
	}

	rootCmd.PersistentFlags().StringVarP(&env, "env", "e", "", "Environment (required: test, prod, etc.)")
	rootCmd.MarkPersistentFlagRequired("env")

	rootCmd.AddCommand(commands.ContentCmd(app))
	rootCmd.AddCommand(commands.OutreachCmd(app))
	rootCmd.AddCommand(commands.CampaignsCmd(app))
	rootCmd.AddCommand(commands.TestimonialsCmd(app))
	rootCmd.AddCommand(commands.PartnershipsCmd(app))
	rootCmd.AddCommand(commands.HomesCmd(app))
	rootCmd.AddCommand(commands.BeneficiariesCmd(app))
	rootCmd.AddCommand(commands.SponsorCmd(app))
	rootCmd.AddCommand(commands.MirrorCmd(app))

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// initApp sets up logger, config, API client, cache and the optional mirror
func initApp() error {
	app.Ctx = context.Background()

	logger, err := logging.InitLogger(env)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	app.Logger = logger

	logger.Info("Starting application", zap.String("environment", env))

	cfg, err := config.LoadWithEnv(env)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	app.Cfg = cfg
	logger.Debug("Configuration loaded", zap.String("api_base_url", cfg.APIBaseURL))

	tokens, err := cfg.TokenSource(app.Ctx)
	if err != nil {
		return fmt.Errorf("failed to build token source: %w", err)
	}
	if tokens == nil {
		logger.Warn("No API credentials configured; admin mutations will be rejected by the backend")
	}

	app.Client = apiclient.NewClient(cfg.APIBaseURL, tokens, cfg.RequestTimeout(), logger)
	app.Cache = cache.New(cfg.CacheTTL())

	if dsn := cfg.MirrorDSN(); dsn != "" {
		logger.Info("Connecting to local mirror")
		mirror, err := postgres.NewMirror(app.Ctx, dsn)
		if err != nil {
			return fmt.Errorf("failed to connect to mirror: %w", err)
		}
		if err := mirror.RunMigrations(app.Ctx); err != nil {
			mirror.Close()
			return fmt.Errorf("failed to run mirror migrations: %w", err)
		}
		app.Mirror = mirror
		logger.Debug("Mirror ready")
	}

	return nil
}
