package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"showcase/internal/config"
	"showcase/internal/database"
	"showcase/internal/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "migrate",
		Short:         "Manage the Oracle schema",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newUpCmd(), newDownCmd(), newVersionCmd())
	return root
}

func newUpCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "up",
		Short: "Apply all pending migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withMigrator(cmd.Context(), func(ctx context.Context, m *database.Migrator) error {
				applied, err := m.Up(ctx)
				if err != nil {
					return err
				}
				logger.Get().Info("Migrations applied", zap.Int("count", applied))
				return nil
			})
		},
	}
}

func newDownCmd() *cobra.Command {
	var all bool
	var steps int
	cmd := &cobra.Command{
		Use:   "down",
		Short: "Roll back migrations (one by default)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if all {
				steps = 0
			} else if steps < 1 {
				return fmt.Errorf("--steps must be at least 1, or use --all")
			}
			return withMigrator(cmd.Context(), func(ctx context.Context, m *database.Migrator) error {
				rolledBack, err := m.Down(ctx, steps)
				if err != nil {
					return err
				}
				logger.Get().Info("Migrations rolled back", zap.Int("count", rolledBack))
				return nil
			})
		},
	}
	cmd.Flags().BoolVar(&all, "all", false, "roll back every migration")
	cmd.Flags().IntVar(&steps, "steps", 1, "number of migrations to roll back")
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the current schema version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withMigrator(cmd.Context(), func(ctx context.Context, m *database.Migrator) error {
				version, dirty, err := m.Version(ctx)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "version=%d dirty=%t\n", version, dirty)
				return nil
			})
		},
	}
}

// withMigrator loads configuration, connects to Oracle and runs fn with a migrator
func withMigrator(parent context.Context, fn func(ctx context.Context, m *database.Migrator) error) error {
	if parent == nil {
		parent = context.Background()
	}
	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	if err := logger.Initialize(cfg.Logger); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer logger.Sync()
	log := logger.Get()

	db, err := database.NewSQLXOracleDB(ctx, cfg.GetDSN())
	if err != nil {
		log.Error("Failed to connect to database", zap.Error(err))
		return err
	}
	defer db.Close()

	m, err := database.NewMigrator(db)
	if err != nil {
		return err
	}
	defer m.Close()

	if err := fn(ctx, m); err != nil {
		log.Error("Migration command failed", zap.Error(err))
		return err
	}
	return nil
}
