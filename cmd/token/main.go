package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"showcase/internal/config"
	"showcase/internal/service"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		subject     string
		permissions []string
		ttl         time.Duration
	)
	cmd := &cobra.Command{
		Use:          "token",
		Short:        "Mint a bearer token for the drinks API",
		Example:      "token --subject manager --permission post:drinks --permission delete:drinks",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.LoadConfig()
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}
			authService, err := service.NewAuthService(cfg.Auth)
			if err != nil {
				return err
			}
			token, err := authService.CreateJWT(context.Background(), subject, permissions, ttl)
			if err != nil {
				return fmt.Errorf("failed to sign token: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), token)
			return nil
		},
	}
	cmd.Flags().StringVar(&subject, "subject", "", "token subject")
	cmd.Flags().StringSliceVar(&permissions, "permission", nil, "granted permission, repeatable")
	cmd.Flags().DurationVar(&ttl, "ttl", 24*time.Hour, "token lifetime")
	_ = cmd.MarkFlagRequired("subject")
	return cmd
}
