package ctl

import (
	"fmt"

	"github.com/dmitrijs2005/usersapi/internal/server/config"
	"github.com/spf13/cobra"
)

func newMigrateCmd(opts *options, deps Deps) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply database migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(opts.configArgs())
			if err != nil {
				return err
			}

			ctx := cmd.Context()

			db, err := deps.Open(ctx, cfg.DatabaseDSN)
			if err != nil {
				return err
			}
			defer db.Close()

			if err := deps.Migrator.RunMigrations(ctx, db.DB); err != nil {
				return fmt.Errorf("migrate: %w", err)
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), "migrations applied")
			return err
		},
	}
}
