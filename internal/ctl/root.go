// Package ctl implements usersctl, the operator tool for the users API:
// issuing and checking tokens and applying database migrations.
package ctl

import (
	"context"
	"database/sql"
	"errors"
	"io/fs"

	"github.com/dmitrijs2005/usersapi/internal/dbx"
	"github.com/dmitrijs2005/usersapi/internal/server/repositories/repomanager"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

// Migrator applies schema migrations.
type Migrator interface {
	RunMigrations(ctx context.Context, db *sql.DB) error
}

// Deps are the collaborators the commands need. Zero fields get production
// defaults in NewRootCmd.
type Deps struct {
	Open     func(ctx context.Context, dsn string) (*sqlx.DB, error)
	Migrator Migrator
}

type options struct {
	configPath string
	envFile    string
}

// configArgs turns the persistent flags into the args understood by
// config.Load.
func (o *options) configArgs() []string {
	if o.configPath == "" {
		return nil
	}
	return []string{"-c", o.configPath}
}

// NewRootCmd builds the usersctl command tree.
func NewRootCmd(deps Deps) *cobra.Command {
	if deps.Open == nil {
		deps.Open = dbx.Open
	}
	if deps.Migrator == nil {
		deps.Migrator = repomanager.NewPostgresRepositoryManager()
	}

	opts := &options{}

	root := &cobra.Command{
		Use:           "usersctl",
		Short:         "Operator tool for the users API",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if opts.envFile == "" {
				return nil
			}
			if err := godotenv.Load(opts.envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
				return err
			}
			return nil
		},
	}

	root.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "JSON config file")
	root.PersistentFlags().StringVar(&opts.envFile, "env-file", ".env", "dotenv file loaded before reading the environment")

	root.AddCommand(newTokenCmd(opts), newMigrateCmd(opts, deps))

	return root
}
