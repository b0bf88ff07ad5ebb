package ctl

import (
	"encoding/json"
	"fmt"

	"github.com/dmitrijs2005/usersapi/internal/server/auth"
	"github.com/dmitrijs2005/usersapi/internal/server/config"
	"github.com/spf13/cobra"
)

func newTokenCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Issue and verify bearer tokens",
	}
	cmd.AddCommand(newTokenIssueCmd(opts), newTokenVerifyCmd(opts))
	return cmd
}

func newTokenIssueCmd(opts *options) *cobra.Command {
	var identity auth.Identity

	cmd := &cobra.Command{
		Use:   "issue",
		Short: "Print a signed token for the given identity",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ts, err := tokenService(opts)
			if err != nil {
				return err
			}

			token, err := ts.Issue(identity)
			if err != nil {
				return err
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), token)
			return err
		},
	}

	cmd.Flags().StringVar(&identity.UserID, "user-id", "", "user id (required)")
	cmd.Flags().StringVar(&identity.Username, "username", "", "username")
	cmd.Flags().StringVar(&identity.Role, "role", "", "role")
	_ = cmd.MarkFlagRequired("user-id")

	return cmd
}

func newTokenVerifyCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "verify TOKEN",
		Short: "Validate a token and print its identity",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ts, err := tokenService(opts)
			if err != nil {
				return err
			}

			identity, err := ts.Validate(args[0])
			if err != nil {
				return fmt.Errorf("token rejected (%s): %w", auth.FailureCause(err), err)
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(identity)
		},
	}
}

func tokenService(opts *options) (*auth.TokenService, error) {
	cfg, err := config.LoadConfig(opts.configArgs())
	if err != nil {
		return nil, err
	}
	return auth.NewTokenService([]byte(cfg.SecretKey), cfg.TokenValidityDuration)
}
