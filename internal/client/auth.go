package client

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-event-planner/models"
	"github.com/spf13/cobra"
)

var errCredentialsRequired = errors.New("--username and --password are required")

func credentialsFlags(cmd *cobra.Command, credentials *models.CredentialsRequest) {
	cmd.Flags().StringVarP(&credentials.Username, "username", "u", "", "Username")
	cmd.Flags().StringVarP(&credentials.Password, "password", "p", "", "Password")
}

func (a *App) registerCmd() *cobra.Command {
	var credentials models.CredentialsRequest

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create an account",
		Example: `  planner register -u alice -p s3cret`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if credentials.Username == "" || credentials.Password == "" {
				return errCredentialsRequired
			}

			serverAdapter, err := a.serverAdapter()
			if err != nil {
				return err
			}
			if err = serverAdapter.Register(cmd.Context(), credentials); err != nil {
				return fmt.Errorf("register: %w", err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), "User registered")
			return nil
		},
	}
	credentialsFlags(cmd, &credentials)

	return cmd
}

func (a *App) loginCmd() *cobra.Command {
	var credentials models.CredentialsRequest

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in and print a bearer token",
		Long: `Log in and print a bearer token.

Export it as PLANNER_TOKEN or pass it with --token to the events commands.`,
		Example: `  export PLANNER_TOKEN=$(planner login -u alice -p s3cret)`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if credentials.Username == "" || credentials.Password == "" {
				return errCredentialsRequired
			}

			serverAdapter, err := a.serverAdapter()
			if err != nil {
				return err
			}
			token, err := serverAdapter.Login(cmd.Context(), credentials)
			if err != nil {
				return fmt.Errorf("login: %w", err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), token)
			return nil
		},
	}
	credentialsFlags(cmd, &credentials)

	return cmd
}
