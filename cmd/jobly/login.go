package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/RachaudKeyes/jobly-frontend/internal/types"
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Log in to the job board",
	Long:  "Authenticate with a username and password, and persist the session token for later commands.",
	RunE:  runLogin,
}

var (
	loginUsername string
	loginPassword string
)

func init() {
	loginCmd.Flags().StringVarP(&loginUsername, "username", "u", "", "Username (required)")
	loginCmd.Flags().StringVarP(&loginPassword, "password", "p", "", "Password (required)")

	loginCmd.MarkFlagRequired("username")
	loginCmd.MarkFlagRequired("password")

	rootCmd.AddCommand(loginCmd)
}

func runLogin(cmd *cobra.Command, args []string) error {
	req := types.LoginRequest{
		Username: loginUsername,
		Password: loginPassword,
	}
	if err := req.Validate(); err != nil {
		return err
	}

	app, err := newApp(cmd.Context())
	if err != nil {
		return err
	}

	if err := app.session.Login(cmd.Context(), req); err != nil {
		return err
	}

	fmt.Fprintf(os.Stdout, "Logged in as %s\n", app.session.Identity().Username)
	return nil
}
