package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/RachaudKeyes/jobly-frontend/internal/types"
)

var signupCmd = &cobra.Command{
	Use:   "signup",
	Short: "Register a new account",
	Long:  "Create a new account on the job board. On success a session is started, just like logging in.",
	RunE:  runSignup,
}

var (
	signupUsername  string
	signupPassword  string
	signupFirstName string
	signupLastName  string
	signupEmail     string
)

func init() {
	signupCmd.Flags().StringVarP(&signupUsername, "username", "u", "", "Username (required)")
	signupCmd.Flags().StringVarP(&signupPassword, "password", "p", "", "Password (required)")
	signupCmd.Flags().StringVar(&signupFirstName, "first-name", "", "First name (required)")
	signupCmd.Flags().StringVar(&signupLastName, "last-name", "", "Last name (required)")
	signupCmd.Flags().StringVar(&signupEmail, "email", "", "Email address (required)")

	signupCmd.MarkFlagRequired("username")
	signupCmd.MarkFlagRequired("password")
	signupCmd.MarkFlagRequired("first-name")
	signupCmd.MarkFlagRequired("last-name")
	signupCmd.MarkFlagRequired("email")

	rootCmd.AddCommand(signupCmd)
}

func runSignup(cmd *cobra.Command, args []string) error {
	req := types.SignupRequest{
		Username:  signupUsername,
		Password:  signupPassword,
		FirstName: signupFirstName,
		LastName:  signupLastName,
		Email:     signupEmail,
	}
	if err := req.Validate(); err != nil {
		return err
	}

	app, err := newApp(cmd.Context())
	if err != nil {
		return err
	}

	if err := app.session.Signup(cmd.Context(), req); err != nil {
		return err
	}

	fmt.Fprintf(os.Stdout, "Welcome, %s! You are now logged in.\n", app.session.Identity().Username)
	return nil
}
