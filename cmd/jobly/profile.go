package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/RachaudKeyes/jobly-frontend/internal/routes"
	"github.com/RachaudKeyes/jobly-frontend/internal/types"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Edit the logged-in user's profile",
	Long:  "Update first name, last name, email, or password. Fields left unset keep their current values; the username can never change.",
	RunE:  runProfile,
}

var (
	profileFirstName string
	profileLastName  string
	profileEmail     string
	profilePassword  string
)

func init() {
	profileCmd.Flags().StringVar(&profileFirstName, "first-name", "", "New first name")
	profileCmd.Flags().StringVar(&profileLastName, "last-name", "", "New last name")
	profileCmd.Flags().StringVar(&profileEmail, "email", "", "New email address")
	profileCmd.Flags().StringVar(&profilePassword, "password", "", "New password")

	rootCmd.AddCommand(profileCmd)
}

func runProfile(cmd *cobra.Command, args []string) error {
	app, err := newApp(cmd.Context())
	if err != nil {
		return err
	}
	if err := app.resolveRoute(routes.Profile); err != nil {
		return err
	}

	// Pre-fill unset fields from the current profile, the way the web
	// form rendered with current values loaded.
	patch := types.ProfileUpdate{
		FirstName: profileFirstName,
		LastName:  profileLastName,
		Email:     profileEmail,
		Password:  profilePassword,
	}
	if user := app.session.User(); user != nil {
		if patch.FirstName == "" {
			patch.FirstName = user.FirstName
		}
		if patch.LastName == "" {
			patch.LastName = user.LastName
		}
		if patch.Email == "" {
			patch.Email = user.Email
		}
	}
	if err := patch.Validate(); err != nil {
		return err
	}

	user, err := app.session.SaveProfile(cmd.Context(), patch)
	if err != nil {
		return err
	}

	fmt.Fprintf(os.Stdout, "Profile updated for %s\n", user.Username)
	fmt.Fprintf(os.Stdout, "Name:  %s %s\n", user.FirstName, user.LastName)
	fmt.Fprintf(os.Stdout, "Email: %s\n", user.Email)
	return nil
}
