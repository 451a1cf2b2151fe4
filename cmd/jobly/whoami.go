package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the current session identity",
	RunE:  runWhoami,
}

func init() {
	rootCmd.AddCommand(whoamiCmd)
}

func runWhoami(cmd *cobra.Command, args []string) error {
	app, err := newApp(cmd.Context())
	if err != nil {
		return err
	}

	identity := app.session.Identity()
	if identity == nil {
		fmt.Fprintf(os.Stdout, "Not logged in\n")
		return nil
	}

	fmt.Fprintf(os.Stdout, "Logged in as %s\n", identity.Username)
	if identity.IsAdmin {
		fmt.Fprintf(os.Stdout, "Admin: yes\n")
	}
	if user := app.session.User(); user != nil {
		fmt.Fprintf(os.Stdout, "Name:  %s %s\n", user.FirstName, user.LastName)
		fmt.Fprintf(os.Stdout, "Email: %s\n", user.Email)
	}
	return nil
}
