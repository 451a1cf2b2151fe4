package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Log out and discard the session",
	RunE:  runLogout,
}

func init() {
	rootCmd.AddCommand(logoutCmd)
}

func runLogout(cmd *cobra.Command, args []string) error {
	app, err := newApp(cmd.Context())
	if err != nil {
		return err
	}

	if err := app.session.Logout(); err != nil {
		return err
	}

	fmt.Fprintf(os.Stdout, "Logged out\n")
	return nil
}
