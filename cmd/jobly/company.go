package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/RachaudKeyes/jobly-frontend/internal/routes"
)

var companyCmd = &cobra.Command{
	Use:   "company <handle>",
	Short: "Show one company and its open jobs",
	Args:  cobra.ExactArgs(1),
	RunE:  runCompany,
}

func init() {
	rootCmd.AddCommand(companyCmd)
}

func runCompany(cmd *cobra.Command, args []string) error {
	handle := args[0]

	app, err := newApp(cmd.Context())
	if err != nil {
		return err
	}
	if err := app.resolveRoute(routes.Companies + "/" + handle); err != nil {
		return err
	}

	company, err := app.client.GetCompany(cmd.Context(), handle)
	if err != nil {
		return err
	}

	fmt.Fprintf(os.Stdout, "%s\n", company.Name)
	fmt.Fprintf(os.Stdout, "%s\n", company.Description)
	fmt.Fprintf(os.Stdout, "Employees: %d\n", company.NumEmployees)
	return nil
}
