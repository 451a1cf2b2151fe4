package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/RachaudKeyes/jobly-frontend/internal/routes"
)

var companiesCmd = &cobra.Command{
	Use:   "companies",
	Short: "List companies, optionally filtered by name",
	RunE:  runCompanies,
}

var companiesName string

func init() {
	companiesCmd.Flags().StringVarP(&companiesName, "name", "n", "", "Case-insensitive substring to match against company names")

	rootCmd.AddCommand(companiesCmd)
}

func runCompanies(cmd *cobra.Command, args []string) error {
	app, err := newApp(cmd.Context())
	if err != nil {
		return err
	}
	if err := app.resolveRoute(routes.Companies); err != nil {
		return err
	}

	companies, err := app.client.ListCompanies(cmd.Context(), companiesName)
	if err != nil {
		return err
	}

	if len(companies) == 0 {
		fmt.Fprintf(os.Stdout, "Sorry, no results were found!\n")
		return nil
	}

	for _, company := range companies {
		fmt.Fprintf(os.Stdout, "%s  (%s, %d employees)\n", company.Name, company.Handle, company.NumEmployees)
		if company.Description != "" {
			fmt.Fprintf(os.Stdout, "    %s\n", company.Description)
		}
	}
	return nil
}
