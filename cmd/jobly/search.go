package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/RachaudKeyes/jobly-frontend/internal/routes"
	"github.com/RachaudKeyes/jobly-frontend/internal/search"
)

var searchCmd = &cobra.Command{
	Use:   "search <term>",
	Short: "Search companies and jobs at once",
	Long:  "Run a combined search: companies matched by name and jobs matched by title, fetched concurrently.",
	Args:  cobra.ExactArgs(1),
	RunE:  runSearch,
}

func init() {
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	term := args[0]

	app, err := newApp(cmd.Context())
	if err != nil {
		return err
	}
	if err := app.resolveRoute(routes.Companies); err != nil {
		return err
	}

	results, err := search.Run(cmd.Context(), app.client, term)
	if err != nil {
		return err
	}

	fmt.Fprintf(os.Stdout, "Companies (%d)\n", len(results.Companies))
	for _, company := range results.Companies {
		fmt.Fprintf(os.Stdout, "  %s  (%s)\n", company.Name, company.Handle)
	}

	fmt.Fprintf(os.Stdout, "Jobs (%d)\n", len(results.Jobs))
	for _, job := range results.Jobs {
		printJob(os.Stdout, job, app.session.HasAppliedToJob(job.ID))
	}
	return nil
}
