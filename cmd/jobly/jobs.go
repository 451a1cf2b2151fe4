package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/RachaudKeyes/jobly-frontend/internal/routes"
	"github.com/RachaudKeyes/jobly-frontend/internal/types"
)

var jobsCmd = &cobra.Command{
	Use:   "jobs",
	Short: "List jobs, optionally filtered by title",
	RunE:  runJobs,
}

var jobsTitle string

func init() {
	jobsCmd.Flags().StringVarP(&jobsTitle, "title", "t", "", "Case-insensitive substring to match against job titles")

	rootCmd.AddCommand(jobsCmd)
}

func runJobs(cmd *cobra.Command, args []string) error {
	app, err := newApp(cmd.Context())
	if err != nil {
		return err
	}
	if err := app.resolveRoute(routes.Jobs); err != nil {
		return err
	}

	jobs, err := app.client.ListJobs(cmd.Context(), jobsTitle)
	if err != nil {
		return err
	}

	if len(jobs) == 0 {
		fmt.Fprintf(os.Stdout, "Sorry, no results were found!\n")
		return nil
	}

	for _, job := range jobs {
		printJob(os.Stdout, job, app.session.HasAppliedToJob(job.ID))
	}
	return nil
}

func printJob(out io.Writer, job types.Job, applied bool) {
	marker := ""
	if applied {
		marker = "  [applied]"
	}
	fmt.Fprintf(out, "#%d  %s — %s%s\n", job.ID, job.Title, job.CompanyName, marker)
	if job.Salary != nil {
		fmt.Fprintf(out, "    Salary: $%s\n", formatSalary(*job.Salary))
	}
	if job.Equity != nil {
		fmt.Fprintf(out, "    Equity: %s\n", job.Equity.String())
	}
}

// formatSalary renders an integer salary like "1,250,343".
func formatSalary(salary int) string {
	digits := fmt.Sprintf("%d", salary)
	var grouped []byte
	for i, d := range []byte(digits) {
		if i > 0 && (len(digits)-i)%3 == 0 {
			grouped = append(grouped, ',')
		}
		grouped = append(grouped, d)
	}
	return string(grouped)
}
