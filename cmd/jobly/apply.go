package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/RachaudKeyes/jobly-frontend/internal/routes"
)

var applyCmd = &cobra.Command{
	Use:   "apply <jobID>",
	Short: "Apply to a job",
	Long:  "Apply to a job by id. Re-applying to a job you already applied to is a no-op, not an error.",
	Args:  cobra.ExactArgs(1),
	RunE:  runApply,
}

func init() {
	rootCmd.AddCommand(applyCmd)
}

func runApply(cmd *cobra.Command, args []string) error {
	jobID, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("job id must be an integer, got %q", args[0])
	}

	app, err := newApp(cmd.Context())
	if err != nil {
		return err
	}
	if err := app.resolveRoute(routes.Jobs); err != nil {
		return err
	}

	if app.session.HasAppliedToJob(jobID) {
		fmt.Fprintf(os.Stdout, "Already applied to job #%d\n", jobID)
		return nil
	}

	if err := app.session.ApplyToJob(cmd.Context(), jobID); err != nil {
		return err
	}

	fmt.Fprintf(os.Stdout, "Applied to job #%d\n", jobID)
	return nil
}
