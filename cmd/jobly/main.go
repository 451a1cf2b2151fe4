// Package main provides the entry point for the Jobly command line client.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/RachaudKeyes/jobly-frontend/internal/api"
)

var rootCmd = &cobra.Command{
	Use:           "jobly",
	Short:         "Jobly job board client",
	Long:          "Jobly is a command line client for the Jobly job board: browse companies and jobs, apply to jobs, and manage your profile.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

var (
	configPath string
	verbose    bool
)

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to JSON config file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Print per-request debug traces")
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		// Server failures carry one or more messages; render each as its
		// own alert line, the way the web forms listed them.
		for _, msg := range api.Messages(err) {
			fmt.Fprintf(os.Stderr, "Error: %s\n", msg)
		}
		os.Exit(1)
	}
}
