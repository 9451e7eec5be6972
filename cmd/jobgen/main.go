// Package main provides the entry point for the Job Description Generator API.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "jobgen",
	Short: "Job Description Generator API",
	Long:  "Jobgen generates professional job descriptions from structured posting parameters using an LLM completion service, with a deterministic fallback when the upstream is unavailable.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
