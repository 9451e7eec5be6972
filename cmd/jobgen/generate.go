package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/jonathan/jobgen/internal/config"
	"github.com/jonathan/jobgen/internal/generator"
	"github.com/jonathan/jobgen/internal/llm"
	"github.com/jonathan/jobgen/internal/observability"
	"github.com/jonathan/jobgen/internal/types"
	"github.com/spf13/cobra"
)

var generateInput string

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a single job description from a JSON request",
	Long:  `Read a job request JSON document from a file (or stdin with -) and print the generated description.`,
	RunE:  runGenerate,
}

func init() {
	generateCmd.Flags().StringVar(&generateInput, "input", "-", "Path to the job request JSON file, or - for stdin")
	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	var reader io.Reader = cmd.InOrStdin()
	if generateInput != "-" {
		f, err := os.Open(generateInput)
		if err != nil {
			return fmt.Errorf("failed to open input file: %w", err)
		}
		defer f.Close()
		reader = f
	}

	var req types.JobRequest
	if err := json.NewDecoder(reader).Decode(&req); err != nil {
		return fmt.Errorf("failed to parse job request: %w", err)
	}
	if err := req.Validate(); err != nil {
		return fmt.Errorf("invalid job request: %w", err)
	}

	logger := observability.NewLogger("console", slog.LevelWarn)
	gen := generator.New(llm.NewChatClient(cfg), logger)

	desc, err := gen.Generate(context.Background(), &req)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(desc)
}
