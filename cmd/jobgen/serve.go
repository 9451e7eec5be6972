package main

import (
	"log/slog"

	"github.com/jonathan/jobgen/internal/config"
	"github.com/jonathan/jobgen/internal/generator"
	"github.com/jonathan/jobgen/internal/llm"
	"github.com/jonathan/jobgen/internal/observability"
	"github.com/jonathan/jobgen/internal/server"
	"github.com/spf13/cobra"
)

var (
	servePort int
	logFormat string
	logLevel  string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes REST endpoints for generating job descriptions.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 8080, "Port to listen on")
	serveCmd.Flags().StringVar(&logFormat, "log-format", "console", "Log format: console or json")
	serveCmd.Flags().StringVar(&logLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := observability.NewLogger(logFormat, observability.ParseLevel(logLevel))
	slog.SetDefault(logger)

	gen := generator.New(llm.NewChatClient(cfg), logger)

	srv := server.New(server.Config{
		Port:      servePort,
		Generator: gen,
		Logger:    logger,
	})

	return srv.Start()
}
