package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"ragagent-api/internal/config"
)

//go:generate swagger generate spec -o swagger.json

// General API information
//
// This API relays chat messages to a hosted text-generation model and returns the generated reply.
//
// swagger:meta
//
// ---
// swagger: '2.0'
// info:
//   title: RAG Agent API
//   description: |
//     Stateless chat relay in front of a Hugging Face inference endpoint.
//     Each chat request becomes exactly one inference call; nothing is stored.
//   version: 1.0.0
// schemes:
//   - http
//   - https
// consumes:
//   - application/json
// produces:
//   - application/json

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	serve := newServeCmd()

	root := &cobra.Command{
		Use:   "ragagent-api",
		Short: "Chat relay in front of a hosted text-generation model",
		Long: `ragagent-api relays chat messages to a Hugging Face inference endpoint.

  ragagent-api serve              Start the HTTP API (default)
  ragagent-api infer "hello"      Run one inference call and print the reply`,
		SilenceUsage: true,
		RunE:         serve.RunE,
	}
	root.AddCommand(serve, newInferCmd())
	return root
}

// setupLogging installs the process-wide slog logger described by cfg.
func setupLogging(cfg *config.Config) {
	opts := &slog.HandlerOptions{
		Level: cfg.LogLevel,
	}
	var handler slog.Handler
	if cfg.LogFormat == "json" {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}
	slog.SetDefault(slog.New(handler))
	slog.Debug("Logging configured", "level", cfg.LogLevel.String(), "format", cfg.LogFormat)
}
