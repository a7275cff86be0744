package main

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"ragagent-api/internal/config"
	"ragagent-api/internal/llm"
	"ragagent-api/internal/service"
)

func newInferCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "infer [prompt]",
		Short: "Run one inference call and print the generated text",
		Long: `Sends the prompt to the configured model exactly as the /chat endpoint would.
Without arguments the prompt is read from stdin.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}
			setupLogging(cfg)

			client := llm.NewInferenceClient(cfg.HFModelURL, cfg.HFAPIToken)
			return runInfer(cmd.Context(), client, args, cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}
}

// runInfer joins args into the prompt, or reads it from in when args is empty.
// A single trailing newline from stdin is dropped; the prompt is otherwise sent verbatim.
func runInfer(ctx context.Context, client service.LLMClient, args []string, in io.Reader, out io.Writer) error {
	var prompt string
	if len(args) > 0 {
		prompt = strings.Join(args, " ")
	} else {
		b, err := io.ReadAll(in)
		if err != nil {
			return fmt.Errorf("read prompt: %w", err)
		}
		prompt = strings.TrimSuffix(string(b), "\n")
	}

	text, err := client.Infer(ctx, prompt)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(out, text)
	return err
}
