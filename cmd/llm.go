package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/abhisek/fractiz/internal/llm"
)

var llmCmd = &cobra.Command{
	Use:   "llm",
	Short: "Check the LLM provider used for drafting",
}

var pingSchema = &llm.Schema{
	Name:        "ping",
	Description: "Connectivity check",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"ok": map[string]any{"type": "boolean"},
		},
		"required":             []any{"ok"},
		"additionalProperties": false,
	},
}

var llmPingCmd = &cobra.Command{
	Use:   "ping",
	Short: "Send a tiny structured request and report latency and usage",
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := setup(cmd, true)
		if err != nil {
			return err
		}
		defer e.Close()

		provider, err := newProvider(cmd, e)
		if err != nil {
			return err
		}

		ctx := llm.WithPurpose(cmd.Context(), "ping")
		start := time.Now()
		resp, err := provider.Generate(ctx, llm.Request{
			System:    "You are a health check. Reply with ok set to true.",
			Messages:  []llm.Message{{Role: llm.RoleUser, Content: "ping"}},
			Schema:    pingSchema,
			MaxTokens: 32,
		})
		if err != nil {
			return fmt.Errorf("ping %s: %w", provider.ModelID(), err)
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Model:    %s\n", resp.Model)
		fmt.Fprintf(out, "Latency:  %dms\n", time.Since(start).Milliseconds())
		fmt.Fprintf(out, "Tokens:   %d in / %d out\n", resp.Usage.InputTokens, resp.Usage.OutputTokens)
		if cost := llm.LookupCost(resp.Model); cost != nil {
			fmt.Fprintf(out, "Cost:     %s\n", formatCost(cost.Cost(resp.Usage.InputTokens, resp.Usage.OutputTokens)))
		}
		fmt.Fprintf(out, "Response: %s\n", resp.Content)
		return nil
	},
}

func formatCost(c float64) string {
	if c < 0.01 {
		return fmt.Sprintf("$%.4f", c)
	}
	return fmt.Sprintf("$%.2f", c)
}

func init() {
	llmCmd.AddCommand(llmPingCmd)
}
