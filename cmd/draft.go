package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/fractiz/internal/catalog"
	"github.com/abhisek/fractiz/internal/draft"
	"github.com/abhisek/fractiz/internal/llm"
)

var draftCmd = &cobra.Command{
	Use:   "draft",
	Short: "Draft new catalog questions with an LLM",
	Long:  "Asks the configured LLM for new questions, validates them, and prints the accepted ones as catalog YAML. Rejected drafts are reported on stderr.",
	RunE: func(cmd *cobra.Command, args []string) error {
		level, _ := cmd.Flags().GetString("level")
		typ, _ := cmd.Flags().GetString("type")
		count, _ := cmd.Flags().GetInt("count")

		tier, err := catalog.ParseTier(level)
		if err != nil {
			return err
		}

		e, err := setup(cmd, true)
		if err != nil {
			return err
		}
		defer e.Close()

		provider, err := newProvider(cmd, e)
		if err != nil {
			return err
		}

		d := draft.New(provider, e.catalog, draft.DefaultConfig(), e.logger)
		res, draftErr := d.Draft(cmd.Context(), draft.Request{
			Tier:  tier,
			Type:  catalog.QuestionType(typ),
			Count: count,
		})
		if res == nil {
			return draftErr
		}

		stderr := cmd.ErrOrStderr()
		for _, r := range res.Rejected {
			fmt.Fprintln(stderr, r)
		}
		fmt.Fprintf(stderr, "%d accepted, %d rejected\n", len(res.Accepted), len(res.Rejected))

		if len(res.Accepted) > 0 {
			if err := catalog.WriteYAML(cmd.OutOrStdout(), res.Accepted); err != nil {
				return fmt.Errorf("write drafts: %w", err)
			}
		}
		return draftErr
	},
}

// newProvider builds the LLM provider from config, explaining how to set a
// key when none is found.
func newProvider(cmd *cobra.Command, e *env) (llm.Provider, error) {
	cfg, ok := e.cfg.LLM.Resolve()
	if !ok {
		return nil, errors.New("no LLM provider configured: set llm.provider or one of FRACTIZ_GEMINI_API_KEY, FRACTIZ_OPENAI_API_KEY, FRACTIZ_ANTHROPIC_API_KEY, FRACTIZ_OPENROUTER_API_KEY")
	}
	p, err := llm.NewProvider(cmd.Context(), cfg, e.logger)
	if err != nil {
		return nil, fmt.Errorf("create LLM provider: %w", err)
	}
	e.logger.Debug("llm provider ready",
		zap.String("provider", cfg.Provider),
		zap.String("model", p.ModelID()),
	)
	return p, nil
}

func init() {
	draftCmd.Flags().StringP("level", "l", "normal", "Level of the drafted questions: easy, normal or hard")
	draftCmd.Flags().StringP("type", "t", string(catalog.TypeCompare), "Question type: compare, equivalent or oddOneOut")
	draftCmd.Flags().IntP("count", "n", 3, "Number of questions to draft")
}
