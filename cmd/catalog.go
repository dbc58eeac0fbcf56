package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/fractiz/internal/catalog"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Inspect the question catalog",
}

var catalogListCmd = &cobra.Command{
	Use:   "list",
	Short: "List questions",
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := setup(cmd, true)
		if err != nil {
			return err
		}
		defer e.Close()

		questions := e.catalog.All()
		if level, _ := cmd.Flags().GetString("level"); level != "" {
			tier, err := catalog.ParseTier(level)
			if err != nil {
				return err
			}
			questions = e.catalog.Tier(tier)
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%-12s  %-7s  %-11s  %s\n", "ID", "Level", "Type", "Options")
		fmt.Fprintln(out, strings.Repeat("─", 60))
		for _, q := range questions {
			opts := make([]string, len(q.Options))
			for i, o := range q.Options {
				opts[i] = o.DisplayText
				if o.IsCorrect {
					opts[i] += "*"
				}
			}
			fmt.Fprintf(out, "%-12s  %-7s  %-11s  %s\n", q.ID, q.Tier(), q.Type, strings.Join(opts, "  "))
		}
		fmt.Fprintf(out, "\n%d questions\n", len(questions))
		return nil
	},
}

var catalogExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the catalog as YAML to stdout",
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := setup(cmd, true)
		if err != nil {
			return err
		}
		defer e.Close()

		return catalog.WriteYAML(cmd.OutOrStdout(), e.catalog.All())
	},
}

func init() {
	catalogListCmd.Flags().StringP("level", "l", "", "Only list one level: easy, normal or hard")

	catalogCmd.AddCommand(catalogListCmd)
	catalogCmd.AddCommand(catalogExportCmd)
}
