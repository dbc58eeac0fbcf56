package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "fractiz",
	Short: "Fraction comparison quiz for the terminal",
	Long:  "Fractiz is a terminal quiz where children compare fractions drawn as cakes, chocolate bars and juice glasses.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd, 0)
	},
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "Path to a fractiz.yaml config file")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(catalogCmd)
	rootCmd.AddCommand(draftCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(versionCmd)
}
