package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/fractiz/internal/validator"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check a question catalog for authoring mistakes",
	Long:  "Checks every question in the catalog file (or the built-in catalog) and prints errors and warnings. Exits non-zero when any question is invalid.",
	RunE: func(cmd *cobra.Command, args []string) error {
		file, _ := cmd.Flags().GetString("file")

		cat, err := loadCatalog(file)
		if err != nil {
			return err
		}

		sum := validator.CheckAll(cat.All())
		sum.Write(cmd.OutOrStdout())
		if err := sum.Err(); err != nil {
			return fmt.Errorf("catalog has %d invalid questions", sum.Invalid)
		}
		return nil
	},
}

func init() {
	validateCmd.Flags().StringP("file", "f", "", "Catalog YAML file (default: built-in catalog)")
}
