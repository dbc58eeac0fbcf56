package cmd

import (
	"github.com/spf13/cobra"

	"github.com/abhisek/fractiz/internal/catalog"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start a game straight at a level",
	RunE: func(cmd *cobra.Command, args []string) error {
		level, _ := cmd.Flags().GetString("level")
		tier, err := catalog.ParseTier(level)
		if err != nil {
			return err
		}
		return runApp(cmd, tier)
	},
}

func init() {
	playCmd.Flags().StringP("level", "l", "easy", "Level to play: easy, normal or hard")
}
