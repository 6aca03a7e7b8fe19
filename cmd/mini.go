package cmd

import (
	"github.com/moodbuster/moodbuster/mini"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(miniCmd)

	addSelectionFlags(miniCmd)
	miniCmd.Flags().BoolP("saved", "s", false, "Start from your saved picks")
}

var miniCmd = &cobra.Command{
	Use:   "mini",
	Short: "Launch in the mini mode",
	Long:  `Prompt based mode for terminals where the full interface does not fit.`,
	Run: func(cmd *cobra.Command, args []string) {
		options := mini.Options{
			MediaType: mediaTypeFrom(cmd),
			Mood:      moodFrom(cmd),
			Saved:     lo.Must(cmd.Flags().GetBool("saved")),
		}

		handleErr(mini.Run(&options))
	},
}
