// Package cmd implements the moodbuster command line.
package cmd

import (
	"fmt"
	"os"
	"strings"

	cc "github.com/ivanpirog/coloredcobra"
	"github.com/moodbuster/moodbuster/color"
	"github.com/moodbuster/moodbuster/constant"
	"github.com/moodbuster/moodbuster/icon"
	"github.com/moodbuster/moodbuster/key"
	"github.com/moodbuster/moodbuster/log"
	"github.com/moodbuster/moodbuster/style"
	"github.com/moodbuster/moodbuster/tui"
	"github.com/moodbuster/moodbuster/util"
	"github.com/moodbuster/moodbuster/version"
	"github.com/moodbuster/moodbuster/where"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.Flags().BoolP("version", "v", false, "Print the application version")

	rootCmd.PersistentFlags().StringP("icons", "I", "", "Icons variant (emoji, kaomoji, plain, squares, nerd)")
	lo.Must0(rootCmd.RegisterFlagCompletionFunc("icons", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return icon.AvailableVariants(), cobra.ShellCompDirectiveDefault
	}))
	lo.Must0(viper.BindPFlag(key.IconsVariant, rootCmd.PersistentFlags().Lookup("icons")))

	rootCmd.PersistentFlags().Bool("save-on-open", true, "Save a suggestion to your picks when its link is opened")
	lo.Must0(viper.BindPFlag(key.HistorySaveOnOpen, rootCmd.PersistentFlags().Lookup("save-on-open")))

	addSelectionFlags(rootCmd)
	rootCmd.Flags().BoolP("saved", "s", false, "Start from your saved picks")

	helpFunc := rootCmd.HelpFunc()
	rootCmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		helpFunc(cmd, args)
		version.Notify()
	})

	go func() {
		_ = util.Delete(where.Temp())
	}()
}

var rootCmd = &cobra.Command{
	Use:   constant.Moodbuster,
	Short: "Suggestions for whatever you are in the mood for",
	Long: constant.AsciiArtLogo + "\n" +
		style.New().Italic(true).Foreground(color.HiPurple).Render("    - Movies, music, books, food and more, picked by how you feel"),
	Run: func(cmd *cobra.Command, args []string) {
		if cmd.Flags().Changed("version") {
			versionCmd.Run(versionCmd, args)
			return
		}

		options := tui.Options{
			MediaType: mediaTypeFrom(cmd),
			Mood:      moodFrom(cmd),
			Saved:     lo.Must(cmd.Flags().GetBool("saved")),
		}
		handleErr(tui.Run(&options))
	},
}

// Execute runs the root command.
func Execute() {
	if viper.GetBool(key.CliColored) {
		cc.Init(&cc.Config{
			RootCmd:       rootCmd,
			Headings:      cc.HiCyan + cc.Bold + cc.Underline,
			Commands:      cc.HiYellow + cc.Bold,
			Example:       cc.Italic,
			ExecName:      cc.Bold,
			Flags:         cc.Bold,
			FlagsDataType: cc.Italic + cc.HiBlue,
		})
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func handleErr(err error) {
	if err != nil {
		log.Error(err)
		_, _ = fmt.Fprintf(os.Stderr, "%s %s\n", icon.Get(icon.Fail), strings.Trim(err.Error(), " \n"))
		os.Exit(1)
	}
}
