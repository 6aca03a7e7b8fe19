package cmd

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/goccy/go-json"
	"github.com/moodbuster/moodbuster/color"
	"github.com/moodbuster/moodbuster/history"
	"github.com/moodbuster/moodbuster/icon"
	"github.com/moodbuster/moodbuster/style"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.SetOut(os.Stdout)
}

var historyCmd = &cobra.Command{
	Use:     "history",
	Aliases: []string{"saved"},
	Short:   "Manage saved picks",
}

func init() {
	historyCmd.AddCommand(historyListCmd)
	historyListCmd.Flags().BoolP("json", "j", false, "Print as json")
	historyListCmd.Flags().BoolP("urls", "u", false, "Show links")
}

var historyListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List saved picks, newest first",
	Run: func(cmd *cobra.Command, args []string) {
		picks, err := history.List()
		handleErr(err)

		if lo.Must(cmd.Flags().GetBool("json")) {
			handleErr(json.NewEncoder(cmd.OutOrStdout()).Encode(picks))
			return
		}

		if len(picks) == 0 {
			cmd.Println(style.Faint("Nothing saved yet"))
			return
		}

		showURLs := lo.Must(cmd.Flags().GetBool("urls"))
		for i, p := range picks {
			cmd.Printf("%s %s %s\n",
				style.Faint(fmt.Sprintf("%3d", i+1)),
				style.Bold(p.Item.Title),
				style.Faint(fmt.Sprintf("%s, %s", p.Item.Type, p.SavedAt.Format("2006-01-02"))),
			)
			if showURLs && p.Item.URL != "" {
				cmd.Printf("    %s\n", style.Fg(color.Blue)(p.Item.URL))
			}
		}
	},
}

func init() {
	historyCmd.AddCommand(historyRemoveCmd)
}

// pickFrom finds a saved pick by its 1-based list position or its title.
func pickFrom(picks []*history.SavedPick, arg string) (*history.SavedPick, error) {
	if n, err := strconv.Atoi(arg); err == nil {
		if n < 1 || n > len(picks) {
			return nil, fmt.Errorf("no saved pick at %d, there are %d", n, len(picks))
		}
		return picks[n-1], nil
	}

	pick, ok := lo.Find(picks, func(p *history.SavedPick) bool {
		return strings.EqualFold(p.Item.Title, strings.TrimSpace(arg))
	})
	if !ok {
		return nil, fmt.Errorf("no saved pick titled %q", arg)
	}
	return pick, nil
}

var historyRemoveCmd = &cobra.Command{
	Use:     "remove <number|title>",
	Aliases: []string{"rm"},
	Short:   "Forget a saved pick",
	Args:    cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		picks, err := history.List()
		handleErr(err)

		pick, err := pickFrom(picks, args[0])
		handleErr(err)

		handleErr(history.Remove(pick))
		cmd.Printf("%s %s removed\n", style.Fg(color.Green)(icon.Get(icon.Success)), style.Bold(pick.Item.Title))
	},
}
