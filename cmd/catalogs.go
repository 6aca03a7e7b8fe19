package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/moodbuster/moodbuster/color"
	"github.com/moodbuster/moodbuster/icon"
	"github.com/moodbuster/moodbuster/media"
	"github.com/moodbuster/moodbuster/provider"
	"github.com/moodbuster/moodbuster/style"
	"github.com/moodbuster/moodbuster/util"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(catalogsCmd)
	catalogsCmd.Flags().BoolP("check", "c", false, "Check that every catalog can be reached")
	catalogsCmd.SetOut(os.Stdout)
}

var catalogsCmd = &cobra.Command{
	Use:     "catalogs",
	Aliases: []string{"providers"},
	Short:   "List the catalogs suggestions come from",
	Run: func(cmd *cobra.Command, args []string) {
		var reports map[string]*provider.Report

		if lo.Must(cmd.Flags().GetBool("check")) {
			ctx, cancel := context.WithTimeout(context.Background(), provider.CheckTimeout)
			defer cancel()

			erase := util.PrintErasable(fmt.Sprintf("%s Checking catalogs...", icon.Get(icon.Progress)))
			reports = lo.KeyBy(provider.CheckAll(ctx), func(r *provider.Report) string {
				return r.Provider.ID
			})
			erase()
		}

		for i, p := range provider.Builtins() {
			header := style.New().Bold(true).Foreground(color.HiPurple).Render(p.Name)
			if p.Configured() {
				header += " " + style.Fg(color.Green)(icon.Get(icon.Success))
			} else {
				header += " " + style.Fg(color.Red)(icon.Get(icon.Fail))
			}
			cmd.Println(header)

			types := lo.Map(p.MediaTypes, func(t media.Type, _ int) string { return t.String() })
			cmd.Printf("  %s %s\n", style.Faint("serves"), strings.Join(types, ", "))
			cmd.Printf("  %s %s\n", style.Faint("api"), p.BaseURL())

			if missing := p.Missing(); len(missing) > 0 {
				cmd.Printf("  %s %s\n", style.Faint("missing"), style.Fg(color.Yellow)(strings.Join(missing, ", ")))
				cmd.Printf("  %s %s\n", style.Faint("get a key at"), p.Website)
			}

			if r, ok := reports[p.ID]; ok {
				if r.Err != nil {
					cmd.Printf("  %s %s\n", style.Faint("reachable"), style.Fg(color.Red)(r.Err.Error()))
				} else {
					cmd.Printf("  %s %s\n", style.Faint("reachable"), style.Fg(color.Green)("yes"))
				}
			}

			if i < len(provider.Builtins())-1 {
				cmd.Println()
			}
		}
	},
}
