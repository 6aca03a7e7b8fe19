package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/goccy/go-json"
	"github.com/moodbuster/moodbuster/color"
	"github.com/moodbuster/moodbuster/icon"
	"github.com/moodbuster/moodbuster/media"
	"github.com/moodbuster/moodbuster/mood"
	"github.com/moodbuster/moodbuster/provider"
	"github.com/moodbuster/moodbuster/query"
	"github.com/moodbuster/moodbuster/style"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(moodsCmd)

	moodsCmd.Flags().BoolP("ranked", "r", false, "Put the moods you pick most first")
	moodsCmd.Flags().BoolP("profile", "p", false, "Show the keywords each mood searches with")
	moodsCmd.SetOut(os.Stdout)
}

var moodsCmd = &cobra.Command{
	Use:   "moods",
	Short: "List the moods",
	Run: func(cmd *cobra.Command, args []string) {
		moods := mood.All()
		if lo.Must(cmd.Flags().GetBool("ranked")) {
			moods = query.Ranked(moods)
		}

		remembered := query.SuggestMany("")
		showProfile := lo.Must(cmd.Flags().GetBool("profile"))

		for _, m := range moods {
			line := m.String()
			if lo.Contains(remembered, m) {
				line += " " + style.Fg(color.Yellow)(icon.Get(icon.Mark))
			}
			cmd.Println(line)

			if showProfile {
				p := mood.ProfileOf(m)
				row := func(label string, values []string) {
					if len(values) > 0 {
						cmd.Printf("  %s %s\n", style.Faint(label), strings.Join(values, ", "))
					}
				}
				row("genres:", lo.Map(p.TMDBGenres, func(id int, _ int) string { return mood.GenreName(id) }))
				row("games:", p.Games)
				row("music:", p.Music)
				row("books:", p.Books)
				row("food:", p.Food)
				row("drink:", p.Drink)
			}
		}
	},
}

func init() {
	rootCmd.AddCommand(typesCmd)
	typesCmd.SetOut(os.Stdout)
}

var typesCmd = &cobra.Command{
	Use:   "types",
	Short: "List the media types and the catalog behind each",
	Run: func(cmd *cobra.Command, args []string) {
		for _, t := range media.Types() {
			status := ""
			if p, ok := provider.For(t); ok && !p.Configured() {
				status = " " + style.Fg(color.Red)("(not configured)")
			}

			cmd.Printf("%s %s%s\n", style.Bold(t.String()), style.Faint(t.Blurb()), status)
		}
	},
}

func init() {
	rootCmd.AddCommand(genresCmd)
	genresCmd.Flags().BoolP("json", "j", false, "Print as json")
	genresCmd.SetOut(os.Stdout)
}

var genresCmd = &cobra.Command{
	Use:   "genres",
	Short: "List the movie genres usable with \"inline --genre\"",
	Run: func(cmd *cobra.Command, args []string) {
		if lo.Must(cmd.Flags().GetBool("json")) {
			handleErr(json.NewEncoder(cmd.OutOrStdout()).Encode(mood.Genres()))
			return
		}

		for _, g := range mood.Genres() {
			cmd.Println(fmt.Sprintf("%s %s", style.Faint(fmt.Sprintf("%5d", g.ID)), g.Name))
		}
	},
}
