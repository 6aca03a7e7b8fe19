package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"reflect"
	"time"

	"github.com/goccy/go-json"
	"github.com/invopop/jsonschema"
	"github.com/moodbuster/moodbuster/filesystem"
	"github.com/moodbuster/moodbuster/inline"
	"github.com/moodbuster/moodbuster/key"
	"github.com/moodbuster/moodbuster/media"
	"github.com/moodbuster/moodbuster/mood"
	"github.com/moodbuster/moodbuster/util"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.AddCommand(inlineCmd)

	addSelectionFlags(inlineCmd)
	inlineCmd.Flags().StringP("genre", "g", "", "Movie genre name or TMDB id, implies --type movie")
	lo.Must0(inlineCmd.RegisterFlagCompletionFunc("genre", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return lo.Map(mood.Genres(), func(g mood.Genre, _ int) string { return g.Name }), cobra.ShellCompDirectiveNoFileComp
	}))

	inlineCmd.Flags().StringP("pick", "p", "", "Which suggestions to print: first, last, random, all, an index or a range like 0-4")
	inlineCmd.Flags().BoolP("json", "j", false, "Print as json")
	inlineCmd.Flags().StringP("output", "o", "", "Write to this file instead of stdout")

	inlineCmd.Flags().IntP("limit", "l", 0, "Keep at most this many suggestions")
	lo.Must0(viper.BindPFlag(key.SuggestLimit, inlineCmd.Flags().Lookup("limit")))
}

var inlineCmd = &cobra.Command{
	Use:   "inline",
	Short: "Fetch suggestions without any interface, for scripts",
	Long: `Fetch suggestions for a mood and print them.

Pickers:
  first - first suggestion
  last - last suggestion
  random - one random suggestion
  all - every suggestion (default)
  [number] - suggestion by index (starting from 0)
  [from]-[to] - suggestions by range

Use --json for machine readable output, "moodbuster inline schema" prints its schema.`,
	Example: `  moodbuster inline --mood cozy --type book --pick first
  moodbuster inline -m "edge of your seat" -g thriller --json`,
	Run: func(cmd *cobra.Command, args []string) {
		options := &inline.Options{
			Json: lo.Must(cmd.Flags().GetBool("json")),
		}

		m, ok := moodFrom(cmd).Get()
		if !ok {
			handleErr(fmt.Errorf("mood is required, see \"moodbuster moods\""))
		}
		options.Mood = m

		if name := lo.Must(cmd.Flags().GetString("genre")); name != "" {
			g, err := mood.ParseGenre(name)
			handleErr(err)
			options.Genre = mo.Some(g)
		}

		t, ok := mediaTypeFrom(cmd).Get()
		switch {
		case options.Genre.IsPresent():
			if ok && t != media.Movie {
				handleErr(fmt.Errorf("--genre only works with movies, got %s", t))
			}
			t = media.Movie
		case !ok:
			handleErr(fmt.Errorf("media type is required, see \"moodbuster types\""))
		}
		options.Type = t

		if pick := lo.Must(cmd.Flags().GetString("pick")); pick != "" {
			picker, err := inline.ParsePicker(pick)
			handleErr(err)
			options.Picker = mo.Some(picker)
		}

		var out io.Writer = os.Stdout
		if output := lo.Must(cmd.Flags().GetString("output")); output != "" {
			file, err := filesystem.API().Create(output)
			handleErr(err)
			defer util.Ignore(file.Close)
			out = file
		}
		options.Out = out

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()

		if seconds := viper.GetInt(key.SuggestTimeout); seconds > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, time.Duration(seconds)*time.Second)
			defer cancel()
		}

		handleErr(inline.Run(ctx, options))
	},
}

func init() {
	inlineCmd.AddCommand(inlineSchemaCmd)
}

var inlineSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the json schema of the inline output",
	Run: func(cmd *cobra.Command, args []string) {
		reflector := new(jsonschema.Reflector)
		reflector.Anonymous = true
		reflector.Namer = func(t reflect.Type) string {
			return t.Name()
		}

		schema := reflector.Reflect(&inline.Output{})
		handleErr(json.NewEncoder(os.Stdout).Encode(schema))
	},
}
