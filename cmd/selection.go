package cmd

import (
	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/moodbuster/moodbuster/key"
	"github.com/moodbuster/moodbuster/media"
	"github.com/moodbuster/moodbuster/mood"
	"github.com/moodbuster/moodbuster/query"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// addSelectionFlags registers --type and --mood with completions.
func addSelectionFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("type", "t", "", "Media type to suggest, see \"moodbuster types\"")
	lo.Must0(cmd.RegisterFlagCompletionFunc("type", completeMediaTypes))

	cmd.Flags().StringP("mood", "m", "", "Mood to suggest for, see \"moodbuster moods\"")
	lo.Must0(cmd.RegisterFlagCompletionFunc("mood", completeMoods))
}

func completeMediaTypes(_ *cobra.Command, _ []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	types := lo.Map(media.Types(), func(t media.Type, _ int) string { return t.String() })
	return fuzzy.FindFold(toComplete, types), cobra.ShellCompDirectiveNoFileComp
}

// completeMoods offers remembered moods first.
func completeMoods(_ *cobra.Command, _ []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	moods := lo.Map(query.Ranked(mood.All()), func(m mood.Mood, _ int) string { return m.String() })
	return fuzzy.FindFold(toComplete, moods), cobra.ShellCompDirectiveNoFileComp | cobra.ShellCompDirectiveKeepOrder
}

// mediaTypeFrom reads --type, falling back to the configured default.
func mediaTypeFrom(cmd *cobra.Command) mo.Option[media.Type] {
	value := lo.Must(cmd.Flags().GetString("type"))
	if value == "" {
		value = viper.GetString(key.DefaultMediaType)
	}
	if value == "" {
		return mo.None[media.Type]()
	}

	t, err := media.ParseType(value)
	handleErr(err)
	return mo.Some(t)
}

// moodFrom reads --mood, falling back to the configured default.
func moodFrom(cmd *cobra.Command) mo.Option[mood.Mood] {
	value := lo.Must(cmd.Flags().GetString("mood"))
	if value == "" {
		value = viper.GetString(key.DefaultMood)
	}
	if value == "" {
		return mo.None[mood.Mood]()
	}

	m, err := mood.Resolve(value)
	handleErr(err)
	return mo.Some(m)
}
