// Package tui is the interactive terminal interface: pick a media type, pick a
// mood, then page through suggestions.
package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/moodbuster/moodbuster/media"
	"github.com/moodbuster/moodbuster/mood"
	"github.com/moodbuster/moodbuster/suggest"
	"github.com/samber/mo"
)

type Options struct {
	Suggester Suggester
	// MediaType skips the media type screen.
	MediaType mo.Option[media.Type]
	// Mood, together with MediaType, starts fetching right away.
	Mood mo.Option[mood.Mood]
	// Saved opens the saved picks first.
	Saved bool
}

func Run(options *Options) error {
	if options.Suggester == nil {
		options.Suggester = suggest.FromConfig()
	}

	bubble := newBubble(options)
	defer bubble.stopFetching()

	_, err := tea.NewProgram(bubble, tea.WithAltScreen()).Run()
	return err
}
