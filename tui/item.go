package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/moodbuster/moodbuster/history"
	"github.com/moodbuster/moodbuster/icon"
	"github.com/moodbuster/moodbuster/media"
	"github.com/moodbuster/moodbuster/mood"
	"github.com/moodbuster/moodbuster/provider"
	"github.com/moodbuster/moodbuster/style"
)

// listItem adapts media types, moods and saved picks to list.Item.
type listItem struct {
	internal any
	marked   bool
}

func (t *listItem) getMark() string {
	switch t.internal.(type) {
	case mood.Mood:
		return lipgloss.NewStyle().Bold(true).Foreground(style.AccentColor).Render(icon.Get(icon.Mark))
	case media.Type:
		return style.Faint(icon.Get(icon.Catalog))
	default:
		return ""
	}
}

func (t *listItem) Title() (title string) {
	switch e := t.internal.(type) {
	case *history.SavedPick:
		title = e.Item.Title
	default:
		title = t.FilterValue()
	}

	if title != "" && t.marked {
		title = fmt.Sprintf("%s %s", title, t.getMark())
	}

	return
}

func (t *listItem) Description() (description string) {
	switch e := t.internal.(type) {
	case media.Type:
		description = e.Blurb()
		if p, ok := provider.For(e); ok && !p.Configured() {
			description += " " + style.Fg(style.Red)(fmt.Sprintf("(%s not configured)", p.Name))
		}
	case *history.SavedPick:
		var parts []string
		parts = append(parts, lipgloss.NewStyle().Foreground(style.Lavender).Render(e.Item.Type.String()))
		if e.Item.Mood != "" {
			parts = append(parts, lipgloss.NewStyle().Foreground(style.Subtext).Render(e.Item.Mood))
		}
		parts = append(parts, lipgloss.NewStyle().Foreground(style.FaintColor).Render(e.SavedAt.Format("Jan 2, 2006")))
		description = strings.Join(parts, " • ")
	}

	return
}

func (t *listItem) FilterValue() string {
	switch e := t.internal.(type) {
	case media.Type:
		return e.String()
	case mood.Mood:
		return e.String()
	case *history.SavedPick:
		return e.Item.Title
	default:
		return ""
	}
}
