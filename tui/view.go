package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/moodbuster/moodbuster/color"
	"github.com/moodbuster/moodbuster/history"
	"github.com/moodbuster/moodbuster/icon"
	"github.com/moodbuster/moodbuster/key"
	"github.com/moodbuster/moodbuster/media"
	"github.com/moodbuster/moodbuster/style"
	"github.com/moodbuster/moodbuster/suggest"
	"github.com/muesli/reflow/wordwrap"
	"github.com/muesli/reflow/wrap"
	"github.com/spf13/viper"
)

var (
	listExtraPaddingStyle = lipgloss.NewStyle().Padding(1, 2, 1, 0)
	paddingStyle          = lipgloss.NewStyle().Padding(1, 2)
)

func (b *statefulBubble) View() string {
	var output string

	switch b.state {
	case mediaTypesState:
		output = listExtraPaddingStyle.Render(b.mediaTypesC.View())
	case moodsState:
		output = listExtraPaddingStyle.Render(b.moodsC.View())
	case loadingState:
		output = b.viewLoading()
	case suggestionState:
		output = b.viewSuggestion()
	case historyState:
		output = listExtraPaddingStyle.Render(b.historyC.View())
	case errorState:
		output = b.viewError()
	default:
		output = "Unknown state"
	}

	return b.notifier.View(output)
}

func (b *statefulBubble) viewLoading() string {
	return b.renderLines(
		true,
		[]string{
			style.Title("Loading"),
			"",
			fmt.Sprintf("%s Finding %s for a %s mood...",
				b.spinnerC.View(),
				b.machine.MediaType().Noun(),
				style.Fg(color.Purple)(b.machine.Mood().String()),
			),
		},
	)
}

func (b *statefulBubble) wrapWidth() int {
	width := viper.GetInt(key.TUIWrapWidth)
	if width <= 0 || (b.width > 0 && b.width < width) {
		width = b.width
	}
	return width
}

func (b *statefulBubble) viewSuggestion() string {
	item := b.machine.Current()
	if item == nil {
		return b.renderLines(true, []string{style.Title("Nothing to show")})
	}

	header := fmt.Sprintf("%s %s %s",
		style.Title(item.Type.String()),
		style.Faint(fmt.Sprintf("%d/%d", b.machine.Index()+1, b.machine.Len())),
		style.Faint(icon.Get(icon.Mood)+" "+b.machine.Mood().String()),
	)

	lines := []string{header, "", b.renderCard(item)}
	return b.renderLines(true, lines)
}

// renderCard lays out one suggestion: title, description, field badges and link.
func (b *statefulBubble) renderCard(item *media.Item) string {
	width := b.wrapWidth()

	title := style.Bold(item.Title)
	if history.Has(item) {
		title += " " + style.Fg(style.Yellow)(icon.Get(icon.Saved))
	}

	lines := []string{title}

	if item.Description != "" {
		lines = append(lines, "", wordwrap.String(strings.TrimSpace(item.Description), width))
	}

	fields := item.Fields()
	if len(fields) > 0 {
		lines = append(lines, "")
	}

	for i, f := range fields {
		c := style.TagPalette[i%len(style.TagPalette)]
		label := style.Tag(style.Base, c)(f.Label)
		lines = append(lines, label+" "+wordwrap.String(f.Value, max(width-lipgloss.Width(label)-1, 10)))
	}

	if item.URL != "" && viper.GetBool(key.TUIShowURLs) {
		lines = append(lines, "", fmt.Sprintf("%s %s %s",
			icon.Get(icon.Link),
			style.Fg(style.Blue)(item.LinkLabel()+":"),
			style.Faint(item.URL),
		))
	}

	return strings.Join(lines, "\n")
}

func (b *statefulBubble) viewError() string {
	err := b.machine.Err()
	if err == nil {
		err = errors.New("unknown error")
	}

	var (
		headline string
		noResult *suggest.NoResultsError
	)

	switch {
	case errors.As(err, &noResult):
		headline = icon.Get(icon.Mood) + " Nothing matched this mood"
	case errors.Is(err, suggest.ErrNotConfigured):
		headline = icon.Get(icon.Catalog) + " This catalog needs credentials, see \"moodbuster auth\""
	default:
		headline = icon.Get(icon.Fail) + " Something went wrong"
	}

	errorStyle := lipgloss.NewStyle().Foreground(style.Red).Bold(true)
	body := wrap.String(errorStyle.Render(err.Error()), b.wrapWidth())

	return b.renderLines(
		true,
		[]string{
			style.ErrorTitle("Error"),
			"",
			headline,
			"",
			body,
		},
	)
}

func (b *statefulBubble) renderLines(addHelp bool, lines []string) string {
	l := strings.Join(lines, "\n")
	h := lipgloss.Height(l)
	if addHelp {
		if b.height > h {
			l += strings.Repeat("\n", b.height-h)
		}
		l += b.helpC.View(b.keymap)
	}

	return paddingStyle.Render(l)
}
