package tui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/help"
	bubblesKey "github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/lipgloss"
	"github.com/moodbuster/moodbuster/internal/ui"
	"github.com/moodbuster/moodbuster/key"
	"github.com/moodbuster/moodbuster/media"
	"github.com/moodbuster/moodbuster/mood"
	"github.com/moodbuster/moodbuster/selection"
	"github.com/moodbuster/moodbuster/style"
	"github.com/moodbuster/moodbuster/suggest"
	"github.com/moodbuster/moodbuster/util"
	"github.com/samber/mo"
	"github.com/spf13/viper"
)

type statefulBubble struct {
	state         state
	statesHistory util.Stack[state]

	keymap *statefulKeymap

	// components
	spinnerC    spinner.Model
	mediaTypesC list.Model
	moodsC      list.Model
	historyC    list.Model
	helpC       help.Model

	machine   *selection.Machine
	suggester Suggester

	// cancel stops the fetch in flight, if any
	cancel context.CancelFunc

	width, height int
	notifier      *ui.Model

	options *Options
}

// Suggester is the part of suggest.Suggester the TUI drives.
type Suggester interface {
	Suggest(ctx context.Context, m mood.Mood, t media.Type) ([]*media.Item, error)
}

var _ Suggester = (*suggest.Suggester)(nil)

// setState follows the keymap along.
func (b *statefulBubble) setState(s state) {
	b.state = s
	b.keymap.setState(s)
}

// newState pushes the current state so esc can come back to it.
func (b *statefulBubble) newState(s state) {
	if b.state == s {
		return
	}

	if b.state != loadingState {
		b.statesHistory.Push(b.state)
	}

	b.setState(s)
}

func (b *statefulBubble) previousState() {
	if b.statesHistory.Len() > 0 {
		b.setState(b.statesHistory.Pop())
	}
}

// sync moves the screen to wherever the machine is now. Navigation history
// is dropped, the machine decides what "back" means from here on.
func (b *statefulBubble) sync() {
	b.statesHistory.Clear()
	b.setState(stateOf(b.machine.Stage()))
}

func (b *statefulBubble) resize(width, height int) {
	x, y := paddingStyle.GetFrameSize()
	xx, yy := listExtraPaddingStyle.GetFrameSize()

	listWidth := width - xx
	listHeight := height - yy

	for _, l := range []*list.Model{&b.mediaTypesC, &b.moodsC, &b.historyC} {
		l.SetSize(listWidth, listHeight)
		l.Help.Width = listWidth
	}

	b.width = width - x
	b.height = height - y
	b.helpC.Width = listWidth
}

func newBubble(options *Options) *statefulBubble {
	bubble := statefulBubble{
		statesHistory: util.Stack[state]{},
		keymap:        newStatefulKeymap(),
		machine:       selection.New(),
		suggester:     options.Suggester,
		notifier:      &ui.Model{},
		options:       options,
	}

	type listOptions struct {
		TitleStyle mo.Option[lipgloss.Style]
	}

	makeList := func(title string, description bool, options *listOptions) list.Model {
		delegate := list.NewDefaultDelegate()
		delegate.SetSpacing(viper.GetInt(key.TUIItemSpacing))
		delegate.ShowDescription = description
		delegate.Styles.SelectedTitle = lipgloss.NewStyle().
			Border(lipgloss.ThickBorder(), false, false, false, true).
			BorderForeground(style.AccentColor).
			Foreground(style.AccentColor).
			Padding(0, 0, 0, 1)
		delegate.Styles.NormalTitle = delegate.Styles.NormalTitle.Foreground(lipgloss.Color("7"))
		delegate.Styles.SelectedDesc = delegate.Styles.SelectedTitle

		listC := list.New([]list.Item{}, delegate, 0, 0)
		listC.KeyMap = bubble.keymap.forList()
		listC.AdditionalShortHelpKeys = bubble.keymap.ShortHelp
		listC.AdditionalFullHelpKeys = func() []bubblesKey.Binding {
			return bubble.keymap.FullHelp()[0]
		}
		listC.Title = title
		listC.Styles.NoItems = paddingStyle
		if titleStyle, ok := options.TitleStyle.Get(); ok {
			listC.Styles.Title = titleStyle
		}
		listC.StatusMessageLifetime = time.Second * 3
		listC.SetShowPagination(false)
		listC.SetShowStatusBar(false)

		return listC
	}

	bubble.helpC = help.New()

	bubble.spinnerC = spinner.New()
	bubble.spinnerC.Spinner = spinner.Dot
	bubble.spinnerC.Style = lipgloss.NewStyle().Foreground(style.Pink)

	bubble.mediaTypesC = makeList("What are you in the mood for?", true, &listOptions{
		TitleStyle: mo.Some(
			lipgloss.NewStyle().Foreground(style.Base).Background(style.AccentColor).Padding(0, 1),
		),
	})
	bubble.mediaTypesC.SetStatusBarItemName("media type", "media types")

	bubble.moodsC = makeList("How do you feel?", false, &listOptions{
		TitleStyle: mo.Some(
			lipgloss.NewStyle().Foreground(style.Base).Background(style.Lavender).Padding(0, 1),
		),
	})
	bubble.moodsC.SetStatusBarItemName("mood", "moods")

	bubble.historyC = makeList("Saved Picks", true, &listOptions{
		TitleStyle: mo.Some(
			lipgloss.NewStyle().Foreground(style.Base).Background(style.Yellow).Padding(0, 1),
		),
	})
	bubble.historyC.SetStatusBarItemName("pick", "picks")

	if w, h, err := util.TerminalSize(); err == nil {
		bubble.resize(w, h)
	}

	return &bubble
}
