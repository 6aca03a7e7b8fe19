package tui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/moodbuster/moodbuster/color"
	"github.com/moodbuster/moodbuster/style"
)

type statefulKeymap struct {
	state state

	quit, forceQuit,
	confirm,
	next, prev,
	openURL, save,
	changeMood, backToStart, retry,
	showSaved, remove,
	back,
	filter,
	up, down, left, right,
	top, bottom,
	showHelp key.Binding
}

func (k *statefulKeymap) setState(newState state) {
	k.state = newState
}

func newStatefulKeymap() *statefulKeymap {
	return &statefulKeymap{
		quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
		forceQuit: key.NewBinding(
			key.WithKeys("ctrl+c", "ctrl+d"),
			key.WithHelp("ctrl+c", "quit"),
		),
		confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "confirm"),
		),
		next: key.NewBinding(
			key.WithKeys("n", "right", "l"),
			key.WithHelp("n", "next"),
		),
		prev: key.NewBinding(
			key.WithKeys("p", "left", "h"),
			key.WithHelp("p", "previous"),
		),
		openURL: key.NewBinding(
			key.WithKeys("o"),
			key.WithHelp(style.Fg(color.Orange)("o"), style.Fg(color.Orange)("open link")),
		),
		save: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "save"),
		),
		changeMood: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "change mood"),
		),
		backToStart: key.NewBinding(
			key.WithKeys("b"),
			key.WithHelp("b", "start over"),
		),
		retry: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "retry"),
		),
		showSaved: key.NewBinding(
			key.WithKeys("H"),
			key.WithHelp("H", "saved picks"),
		),
		remove: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "remove"),
		),
		back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		filter: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "filter"),
		),
		up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑", "up"),
		),
		down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓", "down"),
		),
		left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←", "left"),
		),
		right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→", "right"),
		),
		top: key.NewBinding(
			key.WithKeys("g"),
			key.WithHelp("g", "top"),
		),
		bottom: key.NewBinding(
			key.WithKeys("G"),
			key.WithHelp("G", "bottom"),
		),
		showHelp: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
	}
}

func (k *statefulKeymap) help() ([]key.Binding, []key.Binding) {
	h := func(bindings ...key.Binding) []key.Binding {
		return bindings
	}

	to2 := func(a []key.Binding) ([]key.Binding, []key.Binding) {
		return a, a
	}

	switch k.state {
	case mediaTypesState:
		return h(k.confirm, k.showSaved), h(k.confirm, k.filter, k.showSaved)
	case moodsState:
		return h(k.confirm, k.back), h(k.confirm, k.filter, k.showSaved, k.backToStart, k.back)
	case loadingState:
		return to2(h(k.forceQuit, k.back))
	case suggestionState:
		return h(k.next, k.prev, k.openURL, k.save, k.changeMood), h(k.next, k.prev, k.openURL, k.save, k.changeMood, k.backToStart, k.showSaved, k.quit)
	case historyState:
		return to2(h(k.openURL, k.remove, k.back))
	case errorState:
		return to2(h(k.retry, k.changeMood, k.backToStart, k.quit))
	default:
		return to2(h())
	}
}

func (k *statefulKeymap) ShortHelp() []key.Binding {
	short, _ := k.help()
	return short
}

func (k *statefulKeymap) FullHelp() [][]key.Binding {
	_, full := k.help()
	return [][]key.Binding{full}
}

func (k *statefulKeymap) forList() list.KeyMap {
	return list.KeyMap{
		CursorUp:             k.up,
		CursorDown:           k.down,
		NextPage:             k.right,
		PrevPage:             k.left,
		GoToStart:            k.top,
		GoToEnd:              k.bottom,
		Filter:               k.filter,
		ClearFilter:          k.back,
		CancelWhileFiltering: k.back,
		AcceptWhileFiltering: k.confirm,
		ShowFullHelp:         k.showHelp,
		CloseFullHelp:        k.showHelp,
		Quit:                 k.quit,
		ForceQuit:            k.forceQuit,
	}
}
