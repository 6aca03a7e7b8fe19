package tui

import (
	"fmt"

	bubblesKey "github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/moodbuster/moodbuster/history"
	"github.com/moodbuster/moodbuster/internal/ui"
	"github.com/moodbuster/moodbuster/media"
	"github.com/moodbuster/moodbuster/mood"
	"github.com/moodbuster/moodbuster/provider"
	"github.com/moodbuster/moodbuster/util"
	"github.com/samber/lo"
)

func (b *statefulBubble) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	if uiCmd := b.notifier.Update(msg); uiCmd != nil {
		cmd = uiCmd
	}

	switch msg := msg.(type) {
	case provider.CheckedMsg:
		return b, tea.Batch(cmd, b.onChecked(msg))
	case fetchedMsg:
		b.onFetched(msg)
		return b, cmd
	case tea.WindowSizeMsg:
		b.resize(msg.Width, msg.Height)
	case tea.KeyMsg:
		if bubblesKey.Matches(msg, b.keymap.forceQuit) {
			return b, tea.Quit
		}

		if bubblesKey.Matches(msg, b.keymap.back) && !b.filtering() {
			return b, tea.Batch(cmd, b.back())
		}
	}

	var stateCmd tea.Cmd
	switch b.state {
	case mediaTypesState:
		stateCmd = b.updateMediaTypes(msg)
	case moodsState:
		stateCmd = b.updateMoods(msg)
	case loadingState:
		stateCmd = b.updateLoading(msg)
	case suggestionState:
		stateCmd = b.updateSuggestion(msg)
	case historyState:
		stateCmd = b.updateHistory(msg)
	case errorState:
		stateCmd = b.updateError(msg)
	}

	return b, tea.Batch(cmd, stateCmd)
}

// filtering reports whether the visible list is taking text input.
func (b *statefulBubble) filtering() bool {
	switch b.state {
	case mediaTypesState:
		return b.mediaTypesC.FilterState() != list.Unfiltered
	case moodsState:
		return b.moodsC.FilterState() != list.Unfiltered
	case historyState:
		return b.historyC.FilterState() != list.Unfiltered
	default:
		return false
	}
}

func (b *statefulBubble) back() tea.Cmd {
	switch b.state {
	case historyState:
		b.previousState()
		if b.state == historyState {
			// saved picks were the first screen
			b.sync()
		}
		return nil
	case moodsState:
		return b.backToStart()
	case loadingState, suggestionState, errorState:
		return b.changeMood()
	default:
		return nil
	}
}

// onChecked warns about catalogs that cannot answer right now.
func (b *statefulBubble) onChecked(msg provider.CheckedMsg) tea.Cmd {
	down := lo.Filter(msg.Reports, func(r *provider.Report, _ int) bool {
		return r.Configured && r.Err != nil
	})

	if len(down) == 0 {
		return nil
	}

	names := lo.Map(down, func(r *provider.Report, _ int) string { return r.Provider.Name })
	return ui.Notify(fmt.Sprintf("%s unreachable: %v", util.Quantify(len(down), "catalog", "catalogs"), names))
}

func (b *statefulBubble) updateMediaTypes(msg tea.Msg) tea.Cmd {
	if msg, ok := msg.(tea.KeyMsg); ok && !b.filtering() {
		switch {
		case bubblesKey.Matches(msg, b.keymap.confirm):
			if item, ok := b.mediaTypesC.SelectedItem().(*listItem); ok {
				return b.pickMediaType(item.internal.(media.Type))
			}
			return nil
		case bubblesKey.Matches(msg, b.keymap.showSaved):
			return b.showSaved()
		}
	}

	var cmd tea.Cmd
	b.mediaTypesC, cmd = b.mediaTypesC.Update(msg)
	return cmd
}

func (b *statefulBubble) updateMoods(msg tea.Msg) tea.Cmd {
	if msg, ok := msg.(tea.KeyMsg); ok && !b.filtering() {
		switch {
		case bubblesKey.Matches(msg, b.keymap.confirm):
			if item, ok := b.moodsC.SelectedItem().(*listItem); ok {
				return b.pickMood(item.internal.(mood.Mood))
			}
			return nil
		case bubblesKey.Matches(msg, b.keymap.backToStart):
			return b.backToStart()
		case bubblesKey.Matches(msg, b.keymap.showSaved):
			return b.showSaved()
		}
	}

	var cmd tea.Cmd
	b.moodsC, cmd = b.moodsC.Update(msg)
	return cmd
}

func (b *statefulBubble) updateLoading(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		var cmd tea.Cmd
		b.spinnerC, cmd = b.spinnerC.Update(msg)
		return cmd
	case tea.KeyMsg:
		if bubblesKey.Matches(msg, b.keymap.quit) {
			return tea.Quit
		}
	}

	return nil
}

func (b *statefulBubble) updateSuggestion(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}

	switch {
	case bubblesKey.Matches(keyMsg, b.keymap.next):
		_, _ = b.machine.Next()
	case bubblesKey.Matches(keyMsg, b.keymap.prev):
		_, _ = b.machine.Prev()
	case bubblesKey.Matches(keyMsg, b.keymap.openURL):
		return b.openItem(b.machine.Current())
	case bubblesKey.Matches(keyMsg, b.keymap.save):
		return b.saveItem(b.machine.Current())
	case bubblesKey.Matches(keyMsg, b.keymap.changeMood):
		return b.changeMood()
	case bubblesKey.Matches(keyMsg, b.keymap.backToStart):
		return b.backToStart()
	case bubblesKey.Matches(keyMsg, b.keymap.showSaved):
		return b.showSaved()
	case bubblesKey.Matches(keyMsg, b.keymap.quit):
		return tea.Quit
	}

	return nil
}

func (b *statefulBubble) updateHistory(msg tea.Msg) tea.Cmd {
	if msg, ok := msg.(tea.KeyMsg); ok && !b.filtering() {
		item, ok := b.historyC.SelectedItem().(*listItem)

		switch {
		case bubblesKey.Matches(msg, b.keymap.openURL), bubblesKey.Matches(msg, b.keymap.confirm):
			if ok {
				return b.openItem(item.internal.(*history.SavedPick).Item)
			}
			return nil
		case bubblesKey.Matches(msg, b.keymap.remove):
			if ok {
				return b.removePick(item.internal.(*history.SavedPick))
			}
			return nil
		}
	}

	var cmd tea.Cmd
	b.historyC, cmd = b.historyC.Update(msg)
	return cmd
}

func (b *statefulBubble) updateError(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}

	switch {
	case bubblesKey.Matches(keyMsg, b.keymap.retry):
		return b.retry()
	case bubblesKey.Matches(keyMsg, b.keymap.changeMood):
		return b.changeMood()
	case bubblesKey.Matches(keyMsg, b.keymap.backToStart):
		return b.backToStart()
	case bubblesKey.Matches(keyMsg, b.keymap.quit):
		return tea.Quit
	}

	return nil
}
