package tui

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/moodbuster/moodbuster/history"
	"github.com/moodbuster/moodbuster/icon"
	"github.com/moodbuster/moodbuster/internal/ui"
	"github.com/moodbuster/moodbuster/key"
	"github.com/moodbuster/moodbuster/log"
	"github.com/moodbuster/moodbuster/media"
	"github.com/moodbuster/moodbuster/mood"
	"github.com/moodbuster/moodbuster/open"
	"github.com/moodbuster/moodbuster/query"
	"github.com/moodbuster/moodbuster/selection"
	"github.com/samber/lo"
	"github.com/spf13/viper"
)

// fetchedMsg is the answer to the fetch started by attempt.
type fetchedMsg struct {
	attempt int
	items   []*media.Item
	err     error
}

func (b *statefulBubble) loadMediaTypes() tea.Cmd {
	preferred, _ := media.ParseType(viper.GetString(key.DefaultMediaType))

	items := lo.Map(media.Types(), func(t media.Type, _ int) list.Item {
		return &listItem{internal: t, marked: t == preferred}
	})

	return b.mediaTypesC.SetItems(items)
}

// loadMoods lists every mood, the ones picked before first.
func (b *statefulBubble) loadMoods() tea.Cmd {
	remembered := query.SuggestMany("")

	items := lo.Map(query.Ranked(mood.All()), func(m mood.Mood, _ int) list.Item {
		return &listItem{internal: m, marked: lo.Contains(remembered, m)}
	})

	b.moodsC.Title = fmt.Sprintf("Pick a mood for %s", b.machine.MediaType().Noun())
	b.moodsC.ResetSelected()
	b.moodsC.ResetFilter()
	return b.moodsC.SetItems(items)
}

func (b *statefulBubble) loadHistory() (tea.Cmd, error) {
	picks, err := history.List()
	if err != nil {
		return nil, err
	}

	items := lo.Map(picks, func(p *history.SavedPick, _ int) list.Item {
		return &listItem{internal: p}
	})

	return b.historyC.SetItems(items), nil
}

func (b *statefulBubble) pickMediaType(t media.Type) tea.Cmd {
	if err := b.machine.PickMediaType(t); err != nil {
		log.Error(err)
		return nil
	}

	b.sync()
	return b.loadMoods()
}

func (b *statefulBubble) pickMood(m mood.Mood) tea.Cmd {
	if err := b.machine.PickMood(m); err != nil {
		log.Error(err)
		return nil
	}

	if err := query.Remember(m, 1); err != nil {
		log.Warnf("failed to remember mood: %s", err)
	}

	b.sync()
	return tea.Batch(b.spinnerC.Tick, b.fetch())
}

func (b *statefulBubble) retry() tea.Cmd {
	if err := b.machine.Retry(); err != nil {
		return nil
	}

	b.sync()
	return tea.Batch(b.spinnerC.Tick, b.fetch())
}

func (b *statefulBubble) changeMood() tea.Cmd {
	b.stopFetching()
	if err := b.machine.ChangeMood(); err != nil {
		return nil
	}

	b.sync()
	return b.loadMoods()
}

func (b *statefulBubble) backToStart() tea.Cmd {
	b.stopFetching()
	b.machine.BackToStart()
	b.sync()
	b.mediaTypesC.ResetFilter()
	return nil
}

// fetch runs the suggestion chain for the machine's current attempt.
func (b *statefulBubble) fetch() tea.Cmd {
	b.stopFetching()

	timeout := time.Duration(viper.GetInt(key.SuggestTimeout)) * time.Second
	if timeout <= 0 {
		timeout = time.Minute
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	b.cancel = cancel

	var (
		attempt   = b.machine.Attempt()
		m         = b.machine.Mood()
		t         = b.machine.MediaType()
		suggester = b.suggester
	)

	return func() tea.Msg {
		defer cancel()

		items, err := suggester.Suggest(ctx, m, t)
		return fetchedMsg{attempt: attempt, items: items, err: err}
	}
}

func (b *statefulBubble) stopFetching() {
	if b.cancel != nil {
		b.cancel()
		b.cancel = nil
	}
}

// onFetched hands the answer to the machine unless a newer fetch replaced it.
func (b *statefulBubble) onFetched(msg fetchedMsg) {
	if msg.attempt != b.machine.Attempt() || b.machine.Stage() != selection.Fetching {
		log.Debugf("dropping stale fetch #%d", msg.attempt)
		return
	}

	b.cancel = nil

	var err error
	if msg.err != nil {
		err = b.machine.Fail(msg.err)
	} else {
		err = b.machine.Resolve(msg.items)
	}

	if err != nil {
		log.Error(err)
		return
	}

	b.sync()
}

func (b *statefulBubble) openItem(item *media.Item) tea.Cmd {
	if item == nil || item.URL == "" {
		return ui.Notify("No link for this one")
	}

	if err := open.URL(item.URL); err != nil {
		log.Error(err)
		return ui.Notify(fmt.Sprintf("%s Could not open link", icon.Get(icon.Fail)))
	}

	if viper.GetBool(key.HistorySaveOnOpen) && !history.Has(item) {
		if err := history.Save(item); err != nil {
			log.Error(err)
		}
	}

	return ui.Notify(fmt.Sprintf("%s Opened %s", icon.Get(icon.Link), item.Title))
}

func (b *statefulBubble) saveItem(item *media.Item) tea.Cmd {
	if item == nil {
		return nil
	}

	if err := history.Save(item); err != nil {
		log.Error(err)
		return ui.Notify(fmt.Sprintf("%s Could not save", icon.Get(icon.Fail)))
	}

	return ui.Notify(fmt.Sprintf("%s Saved %s", icon.Get(icon.Saved), item.Title))
}

func (b *statefulBubble) removePick(pick *history.SavedPick) tea.Cmd {
	if err := history.Remove(pick); err != nil {
		log.Error(err)
		return ui.Notify(fmt.Sprintf("%s Could not remove", icon.Get(icon.Fail)))
	}

	cmd, err := b.loadHistory()
	if err != nil {
		log.Error(err)
	}

	return tea.Batch(cmd, ui.Notify(fmt.Sprintf("Removed %s", pick.Item.Title)))
}

func (b *statefulBubble) showSaved() tea.Cmd {
	cmd, err := b.loadHistory()
	if err != nil {
		log.Error(err)
		return ui.Notify(fmt.Sprintf("%s Could not load saved picks", icon.Get(icon.Fail)))
	}

	b.historyC.ResetSelected()
	b.newState(historyState)
	return cmd
}
