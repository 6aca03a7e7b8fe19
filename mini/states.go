package mini

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/moodbuster/moodbuster/history"
	"github.com/moodbuster/moodbuster/icon"
	"github.com/moodbuster/moodbuster/key"
	"github.com/moodbuster/moodbuster/log"
	"github.com/moodbuster/moodbuster/media"
	"github.com/moodbuster/moodbuster/mood"
	"github.com/moodbuster/moodbuster/open"
	"github.com/moodbuster/moodbuster/query"
	"github.com/moodbuster/moodbuster/selection"
	"github.com/moodbuster/moodbuster/style"
	"github.com/spf13/viper"
)

type state int

const (
	mediaTypeSelectState state = iota + 1
	moodSelectState
	fetchState
	suggestionState
	failedState
	historySelectState
	quitState
)

func stateOf(stage selection.Stage) state {
	switch stage {
	case selection.ChooseMood:
		return moodSelectState
	case selection.Fetching:
		return fetchState
	case selection.Showing:
		return suggestionState
	case selection.Failed:
		return failedState
	default:
		return mediaTypeSelectState
	}
}

func (m *mini) handleMediaTypeSelectState() error {
	title("What are you in the mood for?")
	b, t, err := menu(media.Types(), saved, quit)
	if err != nil {
		return err
	}

	switch b {
	case quit:
		m.newState(quitState)
		return nil
	case saved:
		m.newState(historySelectState)
		return nil
	}

	if err := m.machine.PickMediaType(t); err != nil {
		return err
	}

	m.sync()
	return nil
}

func (m *mini) handleMoodSelectState() error {
	title(fmt.Sprintf("Pick a mood for %s", m.machine.MediaType().Noun()))
	b, md, err := menu(query.Ranked(mood.All()), startOver, quit)
	if err != nil {
		return err
	}

	switch b {
	case quit:
		m.newState(quitState)
		return nil
	case startOver:
		m.machine.BackToStart()
		m.sync()
		return nil
	}

	if err := m.machine.PickMood(md); err != nil {
		return err
	}

	if err := query.Remember(md, 1); err != nil {
		log.Warnf("failed to remember mood: %s", err)
	}

	m.sync()
	return nil
}

func (m *mini) handleFetchState() error {
	timeout := time.Duration(viper.GetInt(key.SuggestTimeout)) * time.Second
	if timeout <= 0 {
		timeout = time.Minute
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	erase := progress(fmt.Sprintf("Finding %s for a %s mood..", m.machine.MediaType().Noun(), m.machine.Mood()))
	items, err := m.suggester.Suggest(ctx, m.machine.Mood(), m.machine.MediaType())
	erase()

	if err != nil {
		err = m.machine.Fail(err)
	} else {
		err = m.machine.Resolve(items)
	}
	if err != nil {
		return err
	}

	m.sync()
	return nil
}

func (m *mini) handleSuggestionState() error {
	item := m.machine.Current()

	fmt.Println()
	title(fmt.Sprintf("%s %d/%d", item.Type, m.machine.Index()+1, m.machine.Len()))
	fmt.Println(renderCard(item, viper.GetBool(key.MiniShowFields)))
	fmt.Println()

	b, _, err := menu([]fmt.Stringer{}, next, prev, openLink, save, changeMood, startOver, saved, quit)
	if err != nil {
		return err
	}

	switch b {
	case next:
		_, err = m.machine.Next()
	case prev:
		_, err = m.machine.Prev()
	case openLink:
		openItem(item)
	case save:
		if err := history.Save(item); err != nil {
			return err
		}
		success("Saved " + item.Title)
	case changeMood:
		err = m.machine.ChangeMood()
		m.sync()
	case startOver:
		m.machine.BackToStart()
		m.sync()
	case saved:
		m.newState(historySelectState)
	case quit:
		m.newState(quitState)
	}

	return err
}

func (m *mini) handleFailedState() error {
	err := m.machine.Err()
	fail(err.Error())

	binds := []*bind{retry, changeMood, startOver, quit}
	if errors.Is(err, selection.ErrNothingToShow) {
		binds = []*bind{changeMood, retry, startOver, quit}
	}

	b, _, err := menu([]fmt.Stringer{}, binds...)
	if err != nil {
		return err
	}

	switch b {
	case retry:
		err = m.machine.Retry()
	case changeMood:
		err = m.machine.ChangeMood()
	case startOver:
		m.machine.BackToStart()
	case quit:
		m.newState(quitState)
		return nil
	}

	m.sync()
	return err
}

func (m *mini) handleHistorySelectState() error {
	picks, err := history.List()
	if err != nil {
		return err
	}

	if len(picks) == 0 {
		fail("Nothing saved yet")
		m.leaveHistory()
		return nil
	}

	title("Saved Picks")
	b, pick, err := menu(picks, back, quit)
	if err != nil {
		return err
	}

	switch b {
	case back:
		m.leaveHistory()
		return nil
	case quit:
		m.newState(quitState)
		return nil
	}

	fmt.Println(renderCard(pick.Item, viper.GetBool(key.MiniShowFields)))

	b, _, err = menu([]fmt.Stringer{}, openLink, remove, back)
	if err != nil {
		return err
	}

	switch b {
	case openLink:
		openItem(pick.Item)
	case remove:
		if err := history.Remove(pick); err != nil {
			return err
		}
		success("Removed " + pick.Item.Title)
	}

	return nil
}

func (m *mini) leaveHistory() {
	m.previousState()
	if m.state == historySelectState {
		m.sync()
	}
}

func openItem(item *media.Item) {
	if item.URL == "" {
		fail("No link for this one")
		return
	}

	if err := open.URL(item.URL); err != nil {
		fail(err.Error())
		return
	}

	if viper.GetBool(key.HistorySaveOnOpen) && !history.Has(item) {
		if err := history.Save(item); err != nil {
			log.Error(err)
		}
	}

	fmt.Printf("%s %s\n", icon.Get(icon.Link), style.Faint(item.URL))
}

// renderCard prints the suggestion as plain lines, with every field when full is set.
func renderCard(item *media.Item, full bool) string {
	lines := []string{style.Bold(item.Title)}

	if item.Description != "" {
		lines = append(lines, truncateLines(strings.TrimSpace(item.Description)))
	}

	if full {
		for _, f := range item.Fields() {
			lines = append(lines, fmt.Sprintf("%s %s", style.Faint(f.Label+":"), f.Value))
		}
	}

	if item.URL != "" {
		lines = append(lines, fmt.Sprintf("%s %s", style.Faint(item.LinkLabel()+":"), item.URL))
	}

	return strings.Join(lines, "\n")
}

func truncateLines(s string) string {
	if truncateAt <= 0 {
		return s
	}
	return style.Truncate(truncateAt)(s)
}
