// Package mini is the prompt driven interface, for terminals where the full TUI is too much.
package mini

import (
	"context"
	"errors"

	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/moodbuster/moodbuster/media"
	"github.com/moodbuster/moodbuster/mood"
	"github.com/moodbuster/moodbuster/selection"
	"github.com/moodbuster/moodbuster/suggest"
	"github.com/moodbuster/moodbuster/util"
	"github.com/samber/mo"
)

var truncateAt = 100

// Suggester fetches suggestions for a mood and a media type.
type Suggester interface {
	Suggest(ctx context.Context, m mood.Mood, t media.Type) ([]*media.Item, error)
}

type Options struct {
	Suggester Suggester
	MediaType mo.Option[media.Type]
	Mood      mo.Option[mood.Mood]
	// Saved starts from the saved picks.
	Saved bool
}

type mini struct {
	state         state
	statesHistory util.Stack[state]

	machine   *selection.Machine
	suggester Suggester
	options   *Options
}

func newMini(options *Options) *mini {
	return &mini{
		statesHistory: util.Stack[state]{},
		machine:       selection.New(),
		suggester:     options.Suggester,
		options:       options,
	}
}

func (m *mini) previousState() {
	if m.statesHistory.Len() > 0 {
		m.setState(m.statesHistory.Pop())
	}
}

func (m *mini) setState(s state) {
	m.state = s
}

func (m *mini) newState(s state) {
	if m.state == s {
		return
	}

	m.statesHistory.Push(m.state)
	m.setState(s)
}

// sync follows the selection machine.
func (m *mini) sync() {
	m.statesHistory.Clear()
	m.setState(stateOf(m.machine.Stage()))
}

func Run(options *Options) error {
	if options.Suggester == nil {
		options.Suggester = suggest.FromConfig()
	}

	m := newMini(options)
	m.state = mediaTypeSelectState

	if w, _, err := util.TerminalSize(); err == nil {
		truncateAt = w - 8
	}

	if err := m.preselect(); err != nil {
		return err
	}

	for m.state != quitState {
		if err := m.handleState(); err != nil {
			if errors.Is(err, terminal.InterruptErr) {
				return nil
			}
			return err
		}
	}

	return nil
}

func (m *mini) preselect() error {
	if t, ok := m.options.MediaType.Get(); ok {
		if err := m.machine.PickMediaType(t); err != nil {
			return err
		}

		if md, ok := m.options.Mood.Get(); ok {
			if err := m.machine.PickMood(md); err != nil {
				return err
			}
		}

		m.sync()
	}

	if m.options.Saved {
		m.newState(historySelectState)
	}

	return nil
}

func (m *mini) handleState() error {
	switch m.state {
	case mediaTypeSelectState:
		return m.handleMediaTypeSelectState()
	case moodSelectState:
		return m.handleMoodSelectState()
	case fetchState:
		return m.handleFetchState()
	case suggestionState:
		return m.handleSuggestionState()
	case failedState:
		return m.handleFailedState()
	case historySelectState:
		return m.handleHistorySelectState()
	}

	return nil
}
