// Package selection is the state machine behind every front end: pick a media
// type, pick a mood, wait for the catalogs, then page through what came back.
package selection

import (
	"errors"
	"fmt"

	"github.com/moodbuster/moodbuster/media"
	"github.com/moodbuster/moodbuster/mood"
	"github.com/moodbuster/moodbuster/pager"
	"golang.org/x/exp/slices"
)

type Stage int

const (
	ChooseMediaType Stage = iota
	ChooseMood
	Fetching
	Showing
	Failed
)

func (s Stage) String() string {
	switch s {
	case ChooseMediaType:
		return "choose media type"
	case ChooseMood:
		return "choose mood"
	case Fetching:
		return "fetching"
	case Showing:
		return "showing"
	case Failed:
		return "failed"
	default:
		return fmt.Sprintf("stage(%d)", int(s))
	}
}

var (
	ErrInvalidTransition = errors.New("invalid transition")
	// ErrNothingToShow is the failure recorded when a fetch resolves with no items.
	ErrNothingToShow = errors.New("nothing to show")
)

// Machine is not safe for concurrent use. Front ends drive it from their event loop.
type Machine struct {
	stage     Stage
	mediaType media.Type
	mood      mood.Mood
	err       error
	pager     *pager.Pager[*media.Item]
	attempt   int
}

func New() *Machine {
	return &Machine{pager: pager.New[*media.Item](nil)}
}

func (m *Machine) invalid(event string) error {
	return fmt.Errorf("%w: %s while %s", ErrInvalidTransition, event, m.stage)
}

// PickMediaType moves from media type to mood selection.
func (m *Machine) PickMediaType(t media.Type) error {
	if m.stage != ChooseMediaType {
		return m.invalid("pick media type")
	}
	if !slices.Contains(media.Types(), t) {
		return fmt.Errorf("%w: unknown media type %q", ErrInvalidTransition, t)
	}

	m.mediaType = t
	m.stage = ChooseMood
	return nil
}

// PickMood starts fetching for the chosen media type and mood.
func (m *Machine) PickMood(md mood.Mood) error {
	if m.stage != ChooseMood {
		return m.invalid("pick mood")
	}
	if md == "" {
		return fmt.Errorf("%w: empty mood", ErrInvalidTransition)
	}

	m.mood = md
	m.startFetching()
	return nil
}

func (m *Machine) startFetching() {
	m.err = nil
	m.pager.Reset(nil)
	m.attempt++
	m.stage = Fetching
}

// Resolve delivers fetched items. An empty list fails with ErrNothingToShow.
func (m *Machine) Resolve(items []*media.Item) error {
	if m.stage != Fetching {
		return m.invalid("resolve")
	}

	if len(items) == 0 {
		m.err = ErrNothingToShow
		m.stage = Failed
		return nil
	}

	m.pager.Reset(items)
	m.stage = Showing
	return nil
}

// Fail records why fetching did not produce items.
func (m *Machine) Fail(err error) error {
	if m.stage != Fetching {
		return m.invalid("fail")
	}

	if err == nil {
		err = ErrNothingToShow
	}
	m.err = err
	m.stage = Failed
	return nil
}

// Next advances to the following item, wrapping at the end.
func (m *Machine) Next() (*media.Item, error) {
	if m.stage != Showing {
		return nil, m.invalid("next")
	}
	item, _ := m.pager.Next()
	return item, nil
}

// Prev steps back to the previous item, wrapping at the start.
func (m *Machine) Prev() (*media.Item, error) {
	if m.stage != Showing {
		return nil, m.invalid("prev")
	}
	item, _ := m.pager.Prev()
	return item, nil
}

// BackToStart returns to media type selection and forgets everything. Valid from any stage.
func (m *Machine) BackToStart() {
	m.mediaType = ""
	m.mood = ""
	m.err = nil
	m.pager.Reset(nil)
	m.stage = ChooseMediaType
}

// ChangeMood returns to mood selection keeping the media type.
func (m *Machine) ChangeMood() error {
	if m.stage == ChooseMediaType {
		return m.invalid("change mood")
	}

	m.mood = ""
	m.err = nil
	m.pager.Reset(nil)
	m.stage = ChooseMood
	return nil
}

// Retry fetches again with the same media type and mood.
func (m *Machine) Retry() error {
	if m.stage != Failed {
		return m.invalid("retry")
	}
	m.startFetching()
	return nil
}

func (m *Machine) Stage() Stage {
	return m.stage
}

func (m *Machine) MediaType() media.Type {
	return m.mediaType
}

func (m *Machine) Mood() mood.Mood {
	return m.mood
}

// Err is the failure of the last fetch, nil unless Failed.
func (m *Machine) Err() error {
	return m.err
}

// Attempt counts entries into Fetching. Front ends tag in-flight fetches with it
// and drop answers whose attempt is no longer current.
func (m *Machine) Attempt() int {
	return m.attempt
}

// Current is the shown item, nil outside Showing.
func (m *Machine) Current() *media.Item {
	if m.stage != Showing {
		return nil
	}
	item, _ := m.pager.Current()
	return item
}

func (m *Machine) Index() int {
	return m.pager.Index()
}

func (m *Machine) Len() int {
	return m.pager.Len()
}

func (m *Machine) Items() []*media.Item {
	return m.pager.Items()
}
