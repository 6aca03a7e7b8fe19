package tui

import "github.com/moodbuster/moodbuster/selection"

type state int

const (
	mediaTypesState state = iota
	moodsState
	loadingState
	suggestionState
	historyState
	errorState
)

// stateOf maps a selection stage to the screen that renders it.
func stateOf(stage selection.Stage) state {
	switch stage {
	case selection.ChooseMood:
		return moodsState
	case selection.Fetching:
		return loadingState
	case selection.Showing:
		return suggestionState
	case selection.Failed:
		return errorState
	default:
		return mediaTypesState
	}
}
