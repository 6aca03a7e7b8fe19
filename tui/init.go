package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/moodbuster/moodbuster/log"
	"github.com/moodbuster/moodbuster/provider"
)

func (b *statefulBubble) Init() tea.Cmd {
	cmds := []tea.Cmd{b.loadMediaTypes(), provider.CheckCmd()}

	if t, ok := b.options.MediaType.Get(); ok {
		cmds = append(cmds, b.pickMediaType(t))

		if m, ok := b.options.Mood.Get(); ok {
			cmds = append(cmds, b.pickMood(m))
		}
	}

	if b.options.Saved {
		cmd, err := b.loadHistory()
		if err != nil {
			log.Error(err)
		} else {
			cmds = append(cmds, cmd)
			b.newState(historyState)
		}
	}

	return tea.Batch(cmds...)
}
