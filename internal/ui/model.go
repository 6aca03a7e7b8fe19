// Package ui holds small bubbletea helpers shared by the interactive screens.
package ui

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/moodbuster/moodbuster/style"
)

// NotificationDuration is how long a notification stays on screen.
const NotificationDuration = 3 * time.Second

// Model shows one transient notification next to the help line.
type Model struct {
	notification string
	notifiedAt   time.Time
}

// NotificationMsg replaces the current notification.
type NotificationMsg string

// ClearNotificationMsg hides the notification.
type ClearNotificationMsg struct {
	at time.Time
}

// Notify returns a command that shows text.
func Notify(text string) tea.Cmd {
	return func() tea.Msg {
		return NotificationMsg(text)
	}
}

func clearAfter(at time.Time) tea.Cmd {
	return tea.Tick(NotificationDuration, func(time.Time) tea.Msg {
		return ClearNotificationMsg{at: at}
	})
}

// Update handles notification messages and ignores everything else.
func (m *Model) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case NotificationMsg:
		m.notification = string(msg)
		m.notifiedAt = time.Now()
		return clearAfter(m.notifiedAt)
	case ClearNotificationMsg:
		// a newer notification restarted the timer
		if msg.at.Equal(m.notifiedAt) {
			m.notification = ""
		}
	}
	return nil
}

// Notification returns the text on screen, if any.
func (m *Model) Notification() string {
	return m.notification
}

// View appends the notification to the last line of content.
func (m *Model) View(content string) string {
	if m.notification == "" {
		return content
	}

	lines := strings.Split(content, "\n")
	lines[len(lines)-1] += "  " + style.Faint(m.notification)
	return strings.Join(lines, "\n")
}
