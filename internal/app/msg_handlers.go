package app

import (
	tea "charm.land/bubbletea/v2"

	"github.com/gelaxyai/gelaxy/internal/notification"
	"github.com/gelaxyai/gelaxy/internal/ui"
	"github.com/gelaxyai/gelaxy/internal/ui/modals"
)

// handleGenerationDone settles the in-flight turn. Outcomes the controller
// does not recognise are dropped.
func (m *Model) handleGenerationDone(msg GenerationDoneMsg) (tea.Model, tea.Cmd) {
	settled := m.ctrl.Settle(msg.Outcome)
	if !settled.Accepted {
		return m, nil
	}

	m.chat.SetWaiting(false)
	m.refresh()

	// The toast holds one message, so a routed failure names both facts.
	var cmds []tea.Cmd
	switch n := settled.Notification; {
	case n != nil:
		text := n.Message
		if settled.Routed {
			text = m.ctrl.Strings().RoutedReply + ": " + n.Message
		}
		cmds = append(cmds, m.ShowToastError(text))
		if m.notifications {
			cmds = append(cmds, m.notifyFailure(n.Message))
		}
	case settled.Routed:
		cmds = append(cmds, m.ShowToastInfo(m.ctrl.Strings().RoutedReply))
	}
	return m, tea.Batch(cmds...)
}

// notifyFailure raises a desktop notification off the UI loop
func (m *Model) notifyFailure(reason string) tea.Cmd {
	log := m.log
	return func() tea.Msg {
		if err := notification.GenerationFailed(reason); err != nil {
			log.Warn("desktop notification failed", "error", err)
		}
		return nil
	}
}

// handleLanguageSelected applies the language chosen in the picker
func (m *Model) handleLanguageSelected(msg modals.LanguageSelectedMsg) (tea.Model, tea.Cmd) {
	if err := m.ctrl.SetLanguage(msg.ID); err != nil {
		return m, m.ShowToastError(err.Error())
	}
	m.header.SetLanguage(m.ctrl.Language())
	return m, nil
}

// handleSettingsSaved applies theme and notification settings for this run
func (m *Model) handleSettingsSaved(msg modals.SettingsSavedMsg) (tea.Model, tea.Cmd) {
	if msg.Theme != "" && msg.Theme != string(ui.CurrentThemeName()) {
		ui.SetThemeByName(msg.Theme)
		// Code blocks are highlighted at render time with the theme's chroma style
		m.chat.SetMessages(m.ctrl.Messages())
	}
	m.notifications = msg.Notifications
	m.log.Info("settings applied", "theme", msg.Theme, "notifications", msg.Notifications)
	return m, nil
}
