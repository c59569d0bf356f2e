package app

import (
	tea "charm.land/bubbletea/v2"

	"github.com/gelaxyai/gelaxy/internal/keys"
	"github.com/gelaxyai/gelaxy/internal/ui/modals"
)

// handleModalKey routes modal key events to the appropriate handler based on modal state type.
func (m *Model) handleModalKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	if key == keys.CtrlC {
		return m, tea.Quit
	}

	switch s := m.modal.State.(type) {
	case *modals.HelpState:
		return m.handleHelpModal(key, msg, s)
	case *modals.LanguagePickerState:
		return m.handleLanguagePickerModal(key, msg, s)
	case *modals.SettingsState:
		return m.handleSettingsModal(key, msg, s)
	}

	return m.updateModal(msg)
}

// updateModal forwards a message to the open modal
func (m *Model) updateModal(msg tea.Msg) (tea.Model, tea.Cmd) {
	modal, cmd := m.modal.Update(msg)
	m.modal = modal
	return m, cmd
}

// handleHelpModal handles key events for the Help modal.
func (m *Model) handleHelpModal(key string, msg tea.KeyPressMsg, state *modals.HelpState) (tea.Model, tea.Cmd) {
	if state.IsFiltering() {
		return m.updateModal(msg)
	}
	switch key {
	case keys.Escape, keys.Enter, "?", "q":
		m.modal.Hide()
		return m, nil
	}
	return m.updateModal(msg)
}

// handleLanguagePickerModal handles key events for the language picker.
func (m *Model) handleLanguagePickerModal(key string, msg tea.KeyPressMsg, state *modals.LanguagePickerState) (tea.Model, tea.Cmd) {
	switch key {
	case keys.Escape:
		m.modal.Hide()
		return m, nil
	case keys.Enter:
		m.modal.Hide()
		return m, state.Confirm
	}
	return m.updateModal(msg)
}

// handleSettingsModal handles key events for the Settings modal.
func (m *Model) handleSettingsModal(key string, msg tea.KeyPressMsg, state *modals.SettingsState) (tea.Model, tea.Cmd) {
	switch key {
	case keys.Escape:
		m.modal.Hide()
		return m, nil
	case keys.Enter:
		m.modal.Hide()
		return m, state.Confirm
	}
	return m.updateModal(msg)
}
