// Package modals provides modal dialog state types for the UI.
// Each modal type implements the ModalState interface with its own state struct,
// ensuring type-safe access to modal-specific fields.
package modals

import (
	tea "charm.land/bubbletea/v2"
)

// ModalState is a discriminated union interface for modal-specific state.
type ModalState interface {
	modalState() // marker method to restrict implementations
	Title() string
	Help() string
	Render() string
	Update(msg tea.Msg) (ModalState, tea.Cmd)
}

// ModalWithSize is implemented by modals that lay themselves out against the
// available screen size.
type ModalWithSize interface {
	ModalState
	SetSize(width, height int)
}

// HelpShortcut is a single keyboard shortcut for display.
type HelpShortcut struct {
	Key  string
	Desc string
}

// HelpSection is a group of related shortcuts.
type HelpSection struct {
	Title     string
	Shortcuts []HelpShortcut
}

// LanguageOption is one entry of the language picker.
type LanguageOption struct {
	ID    string
	Label string
	Icon  string
}

// LanguageSelectedMsg is sent when the user confirms a language in the picker.
type LanguageSelectedMsg struct {
	ID string
}
