package app

import (
	tea "charm.land/bubbletea/v2"

	"github.com/gelaxyai/gelaxy/internal/catalog"
	"github.com/gelaxyai/gelaxy/internal/logger"
	"github.com/gelaxyai/gelaxy/internal/ui"
	"github.com/gelaxyai/gelaxy/internal/ui/modals"
)

// Shortcut represents a keyboard shortcut with its metadata and handler.
// This is the single source of truth for all shortcuts in the application.
type Shortcut struct {
	Key             string                              // The key binding (e.g., "n", "ctrl+l")
	DisplayKey      string                              // Display name in help (e.g., "Ctrl+L"); defaults to Key
	Description     string                              // Human-readable description
	Category        string                              // Section for help modal grouping
	RequiresSidebar bool                                // Only while the history list is focused
	Handler         func(m *Model) (tea.Model, tea.Cmd) // Action to perform
	Condition       func(m *Model) bool                 // Optional extra condition
}

// Categories for organizing shortcuts in the help modal
const (
	CategoryChat     = "Chat"
	CategoryHistory  = "History"
	CategoryLanguage = "Language"
	CategoryGeneral  = "General"
)

// categoryOrder defines the display order of categories in the help modal
var categoryOrder = []string{
	CategoryChat,
	CategoryHistory,
	CategoryLanguage,
	CategoryGeneral,
}

// ShortcutRegistry is the central registry of all keyboard shortcuts.
// Single-letter keys require the sidebar so they can be typed in the composer.
var ShortcutRegistry = []Shortcut{
	// Chat
	{
		Key:         "ctrl+y",
		Description: "Copy selected code",
		Category:    CategoryChat,
		Handler:     shortcutCopyCode,
		Condition:   func(m *Model) bool { return m.chat.HasCode() },
	},
	{
		Key:         "ctrl+p",
		Description: "Select previous code block",
		Category:    CategoryChat,
		Handler:     shortcutPrevCode,
		Condition:   func(m *Model) bool { return m.chat.HasCode() },
	},
	{
		Key:         "ctrl+n",
		Description: "Select next code block",
		Category:    CategoryChat,
		Handler:     shortcutNextCode,
		Condition:   func(m *Model) bool { return m.chat.HasCode() },
	},

	// History
	{
		Key:         "tab",
		DisplayKey:  "Tab",
		Description: "Switch between history and composer",
		Category:    CategoryHistory,
		Handler:     shortcutToggleFocus,
		Condition:   func(m *Model) bool { return m.ctrl.SidebarOpen() },
	},
	{
		Key:         "ctrl+b",
		Description: "Show or hide history",
		Category:    CategoryHistory,
		Handler:     shortcutToggleSidebar,
	},
	{
		Key:             "n",
		Description:     "Start a new chat",
		Category:        CategoryHistory,
		RequiresSidebar: true,
		Handler:         shortcutNewChat,
	},

	// Language
	{
		Key:         "ctrl+l",
		Description: "Next programming language",
		Category:    CategoryLanguage,
		Handler:     shortcutNextLanguage,
	},
	{
		Key:             "l",
		Description:     "Choose programming language",
		Category:        CategoryLanguage,
		RequiresSidebar: true,
		Handler:         shortcutLanguagePicker,
	},
	{
		Key:             "]",
		Description:     "Next programming language",
		Category:        CategoryLanguage,
		RequiresSidebar: true,
		Handler:         shortcutNextLanguage,
	},
	{
		Key:             "[",
		Description:     "Previous programming language",
		Category:        CategoryLanguage,
		RequiresSidebar: true,
		Handler:         shortcutPrevLanguage,
	},

	// General
	{
		Key:             ",",
		Description:     "Settings",
		Category:        CategoryGeneral,
		RequiresSidebar: true,
		Handler:         shortcutSettings,
	},
	{
		Key:             "q",
		Description:     "Quit application",
		Category:        CategoryGeneral,
		RequiresSidebar: true,
		Handler:         shortcutQuit,
	},
}

// helpShortcut is the help shortcut definition, kept separate to avoid initialization cycle.
// It references ShortcutRegistry, so it can't be in the registry itself.
var helpShortcut = Shortcut{
	Key:         "?",
	Description: "Show this help",
	Category:    CategoryGeneral,
	Condition:   func(m *Model) bool { return m.focus == ui.FocusSidebar || m.chat.GetInput() == "" },
}

// DisplayOnlyShortcuts are shown in help but not executable from the help modal.
var DisplayOnlyShortcuts = []Shortcut{
	{DisplayKey: "Enter", Description: "Send request", Category: CategoryChat},
	{DisplayKey: "PgUp/PgDn", Description: "Scroll messages", Category: CategoryChat},
	{DisplayKey: "↑/↓ or j/k", Description: "Navigate history", Category: CategoryHistory},
	{DisplayKey: "Enter", Description: "Open conversation", Category: CategoryHistory},
	{DisplayKey: "ctrl-c", Description: "Quit", Category: CategoryGeneral},
}

// isShortcutApplicable checks if a shortcut is applicable given the current model state.
// This is used to filter which shortcuts appear in the help modal.
func (m *Model) isShortcutApplicable(s Shortcut) bool {
	if s.RequiresSidebar && m.focus != ui.FocusSidebar {
		return false
	}
	if s.Condition != nil && !s.Condition(m) {
		return false
	}
	return true
}

// ExecuteShortcut finds and executes a shortcut by key.
// Returns (model, cmd, true) if the shortcut was found and executed.
// Returns (model, nil, false) if the shortcut was not found or guards failed.
func (m *Model) ExecuteShortcut(key string) (tea.Model, tea.Cmd, bool) {
	if key == helpShortcut.Key {
		if !m.isShortcutApplicable(helpShortcut) {
			return m, nil, false // Let "?" reach the composer
		}
		result, cmd := shortcutHelp(m)
		return result, cmd, true
	}

	for _, s := range ShortcutRegistry {
		if s.Key != key {
			continue
		}
		if !m.isShortcutApplicable(s) {
			logger.WithComponent("shortcuts").Debug("guard failed", "key", key, "focus", m.focus)
			return m, nil, false
		}
		result, cmd := s.Handler(m)
		return result, cmd, true
	}
	return m, nil, false
}

// getApplicableHelpSections generates help modal sections from shortcuts that are
// applicable in the current application state.
func (m *Model) getApplicableHelpSections(registry []Shortcut, displayOnly []Shortcut) []modals.HelpSection {
	categories := make(map[string][]modals.HelpShortcut)

	add := func(s Shortcut) {
		displayKey := s.DisplayKey
		if displayKey == "" {
			displayKey = s.Key
		}
		categories[s.Category] = append(categories[s.Category], modals.HelpShortcut{
			Key:  displayKey,
			Desc: s.Description,
		})
	}

	for _, s := range registry {
		if m.isShortcutApplicable(s) {
			add(s)
		}
	}
	for _, s := range displayOnly {
		add(s)
	}

	var sections []modals.HelpSection
	for _, cat := range categoryOrder {
		if shortcuts, ok := categories[cat]; ok && len(shortcuts) > 0 {
			sections = append(sections, modals.HelpSection{
				Title:     cat,
				Shortcuts: shortcuts,
			})
		}
	}

	return sections
}

// =============================================================================
// Shortcut Handlers
// =============================================================================

func shortcutCopyCode(m *Model) (tea.Model, tea.Cmd) {
	return m.copySelectedCode()
}

func shortcutPrevCode(m *Model) (tea.Model, tea.Cmd) {
	m.chat.SelectPrevCode()
	return m, nil
}

func shortcutNextCode(m *Model) (tea.Model, tea.Cmd) {
	m.chat.SelectNextCode()
	return m, nil
}

func shortcutToggleFocus(m *Model) (tea.Model, tea.Cmd) {
	m.toggleFocus()
	return m, nil
}

func shortcutToggleSidebar(m *Model) (tea.Model, tea.Cmd) {
	m.toggleSidebar()
	return m, nil
}

func shortcutNewChat(m *Model) (tea.Model, tea.Cmd) {
	m.newConversation()
	return m, nil
}

func shortcutNextLanguage(m *Model) (tea.Model, tea.Cmd) {
	m.cycleLanguage(1)
	return m, nil
}

func shortcutPrevLanguage(m *Model) (tea.Model, tea.Cmd) {
	m.cycleLanguage(-1)
	return m, nil
}

func shortcutLanguagePicker(m *Model) (tea.Model, tea.Cmd) {
	all := catalog.All()
	options := make([]modals.LanguageOption, len(all))
	for i, l := range all {
		options[i] = modals.LanguageOption{ID: l.ID, Label: l.Label, Icon: l.Icon}
	}
	m.modal.Show(modals.NewLanguagePickerState(options, m.ctrl.Language().ID))
	return m, nil
}

func shortcutSettings(m *Model) (tea.Model, tea.Cmd) {
	names := ui.ThemeNames()
	keys := make([]string, len(names))
	display := make([]string, len(names))
	for i, n := range names {
		keys[i] = string(n)
		display[i] = ui.GetTheme(n).Name
	}
	m.modal.Show(modals.NewSettingsState(keys, display, string(ui.CurrentThemeName()), m.notifications))
	return m, nil
}

func shortcutHelp(m *Model) (tea.Model, tea.Cmd) {
	// Include help shortcut in the registry for display purposes
	allShortcuts := append(ShortcutRegistry[:len(ShortcutRegistry):len(ShortcutRegistry)], helpShortcut)
	sections := m.getApplicableHelpSections(allShortcuts, DisplayOnlyShortcuts)
	m.modal.Show(modals.NewHelpState(sections))
	return m, nil
}

func shortcutQuit(m *Model) (tea.Model, tea.Cmd) {
	return m, tea.Quit
}
