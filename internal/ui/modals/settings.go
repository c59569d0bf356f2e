package modals

import (
	huh "charm.land/huh/v2"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
)

const optionNotifications = "notifications"

// =============================================================================
// SettingsState - theme and desktop notifications for this run
// =============================================================================

// SettingsState holds the editable session settings. Changes are not
// persisted; the config file stays authoritative across runs.
type SettingsState struct {
	form *huh.Form

	selectedTheme  string
	OriginalTheme  string
	generalOptions []string
}

// SettingsSavedMsg carries the confirmed settings.
type SettingsSavedMsg struct {
	Theme         string
	Notifications bool
}

func (*SettingsState) modalState() {}

func (s *SettingsState) Title() string { return "Settings" }

func (s *SettingsState) Help() string {
	return "Tab: next field  Space: toggle  Enter: save  Esc: cancel"
}

func (s *SettingsState) Render() string {
	title := ModalTitleStyle.Render(s.Title())
	help := ModalHelpStyle.Render(s.Help())
	return lipgloss.JoinVertical(lipgloss.Left, title, s.form.View(), help)
}

func (s *SettingsState) Update(msg tea.Msg) (ModalState, tea.Cmd) {
	var cmd tea.Cmd
	s.form, cmd = huhFormUpdate(s.form, msg)
	return s, cmd
}

// SelectedTheme returns the highlighted theme key.
func (s *SettingsState) SelectedTheme() string {
	return s.selectedTheme
}

// NotificationsEnabled reports whether the notifications option is checked.
func (s *SettingsState) NotificationsEnabled() bool {
	for _, o := range s.generalOptions {
		if o == optionNotifications {
			return true
		}
	}
	return false
}

// Confirm returns the message carrying the chosen values.
func (s *SettingsState) Confirm() tea.Msg {
	return SettingsSavedMsg{Theme: s.selectedTheme, Notifications: s.NotificationsEnabled()}
}

// NewSettingsState creates the settings modal. themes and themeDisplayNames
// are parallel slices.
func NewSettingsState(themes, themeDisplayNames []string, currentTheme string, notificationsEnabled bool) *SettingsState {
	s := &SettingsState{
		selectedTheme: currentTheme,
		OriginalTheme: currentTheme,
	}

	themeOptions := make([]huh.Option[string], len(themes))
	for i := range themes {
		themeOptions[i] = huh.NewOption(themeDisplayNames[i], themes[i])
	}

	generalOpts := []huh.Option[string]{
		huh.NewOption("Desktop notifications on failure", optionNotifications).
			Selected(notificationsEnabled),
	}
	if notificationsEnabled {
		s.generalOptions = append(s.generalOptions, optionNotifications)
	}

	s.form = huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Theme").
				Options(themeOptions...).
				Value(&s.selectedTheme),
			huh.NewMultiSelect[string]().
				Title("Options").
				Options(generalOpts...).
				Height(len(generalOpts)).
				Value(&s.generalOptions),
		),
	).
		WithTheme(ModalTheme()).
		WithShowHelp(false).
		WithWidth(ModalWidth - 6).
		WithLayout(huh.LayoutStack)

	initHuhForm(s.form)
	return s
}
