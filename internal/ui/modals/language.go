package modals

import (
	huh "charm.land/huh/v2"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
)

// =============================================================================
// LanguagePickerState - choose the language for future requests
// =============================================================================

// LanguagePickerState wraps a huh Select over the catalog.
type LanguagePickerState struct {
	form     *huh.Form
	selected string
	options  []LanguageOption
}

func (*LanguagePickerState) modalState() {}

func (s *LanguagePickerState) Title() string { return "Programming Language" }

func (s *LanguagePickerState) Help() string {
	return "up/down: choose  Enter: select  Esc: cancel"
}

func (s *LanguagePickerState) Render() string {
	title := ModalTitleStyle.Render(s.Title())
	help := ModalHelpStyle.Render(s.Help())
	return lipgloss.JoinVertical(lipgloss.Left, title, s.form.View(), help)
}

func (s *LanguagePickerState) Update(msg tea.Msg) (ModalState, tea.Cmd) {
	var cmd tea.Cmd
	s.form, cmd = huhFormUpdate(s.form, msg)
	return s, cmd
}

// Selected returns the highlighted language ID.
func (s *LanguagePickerState) Selected() string {
	return s.selected
}

// Confirm returns the message announcing the highlighted language.
func (s *LanguagePickerState) Confirm() tea.Msg {
	return LanguageSelectedMsg{ID: s.selected}
}

// NewLanguagePickerState creates a picker with current highlighted.
func NewLanguagePickerState(options []LanguageOption, current string) *LanguagePickerState {
	s := &LanguagePickerState{
		selected: current,
		options:  options,
	}

	opts := make([]huh.Option[string], len(options))
	for i, o := range options {
		opts[i] = huh.NewOption(o.Icon+" "+o.Label, o.ID)
	}

	s.form = huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Options(opts...).
				Height(len(opts)).
				Value(&s.selected),
		),
	).
		WithTheme(ModalTheme()).
		WithShowHelp(false).
		WithWidth(ModalWidth - 6)

	initHuhForm(s.form)
	return s
}
