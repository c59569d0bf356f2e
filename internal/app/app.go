package app

import (
	"context"
	"log/slog"

	tea "charm.land/bubbletea/v2"

	"github.com/gelaxyai/gelaxy/internal/clipboard"
	"github.com/gelaxyai/gelaxy/internal/codegen"
	"github.com/gelaxyai/gelaxy/internal/config"
	"github.com/gelaxyai/gelaxy/internal/conversation"
	"github.com/gelaxyai/gelaxy/internal/keys"
	"github.com/gelaxyai/gelaxy/internal/logger"
	"github.com/gelaxyai/gelaxy/internal/ui"
	"github.com/gelaxyai/gelaxy/internal/ui/modals"
)

// Model is the main Bubble Tea model. It owns no conversation state of its
// own: every intent goes through the controller and the components are
// refreshed from it afterwards.
type Model struct {
	config  *config.Config
	version string

	ctrl      *conversation.Controller
	generator codegen.Generator
	clipboard clipboard.Writer

	header  *ui.Header
	footer  *ui.Footer
	sidebar *ui.Sidebar
	chat    *ui.Chat
	modal   *ui.Modal
	toast   *ui.Toast

	width  int
	height int
	focus  ui.Focus

	notifications bool // Desktop notification on failed turns

	log *slog.Logger
}

// Options carries the collaborators the model does not build itself.
type Options struct {
	Generator codegen.Generator
	Clipboard clipboard.Writer // Defaults to the system clipboard
	Version   string
}

// GenerationDoneMsg is sent when a turn's exchange with the backend settles
type GenerationDoneMsg struct {
	Outcome conversation.Outcome
}

// New creates a new app model
func New(cfg *config.Config, opts Options) *Model {
	if cfg.Theme != "" {
		ui.SetThemeByName(cfg.Theme)
	}

	clip := opts.Clipboard
	if clip == nil {
		clip = clipboard.NewSystem()
	}

	ctrl := conversation.New(conversation.Options{
		Locale:      cfg.Locale,
		Language:    cfg.Language,
		SidebarOpen: cfg.SidebarOpen,
		Timeout:     cfg.Timeout,
	})

	m := &Model{
		config:        cfg,
		version:       opts.Version,
		ctrl:          ctrl,
		generator:     opts.Generator,
		clipboard:     clip,
		header:        ui.NewHeader(),
		footer:        ui.NewFooter(),
		sidebar:       ui.NewSidebar(),
		chat:          ui.NewChat(),
		modal:         ui.NewModal(),
		toast:         ui.NewToast(),
		notifications: cfg.Notifications,
		log:           logger.WithComponent("app"),
	}

	text := ctrl.Strings()
	m.header.SetSubtitle(text.Subtitle)
	m.sidebar.SetLabels(text.NewChat, text.DateFormat)
	m.chat.SetStrings(text)

	ui.GetViewContext().SetSidebarOpen(ctrl.SidebarOpen())
	m.setFocus(ui.FocusComposer)
	m.refresh()

	return m
}

// Init initializes the model
func (m *Model) Init() tea.Cmd {
	return nil
}

// Controller returns the conversation controller
func (m *Model) Controller() *conversation.Controller {
	return m.ctrl
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateSizes()
		return m, nil

	case tea.KeyPressMsg:
		if m.modal.IsVisible() {
			return m.handleModalKey(msg)
		}
		return m.handleKey(msg)

	case tea.MouseWheelMsg:
		if m.modal.IsVisible() {
			return m.updateModal(msg)
		}
		var cmd tea.Cmd
		m.chat, cmd = m.chat.Update(msg)
		return m, cmd

	case GenerationDoneMsg:
		return m.handleGenerationDone(msg)

	case modals.LanguageSelectedMsg:
		return m.handleLanguageSelected(msg)

	case modals.SettingsSavedMsg:
		return m.handleSettingsSaved(msg)

	case ui.StopwatchTickMsg:
		var cmd tea.Cmd
		m.chat, cmd = m.chat.Update(msg)
		return m, cmd

	case ui.ToastTickMsg:
		m.toast.HandleTick(msg)
		return m, nil
	}

	if m.modal.IsVisible() {
		return m.updateModal(msg)
	}
	var cmd tea.Cmd
	m.chat, cmd = m.chat.Update(msg)
	return m, cmd
}

// handleKey processes key presses when no modal is open
func (m *Model) handleKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	if key == keys.CtrlC {
		return m, tea.Quit
	}

	if result, cmd, ok := m.ExecuteShortcut(key); ok {
		return result, cmd
	}

	if m.focus == ui.FocusSidebar {
		return m.handleSidebarKey(key)
	}

	if key == keys.Enter {
		return m.sendMessage()
	}

	var cmd tea.Cmd
	m.chat, cmd = m.chat.Update(msg)
	return m, cmd
}

// handleSidebarKey handles navigation keys while the history list is focused
func (m *Model) handleSidebarKey(key string) (tea.Model, tea.Cmd) {
	switch key {
	case keys.Up, "k":
		m.sidebar.MoveUp()
	case keys.Down, "j":
		m.sidebar.MoveDown()
	case keys.Home, "g":
		m.sidebar.MoveTop()
	case keys.End, "G":
		m.sidebar.MoveBottom()
	case keys.Enter:
		return m.openSelectedConversation()
	}
	return m, nil
}

// sendMessage starts a turn with the composer text. Nothing happens while a
// reply is pending or when the text is blank.
func (m *Model) sendMessage() (tea.Model, tea.Cmd) {
	turn, ok := m.ctrl.Send(m.chat.GetInput())
	if !ok {
		return m, nil
	}

	m.chat.ClearInput()
	m.refresh()
	m.chat.SetWaiting(true)

	return m, tea.Batch(m.runTurn(*turn), ui.StopwatchTick())
}

// runTurn performs the exchange off the UI loop
func (m *Model) runTurn(turn conversation.Turn) tea.Cmd {
	ctrl := m.ctrl
	gen := m.generator
	return func() tea.Msg {
		return GenerationDoneMsg{Outcome: ctrl.Run(context.Background(), gen, turn)}
	}
}

// openSelectedConversation activates the conversation under the sidebar cursor
func (m *Model) openSelectedConversation() (tea.Model, tea.Cmd) {
	id := m.sidebar.SelectedID()
	if id == "" {
		return m, nil
	}
	if err := m.ctrl.SwitchConversation(id); err != nil {
		m.log.Warn("switch failed", "conversation", id, "error", err)
		return m, m.ShowToastError(err.Error())
	}
	m.refresh()
	m.setFocus(ui.FocusComposer)
	return m, nil
}

// newConversation starts a fresh conversation and focuses the composer
func (m *Model) newConversation() {
	m.ctrl.NewConversation()
	m.refresh()
	m.setFocus(ui.FocusComposer)
}

// copySelectedCode writes the selected block to the terminal clipboard via
// OSC 52 and to the native clipboard.
func (m *Model) copySelectedCode() (tea.Model, tea.Cmd) {
	code, _, ok := m.chat.SelectedCode()
	if !ok {
		return m, nil
	}
	if err := m.clipboard.WriteText(code); err != nil {
		m.log.Warn("native clipboard write failed", "error", err)
	}
	return m, tea.Batch(tea.SetClipboard(code), m.ShowToastSuccess(m.ctrl.Strings().Copied))
}

// cycleLanguage steps through the catalog
func (m *Model) cycleLanguage(delta int) {
	l := m.ctrl.CycleLanguage(delta)
	m.header.SetLanguage(l)
}

// toggleSidebar shows or hides the history list
func (m *Model) toggleSidebar() {
	open := m.ctrl.ToggleSidebar()
	ui.GetViewContext().SetSidebarOpen(open)
	if !open && m.focus == ui.FocusSidebar {
		m.setFocus(ui.FocusComposer)
	}
	m.updateSizes()
}

// toggleFocus switches between sidebar and composer
func (m *Model) toggleFocus() {
	if m.focus == ui.FocusSidebar || !m.ctrl.SidebarOpen() {
		m.setFocus(ui.FocusComposer)
		return
	}
	m.setFocus(ui.FocusSidebar)
}

func (m *Model) setFocus(f ui.Focus) {
	m.focus = f
	m.sidebar.SetFocused(f == ui.FocusSidebar)
	m.chat.SetFocused(f == ui.FocusComposer)
}

// refresh pushes controller state into the components
func (m *Model) refresh() {
	m.chat.SetMessages(m.ctrl.Messages())
	m.sidebar.SetSummaries(m.ctrl.Summaries(), m.ctrl.ActiveID())
	m.header.SetLanguage(m.ctrl.Language())
	m.header.SetBusy(m.ctrl.Busy())
}
