package app

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/gelaxyai/gelaxy/internal/ui"
)

// View renders the app. This is the core Bubble Tea view function.
func (m *Model) View() tea.View {
	var v tea.View
	v.AltScreen = true
	v.MouseMode = tea.MouseModeCellMotion
	v.SetContent(m.RenderToString())
	return v
}

// RenderToString renders the current view as a string.
func (m *Model) RenderToString() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	// Update footer context for conditional bindings
	m.updateFooterContext()

	// Overlay modal if visible
	if m.modal.IsVisible() {
		return m.modal.View(m.width, m.height)
	}

	panels := m.chat.View()
	if m.ctrl.SidebarOpen() {
		panels = lipgloss.JoinHorizontal(
			lipgloss.Top,
			m.sidebar.View(),
			panels,
		)
	}

	view := lipgloss.JoinVertical(
		lipgloss.Left,
		m.header.View(),
		panels,
		m.footer.View(),
	)

	return m.toast.Overlay(view, m.width, m.height)
}

// updateFooterContext updates the footer with current context for conditional bindings
func (m *Model) updateFooterContext() {
	m.footer.SetContext(m.focus, m.ctrl.Busy(), m.chat.HasCode(), m.ctrl.SidebarOpen())
}

// updateSizes updates component sizes based on terminal dimensions
func (m *Model) updateSizes() {
	if m.width == 0 || m.height == 0 {
		return
	}

	ctx := ui.GetViewContext()
	ctx.SetSidebarOpen(m.ctrl.SidebarOpen())
	ctx.UpdateTerminalSize(m.width, m.height)

	m.header.SetWidth(ctx.TerminalWidth)
	m.footer.SetWidth(ctx.TerminalWidth)
	m.sidebar.SetSize(ctx.SidebarWidth, ctx.ContentHeight)
	m.chat.SetSize(ctx.ChatWidth, ctx.ContentHeight)
}
