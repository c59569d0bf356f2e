package ui

import (
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"

	"github.com/gelaxyai/gelaxy/internal/chat"
)

// Sidebar lists conversation summaries newest first. The cursor moves
// independently of the active conversation; enter makes the cursor row active.
type Sidebar struct {
	width  int
	height int

	summaries []chat.ConversationSummary
	activeID  string
	cursor    int
	offset    int
	focused   bool

	newChatLabel string
	dateFormat   string
}

// NewSidebar creates a new sidebar
func NewSidebar() *Sidebar {
	return &Sidebar{
		newChatLabel: "New chat",
		dateFormat:   "2006-01-02",
	}
}

// SetSize sets the sidebar dimensions including its border
func (s *Sidebar) SetSize(width, height int) {
	s.width = width
	s.height = height
	s.ensureVisible()
}

// SetLabels sets the localized "new chat" label and date layout
func (s *Sidebar) SetLabels(newChat, dateFormat string) {
	s.newChatLabel = newChat
	s.dateFormat = dateFormat
}

// SetFocused sets whether the sidebar receives keys
func (s *Sidebar) SetFocused(focused bool) {
	s.focused = focused
}

// IsFocused returns whether the sidebar receives keys
func (s *Sidebar) IsFocused() bool {
	return s.focused
}

// SetSummaries replaces the list. When the active conversation changed the
// cursor follows it; otherwise the cursor stays on the same row index.
func (s *Sidebar) SetSummaries(summaries []chat.ConversationSummary, activeID string) {
	activeChanged := activeID != s.activeID
	s.summaries = summaries
	s.activeID = activeID

	if activeChanged {
		for i, sum := range summaries {
			if sum.ID == activeID {
				s.cursor = i
				break
			}
		}
	}
	if s.cursor >= len(s.summaries) {
		s.cursor = len(s.summaries) - 1
	}
	if s.cursor < 0 {
		s.cursor = 0
	}
	s.ensureVisible()
}

// Len returns the number of summaries
func (s *Sidebar) Len() int {
	return len(s.summaries)
}

// Cursor returns the highlighted row index
func (s *Sidebar) Cursor() int {
	return s.cursor
}

// MoveUp moves the cursor one row up
func (s *Sidebar) MoveUp() {
	if s.cursor > 0 {
		s.cursor--
		s.ensureVisible()
	}
}

// MoveDown moves the cursor one row down
func (s *Sidebar) MoveDown() {
	if s.cursor < len(s.summaries)-1 {
		s.cursor++
		s.ensureVisible()
	}
}

// MoveTop moves the cursor to the newest conversation
func (s *Sidebar) MoveTop() {
	s.cursor = 0
	s.ensureVisible()
}

// MoveBottom moves the cursor to the oldest conversation
func (s *Sidebar) MoveBottom() {
	if len(s.summaries) > 0 {
		s.cursor = len(s.summaries) - 1
		s.ensureVisible()
	}
}

// SelectedID returns the ID under the cursor, or "" when the list is empty
func (s *Sidebar) SelectedID() string {
	if s.cursor < 0 || s.cursor >= len(s.summaries) {
		return ""
	}
	return s.summaries[s.cursor].ID
}

// visibleRows is the number of summary rows that fit: the panel minus the
// border, the new-chat line and a separator. Each summary takes two lines.
func (s *Sidebar) visibleRows() int {
	inner := s.height - BorderSize - 2
	rows := inner / 2
	if rows < 1 {
		rows = 1
	}
	return rows
}

func (s *Sidebar) ensureVisible() {
	rows := s.visibleRows()
	if s.cursor < s.offset {
		s.offset = s.cursor
	}
	if s.cursor >= s.offset+rows {
		s.offset = s.cursor - rows + 1
	}
	if s.offset < 0 {
		s.offset = 0
	}
}

// View renders the sidebar
func (s *Sidebar) View() string {
	if s.width <= 0 {
		return ""
	}

	innerWidth := s.width - BorderSize
	if innerWidth < 4 {
		innerWidth = 4
	}
	textWidth := innerWidth - 2 // item padding

	var b strings.Builder
	b.WriteString(SidebarNewChatStyle.Render(ansi.Truncate("+ "+s.newChatLabel+" (n)", textWidth, "…")))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(ColorBorder).Render(strings.Repeat("─", innerWidth)))

	end := s.offset + s.visibleRows()
	if end > len(s.summaries) {
		end = len(s.summaries)
	}
	for i := s.offset; i < end; i++ {
		sum := s.summaries[i]
		title := sum.Title
		if sum.ID == s.activeID {
			title = "● " + title
		} else {
			title = "  " + title
		}
		title = ansi.Truncate(title, textWidth, "…")
		date := ansi.Truncate("  "+sum.Timestamp.Format(s.dateFormat), textWidth, "")

		style := SidebarItemStyle
		switch {
		case i == s.cursor && s.focused:
			style = SidebarSelectedStyle
		case sum.ID == s.activeID:
			style = SidebarActiveStyle
		}

		b.WriteString("\n")
		b.WriteString(style.Width(innerWidth).Render(title))
		b.WriteString("\n")
		b.WriteString(SidebarItemStyle.Render(SidebarDateStyle.Render(date)))
	}

	panel := PanelStyle
	if s.focused {
		panel = PanelFocusedStyle
	}
	return panel.
		Width(s.width).
		Height(s.height).
		Render(b.String())
}
