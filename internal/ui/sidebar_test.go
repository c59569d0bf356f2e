package ui

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/gelaxyai/gelaxy/internal/chat"
)

func testSummaries(n int) []chat.ConversationSummary {
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	sums := make([]chat.ConversationSummary, n)
	for i := range n {
		sums[i] = chat.ConversationSummary{
			ID:        fmt.Sprintf("conv-%d", i),
			Title:     fmt.Sprintf("Chat %d", i),
			Timestamp: base.Add(-time.Duration(i) * time.Hour),
		}
	}
	return sums
}

func TestNewSidebar(t *testing.T) {
	sidebar := NewSidebar()

	if sidebar.Len() != 0 {
		t.Errorf("Expected empty sidebar, got %d entries", sidebar.Len())
	}
	if sidebar.SelectedID() != "" {
		t.Errorf("Expected no selection, got %q", sidebar.SelectedID())
	}
	if sidebar.IsFocused() {
		t.Error("Sidebar should not start focused")
	}
}

func TestSidebar_CursorFollowsActive(t *testing.T) {
	sidebar := NewSidebar()
	sidebar.SetSize(30, 40)

	sidebar.SetSummaries(testSummaries(3), "conv-2")
	if sidebar.Cursor() != 2 {
		t.Errorf("Expected cursor on active row 2, got %d", sidebar.Cursor())
	}

	// Same active conversation: cursor stays where the user moved it
	sidebar.MoveUp()
	sidebar.SetSummaries(testSummaries(3), "conv-2")
	if sidebar.Cursor() != 1 {
		t.Errorf("Expected cursor to stay on row 1, got %d", sidebar.Cursor())
	}

	sidebar.SetSummaries(testSummaries(3), "conv-0")
	if sidebar.Cursor() != 0 {
		t.Errorf("Expected cursor to follow new active row 0, got %d", sidebar.Cursor())
	}
}

func TestSidebar_Navigation(t *testing.T) {
	sidebar := NewSidebar()
	sidebar.SetSize(30, 40)
	sidebar.SetSummaries(testSummaries(4), "conv-0")

	sidebar.MoveUp()
	if sidebar.Cursor() != 0 {
		t.Errorf("MoveUp at top should stay at 0, got %d", sidebar.Cursor())
	}

	sidebar.MoveDown()
	sidebar.MoveDown()
	if sidebar.SelectedID() != "conv-2" {
		t.Errorf("Expected conv-2 selected, got %q", sidebar.SelectedID())
	}

	sidebar.MoveBottom()
	if sidebar.Cursor() != 3 {
		t.Errorf("MoveBottom should go to 3, got %d", sidebar.Cursor())
	}
	sidebar.MoveDown()
	if sidebar.Cursor() != 3 {
		t.Errorf("MoveDown at bottom should stay at 3, got %d", sidebar.Cursor())
	}

	sidebar.MoveTop()
	if sidebar.Cursor() != 0 {
		t.Errorf("MoveTop should go to 0, got %d", sidebar.Cursor())
	}
}

func TestSidebar_CursorClampedWhenListShrinks(t *testing.T) {
	sidebar := NewSidebar()
	sidebar.SetSize(30, 40)
	sidebar.SetSummaries(testSummaries(5), "conv-0")
	sidebar.MoveBottom()

	sidebar.SetSummaries(testSummaries(2), "conv-0")
	if sidebar.Cursor() != 1 {
		t.Errorf("Expected cursor clamped to 1, got %d", sidebar.Cursor())
	}
}

func TestSidebar_ScrollsToCursor(t *testing.T) {
	sidebar := NewSidebar()
	// 12 lines: border 2, header 2, leaves 4 rows of 2 lines each
	sidebar.SetSize(30, 12)
	sidebar.SetSummaries(testSummaries(10), "conv-0")

	sidebar.MoveBottom()
	if sidebar.offset != 10-sidebar.visibleRows() {
		t.Errorf("Expected offset %d, got %d", 10-sidebar.visibleRows(), sidebar.offset)
	}

	view := stripANSI(sidebar.View())
	if !strings.Contains(view, "Chat 9") {
		t.Error("Expected last row to be visible after MoveBottom")
	}
	if strings.Contains(view, "Chat 0") {
		t.Error("Expected first row to be scrolled out of view")
	}
}

func TestSidebar_View(t *testing.T) {
	sidebar := NewSidebar()
	sidebar.SetSize(30, 20)
	sidebar.SetLabels("Новый чат", "02.01.2006")
	sidebar.SetSummaries(testSummaries(2), "conv-1")

	view := stripANSI(sidebar.View())

	if !strings.Contains(view, "+ Новый чат (n)") {
		t.Errorf("Expected new chat hint, got %q", view)
	}
	if !strings.Contains(view, "● Chat 1") {
		t.Errorf("Expected active marker on Chat 1, got %q", view)
	}
	if !strings.Contains(view, "01.03.2026") {
		t.Errorf("Expected localized date, got %q", view)
	}
}

func TestSidebar_View_ZeroWidth(t *testing.T) {
	sidebar := NewSidebar()
	if sidebar.View() != "" {
		t.Error("Expected empty view with zero width")
	}
}
