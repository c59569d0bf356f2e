package ui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"

	"github.com/gelaxyai/gelaxy/internal/catalog"
)

// stripANSI removes ANSI escape codes from a string for testing
func stripANSI(s string) string {
	return ansi.Strip(s)
}

func TestNewHeader(t *testing.T) {
	header := NewHeader()

	if header == nil {
		t.Fatal("NewHeader() returned nil")
	}

	if header.language.ID != catalog.Default().ID {
		t.Errorf("Expected default language %q, got %q", catalog.Default().ID, header.language.ID)
	}
}

func TestHeader_SetWidth(t *testing.T) {
	header := NewHeader()

	header.SetWidth(120)

	if header.width != 120 {
		t.Errorf("Expected width 120, got %d", header.width)
	}
}

func TestHeader_View_ShowsTitleAndLanguage(t *testing.T) {
	header := NewHeader()
	header.SetWidth(100)
	header.SetSubtitle("AI code generation")
	python, _ := catalog.Lookup("python")
	header.SetLanguage(python)

	view := stripANSI(header.View())

	if !strings.Contains(view, AppTitle) {
		t.Errorf("Expected header to contain %q, got %q", AppTitle, view)
	}
	if !strings.Contains(view, "AI code generation") {
		t.Errorf("Expected header to contain subtitle, got %q", view)
	}
	if !strings.Contains(view, python.Label) {
		t.Errorf("Expected header to contain %q, got %q", python.Label, view)
	}
}

func TestHeader_View_Busy(t *testing.T) {
	header := NewHeader()
	header.SetWidth(100)

	if strings.Contains(stripANSI(header.View()), "…") {
		t.Error("Idle header should not show the busy marker")
	}

	header.SetBusy(true)
	if !strings.Contains(stripANSI(header.View()), "…") {
		t.Error("Busy header should show the busy marker")
	}
}

func TestHeader_View_NarrowWidth(t *testing.T) {
	header := NewHeader()
	header.SetWidth(5)

	// Should not panic and still render the title
	view := stripANSI(header.View())
	if !strings.Contains(view, AppTitle) {
		t.Errorf("Expected title even when narrow, got %q", view)
	}
}

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		hex     string
		r, g, b int
	}{
		{"#7C3AED", 0x7C, 0x3A, 0xED},
		{"#000000", 0, 0, 0},
		{"invalid", 0, 0, 0},
		{"", 0, 0, 0},
	}

	for _, tt := range tests {
		r, g, b := parseHexColor(tt.hex)
		if r != tt.r || g != tt.g || b != tt.b {
			t.Errorf("parseHexColor(%q) = (%d, %d, %d), want (%d, %d, %d)", tt.hex, r, g, b, tt.r, tt.g, tt.b)
		}
	}
}
