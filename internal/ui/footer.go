package ui

import (
	"strings"

	"charm.land/lipgloss/v2"
)

// KeyBinding represents a keyboard shortcut
type KeyBinding struct {
	Key  string
	Desc string
}

// Focus identifies which pane receives keys.
type Focus int

const (
	FocusComposer Focus = iota
	FocusSidebar
)

// Footer represents the bottom footer bar with keybindings
type Footer struct {
	width       int
	focus       Focus
	busy        bool // A reply is pending
	hasCode     bool // The active conversation has a code block to copy
	sidebarOpen bool
}

// NewFooter creates a new footer
func NewFooter() *Footer {
	return &Footer{sidebarOpen: true}
}

// SetContext updates the footer's context for conditional bindings
func (f *Footer) SetContext(focus Focus, busy, hasCode, sidebarOpen bool) {
	f.focus = focus
	f.busy = busy
	f.hasCode = hasCode
	f.sidebarOpen = sidebarOpen
}

// SetWidth sets the footer width
func (f *Footer) SetWidth(width int) {
	f.width = width
}

// Bindings returns the bindings for the current context.
func (f *Footer) Bindings() []KeyBinding {
	var bindings []KeyBinding

	if f.focus == FocusSidebar {
		bindings = append(bindings,
			KeyBinding{Key: "↑/↓", Desc: "navigate"},
			KeyBinding{Key: "enter", Desc: "open"},
			KeyBinding{Key: "n", Desc: "new chat"},
			KeyBinding{Key: "[/]", Desc: "language"},
			KeyBinding{Key: "tab", Desc: "composer"},
		)
	} else {
		if f.busy {
			bindings = append(bindings, KeyBinding{Key: "…", Desc: "generating"})
		} else {
			bindings = append(bindings, KeyBinding{Key: "enter", Desc: "send"})
		}
		bindings = append(bindings, KeyBinding{Key: "ctrl+l", Desc: "language"})
		if f.hasCode {
			bindings = append(bindings,
				KeyBinding{Key: "ctrl+p/n", Desc: "select code"},
				KeyBinding{Key: "ctrl+y", Desc: "copy"},
			)
		}
		bindings = append(bindings, KeyBinding{Key: "pgup/dn", Desc: "scroll"})
		if f.sidebarOpen {
			bindings = append(bindings, KeyBinding{Key: "tab", Desc: "history"})
		}
	}

	sidebarDesc := "hide history"
	if !f.sidebarOpen {
		sidebarDesc = "show history"
	}
	bindings = append(bindings,
		KeyBinding{Key: "ctrl+b", Desc: sidebarDesc},
		KeyBinding{Key: "?", Desc: "help"},
	)
	return bindings
}

// View renders the footer
func (f *Footer) View() string {
	var parts []string
	for _, b := range f.Bindings() {
		key := FooterKeyStyle.Render(b.Key)
		desc := FooterDescStyle.Render(": " + b.Desc)
		parts = append(parts, key+desc)
	}

	content := strings.Join(parts, "  "+lipgloss.NewStyle().Foreground(ColorBorder).Render("|")+"  ")

	return FooterStyle.Width(f.width).Render(content)
}
