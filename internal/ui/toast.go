package ui

import (
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	uv "github.com/charmbracelet/ultraviolet"
	"github.com/charmbracelet/x/ansi"
	"github.com/rivo/uniseg"
)

// ToastType represents the type of toast message
type ToastType int

const (
	ToastInfo ToastType = iota
	ToastSuccess
	ToastWarning
	ToastError
)

// Icon returns the glyph drawn before the message
func (t ToastType) Icon() string {
	switch t {
	case ToastError:
		return "✕"
	case ToastWarning:
		return "⚠"
	case ToastSuccess:
		return "✓"
	default:
		return "ℹ"
	}
}

func (t ToastType) style() lipgloss.Style {
	switch t {
	case ToastError:
		return ToastErrorStyle
	case ToastWarning:
		return ToastWarningStyle
	case ToastSuccess:
		return ToastSuccessStyle
	default:
		return ToastInfoStyle
	}
}

// ToastTickMsg dismisses the toast with the matching ID
type ToastTickMsg struct {
	ID int
}

// ToastTick returns a command that dismisses toast id after ToastDuration
func ToastTick(id int) tea.Cmd {
	return tea.Tick(ToastDuration, func(time.Time) tea.Msg {
		return ToastTickMsg{ID: id}
	})
}

// Toast is a transient message drawn over the top-right corner of the screen.
// Each Show bumps the ID so an older tick cannot dismiss a newer toast.
type Toast struct {
	id      int
	typ     ToastType
	message string
	visible bool
}

// NewToast creates a hidden toast
func NewToast() *Toast {
	return &Toast{}
}

// Show displays a message and returns the dismiss tick
func (t *Toast) Show(typ ToastType, message string) tea.Cmd {
	t.id++
	t.typ = typ
	t.message = message
	t.visible = true
	return ToastTick(t.id)
}

// HandleTick hides the toast if the tick belongs to it
func (t *Toast) HandleTick(msg ToastTickMsg) {
	if msg.ID == t.id {
		t.visible = false
	}
}

// Clear hides the toast immediately
func (t *Toast) Clear() {
	t.visible = false
}

// Visible returns whether the toast is shown
func (t *Toast) Visible() bool {
	return t.visible
}

// Message returns the current message
func (t *Toast) Message() string {
	return t.message
}

// Type returns the current toast type
func (t *Toast) Type() ToastType {
	return t.typ
}

// Render renders the toast box on its own, sized to its message
func (t *Toast) Render(maxWidth int) string {
	if maxWidth > ToastMaxWidth {
		maxWidth = ToastMaxWidth
	}
	text := t.typ.Icon() + " " + t.message
	// Border and padding take four columns
	inner := maxWidth - 4
	if inner < 1 {
		inner = 1
	}
	if uniseg.StringWidth(text) > inner {
		text = ansi.Truncate(text, inner, "…")
	}
	return t.typ.style().Render(text)
}

// Overlay draws the toast on top of view at the top-right corner, one line
// below the header. The view is returned unchanged when the toast is hidden.
func (t *Toast) Overlay(view string, width, height int) string {
	if !t.visible || width <= 0 || height <= 0 {
		return view
	}

	box := t.Render(width - 2)
	boxWidth := lipgloss.Width(box)
	boxHeight := lipgloss.Height(box)

	x := width - boxWidth - 1
	if x < 0 {
		x = 0
	}
	y := HeaderHeight + 1
	if y+boxHeight > height {
		y = 0
	}

	area := uv.Rect(0, 0, width, height)
	scr := uv.NewScreenBuffer(area.Dx(), area.Dy())
	uv.NewStyledString(view).Draw(scr, area)
	uv.NewStyledString(box).Draw(scr, uv.Rect(x, y, boxWidth, boxHeight))

	return scr.Render()
}
