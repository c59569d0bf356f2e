package ui

import (
	"strings"
	"testing"

	"charm.land/lipgloss/v2"
)

func TestToast_ShowAndTick(t *testing.T) {
	toast := NewToast()
	if toast.Visible() {
		t.Fatal("New toast should be hidden")
	}

	cmd := toast.Show(ToastSuccess, "Code copied")
	if cmd == nil {
		t.Error("Show should return a dismiss tick")
	}
	if !toast.Visible() {
		t.Error("Toast should be visible after Show")
	}
	if toast.Message() != "Code copied" || toast.Type() != ToastSuccess {
		t.Errorf("Unexpected toast state: %q %v", toast.Message(), toast.Type())
	}

	toast.HandleTick(ToastTickMsg{ID: toast.id})
	if toast.Visible() {
		t.Error("Matching tick should hide the toast")
	}
}

func TestToast_StaleTickIgnored(t *testing.T) {
	toast := NewToast()
	toast.Show(ToastInfo, "first")
	stale := toast.id
	toast.Show(ToastError, "second")

	toast.HandleTick(ToastTickMsg{ID: stale})
	if !toast.Visible() {
		t.Error("Tick from an older toast should not hide the newer one")
	}
}

func TestToast_Clear(t *testing.T) {
	toast := NewToast()
	toast.Show(ToastWarning, "careful")
	toast.Clear()
	if toast.Visible() {
		t.Error("Clear should hide the toast")
	}
}

func TestToastType_Icon(t *testing.T) {
	tests := []struct {
		typ  ToastType
		icon string
	}{
		{ToastError, "✕"},
		{ToastWarning, "⚠"},
		{ToastInfo, "ℹ"},
		{ToastSuccess, "✓"},
	}
	for _, tt := range tests {
		if got := tt.typ.Icon(); got != tt.icon {
			t.Errorf("Icon(%d) = %q, want %q", tt.typ, got, tt.icon)
		}
	}
}

func TestToast_RenderTruncates(t *testing.T) {
	toast := NewToast()
	toast.Show(ToastError, strings.Repeat("very long failure message ", 10))

	box := toast.Render(200)
	if w := lipgloss.Width(box); w > ToastMaxWidth {
		t.Errorf("Toast width %d exceeds max %d", w, ToastMaxWidth)
	}
	if !strings.Contains(stripANSI(box), "…") {
		t.Error("Expected long message to be truncated with an ellipsis")
	}
}

func TestToast_Overlay(t *testing.T) {
	base := strings.Repeat(strings.Repeat(".", 80)+"\n", 23) + strings.Repeat(".", 80)

	toast := NewToast()
	if got := toast.Overlay(base, 80, 24); got != base {
		t.Error("Hidden toast should return the view unchanged")
	}

	toast.Show(ToastInfo, "hello")
	out := stripANSI(toast.Overlay(base, 80, 24))
	lines := strings.Split(out, "\n")

	found := false
	for _, line := range lines {
		if strings.Contains(line, "ℹ hello") {
			found = true
			if !strings.HasPrefix(line, "....") {
				t.Errorf("Toast should be drawn at the right, got %q", line)
			}
		}
	}
	if !found {
		t.Errorf("Expected toast text in overlay, got %q", out)
	}
	if !strings.HasPrefix(lines[0], strings.Repeat(".", 80)) {
		t.Errorf("Header row should be untouched, got %q", lines[0])
	}
}
