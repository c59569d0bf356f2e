package app

import (
	tea "charm.land/bubbletea/v2"

	"github.com/gelaxyai/gelaxy/internal/ui"
)

// ShowToast displays a toast and returns a command to start the auto-dismiss timer
func (m *Model) ShowToast(text string, toastType ui.ToastType) tea.Cmd {
	return m.toast.Show(toastType, text)
}

// ShowToastError displays an error toast
func (m *Model) ShowToastError(text string) tea.Cmd {
	return m.ShowToast(text, ui.ToastError)
}

// ShowToastInfo displays an info toast
func (m *Model) ShowToastInfo(text string) tea.Cmd {
	return m.ShowToast(text, ui.ToastInfo)
}

// ShowToastSuccess displays a success toast
func (m *Model) ShowToastSuccess(text string) tea.Cmd {
	return m.ShowToast(text, ui.ToastSuccess)
}
