package ui

import (
	"charm.land/lipgloss/v2"

	"github.com/gelaxyai/gelaxy/internal/ui/modals"
)

// Color palette, rebuilt from the current theme by regenerateStyles
var (
	ColorPrimary     = lipgloss.Color("#7C3AED")
	ColorSecondary   = lipgloss.Color("#06B6D4")
	ColorMuted       = lipgloss.Color("#6B7280")
	ColorBorder      = lipgloss.Color("#374151")
	ColorBorderFocus = lipgloss.Color("#7C3AED")
	ColorBg          = lipgloss.Color("#1F2937")
	ColorCodeBg      = lipgloss.Color("#1E1E2E")
	ColorText        = lipgloss.Color("#F9FAFB")
	ColorTextMuted   = lipgloss.Color("#B0B8C4")
	ColorTextInverse = lipgloss.Color("#1F2937")
	ColorUser        = lipgloss.Color("#A78BFA")
	ColorAssistant   = lipgloss.Color("#22D3EE")
	ColorWarning     = lipgloss.Color("#F59E0B")
	ColorInfo        = lipgloss.Color("#06B6D4")
	ColorError       = lipgloss.Color("#EF4444")
	ColorSuccess     = lipgloss.Color("#10B981")
)

// Header styles
var (
	HeaderStyle         lipgloss.Style
	HeaderLanguageStyle lipgloss.Style
)

// Footer styles
var (
	FooterStyle     lipgloss.Style
	FooterKeyStyle  lipgloss.Style
	FooterDescStyle lipgloss.Style
)

// Panel styles
var (
	PanelStyle        lipgloss.Style
	PanelFocusedStyle lipgloss.Style
	PanelTitleStyle   lipgloss.Style
)

// Sidebar styles
var (
	SidebarItemStyle     lipgloss.Style
	SidebarSelectedStyle lipgloss.Style
	SidebarActiveStyle   lipgloss.Style
	SidebarDateStyle     lipgloss.Style
	SidebarNewChatStyle  lipgloss.Style
)

// Chat styles
var (
	ChatUserBubbleStyle    lipgloss.Style
	ChatAssistantStyle     lipgloss.Style
	ChatAssistantNameStyle lipgloss.Style
	ChatTimestampStyle     lipgloss.Style
	CodeBoxStyle           lipgloss.Style
	CodeBoxSelectedStyle   lipgloss.Style
	CodeHeaderStyle        lipgloss.Style
	CopyHintStyle          lipgloss.Style
	ComposerStyle          lipgloss.Style
	ComposerFocusedStyle   lipgloss.Style
	ComposerDisabledStyle  lipgloss.Style
	DisclaimerStyle        lipgloss.Style
)

// Modal styles
var (
	ModalStyle      lipgloss.Style
	ModalTitleStyle lipgloss.Style
	ModalHelpStyle  lipgloss.Style
)

// Status styles
var (
	StatusLoadingStyle lipgloss.Style
	StatusErrorStyle   lipgloss.Style
)

// Toast styles, keyed by toast type
var (
	ToastErrorStyle   lipgloss.Style
	ToastWarningStyle lipgloss.Style
	ToastInfoStyle    lipgloss.Style
	ToastSuccessStyle lipgloss.Style
)

func init() {
	regenerateStyles()
}

// regenerateStyles updates all style variables based on the current theme
func regenerateStyles() {
	t := currentTheme

	ColorPrimary = lipgloss.Color(t.Primary)
	ColorSecondary = lipgloss.Color(t.Secondary)
	ColorMuted = lipgloss.Color(t.TextMuted)
	ColorBorder = lipgloss.Color(t.Border)
	ColorBorderFocus = lipgloss.Color(t.GetBorderFocus())
	ColorBg = lipgloss.Color(t.Bg)
	ColorCodeBg = lipgloss.Color(t.CodeBg)
	ColorText = lipgloss.Color(t.Text)
	ColorTextMuted = lipgloss.Color(t.TextMuted)
	ColorTextInverse = lipgloss.Color(t.TextInverse)
	ColorUser = lipgloss.Color(t.User)
	ColorAssistant = lipgloss.Color(t.Assistant)
	ColorWarning = lipgloss.Color(t.Warning)
	ColorInfo = lipgloss.Color(t.Info)
	ColorError = lipgloss.Color(t.Error)
	ColorSuccess = lipgloss.Color(t.Success)

	HeaderStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorText).
		Background(ColorPrimary).
		Padding(0, 1)

	HeaderLanguageStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorText)

	FooterStyle = lipgloss.NewStyle().
		Foreground(ColorTextMuted).
		Padding(0, 1)

	FooterKeyStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorSecondary)

	FooterDescStyle = lipgloss.NewStyle().
		Foreground(ColorTextMuted)

	PanelStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorBorder)

	PanelFocusedStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorBorderFocus)

	PanelTitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorPrimary).
		Padding(0, 1)

	SidebarItemStyle = lipgloss.NewStyle().
		Padding(0, 1)

	SidebarSelectedStyle = lipgloss.NewStyle().
		Background(lipgloss.Color(t.GetBgSelected())).
		Foreground(ColorText).
		Bold(true).
		Padding(0, 1)

	SidebarActiveStyle = lipgloss.NewStyle().
		Foreground(ColorPrimary).
		Bold(true).
		Padding(0, 1)

	SidebarDateStyle = lipgloss.NewStyle().
		Foreground(ColorMuted).
		Italic(true)

	SidebarNewChatStyle = lipgloss.NewStyle().
		Foreground(ColorSecondary).
		Bold(true).
		Padding(0, 1)

	ChatUserBubbleStyle = lipgloss.NewStyle().
		Foreground(ColorText).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorUser).
		Padding(0, 1)

	ChatAssistantStyle = lipgloss.NewStyle().
		Foreground(ColorText)

	ChatAssistantNameStyle = lipgloss.NewStyle().
		Foreground(ColorAssistant).
		Bold(true)

	ChatTimestampStyle = lipgloss.NewStyle().
		Foreground(ColorMuted)

	CodeBoxStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorBorder).
		Padding(0, 1)

	CodeBoxSelectedStyle = lipgloss.NewStyle().
		Border(lipgloss.ThickBorder()).
		BorderForeground(ColorBorderFocus).
		Padding(0, 1)

	CodeHeaderStyle = lipgloss.NewStyle().
		Foreground(ColorSecondary).
		Bold(true)

	CopyHintStyle = lipgloss.NewStyle().
		Foreground(ColorTextMuted).
		Italic(true)

	ComposerStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorBorder).
		Padding(0, 1)

	ComposerFocusedStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorBorderFocus).
		Padding(0, 1)

	ComposerDisabledStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorMuted).
		Foreground(ColorMuted).
		Padding(0, 1)

	DisclaimerStyle = lipgloss.NewStyle().
		Foreground(ColorMuted).
		Italic(true)

	ModalStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorPrimary).
		Padding(1, 2).
		Width(ModalWidth)

	ModalTitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorPrimary).
		MarginBottom(1)

	ModalHelpStyle = lipgloss.NewStyle().
		Foreground(ColorTextMuted).
		Italic(true).
		MarginTop(1)

	StatusLoadingStyle = lipgloss.NewStyle().
		Foreground(ColorSecondary).
		Italic(true)

	StatusErrorStyle = lipgloss.NewStyle().
		Foreground(ColorError).
		Bold(true)

	toastBase := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Foreground(ColorText).
		Padding(0, 1)
	ToastErrorStyle = toastBase.BorderForeground(ColorError)
	ToastWarningStyle = toastBase.BorderForeground(ColorWarning)
	ToastInfoStyle = toastBase.BorderForeground(ColorInfo)
	ToastSuccessStyle = toastBase.BorderForeground(ColorSuccess)

	RefreshModalStyles()
}

// RefreshModalStyles passes the current palette to the modals package.
func RefreshModalStyles() {
	modals.SetStyles(
		ModalTitleStyle, ModalHelpStyle, SidebarItemStyle, SidebarSelectedStyle, StatusErrorStyle,
		ColorPrimary, ColorSecondary, ColorText, ColorTextMuted, ColorTextInverse, ColorWarning,
		ModalWidth,
	)
}
