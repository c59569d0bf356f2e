package ui

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/mattn/go-runewidth"

	"github.com/gelaxyai/gelaxy/internal/catalog"
)

// AppTitle is shown at the left of the header.
const AppTitle = "Gelaxyai"

// Header represents the top header bar: app title and subtitle on the left,
// the selected language on the right.
type Header struct {
	width    int
	subtitle string
	language catalog.Language
	busy     bool
}

// NewHeader creates a new header
func NewHeader() *Header {
	return &Header{language: catalog.Default()}
}

// SetWidth sets the header width
func (h *Header) SetWidth(width int) {
	h.width = width
}

// SetSubtitle sets the muted text after the title
func (h *Header) SetSubtitle(subtitle string) {
	h.subtitle = subtitle
}

// SetLanguage sets the language shown on the right
func (h *Header) SetLanguage(l catalog.Language) {
	h.language = l
}

// SetBusy marks that a reply is pending
func (h *Header) SetBusy(busy bool) {
	h.busy = busy
}

// View renders the header
func (h *Header) View() string {
	left := " " + AppTitle
	if h.subtitle != "" {
		left += " · " + h.subtitle
	}

	right := h.language.Icon + " " + h.language.Label + " "
	if h.busy {
		right = "… " + right
	}

	// Emoji icons are double width; pad by display width, not rune count
	paddingLen := h.width - runewidth.StringWidth(left) - runewidth.StringWidth(right)
	if paddingLen < 1 {
		paddingLen = 1
	}

	return h.renderGradient(left, strings.Repeat(" ", paddingLen), right)
}

// parseHexColor parses a hex color string (e.g., "#7C3AED") into RGB components
func parseHexColor(hex string) (r, g, b int) {
	if len(hex) == 7 && hex[0] == '#' {
		fmt.Sscanf(hex[1:], "%02x%02x%02x", &r, &g, &b)
	}
	return
}

// renderGradient renders the header with a background fading from the
// theme's primary color into the main background. The subtitle is muted and
// the language label stays bold.
func (h *Header) renderGradient(left, padding, right string) string {
	theme := CurrentTheme()
	startR, startG, startB := parseHexColor(theme.Primary)
	endR, endG, endB := parseHexColor(theme.Bg)

	textColor := lipgloss.Color(theme.Text)
	mutedColor := lipgloss.Color(theme.TextMuted)

	titleEnd := len([]rune(" " + AppTitle))
	leftLen := len([]rune(left))
	rightStart := leftLen + len([]rune(padding))

	runes := []rune(left + padding + right)
	total := len(runes)
	var result strings.Builder

	for i, r := range runes {
		t := float64(i) / float64(total)
		cr := int(float64(startR)*(1-t) + float64(endR)*t)
		cg := int(float64(startG)*(1-t) + float64(endG)*t)
		cb := int(float64(startB)*(1-t) + float64(endB)*t)

		style := lipgloss.NewStyle().
			Background(lipgloss.Color(fmt.Sprintf("#%02X%02X%02X", cr, cg, cb))).
			Foreground(textColor)

		switch {
		case i < titleEnd, i >= rightStart:
			style = style.Bold(true)
		case i < leftLen:
			style = style.Foreground(mutedColor)
		}

		result.WriteString(style.Render(string(r)))
	}

	return result.String()
}
