package ui

import (
	"bytes"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/charmbracelet/x/ansi"

	"github.com/gelaxyai/gelaxy/internal/catalog"
	"github.com/gelaxyai/gelaxy/internal/chat"
)

// highlightCode applies syntax highlighting to code using chroma and the
// current theme's chroma style.
func highlightCode(code, language string) string {
	lexer := lexers.Get(language)
	if lexer == nil {
		lexer = lexers.Analyse(code)
	}
	if lexer == nil {
		lexer = lexers.Fallback
	}
	lexer = chroma.Coalesce(lexer)

	style := styles.Get(CurrentTheme().ChromaStyle)
	if style == nil {
		style = styles.Fallback
	}

	formatter := formatters.Get("terminal256")
	if formatter == nil {
		formatter = formatters.Fallback
	}

	iterator, err := lexer.Tokenise(nil, code)
	if err != nil {
		return code
	}

	var buf bytes.Buffer
	if err := formatter.Format(&buf, style, iterator); err != nil {
		return code
	}

	return strings.TrimRight(buf.String(), "\n")
}

// lexerFor picks the chroma lexer for a reply: the catalog entry of the
// message language, then the fence info string.
func lexerFor(messageLanguage, fenceLanguage string) string {
	if l, ok := catalog.Lookup(messageLanguage); ok {
		return l.Lexer
	}
	return fenceLanguage
}

// wrapText wraps plain text to width, preserving explicit line breaks.
func wrapText(text string, width int) string {
	if width <= 0 {
		width = DefaultWrapWidth
	}
	return ansi.Wrap(text, width, " ")
}

// renderUserMessage renders a right-aligned bubble.
func renderUserMessage(msg chat.Message, width int) string {
	maxBubble := width * MaxBubbleRatio / 4
	if maxBubble < 10 {
		maxBubble = width
	}
	// Border and padding take four columns
	body := wrapText(msg.Content, maxBubble-4)
	bubble := ChatUserBubbleStyle.Render(body)
	return lipgloss.PlaceHorizontal(width, lipgloss.Right, bubble)
}

// renderAssistantHeader renders the name line above an assistant message.
func renderAssistantHeader(msg chat.Message) string {
	name := ChatAssistantNameStyle.Render(AppTitle)
	if msg.Timestamp.IsZero() {
		return name
	}
	return name + " " + ChatTimestampStyle.Render(msg.Timestamp.Format("15:04"))
}

// renderCodeBox renders a highlighted code block with a header naming the
// language and the copy hint. Long lines are truncated, not wrapped.
func renderCodeBox(code, label, lexer, hint string, selected bool, width int) string {
	style := CodeBoxStyle
	if selected {
		style = CodeBoxSelectedStyle
	}

	// Border and padding take four columns
	inner := width - 4
	if inner < 8 {
		inner = 8
	}

	header := CodeHeaderStyle.Render(label)
	if hint != "" {
		gap := inner - lipgloss.Width(header) - lipgloss.Width(hint)
		if gap < 1 {
			gap = 1
		}
		header += strings.Repeat(" ", gap) + CopyHintStyle.Render(hint)
	}

	lines := strings.Split(highlightCode(code, lexer), "\n")
	for i, line := range lines {
		lines[i] = ansi.Truncate(line, inner, "…")
	}

	return style.Width(width).Render(header + "\n" + strings.Join(lines, "\n"))
}
