package ui

import (
	"strings"
	"time"

	"charm.land/bubbles/v2/textinput"
	"charm.land/bubbles/v2/viewport"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/gelaxyai/gelaxy/internal/catalog"
	"github.com/gelaxyai/gelaxy/internal/chat"
	"github.com/gelaxyai/gelaxy/internal/locale"
	"github.com/gelaxyai/gelaxy/internal/logger"
)

// codeBlock is one copyable block found in the rendered messages.
type codeBlock struct {
	messageID string
	code      string
	language  string // Catalog identifier of the reply, may be empty
	line      int    // First line of the block in the viewport content
}

// Chat represents the right panel: the message viewport, the composer and
// the disclaimer line under it.
type Chat struct {
	viewport viewport.Model
	input    textinput.Model
	width    int
	height   int
	focused  bool

	messages []chat.Message
	blocks   []codeBlock
	selected int // Index into blocks, -1 when there is no code

	strings locale.Strings

	waiting       bool
	waitStartTime time.Time
	waitingVerb   string
	spinnerFrame  int
}

// NewChat creates a new chat panel
func NewChat() *Chat {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.CharLimit = 0

	vp := viewport.New()
	vp.MouseWheelEnabled = true
	vp.MouseWheelDelta = 3

	c := &Chat{
		viewport: vp,
		input:    ti,
		selected: -1,
	}
	c.SetStrings(locale.Get(locale.Default))
	return c
}

// SetStrings sets the locale used for placeholder, disclaimer and hints
func (c *Chat) SetStrings(s locale.Strings) {
	c.strings = s
	c.updatePlaceholder()
	c.updateContent()
}

// SetSize sets the chat panel dimensions
func (c *Chat) SetSize(width, height int) {
	c.width = width
	c.height = height

	ctx := GetViewContext()

	chatPanelHeight := height - ComposerHeight - DisclaimerHeight
	viewportHeight := ctx.InnerHeight(chatPanelHeight)
	if viewportHeight < 1 {
		viewportHeight = 1
	}

	c.viewport.SetWidth(ctx.InnerWidth(width))
	c.viewport.SetHeight(viewportHeight)

	// Composer border plus one column of padding on each side
	c.input.SetWidth(ctx.InnerWidth(width) - 2 - lipgloss.Width(c.input.Prompt))

	c.updateContent()
}

// SetFocused sets the focus state
func (c *Chat) SetFocused(focused bool) {
	c.focused = focused
	c.updateInputFocus()
}

// IsFocused returns the focus state
func (c *Chat) IsFocused() bool {
	return c.focused
}

// SetMessages replaces the displayed conversation. The newest code block is
// selected and the view scrolls to the bottom.
func (c *Chat) SetMessages(msgs []chat.Message) {
	c.messages = msgs
	c.selected = -1
	c.updateContent()
	c.selected = len(c.blocks) - 1
	c.updateContent()
	c.viewport.GotoBottom()
}

// SetWaiting starts or stops the waiting indicator. While waiting the
// composer does not accept input.
func (c *Chat) SetWaiting(waiting bool) {
	if waiting && !c.waiting {
		c.waitStartTime = time.Now()
		c.waitingVerb = randomThinkingVerb()
		c.spinnerFrame = 0
	}
	c.waiting = waiting
	c.updatePlaceholder()
	c.updateInputFocus()
	c.updateContent()
	if waiting {
		c.viewport.GotoBottom()
	}
}

// IsWaiting returns whether the waiting indicator is shown
func (c *Chat) IsWaiting() bool {
	return c.waiting
}

// HasCode reports whether any displayed message carries a code block
func (c *Chat) HasCode() bool {
	return len(c.blocks) > 0
}

// SelectPrevCode moves the selection to the previous code block
func (c *Chat) SelectPrevCode() {
	if c.selected > 0 {
		c.selected--
		c.updateContent()
		c.scrollToSelected()
	}
}

// SelectNextCode moves the selection to the next code block
func (c *Chat) SelectNextCode() {
	if c.selected < len(c.blocks)-1 {
		c.selected++
		c.updateContent()
		c.scrollToSelected()
	}
}

// SelectedCode returns the selected block's code and catalog language
func (c *Chat) SelectedCode() (code, language string, ok bool) {
	if c.selected < 0 || c.selected >= len(c.blocks) {
		return "", "", false
	}
	b := c.blocks[c.selected]
	return b.code, b.language, true
}

// GetInput returns the trimmed composer text
func (c *Chat) GetInput() string {
	return strings.TrimSpace(c.input.Value())
}

// SetInput replaces the composer text
func (c *Chat) SetInput(value string) {
	c.input.SetValue(value)
}

// ClearInput clears the composer
func (c *Chat) ClearInput() {
	c.input.Reset()
}

// Update handles messages for the chat panel. Page keys and the mouse wheel
// scroll the viewport; other keys edit the composer unless a reply is pending.
func (c *Chat) Update(msg tea.Msg) (*Chat, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case StopwatchTickMsg:
		if !c.waiting {
			return c, nil
		}
		c.spinnerFrame++
		c.updateContent()
		c.viewport.GotoBottom()
		return c, StopwatchTick()

	case tea.MouseWheelMsg:
		var cmd tea.Cmd
		c.viewport, cmd = c.viewport.Update(msg)
		return c, cmd

	case tea.KeyPressMsg:
		switch msg.String() {
		case "pgup", "pgdown":
			var cmd tea.Cmd
			c.viewport, cmd = c.viewport.Update(msg)
			return c, cmd
		}
		if c.waiting || !c.focused {
			return c, nil
		}
	}

	var cmd tea.Cmd
	c.input, cmd = c.input.Update(msg)
	cmds = append(cmds, cmd)

	return c, tea.Batch(cmds...)
}

func (c *Chat) updatePlaceholder() {
	if c.waiting {
		c.input.Placeholder = c.strings.BusyHint
	} else {
		c.input.Placeholder = c.strings.Placeholder
	}
}

func (c *Chat) updateInputFocus() {
	if c.focused && !c.waiting {
		c.input.Focus()
	} else {
		c.input.Blur()
	}
}

func (c *Chat) scrollToSelected() {
	if c.selected < 0 || c.selected >= len(c.blocks) {
		return
	}
	c.viewport.SetYOffset(c.blocks[c.selected].line)
}

// updateContent re-renders every message into the viewport and records where
// each code block starts.
func (c *Chat) updateContent() {
	width := c.viewport.Width()
	if width <= 0 {
		width = DefaultWrapWidth
	}

	c.blocks = c.blocks[:0]
	var parts []string
	lines := 0
	add := func(s string) {
		parts = append(parts, s)
		lines += lipgloss.Height(s) + 1 // Blank separator line
	}

	for _, msg := range c.messages {
		if msg.IsUser() {
			add(renderUserMessage(msg, width))
			continue
		}

		add(renderAssistantHeader(msg))
		reply := chat.ParseReply(msg.Content)
		if !reply.HasCode {
			add(ChatAssistantStyle.Render(wrapText(msg.Content, width-2)))
			continue
		}
		if reply.Description != "" {
			add(ChatAssistantStyle.Render(wrapText(reply.Description, width-2)))
		}

		idx := len(c.blocks)
		c.blocks = append(c.blocks, codeBlock{
			messageID: msg.ID,
			code:      reply.Code,
			language:  msg.Language,
			line:      lines,
		})

		label := reply.Language
		if l, ok := catalog.Lookup(msg.Language); ok {
			label = l.Icon + " " + l.Label
		}
		hint := ""
		if idx == c.selected {
			hint = c.strings.CopyHint
		}
		add(renderCodeBox(reply.Code, label, lexerFor(msg.Language, reply.Language), hint, idx == c.selected, width))
	}

	if c.waiting {
		add(renderWaiting(c.waitingVerb, c.spinnerFrame, time.Since(c.waitStartTime)))
	}

	if c.selected >= len(c.blocks) {
		c.selected = len(c.blocks) - 1
	}

	c.viewport.SetContent(strings.Join(parts, "\n\n"))
	logger.WithComponent("chat").Debug("content updated", "messages", len(c.messages), "blocks", len(c.blocks))
}

// View renders the chat panel
func (c *Chat) View() string {
	panel := PanelStyle
	if c.focused {
		panel = PanelFocusedStyle
	}

	chatPanelHeight := c.height - ComposerHeight - DisclaimerHeight
	if chatPanelHeight < BorderSize+1 {
		chatPanelHeight = BorderSize + 1
	}
	messages := panel.
		Width(c.width).
		Height(chatPanelHeight).
		Render(c.viewport.View())

	composer := ComposerStyle
	switch {
	case c.waiting:
		composer = ComposerDisabledStyle
	case c.focused:
		composer = ComposerFocusedStyle
	}
	input := composer.Width(c.width).Render(c.input.View())

	disclaimer := DisclaimerStyle.Width(c.width).Render(c.strings.Disclaimer)

	return lipgloss.JoinVertical(lipgloss.Left, messages, input, disclaimer)
}
