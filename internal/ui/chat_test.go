package ui

import (
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/gelaxyai/gelaxy/internal/chat"
	"github.com/gelaxyai/gelaxy/internal/locale"
)

func codeReply(code, language string) chat.Message {
	return chat.NewCodeReply(chat.FormatReply("Here is the code in Python:", code), language)
}

func newTestChat() *Chat {
	c := NewChat()
	c.SetSize(80, 30)
	c.SetFocused(true)
	return c
}

func typeText(c *Chat, text string) {
	for _, r := range text {
		c.Update(tea.KeyPressMsg{Code: r, Text: string(r)})
	}
}

func TestWrapText(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		width    int
		expected string
	}{
		{
			name:     "short text within width",
			text:     "hello world",
			width:    20,
			expected: "hello world",
		},
		{
			name:     "explicit newlines kept",
			text:     "one\ntwo",
			width:    20,
			expected: "one\ntwo",
		},
		{
			name:     "empty string",
			text:     "",
			width:    20,
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := wrapText(tt.text, tt.width)
			if result != tt.expected {
				t.Errorf("wrapText(%q, %d) = %q, want %q", tt.text, tt.width, result, tt.expected)
			}
		})
	}
}

func TestWrapText_LongLine(t *testing.T) {
	text := "this is a longer text that needs wrapping"

	result := wrapText(text, 20)

	for _, line := range strings.Split(result, "\n") {
		if len(line) > 20 {
			t.Errorf("line %q exceeds width 20", line)
		}
	}
	if strings.Join(strings.Fields(result), " ") != text {
		t.Errorf("wrapping lost words: %q", result)
	}
}

func TestHighlightCode(t *testing.T) {
	code := "def add(a, b):\n    return a + b"

	result := stripANSI(highlightCode(code, "python"))
	if result != code {
		t.Errorf("Highlighted code should keep its text, got %q", result)
	}

	// Unknown lexers fall back without losing text
	result = stripANSI(highlightCode("plain text", "no-such-language"))
	if result != "plain text" {
		t.Errorf("Fallback highlighting changed text: %q", result)
	}
}

func TestLexerFor(t *testing.T) {
	if got := lexerFor("python", "js"); got != "python" {
		t.Errorf("Catalog language should win, got %q", got)
	}
	if got := lexerFor("", "go"); got != "go" {
		t.Errorf("Fence info should be used without a catalog language, got %q", got)
	}
}

func TestChat_SetMessages_SelectsNewestCode(t *testing.T) {
	c := newTestChat()

	c.SetMessages([]chat.Message{
		chat.NewMessage(chat.RoleAssistant, "Hi!"),
		chat.NewMessage(chat.RoleUser, "sum two numbers"),
		codeReply("def add(a, b):\n    return a + b", "python"),
		chat.NewMessage(chat.RoleUser, "now subtract"),
		codeReply("def sub(a, b):\n    return a - b", "python"),
	})

	if !c.HasCode() {
		t.Fatal("Expected code blocks")
	}
	code, lang, ok := c.SelectedCode()
	if !ok {
		t.Fatal("Expected a selected block")
	}
	if !strings.Contains(code, "def sub") {
		t.Errorf("Expected newest block selected, got %q", code)
	}
	if lang != "python" {
		t.Errorf("Expected language python, got %q", lang)
	}
	if strings.Contains(code, "Here is the code") {
		t.Error("Selected code should not include the description")
	}
}

func TestChat_SelectPrevNextCode(t *testing.T) {
	c := newTestChat()
	c.SetMessages([]chat.Message{
		codeReply("first()\nsecond()\nthird()", "python"),
		codeReply("fourth()\nfifth()\nsixth()", "python"),
	})

	c.SelectPrevCode()
	code, _, _ := c.SelectedCode()
	if !strings.HasPrefix(code, "first()") {
		t.Errorf("Expected first block after SelectPrevCode, got %q", code)
	}

	// Stays at the first block
	c.SelectPrevCode()
	code, _, _ = c.SelectedCode()
	if !strings.HasPrefix(code, "first()") {
		t.Errorf("Expected to stay on first block, got %q", code)
	}

	c.SelectNextCode()
	c.SelectNextCode()
	code, _, _ = c.SelectedCode()
	if !strings.HasPrefix(code, "fourth()") {
		t.Errorf("Expected last block, got %q", code)
	}
}

func TestChat_NoCode(t *testing.T) {
	c := newTestChat()
	c.SetMessages([]chat.Message{
		chat.NewMessage(chat.RoleAssistant, "Hi! Pick a language."),
		chat.NewMessage(chat.RoleUser, "hello"),
	})

	if c.HasCode() {
		t.Error("Plain messages should not produce code blocks")
	}
	if _, _, ok := c.SelectedCode(); ok {
		t.Error("SelectedCode should report no selection")
	}
}

func TestChat_InputEditing(t *testing.T) {
	c := newTestChat()

	typeText(c, "hello")
	if c.GetInput() != "hello" {
		t.Errorf("Expected input 'hello', got %q", c.GetInput())
	}

	c.ClearInput()
	if c.GetInput() != "" {
		t.Errorf("Expected empty input after ClearInput, got %q", c.GetInput())
	}

	c.SetInput("  padded  ")
	if c.GetInput() != "padded" {
		t.Errorf("GetInput should trim, got %q", c.GetInput())
	}
}

func TestChat_WaitingBlocksInput(t *testing.T) {
	c := newTestChat()

	c.SetWaiting(true)
	if !c.IsWaiting() {
		t.Fatal("Expected waiting state")
	}

	typeText(c, "abc")
	if c.GetInput() != "" {
		t.Errorf("Input should be disabled while waiting, got %q", c.GetInput())
	}
	if c.input.Placeholder != locale.Get(locale.Default).BusyHint {
		t.Errorf("Expected busy placeholder, got %q", c.input.Placeholder)
	}

	c.SetWaiting(false)
	typeText(c, "abc")
	if c.GetInput() != "abc" {
		t.Errorf("Input should work after waiting ends, got %q", c.GetInput())
	}
}

func TestChat_UnfocusedIgnoresKeys(t *testing.T) {
	c := newTestChat()
	c.SetFocused(false)

	typeText(c, "abc")
	if c.GetInput() != "" {
		t.Errorf("Unfocused chat should ignore keys, got %q", c.GetInput())
	}
}

func TestChat_StopwatchTick(t *testing.T) {
	c := newTestChat()

	_, cmd := c.Update(StopwatchTickMsg(time.Now()))
	if cmd != nil {
		t.Error("Tick while idle should stop the stopwatch")
	}

	c.SetWaiting(true)
	frame := c.spinnerFrame
	_, cmd = c.Update(StopwatchTickMsg(time.Now()))
	if cmd == nil {
		t.Error("Tick while waiting should schedule the next tick")
	}
	if c.spinnerFrame != frame+1 {
		t.Errorf("Expected spinner frame %d, got %d", frame+1, c.spinnerFrame)
	}
}

func TestChat_View(t *testing.T) {
	c := newTestChat()
	c.SetStrings(locale.Get("ru"))
	c.SetMessages([]chat.Message{
		chat.NewMessage(chat.RoleUser, "sum two numbers"),
		codeReply("def add(a, b):\n    return a + b", "python"),
	})

	view := stripANSI(c.View())

	for _, want := range []string{"sum two numbers", "def add(a, b):", "Python", locale.Get("ru").Disclaimer, locale.Get("ru").CopyHint} {
		if !strings.Contains(view, want) {
			t.Errorf("Expected view to contain %q", want)
		}
	}
}

func TestChat_View_Waiting(t *testing.T) {
	c := newTestChat()
	c.SetWaiting(true)

	view := stripANSI(c.View())
	if !strings.Contains(view, c.waitingVerb+"...") {
		t.Errorf("Expected waiting indicator with %q", c.waitingVerb)
	}
}

func TestRenderWaiting(t *testing.T) {
	out := stripANSI(renderWaiting("Generating", 1, 12*time.Second))
	if out != spinnerFrames[1]+" Generating... (12s)" {
		t.Errorf("renderWaiting = %q", out)
	}
}
