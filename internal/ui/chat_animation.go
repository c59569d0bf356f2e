package ui

import (
	"fmt"
	"math/rand"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
)

// StopwatchTickMsg is sent to update the animated waiting display
type StopwatchTickMsg time.Time

// thinkingVerbs cycle while a reply is pending
var thinkingVerbs = []string{
	"Generating",
	"Writing code",
	"Typing furiously",
	"Compiling thoughts",
	"Refactoring",
	"Linting",
	"Consulting the docs",
	"Naming variables",
	"Counting brackets",
	"Indenting",
}

// randomThinkingVerb returns a random verb from the list
func randomThinkingVerb() string {
	return thinkingVerbs[rand.Intn(len(thinkingVerbs))]
}

// spinnerFrames are the characters used for the spinner animation
var spinnerFrames = []string{"·", "✺", "✹", "✸", "✷", "✶", "✵", "✴", "✳", "✲", "✱", "✧", "✦", "·"}

// StopwatchInterval is the spacing of waiting indicator frames
const StopwatchInterval = 200 * time.Millisecond

// StopwatchTick returns a command that sends a tick message after a delay
func StopwatchTick() tea.Cmd {
	return tea.Tick(StopwatchInterval, func(t time.Time) tea.Msg {
		return StopwatchTickMsg(t)
	})
}

// renderWaiting renders the spinner, verb and elapsed seconds.
// Format: ✺ Generating... (12s)
func renderWaiting(verb string, frameIdx int, elapsed time.Duration) string {
	frame := spinnerFrames[frameIdx%len(spinnerFrames)]

	spinnerStyle := lipgloss.NewStyle().
		Foreground(ColorUser).
		Bold(true)

	verbStyle := lipgloss.NewStyle().
		Foreground(ColorPrimary).
		Italic(true)

	metaStyle := lipgloss.NewStyle().
		Foreground(ColorTextMuted)

	secs := int(elapsed.Seconds())
	return spinnerStyle.Render(frame) + " " + verbStyle.Render(verb+"...") + " " + metaStyle.Render(fmt.Sprintf("(%ds)", secs))
}
