// Package demo generates scripted recordings of the Gelaxyai TUI.
// Scenarios drive the real app model with key presses and canned backend
// replies, so recordings are deterministic and need no network.
package demo

import (
	"time"

	"github.com/gelaxyai/gelaxy/internal/catalog"
	"github.com/gelaxyai/gelaxy/internal/locale"
)

// StepType represents the type of action in a demo step.
type StepType int

const (
	// StepWait pauses for a duration (for timing/pacing).
	StepWait StepType = iota
	// StepKey sends a single key press.
	StepKey
	// StepTypeText types a string character by character.
	StepTypeText
	// StepReply settles the pending request with generated code.
	StepReply
	// StepFail settles the pending request with a service error.
	StepFail
	// StepCapture captures the current frame (for selective capture).
	StepCapture
	// StepAnnotate adds an annotation/caption to the current frame.
	StepAnnotate
)

// Step represents a single action in a demo scenario.
type Step struct {
	Type        StepType
	Description string // Human-readable description of what this step does

	// For StepKey
	Key string

	// For StepTypeText
	Text string

	// For StepWait
	Duration time.Duration

	// For StepReply
	Code        string
	ReplyDetail string // Optional description shown above the code

	// For StepFail
	Error string

	// For StepAnnotate
	Annotation string
}

// Scenario defines a complete demo scenario.
type Scenario struct {
	Name        string
	Description string
	Width       int // Terminal width (default 120)
	Height      int // Terminal height (default 40)
	Setup       *ScenarioSetup
	Steps       []Step
}

// ScenarioSetup defines the initial state for a demo.
type ScenarioSetup struct {
	Language    string // Catalog identifier selected at start
	Locale      string
	Theme       string // Empty keeps the default theme
	SidebarOpen bool
}

// DefaultSetup returns a minimal setup for demos.
func DefaultSetup() *ScenarioSetup {
	return &ScenarioSetup{
		Language:    catalog.Default().ID,
		Locale:      locale.Default,
		SidebarOpen: true,
	}
}

// Validate checks that the scenario is valid and fills in defaults.
func (s *Scenario) Validate() error {
	if s.Name == "" {
		return &ValidationError{Field: "Name", Message: "scenario name is required"}
	}
	if s.Width <= 0 {
		s.Width = 120
	}
	if s.Height <= 0 {
		s.Height = 40
	}
	if s.Setup == nil {
		s.Setup = DefaultSetup()
	}
	if s.Setup.Language != "" {
		if _, ok := catalog.Lookup(s.Setup.Language); !ok {
			return &ValidationError{Field: "Setup.Language", Message: "unknown language " + s.Setup.Language}
		}
	}
	if s.Setup.Locale != "" && !locale.Supported(s.Setup.Locale) {
		return &ValidationError{Field: "Setup.Locale", Message: "unsupported locale " + s.Setup.Locale}
	}
	return nil
}

// ValidationError represents a scenario validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return "validation error: " + e.Field + ": " + e.Message
}

// Step builder functions for fluent scenario construction

// Wait creates a wait step.
func Wait(d time.Duration) Step {
	return Step{
		Type:     StepWait,
		Duration: d,
	}
}

// Key creates a key press step.
func Key(key string) Step {
	return Step{
		Type: StepKey,
		Key:  key,
	}
}

// KeyWithDesc creates a key press step with a description.
func KeyWithDesc(key, description string) Step {
	return Step{
		Type:        StepKey,
		Key:         key,
		Description: description,
	}
}

// Type creates a text typing step.
func Type(text string) Step {
	return Step{
		Type: StepTypeText,
		Text: text,
	}
}

// TypeWithDesc creates a text typing step with a description.
func TypeWithDesc(text, description string) Step {
	return Step{
		Type:        StepTypeText,
		Text:        text,
		Description: description,
	}
}

// Reply creates a step that answers the pending request with code.
func Reply(code string) Step {
	return Step{
		Type: StepReply,
		Code: code,
	}
}

// ReplyWithDetail answers the pending request with a description and code.
func ReplyWithDetail(detail, code string) Step {
	return Step{
		Type:        StepReply,
		Code:        code,
		ReplyDetail: detail,
	}
}

// Fail creates a step that fails the pending request with message.
func Fail(message string) Step {
	return Step{
		Type:  StepFail,
		Error: message,
	}
}

// Annotate creates an annotation step.
func Annotate(text string) Step {
	return Step{
		Type:       StepAnnotate,
		Annotation: text,
	}
}

// Capture creates a frame capture step.
func Capture() Step {
	return Step{
		Type: StepCapture,
	}
}
