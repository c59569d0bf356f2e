package demo

import (
	"context"
	"fmt"
	"sync"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/gelaxyai/gelaxy/internal/app"
	"github.com/gelaxyai/gelaxy/internal/clipboard"
	"github.com/gelaxyai/gelaxy/internal/codegen"
	"github.com/gelaxyai/gelaxy/internal/config"
	"github.com/gelaxyai/gelaxy/internal/errors"
	"github.com/gelaxyai/gelaxy/internal/logger"
	"github.com/gelaxyai/gelaxy/internal/ui"
)

// Frame represents a captured frame from the demo.
type Frame struct {
	Content    string        // ANSI-encoded terminal content
	Delay      time.Duration // Delay before this frame
	Annotation string        // Optional annotation/caption
	StepIndex  int           // Index of the step that produced this frame
}

// ExecutorConfig configures the demo executor.
type ExecutorConfig struct {
	// CaptureEveryStep captures a frame after every step (default: false)
	CaptureEveryStep bool

	// TypeDelay is the delay between characters when typing (default: 50ms)
	TypeDelay time.Duration

	// KeyDelay is the delay after key presses (default: 100ms)
	KeyDelay time.Duration

	// SpinnerInterval is the frame spacing while a reply is pending (default: 200ms)
	SpinnerInterval time.Duration
}

// DefaultExecutorConfig returns the default executor configuration.
func DefaultExecutorConfig() ExecutorConfig {
	return ExecutorConfig{
		CaptureEveryStep: false, // Don't capture every step by default for cleaner demos
		TypeDelay:        50 * time.Millisecond,
		KeyDelay:         100 * time.Millisecond,
		SpinnerInterval:  ui.StopwatchInterval,
	}
}

// Executor runs demo scenarios and captures frames.
type Executor struct {
	config ExecutorConfig
	model  *app.Model
	gen    *scriptedGenerator
	frames []Frame

	currentAnnotation string
}

// scriptedGenerator answers with whatever the current step scripted.
type scriptedGenerator struct {
	mu     sync.Mutex
	result codegen.Result
	err    error
}

func (g *scriptedGenerator) script(res codegen.Result, err error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.result, g.err = res, err
}

func (g *scriptedGenerator) Generate(_ context.Context, req codegen.Request) (codegen.Result, error) {
	if err := codegen.Validate(req); err != nil {
		return codegen.Result{}, err
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.result, g.err
}

// NewExecutor creates a new demo executor.
func NewExecutor(cfg ExecutorConfig) *Executor {
	return &Executor{
		config: cfg,
		gen:    &scriptedGenerator{},
		frames: []Frame{},
	}
}

// Run executes a scenario and returns the captured frames.
func (e *Executor) Run(scenario *Scenario) ([]Frame, error) {
	if err := scenario.Validate(); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}

	e.setup(scenario)
	logger.WithComponent("demo").Debug("running scenario", "name", scenario.Name, "steps", len(scenario.Steps))

	// Capture initial frame
	e.captureFrame(0, 500*time.Millisecond)

	for i, step := range scenario.Steps {
		if err := e.executeStep(i, step); err != nil {
			return nil, fmt.Errorf("step %d failed: %w", i, err)
		}
	}

	return e.frames, nil
}

// setup initializes the model for the scenario.
func (e *Executor) setup(scenario *Scenario) {
	cfg := config.Default()
	cfg.Backend = config.BackendDemo
	cfg.Language = scenario.Setup.Language
	cfg.Locale = scenario.Setup.Locale
	cfg.SidebarOpen = scenario.Setup.SidebarOpen
	cfg.Notifications = false
	if scenario.Setup.Theme != "" {
		cfg.Theme = scenario.Setup.Theme
	}

	e.model = app.New(cfg, app.Options{
		Generator: e.gen,
		Clipboard: &clipboard.Memory{},
		Version:   "demo",
	})
	e.model.Update(tea.WindowSizeMsg{
		Width:  scenario.Width,
		Height: scenario.Height,
	})
}

// executeStep executes a single demo step.
func (e *Executor) executeStep(index int, step Step) error {
	switch step.Type {
	case StepWait:
		// A pending reply animates the waiting indicator
		if e.model.Controller().Busy() && step.Duration >= e.config.SpinnerInterval {
			e.captureAnimatedFrames(index, step.Duration, e.config.SpinnerInterval)
		} else {
			e.captureFrame(index, step.Duration)
		}

	case StepKey:
		e.sendKey(step.Key)
		if e.config.CaptureEveryStep {
			e.captureFrame(index, e.config.KeyDelay)
		}

	case StepTypeText:
		for _, ch := range step.Text {
			e.sendKey(string(ch))
			if e.config.CaptureEveryStep {
				e.captureFrame(index, e.config.TypeDelay)
			}
		}

	case StepReply:
		e.gen.script(codegen.Result{Code: step.Code, Description: step.ReplyDetail}, nil)
		if err := e.settle(); err != nil {
			return err
		}
		e.captureFrame(index, 200*time.Millisecond)

	case StepFail:
		e.gen.script(codegen.Result{}, errors.GenerationFailed(step.Error, nil))
		if err := e.settle(); err != nil {
			return err
		}
		e.captureFrame(index, 300*time.Millisecond)

	case StepAnnotate:
		e.currentAnnotation = step.Annotation
		// Don't capture, annotation applies to next frame

	case StepCapture:
		if e.model.Controller().Busy() {
			e.sendTick()
		}
		e.captureFrame(index, 0)
	}

	return nil
}

// settle runs the pending turn against the scripted generator and delivers
// the outcome to the model.
func (e *Executor) settle() error {
	ctrl := e.model.Controller()
	turn := ctrl.InFlight()
	if turn == nil {
		return fmt.Errorf("no request in flight")
	}
	outcome := ctrl.Run(context.Background(), e.gen, *turn)
	e.update(app.GenerationDoneMsg{Outcome: outcome})
	return nil
}

// captureFrame captures the current view as a frame.
func (e *Executor) captureFrame(stepIndex int, delay time.Duration) {
	frame := Frame{
		Content:    e.model.RenderToString(),
		Delay:      delay,
		Annotation: e.currentAnnotation,
		StepIndex:  stepIndex,
	}
	e.frames = append(e.frames, frame)

	// Clear annotation after use
	e.currentAnnotation = ""
}

// captureAnimatedFrames captures multiple frames with spinner animation.
func (e *Executor) captureAnimatedFrames(stepIndex int, totalDuration time.Duration, frameInterval time.Duration) {
	if frameInterval <= 0 {
		frameInterval = ui.StopwatchInterval
	}

	numFrames := int(totalDuration / frameInterval)
	if numFrames < 1 {
		numFrames = 1
	}

	delayPerFrame := totalDuration / time.Duration(numFrames)

	for i := 0; i < numFrames; i++ {
		e.sendTick()
		e.captureFrame(stepIndex, delayPerFrame)
	}
}

// sendTick advances the waiting indicator.
func (e *Executor) sendTick() {
	e.update(ui.StopwatchTickMsg(time.Now()))
}

// sendKey sends a key press to the model.
func (e *Executor) sendKey(key string) {
	e.update(keyPress(key))
}

func (e *Executor) update(msg tea.Msg) {
	result, _ := e.model.Update(msg)
	e.model = result.(*app.Model)
}

// keyPress converts a key string to a tea.KeyPressMsg.
func keyPress(key string) tea.KeyPressMsg {
	switch key {
	case "enter":
		return tea.KeyPressMsg{Code: tea.KeyEnter}
	case "tab":
		return tea.KeyPressMsg{Code: tea.KeyTab}
	case "escape", "esc":
		return tea.KeyPressMsg{Code: tea.KeyEscape}
	case "backspace":
		return tea.KeyPressMsg{Code: tea.KeyBackspace}
	case "up":
		return tea.KeyPressMsg{Code: tea.KeyUp}
	case "down":
		return tea.KeyPressMsg{Code: tea.KeyDown}
	case "home":
		return tea.KeyPressMsg{Code: tea.KeyHome}
	case "end":
		return tea.KeyPressMsg{Code: tea.KeyEnd}
	case "pgup":
		return tea.KeyPressMsg{Code: tea.KeyPgUp}
	case "pgdown":
		return tea.KeyPressMsg{Code: tea.KeyPgDown}
	case "space":
		return tea.KeyPressMsg{Code: tea.KeySpace, Text: " "}
	case "ctrl+b":
		return tea.KeyPressMsg{Code: 'b', Mod: tea.ModCtrl}
	case "ctrl+l":
		return tea.KeyPressMsg{Code: 'l', Mod: tea.ModCtrl}
	case "ctrl+n":
		return tea.KeyPressMsg{Code: 'n', Mod: tea.ModCtrl}
	case "ctrl+p":
		return tea.KeyPressMsg{Code: 'p', Mod: tea.ModCtrl}
	case "ctrl+y":
		return tea.KeyPressMsg{Code: 'y', Mod: tea.ModCtrl}
	default:
		if r := []rune(key); len(r) == 1 {
			return tea.KeyPressMsg{Code: r[0], Text: key}
		}
		return tea.KeyPressMsg{Text: key}
	}
}
