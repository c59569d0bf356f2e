// Package conversation implements turn-taking between the user and a code
// generation backend.
//
// A Controller is the single owner of the conversation store, the selected
// language and the busy flag. The UI raises intents on it (send, settle, new
// conversation, switch, select language, toggle sidebar) and renders from its
// accessors. Only one exchange is ever in flight; each one is tagged with the
// conversation it was issued for so a late reply lands where it belongs.
package conversation

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/gelaxyai/gelaxy/internal/catalog"
	"github.com/gelaxyai/gelaxy/internal/chat"
	"github.com/gelaxyai/gelaxy/internal/codegen"
	"github.com/gelaxyai/gelaxy/internal/errors"
	"github.com/gelaxyai/gelaxy/internal/locale"
	"github.com/gelaxyai/gelaxy/internal/logger"
)

// State is the controller's turn-taking state.
type State int

const (
	StateIdle State = iota
	StateAwaitingResponse
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "Idle"
	case StateAwaitingResponse:
		return "AwaitingResponse"
	default:
		return "Unknown"
	}
}

// Turn is one in-flight exchange.
type Turn struct {
	ID             string
	ConversationID string // Conversation the prompt was sent from
	Prompt         string
	Language       string // Catalog identifier selected at send time
	StartedAt      time.Time
}

// Outcome is the settled result of running a turn.
type Outcome struct {
	TurnID  string
	Result  codegen.Result
	Err     error
	Elapsed time.Duration
}

// Notification is a transient message for the user, raised when a turn fails.
type Notification struct {
	Message string
}

// Settlement describes what Settle did with an outcome.
type Settlement struct {
	Accepted     bool          // False when the outcome did not belong to the in-flight turn
	Appended     chat.Message  // The assistant message that was appended
	Notification *Notification // Set when the turn failed
	Routed       bool          // The reply went to a conversation that is no longer active
}

// Options configures a new Controller.
type Options struct {
	Locale      string
	Language    string
	SidebarOpen bool
	Timeout     time.Duration // Zero leaves the exchange to the transport's own limits
}

// Controller orchestrates turns. It is not safe for concurrent use; the UI
// event loop is its only caller. Run is the exception: it only reads the
// timeout and may be called from any goroutine.
type Controller struct {
	store       *chat.Store
	strings     locale.Strings
	language    catalog.Language
	sidebarOpen bool
	timeout     time.Duration

	state    State
	inFlight *Turn

	log *slog.Logger
}

// New creates a controller with one fresh conversation.
func New(opts Options) *Controller {
	s := locale.Get(opts.Locale)
	c := &Controller{
		store:       chat.NewStore(s.NewChatTitle, s.Greeting, s.SwitchGreeting),
		strings:     s,
		language:    catalog.Resolve(opts.Language),
		sidebarOpen: opts.SidebarOpen,
		timeout:     opts.Timeout,
		log:         logger.WithComponent("conversation"),
	}
	c.log.Debug("controller created", "conversation", c.store.ActiveID(), "language", c.language.ID, "locale", s.Code)
	return c
}

// State returns the current turn-taking state.
func (c *Controller) State() State {
	return c.state
}

// Busy reports whether a reply is pending.
func (c *Controller) Busy() bool {
	return c.state == StateAwaitingResponse
}

// InFlight returns a copy of the pending turn, or nil when idle.
func (c *Controller) InFlight() *Turn {
	if c.inFlight == nil {
		return nil
	}
	t := *c.inFlight
	return &t
}

// Messages returns the active conversation.
func (c *Controller) Messages() []chat.Message {
	return c.store.Messages()
}

// Summaries returns the history list, newest first.
func (c *Controller) Summaries() []chat.ConversationSummary {
	return c.store.Summaries()
}

// ActiveID returns the active conversation's ID.
func (c *Controller) ActiveID() string {
	return c.store.ActiveID()
}

// Language returns the selected language.
func (c *Controller) Language() catalog.Language {
	return c.language
}

// SidebarOpen reports whether the history sidebar is shown.
func (c *Controller) SidebarOpen() bool {
	return c.sidebarOpen
}

// Strings returns the locale table in use.
func (c *Controller) Strings() locale.Strings {
	return c.strings
}

// Send starts a turn for prompt. It is a no-op, returning false, when the
// trimmed prompt is empty or a reply is already pending. Otherwise the user
// message is appended immediately and the controller waits for Settle.
func (c *Controller) Send(prompt string) (*Turn, bool) {
	prompt = strings.TrimSpace(prompt)
	if prompt == "" {
		return nil, false
	}
	if c.Busy() {
		c.log.Debug("send ignored while awaiting response", "turn", c.inFlight.ID)
		return nil, false
	}

	c.store.Append(chat.NewMessage(chat.RoleUser, prompt))

	turn := &Turn{
		ID:             uuid.NewString(),
		ConversationID: c.store.ActiveID(),
		Prompt:         prompt,
		Language:       c.language.ID,
		StartedAt:      time.Now(),
	}
	c.inFlight = turn
	c.setState(StateAwaitingResponse)
	c.log.Info("turn started", "turn", turn.ID, "conversation", turn.ConversationID, "language", turn.Language)

	t := *turn
	return &t, true
}

// Run performs the exchange for turn against gen. It does not touch
// controller state and is meant to run off the UI loop.
func (c *Controller) Run(ctx context.Context, gen codegen.Generator, turn Turn) Outcome {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	start := time.Now()
	res, err := gen.Generate(ctx, codegen.Request{Prompt: turn.Prompt, Language: turn.Language})
	if err != nil && errors.GetKind(err) == errors.KindUnknown {
		err = errors.GenerationFailed("", err)
	}
	return Outcome{
		TurnID:  turn.ID,
		Result:  res,
		Err:     err,
		Elapsed: time.Since(start),
	}
}

// Settle applies the outcome of the in-flight turn and returns to Idle.
// Outcomes for any other turn are ignored.
func (c *Controller) Settle(o Outcome) Settlement {
	if c.inFlight == nil || o.TurnID != c.inFlight.ID {
		c.log.Warn("ignoring outcome for unknown turn", "turn", o.TurnID)
		return Settlement{}
	}
	turn := c.inFlight
	log := c.log.With("turn", turn.ID, "conversation", turn.ConversationID, "elapsed", o.Elapsed)

	var (
		msg  chat.Message
		note *Notification
	)
	if o.Err != nil {
		text := errors.UserMessage(o.Err)
		if text == "" {
			text = c.strings.GenericFailure
		}
		note = &Notification{Message: text}
		msg = chat.NewMessage(chat.RoleAssistant, c.strings.ErrorReply)
		log.Error("turn failed", "error", o.Err)
	} else {
		msg = chat.NewCodeReply(c.replyContent(turn, o.Result), turn.Language)
		log.Info("turn succeeded", "model", o.Result.Model)
	}

	routed := turn.ConversationID != c.store.ActiveID()
	if !c.store.AppendTo(turn.ConversationID, msg) {
		// The originating conversation is gone; keep the reply visible.
		c.store.Append(msg)
		routed = false
	}
	if routed {
		log.Info("reply routed to inactive conversation", "active", c.store.ActiveID())
	}

	c.inFlight = nil
	c.setState(StateIdle)

	return Settlement{
		Accepted:     true,
		Appended:     msg,
		Notification: note,
		Routed:       routed,
	}
}

// replyContent renders the fixed reply template: the localized header naming
// the language, a blank line, then the code. A separate description from the
// backend follows the header on its own line.
func (c *Controller) replyContent(turn *Turn, res codegen.Result) string {
	header := c.strings.Reply(catalog.Resolve(turn.Language).Label)
	if d := strings.TrimSpace(res.Description); d != "" {
		header += "\n" + d
	}
	return chat.FormatReply(header, res.Code)
}

// NewConversation starts a fresh conversation in either state and returns its
// ID. A pending reply still lands in the conversation it was sent from.
func (c *Controller) NewConversation() string {
	id := c.store.NewConversation()
	c.log.Info("new conversation", "conversation", id, "busy", c.Busy())
	return id
}

// SwitchConversation activates the conversation with the given ID.
func (c *Controller) SwitchConversation(id string) error {
	if !c.store.Switch(id) {
		return errors.ConversationNotFound(id)
	}
	c.log.Debug("switched conversation", "conversation", id)
	return nil
}

// SetLanguage selects the language for future turns. Messages already sent
// are unaffected.
func (c *Controller) SetLanguage(id string) error {
	l, ok := catalog.Lookup(id)
	if !ok {
		return errors.UnknownLanguage(id)
	}
	c.language = l
	c.log.Debug("language selected", "language", l.ID)
	return nil
}

// CycleLanguage moves the selection delta steps through the catalog.
func (c *Controller) CycleLanguage(delta int) catalog.Language {
	c.language = catalog.Step(c.language.ID, delta)
	return c.language
}

// ToggleSidebar flips sidebar visibility and returns the new value.
func (c *Controller) ToggleSidebar() bool {
	c.sidebarOpen = !c.sidebarOpen
	return c.sidebarOpen
}

func (c *Controller) setState(s State) {
	if c.state != s {
		c.log.Debug("state transition", "from", c.state.String(), "to", s.String())
	}
	c.state = s
}
