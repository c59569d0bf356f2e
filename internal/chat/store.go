package chat

import (
	"time"

	"github.com/google/uuid"
)

// Store holds the active conversation and the list of conversation summaries.
//
// Invariants:
//   - the active conversation always has at least one message
//   - exactly one summary has ID == ActiveID()
//   - summaries are ordered newest first
//
// Store is not safe for concurrent use.
type Store struct {
	activeID  string
	messages  []Message
	summaries []ConversationSummary

	title          string
	greeting       string
	switchGreeting string
}

// NewStore creates a store seeded with one conversation containing the greeting.
// switchGreeting is shown when switching to a conversation that has no stored
// messages; it defaults to greeting when empty.
func NewStore(title, greeting, switchGreeting string) *Store {
	if switchGreeting == "" {
		switchGreeting = greeting
	}
	s := &Store{
		title:          title,
		greeting:       greeting,
		switchGreeting: switchGreeting,
	}
	s.startConversation()
	return s
}

func (s *Store) startConversation() string {
	id := uuid.NewString()
	s.summaries = append([]ConversationSummary{{
		ID:        id,
		Title:     s.title,
		Timestamp: time.Now(),
	}}, s.summaries...)
	s.activeID = id
	s.messages = []Message{NewMessage(RoleAssistant, s.greeting)}
	return id
}

// ActiveID returns the ID of the active conversation.
func (s *Store) ActiveID() string {
	return s.activeID
}

// Messages returns a copy of the active conversation.
func (s *Store) Messages() []Message {
	return cloneMessages(s.messages)
}

// Len returns the number of messages in the active conversation.
func (s *Store) Len() int {
	return len(s.messages)
}

// Last returns the most recent message of the active conversation.
func (s *Store) Last() Message {
	return s.messages[len(s.messages)-1]
}

// Summaries returns a copy of the history list, newest first. The active
// summary carries the live messages.
func (s *Store) Summaries() []ConversationSummary {
	out := make([]ConversationSummary, len(s.summaries))
	for i, sum := range s.summaries {
		sum.Messages = cloneMessages(sum.Messages)
		if sum.ID == s.activeID {
			sum.Messages = s.Messages()
		}
		out[i] = sum
	}
	return out
}

// Summary returns the summary with the given ID.
func (s *Store) Summary(id string) (ConversationSummary, bool) {
	for _, sum := range s.Summaries() {
		if sum.ID == id {
			return sum, true
		}
	}
	return ConversationSummary{}, false
}

// Append adds a message to the active conversation.
func (s *Store) Append(msg Message) {
	s.messages = append(s.messages, msg)
}

// AppendTo adds a message to the conversation with the given ID. Messages for
// the active conversation go to the live list; messages for any other
// conversation go to its stored snapshot. It returns false for unknown IDs.
func (s *Store) AppendTo(conversationID string, msg Message) bool {
	if conversationID == s.activeID {
		s.Append(msg)
		return true
	}
	i := s.indexOf(conversationID)
	if i < 0 {
		return false
	}
	s.summaries[i].Messages = append(s.summaries[i].Messages, msg)
	return true
}

// NewConversation stores the active conversation, prepends a fresh summary
// and makes it active with a single greeting message. It returns the new ID.
func (s *Store) NewConversation() string {
	s.snapshot()
	return s.startConversation()
}

// Switch stores the active conversation and activates the conversation with
// the given ID. The displayed messages become that summary's stored messages,
// or a single greeting when it has none. It returns false for unknown IDs.
func (s *Store) Switch(id string) bool {
	i := s.indexOf(id)
	if i < 0 {
		return false
	}
	if id == s.activeID {
		return true
	}
	s.snapshot()
	s.activeID = id
	if stored := s.summaries[i].Messages; len(stored) > 0 {
		s.messages = cloneMessages(stored)
	} else {
		s.messages = []Message{NewMessage(RoleAssistant, s.switchGreeting)}
	}
	return true
}

// snapshot copies the active conversation into its summary once it holds at
// least one user message. Untouched conversations keep an empty snapshot.
func (s *Store) snapshot() {
	i := s.indexOf(s.activeID)
	if i < 0 || !hasUserMessage(s.messages) {
		return
	}
	s.summaries[i].Messages = cloneMessages(s.messages)
}

func (s *Store) indexOf(id string) int {
	for i, sum := range s.summaries {
		if sum.ID == id {
			return i
		}
	}
	return -1
}

func hasUserMessage(msgs []Message) bool {
	for _, m := range msgs {
		if m.IsUser() {
			return true
		}
	}
	return false
}
