// Package chat holds the conversation data model: messages, conversation
// summaries and the in-memory store of the active conversation.
package chat

import (
	"time"

	"github.com/google/uuid"
)

// Role identifies who authored a message.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message is one utterance in a conversation. Messages are never mutated
// after creation.
type Message struct {
	ID        string
	Role      Role
	Content   string
	Language  string // Catalog identifier, set only on assistant replies carrying code
	Timestamp time.Time
}

// NewMessage creates a message with a fresh ID and the current time.
func NewMessage(role Role, content string) Message {
	return Message{
		ID:        uuid.NewString(),
		Role:      role,
		Content:   content,
		Timestamp: time.Now(),
	}
}

// NewCodeReply creates an assistant message carrying generated code.
func NewCodeReply(content, language string) Message {
	m := NewMessage(RoleAssistant, content)
	m.Language = language
	return m
}

// IsUser reports whether the message was written by the user.
func (m Message) IsUser() bool {
	return m.Role == RoleUser
}

// ConversationSummary is one entry in the history sidebar.
type ConversationSummary struct {
	ID        string
	Title     string
	Timestamp time.Time
	Messages  []Message // Snapshot of the conversation; empty until it has a user turn
}

func cloneMessages(msgs []Message) []Message {
	if len(msgs) == 0 {
		return nil
	}
	out := make([]Message, len(msgs))
	copy(out, msgs)
	return out
}
