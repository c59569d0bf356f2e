// Package errors provides structured error types for gelaxy.
// These errors provide context about what operation failed and where.
package errors

import (
	"errors"
	"fmt"
)

// Op describes an operation, usually as "package.function".
type Op string

// Kind categorizes the type of error.
type Kind int

const (
	KindUnknown Kind = iota
	KindNotFound
	KindInvalid
	KindNetwork
	KindConfig
	KindGeneration
	KindClipboard
	KindTimeout
)

func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "not found"
	case KindInvalid:
		return "invalid"
	case KindNetwork:
		return "network error"
	case KindConfig:
		return "configuration error"
	case KindGeneration:
		return "generation failed"
	case KindClipboard:
		return "clipboard error"
	case KindTimeout:
		return "timeout"
	default:
		return "unknown error"
	}
}

// Error is the structured error type for gelaxy.
type Error struct {
	Op      Op     // Operation that failed
	Kind    Kind   // Category of error
	Err     error  // Underlying error
	Context string // Additional context
}

// Error returns the error message.
func (e *Error) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("%s: %s: %s", e.Op, e.Context, e.Err)
	}
	if e.Op != "" {
		return fmt.Sprintf("%s: %s", e.Op, e.Err)
	}
	return e.Err.Error()
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Err
}

// E creates a new Error. Arguments can be:
// - Op: the operation name
// - Kind: the error kind
// - string: context message
// - error: the underlying error
func E(args ...interface{}) error {
	e := &Error{}
	for _, arg := range args {
		switch a := arg.(type) {
		case Op:
			e.Op = a
		case Kind:
			e.Kind = a
		case string:
			e.Context = a
		case error:
			e.Err = a
		}
	}
	if e.Err == nil {
		e.Err = errors.New(e.Context)
		e.Context = ""
	}
	return e
}

// Is reports whether err is of the given Kind.
func Is(err error, kind Kind) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

// GetKind returns the Kind of an error.
func GetKind(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

// UserMessage returns the human-readable part of err, without the operation
// prefix or the wrapped cause. Plain errors are returned as-is.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	var e *Error
	if errors.As(err, &e) {
		if e.Context != "" {
			return e.Context
		}
		if e.Err != nil {
			return e.Err.Error()
		}
	}
	return err.Error()
}

// Generation errors

// GenerationFailed reports a failed code-generation exchange. message is shown
// to the user; err is the transport or decoding cause, if any.
func GenerationFailed(message string, err error) error {
	if err == nil {
		return E(Op("codegen.Generate"), KindGeneration, message)
	}
	return E(Op("codegen.Generate"), KindGeneration, message, err)
}

// GenerationTimedOut reports an exchange that ran past its deadline.
func GenerationTimedOut(message string, err error) error {
	return E(Op("codegen.Generate"), KindTimeout, message, err)
}

// ServiceUnreachable reports a transport failure before any response arrived.
func ServiceUnreachable(message string, err error) error {
	return E(Op("codegen.Generate"), KindNetwork, message, err)
}

func EmptyPrompt() error {
	return E(Op("codegen.Validate"), KindInvalid, "prompt is required")
}

// Catalog errors
func UnknownLanguage(id string) error {
	return E(Op("catalog.Lookup"), KindNotFound, fmt.Sprintf("unknown language %q", id))
}

// Conversation errors
func ConversationNotFound(id string) error {
	return E(Op("conversation.Switch"), KindNotFound, fmt.Sprintf("conversation %s not found", id))
}

// Config errors
func ConfigLoadFailed(path string, err error) error {
	return E(Op("config.Load"), KindConfig, fmt.Sprintf("failed to load config from %s", path), err)
}

func ConfigInvalid(reason string) error {
	return E(Op("config.Validate"), KindConfig, reason)
}

// Clipboard errors
func ClipboardFailed(err error) error {
	return E(Op("clipboard.Write"), KindClipboard, "failed to copy to clipboard", err)
}
