// Package ui provides the user interface components for the Gelaxyai TUI.
//
// # Overview
//
// The ui package implements the visual components using the Bubble Tea
// framework and Lipgloss styling library. Components own display state only;
// conversation state lives in the conversation controller and is pushed into
// the components by the app model.
//
// # Layout System
//
//	┌─────────────────────────────────────────────────────┐
//	│ Header (1 line)                     🟨 JavaScript   │
//	├──────────────┬──────────────────────────────────────┤
//	│              │                                      │
//	│   Sidebar    │         Chat Panel                   │
//	│   (1/4)      │         (rest)                       │
//	│              ├──────────────────────────────────────┤
//	│              │ > composer                           │
//	│              │ disclaimer                           │
//	├──────────────┴──────────────────────────────────────┤
//	│ Footer (1 line)                                     │
//	└─────────────────────────────────────────────────────┘
//
// The sidebar can be hidden, in which case the chat panel takes the full
// width. A toast may be drawn over the top-right corner and a modal over the
// center.
//
// # Components
//
// ViewContext: Singleton that manages centralized layout calculations.
//
// Header: Application title, subtitle and the selected language.
//
// Footer: Context-aware keyboard shortcuts.
//
// Sidebar: Conversation history, newest first, with a cursor.
//
// Chat: Message viewport with highlighted code blocks, the composer and the
// waiting indicator.
//
// Toast: Transient notice that dismisses itself after ToastDuration.
//
// Modal: Wrapper around the states in the modals package.
//
// # Styles
//
// Styles are rebuilt from the current Theme whenever the theme changes.
// Each theme also names the chroma style used for code.
package ui
