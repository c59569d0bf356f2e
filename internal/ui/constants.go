// Package ui provides constants for layout calculations and configuration.
package ui

import "time"

// Layout constants for panel sizing
const (
	// HeaderHeight is the height of the header in lines
	HeaderHeight = 1

	// FooterHeight is the height of the footer in lines
	FooterHeight = 1

	// BorderSize is the total border width (1 on each side)
	BorderSize = 2

	// SidebarWidthRatio is the denominator for sidebar width (1/4 of total width)
	SidebarWidthRatio = 4

	// MinSidebarWidth keeps titles and dates readable on narrow terminals
	MinSidebarWidth = 24

	// ComposerHeight is the input line plus its border
	ComposerHeight = 1 + BorderSize

	// DisclaimerHeight is the line under the composer
	DisclaimerHeight = 1

	// MinTerminalWidth and MinTerminalHeight bound layout calculations
	MinTerminalWidth  = 40
	MinTerminalHeight = 12

	// DefaultWrapWidth is the default width for text wrapping when viewport width is unknown
	DefaultWrapWidth = 80

	// MaxBubbleRatio is the share of the chat width a user bubble may take (numerator over 4)
	MaxBubbleRatio = 3
)

// Modal dimensions
const (
	// ModalWidth is the default width of modals
	ModalWidth = 56
)

// Toast settings
const (
	// ToastDuration is how long a toast stays on screen
	ToastDuration = 4 * time.Second

	// ToastMaxWidth caps the toast box width including its border
	ToastMaxWidth = 48
)
