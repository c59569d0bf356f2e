package ui

import (
	"sync"

	"github.com/gelaxyai/gelaxy/internal/logger"
)

// ViewContext holds centralized layout calculations and provides debug logging.
// All size calculations should go through this to avoid duplication.
type ViewContext struct {
	// Terminal dimensions
	TerminalWidth  int
	TerminalHeight int

	// Calculated dimensions
	HeaderHeight  int
	FooterHeight  int
	ContentHeight int
	SidebarWidth  int // Zero while the sidebar is hidden
	ChatWidth     int

	sidebarOpen bool
	mu          sync.Mutex
}

// Global view context instance
var ctx *ViewContext
var ctxOnce sync.Once

// GetViewContext returns the singleton ViewContext instance
func GetViewContext() *ViewContext {
	ctxOnce.Do(func() {
		ctx = &ViewContext{
			HeaderHeight: HeaderHeight,
			FooterHeight: FooterHeight,
			sidebarOpen:  true,
		}
		logger.WithComponent("ui").Debug("ViewContext initialized")
	})
	return ctx
}

// UpdateTerminalSize recalculates all dimensions when terminal size changes.
// It should be called from the main event loop when the terminal is resized.
func (v *ViewContext) UpdateTerminalSize(width, height int) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if width < MinTerminalWidth {
		width = MinTerminalWidth
	}
	if height < MinTerminalHeight {
		height = MinTerminalHeight
	}

	v.TerminalWidth = width
	v.TerminalHeight = height
	v.recalculate()
}

// SetSidebarOpen shows or hides the sidebar and recalculates widths.
func (v *ViewContext) SetSidebarOpen(open bool) {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.sidebarOpen = open
	v.recalculate()
}

// SidebarOpen reports whether the sidebar takes up space.
func (v *ViewContext) SidebarOpen() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.sidebarOpen
}

func (v *ViewContext) recalculate() {
	v.HeaderHeight = HeaderHeight
	v.FooterHeight = FooterHeight
	v.ContentHeight = v.TerminalHeight - v.HeaderHeight - v.FooterHeight

	v.SidebarWidth = 0
	if v.sidebarOpen {
		v.SidebarWidth = v.TerminalWidth / SidebarWidthRatio
		if v.SidebarWidth < MinSidebarWidth {
			v.SidebarWidth = MinSidebarWidth
		}
	}
	v.ChatWidth = v.TerminalWidth - v.SidebarWidth

	logger.WithComponent("ui").Debug("Layout updated",
		"width", v.TerminalWidth,
		"height", v.TerminalHeight,
		"contentHeight", v.ContentHeight,
		"sidebarWidth", v.SidebarWidth,
		"chatWidth", v.ChatWidth,
	)
}

// InnerWidth returns the usable width inside a panel with borders
func (v *ViewContext) InnerWidth(panelWidth int) int {
	return panelWidth - BorderSize
}

// InnerHeight returns the usable height inside a panel with borders
func (v *ViewContext) InnerHeight(panelHeight int) int {
	return panelHeight - BorderSize
}
