// Package notification sends desktop notifications through beeep.
package notification

import (
	_ "embed"
	"sync"

	"github.com/gen2brain/beeep"

	"github.com/gelaxyai/gelaxy/internal/logger"
)

// AppName is the notification title.
const AppName = "Gelaxyai"

//go:embed icon.png
var icon []byte

// NotifyFunc matches beeep.Notify.
type NotifyFunc func(title, message string, icon any) error

var (
	mu     sync.Mutex
	notify NotifyFunc = beeep.Notify
)

// SetNotifier replaces the notification backend. Tests use it to avoid real
// desktop popups.
func SetNotifier(fn NotifyFunc) {
	mu.Lock()
	defer mu.Unlock()
	notify = fn
}

// ResetNotifier restores beeep.
func ResetNotifier() {
	SetNotifier(beeep.Notify)
}

// Send sends a desktop notification with the embedded app icon.
func Send(title, message string) error {
	mu.Lock()
	fn := notify
	mu.Unlock()

	log := logger.WithComponent("notification")
	log.Debug("sending notification", "title", title, "message", message)
	if err := fn(title, message, icon); err != nil {
		log.Warn("notification failed", "error", err)
		return err
	}
	return nil
}

// GenerationFailed notifies that a turn failed with the given reason.
func GenerationFailed(reason string) error {
	return Send(AppName, reason)
}
