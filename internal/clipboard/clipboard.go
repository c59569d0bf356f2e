// Package clipboard writes text to the system clipboard.
package clipboard

import (
	"sync"

	"golang.design/x/clipboard"

	"github.com/gelaxyai/gelaxy/internal/errors"
	"github.com/gelaxyai/gelaxy/internal/logger"
)

// Writer puts text on a clipboard.
type Writer interface {
	WriteText(text string) error
}

// System is the native clipboard. The zero value is ready to use; the
// underlying library is initialized on first write.
type System struct {
	once    sync.Once
	initErr error
}

// NewSystem returns the native clipboard writer.
func NewSystem() *System {
	return &System{}
}

// Init initializes the native clipboard. It is safe to call more than once.
func (s *System) Init() error {
	s.once.Do(func() {
		if err := clipboard.Init(); err != nil {
			logger.WithComponent("clipboard").Warn("native clipboard unavailable", "error", err)
			s.initErr = errors.ClipboardFailed(err)
			return
		}
		logger.WithComponent("clipboard").Debug("native clipboard initialized")
	})
	return s.initErr
}

// WriteText copies text to the native clipboard.
func (s *System) WriteText(text string) error {
	if err := s.Init(); err != nil {
		return err
	}
	clipboard.Write(clipboard.FmtText, []byte(text))
	logger.WithComponent("clipboard").Debug("copied text", "bytes", len(text))
	return nil
}

// Memory is an in-process clipboard used by tests and headless runs.
type Memory struct {
	mu    sync.Mutex
	texts []string
	Err   error // Returned by WriteText when set
}

// WriteText records text unless Err is set.
func (m *Memory) WriteText(text string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return m.Err
	}
	m.texts = append(m.texts, text)
	return nil
}

// Last returns the most recently written text.
func (m *Memory) Last() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.texts) == 0 {
		return ""
	}
	return m.texts[len(m.texts)-1]
}

// Count returns the number of successful writes.
func (m *Memory) Count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.texts)
}
