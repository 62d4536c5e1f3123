// Package mockboard provides a mock clipboard implementation for testing.
package mockboard

import (
	"sync"

	"github.com/eminbaxishli514-cloud/clipboard-history-manager/internal/clipboard"
)

// MockClipboard implements clipboard.Source for testing. It is safe to
// drive from a test goroutine while a monitor polls it.
type MockClipboard struct {
	mu      sync.Mutex
	text    string
	readErr error
}

var _ clipboard.Source = (*MockClipboard)(nil)

// New creates a new MockClipboard instance
func New() *MockClipboard {
	return &MockClipboard{}
}

// Read returns the injected error if one is set, otherwise the current text
func (m *MockClipboard) Read() (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.readErr != nil {
		return "", m.readErr
	}
	return m.text, nil
}

// Write replaces the mock clipboard text
func (m *MockClipboard) Write(text string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.text = text
	return nil
}

// SetText sets the mock clipboard text directly (for testing)
func (m *MockClipboard) SetText(text string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.text = text
}

// GetText returns the current clipboard text (for testing)
func (m *MockClipboard) GetText() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.text
}

// SetReadError makes subsequent Reads fail with err until cleared with nil
func (m *MockClipboard) SetReadError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.readErr = err
}

// IsSupported always returns true for the mock clipboard
func (m *MockClipboard) IsSupported() bool {
	return true
}
