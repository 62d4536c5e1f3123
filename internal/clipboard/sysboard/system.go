// Package sysboard implements clipboard access using platform-specific
// commands. On macOS it uses pbcopy/pbpaste, on Linux it uses xclip with
// xsel as a fallback.
package sysboard

import (
	"bytes"
	"fmt"
	"os/exec"
	"runtime"
	"strings"

	"github.com/eminbaxishli514-cloud/clipboard-history-manager/internal/clipboard"
)

// SystemClipboard implements clipboard.Source using system commands
type SystemClipboard struct{}

var _ clipboard.Source = (*SystemClipboard)(nil)

// New creates a new SystemClipboard instance
func New() *SystemClipboard {
	return &SystemClipboard{}
}

// IsSupported returns true if clipboard operations are supported on this system
func (s *SystemClipboard) IsSupported() bool {
	switch runtime.GOOS {
	case "darwin":
		// Check if pbcopy/pbpaste are available
		if _, err := exec.LookPath("pbcopy"); err != nil {
			return false
		}
		if _, err := exec.LookPath("pbpaste"); err != nil {
			return false
		}
		return true
	case "linux":
		// Check if xclip or xsel are available
		if _, err := exec.LookPath("xclip"); err == nil {
			return true
		}
		if _, err := exec.LookPath("xsel"); err == nil {
			return true
		}
		return false
	default:
		return false
	}
}

// Read returns the current clipboard text
func (s *SystemClipboard) Read() (string, error) {
	switch runtime.GOOS {
	case "darwin":
		return readMac()
	case "linux":
		return readLinux()
	default:
		return "", fmt.Errorf("clipboard operations not supported on %s", runtime.GOOS)
	}
}

// Write replaces the clipboard content with text
func (s *SystemClipboard) Write(text string) error {
	switch runtime.GOOS {
	case "darwin":
		return writeMac(text)
	case "linux":
		return writeLinux(text)
	default:
		return fmt.Errorf("clipboard operations not supported on %s", runtime.GOOS)
	}
}

// readMac reads from clipboard on macOS using pbpaste
func readMac() (string, error) {
	text, err := readWithCommand("pbpaste")
	if err != nil {
		return "", fmt.Errorf("failed to run pbpaste: %w", err)
	}
	return text, nil
}

// writeMac writes to clipboard on macOS using pbcopy
func writeMac(text string) error {
	if err := writeWithCommand(text, "pbcopy"); err != nil {
		return fmt.Errorf("failed to run pbcopy: %w", err)
	}
	return nil
}

// readLinux reads from clipboard on Linux using xclip or xsel
func readLinux() (string, error) {
	// Try xclip first
	if text, err := readWithCommand("xclip", "-selection", "clipboard", "-o"); err == nil {
		return text, nil
	}

	// Fall back to xsel
	text, err := readWithCommand("xsel", "--clipboard", "--output")
	if err != nil {
		return "", fmt.Errorf("failed to read clipboard (tried xclip and xsel): %w", err)
	}

	return text, nil
}

// writeLinux writes to clipboard on Linux using xclip or xsel
func writeLinux(text string) error {
	// Try xclip first
	if err := writeWithCommand(text, "xclip", "-selection", "clipboard"); err == nil {
		return nil
	}

	// Fall back to xsel
	if err := writeWithCommand(text, "xsel", "--clipboard", "--input"); err != nil {
		return fmt.Errorf("failed to write clipboard (tried xclip and xsel): %w", err)
	}

	return nil
}

// readWithCommand executes a command and returns its output
func readWithCommand(name string, args ...string) (string, error) {
	cmd := exec.Command(name, args...)
	var out bytes.Buffer
	cmd.Stdout = &out

	if err := cmd.Run(); err != nil {
		return "", err
	}

	return out.String(), nil
}

// writeWithCommand executes a command with text as stdin
func writeWithCommand(text string, name string, args ...string) error {
	cmd := exec.Command(name, args...)
	cmd.Stdin = strings.NewReader(text)

	return cmd.Run()
}
