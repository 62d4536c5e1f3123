// Package clipboard defines the capability boundary to the system
// clipboard. The monitor and the CLI only ever talk to Source, so
// everything above this package is testable without a real clipboard.
package clipboard

// Source reads and writes clipboard text.
//
// Implementations: sysboard shells out to the platform clipboard
// utilities, mockboard is an in-memory fake for tests.
type Source interface {
	// Read returns the current clipboard text. An empty string means
	// there is nothing to report. Errors are transient: callers log and
	// carry on rather than treating them as fatal.
	Read() (string, error)

	// Write replaces the clipboard content. Best effort; a failure is
	// reported to the user, never propagated as fatal.
	Write(text string) error
}
