package history

import "time"

// Entry represents one captured clipboard snapshot. Entries are immutable:
// they are created inside Store.Add and never modified afterwards.
type Entry struct {
	// Content is the captured text exactly as read from the clipboard.
	Content string `json:"content"`

	// Timestamp is the capture instant. It serializes as ISO-8601 so the
	// history file stays readable and greppable.
	Timestamp time.Time `json:"timestamp"`

	// Size is the UTF-8 byte length of Content, computed once at capture
	// time and stored redundantly (never recomputed on load).
	Size int `json:"size"`
}
