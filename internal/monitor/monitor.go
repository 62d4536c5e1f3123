// Package monitor polls a clipboard source and feeds every change into
// the history store.
package monitor

import (
	"context"
	"log/slog"
	"time"

	"github.com/eminbaxishli514-cloud/clipboard-history-manager/internal/clipboard"
	"github.com/eminbaxishli514-cloud/clipboard-history-manager/internal/history"
)

// DefaultInterval is the poll interval used when none is configured.
const DefaultInterval = time.Second

const previewWidth = 50

// Monitor owns a single polling loop over a clipboard source. It remembers
// the last content it saw so unchanged clipboards and rejected-for-size
// payloads are not offered to the store on every tick.
type Monitor struct {
	store    *history.Store
	source   clipboard.Source
	interval time.Duration
	lastSeen string
}

// New creates a monitor polling source every interval. interval <= 0
// selects DefaultInterval.
func New(store *history.Store, source clipboard.Source, interval time.Duration) *Monitor {
	if interval <= 0 {
		interval = DefaultInterval
	}

	return &Monitor{
		store:    store,
		source:   source,
		interval: interval,
	}
}

// Run polls until ctx is cancelled, then returns nil. The first poll
// happens immediately so a capture never waits a full interval after
// startup. Cancellation needs no extra persistence: every accepted capture
// was already durable when Add returned.
func (m *Monitor) Run(ctx context.Context) error {
	slog.Info("monitor: watching clipboard",
		"interval", m.interval,
		"history", m.store.HistoryPath(),
	)

	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	m.poll()

	for {
		select {
		case <-ctx.Done():
			slog.Info("monitor: stopped")
			return nil
		case <-ticker.C:
			m.poll()
		}
	}
}

// poll runs one tick. Read failures are logged and skipped, never fatal.
func (m *Monitor) poll() {
	text, err := m.source.Read()
	if err != nil {
		slog.Warn("monitor: clipboard read failed", "err", err)
		return
	}

	if text == "" || text == m.lastSeen {
		return
	}

	added, err := m.store.Add(text)
	if err != nil {
		// Leave lastSeen alone so the capture is retried next tick once
		// whatever broke persistence clears.
		slog.Error("monitor: failed to persist capture", "err", err)
		return
	}

	// Remember the content whether or not the store accepted it, so a
	// rejected payload is not re-offered every tick.
	m.lastSeen = text

	if added {
		slog.Info("monitor: captured",
			"preview", history.Preview(text, previewWidth),
			"bytes", len(text),
		)
	}
}
