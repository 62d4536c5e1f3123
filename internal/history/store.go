package history

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/eminbaxishli514-cloud/clipboard-history-manager/internal/config"
)

const (
	historyFileName = "history.json"
	configFileName  = "config.yaml"

	// DefaultMaxPayloadBytes caps a single captured payload at 10 MiB.
	// Larger clipboard contents (huge file dumps, accidental selections)
	// are rejected rather than stored.
	DefaultMaxPayloadBytes = 10 * 1024 * 1024
)

// ErrCorrupt reports persisted state that exists but cannot be parsed as a
// history log or config. It is fatal at startup: the store refuses to open
// rather than silently discarding someone's clipboard history.
var ErrCorrupt = errors.New("history: corrupt data")

// Store owns the ordered clipboard log and its persistence. The log is kept
// oldest-first and rewritten in full after every mutation, so the last
// accepted entry is always durable by the time Add returns.
//
// A single Store is safe for use from multiple goroutines within one
// process. Nothing guards against concurrent processes sharing a data
// directory; the last writer wins at whole-file granularity.
type Store struct {
	mu         sync.RWMutex
	dir        string
	maxPayload int
	cfg        config.Config
	entries    []Entry
}

// Open loads the history log and config from dir, creating the directory
// and a default config file on first run. maxPayloadBytes <= 0 selects
// DefaultMaxPayloadBytes.
//
// Persisted state that exists but cannot be parsed fails with an error
// wrapping ErrCorrupt. There is no auto-repair.
func Open(dir string, maxPayloadBytes int) (*Store, error) {
	if maxPayloadBytes <= 0 {
		maxPayloadBytes = DefaultMaxPayloadBytes
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	cm := config.NewConfigManager(filepath.Join(dir, configFileName))
	cfg, err := cm.Load()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}

	// Materialize the config file on first run so users have something to
	// edit and the daemon's watcher has something to watch.
	if _, err := os.Stat(cm.GetConfigPath()); os.IsNotExist(err) {
		if err := cm.Save(cfg); err != nil {
			return nil, err
		}
	}

	entries, err := loadHistory(filepath.Join(dir, historyFileName))
	if err != nil {
		return nil, err
	}

	return &Store{
		dir:        dir,
		maxPayload: maxPayloadBytes,
		cfg:        *cfg,
		entries:    entries,
	}, nil
}

// Add appends content captured now. It returns (false, nil) without touching
// disk when the content is over the payload limit or exactly equals the last
// entry's content. On acceptance the full log is persisted before Add
// returns; a persistence failure leaves the in-memory log unchanged and
// returns (false, err).
func (s *Store) Add(content string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(content) > s.maxPayload {
		return false, nil
	}
	if n := len(s.entries); n > 0 && s.entries[n-1].Content == content {
		return false, nil
	}

	entry := Entry{
		Content:   content,
		Timestamp: time.Now(),
		Size:      len(content),
	}

	updated := capEntries(append(s.entries, entry), s.cfg.MaxEntries)
	if err := s.persist(updated); err != nil {
		return false, err
	}

	s.entries = updated
	return true, nil
}

// Save rewrites the persisted log from the current in-memory state.
func (s *Store) Save() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.persist(s.entries)
}

// Entries returns a copy of the log, oldest first.
func (s *Store) Entries() []Entry {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entries := make([]Entry, len(s.entries))
	copy(entries, s.entries)
	return entries
}

// Len returns the number of entries in the log.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

// Config returns the settings the store is currently operating under.
func (s *Store) Config() config.Config {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cfg
}

// RemoveOlderThan drops every entry captured before cutoff, persists, and
// returns the number removed.
func (s *Store) RemoveOlderThan(cutoff time.Time) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := make([]Entry, 0, len(s.entries))
	for _, e := range s.entries {
		if !e.Timestamp.Before(cutoff) {
			kept = append(kept, e)
		}
	}

	removed := len(s.entries) - len(kept)
	if err := s.persist(kept); err != nil {
		return 0, err
	}

	s.entries = kept
	return removed, nil
}

// RemoveAll clears the log, persists, and returns the number removed.
func (s *Store) RemoveAll() (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := len(s.entries)
	if err := s.persist(nil); err != nil {
		return 0, err
	}

	s.entries = nil
	return removed, nil
}

// Reconfigure swaps in new settings, used by the daemon's config
// hot-reload. A lowered max_entries evicts the oldest entries immediately
// and persists the shortened log.
func (s *Store) Reconfigure(cfg config.Config) error {
	if cfg.MaxEntries <= 0 {
		return fmt.Errorf("max_entries must be greater than 0")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.cfg = cfg
	if len(s.entries) <= cfg.MaxEntries {
		return nil
	}

	trimmed := capEntries(s.entries, cfg.MaxEntries)
	if err := s.persist(trimmed); err != nil {
		return err
	}

	s.entries = trimmed
	return nil
}

// Dir returns the data directory the store was opened on.
func (s *Store) Dir() string {
	return s.dir
}

// HistoryPath returns the path of the history log file.
func (s *Store) HistoryPath() string {
	return filepath.Join(s.dir, historyFileName)
}

// ConfigPath returns the path of the config file.
func (s *Store) ConfigPath() string {
	return filepath.Join(s.dir, configFileName)
}

// persist writes entries to the history file via a temp file and rename, so
// a crash mid-write never leaves a truncated log behind. Callers hold s.mu.
func (s *Store) persist(entries []Entry) error {
	if entries == nil {
		entries = []Entry{}
	}

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal history: %w", err)
	}

	tmpPath := s.HistoryPath() + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write history file: %w", err)
	}

	if err := os.Rename(tmpPath, s.HistoryPath()); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to replace history file: %w", err)
	}

	return nil
}

// capEntries bounds entries to at most max by dropping from the front,
// copying so the evicted prefix does not pin the old backing array.
func capEntries(entries []Entry, max int) []Entry {
	if max <= 0 || len(entries) <= max {
		return entries
	}

	capped := make([]Entry, max)
	copy(capped, entries[len(entries)-max:])
	return capped
}

func loadHistory(path string) ([]Entry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read history file: %w", err)
	}

	var entries []Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrCorrupt, path, err)
	}

	// A record that parsed as JSON but has no capture instant is not a
	// history entry; refuse it rather than resurrect it with a zero time.
	for i, e := range entries {
		if e.Timestamp.IsZero() {
			return nil, fmt.Errorf("%w: %s: record %d has no timestamp", ErrCorrupt, path, i)
		}
	}

	return entries, nil
}
