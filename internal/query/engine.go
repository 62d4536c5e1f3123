package query

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/eminbaxishli514-cloud/clipboard-history-manager/internal/history"
)

// IndexError reports a get index outside the valid range. It is a user
// error, surfaced with the range so the caller can correct it.
type IndexError struct {
	// Index is the 1-based index that was requested.
	Index int
	// Size is the log length at the time of the request.
	Size int
}

func (e *IndexError) Error() string {
	if e.Size == 0 {
		return fmt.Sprintf("invalid index %d: history is empty", e.Index)
	}
	return fmt.Sprintf("invalid index %d: valid range is 1-%d", e.Index, e.Size)
}

// Engine answers read-only questions about a store's log and drives its
// explicit prune/clear operations. All results come back newest first,
// the opposite of the store's oldest-first persistence order.
type Engine struct {
	store *history.Store
}

// New creates an engine over the given store.
func New(store *history.Store) *Engine {
	return &Engine{store: store}
}

// List returns entries newest first. withinDays > 0 keeps only entries
// captured in the last withinDays days; limit > 0 truncates the result.
// Zero means unset for both.
func (e *Engine) List(limit, withinDays int) []history.Entry {
	entries := e.store.Entries()

	if withinDays > 0 {
		cutoff := time.Now().AddDate(0, 0, -withinDays)
		kept := entries[:0]
		for _, entry := range entries {
			if !entry.Timestamp.Before(cutoff) {
				kept = append(kept, entry)
			}
		}
		entries = kept
	}

	reverse(entries)

	if limit > 0 && len(entries) > limit {
		entries = entries[:limit]
	}

	return entries
}

// Search returns entries whose content contains q, case-insensitively,
// newest first. With limit > 0 the scan stops after limit matches, so the
// result is the limit most recent matches rather than all of them.
func (e *Engine) Search(q string, limit int) []history.Entry {
	entries := e.store.Entries()
	needle := strings.ToLower(q)

	var matches []history.Entry
	for i := len(entries) - 1; i >= 0; i-- {
		if strings.Contains(strings.ToLower(entries[i].Content), needle) {
			matches = append(matches, entries[i])
			if limit > 0 && len(matches) == limit {
				break
			}
		}
	}

	return matches
}

// Get returns the entry at a 1-based newest-first index: 1 is the most
// recent capture, Len the oldest. Out-of-range indexes fail with an
// *IndexError carrying the valid range.
func (e *Engine) Get(index int) (history.Entry, error) {
	entries := e.store.Entries()

	if index < 1 || index > len(entries) {
		return history.Entry{}, &IndexError{Index: index, Size: len(entries)}
	}

	return entries[len(entries)-index], nil
}

// Prune removes entries older than olderThanDays days and returns how many
// were removed. Retention is enforced only here, never in the background.
func (e *Engine) Prune(olderThanDays int) (int, error) {
	cutoff := time.Now().AddDate(0, 0, -olderThanDays)
	return e.store.RemoveOlderThan(cutoff)
}

// Clear removes every entry and returns how many were removed. Asking the
// user first is the caller's job.
func (e *Engine) Clear() (int, error) {
	return e.store.RemoveAll()
}

// Stats aggregates the numbers the stats command reports.
type Stats struct {
	TotalEntries     int
	TotalSize        int64
	AverageSize      float64
	DaysWithActivity int
	TopDays          []DayCount
}

// DayCount is one calendar day's capture count.
type DayCount struct {
	Date  string // YYYY-MM-DD in local time
	Count int
}

// Stats computes aggregate statistics over the whole log. Days are
// bucketed by the local calendar date of each capture; TopDays holds the
// five busiest days, most captures first, ties broken by recency.
func (e *Engine) Stats() Stats {
	entries := e.store.Entries()

	stats := Stats{TotalEntries: len(entries)}

	byDay := make(map[string]int)
	for _, entry := range entries {
		stats.TotalSize += int64(entry.Size)
		byDay[entry.Timestamp.Local().Format("2006-01-02")]++
	}

	if stats.TotalEntries > 0 {
		stats.AverageSize = float64(stats.TotalSize) / float64(stats.TotalEntries)
	}
	stats.DaysWithActivity = len(byDay)

	days := make([]DayCount, 0, len(byDay))
	for date, count := range byDay {
		days = append(days, DayCount{Date: date, Count: count})
	}
	sort.Slice(days, func(i, j int) bool {
		if days[i].Count != days[j].Count {
			return days[i].Count > days[j].Count
		}
		return days[i].Date > days[j].Date
	})
	if len(days) > 5 {
		days = days[:5]
	}
	stats.TopDays = days

	return stats
}

func reverse(entries []history.Entry) {
	for i, j := 0, len(entries)-1; i < j; i, j = i+1, j-1 {
		entries[i], entries[j] = entries[j], entries[i]
	}
}
