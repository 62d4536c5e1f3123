package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/eminbaxishli514-cloud/clipboard-history-manager/internal/clipboard/mockboard"
	"github.com/eminbaxishli514-cloud/clipboard-history-manager/internal/history"
	"github.com/eminbaxishli514-cloud/clipboard-history-manager/internal/monitor"
	"github.com/eminbaxishli514-cloud/clipboard-history-manager/internal/query"
)

func main() {
	fmt.Println("Testing clipboard capture end to end")
	fmt.Println("====================================")

	dir, err := os.MkdirTemp("", "cliplog-integration-*")
	if err != nil {
		log.Fatalf("Failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(dir)

	store, err := history.Open(dir, 0)
	if err != nil {
		log.Fatalf("Failed to open store: %v", err)
	}

	// Drive the monitor with a fake clipboard instead of the real one
	board := mockboard.New()
	mon := monitor.New(store, board, 10*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- mon.Run(ctx)
	}()

	// Feed the clipboard a few changes, including a repeat that must dedup
	changes := []string{
		"first capture",
		"second capture",
		"second capture",
		"third capture",
	}
	for _, text := range changes {
		board.SetText(text)
		time.Sleep(50 * time.Millisecond)
	}

	cancel()
	if err := <-done; err != nil {
		log.Fatalf("Monitor stopped with error: %v", err)
	}

	failures := 0
	check := func(name string, ok bool) {
		if ok {
			fmt.Printf("PASS %s\n", name)
		} else {
			failures++
			fmt.Printf("FAIL %s\n", name)
		}
	}

	check("captured three distinct entries", store.Len() == 3)

	queries := query.New(store)

	entries := queries.List(0, 0)
	check("newest entry is the last capture", len(entries) > 0 && entries[0].Content == "third capture")

	matches := queries.Search("second", 0)
	check("search finds the deduplicated capture once", len(matches) == 1)

	// Reopen to prove the log survived on disk
	reopened, err := history.Open(dir, 0)
	if err != nil {
		log.Fatalf("Failed to reopen store: %v", err)
	}
	check("entries survive a reopen", reopened.Len() == store.Len())

	if failures > 0 {
		fmt.Printf("\n%d check(s) failed\n", failures)
		os.Exit(1)
	}
	fmt.Println("\nAll checks passed!")
}
