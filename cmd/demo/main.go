package main

import (
	"fmt"
	"log"
	"os"

	"github.com/eminbaxishli514-cloud/clipboard-history-manager/internal/history"
	"github.com/eminbaxishli514-cloud/clipboard-history-manager/internal/query"
)

func main() {
	fmt.Println("cliplog Store Demo")

	// Work against a throwaway data directory
	dir, err := os.MkdirTemp("", "cliplog-demo-*")
	if err != nil {
		log.Fatalf("Failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(dir)

	store, err := history.Open(dir, 0)
	if err != nil {
		log.Fatalf("Failed to open store: %v", err)
	}

	fmt.Printf("Data directory: %s\n", dir)
	fmt.Printf("Initial history size: %d\n\n", store.Len())

	// Add some test content
	testContent := []string{
		"Hello, World! This is the first clipboard capture.",
		"package main\n\nimport \"fmt\"\n\nfunc main() {\n    fmt.Println(\"Hello, Go!\")\n}",
		"#!/bin/bash\necho \"Starting script...\"\nfor i in {1..5}; do\n    echo \"Processing $i\"\ndone",
		"SELECT * FROM users WHERE created_at > '2023-01-01' ORDER BY created_at DESC LIMIT 10;",
		"Lorem ipsum dolor sit amet, consectetur adipiscing elit.",
		"Lorem ipsum dolor sit amet, consectetur adipiscing elit.",
	}

	fmt.Println("Capturing entries:")
	for i, content := range testContent {
		added, err := store.Add(content)
		if err != nil {
			log.Printf("Failed to add entry %d: %v", i, err)
			continue
		}
		if !added {
			fmt.Printf("%d. skipped (duplicate of previous capture)\n", i+1)
			continue
		}
		fmt.Printf("%d. %s\n", i+1, history.Preview(content, 50))
	}

	queries := query.New(store)

	fmt.Printf("\nFinal history size: %d\n\n", store.Len())

	// List all entries
	fmt.Println("History contents (newest first):")
	for i, entry := range queries.List(0, 0) {
		fmt.Printf("%d. [%s] %s\n", i+1, entry.Timestamp.Format("15:04:05"), history.Preview(entry.Content, 50))
	}

	// Demonstrate search
	fmt.Println("\nSearching for 'lorem':")
	for _, entry := range queries.Search("lorem", 0) {
		fmt.Printf("  match: %s\n", history.Preview(entry.Content, 50))
	}

	// Demonstrate getting a specific entry
	entry, err := queries.Get(1)
	if err != nil {
		log.Fatalf("Failed to get newest entry: %v", err)
	}
	fmt.Printf("\nNewest entry (%d bytes):\n%s\n", entry.Size, entry.Content)

	stats := queries.Stats()
	fmt.Printf("\nStats: %d entries, %d bytes total, %.0f bytes average\n",
		stats.TotalEntries, stats.TotalSize, stats.AverageSize)

	fmt.Printf("\nDemo complete! (Using a throwaway data directory)\n")
}
