package main

import (
	"fmt"
	"os"

	"github.com/alexflint/go-arg"
	"github.com/eminbaxishli514-cloud/clipboard-history-manager/internal/cli"
)

func main() {
	// Parse command-line arguments
	var args cli.Args
	parser := arg.MustParse(&args)

	// If no subcommand provided, show help
	if args.Start == nil && args.List == nil && args.Search == nil && args.Get == nil &&
		args.Clear == nil && args.Stats == nil && args.Browse == nil && args.Config == nil {
		parser.WriteHelp(os.Stdout)
		return
	}

	// Create CLI instance with args for data directory support
	cliHandler, err := cli.NewWithArgs(&args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Execute the command
	if err := cliHandler.Execute(&args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
