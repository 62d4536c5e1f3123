package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"sort"
	"strings"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sourcegraph/conc/pool"

	"github.com/eminbaxishli514-cloud/clipboard-history-manager/internal/clipboard"
	"github.com/eminbaxishli514-cloud/clipboard-history-manager/internal/clipboard/sysboard"
	"github.com/eminbaxishli514-cloud/clipboard-history-manager/internal/config"
	"github.com/eminbaxishli514-cloud/clipboard-history-manager/internal/history"
	"github.com/eminbaxishli514-cloud/clipboard-history-manager/internal/monitor"
	"github.com/eminbaxishli514-cloud/clipboard-history-manager/internal/query"
	"github.com/eminbaxishli514-cloud/clipboard-history-manager/internal/tui"
)

const timeFormat = "2006-01-02 15:04:05"

const (
	listPreviewWidth   = 60
	searchPreviewWidth = 80
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true)
	doubleRule  = strings.Repeat("=", 70)
	singleRule  = strings.Repeat("-", 70)
)

// CLI handles the command-line interface
type CLI struct {
	store         *history.Store
	queries       *query.Engine
	configManager *config.ConfigManager
	clipboard     clipboard.Source

	out io.Writer
	in  io.Reader
}

// New creates a new CLI instance
func New() (*CLI, error) {
	return NewWithArgs(nil)
}

// NewWithArgs creates a new CLI instance with custom arguments for the data directory
func NewWithArgs(args *Args) (*CLI, error) {
	dataDir, err := resolveDataDir(args)
	if err != nil {
		return nil, err
	}

	store, err := history.Open(dataDir, history.DefaultMaxPayloadBytes)
	if err != nil {
		return nil, fmt.Errorf("failed to open history store: %w", err)
	}

	return &CLI{
		store:         store,
		queries:       query.New(store),
		configManager: config.NewConfigManager(store.ConfigPath()),
		clipboard:     sysboard.New(),
		out:           os.Stdout,
		in:            os.Stdin,
	}, nil
}

// resolveDataDir determines the data directory (precedence: flag > CLIPLOG_DATA_DIR > default)
func resolveDataDir(args *Args) (string, error) {
	if args != nil && args.DataDir != nil && *args.DataDir != "" {
		return *args.DataDir, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}
	return filepath.Join(homeDir, ".config", "cliplog"), nil
}

// Execute runs the CLI command based on parsed arguments
func (c *CLI) Execute(args *Args) error {
	if err := args.Validate(); err != nil {
		return err
	}

	switch {
	case args.Start != nil:
		return c.executeStart(args.Start)
	case args.List != nil:
		return c.executeList(args.List)
	case args.Search != nil:
		return c.executeSearch(args.Search)
	case args.Get != nil:
		return c.executeGet(args.Get)
	case args.Clear != nil:
		return c.executeClear(args.Clear)
	case args.Stats != nil:
		return c.executeStats()
	case args.Browse != nil:
		return c.executeBrowse()
	case args.Config != nil:
		return c.executeConfig(args.Config)
	default:
		return fmt.Errorf("no command specified")
	}
}

// executeStart handles the 'cliplog start' command. It runs the clipboard
// monitor and the config file watcher until interrupted.
func (c *CLI) executeStart(cmd *StartCmd) error {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	fmt.Fprintln(c.out, "Monitoring clipboard... Press Ctrl+C to stop.")
	fmt.Fprintf(c.out, "History file: %s\n\n", c.store.HistoryPath())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	mon := monitor.New(c.store, c.clipboard, cmd.Interval)

	p := pool.New().WithContext(ctx)
	p.Go(func(ctx context.Context) error {
		return mon.Run(ctx)
	})
	p.Go(func(ctx context.Context) error {
		// A broken watcher degrades hot reload, it must not stop the monitor.
		err := c.configManager.Watch(ctx, func(cfg *config.Config) {
			if err := c.store.Reconfigure(*cfg); err != nil {
				slog.Error("config: apply failed", "error", err)
			}
		})
		if err != nil {
			slog.Error("config: watch failed", "error", err)
		}
		return nil
	})

	if err := p.Wait(); err != nil {
		return fmt.Errorf("monitor stopped: %w", err)
	}

	fmt.Fprintln(c.out, "\nMonitoring stopped.")
	return nil
}

// executeList handles the 'cliplog list' command
func (c *CLI) executeList(cmd *ListCmd) error {
	limit, days := 0, 0
	if cmd.Limit != nil {
		limit = *cmd.Limit
	}
	if cmd.Days != nil {
		days = *cmd.Days
	}

	entries := c.queries.List(limit, days)
	if len(entries) == 0 {
		fmt.Fprintln(c.out, "No clipboard history entries found.")
		return nil
	}

	fmt.Fprintf(c.out, "\n%s\n", headerStyle.Render(fmt.Sprintf("Clipboard History (%d entries):", len(entries))))
	fmt.Fprintln(c.out, doubleRule)

	for i, entry := range entries {
		sizeKB := float64(entry.Size) / 1024
		fmt.Fprintf(c.out, "%d. [%s] (%.1f KB)\n", i+1, entry.Timestamp.Format(timeFormat), sizeKB)
		fmt.Fprintf(c.out, "   %s\n\n", history.Preview(entry.Content, listPreviewWidth))
	}
	return nil
}

// executeSearch handles the 'cliplog search' command
func (c *CLI) executeSearch(cmd *SearchCmd) error {
	limit := 0
	if cmd.Limit != nil {
		limit = *cmd.Limit
	}

	matches := c.queries.Search(cmd.Query, limit)
	if len(matches) == 0 {
		fmt.Fprintf(c.out, "No entries found matching '%s'\n", cmd.Query)
		return nil
	}

	fmt.Fprintf(c.out, "\n%s\n", headerStyle.Render(fmt.Sprintf("Found %d matching entries:", len(matches))))
	fmt.Fprintln(c.out, doubleRule)

	for i, entry := range matches {
		fmt.Fprintf(c.out, "%d. [%s]\n", i+1, entry.Timestamp.Format(timeFormat))
		fmt.Fprintf(c.out, "   %s\n\n", history.Preview(entry.Content, searchPreviewWidth))
	}
	return nil
}

// executeGet handles the 'cliplog get' command
func (c *CLI) executeGet(cmd *GetCmd) error {
	entry, err := c.queries.Get(cmd.Index)
	if err != nil {
		return err
	}

	fmt.Fprintf(c.out, "\n%s\n", headerStyle.Render(fmt.Sprintf("Entry #%d:", cmd.Index)))
	fmt.Fprintln(c.out, doubleRule)
	fmt.Fprintf(c.out, "Timestamp: %s\n", entry.Timestamp.Format(timeFormat))
	fmt.Fprintf(c.out, "Size: %d bytes\n", entry.Size)
	fmt.Fprintln(c.out, "Content:")
	fmt.Fprintln(c.out, singleRule)
	fmt.Fprintln(c.out, entry.Content)
	fmt.Fprintln(c.out, singleRule)

	if cmd.Copy {
		if err := c.clipboard.Write(entry.Content); err != nil {
			fmt.Fprintf(c.out, "Failed to copy to clipboard: %v\n", err)
			return nil
		}
		fmt.Fprintln(c.out, "Copied to clipboard!")
	}
	return nil
}

// executeClear handles the 'cliplog clear' command
func (c *CLI) executeClear(cmd *ClearCmd) error {
	if cmd.Days != nil {
		removed, err := c.queries.Prune(*cmd.Days)
		if err != nil {
			return fmt.Errorf("failed to clear history: %w", err)
		}
		fmt.Fprintf(c.out, "Removed %d entries older than %d days.\n", removed, *cmd.Days)
		return nil
	}

	total := c.store.Len()
	if total == 0 {
		fmt.Fprintln(c.out, "History is already empty.")
		return nil
	}

	// Prompt for confirmation unless --force is used
	if !cmd.Force {
		fmt.Fprintf(c.out, "This will delete %d entries from history. Continue? [y/N]: ", total)
		var response string
		fmt.Fscanln(c.in, &response)
		response = strings.ToLower(strings.TrimSpace(response))
		if response != "y" && response != "yes" {
			fmt.Fprintln(c.out, "Cancelled.")
			return nil
		}
	}

	removed, err := c.queries.Clear()
	if err != nil {
		return fmt.Errorf("failed to clear history: %w", err)
	}

	fmt.Fprintf(c.out, "Cleared %d entries from history.\n", removed)
	return nil
}

// executeStats handles the 'cliplog stats' command
func (c *CLI) executeStats() error {
	stats := c.queries.Stats()
	if stats.TotalEntries == 0 {
		fmt.Fprintln(c.out, "No clipboard history.")
		return nil
	}

	fmt.Fprintf(c.out, "\n%s\n", headerStyle.Render("Clipboard History Statistics:"))
	fmt.Fprintln(c.out, doubleRule)
	fmt.Fprintf(c.out, "Total Entries: %d\n", stats.TotalEntries)
	fmt.Fprintf(c.out, "Total Size: %.2f MB\n", float64(stats.TotalSize)/(1024*1024))
	fmt.Fprintf(c.out, "Average Entry Size: %.0f bytes\n", stats.AverageSize)
	fmt.Fprintf(c.out, "Days with Activity: %d\n", stats.DaysWithActivity)
	fmt.Fprintf(c.out, "\n%s\n", headerStyle.Render("Most Active Days:"))
	for _, day := range stats.TopDays {
		fmt.Fprintf(c.out, "  %s: %d entries\n", day.Date, day.Count)
	}
	return nil
}

// executeBrowse handles the 'cliplog browse' command
func (c *CLI) executeBrowse() error {
	entries := c.queries.List(0, 0)
	if len(entries) == 0 {
		fmt.Fprintln(c.out, "History is empty!")
		fmt.Fprintln(c.out)
		fmt.Fprintln(c.out, "To start recording clipboard changes:")
		fmt.Fprintln(c.out, "  cliplog start")
		return nil
	}

	model := tui.New(entries)
	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// executeConfig handles the 'cliplog config' command
func (c *CLI) executeConfig(cmd *ConfigCmd) error {
	switch {
	case cmd.Get != nil:
		return c.executeConfigGet(cmd.Get)
	case cmd.Set != nil:
		return c.executeConfigSet(cmd.Set)
	case cmd.List != nil:
		return c.executeConfigList(cmd.List)
	default:
		return fmt.Errorf("no config subcommand specified")
	}
}

// executeConfigGet handles the 'cliplog config get' command
func (c *CLI) executeConfigGet(cmd *ConfigGetCmd) error {
	value, err := c.configManager.Get(cmd.Key)
	if err != nil {
		return fmt.Errorf("failed to get config value: %w", err)
	}

	fmt.Fprintf(c.out, "%s\n", value)
	return nil
}

// executeConfigSet handles the 'cliplog config set' command
func (c *CLI) executeConfigSet(cmd *ConfigSetCmd) error {
	if err := c.configManager.Update(cmd.Key, cmd.Value); err != nil {
		return fmt.Errorf("failed to set config value: %w", err)
	}

	// Apply immediately so a lowered max_entries trims right away.
	cfg, err := c.configManager.Load()
	if err != nil {
		return fmt.Errorf("failed to reload config: %w", err)
	}
	if err := c.store.Reconfigure(*cfg); err != nil {
		return fmt.Errorf("failed to apply config: %w", err)
	}

	fmt.Fprintf(c.out, "Set %s = %s\n", cmd.Key, cmd.Value)
	return nil
}

// executeConfigList handles the 'cliplog config list' command
func (c *CLI) executeConfigList(cmd *ConfigListCmd) error {
	values, err := c.configManager.List()
	if err != nil {
		return fmt.Errorf("failed to list config values: %w", err)
	}

	keys := make([]string, 0, len(values))
	for key := range values {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	fmt.Fprintln(c.out, "Current configuration:")
	for _, key := range keys {
		fmt.Fprintf(c.out, "  %s = %s\n", key, values[key])
	}
	return nil
}
