package cli

import (
	"fmt"
	"time"
)

// Args represents the top-level command structure
type Args struct {
	Start  *StartCmd  `arg:"subcommand:start" help:"Monitor the clipboard and record every change"`
	List   *ListCmd   `arg:"subcommand:list" help:"Show history entries, newest first"`
	Search *SearchCmd `arg:"subcommand:search" help:"Search history by substring"`
	Get    *GetCmd    `arg:"subcommand:get" help:"Show one entry by its list index"`
	Clear  *ClearCmd  `arg:"subcommand:clear" help:"Prune old entries or wipe the history"`
	Stats  *StatsCmd  `arg:"subcommand:stats" help:"Show usage statistics"`
	Browse *BrowseCmd `arg:"subcommand:browse" help:"Browse history interactively"`
	Config *ConfigCmd `arg:"subcommand:config" help:"Inspect or update settings"`

	DataDir *string `arg:"--data-dir,env:CLIPLOG_DATA_DIR" help:"Directory holding history and config (default ~/.config/cliplog)"`
}

// StartCmd represents the 'cliplog start' command (runs the monitor loop)
type StartCmd struct {
	Interval time.Duration `arg:"-i,--interval" default:"1s" help:"Clipboard poll interval"`
}

// ListCmd represents the 'cliplog list' command
type ListCmd struct {
	Limit *int `arg:"-n,--limit" help:"Show at most this many entries"`
	Days  *int `arg:"--days" help:"Only show entries from the last N days"`
}

// SearchCmd represents the 'cliplog search' command
type SearchCmd struct {
	Query string `arg:"positional,required" help:"Substring to search for (case-insensitive)"`
	Limit *int   `arg:"-n,--limit" help:"Stop after this many matches"`
}

// GetCmd represents the 'cliplog get' command
type GetCmd struct {
	Index int  `arg:"positional,required" help:"Entry index from list output (1 = newest)"`
	Copy  bool `arg:"-c,--copy" help:"Also copy the entry back to the clipboard"`
}

// ClearCmd represents the 'cliplog clear' command
type ClearCmd struct {
	Days  *int `arg:"--days" help:"Only remove entries older than N days"`
	Force bool `arg:"-f,--force" help:"Skip the confirmation prompt"`
}

// StatsCmd represents the 'cliplog stats' command
type StatsCmd struct{}

// BrowseCmd represents the 'cliplog browse' command
type BrowseCmd struct{}

// ConfigCmd represents the 'cliplog config' command group
type ConfigCmd struct {
	Get  *ConfigGetCmd  `arg:"subcommand:get" help:"Print one setting"`
	Set  *ConfigSetCmd  `arg:"subcommand:set" help:"Change one setting"`
	List *ConfigListCmd `arg:"subcommand:list" help:"Print all settings"`
}

// ConfigGetCmd represents the 'cliplog config get' command
type ConfigGetCmd struct {
	Key string `arg:"positional,required" help:"Setting name (max-entries or retention-days)"`
}

// ConfigSetCmd represents the 'cliplog config set' command
type ConfigSetCmd struct {
	Key   string `arg:"positional,required" help:"Setting name (max-entries or retention-days)"`
	Value string `arg:"positional,required" help:"New value"`
}

// ConfigListCmd represents the 'cliplog config list' command
type ConfigListCmd struct{}

// Description returns the program description
func (Args) Description() string {
	return "cliplog - Clipboard history manager that records, searches, and prunes everything you copy"
}

// Version returns the program version
func (Args) Version() string {
	return "cliplog 0.1.0"
}

// Epilogue returns additional help text
func (Args) Epilogue() string {
	return `Examples:
  # Record clipboard changes until interrupted
  cliplog start
  cliplog start --interval 500ms

  # Look things up
  cliplog list -n 10                # ten most recent entries
  cliplog list --days 7            # everything from the last week
  cliplog search "api key" -n 5    # five most recent matches
  cliplog get 3                    # show entry 3 in full
  cliplog get 3 --copy             # and put it back on the clipboard
  cliplog browse                   # interactive browser

  # Maintenance
  cliplog clear --days 30          # drop entries older than 30 days
  cliplog clear --force            # wipe everything, no prompt
  cliplog config set max-entries 500

For more information, visit: https://github.com/eminbaxishli514-cloud/clipboard-history-manager`
}

// Validate performs validation on the parsed arguments
func (args *Args) Validate() error {
	if args.Start != nil {
		return args.Start.Validate()
	}
	if args.List != nil {
		return args.List.Validate()
	}
	if args.Search != nil {
		return args.Search.Validate()
	}
	if args.Clear != nil {
		return args.Clear.Validate()
	}
	if args.Config != nil {
		return args.Config.Validate()
	}
	return nil
}

// Validate validates start command arguments
func (s *StartCmd) Validate() error {
	if s.Interval < 0 {
		return fmt.Errorf("interval must not be negative")
	}
	return nil
}

// Validate validates list command arguments
func (l *ListCmd) Validate() error {
	if l.Limit != nil && *l.Limit < 1 {
		return fmt.Errorf("limit must be at least 1")
	}
	if l.Days != nil && *l.Days < 1 {
		return fmt.Errorf("days must be at least 1")
	}
	return nil
}

// Validate validates search command arguments
func (s *SearchCmd) Validate() error {
	if s.Query == "" {
		return fmt.Errorf("search query must not be empty")
	}
	if s.Limit != nil && *s.Limit < 1 {
		return fmt.Errorf("limit must be at least 1")
	}
	return nil
}

// Validate validates clear command arguments
func (c *ClearCmd) Validate() error {
	if c.Days != nil && *c.Days < 1 {
		return fmt.Errorf("days must be at least 1")
	}
	return nil
}

// Validate validates config command arguments
func (c *ConfigCmd) Validate() error {
	count := 0
	if c.Get != nil {
		count++
	}
	if c.Set != nil {
		count++
	}
	if c.List != nil {
		count++
	}
	if count == 0 {
		return fmt.Errorf("no config subcommand specified")
	}
	if count > 1 {
		return fmt.Errorf("only one config subcommand may be given")
	}

	if c.Get != nil {
		return validateConfigKey(c.Get.Key)
	}
	if c.Set != nil {
		return validateConfigKey(c.Set.Key)
	}
	return nil
}

func validateConfigKey(key string) error {
	switch key {
	case "max-entries", "retention-days":
		return nil
	default:
		return fmt.Errorf("unknown configuration key: %s (valid keys: max-entries, retention-days)", key)
	}
}
