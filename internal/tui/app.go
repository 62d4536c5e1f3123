package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.design/x/clipboard"

	"github.com/eminbaxishli514-cloud/clipboard-history-manager/internal/history"
)

// UIMode represents the current modal state of the browser
type UIMode int

const (
	NormalMode UIMode = iota
	FilterMode
)

// flashExpiredMsg signals that the flash message duration has elapsed
type flashExpiredMsg struct{}

// Model holds the state for the interactive history browser
type Model struct {
	Width       int    // Window width
	Height      int    // Window height
	ListWidth   int    // List pane width
	DetailWidth int    // Detail pane width
	CurrentMode UIMode // Current modal state

	Entries []history.Entry // All entries, newest first
	Visible []int           // Indexes into Entries that match the filter
	Cursor  int             // Cursor position within Visible

	Filter string // Live filter text, empty when inactive

	// Flash message for temporary notifications
	FlashMessage string    // The message to display
	FlashExpiry  time.Time // When the message should disappear
}

// New creates a browser model over the given entries, which must be ordered
// newest first so the row numbers line up with 'cliplog get' indexes.
func New(entries []history.Entry) *Model {
	// Default dimensions that will be properly set on first resize
	m := &Model{
		CurrentMode: NormalMode,
		Entries:     entries,
	}
	m.resize(120, 30)
	m.applyFilter()
	return m
}

// Init implements tea.Model
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and routes key presses by mode
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil
	case tea.KeyMsg:
		return m.handleKeyPress(msg)
	case flashExpiredMsg:
		// Clear flash message when it expires
		m.FlashMessage = ""
		m.FlashExpiry = time.Time{}
		return m, nil
	}

	return m, nil
}

// handleKeyPress processes key press events using mode-first routing
func (m *Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.CurrentMode {
	case FilterMode:
		return m.handleFilterModeKeys(msg)
	default:
		return m.handleNormalModeKeys(msg.String())
	}
}

// handleNormalModeKeys processes keys when in normal mode
func (m *Model) handleNormalModeKeys(key string) (tea.Model, tea.Cmd) {
	switch key {
	case "ctrl+c", "q":
		return m, tea.Quit
	case "j", "down":
		if m.Cursor < len(m.Visible)-1 {
			m.Cursor++
		}
	case "k", "up":
		if m.Cursor > 0 {
			m.Cursor--
		}
	case "g":
		m.Cursor = 0
	case "G":
		if len(m.Visible) > 0 {
			m.Cursor = len(m.Visible) - 1
		}
	case "/":
		m.CurrentMode = FilterMode
		m.Filter = ""
		m.applyFilter()
	case "esc":
		// Clear an active filter first; quit once there is nothing to clear.
		if m.Filter != "" {
			m.Filter = ""
			m.applyFilter()
			return m, nil
		}
		return m, tea.Quit
	case "enter", "c":
		return m, m.copySelected()
	}

	return m, nil
}

// handleFilterModeKeys processes keys when in filter mode. The filter is
// applied live on every keystroke.
func (m *Model) handleFilterModeKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		// Force quit is always available
		return m, tea.Quit
	case "esc":
		// Cancel the filter and return to normal mode
		m.Filter = ""
		m.CurrentMode = NormalMode
		m.applyFilter()
		return m, nil
	case "enter":
		// Keep the filter and return to normal mode
		m.CurrentMode = NormalMode
		return m, nil
	case "backspace", "ctrl+h":
		if m.Filter != "" {
			runes := []rune(m.Filter)
			m.Filter = string(runes[:len(runes)-1])
			m.applyFilter()
		}
		return m, nil
	default:
		if !msg.Alt && (msg.Type == tea.KeyRunes || msg.Type == tea.KeySpace) {
			m.Filter += msg.String()
			m.applyFilter()
		}
		return m, nil
	}
}

// applyFilter recomputes the visible rows and clamps the cursor
func (m *Model) applyFilter() {
	needle := strings.ToLower(m.Filter)

	visible := make([]int, 0, len(m.Entries))
	for i, entry := range m.Entries {
		if needle == "" || strings.Contains(strings.ToLower(entry.Content), needle) {
			visible = append(visible, i)
		}
	}
	m.Visible = visible

	if m.Cursor >= len(m.Visible) {
		m.Cursor = len(m.Visible) - 1
	}
	if m.Cursor < 0 {
		m.Cursor = 0
	}
}

// resize recalculates pane dimensions for a new window size
func (m *Model) resize(width, height int) {
	minTotalWidth := 40
	if width < minTotalWidth {
		width = minTotalWidth
	}
	m.Width = width
	m.Height = height

	borderSpacing := 2 // Account for adjacent borders
	m.ListWidth = min(40, m.Width/3)
	if m.ListWidth < 20 {
		m.ListWidth = 20
	}
	m.DetailWidth = m.Width - m.ListWidth - borderSpacing
}

// selected returns the entry under the cursor, or nil when the view is empty
func (m *Model) selected() *history.Entry {
	if len(m.Visible) == 0 || m.Cursor >= len(m.Visible) {
		return nil
	}
	return &m.Entries[m.Visible[m.Cursor]]
}

// setFlashMessage sets a flash message that will disappear after the specified duration
func (m *Model) setFlashMessage(message string, duration time.Duration) tea.Cmd {
	m.FlashMessage = message
	m.FlashExpiry = time.Now().Add(duration)
	return tea.Tick(duration, func(t time.Time) tea.Msg {
		return flashExpiredMsg{}
	})
}

// copySelected copies the entry under the cursor to the system clipboard
func (m *Model) copySelected() tea.Cmd {
	entry := m.selected()
	if entry == nil {
		return m.setFlashMessage("No entry selected", 2*time.Second)
	}

	if err := clipboard.Init(); err != nil {
		return m.setFlashMessage(fmt.Sprintf("Error initializing clipboard: %v", err), 2*time.Second)
	}
	clipboard.Write(clipboard.FmtText, []byte(entry.Content))

	return m.setFlashMessage(fmt.Sprintf("Copied %d bytes to clipboard", entry.Size), 2*time.Second)
}

// View method for tea.Model compatibility
func (m *Model) View() string {
	return browserView(*m)
}

// browserView renders the complete browser using pure functions
func browserView(model Model) string {
	if model.Width == 0 {
		return "Initializing..."
	}

	listView := listPaneView(model)
	detailView := detailPaneView(model)

	// Join panes side by side (borders provide visual separation)
	listLines := strings.Split(listView, "\n")
	detailLines := strings.Split(detailView, "\n")

	maxLines := len(listLines)
	if len(detailLines) > maxLines {
		maxLines = len(detailLines)
	}

	var result strings.Builder
	for i := 0; i < maxLines; i++ {
		listLine := ""
		detailLine := ""

		if i < len(listLines) {
			listLine = listLines[i]
		}
		if i < len(detailLines) {
			detailLine = detailLines[i]
		}

		result.WriteString(listLine + detailLine + "\n")
	}

	result.WriteString("\n" + statusLineView(model))

	return result.String()
}

// listPaneView renders the entry list as a pure function
func listPaneView(model Model) string {
	style := lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("62")).
		Padding(0, 1).
		Width(model.ListWidth).
		Height(model.Height - 4)

	var content strings.Builder
	title := fmt.Sprintf("History (%d)", len(model.Visible))
	content.WriteString(lipgloss.NewStyle().Bold(true).Render(title) + "\n\n")

	if len(model.Visible) == 0 {
		content.WriteString("No matching entries")
		return style.Render(content.String())
	}

	// Scroll the window so the cursor row stays in view
	visibleRows := model.Height - 8
	if visibleRows < 1 {
		visibleRows = 1
	}
	start := 0
	if model.Cursor >= visibleRows {
		start = model.Cursor - visibleRows + 1
	}
	end := min(start+visibleRows, len(model.Visible))

	for row := start; row < end; row++ {
		entry := model.Entries[model.Visible[row]]

		availableWidth := model.ListWidth - 8 // Account for borders, padding, and "N. "
		line := fmt.Sprintf("%d. %s", row+1, history.Preview(entry.Content, availableWidth))

		if row == model.Cursor {
			line = lipgloss.NewStyle().
				Background(lipgloss.Color("62")).
				Foreground(lipgloss.Color("230")).
				Width(model.ListWidth - 4). // Force width constraint
				Render(line)
		}

		content.WriteString(line + "\n")
	}

	return style.Render(content.String())
}

// detailPaneView renders the selected entry as a pure function
func detailPaneView(model Model) string {
	style := lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("62")).
		Padding(0, 1).
		Width(model.DetailWidth).
		Height(model.Height - 4)

	if len(model.Visible) == 0 || model.Cursor >= len(model.Visible) {
		return style.Render("Nothing selected")
	}

	entry := model.Entries[model.Visible[model.Cursor]]

	var content strings.Builder
	header := fmt.Sprintf("%s  (%d bytes)", entry.Timestamp.Format("2006-01-02 15:04:05"), entry.Size)
	content.WriteString(lipgloss.NewStyle().Bold(true).Render(header) + "\n\n")

	maxLines := model.Height - 8
	if maxLines < 1 {
		maxLines = 1
	}
	lines := WrapText(entry.Content, model.DetailWidth-4)
	if len(lines) > maxLines {
		lines = lines[:maxLines]
	}
	content.WriteString(strings.Join(lines, "\n"))

	return style.Render(content.String())
}

// statusLineView renders the bottom status line (pure function)
func statusLineView(model Model) string {
	// Prioritize flash message if active and not expired
	if model.FlashMessage != "" && time.Now().Before(model.FlashExpiry) {
		return lipgloss.NewStyle().
			Width(model.Width).
			Foreground(lipgloss.Color("10")).
			Render(model.FlashMessage)
	}

	var statusLine string
	switch model.CurrentMode {
	case FilterMode:
		statusLine = fmt.Sprintf("/%s (Enter to keep filter, Esc to cancel)", model.Filter)
	default:
		if model.Filter != "" {
			statusLine = fmt.Sprintf("Filter: %s - %d of %d entries - esc to clear", model.Filter, len(model.Visible), len(model.Entries))
		} else {
			statusLine = "j/k move, g/G jump, enter/c copy, / filter, q quit"
		}
	}

	return lipgloss.NewStyle().Width(model.Width).Render(statusLine)
}
