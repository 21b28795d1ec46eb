package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/arkanoid/internal/registry"
	"github.com/vovakirdan/arkanoid/internal/storage"
)

// Round log layout constants
const (
	minWidthForStats = 90  // Minimum width to show the stats panel
	statsWidth       = 24  // Width of the stats panel
	maxRounds        = 200 // Max rounds to load
)

// RoundsKeyMap defines the key bindings for the round log.
type RoundsKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	NextGame key.Binding
	PrevGame key.Binding
	Back     key.Binding
	Quit     key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k RoundsKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextGame, k.Back, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k RoundsKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.NextGame, k.PrevGame},
		{k.Back, k.Quit},
	}
}

// DefaultRoundsKeyMap returns default key bindings.
func DefaultRoundsKeyMap() RoundsKeyMap {
	return RoundsKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		NextGame: key.NewBinding(
			key.WithKeys("tab", "right", "l"),
			key.WithHelp("tab", "next game"),
		),
		PrevGame: key.NewBinding(
			key.WithKeys("shift+tab", "left", "h"),
			key.WithHelp("S-tab", "prev game"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// RoundsModel is the Bubble Tea model for the round log screen.
type RoundsModel struct {
	games      []registry.GameInfo
	gameCursor int
	store      *storage.Store
	rounds     []storage.Round
	stats      *storage.RoundStats
	table      table.Model
	help       help.Model
	keys       RoundsKeyMap
	width      int
	height     int
	quitting   bool
	goingBack  bool
	showStats  bool
}

// NewRoundsModel creates a new round log model.
func NewRoundsModel(store *storage.Store, width, height int) RoundsModel {
	h := help.New()
	h.ShowAll = false

	m := RoundsModel{
		games:     registry.List(),
		store:     store,
		keys:      DefaultRoundsKeyMap(),
		help:      h,
		width:     width,
		height:    height,
		showStats: width >= minWidthForStats,
	}

	m.table = m.createTable()

	if len(m.games) > 0 {
		m.loadRounds(m.games[0].ID)
	}

	return m
}

// RoundColumns returns the round log columns.
func RoundColumns() []table.Column {
	return []table.Column{
		{Title: "#", Width: 6},
		{Title: "Outcome", Width: 8},
		{Title: "Ticks", Width: 8},
		{Title: "Cleared", Width: 8},
		{Title: "Seed", Width: 20},
		{Title: "Player", Width: 10},
		{Title: "Date", Width: 13},
	}
}

// RoundRow formats a round as a table row.
func RoundRow(r storage.Round) table.Row {
	return table.Row{
		fmt.Sprintf("%d", r.ID),
		r.Outcome,
		fmt.Sprintf("%d", r.Ticks),
		fmt.Sprintf("%d", r.Cleared),
		fmt.Sprintf("%d", r.Seed),
		r.Player,
		r.CreatedAt.Format("Jan 02 15:04"),
	}
}

// createTable creates a new table sized to the window.
func (m *RoundsModel) createTable() table.Model {
	t := table.New(
		table.WithColumns(RoundColumns()),
		table.WithFocused(true),
		table.WithHeight(max(m.height-8, 3)), // Leave room for header, help, and margins
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// loadRounds loads rounds and statistics for the given game ID.
func (m *RoundsModel) loadRounds(gameID string) {
	m.rounds = nil
	m.stats = nil
	if m.store != nil {
		if rounds, err := m.store.RecentRounds(gameID, maxRounds); err == nil {
			m.rounds = rounds
		}
		if stats, err := m.store.Summary(gameID); err == nil {
			m.stats = stats
		}
	}
	m.updateTableRows()
}

// updateTableRows updates the table with current rounds.
func (m *RoundsModel) updateTableRows() {
	rows := make([]table.Row, len(m.rounds))
	for i, r := range m.rounds {
		rows[i] = RoundRow(r)
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// Init initializes the round log model.
func (m RoundsModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the round log.
func (m RoundsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.NextGame):
			if len(m.games) > 0 {
				m.gameCursor = (m.gameCursor + 1) % len(m.games)
				m.loadRounds(m.games[m.gameCursor].ID)
			}
			return m, nil

		case key.Matches(msg, m.keys.PrevGame):
			if len(m.games) > 0 {
				m.gameCursor = (m.gameCursor - 1 + len(m.games)) % len(m.games)
				m.loadRounds(m.games[m.gameCursor].ID)
			}
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.showStats = m.width >= minWidthForStats
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	// Pass other messages to table for scrolling
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the round log.
func (m RoundsModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		MarginBottom(1)

	title := "ROUND LOG"
	if len(m.games) > 0 {
		title = fmt.Sprintf("ROUND LOG - %s", m.games[m.gameCursor].Title)
	}

	b.WriteString(centerText(title, m.width, titleStyle))
	b.WriteString("\n\n")

	panelStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	tableRendered := panelStyle.Render(m.renderTableContent())
	if m.showStats {
		statsRendered := panelStyle.Width(statsWidth).Render(m.renderStats())
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, statsRendered, "  ", tableRendered))
	} else {
		b.WriteString(tableRendered)
	}

	b.WriteString("\n")
	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// renderStats renders the aggregate panel.
func (m RoundsModel) renderStats() string {
	if m.stats == nil || m.stats.Rounds == 0 {
		return "No statistics"
	}

	var sb strings.Builder
	sb.WriteString("Statistics\n")
	sb.WriteString(strings.Repeat("-", statsWidth-4))
	sb.WriteString("\n")
	fmt.Fprintf(&sb, "Rounds:   %d\n", m.stats.Rounds)
	fmt.Fprintf(&sb, "Won:      %d\n", m.stats.Won)
	fmt.Fprintf(&sb, "Lost:     %d\n", m.stats.Lost)
	if m.stats.FastestWin > 0 {
		fmt.Fprintf(&sb, "Fastest:  %d ticks\n", m.stats.FastestWin)
	}
	fmt.Fprintf(&sb, "Blocks:   %d\n", m.stats.TotalCleared)
	if !m.stats.LastPlayed.IsZero() {
		fmt.Fprintf(&sb, "Last:     %s", m.stats.LastPlayed.Format("Jan 02 15:04"))
	}
	return sb.String()
}

// renderTableContent renders the table or empty message.
func (m RoundsModel) renderTableContent() string {
	if len(m.rounds) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(2, 4)
		return emptyStyle.Render("No rounds recorded yet.\nFinish a round to start the log!")
	}

	return m.table.View()
}

// IsGoingBack returns true if user wants to go back to menu.
func (m RoundsModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m RoundsModel) IsQuitting() bool {
	return m.quitting
}

// RunRounds runs the round log screen.
// Returns true if user wants to go back to menu, false if quitting.
func RunRounds(store *storage.Store, width, height int) (goBack bool, err error) {
	model := NewRoundsModel(store, width, height)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}

	m, ok := finalModel.(RoundsModel)
	if !ok {
		return false, nil
	}

	return m.IsGoingBack(), nil
}
