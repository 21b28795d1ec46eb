package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/arkanoid/internal/core"
	"github.com/vovakirdan/arkanoid/internal/registry"
	"github.com/vovakirdan/arkanoid/internal/storage"
)

// MenuItem represents a selectable entry in the title menu.
type MenuItem struct {
	GameID string // Empty for non-game entries
	Title  string
	Rounds bool // Opens the round log
}

// MenuModel is the Bubble Tea model for the title menu.
type MenuModel struct {
	items      []MenuItem
	cursor     int
	width      int
	height     int
	store      *storage.Store
	config     core.RuntimeConfig
	keyMapper  *KeyMapper
	quitting   bool
	selected   *MenuItem // Set when user selects an entry
	openRounds bool      // True if user asked for the round log
	summary    string
}

// NewMenuModel creates a new menu model listing every registered game
// followed by the round log.
func NewMenuModel(store *storage.Store, cfg core.RuntimeConfig) MenuModel {
	games := registry.List()
	items := make([]MenuItem, 0, len(games)+1)

	for _, g := range games {
		items = append(items, MenuItem{
			GameID: g.ID,
			Title:  "Play " + g.Title,
		})
	}
	items = append(items, MenuItem{Title: "Round log", Rounds: true})

	return MenuModel{
		items:     items,
		cursor:    0,
		width:     cfg.ScreenW,
		height:    cfg.ScreenH,
		store:     store,
		config:    cfg,
		keyMapper: NewKeyMapper(),
		summary:   menuSummary(store, games),
	}
}

// menuSummary returns a one-line won/lost tally for the first game.
func menuSummary(store *storage.Store, games []registry.GameInfo) string {
	if store == nil || len(games) == 0 {
		return ""
	}
	stats, err := store.Summary(games[0].ID)
	if err != nil || stats.Rounds == 0 {
		return ""
	}
	return fmt.Sprintf("%d rounds  |  %d won  |  %d lost", stats.Rounds, stats.Won, stats.Lost)
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keyMapper.MapKeyToMenuAction(msg)

	switch action {
	case MenuActionQuit, MenuActionBack:
		m.quitting = true
		return m, tea.Quit

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}

	case MenuActionSelect:
		if len(m.items) > 0 {
			selected := m.items[m.cursor]
			if selected.Rounds {
				m.openRounds = true
				return m, tea.Quit
			}
			m.selected = &selected
			return m, tea.Quit // Exit menu to start game
		}

	case MenuActionRounds:
		m.openRounds = true
		return m, tea.Quit
	}

	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("1"))
	title := "  A R K A N O I D  "
	b.WriteString("\n")
	b.WriteString(centerText(title, m.width, titleStyle))
	b.WriteString("\n\n")

	if m.summary != "" {
		dim := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
		b.WriteString(centerText(m.summary, m.width, dim))
		b.WriteString("\n\n")
	}

	for i, item := range m.items {
		cursor := "  "
		style := lipgloss.NewStyle()
		if i == m.cursor {
			cursor = "> "
			style = style.Bold(true).Foreground(lipgloss.Color("229"))
		}
		b.WriteString(centerText(cursor+item.Title, m.width, style))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	controls := "Up/Down: Navigate  |  Enter: Select  |  Tab: Rounds  |  Q: Quit"
	b.WriteString(centerText(controls, m.width, lipgloss.NewStyle()))
	b.WriteString("\n")

	return b.String()
}

// Selected returns the selected menu item, or nil if none selected.
func (m MenuModel) Selected() *MenuItem {
	return m.selected
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsRounds returns true if user requested the round log.
func (m MenuModel) WantsRounds() bool {
	return m.openRounds
}

// Config returns the current runtime config (may have been updated by resize).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// centerText centers text within given width and applies style.
func centerText(text string, width int, style lipgloss.Style) string {
	w := lipgloss.Width(text)
	if w >= width {
		return style.Render(text)
	}
	padding := (width - w) / 2
	return strings.Repeat(" ", padding) + style.Render(text)
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	GameID      string
	Config      core.RuntimeConfig
	WantsRounds bool
	Quit        bool
}

// RunMenu runs the menu and returns the selection result.
func RunMenu(store *storage.Store, cfg core.RuntimeConfig) (MenuResult, error) {
	model := NewMenuModel(store, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{Config: cfg}, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok {
		return MenuResult{Config: cfg, Quit: true}, nil
	}

	result := MenuResult{
		Config: m.Config(),
	}

	switch {
	case m.WantsRounds():
		result.WantsRounds = true
	case m.IsQuitting():
		result.Quit = true
	case m.Selected() != nil:
		result.GameID = m.Selected().GameID
	default:
		result.Quit = true
	}

	return result, nil
}
