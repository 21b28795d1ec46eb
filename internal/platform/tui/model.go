package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/arkanoid/internal/core"
	"github.com/vovakirdan/arkanoid/internal/registry"
	"github.com/vovakirdan/arkanoid/internal/storage"
)

// LocalPlayer is the player name recorded for rounds played on this machine.
const LocalPlayer = "local"

// GameOptions carries the optional collaborators of a GameModel.
type GameOptions struct {
	Player     string      // Recorded with each round
	Logger     *log.Logger // Round outcomes are logged here when set
	Standalone bool        // Back quits the program instead of returning to a menu
}

// GameModel is the Bubble Tea model that runs one game.
// Ticks come from tea.Tick at the configured pace; mouse motion is
// forwarded to pointer games as soon as it arrives.
type GameModel struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	config     core.RuntimeConfig
	opts       GameOptions
	inputFrame core.InputFrame
	gameState  core.GameState
	keyMapper  *KeyMapper
	quitting   bool
	backToMenu bool
}

// NewGameModel creates a new game model.
func NewGameModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts GameOptions) GameModel {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if opts.Player == "" {
		opts.Player = LocalPlayer
	}

	return GameModel{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		config:     cfg,
		opts:       opts,
		inputFrame: core.NewInputFrame(),
		keyMapper:  NewKeyMapper(),
	}
}

// Init initializes the game and starts the tick loop.
func (m GameModel) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickInterval())
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	if m.keyMapper.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		return m, tea.Quit
	}

	// Back leaves the game only while it is not running
	if m.inputFrame.Has(core.ActionBack) && (m.gameState.Paused || m.gameState.Notice != "") {
		m.backToMenu = true
		if m.opts.Standalone {
			m.quitting = true
			return m, tea.Quit
		}
	}

	return m, nil
}

// handleMouse forwards pointer motion immediately and queues clicks as
// confirmations for the next tick.
func (m GameModel) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	ev := m.keyMapper.MapMouse(msg)
	if ev.Click {
		m.inputFrame.Set(core.ActionConfirm)
	}
	if ev.Moved {
		if pg, ok := m.game.(registry.PointerGame); ok {
			pg.PointerMove(ev.Col, ev.Row)
		}
	}
	return m, nil
}

// handleResize fits the game to the new screen size. Games that cannot keep
// their round across a resize are reset.
func (m GameModel) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	if rg, ok := m.game.(registry.ResizableGame); ok {
		rg.Resize(m.config)
	} else {
		m.game.Reset(m.config)
	}
	m.gameState = m.game.State()
	return m, nil
}

// handleTick processes simulation ticks.
func (m GameModel) handleTick() (tea.Model, tea.Cmd) {
	if m.quitting || m.backToMenu {
		return m, nil
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	if result.Round != nil {
		m.recordRound(*result.Round)
	}

	// Clear input for next frame
	m.inputFrame.Clear()

	return m, tickCmd(m.config.TickInterval())
}

// recordRound logs a finished round and saves it to the journal.
func (m GameModel) recordRound(r core.RoundResult) {
	storage.Recorder{
		Store:  m.store,
		Logger: m.opts.Logger,
		GameID: m.game.ID(),
		Player: m.opts.Player,
	}.Record(r)
}

// saveScreenshot saves the current screen to a file.
func (m *GameModel) saveScreenshot() {
	m.game.Render(m.screen)

	dir := filepath.Join(os.Getenv("HOME"), ".arkanoid", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp)
	path := filepath.Join(dir, filename)

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// Run starts a standalone Bubble Tea program for the given game.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) error {
	model := NewGameModel(game, store, cfg, GameOptions{
		Player:     LocalPlayer,
		Logger:     logger,
		Standalone: true,
	})

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err := p.Run()
	return err
}
