package arkanoid

import (
	"fmt"

	"github.com/vovakirdan/arkanoid/internal/config"
	"github.com/vovakirdan/arkanoid/internal/core"
	"github.com/vovakirdan/arkanoid/internal/registry"
)

// Notice texts shown when a round ends
const (
	NoticeWon  = "You win!"
	NoticeLost = "Game over!"
)

var (
	// configPath stores the custom config path set via CLI
	configPath string
	// preset replaces file loading once the CLI has validated a config
	preset *config.ArkanoidConfig
)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetConfig makes every later Reset use cfg instead of loading the config
// file again.
func SetConfig(cfg config.ArkanoidConfig) {
	preset = &cfg
}

// LoadConfig loads and validates the configuration from the path set with
// SetConfigPath, falling back through the usual search locations.
func LoadConfig() (config.ArkanoidConfig, config.Source, error) {
	cfg, src, err := config.LoadArkanoid(configPath)
	if err != nil {
		return cfg, src, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, src, fmt.Errorf("%s config: %w", src, err)
	}
	return cfg, src, nil
}

// Game adapts a Session to the platform's fixed-tick game interface.
// The arena is drawn into a square character canvas centred on screen,
// two columns per row so cells look square in a terminal.
type Game struct {
	session *Session
	canvas  *core.Canvas
	surface *ScreenSurface
	runtime core.RuntimeConfig
	err     error // Why no session could be built

	paused  bool
	notice  string
	pending *core.RoundResult

	// Layout (computed from screen size)
	arenaX         int // Screen column of the arena's left border
	arenaY         int // Screen row of the arena's top border
	arenaCols      int
	arenaRows      int
	minScreenW     int
	minScreenH     int
	screenTooSmall bool
}

// New creates a new Arkanoid game instance.
func New() *Game {
	return &Game{}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "arkanoid"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Arkanoid"
}

// Reset builds a new session for the given screen. A config that fails to
// load or validate leaves the game without a session; Render shows the error
// and Err returns it.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.paused = false
	g.notice = ""
	g.pending = nil
	g.session = nil
	g.screenTooSmall = false

	cfg, err := loadConfig()
	if err != nil {
		g.err = err
		return
	}
	session, err := NewSession(cfg, runtime.Seed, g)
	if err != nil {
		g.err = err
		return
	}
	g.err = nil
	g.session = session
	g.layout()
}

// Resize fits the running round to a new screen size. The round, pause and
// pending notice carry over; only the canvas is rebuilt.
func (g *Game) Resize(runtime core.RuntimeConfig) {
	if g.session == nil {
		g.Reset(runtime)
		return
	}
	g.runtime.ScreenW = runtime.ScreenW
	g.runtime.ScreenH = runtime.ScreenH
	g.layout()
}

// layout rebuilds the canvas for the current screen and redraws the session.
func (g *Game) layout() {
	cfg := g.session.Config()
	g.calculateLayout(cfg.Board.Size)

	arena := g.session.Arena()
	g.canvas = core.NewCanvas(arena, arena, g.arenaCols, g.arenaRows)
	g.surface = NewScreenSurface(g.canvas, cfg, g.session.Palette())
	g.session.Draw(g.surface)
}

// loadConfig returns the config set with SetConfig, or loads one.
func loadConfig() (config.ArkanoidConfig, error) {
	if preset != nil {
		return *preset, nil
	}
	cfg, _, err := LoadConfig()
	return cfg, err
}

// Err reports why the last Reset could not start a round.
func (g *Game) Err() error {
	return g.err
}

// calculateLayout sizes the arena to the largest square that fits between
// the HUD row and the hint row.
func (g *Game) calculateLayout(boardSize int) {
	w, h := g.runtime.ScreenW, g.runtime.ScreenH

	// One row per cell at least, plus HUD, hint and two border rows.
	g.minScreenH = boardSize + 4
	g.minScreenW = 2*boardSize + 2
	g.screenTooSmall = w < g.minScreenW || h < g.minScreenH

	g.arenaRows = core.Max(core.Min(h-4, (w-2)/2), 1)
	g.arenaCols = 2 * g.arenaRows
	g.arenaX = (w - g.arenaCols - 2) / 2
	g.arenaY = 1
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.screenTooSmall || g.session == nil {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionRestart) {
		g.restart()
		return core.StepResult{State: g.State()}
	}

	// A finished round waits for acknowledgement
	if g.notice != "" {
		if in.Has(core.ActionConfirm) {
			g.notice = ""
		}
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionLeft) {
		g.nudge(-1)
	}
	if in.Has(core.ActionRight) {
		g.nudge(1)
	}

	g.session.Tick(g.surface)

	result := core.StepResult{State: g.State()}
	if g.pending != nil {
		result.Round = g.pending
		g.pending = nil
	}
	return result
}

// restart throws the current round away and starts a fresh one.
func (g *Game) restart() {
	g.paused = false
	g.notice = ""
	g.session.Reset()
	g.session.Draw(g.surface)
}

// nudge moves the paddle half a cell in dir, stopping short of the walls.
func (g *Game) nudge(dir int) {
	p := g.session.Paddle()
	arena := g.session.Arena()
	half := p.Width / 2
	target := p.CenterX() + dir*g.session.Config().Board.CellSize/2
	target = core.Clamp(target, half+1, arena-half-1)
	g.session.MovePaddle(target, g.surface)
}

// PointerMove moves the paddle under the pointer at screen (col, row).
// Only the column matters.
func (g *Game) PointerMove(col, _ int) {
	if g.screenTooSmall || g.session == nil || g.paused || g.notice != "" {
		return
	}
	x := g.canvas.LogicalX(col - g.arenaX - 1)
	g.session.MovePaddle(x, g.surface)
}

// Notify records the outcome of a finished round. It is called by the
// session before the next round is generated.
func (g *Game) Notify(state State) {
	switch state {
	case StateWon:
		g.notice = NoticeWon
	case StateLost:
		g.notice = NoticeLost
	default:
		return
	}
	g.pending = &core.RoundResult{
		Outcome: string(state),
		Ticks:   g.session.Ticks(),
		Cleared: g.session.Cleared(),
		Seed:    g.session.Seed(),
	}
}

// Session returns the underlying session.
func (g *Game) Session() *Session {
	return g.session
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.err != nil {
		dst.DrawTextCentered(dst.Height()/2-1, "Invalid config")
		dst.DrawTextCentered(dst.Height()/2+1, g.err.Error())
		return
	}
	if g.screenTooSmall {
		msg := "Window too small"
		hint := fmt.Sprintf("Need %dx%d", g.minScreenW, g.minScreenH)
		dst.DrawTextCentered(dst.Height()/2-1, msg)
		dst.DrawTextCentered(dst.Height()/2+1, hint)
		return
	}
	if g.session == nil {
		return
	}

	g.renderHUD(dst)

	border := core.NewRect(g.arenaX, g.arenaY, g.arenaCols+2, g.arenaRows+2)
	dst.DrawBox(border)
	dst.Blit(g.canvas.Screen(), g.arenaX+1, g.arenaY+1)

	dst.DrawTextCentered(dst.Height()-1, "Mouse/←→ move  P pause  R restart  Q quit")

	g.renderOverlay(dst)
}

// renderHUD draws the title, remaining blocks and round seed.
func (g *Game) renderHUD(dst *core.Screen) {
	dst.DrawText(1, 0, "ARKANOID")

	blocks := fmt.Sprintf("Blocks: %d", g.session.Grid().CountBlocked())
	dst.DrawTextCentered(0, blocks)

	seed := fmt.Sprintf("Seed: %d", g.session.Seed())
	dst.DrawText(dst.Width()-len(seed)-1, 0, seed)
}

// renderOverlay draws modal messages.
func (g *Game) renderOverlay(dst *core.Screen) {
	switch {
	case g.notice != "":
		g.drawCenteredBox(dst, g.notice, "Press Enter or click to play again")
	case g.paused:
		g.drawCenteredBox(dst, "PAUSED", "Press P to resume")
	}
}

// drawCenteredBox draws a centered message box.
func (g *Game) drawCenteredBox(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	titleLen := len([]rune(title))
	subtitleLen := len([]rune(subtitle))

	boxW := core.Max(titleLen, subtitleLen) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	dst.DrawText(boxX+(boxW-titleLen)/2, boxY+1, title)
	dst.DrawText(boxX+(boxW-subtitleLen)/2, boxY+3, subtitle)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Paused: g.paused,
		Notice: g.notice,
	}
}

func init() {
	registry.Register("arkanoid", func() registry.Game {
		return New()
	})
}
