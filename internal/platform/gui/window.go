package gui

import (
	"image/color"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/arkanoid/internal/config"
	"github.com/vovakirdan/arkanoid/internal/core"
	"github.com/vovakirdan/arkanoid/internal/games/arkanoid"
	"github.com/vovakirdan/arkanoid/internal/storage"
)

// Debug font cell size used to centre overlay text.
const (
	glyphW = 6
	glyphH = 16
)

// Options configures a window run.
type Options struct {
	Seed   int64
	Pace   time.Duration // Zero uses the configured pace
	Store  *storage.Store
	Logger *log.Logger
	Player string
}

// Window is an ebiten.Game that drives one session, one tick per update.
type Window struct {
	session  *arkanoid.Session
	surface  *Surface
	recorder storage.Recorder

	notice  string
	paused  bool
	cursorX int
}

// NewWindow creates the session and draws the first arena.
func NewWindow(cfg config.ArkanoidConfig, opts Options) (*Window, error) {
	w := &Window{
		recorder: storage.Recorder{
			Store:  opts.Store,
			Logger: opts.Logger,
			GameID: "arkanoid",
			Player: opts.Player,
		},
		cursorX: -1,
	}

	session, err := arkanoid.NewSession(cfg, opts.Seed, w)
	if err != nil {
		return nil, err
	}
	w.session = session

	palette := session.Palette()
	w.surface = NewSurface(session.Arena(), palette.Background, LoadAssets(cfg, palette, opts.Logger))
	session.Draw(w.surface)
	return w, nil
}

// Notify shows the end-of-round message and records the round.
// The session calls it before resetting, so its counters still
// describe the finished round.
func (w *Window) Notify(state arkanoid.State) {
	w.notice = arkanoid.NoticeLost
	if state == arkanoid.StateWon {
		w.notice = arkanoid.NoticeWon
	}
	w.recorder.Record(core.RoundResult{
		Outcome: string(state),
		Ticks:   w.session.Ticks(),
		Cleared: w.session.Cleared(),
		Seed:    w.session.Seed(),
	})
}

// Update runs one tick.
func (w *Window) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}

	confirm := inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) ||
		inpututil.IsKeyJustPressed(ebiten.KeyEnter) ||
		inpututil.IsKeyJustPressed(ebiten.KeySpace)

	if w.notice != "" {
		if confirm {
			w.notice = ""
		}
		return nil
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		w.paused = !w.paused
	}
	if w.paused {
		return nil
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		w.session.Reset()
		w.session.Draw(w.surface)
		return nil
	}

	// Layout matches the arena, so cursor coordinates are arena units.
	if x, _ := ebiten.CursorPosition(); x != w.cursorX {
		w.cursorX = x
		w.session.MovePaddle(x, w.surface)
	}

	w.session.Tick(w.surface)
	return nil
}

// Draw copies the arena to the screen and adds any overlay.
func (w *Window) Draw(screen *ebiten.Image) {
	screen.DrawImage(w.surface.Image(), nil)

	switch {
	case w.notice != "":
		w.drawOverlay(screen, w.notice, "Click or press Enter to play again")
	case w.paused:
		w.drawOverlay(screen, "PAUSED", "Press P to resume")
	}
}

// drawOverlay dims the arena and centres lines of text on it.
func (w *Window) drawOverlay(screen *ebiten.Image, lines ...string) {
	arena := w.session.Arena()
	vector.DrawFilledRect(screen, 0, 0, float32(arena), float32(arena), color.RGBA{A: 160}, false)

	y := (arena - len(lines)*glyphH) / 2
	for _, line := range lines {
		x := (arena - len(line)*glyphW) / 2
		ebitenutil.DebugPrintAt(screen, line, x, y)
		y += glyphH
	}
}

// Layout keeps the logical screen equal to the arena.
func (w *Window) Layout(_, _ int) (int, int) {
	arena := w.session.Arena()
	return arena, arena
}

// TPS converts a tick interval to ticks per second.
func TPS(pace time.Duration) int {
	if pace <= 0 {
		pace = core.DefaultPace
	}
	return max(int(time.Second/pace), 1)
}

// Run opens the window and plays until it is closed.
func Run(cfg config.ArkanoidConfig, opts Options) error {
	w, err := NewWindow(cfg, opts)
	if err != nil {
		return err
	}

	pace := opts.Pace
	if pace <= 0 {
		pace = cfg.Pace()
	}

	arena := w.session.Arena()
	ebiten.SetWindowSize(arena, arena)
	ebiten.SetWindowTitle("Arkanoid")
	ebiten.SetTPS(TPS(pace))

	if opts.Logger != nil {
		opts.Logger.Info("window started", "arena", arena, "tps", TPS(pace), "seed", opts.Seed)
	}
	return ebiten.RunGame(w)
}
