package arkanoid

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/arkanoid/internal/config"
	"github.com/vovakirdan/arkanoid/internal/core"
	"github.com/vovakirdan/arkanoid/internal/registry"
)

func newTestGame(t *testing.T, seed int64) *Game {
	t.Helper()
	g := New()
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, Pace: core.DefaultPace, Seed: seed})
	if g.Session() == nil {
		t.Fatal("Reset() should create a session")
	}
	return g
}

func frame(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

// forceLoss arranges for the next tick to end the round.
func forceLoss(g *Game) {
	s := g.Session()
	placeBall(s, 300, 600, 2, 2)
	s.grid.SetBlocked(0, 0, true)
	s.paddle.X = 0
}

func TestGameRegistered(t *testing.T) {
	if !registry.Exists("arkanoid") {
		t.Fatal("arkanoid should be registered")
	}
	g, err := registry.Create("arkanoid")
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	if _, ok := g.(registry.PointerGame); !ok {
		t.Error("arkanoid should follow the pointer")
	}
}

func TestGameLayout(t *testing.T) {
	g := newTestGame(t, 1)

	if g.screenTooSmall {
		t.Fatal("80x24 should be large enough")
	}
	if g.arenaRows != 20 || g.arenaCols != 40 {
		t.Errorf("arena = %dx%d cells, expected 40x20", g.arenaCols, g.arenaRows)
	}
	if g.arenaX != 19 || g.arenaY != 1 {
		t.Errorf("arena origin = (%d, %d), expected (19, 1)", g.arenaX, g.arenaY)
	}
}

func TestGameScreenTooSmall(t *testing.T) {
	g := New()
	g.Reset(core.RuntimeConfig{ScreenW: 20, ScreenH: 10, Seed: 1})

	g.Step(frame())
	if g.Session().Ticks() != 0 {
		t.Error("a too small screen should not tick")
	}

	dst := core.NewScreen(20, 10)
	g.Render(dst)
	if !strings.Contains(dst.String(), "Window too small") {
		t.Error("expected a too small message")
	}
}

func TestGamePause(t *testing.T) {
	g := newTestGame(t, 1)

	res := g.Step(frame(core.ActionPause))
	if !res.State.Paused {
		t.Fatal("game should be paused")
	}
	ticks := g.Session().Ticks()
	g.Step(frame())
	if g.Session().Ticks() != ticks {
		t.Error("a paused game should not tick")
	}

	res = g.Step(frame(core.ActionPause))
	if res.State.Paused {
		t.Error("second pause should resume")
	}
	if g.Session().Ticks() != ticks+1 {
		t.Error("resumed game should tick")
	}
}

func TestGameRoundEndWaitsForConfirm(t *testing.T) {
	g := newTestGame(t, 1)
	forceLoss(g)

	res := g.Step(frame())
	if res.Round == nil {
		t.Fatal("round result expected on the losing tick")
	}
	if res.Round.Outcome != string(StateLost) || res.Round.Ticks != 1 {
		t.Errorf("unexpected round result %+v", *res.Round)
	}
	if res.State.Notice != NoticeLost {
		t.Errorf("notice = %q, expected %q", res.State.Notice, NoticeLost)
	}

	// The new round is ready but frozen behind the notice.
	res = g.Step(frame(core.ActionLeft))
	if res.Round != nil || g.Session().Ticks() != 0 {
		t.Error("game should not tick while the notice is shown")
	}

	res = g.Step(frame(core.ActionConfirm))
	if res.State.Notice != "" {
		t.Error("confirm should dismiss the notice")
	}
	g.Step(frame())
	if g.Session().Ticks() != 1 {
		t.Errorf("game should tick after the notice, ticks=%d", g.Session().Ticks())
	}
}

func TestGameWinNotice(t *testing.T) {
	g := newTestGame(t, 1)
	s := g.Session()
	placeBall(s, 300, 200, -2, -2)
	s.grid.SetBlocked(3, 6, true)

	res := g.Step(frame())
	if res.Round == nil || res.Round.Outcome != string(StateWon) || res.Round.Cleared != 1 {
		t.Fatalf("expected a won round with one block cleared, got %+v", res.Round)
	}
	if res.State.Notice != NoticeWon {
		t.Errorf("notice = %q, expected %q", res.State.Notice, NoticeWon)
	}
}

func TestGamePointerMove(t *testing.T) {
	g := newTestGame(t, 1)

	// Column 20 of a 40 column arena is centred on x=333.
	g.PointerMove(g.arenaX+1+20, 10)
	if got := g.Session().Paddle().X; got != 258 {
		t.Errorf("paddle x = %d, expected 258", got)
	}

	// Far left is outside the band.
	g.PointerMove(g.arenaX+1, 10)
	if got := g.Session().Paddle().X; got != 258 {
		t.Errorf("rejected move changed paddle x to %d", got)
	}

	g.Step(frame(core.ActionPause))
	g.PointerMove(g.arenaX+1+30, 10)
	if got := g.Session().Paddle().X; got != 258 {
		t.Errorf("pointer should be ignored while paused, paddle x = %d", got)
	}
}

func TestGameNudge(t *testing.T) {
	g := newTestGame(t, 1)

	g.Step(frame(core.ActionRight))
	if got := g.Session().Paddle().X; got != 275 {
		t.Errorf("paddle x = %d after nudge right, expected 275", got)
	}

	// Nudging into the wall parks the paddle one unit away from it.
	g.Session().Paddle().X = 1
	g.Step(frame(core.ActionLeft))
	if got := g.Session().Paddle().X; got != 1 {
		t.Errorf("paddle x = %d after nudge into wall, expected 1", got)
	}
}

func TestGameRestart(t *testing.T) {
	g := newTestGame(t, 1)
	for range 30 {
		g.Step(frame())
	}
	g.Step(frame(core.ActionPause))

	res := g.Step(frame(core.ActionRestart))
	if res.State.Paused {
		t.Error("restart should unpause")
	}
	if g.Session().Ticks() != 0 {
		t.Errorf("restart should start a fresh round, ticks=%d", g.Session().Ticks())
	}
}

func TestGameRender(t *testing.T) {
	g := newTestGame(t, 1)
	dst := core.NewScreen(80, 24)
	g.Render(dst)

	if !strings.Contains(dst.Row(0), "ARKANOID") {
		t.Errorf("HUD missing title: %q", dst.Row(0))
	}
	if dst.Get(19, 1) != '┌' || dst.Get(60, 22) != '┘' {
		t.Error("arena border not drawn where expected")
	}
	if !strings.ContainsRune(dst.String(), '▀') {
		t.Error("paddle glyph not rendered")
	}
	if !strings.ContainsRune(dst.String(), '●') {
		t.Error("ball glyph not rendered")
	}

	g.Step(frame(core.ActionPause))
	g.Render(dst)
	if !strings.Contains(dst.String(), "PAUSED") {
		t.Error("pause overlay not rendered")
	}
}

func TestGameDeterminism(t *testing.T) {
	inputs := make([]core.InputFrame, 2000)
	for i := range inputs {
		switch {
		case i%7 == 0:
			inputs[i] = frame(core.ActionLeft)
		case i%5 == 0:
			inputs[i] = frame(core.ActionRight)
		case i%97 == 0:
			inputs[i] = frame(core.ActionConfirm)
		default:
			inputs[i] = frame()
		}
	}

	run := func() Snapshot {
		g := newTestGame(t, 12345)
		for _, in := range inputs {
			g.Step(in)
		}
		return g.Snapshot()
	}

	a, b := run(), run()
	if a.Hash() != b.Hash() {
		t.Errorf("determinism failed: hashes differ. Run1=%d, Run2=%d", a.Hash(), b.Hash())
	}
	if a.Tick != b.Tick || a.PaddleX != b.PaddleX {
		t.Error("determinism failed: tick or paddle differ")
	}
}

// useConfig restores package config state when the test ends.
func useConfig(t *testing.T) {
	t.Helper()
	t.Cleanup(func() {
		configPath = ""
		preset = nil
	})
}

func TestGameResetReportsConfigErrors(t *testing.T) {
	tests := []struct {
		name  string
		setup func(t *testing.T)
	}{
		{
			name: "unreadable file",
			setup: func(t *testing.T) {
				SetConfigPath(filepath.Join(t.TempDir(), "missing.yaml"))
			},
		},
		{
			name: "invalid preset",
			setup: func(*testing.T) {
				cfg := config.DefaultArkanoidConfig()
				cfg.Ball.Speed = cfg.Board.CellSize
				SetConfig(cfg)
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			useConfig(t)
			tc.setup(t)

			g := New()
			g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, Seed: 1})

			if g.Err() == nil {
				t.Fatal("Err() should report the config failure")
			}
			if g.Session() != nil {
				t.Error("no session should start from a bad config")
			}

			g.Step(frame(core.ActionRestart))
			g.PointerMove(40, 10)

			dst := core.NewScreen(80, 24)
			g.Render(dst)
			if !strings.Contains(dst.String(), "Invalid config") {
				t.Error("expected the config error on screen")
			}
		})
	}
}

func TestGameResetUsesPresetConfig(t *testing.T) {
	useConfig(t)
	SetConfigPath(filepath.Join(t.TempDir(), "missing.yaml"))

	cfg := config.DefaultArkanoidConfig()
	cfg.Board.Size = 10
	SetConfig(cfg)

	g := newTestGame(t, 1)
	if g.Err() != nil {
		t.Fatalf("Err() = %v, expected nil", g.Err())
	}
	if size := g.Session().Config().Board.Size; size != 10 {
		t.Errorf("board size = %d, expected the preset 10", size)
	}
}

func TestGameResizeKeepsRound(t *testing.T) {
	tests := []struct {
		name     string
		w, h     int
		tooSmall bool
		rows     int
	}{
		{"larger", 120, 40, false, 36},
		{"smaller", 60, 20, false, 16},
		{"too small", 20, 10, true, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := newTestGame(t, 7)
			for range 20 {
				g.Step(frame())
			}
			g.Step(frame(core.ActionPause))
			before := g.Snapshot()

			g.Resize(core.RuntimeConfig{ScreenW: tc.w, ScreenH: tc.h, Pace: core.DefaultPace, Seed: 99})

			after := g.Snapshot()
			if before.Hash() != after.Hash() {
				t.Error("resize should keep the round")
			}
			if after.Seed != 7 {
				t.Errorf("seed = %d, expected the round's seed 7", after.Seed)
			}
			if !g.State().Paused {
				t.Error("resize should keep the pause")
			}
			if g.screenTooSmall != tc.tooSmall {
				t.Errorf("screenTooSmall = %v, expected %v", g.screenTooSmall, tc.tooSmall)
			}
			if !tc.tooSmall && g.arenaRows != tc.rows {
				t.Errorf("arena rows = %d, expected %d", g.arenaRows, tc.rows)
			}

			// Back to the original size resumes the same round
			g.Resize(core.RuntimeConfig{ScreenW: 80, ScreenH: 24})
			g.Step(frame(core.ActionPause))
			if g.Session().Ticks() != int(before.Tick)+1 {
				t.Errorf("ticks = %d, expected %d", g.Session().Ticks(), before.Tick+1)
			}
		})
	}
}

func TestGameResizeWithoutRoundResets(t *testing.T) {
	g := New()
	g.Resize(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, Seed: 3})

	if g.Session() == nil {
		t.Fatal("Resize() before Reset() should start a round")
	}
	if g.Session().Seed() != 3 {
		t.Errorf("seed = %d, expected 3", g.Session().Seed())
	}
}
