package tui

import (
	"context"
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/mock/gomock"

	_ "github.com/vovakirdan/tui-survivor/internal/assets"
	"github.com/vovakirdan/tui-survivor/internal/config"
	"github.com/vovakirdan/tui-survivor/internal/core"
	"github.com/vovakirdan/tui-survivor/internal/games/survivor"
	"github.com/vovakirdan/tui-survivor/internal/platform/tui/mocks"
	"github.com/vovakirdan/tui-survivor/internal/registry"
	"github.com/vovakirdan/tui-survivor/internal/storage"
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func newTestModel(t *testing.T, opts ModelOptions) Model {
	t.Helper()
	g, err := survivor.New(config.DefaultSurvivorConfig(), registry.Table{}, nil)
	if err != nil {
		t.Fatalf("survivor.New: %v", err)
	}
	if opts.Sprites == nil {
		opts.Sprites = registry.Table{}
	}
	return NewModel(g, core.RuntimeConfig{ScreenW: 100, ScreenH: 30, TickRate: 60, Seed: 7}, opts)
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return nm
}

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()
	tests := []struct {
		msg    tea.KeyMsg
		action core.Action
		quit   bool
	}{
		{runes("a"), core.ActionLeft, false},
		{tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight, false},
		{runes("w"), core.ActionUp, false},
		{tea.KeyMsg{Type: tea.KeyDown}, core.ActionDown, false},
		{tea.KeyMsg{Type: tea.KeySpace}, core.ActionFireNearest, false},
		{runes("2"), core.ActionSelect2, false},
		{runes("r"), core.ActionRestart, false},
		{runes("p"), core.ActionPause, false},
		{runes("q"), core.ActionQuit, true},
		{tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, true},
		{runes("x"), core.ActionNone, false},
	}

	for _, tt := range tests {
		t.Run(tt.msg.String(), func(t *testing.T) {
			action, quit := km.MapKey(tt.msg)
			if action != tt.action || quit != tt.quit {
				t.Errorf("MapKey(%q) = %v, %v; expected %v, %v", tt.msg.String(), action, quit, tt.action, tt.quit)
			}
		})
	}
}

func TestMapKeyToMenuAction(t *testing.T) {
	km := NewKeyMapper()
	tests := []struct {
		msg  tea.KeyMsg
		want MenuAction
	}{
		{tea.KeyMsg{Type: tea.KeyUp}, MenuActionUp},
		{runes("j"), MenuActionDown},
		{tea.KeyMsg{Type: tea.KeyEnter}, MenuActionSelect},
		{tea.KeyMsg{Type: tea.KeyEsc}, MenuActionBack},
		{tea.KeyMsg{Type: tea.KeyTab}, MenuActionScoreboard},
		{runes("q"), MenuActionQuit},
		{runes("z"), MenuActionNone},
	}
	for _, tt := range tests {
		if got := km.MapKeyToMenuAction(tt.msg); got != tt.want {
			t.Errorf("MapKeyToMenuAction(%q) = %v, expected %v", tt.msg.String(), got, tt.want)
		}
	}
}

func TestHeldKeysDecay(t *testing.T) {
	m := newTestModel(t, ModelOptions{})
	m = update(t, m, runes("a"))

	if !m.frame().Has(core.ActionLeft) {
		t.Fatal("left should be held after the key press")
	}
	for i := 0; i < m.holdTicks; i++ {
		m = update(t, m, TickMsg{})
	}
	if m.frame().Has(core.ActionLeft) {
		t.Error("left should be released once the hold window passes")
	}
}

func TestOppositeDirectionCancels(t *testing.T) {
	m := newTestModel(t, ModelOptions{})
	m = update(t, m, runes("a"))
	m = update(t, m, runes("d"))

	in := m.frame()
	if in.Has(core.ActionLeft) || !in.Has(core.ActionRight) {
		t.Errorf("expected only right held, got %v", in.Actions)
	}
}

func TestOneShotActionsLastOneTick(t *testing.T) {
	m := newTestModel(t, ModelOptions{})
	m = update(t, m, runes("p"))
	m = update(t, m, TickMsg{})
	if m.State().Run != core.StatePaused {
		t.Fatalf("state = %v, expected paused", m.State().Run)
	}
	m = update(t, m, TickMsg{})
	if m.State().Run != core.StatePaused {
		t.Error("pause should not toggle again without a new key press")
	}
}

func TestMouseAimsInWorldUnits(t *testing.T) {
	m := newTestModel(t, ModelOptions{})
	world := m.game.Config().World
	vp := NewViewport(100, 30, core.V(world.Width, world.Height))

	m = update(t, m, tea.MouseMsg{X: vp.OriginX + 10, Y: vp.OriginY + 3, Button: tea.MouseButtonLeft, Action: tea.MouseActionPress})
	in := m.frame()
	if !in.Has(core.ActionFireAt) {
		t.Fatal("left press should fire")
	}
	want := core.V(10.5*core.GlyphW, 3.5*core.GlyphH)
	if in.Aim != want {
		t.Errorf("aim = %v, expected %v", in.Aim, want)
	}

	m = update(t, m, tea.MouseMsg{X: vp.OriginX + 10, Y: vp.OriginY + 3, Button: tea.MouseButtonNone, Action: tea.MouseActionRelease})
	if m.frame().Has(core.ActionFireAt) {
		t.Error("release should stop firing")
	}
}

func TestViewportRoundTrip(t *testing.T) {
	vp := NewViewport(100, 30, core.V(960, 540))
	if vp.Cols != 80 || vp.Rows != 23 {
		t.Fatalf("viewport size = %dx%d, expected 80x23", vp.Cols, vp.Rows)
	}
	if vp.OriginX != 10 || vp.OriginY != hudRows+3 {
		t.Errorf("origin = (%d, %d)", vp.OriginX, vp.OriginY)
	}
	for _, c := range [][2]int{{10, 4}, {50, 12}, {89, 26}} {
		x, y := vp.ToCell(vp.ToWorld(c[0], c[1]))
		if x != c[0] || y != c[1] {
			t.Errorf("round trip of %v gave (%d, %d)", c, x, y)
		}
	}

	small := NewViewport(60, 10, core.V(960, 540))
	if small.OriginX != 0 || small.OriginY != hudRows {
		t.Errorf("small terminal origin = (%d, %d), expected (0, %d)", small.OriginX, small.OriginY, hudRows)
	}
}

func TestRunSavedOnceOnGameOver(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	rec := mocks.NewMockRunRecorder(ctrl)
	rec.EXPECT().
		SaveRun(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, run storage.Run) (string, error) {
			if run.Difficulty != "hard" || run.Player != "ana" {
				t.Errorf("unexpected run %+v", run)
			}
			if run.Ticks != 1 || run.Level != 1 {
				t.Errorf("run stats = %+v", run)
			}
			return "run-1", nil
		}).
		Times(1)

	m := newTestModel(t, ModelOptions{Recorder: rec, Difficulty: "hard", Player: "ana"})
	m.game.Player().Health = 0

	m = update(t, m, TickMsg{})
	if !m.State().GameOver() {
		t.Fatalf("state = %v, expected game over", m.State().Run)
	}
	if m.LastRunID() != "run-1" {
		t.Errorf("LastRunID = %q", m.LastRunID())
	}
	m = update(t, m, TickMsg{})
	m = update(t, m, TickMsg{})
}

func TestSaveFailureKeepsPlaying(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	rec := mocks.NewMockRunRecorder(ctrl)
	rec.EXPECT().SaveRun(gomock.Any(), gomock.Any()).Return("", errors.New("disk full")).Times(1)

	m := newTestModel(t, ModelOptions{Recorder: rec})
	m.game.Player().Health = 0
	m = update(t, m, TickMsg{})

	if m.LastRunID() != "" {
		t.Errorf("LastRunID = %q after a failed save", m.LastRunID())
	}
	if m.IsQuitting() {
		t.Error("a failed save must not end the session")
	}
}

func TestRestartAfterGameOver(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	rec := mocks.NewMockRunRecorder(ctrl)
	rec.EXPECT().SaveRun(gomock.Any(), gomock.Any()).Return("id", nil).Times(2)

	m := newTestModel(t, ModelOptions{Recorder: rec})
	m.game.Player().Health = 0
	m = update(t, m, TickMsg{})

	m = update(t, m, runes("r"))
	m = update(t, m, TickMsg{})
	if m.State().Run != core.StatePlaying {
		t.Fatalf("state = %v after restart", m.State().Run)
	}
	if m.State().Health != m.State().MaxHealth {
		t.Error("restart should heal the player")
	}

	// A second death is recorded again.
	m.game.Player().Health = 0
	m = update(t, m, TickMsg{})
	if !m.State().GameOver() {
		t.Error("expected a second game over")
	}
}

func TestBackToMenu(t *testing.T) {
	m := newTestModel(t, ModelOptions{Embedded: true})
	m = update(t, m, runes("b"))
	if m.BackToMenu() {
		t.Fatal("b should do nothing while playing")
	}

	m = update(t, m, runes("p"))
	m = update(t, m, TickMsg{})
	m = update(t, m, runes("b"))
	if !m.BackToMenu() {
		t.Error("b should return to the menu while paused")
	}

	standalone := newTestModel(t, ModelOptions{})
	standalone = update(t, standalone, runes("p"))
	standalone = update(t, standalone, TickMsg{})
	standalone = update(t, standalone, runes("b"))
	if standalone.BackToMenu() {
		t.Error("a standalone model has no menu to return to")
	}
}

func TestQuit(t *testing.T) {
	m := newTestModel(t, ModelOptions{})
	next, cmd := m.Update(runes("q"))
	if cmd == nil {
		t.Fatal("quit should return a command")
	}
	if !next.(Model).IsQuitting() {
		t.Error("model should report quitting")
	}
	if next.(Model).View() != "" {
		t.Error("quitting model renders nothing")
	}
}

func TestViewDrawsHUDAndPlayer(t *testing.T) {
	m := newTestModel(t, ModelOptions{})
	m = update(t, m, TickMsg{})

	DrawScene(m.screen, m.game.Snapshot(), m.sprites)
	hud := m.screen.Row(0)
	if !strings.Contains(hud, "LV 1") || !strings.Contains(hud, "SCORE 0") {
		t.Errorf("HUD row = %q", hud)
	}
	if !strings.Contains(m.screen.String(), "@") {
		t.Error("player sprite should be drawn")
	}
	if m.View() == "" {
		t.Error("View should render the screen")
	}
}

func TestOverlays(t *testing.T) {
	m := newTestModel(t, ModelOptions{})
	m = update(t, m, runes("p"))
	m = update(t, m, TickMsg{})
	DrawScene(m.screen, m.game.Snapshot(), m.sprites)
	if !strings.Contains(m.screen.String(), "PAUSED") {
		t.Error("pause overlay missing")
	}

	m = update(t, m, runes("p"))
	m = update(t, m, TickMsg{})
	m.game.Player().Health = 0
	m = update(t, m, TickMsg{})
	DrawScene(m.screen, m.game.Snapshot(), m.sprites)
	if !strings.Contains(m.screen.String(), "GAME OVER") {
		t.Error("game over overlay missing")
	}
}

func TestDrawSceneTooSmall(t *testing.T) {
	m := newTestModel(t, ModelOptions{})
	s := core.NewScreen(20, 5)
	DrawScene(s, m.game.Snapshot(), m.sprites)
	if !strings.Contains(s.String(), "too small") {
		t.Errorf("screen = %q", s.String())
	}
}
