package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-survivor/internal/config"
	"github.com/vovakirdan/tui-survivor/internal/core"
	"github.com/vovakirdan/tui-survivor/internal/registry"
)

func newTestSession(t *testing.T) SessionModel {
	t.Helper()
	return NewSessionModel(SessionOptions{
		Store:   openStore(t),
		Game:    config.DefaultSurvivorConfig(),
		Sprites: registry.Table{},
		User:    "ana",
	}, core.RuntimeConfig{ScreenW: 100, ScreenH: 30, TickRate: 60})
}

func sessionUpdate(t *testing.T, m SessionModel, msg tea.Msg) SessionModel {
	t.Helper()
	next, _ := m.Update(msg)
	sm, ok := next.(SessionModel)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return sm
}

func TestSessionMenuToGameAndBack(t *testing.T) {
	m := newTestSession(t)
	m = sessionUpdate(t, m, tea.KeyMsg{Type: tea.KeyUp})
	m = sessionUpdate(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.screen != screenGame {
		t.Fatalf("screen = %v, expected game", m.screen)
	}
	if m.game.difficulty != "easy" || m.game.player != "ana" {
		t.Errorf("game model difficulty=%q player=%q", m.game.difficulty, m.game.player)
	}
	wantHealth := config.DefaultSurvivorConfig().Player.MaxHealth + 2
	if got := m.game.State().MaxHealth; got != wantHealth {
		t.Errorf("easy max health = %d, expected %d", got, wantHealth)
	}

	m = sessionUpdate(t, m, TickMsg{})
	m = sessionUpdate(t, m, runes("p"))
	m = sessionUpdate(t, m, TickMsg{})
	m = sessionUpdate(t, m, runes("b"))
	if m.screen != screenMenu {
		t.Errorf("screen = %v, expected menu after b", m.screen)
	}
	if m.View() == "" {
		t.Error("menu should render")
	}
}

func TestSessionScoreboard(t *testing.T) {
	m := newTestSession(t)
	m = sessionUpdate(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.screen != screenScores {
		t.Fatalf("screen = %v, expected scores", m.screen)
	}
	m = sessionUpdate(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.screen != screenMenu {
		t.Errorf("screen = %v, expected menu", m.screen)
	}
}

func TestSessionQuit(t *testing.T) {
	m := newTestSession(t)
	next, cmd := m.Update(runes("q"))
	if cmd == nil || !next.(SessionModel).quitting {
		t.Error("q in the menu should end the session")
	}
}

func TestSessionResize(t *testing.T) {
	m := newTestSession(t)
	m = sessionUpdate(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})
	if m.config.ScreenW != 120 || m.config.ScreenH != 40 {
		t.Errorf("config = %+v", m.config)
	}
}
