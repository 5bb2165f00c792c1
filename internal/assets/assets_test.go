package assets

import (
	"testing"

	"github.com/vovakirdan/tui-survivor/internal/config"
	"github.com/vovakirdan/tui-survivor/internal/core"
	"github.com/vovakirdan/tui-survivor/internal/games/survivor"
	"github.com/vovakirdan/tui-survivor/internal/registry"
)

func TestDefaultConfigHasArt(t *testing.T) {
	if _, err := survivor.New(config.DefaultSurvivorConfig(), registry.Table{}, nil); err != nil {
		t.Fatalf("built-in sprites do not cover the default config: %v", err)
	}
}

func TestFramesAreWellFormed(t *testing.T) {
	for _, info := range registry.List() {
		s, err := registry.Lookup(info.ID)
		if err != nil {
			t.Fatal(err)
		}
		for name, anim := range s.Animations {
			if len(anim) == 0 {
				t.Errorf("%s/%s: no frames", s.ID, name)
			}
			for i, f := range anim {
				if len(f.Rows) == 0 || f.Cols() == 0 {
					t.Errorf("%s/%s frame %d is empty", s.ID, name, i)
				}
				opaque := false
				for row := range f.Rows {
					for col := 0; col < f.Cols(); col++ {
						opaque = opaque || f.Opaque(col, row)
					}
				}
				if !opaque {
					t.Errorf("%s/%s frame %d has an empty mask", s.ID, name, i)
				}
			}
		}
	}
}

func TestBuiltInGamePlays(t *testing.T) {
	g, err := survivor.New(config.DefaultSurvivorConfig(), registry.Table{}, nil)
	if err != nil {
		t.Fatal(err)
	}
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 3})

	in := core.NewInputFrame()
	in.Set(core.ActionFireNearest)
	in.Set(core.ActionSelect1)
	for i := 0; i < 600; i++ {
		g.Step(in)
	}
	if g.State().Ticks == 0 {
		t.Error("game did not advance")
	}
}
