package registry

import (
	"testing"

	"github.com/vovakirdan/tui-survivor/internal/core"
)

func TestRegisterAndLookup(t *testing.T) {
	Register(Sprite{
		ID:    "test-slime",
		Title: "Slime",
		Kind:  KindEnemy,
		Color: core.ColorGreen,
		Animations: map[string]core.Animation{
			"walk": {{Rows: []string{"o"}}, {Rows: []string{"O"}}},
		},
	})

	s, err := Lookup("test-slime")
	if err != nil {
		t.Fatalf("Lookup: %v", err)
	}
	if s.Title != "Slime" || len(s.Animations["walk"]) != 2 {
		t.Errorf("unexpected sprite %+v", s)
	}
	if !Exists("test-slime") {
		t.Error("Exists should report the registered sprite")
	}

	var tbl Table
	if got := tbl.Animation("test-slime", "walk"); len(got) != 2 {
		t.Errorf("Table.Animation frames = %d, expected 2", len(got))
	}
	if got := tbl.Animation("test-slime", "fly"); got != nil {
		t.Error("unknown animation should be nil")
	}
	if got := tbl.Animation("nope", "walk"); got != nil {
		t.Error("unknown sprite should be nil")
	}
	if tbl.Color("test-slime") != core.ColorGreen || tbl.Color("nope") != core.ColorDefault {
		t.Error("Table.Color mismatch")
	}

	found := false
	for _, info := range List() {
		if info.ID == "test-slime" {
			found = true
			if info.Frames != 2 || info.Kind != KindEnemy {
				t.Errorf("info = %+v", info)
			}
		}
	}
	if !found {
		t.Error("List should include the registered sprite")
	}
}

func TestLookupUnknown(t *testing.T) {
	if _, err := Lookup("does-not-exist"); err == nil {
		t.Error("expected an error for an unknown sprite")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register(Sprite{ID: "test-dup"})
	defer func() {
		if recover() == nil {
			t.Error("duplicate registration should panic")
		}
	}()
	Register(Sprite{ID: "test-dup"})
}
