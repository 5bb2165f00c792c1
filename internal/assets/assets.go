// Package assets registers the built-in glyph sprites. Import it for its
// side effects:
//
//	import _ "github.com/vovakirdan/tui-survivor/internal/assets"
package assets

import (
	"github.com/vovakirdan/tui-survivor/internal/core"
	"github.com/vovakirdan/tui-survivor/internal/games/survivor"
	"github.com/vovakirdan/tui-survivor/internal/registry"
)

func frames(rows ...[]string) core.Animation {
	anim := make(core.Animation, len(rows))
	for i, r := range rows {
		anim[i] = core.Frame{Rows: r}
	}
	return anim
}

func init() {
	registry.Register(registry.Sprite{
		ID:    survivor.SpritePlayer,
		Title: "Wizard",
		Kind:  registry.KindCharacter,
		Color: core.ColorCyan,
		Animations: map[string]core.Animation{
			survivor.AnimIdle: frames(
				[]string{" @ ", "/|\\"},
				[]string{" @ ", "\\|/"},
			),
			survivor.AnimRun: frames(
				[]string{" @>", "/| "},
				[]string{" @>", " |\\"},
			),
		},
	})

	registry.Register(registry.Sprite{
		ID:    "orc",
		Title: "Orc",
		Kind:  registry.KindEnemy,
		Color: core.ColorGreen,
		Animations: map[string]core.Animation{
			survivor.AnimWalk: frames(
				[]string{"(oo)", "/||\\"},
				[]string{"(oo)", "\\||/"},
			),
		},
	})

	registry.Register(registry.Sprite{
		ID:    "demon",
		Title: "Demon",
		Kind:  registry.KindEnemy,
		Color: core.ColorRed,
		Animations: map[string]core.Animation{
			survivor.AnimWalk: frames(
				[]string{"}><{", " /\\ "},
				[]string{"}><{", " \\/ "},
			),
		},
	})

	registry.Register(registry.Sprite{
		ID:    survivor.SpriteBullet,
		Title: "Bullet",
		Kind:  registry.KindProjectile,
		Color: core.ColorWhite,
		Animations: map[string]core.Animation{
			survivor.AnimFly: frames([]string{"•"}),
		},
	})

	registry.Register(registry.Sprite{
		ID:    survivor.SpriteFireball,
		Title: "Fireball",
		Kind:  registry.KindProjectile,
		Color: core.ColorOrange,
		Animations: map[string]core.Animation{
			survivor.AnimFly: frames(
				[]string{"*"},
				[]string{"+"},
				[]string{"x"},
			),
		},
	})

	registry.Register(registry.Sprite{
		ID:    survivor.SpriteCoin,
		Title: "Coin",
		Kind:  registry.KindItem,
		Color: core.ColorYellow,
		Animations: map[string]core.Animation{
			survivor.AnimSpin: frames(
				[]string{"o"},
				[]string{"O"},
				[]string{"0"},
				[]string{"O"},
			),
		},
	})

	registry.Register(registry.Sprite{
		ID:    survivor.SpriteWand,
		Title: "Fire Wand",
		Kind:  registry.KindItem,
		Color: core.ColorPurple,
		Animations: map[string]core.Animation{
			survivor.AnimIdle: frames(
				[]string{"-*"},
				[]string{"-+"},
			),
		},
	})
}
