package survivor

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-survivor/internal/config"
	"github.com/vovakirdan/tui-survivor/internal/core"
)

func TestWeightedSample(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	items := []string{"a", "b", "c", "d", "e"}
	one := func(string) float64 { return 1 }

	got := weightedSample(rng, items, one, 3)
	if len(got) != 3 {
		t.Fatalf("len = %d, expected 3", len(got))
	}
	seen := map[string]bool{}
	for _, it := range got {
		if seen[it] {
			t.Fatalf("duplicate %q in %v", it, got)
		}
		seen[it] = true
	}

	if all := weightedSample(rng, items, one, 10); len(all) != len(items) {
		t.Errorf("k beyond pool: len = %d, expected %d", len(all), len(items))
	}
	if none := weightedSample(rng, items, one, 0); len(none) != 0 {
		t.Errorf("k = 0: len = %d", len(none))
	}
	if items[0] != "a" || len(items) != 5 {
		t.Error("sampling must not modify the input")
	}
}

func TestWeightedSampleFollowsWeights(t *testing.T) {
	rng := rand.New(rand.NewSource(99))
	weights := map[string]float64{"heavy": 9, "light": 1}
	items := []string{"light", "heavy"}

	heavy := 0
	const draws = 10000
	for i := 0; i < draws; i++ {
		if weightedSample(rng, items, func(s string) float64 { return weights[s] }, 1)[0] == "heavy" {
			heavy++
		}
	}
	ratio := float64(heavy) / draws
	if ratio < 0.85 || ratio > 0.95 {
		t.Errorf("heavy drawn %.3f of the time, expected about 0.9", ratio)
	}
}

func TestWeightedSampleEqualWeightsUniform(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	items := []string{"a", "b", "c", "d"}
	one := func(string) float64 { return 1 }

	// 4 items taken 3 at a time give 24 ordered draws.
	const perms = 24
	const draws = perms * 1000
	counts := map[string]int{}
	for i := 0; i < draws; i++ {
		got := weightedSample(rng, items, one, 3)
		counts[strings.Join(got, "")]++
	}

	if len(counts) != perms {
		t.Fatalf("saw %d orderings, expected %d", len(counts), perms)
	}
	want := draws / perms
	for perm, n := range counts {
		if n < want*85/100 || n > want*115/100 {
			t.Errorf("ordering %s drawn %d times, expected about %d", perm, n, want)
		}
	}
}

func TestLevelUp(t *testing.T) {
	g := newTestGame(t, nil)
	p := g.player
	addEnemy(g, core.V(10, 10), 1)

	p.XP = 3.9
	g.checkLevelUp()
	if p.Level != 1 {
		t.Fatal("below the threshold nothing should happen")
	}

	p.XP = 4
	g.checkLevelUp()

	if p.Level != 2 {
		t.Fatalf("level = %d, expected 2", p.Level)
	}
	if g.state != core.StateLevelUpMenu {
		t.Errorf("state = %v, expected level-up menu", g.state)
	}
	if len(g.enemies) != 0 {
		t.Error("level-up should clear enemies")
	}
	if g.enemiesPerSpawn != g.cfg.Spawner.InitialPerSpawn+1 {
		t.Errorf("enemiesPerSpawn = %d", g.enemiesPerSpawn)
	}

	// At level 2 only the three level-1 upgrades are eligible.
	want := map[string]bool{"SPEEDSTER": true, "ARCHER": true, "INVESTOR": true}
	if len(g.options) != 3 {
		t.Fatalf("options = %d, expected 3", len(g.options))
	}
	for _, o := range g.options {
		if !want[o.Name] {
			t.Errorf("ineligible option %q offered", o.Name)
		}
		delete(want, o.Name)
	}
	if len(want) != 0 {
		t.Errorf("options not distinct, missing %v", want)
	}

	// Experience is cumulative: level 2 needs 16.
	g.state = core.StatePlaying
	g.checkLevelUp()
	if p.Level != 2 {
		t.Error("level 2 requires 16 experience")
	}
}

func TestEligibility(t *testing.T) {
	g := newTestGame(t, nil)
	p := g.player
	p.Level = 6

	names := func() map[string]bool {
		m := map[string]bool{}
		for _, u := range g.eligibleUpgrades() {
			m[u.Name] = true
		}
		return m
	}

	got := names()
	if got["HEALER"] {
		t.Error("heal should be excluded at full health")
	}
	if !got["SNIPER"] || got["BOMBER"] {
		t.Errorf("level 6 eligibility wrong: %v", got)
	}

	p.Health--
	if !names()["HEALER"] {
		t.Error("heal should be offered when hurt")
	}
}

func TestMenuSelection(t *testing.T) {
	g := newTestGame(t, nil)
	g.options = []Upgrade{g.cfg.Upgrades[1], g.cfg.Upgrades[2]} // SPEEDSTER, ARCHER
	g.state = core.StateLevelUpMenu
	count := g.player.BulletCount

	if r := g.Step(input(core.ActionSelect3)); r.State.Run != core.StateLevelUpMenu {
		t.Fatal("out-of-range selection should be ignored")
	}
	ticks := g.State().Ticks
	g.Step(input(core.ActionLeft))
	if g.State().Ticks != ticks {
		t.Error("menu should pause the simulation")
	}

	r := g.Step(input(core.ActionSelect2))
	if r.State.Run != core.StatePlaying {
		t.Fatalf("state = %v, expected playing", r.State.Run)
	}
	if g.player.BulletCount != count+2 {
		t.Errorf("bullet count = %d, expected %d", g.player.BulletCount, count+2)
	}
	if g.options != nil {
		t.Error("options should be cleared after choosing")
	}
}

func TestUpgradeEffects(t *testing.T) {
	tests := []struct {
		effect string
		check  func(t *testing.T, p *Player, base *Player)
	}{
		{config.EffectDamage, func(t *testing.T, p, b *Player) {
			if p.BaseDamage != b.BaseDamage*1.5 {
				t.Errorf("damage = %v", p.BaseDamage)
			}
		}},
		{config.EffectSpeed, func(t *testing.T, p, b *Player) {
			if p.BulletSpeed != b.BulletSpeed+3 || p.Speed != b.Speed+0.8 {
				t.Errorf("bullet speed = %v speed = %v", p.BulletSpeed, p.Speed)
			}
		}},
		{config.EffectMultishot, func(t *testing.T, p, b *Player) {
			if p.BulletCount != b.BulletCount+2 {
				t.Errorf("bullet count = %d", p.BulletCount)
			}
		}},
		{config.EffectXP, func(t *testing.T, p, b *Player) {
			if p.XPMultiplier != 1.25 {
				t.Errorf("xp multiplier = %v", p.XPMultiplier)
			}
		}},
		{config.EffectPierce, func(t *testing.T, p, b *Player) {
			if p.PierceLevel != 1 {
				t.Errorf("pierce = %d", p.PierceLevel)
			}
		}},
		{config.EffectHoming, func(t *testing.T, p, b *Player) {
			if !p.Homing {
				t.Error("homing not granted")
			}
		}},
		{config.EffectExplosive, func(t *testing.T, p, b *Player) {
			if !p.Explosive {
				t.Error("explosive not granted")
			}
		}},
	}

	for _, tc := range tests {
		t.Run(tc.effect, func(t *testing.T) {
			g := newTestGame(t, nil)
			base := *g.player
			g.applyUpgrade(Upgrade{Name: "X", Effect: tc.effect, Weight: 1})
			tc.check(t, g.player, &base)
		})
	}
}

func TestHealUpgrade(t *testing.T) {
	tests := []struct {
		health, expected int
	}{
		{1, 3},
		{2, 3},
		{4, 5},
		{5, 5},
	}

	for _, tc := range tests {
		g := newTestGame(t, nil)
		g.player.Health = tc.health
		g.applyUpgrade(Upgrade{Name: "HEALER", Effect: config.EffectHeal, Weight: 1})
		if g.player.Health != tc.expected {
			t.Errorf("heal from %d = %d, expected %d", tc.health, g.player.Health, tc.expected)
		}
	}
}

func TestOneShotUpgradeLeavesCatalog(t *testing.T) {
	g := newTestGame(t, nil)
	before := len(g.catalog)
	g.applyUpgrade(g.cfg.Upgrades[0]) // SNIPER

	if len(g.catalog) != before-1 {
		t.Fatalf("catalog = %d entries, expected %d", len(g.catalog), before-1)
	}
	for _, u := range g.catalog {
		if u.Name == "SNIPER" {
			t.Error("SNIPER should be gone")
		}
	}

	g.applyUpgrade(g.cfg.Upgrades[1]) // SPEEDSTER is repeatable
	if len(g.catalog) != before-1 {
		t.Error("repeatable upgrades stay in the catalog")
	}
}

func TestBossLevel(t *testing.T) {
	g := newTestGame(t, nil)
	p := g.player
	p.Level = 4
	p.XP = g.cfg.Progression.XPForLevel(4)
	g.coins = append(g.coins, newPickup(core.V(10, 10), 1, 8))

	g.checkLevelUp()

	if g.boss == nil {
		t.Fatal("level 5 should spawn a boss")
	}
	if g.boss.MaxHealth != 250 || g.boss.Health != 250 {
		t.Errorf("boss health = %d/%d, expected 250", g.boss.Health, g.boss.MaxHealth)
	}
	if g.boss.Archetype.Scale != g.cfg.Boss.Scale || g.boss.Speed != g.cfg.Boss.Speed {
		t.Errorf("boss archetype = %+v", g.boss.Archetype)
	}
	wantPos := core.V(g.cfg.World.Width*0.5, g.cfg.World.Height*0.25)
	if g.boss.Pos != wantPos {
		t.Errorf("boss at %+v, expected %+v", g.boss.Pos, wantPos)
	}
	if len(g.coins) != 0 {
		t.Error("boss level should clear coins")
	}
	if g.state != core.StateLevelUpMenu {
		t.Error("the menu is offered on boss levels too")
	}

	g.Step(input(core.ActionSelect1))
	for i := 0; i < 100; i++ {
		g.Step(core.NewInputFrame())
	}
	if len(g.enemies) != 0 {
		t.Errorf("spawner should be frozen during the boss fight, got %d enemies", len(g.enemies))
	}
}

func TestSpawner(t *testing.T) {
	g := newTestGame(t, nil)
	interval := g.cfg.Spawner.IntervalTicks

	for i := 0; i < interval-1; i++ {
		g.Step(core.NewInputFrame())
	}
	if len(g.enemies) != 0 {
		t.Fatalf("spawned %d enemies before the interval", len(g.enemies))
	}
	g.Step(core.NewInputFrame())
	if len(g.enemies) != 1 {
		t.Fatalf("expected 1 enemy after %d ticks, got %d", interval, len(g.enemies))
	}

	e := g.enemies[0]
	w, h := g.cfg.World.Width, g.cfg.World.Height
	if e.Pos.X >= 0 && e.Pos.X <= w && e.Pos.Y >= 0 && e.Pos.Y <= h {
		t.Errorf("enemy spawned inside the world at %+v", e.Pos)
	}
	bonus := g.cfg.Spawner.HealthBonus(1)
	if e.MaxHealth != e.Archetype.BaseHealth+bonus {
		t.Errorf("enemy health = %d, expected base %d + %d", e.MaxHealth, e.Archetype.BaseHealth, bonus)
	}

	g.enemiesPerSpawn = 3
	for i := 0; i < interval; i++ {
		g.Step(core.NewInputFrame())
	}
	if len(g.enemies) != 4 {
		t.Errorf("expected 4 enemies after a wave of 3, got %d", len(g.enemies))
	}
}
