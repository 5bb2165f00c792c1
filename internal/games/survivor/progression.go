package survivor

import (
	"math/rand"
	"slices"

	"github.com/vovakirdan/tui-survivor/internal/config"
	"github.com/vovakirdan/tui-survivor/internal/core"
)

// Upgrade is one entry of the upgrade catalog.
type Upgrade = config.UpgradeConfig

// Upgrade magnitudes.
const (
	damageMultiplier  = 1.5
	bulletSpeedBonus  = 3.0
	moveSpeedBonus    = 0.8
	multishotBonus    = 2
	healLowHealth     = 2 // health <= 1
	healAmount        = 1
	xpMultiplierBonus = 1.25
)

// weightedSample draws up to k distinct items. Each draw picks an item with
// probability proportional to its weight among the items not yet drawn.
func weightedSample[T any](rng *rand.Rand, items []T, weight func(T) float64, k int) []T {
	pool := slices.Clone(items)
	out := make([]T, 0, min(k, len(pool)))
	for len(out) < k && len(pool) > 0 {
		total := 0.0
		for _, it := range pool {
			total += weight(it)
		}
		idx := len(pool) - 1
		r := rng.Float64() * total
		for i, it := range pool {
			r -= weight(it)
			if r < 0 {
				idx = i
				break
			}
		}
		out = append(out, pool[idx])
		pool = slices.Delete(pool, idx, idx+1)
	}
	return out
}

// eligibleUpgrades filters the live catalog by level and current health.
func (g *Game) eligibleUpgrades() []Upgrade {
	p := g.player
	var out []Upgrade
	for _, u := range g.catalog {
		if p.Level < u.MinLevel {
			continue
		}
		if u.Effect == config.EffectHeal && p.Health >= p.MaxHealth {
			continue
		}
		out = append(out, u)
	}
	return out
}

// Options returns the upgrades offered by the level-up menu.
func (g *Game) Options() []Upgrade {
	return g.options
}

// Catalog returns the upgrades still available this run.
func (g *Game) Catalog() []Upgrade {
	return g.catalog
}

// checkLevelUp promotes the player once the experience threshold of the
// current level is reached. Every boss level also spawns a boss; the upgrade
// menu is offered on every level-up.
func (g *Game) checkLevelUp() {
	p := g.player
	if p.XP < g.cfg.Progression.XPForLevel(p.Level) {
		return
	}

	p.Level++
	g.enemies = nil
	g.enemiesPerSpawn++
	g.emit(core.EventLevelUp, p.Level, "")
	g.log.Debug("level up", "player_level", p.Level, "xp", p.XP, "per_spawn", g.enemiesPerSpawn)

	if p.Level%g.cfg.Boss.EveryLevels == 0 && g.boss == nil {
		g.coins = nil
		g.spawnBoss()
	}

	g.options = weightedSample(g.rng, g.eligibleUpgrades(), func(u Upgrade) float64 { return u.Weight }, g.cfg.Progression.OptionCount)
	if len(g.options) > 0 {
		g.state = core.StateLevelUpMenu
	}
}

// handleMenu applies the first selected option that exists. Selections past
// the offered options are ignored.
func (g *Game) handleMenu(in core.InputFrame) {
	for _, a := range []core.Action{core.ActionSelect1, core.ActionSelect2, core.ActionSelect3} {
		if !in.Has(a) {
			continue
		}
		idx := a.SelectIndex()
		if idx >= len(g.options) {
			continue
		}
		g.applyUpgrade(g.options[idx])
		g.options = nil
		g.state = core.StatePlaying
		return
	}
}

// applyUpgrade changes the player's stats. One-shot upgrades leave the
// catalog for the rest of the run.
func (g *Game) applyUpgrade(u Upgrade) {
	p := g.player
	switch u.Effect {
	case config.EffectDamage:
		p.BaseDamage *= damageMultiplier
	case config.EffectSpeed:
		p.BulletSpeed += bulletSpeedBonus
		p.Speed += moveSpeedBonus
	case config.EffectMultishot:
		p.BulletCount += multishotBonus
	case config.EffectHeal:
		if p.Health <= 1 {
			p.Heal(healLowHealth)
		} else {
			p.Heal(healAmount)
		}
	case config.EffectXP:
		p.XPMultiplier *= xpMultiplierBonus
	case config.EffectPierce:
		p.PierceLevel++
	case config.EffectHoming:
		p.Homing = true
	case config.EffectExplosive:
		p.Explosive = true
	}

	if u.OneShot {
		g.catalog = slices.DeleteFunc(g.catalog, func(c Upgrade) bool { return c.Name == u.Name })
	}
	g.emit(core.EventUpgradeChosen, p.Level, u.Name)
	g.log.Debug("upgrade chosen", "upgrade", u.Name, "player_level", p.Level)
}

func (g *Game) archetype(i int) Archetype {
	a := g.cfg.Enemies.Archetypes[i]
	return Archetype{ID: a.ID, BaseHealth: a.BaseHealth, Speed: a.Speed, Scale: 1}
}

// updateSpawner spawns a wave every interval. It is frozen while a boss is
// alive.
func (g *Game) updateSpawner() {
	if g.boss != nil {
		return
	}
	g.spawnTimer++
	if g.spawnTimer < g.cfg.Spawner.IntervalTicks {
		return
	}
	g.spawnTimer = 0
	for i := 0; i < g.enemiesPerSpawn; i++ {
		g.spawnEnemy()
	}
}

// spawnEnemy places a random archetype just outside a random world edge.
func (g *Game) spawnEnemy() {
	w, h := g.cfg.World.Width, g.cfg.World.Height
	m := g.cfg.Spawner.Margin

	var pos core.Vec2
	switch g.rng.Intn(4) {
	case 0: // top
		pos = core.V(g.rng.Float64()*w, -m)
	case 1: // bottom
		pos = core.V(g.rng.Float64()*w, h+m)
	case 2: // left
		pos = core.V(-m, g.rng.Float64()*h)
	default: // right
		pos = core.V(w+m, g.rng.Float64()*h)
	}

	arch := g.archetype(g.rng.Intn(len(g.cfg.Enemies.Archetypes)))
	hp := arch.BaseHealth + g.cfg.Spawner.HealthBonus(g.player.Level)
	g.enemies = append(g.enemies, newActor(VariantEnemy, arch, pos, hp, g.cfg.Enemies.AnimationSpeed, AnimWalk))
}

// spawnBoss creates the boss for the current level.
func (g *Game) spawnBoss() {
	bc := g.cfg.Boss
	arch := g.archetype(g.rng.Intn(len(g.cfg.Enemies.Archetypes)))
	arch.Speed = bc.Speed
	arch.Scale = bc.Scale

	level := g.player.Level
	pos := core.V(g.cfg.World.Width*bc.SpawnX, g.cfg.World.Height*bc.SpawnY)
	g.boss = newActor(VariantBoss, arch, pos, bc.MaxHealth(level), g.cfg.Enemies.AnimationSpeed, AnimWalk)
	g.spawnTimer = 0

	g.emit(core.EventBossSpawned, level, arch.ID)
	g.log.Info("boss spawned", "archetype", arch.ID, "player_level", level, "health", g.boss.MaxHealth)
}
