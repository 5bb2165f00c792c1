// Package survivor implements the top-down survival shooter simulation.
// The player fends off endless waves of enemies, collects coins and weapons,
// and picks upgrades on level-up. Every few levels a boss appears.
//
// The simulation is single-threaded and advances only through Step; all
// timers count ticks.
package survivor

import (
	"io"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-survivor/internal/config"
	"github.com/vovakirdan/tui-survivor/internal/core"
)

// Score awarded per defeat.
const (
	PointsPerKill = 10
	PointsPerBoss = 100
)

// Game is one survivor run and the state machine around it.
type Game struct {
	cfg     config.SurvivorConfig
	frames  frameTable
	log     *log.Logger
	runtime core.RuntimeConfig
	rng     *rand.Rand

	state   core.RunState
	tick    int
	player  *Player
	enemies []*Actor
	boss    *Actor
	coins   []*Pickup
	weapons []*Equipment
	blasts  []*explosion

	catalog         []Upgrade
	options         []Upgrade
	enemiesPerSpawn int
	spawnTimer      int

	score          int
	kills          int
	bossesDefeated int

	events []core.Event
}

// New creates a game for the given configuration. Every sprite the run needs
// must be present in assets. A nil logger discards output.
func New(cfg config.SurvivorConfig, assets Assets, logger *log.Logger) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	frames, err := loadFrames(assets, cfg)
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	g := &Game{cfg: cfg, frames: frames, log: logger}
	g.Reset(core.DefaultConfig())
	return g, nil
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "survivor"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Survivor"
}

// Config returns the configuration the game was built with.
func (g *Game) Config() config.SurvivorConfig {
	return g.cfg
}

// Reset starts a new run. The upgrade catalog is restored and the RNG is
// reseeded from cfg.Seed.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.runtime = cfg
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.state = core.StatePlaying
	g.tick = 0
	g.player = newPlayer(g.cfg)
	g.enemies = nil
	g.boss = nil
	g.coins = nil
	g.weapons = nil
	g.blasts = nil
	g.catalog = append([]Upgrade(nil), g.cfg.Upgrades...)
	g.options = nil
	g.enemiesPerSpawn = g.cfg.Spawner.InitialPerSpawn
	g.spawnTimer = 0
	g.score = 0
	g.kills = 0
	g.bossesDefeated = 0
	g.events = nil
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.events = nil

	switch g.state {
	case core.StateGameOver:
		if in.Has(core.ActionRestart) {
			g.Reset(g.runtime)
		}
		return g.result()
	case core.StateLevelUpMenu:
		g.handleMenu(in)
		return g.result()
	case core.StatePaused:
		if in.Has(core.ActionPause) {
			g.state = core.StatePlaying
		}
		return g.result()
	}

	if in.Has(core.ActionPause) {
		g.state = core.StatePaused
		return g.result()
	}

	g.tick++
	g.updatePlayer(in)
	g.updateEnemies()
	g.resolveCollisions()
	g.updateBlasts()

	if !g.player.Alive() {
		g.gameOver()
		return g.result()
	}

	g.updateSpawner()
	g.checkLevelUp()
	return g.result()
}

func (g *Game) result() core.StepResult {
	return core.StepResult{State: g.State(), Events: g.events}
}

// State returns a summary of the run.
func (g *Game) State() core.GameState {
	return core.GameState{
		Run:            g.state,
		Score:          g.score,
		Level:          g.player.Level,
		Kills:          g.kills,
		BossesDefeated: g.bossesDefeated,
		Ticks:          g.tick,
		Health:         g.player.Health,
		MaxHealth:      g.player.MaxHealth,
	}
}

// Player exposes the player for read-only inspection.
func (g *Game) Player() *Player {
	return g.player
}

func (g *Game) emit(kind core.EventKind, value int, label string) {
	g.events = append(g.events, core.Event{Kind: kind, Tick: g.tick, Value: value, Label: label})
}

// updatePlayer moves the player, fires and advances everything the player
// owns.
func (g *Game) updatePlayer(in core.InputFrame) {
	p := g.player
	p.Move(in, g.cfg.World)

	var target core.Vec2
	aimed := false
	switch {
	case in.Has(core.ActionFireAt):
		target, aimed = in.Aim, true
	case in.Has(core.ActionFireNearest):
		if nearest := g.nearestTarget(p.Pos); nearest != nil {
			target, aimed = nearest.Pos, true
		}
	}
	if aimed {
		if _, broke := p.Shoot(target); broke {
			g.emit(core.EventWeaponBroken, 0, "")
			g.log.Debug("weapon broke", "tick", g.tick)
		}
	}

	p.tickTimers()
	p.anim.step(len(g.frames.get(SpritePlayer, p.anim.anim)))

	alive := p.Projectiles[:0]
	for _, proj := range p.Projectiles {
		if proj.Homing {
			if t := g.nearestTarget(proj.Pos); t != nil {
				proj.steer(t.Pos, g.cfg.Loot.HomingStrength)
			}
		}
		proj.update(g.cfg.World, g.projectileBody(proj))
		proj.anim.step(len(g.frames.get(proj.spriteID(), AnimFly)))
		if !proj.dead {
			alive = append(alive, proj)
		}
	}
	clear(p.Projectiles[len(alive):])
	p.Projectiles = alive

	if w := p.Weapon; w != nil {
		w.follow(p, g.cfg.Player.WeaponOffset)
		w.anim.step(len(g.frames.get(SpriteWand, AnimIdle)))
	}
	for _, w := range g.weapons {
		w.anim.step(len(g.frames.get(SpriteWand, AnimIdle)))
	}
	for _, c := range g.coins {
		c.anim.step(len(g.frames.get(SpriteCoin, AnimSpin)))
	}
}

// updateEnemies advances the boss and the regular enemies toward the player.
func (g *Game) updateEnemies() {
	target := g.player.Pos
	kb := g.cfg.Enemies.KnockbackSpeed
	if g.boss != nil {
		g.boss.Chase(target, kb)
		g.boss.anim.step(len(g.frames.get(g.boss.Archetype.ID, AnimWalk)))
	}
	for _, e := range g.enemies {
		e.Chase(target, kb)
		e.anim.step(len(g.frames.get(e.Archetype.ID, AnimWalk)))
	}
}

func (g *Game) updateBlasts() {
	live := g.blasts[:0]
	for _, b := range g.blasts {
		b.age++
		if !b.done() {
			live = append(live, b)
		}
	}
	clear(g.blasts[len(live):])
	g.blasts = live
}

// nearestTarget returns the closest live enemy or boss, or nil.
func (g *Game) nearestTarget(from core.Vec2) *Actor {
	var best *Actor
	bestDist := 0.0
	consider := func(a *Actor) {
		if a == nil || !a.Alive() {
			return
		}
		if d := from.Dist(a.Pos); best == nil || d < bestDist {
			best, bestDist = a, d
		}
	}
	consider(g.boss)
	for _, e := range g.enemies {
		consider(e)
	}
	return best
}

func (g *Game) gameOver() {
	g.state = core.StateGameOver
	g.enemies = nil
	g.boss = nil
	g.emit(core.EventGameOver, g.score, "")
	g.log.Info("game over", "score", g.score, "player_level", g.player.Level, "kills", g.kills, "ticks", g.tick)
}

// Bodies place the current animation frame of an entity in the world.

func (g *Game) actorBody(a *Actor) core.Body {
	return core.Body{
		Frame:  g.frames.frame(a.spriteID(), a.anim.anim, a.anim.frame),
		Center: a.Pos,
		Scale:  a.Archetype.Scale,
		Mirror: a.Facing == FacingLeft,
	}
}

func (g *Game) projectileBody(p *Projectile) core.Body {
	return core.Body{
		Frame:  g.frames.frame(p.spriteID(), AnimFly, p.anim.frame),
		Center: p.Pos,
		Scale:  p.scale(),
		Mirror: p.Vel.X < 0,
	}
}

func (g *Game) equipmentBody(e *Equipment) core.Body {
	return core.Body{
		Frame:  g.frames.frame(SpriteWand, AnimIdle, e.anim.frame),
		Center: e.Pos,
		Scale:  1,
		Mirror: e.Facing == FacingLeft,
	}
}

func (g *Game) pickupBody(c *Pickup) core.Body {
	return core.Body{
		Frame:  g.frames.frame(SpriteCoin, AnimSpin, c.anim.frame),
		Center: c.Pos,
		Scale:  1,
	}
}
