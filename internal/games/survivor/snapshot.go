package survivor

import (
	"github.com/vovakirdan/tui-survivor/internal/core"
)

// Layer orders sprites from back to front.
type Layer int

const (
	LayerPickup Layer = iota
	LayerEnemy
	LayerBoss
	LayerPlayer
	LayerWeapon
	LayerProjectile
)

// SpriteView is one entity as the renderer needs it.
type SpriteView struct {
	Sprite string
	Anim   string
	Frame  int
	Pos    core.Vec2
	Scale  float64
	Mirror bool
	Layer  Layer
	// Bar is the fill of the health or durability bar above the sprite,
	// or -1 when the sprite has no bar.
	Bar float64
	// Blink is set while the player is invincible.
	Blink bool
}

// BlastView is an explosion ring.
type BlastView struct {
	Pos    core.Vec2
	Radius float64
}

// HUD holds the numbers shown in the status line.
type HUD struct {
	Health     int
	MaxHealth  int
	Level      int
	XP         float64
	XPNext     float64
	Score      int
	Kills      int
	Weapon     int     // remaining durability, 0 without a weapon
	BossHealth float64 // boss health ratio, -1 without a boss
}

// Snapshot is a read-only view of the run for rendering.
type Snapshot struct {
	State   core.RunState
	Tick    int
	World   core.Vec2 // world size
	Sprites []SpriteView
	Blasts  []BlastView
	HUD     HUD
	Options []Upgrade
}

// Snapshot captures everything needed to draw the current tick.
func (g *Game) Snapshot() Snapshot {
	p := g.player
	s := Snapshot{
		State: g.state,
		Tick:  g.tick,
		World: core.V(g.cfg.World.Width, g.cfg.World.Height),
		HUD: HUD{
			Health:     p.Health,
			MaxHealth:  p.MaxHealth,
			Level:      p.Level,
			XP:         p.XP,
			XPNext:     g.cfg.Progression.XPForLevel(p.Level),
			Score:      g.score,
			Kills:      g.kills,
			BossHealth: -1,
		},
		Options: append([]Upgrade(nil), g.options...),
	}

	for _, c := range g.coins {
		s.Sprites = append(s.Sprites, SpriteView{
			Sprite: SpriteCoin, Anim: AnimSpin, Frame: c.anim.frame,
			Pos: c.Pos, Scale: 1, Layer: LayerPickup, Bar: -1,
		})
	}
	for _, w := range g.weapons {
		s.Sprites = append(s.Sprites, SpriteView{
			Sprite: SpriteWand, Anim: AnimIdle, Frame: w.anim.frame,
			Pos: w.Pos, Scale: 1, Layer: LayerPickup, Bar: -1,
		})
	}
	for _, e := range g.enemies {
		s.Sprites = append(s.Sprites, actorView(e, LayerEnemy))
	}
	if g.boss != nil {
		s.Sprites = append(s.Sprites, actorView(g.boss, LayerBoss))
		s.HUD.BossHealth = g.boss.HealthRatio()
	}

	pv := actorView(&p.Actor, LayerPlayer)
	pv.Bar = -1
	pv.Blink = p.Invincible()
	s.Sprites = append(s.Sprites, pv)

	if w := p.Weapon; w != nil {
		s.HUD.Weapon = w.Durability
		s.Sprites = append(s.Sprites, SpriteView{
			Sprite: SpriteWand, Anim: AnimIdle, Frame: w.anim.frame,
			Pos: w.Pos, Scale: 1, Mirror: w.Facing == FacingLeft,
			Layer: LayerWeapon, Bar: w.DurabilityRatio(),
		})
	}
	for _, proj := range p.Projectiles {
		s.Sprites = append(s.Sprites, SpriteView{
			Sprite: proj.spriteID(), Anim: AnimFly, Frame: proj.anim.frame,
			Pos: proj.Pos, Scale: proj.scale(), Mirror: proj.Vel.X < 0,
			Layer: LayerProjectile, Bar: -1,
		})
	}
	for _, b := range g.blasts {
		s.Blasts = append(s.Blasts, BlastView{Pos: b.Pos, Radius: b.radius()})
	}
	return s
}

func actorView(a *Actor, layer Layer) SpriteView {
	return SpriteView{
		Sprite: a.spriteID(),
		Anim:   a.anim.anim,
		Frame:  a.anim.frame,
		Pos:    a.Pos,
		Scale:  a.Archetype.Scale,
		Mirror: a.Facing == FacingLeft,
		Layer:  layer,
		Bar:    a.HealthRatio(),
	}
}
