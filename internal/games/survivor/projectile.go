package survivor

import (
	"github.com/vovakirdan/tui-survivor/internal/config"
	"github.com/vovakirdan/tui-survivor/internal/core"
)

// ProjectileKind selects the sprite and damage bonus of a projectile.
type ProjectileKind int

const (
	KindBullet ProjectileKind = iota
	KindFireball
)

// Behavior holds the modifiers a projectile carries from the moment it is
// fired. Upgrades taken later do not change projectiles already in flight.
type Behavior struct {
	Pierce    int  // extra enemies the projectile passes through
	Homing    bool // steers toward the nearest enemy
	Explosive bool // damages nearby enemies when it is consumed
}

// Projectile is a bullet or fireball owned by the player.
type Projectile struct {
	Kind   ProjectileKind
	Pos    core.Vec2
	Vel    core.Vec2
	Size   float64
	Damage int
	Behavior

	anim animator
	dead bool
}

func newProjectile(kind ProjectileKind, pos, vel core.Vec2, size float64, damage int, b Behavior) *Projectile {
	return &Projectile{
		Kind:     kind,
		Pos:      pos,
		Vel:      vel,
		Size:     size,
		Damage:   damage,
		Behavior: b,
		anim:     animator{anim: AnimFly, speed: 1},
	}
}

func (p *Projectile) spriteID() string {
	if p.Kind == KindFireball {
		return SpriteFireball
	}
	return SpriteBullet
}

// scale sizes bullets by their configured size; fireballs keep sprite size.
func (p *Projectile) scale() float64 {
	if p.Kind == KindBullet && p.Size > 0 {
		return p.Size / core.GlyphW
	}
	return 1
}

// steer turns the velocity toward target by strength, keeping the speed.
func (p *Projectile) steer(target core.Vec2, strength float64) {
	speed := p.Vel.Len()
	want, ok := target.Sub(p.Pos).Norm()
	if !ok || speed == 0 {
		return
	}
	cur, _ := p.Vel.Norm()
	mixed := cur.Add(want.Sub(cur).Scale(strength))
	dir, ok := mixed.Norm()
	if !ok {
		return
	}
	p.Vel = dir.Scale(speed)
}

// update moves the projectile one tick and marks it dead once it has left
// the world.
func (p *Projectile) update(world config.WorldConfig, body core.Body) {
	p.Pos = p.Pos.Add(p.Vel)
	body.Center = p.Pos
	r := body.Rect()
	if r.Right() < 0 || r.X > world.Width || r.Bottom() < 0 || r.Y > world.Height {
		p.dead = true
	}
}
