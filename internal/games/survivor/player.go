package survivor

import (
	"math"

	"github.com/vovakirdan/tui-survivor/internal/config"
	"github.com/vovakirdan/tui-survivor/internal/core"
)

// Player is the controlled actor. It owns its projectiles and weapon slot.
type Player struct {
	Actor

	XP           float64
	Level        int
	XPMultiplier float64
	Weapon       *Equipment

	BaseDamage  float64
	BulletSpeed float64
	BulletSize  float64
	BulletCount int
	PierceLevel int
	Homing      bool
	Explosive   bool

	Projectiles []*Projectile

	cfg        config.PlayerConfig
	loot       config.LootConfig
	cooldown   int // ticks until the next volley
	invincible int // ticks of remaining invincibility
	moving     bool
}

func newPlayer(cfg config.SurvivorConfig) *Player {
	pc := cfg.Player
	arch := Archetype{ID: SpritePlayer, BaseHealth: pc.MaxHealth, Speed: pc.Speed, Scale: 1}
	center := core.V(cfg.World.Width/2, cfg.World.Height/2)
	return &Player{
		Actor:        *newActor(VariantPlayer, arch, center, pc.MaxHealth, pc.AnimationSpeed, AnimIdle),
		Level:        1,
		XPMultiplier: 1,
		BaseDamage:   pc.BaseDamage,
		BulletSpeed:  pc.BulletSpeed,
		BulletSize:   pc.BulletSize,
		BulletCount:  pc.BulletCount,
		cfg:          pc,
		loot:         cfg.Loot,
	}
}

// Move applies the held directions. Diagonals are not normalized and the
// position is clamped to the world.
func (p *Player) Move(in core.InputFrame, world config.WorldConfig) {
	var v core.Vec2
	if in.Has(core.ActionLeft) {
		v.X -= p.Speed
	}
	if in.Has(core.ActionRight) {
		v.X += p.Speed
	}
	if in.Has(core.ActionUp) {
		v.Y -= p.Speed
	}
	if in.Has(core.ActionDown) {
		v.Y += p.Speed
	}

	p.Pos.X = core.ClampF(p.Pos.X+v.X, 0, world.Width)
	p.Pos.Y = core.ClampF(p.Pos.Y+v.Y, 0, world.Height)
	p.face(v.X)

	p.moving = v != core.Vec2{}
	if p.moving {
		p.anim.set(AnimRun)
	} else {
		p.anim.set(AnimIdle)
	}
}

// Invincible reports whether damage is currently ignored.
func (p *Player) Invincible() bool {
	return p.invincible > 0
}

// TakeDamage hurts the player unless invincible and starts the grace period.
// It reports whether the damage was applied.
func (p *Player) TakeDamage(amount int) bool {
	if p.Invincible() || amount <= 0 {
		return false
	}
	p.Damage(amount)
	p.invincible = p.cfg.InvincibilityTicks
	return true
}

// CanShoot reports whether the fire cooldown has elapsed.
func (p *Player) CanShoot() bool {
	return p.cooldown == 0
}

// tickTimers advances the cooldown and invincibility counters by one tick.
func (p *Player) tickTimers() {
	if p.cooldown > 0 {
		p.cooldown--
	}
	if p.invincible > 0 {
		p.invincible--
	}
}

// EquipWeapon fills the weapon slot. It fails when a weapon is already held.
func (p *Player) EquipWeapon(w *Equipment) bool {
	if p.Weapon != nil || w == nil {
		return false
	}
	w.Equipped = true
	p.Weapon = w
	return true
}

// Shoot fires a volley toward target and reports whether the equipped weapon
// broke. Nothing happens while the cooldown runs or when the target is the
// player's own position.
func (p *Player) Shoot(target core.Vec2) (fired []*Projectile, broke bool) {
	if !p.CanShoot() {
		return nil, false
	}
	aim := target.Sub(p.Pos)
	if aim == (core.Vec2{}) {
		return nil, false
	}

	if p.Weapon != nil && !p.Weapon.Use() {
		p.Weapon = nil
		broke = true
	}

	kind := KindBullet
	damage := int(math.Round(p.BaseDamage))
	if p.Weapon != nil {
		kind = KindFireball
		damage += p.loot.FireballBonus
	}
	behavior := Behavior{Pierce: p.PierceLevel, Homing: p.Homing, Explosive: p.Explosive}

	base := aim.Angle()
	spread := p.cfg.SpreadDegrees * math.Pi / 180
	mid := float64(p.BulletCount-1) / 2
	for i := 0; i < p.BulletCount; i++ {
		angle := base + spread*(float64(i)-mid)
		proj := newProjectile(kind, p.Pos, core.FromAngle(angle, p.BulletSpeed), p.BulletSize, damage, behavior)
		if kind == KindFireball {
			proj.anim.speed = p.loot.FireballAnimationSpeed
		}
		fired = append(fired, proj)
	}
	p.Projectiles = append(p.Projectiles, fired...)
	p.cooldown = p.cfg.ShootCooldownTicks
	return fired, broke
}

// ExperienceProgress returns the experience gathered toward the next level.
func (p *Player) ExperienceProgress(prog config.ProgressionConfig) (have, need float64) {
	return p.XP, prog.XPForLevel(p.Level)
}
