package survivor

import (
	"github.com/vovakirdan/tui-survivor/internal/core"
)

// Variant distinguishes the three kinds of actors.
type Variant int

const (
	VariantPlayer Variant = iota
	VariantEnemy
	VariantBoss
)

// Facing is the horizontal direction an actor looks at.
type Facing int

const (
	FacingRight Facing = iota
	FacingLeft
)

// Archetype is the stat line of an enemy kind. Bosses reuse the enemy
// archetypes with a larger scale.
type Archetype struct {
	ID         string // sprite id in the asset table
	BaseHealth int
	Speed      float64
	Scale      float64
}

// animator cycles through the frames of the current animation.
type animator struct {
	anim  string
	frame int
	timer int
	speed int // ticks per frame
}

func (a *animator) set(anim string) {
	if a.anim == anim {
		return
	}
	a.anim = anim
	a.frame = 0
	a.timer = 0
}

func (a *animator) step(frames int) {
	a.timer++
	if a.timer < a.speed {
		return
	}
	a.timer = 0
	if frames > 0 {
		a.frame = (a.frame + 1) % frames
	}
}

// Actor is a living entity: the player, a regular enemy or a boss.
type Actor struct {
	Variant   Variant
	Archetype Archetype
	Pos       core.Vec2
	Speed     float64
	Health    int
	MaxHealth int
	Facing    Facing

	anim      animator
	knockDir  core.Vec2
	knockLeft float64
}

func newActor(v Variant, arch Archetype, pos core.Vec2, maxHealth int, animSpeed int, anim string) *Actor {
	if arch.Scale <= 0 {
		arch.Scale = 1
	}
	return &Actor{
		Variant:   v,
		Archetype: arch,
		Pos:       pos,
		Speed:     arch.Speed,
		Health:    maxHealth,
		MaxHealth: maxHealth,
		anim:      animator{anim: anim, speed: animSpeed},
	}
}

// Alive reports whether the actor still has health.
func (a *Actor) Alive() bool {
	return a.Health > 0
}

// Damage subtracts health, never going below zero, and reports whether the
// hit was lethal.
func (a *Actor) Damage(amount int) bool {
	if amount <= 0 || !a.Alive() {
		return false
	}
	a.Health = max(a.Health-amount, 0)
	return a.Health == 0
}

// Heal adds health up to the maximum.
func (a *Actor) Heal(amount int) {
	a.Health = min(a.Health+amount, a.MaxHealth)
}

// HealthRatio is the fill of the health bar.
func (a *Actor) HealthRatio() float64 {
	if a.MaxHealth <= 0 {
		return 0
	}
	return float64(a.Health) / float64(a.MaxHealth)
}

// Knockback returns the remaining knockback distance.
func (a *Actor) Knockback() float64 {
	return a.knockLeft
}

// SetKnockback pushes the actor away from source over the next ticks.
// An actor standing exactly on source is not pushed.
func (a *Actor) SetKnockback(source core.Vec2, distance float64) {
	dir, ok := a.Pos.Sub(source).Norm()
	if !ok || distance <= 0 {
		return
	}
	a.knockDir = dir
	a.knockLeft = distance
}

// Chase moves the actor one tick toward target. Pending knockback overrides
// pursuit and is consumed at knockbackSpeed per tick.
func (a *Actor) Chase(target core.Vec2, knockbackSpeed float64) {
	if a.knockLeft > 0 {
		step := min(knockbackSpeed, a.knockLeft)
		a.knockLeft -= step
		a.Pos = a.Pos.Add(a.knockDir.Scale(step))
		a.face(a.knockDir.X)
		return
	}
	dir, ok := target.Sub(a.Pos).Norm()
	if !ok {
		return
	}
	a.Pos = a.Pos.Add(dir.Scale(a.Speed))
	a.face(dir.X)
}

func (a *Actor) face(dx float64) {
	switch {
	case dx < 0:
		a.Facing = FacingLeft
	case dx > 0:
		a.Facing = FacingRight
	}
}

// Frame returns the current animation frame index.
func (a *Actor) Frame() int {
	return a.anim.frame
}

// Animation returns the current animation key.
func (a *Actor) Animation() string {
	return a.anim.anim
}

// spriteID returns the asset table key of the actor.
func (a *Actor) spriteID() string {
	if a.Variant == VariantPlayer {
		return SpritePlayer
	}
	return a.Archetype.ID
}
