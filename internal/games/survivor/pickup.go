package survivor

import "github.com/vovakirdan/tui-survivor/internal/core"

// Equipment is a weapon lying in the world or held by the player. While
// held, every volley consumes one point of durability.
type Equipment struct {
	Pos           core.Vec2
	Durability    int
	MaxDurability int
	Equipped      bool
	Facing        Facing

	anim animator
}

func newEquipment(pos core.Vec2, durability, animSpeed int) *Equipment {
	return &Equipment{
		Pos:           pos,
		Durability:    durability,
		MaxDurability: durability,
		anim:          animator{anim: AnimIdle, speed: animSpeed},
	}
}

// Use consumes one durability point and reports whether the weapon still
// works afterwards.
func (e *Equipment) Use() bool {
	e.Durability--
	return e.Durability > 0
}

// DurabilityRatio is the fill of the durability bar.
func (e *Equipment) DurabilityRatio() float64 {
	if e.MaxDurability <= 0 {
		return 0
	}
	return float64(max(e.Durability, 0)) / float64(e.MaxDurability)
}

// follow keeps a held weapon beside the player on its facing side.
func (e *Equipment) follow(p *Player, offset float64) {
	e.Facing = p.Facing
	if p.Facing == FacingLeft {
		offset = -offset
	}
	e.Pos = p.Pos.Add(core.V(offset, 0))
}

// Pickup is a coin dropped by a defeated enemy.
type Pickup struct {
	Pos   core.Vec2
	Value float64

	anim animator
}

func newPickup(pos core.Vec2, value float64, animSpeed int) *Pickup {
	return &Pickup{Pos: pos, Value: value, anim: animator{anim: AnimSpin, speed: animSpeed}}
}

// explosion is the visual of an explosive projectile. It grows to its full
// radius and disappears.
type explosion struct {
	Pos       core.Vec2
	MaxRadius float64
	age       int
}

const explosionTicks = 18

func (e *explosion) radius() float64 {
	return e.MaxRadius * float64(e.age) / explosionTicks
}

func (e *explosion) done() bool {
	return e.age >= explosionTicks
}
