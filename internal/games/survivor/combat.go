package survivor

import (
	"github.com/vovakirdan/tui-survivor/internal/core"
)

// resolveCollisions runs the combat sub-phases in their fixed order.
// Each phase walks a snapshot of the collections it may shrink.
func (g *Game) resolveCollisions() {
	g.resolvePlayerContact()
	spent := g.resolveBossHits()
	g.resolveEnemyHits(spent)
	g.collectCoins()
	g.collectWeapons()
}

// resolvePlayerContact damages the player on contact with any enemy and
// pushes every enemy away from the player.
func (g *Game) resolvePlayerContact() {
	p := g.player
	pb := g.actorBody(&p.Actor)

	touched := g.boss != nil && pb.MaskOverlaps(g.actorBody(g.boss))
	if !touched {
		for _, e := range g.enemies {
			if pb.Overlaps(g.actorBody(e)) {
				touched = true
				break
			}
		}
	}
	if !touched {
		return
	}

	if p.TakeDamage(1) {
		g.emit(core.EventPlayerHit, p.Health, "")
	}
	push := g.cfg.Enemies.PushbackDistance
	for _, e := range g.enemies {
		e.SetKnockback(p.Pos, push)
	}
	if g.boss != nil {
		g.boss.SetKnockback(p.Pos, push)
	}
}

// resolveBossHits applies projectile hits on the boss. It returns the
// projectiles that struck the boss; they take no part in the enemy phase.
func (g *Game) resolveBossHits() map[*Projectile]bool {
	if g.boss == nil {
		return nil
	}
	spent := make(map[*Projectile]bool)
	p := g.player
	for _, proj := range append([]*Projectile(nil), p.Projectiles...) {
		if g.boss == nil {
			break
		}
		if !g.projectileBody(proj).MaskOverlaps(g.actorBody(g.boss)) {
			continue
		}
		spent[proj] = true
		if proj.Pierce == 0 {
			proj.dead = true
			if proj.Explosive {
				g.explode(proj.Pos, append([]*Actor(nil), g.enemies...), nil)
			}
		}
		if g.boss.Damage(proj.Damage) {
			g.defeatBoss()
		}
	}
	g.dropDeadProjectiles()
	return spent
}

func (g *Game) defeatBoss() {
	name := g.boss.Archetype.ID
	g.boss = nil
	g.bossesDefeated++
	g.score += PointsPerBoss
	g.emit(core.EventBossDefeated, g.player.Level, name)
	g.log.Info("boss defeated", "archetype", name, "player_level", g.player.Level)
}

// resolveEnemyHits applies projectile hits on regular enemies. A projectile
// hits each enemy at most once and is consumed after Pierce+1 hits.
func (g *Game) resolveEnemyHits(skip map[*Projectile]bool) {
	if len(g.enemies) == 0 {
		return
	}
	roster := append([]*Actor(nil), g.enemies...)
	for _, proj := range append([]*Projectile(nil), g.player.Projectiles...) {
		if skip[proj] || proj.dead {
			continue
		}
		body := g.projectileBody(proj)
		hit := make(map[*Actor]bool)
		for _, e := range roster {
			if !e.Alive() || hit[e] {
				continue
			}
			if !body.MaskOverlaps(g.actorBody(e)) {
				continue
			}
			hit[e] = true
			if e.Damage(proj.Damage) {
				g.killEnemy(e)
			}
			if len(hit) > proj.Pierce {
				proj.dead = true
				break
			}
		}
		if proj.dead && proj.Explosive {
			g.explode(proj.Pos, roster, hit)
		}
	}
	g.dropDeadProjectiles()

	alive := g.enemies[:0]
	for _, e := range g.enemies {
		if e.Alive() {
			alive = append(alive, e)
		}
	}
	clear(g.enemies[len(alive):])
	g.enemies = alive
}

// explode damages every live enemy near center that the projectile did not
// already hit.
func (g *Game) explode(center core.Vec2, roster []*Actor, exclude map[*Actor]bool) {
	radius := g.cfg.Loot.ExplosionRadius
	g.blasts = append(g.blasts, &explosion{Pos: center, MaxRadius: radius})
	for _, e := range roster {
		if !e.Alive() || exclude[e] {
			continue
		}
		if center.Dist(e.Pos) > radius {
			continue
		}
		if e.Damage(g.cfg.Loot.ExplosionDamage) {
			g.killEnemy(e)
		}
	}
}

// killEnemy scores a defeated enemy and rolls its drop. The enemy is removed
// from the roster by the caller.
func (g *Game) killEnemy(e *Actor) {
	g.kills++
	g.score += PointsPerKill
	g.emit(core.EventEnemyKilled, g.kills, e.Archetype.ID)
	g.dropLoot(e.Pos)
}

// dropLoot places a weapon with the configured chance, otherwise a coin.
func (g *Game) dropLoot(at core.Vec2) {
	if g.rng.Float64() < g.cfg.Loot.WeaponDropChance {
		g.weapons = append(g.weapons, newEquipment(at, g.cfg.Loot.WeaponDurability, g.cfg.Player.AnimationSpeed))
		g.emit(core.EventWeaponDropped, 0, "")
		return
	}
	g.coins = append(g.coins, newPickup(at, g.cfg.Progression.CoinValue, g.cfg.Player.AnimationSpeed))
}

func (g *Game) dropDeadProjectiles() {
	p := g.player
	alive := p.Projectiles[:0]
	for _, proj := range p.Projectiles {
		if !proj.dead {
			alive = append(alive, proj)
		}
	}
	clear(p.Projectiles[len(alive):])
	p.Projectiles = alive
}

// collectCoins converts touched coins into experience.
func (g *Game) collectCoins() {
	if len(g.coins) == 0 {
		return
	}
	p := g.player
	pb := g.actorBody(&p.Actor)
	left := g.coins[:0]
	for _, c := range g.coins {
		if pb.Overlaps(g.pickupBody(c)) {
			p.XP += c.Value * p.XPMultiplier
			g.score += int(c.Value)
			continue
		}
		left = append(left, c)
	}
	clear(g.coins[len(left):])
	g.coins = left
}

// collectWeapons picks up touched weapons. A weapon is removed from the world
// even when the slot is already taken.
func (g *Game) collectWeapons() {
	if len(g.weapons) == 0 {
		return
	}
	p := g.player
	pb := g.actorBody(&p.Actor)
	left := g.weapons[:0]
	for _, w := range g.weapons {
		if !pb.MaskOverlaps(g.equipmentBody(w)) {
			left = append(left, w)
			continue
		}
		if p.EquipWeapon(w) {
			w.follow(p, g.cfg.Player.WeaponOffset)
			g.emit(core.EventWeaponEquipped, w.Durability, "")
		}
	}
	clear(g.weapons[len(left):])
	g.weapons = left
}
