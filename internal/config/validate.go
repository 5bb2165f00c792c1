package config

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

var knownEffects = map[string]bool{
	EffectDamage:    true,
	EffectSpeed:     true,
	EffectMultishot: true,
	EffectHeal:      true,
	EffectXP:        true,
	EffectPierce:    true,
	EffectHoming:    true,
	EffectExplosive: true,
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("config: %w: %s", ErrInvalidConfig, fmt.Sprintf(format, args...))
}

// Validate checks the values the simulation relies on.
func (c SurvivorConfig) Validate() error {
	if c.World.Width <= 0 || c.World.Height <= 0 {
		return invalid("world size must be positive, got %vx%v", c.World.Width, c.World.Height)
	}
	if c.Player.MaxHealth <= 0 {
		return invalid("player.max_health must be positive")
	}
	if c.Player.BulletCount <= 0 {
		return invalid("player.bullet_count must be positive")
	}
	if c.Player.AnimationSpeed <= 0 || c.Enemies.AnimationSpeed <= 0 || c.Loot.FireballAnimationSpeed <= 0 {
		return invalid("animation speeds must be positive")
	}
	if c.Player.ShootCooldownTicks < 0 || c.Player.InvincibilityTicks < 0 {
		return invalid("player tick counters must not be negative")
	}
	if len(c.Enemies.Archetypes) == 0 {
		return invalid("enemies.archetypes must not be empty")
	}
	seen := make(map[string]bool, len(c.Enemies.Archetypes))
	for _, a := range c.Enemies.Archetypes {
		if a.ID == "" {
			return invalid("archetype without id")
		}
		if seen[a.ID] {
			return invalid("duplicate archetype %q", a.ID)
		}
		seen[a.ID] = true
		if a.BaseHealth <= 0 {
			return invalid("archetype %q: base_health must be positive", a.ID)
		}
	}
	if c.Boss.EveryLevels <= 0 || c.Boss.HealthPerLevel <= 0 {
		return invalid("boss.every_levels and boss.health_per_level must be positive")
	}
	if c.Spawner.IntervalTicks <= 0 || c.Spawner.InitialPerSpawn < 0 {
		return invalid("spawner.interval_ticks must be positive")
	}
	if c.Progression.XPScaleFactor <= 0 {
		return invalid("progression.xp_scale_factor must be positive")
	}
	if c.Progression.OptionCount <= 0 || c.Progression.OptionCount > MaxUpgradeOptions {
		return invalid("progression.option_count must be within [1, %d]", MaxUpgradeOptions)
	}
	if c.Loot.WeaponDropChance < 0 || c.Loot.WeaponDropChance > 1 {
		return invalid("loot.weapon_drop_chance must be within [0, 1]")
	}
	if c.Loot.WeaponDurability <= 0 {
		return invalid("loot.weapon_durability must be positive")
	}
	names := make(map[string]bool, len(c.Upgrades))
	for _, u := range c.Upgrades {
		if !knownEffects[u.Effect] {
			return invalid("upgrade %q: unknown effect %q", u.Name, u.Effect)
		}
		if names[u.Name] {
			return invalid("duplicate upgrade %q", u.Name)
		}
		names[u.Name] = true
		if u.Weight <= 0 {
			return invalid("upgrade %q: weight must be positive", u.Name)
		}
	}
	return nil
}
