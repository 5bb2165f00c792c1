package config

import (
	_ "embed"
)

//go:embed defaults/survivor.yaml
var defaultSurvivorYAML []byte

// DefaultSurvivorConfig returns the built-in configuration. It matches
// defaults/survivor.yaml and is used when the embedded file cannot be parsed.
func DefaultSurvivorConfig() SurvivorConfig {
	return SurvivorConfig{
		World: WorldConfig{Width: 960, Height: 540},
		Player: PlayerConfig{
			Speed:              4,
			MaxHealth:          5,
			BaseDamage:         1,
			BulletSpeed:        10,
			BulletSize:         10,
			BulletCount:        1,
			SpreadDegrees:      10,
			ShootCooldownTicks: 10,
			InvincibilityTicks: 42,
			AnimationSpeed:     8,
			WeaponOffset:       30,
		},
		Enemies: EnemyConfig{
			KnockbackSpeed:   5,
			PushbackDistance: 50,
			AnimationSpeed:   8,
			Archetypes: []ArchetypeConfig{
				{ID: "orc", BaseHealth: 1, Speed: 1.5},
				{ID: "demon", BaseHealth: 2, Speed: 1.5},
			},
		},
		Boss: BossConfig{
			EveryLevels:         5,
			HealthPerLevel:      50,
			HighLevelThreshold:  10,
			HighLevelMultiplier: 5,
			Speed:               2,
			Scale:               2,
			SpawnX:              0.5,
			SpawnY:              0.25,
		},
		Spawner: SpawnerConfig{
			IntervalTicks:   60,
			Margin:          50,
			InitialPerSpawn: 1,
			HealthTiers: []HealthTier{
				{MaxLevel: 5, PerLevel: 1},
				{MaxLevel: 20, PerLevel: 1, Flat: 3},
				{PerLevel: 1.5},
			},
		},
		Progression: ProgressionConfig{
			XPScaleFactor: 4,
			OptionCount:   3,
			CoinValue:     1,
		},
		Loot: LootConfig{
			WeaponDropChance:       0.02,
			WeaponDurability:       40,
			FireballBonus:          3,
			FireballAnimationSpeed: 4,
			HomingStrength:         0.1,
			ExplosionRadius:        50,
			ExplosionDamage:        1,
		},
		Upgrades: []UpgradeConfig{
			{Name: "SNIPER", Description: "Bullets pierce one more enemy", Weight: 3, MinLevel: 6, Effect: EffectPierce, OneShot: true},
			{Name: "SPEEDSTER", Description: "+3 bullet speed, +0.8 move speed", Weight: 7, MinLevel: 1, Effect: EffectSpeed},
			{Name: "ARCHER", Description: "+2 bullets per volley", Weight: 6, MinLevel: 1, Effect: EffectMultishot},
			{Name: "BERSERK", Description: "+50% damage", Weight: 4, MinLevel: 3, Effect: EffectDamage},
			{Name: "HEALER", Description: "Restore health", Weight: 6, MinLevel: 3, Effect: EffectHeal},
			{Name: "INVESTOR", Description: "+25% experience from coins", Weight: 4, MinLevel: 1, Effect: EffectXP},
			{Name: "SEEKER", Description: "Bullets steer toward enemies", Weight: 2, MinLevel: 4, Effect: EffectHoming, OneShot: true},
			{Name: "BOMBER", Description: "Bullets explode on impact", Weight: 2, MinLevel: 8, Effect: EffectExplosive, OneShot: true},
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultSurvivorYAML
}
