// Package config provides YAML-based game configuration loading, validation
// and difficulty presets for the survivor game.
package config

// SurvivorConfig contains all tunable parameters of a run.
type SurvivorConfig struct {
	World       WorldConfig       `yaml:"world"`
	Player      PlayerConfig      `yaml:"player"`
	Enemies     EnemyConfig       `yaml:"enemies"`
	Boss        BossConfig        `yaml:"boss"`
	Spawner     SpawnerConfig     `yaml:"spawner"`
	Progression ProgressionConfig `yaml:"progression"`
	Loot        LootConfig        `yaml:"loot"`
	Upgrades    []UpgradeConfig   `yaml:"upgrades"`
}

// WorldConfig is the size of the playfield in world units.
type WorldConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PlayerConfig defines the player's starting stats.
type PlayerConfig struct {
	Speed              float64 `yaml:"speed"`
	MaxHealth          int     `yaml:"max_health"`
	BaseDamage         float64 `yaml:"base_damage"`
	BulletSpeed        float64 `yaml:"bullet_speed"`
	BulletSize         float64 `yaml:"bullet_size"`
	BulletCount        int     `yaml:"bullet_count"`
	SpreadDegrees      float64 `yaml:"spread_degrees"`       // angle between volley projectiles
	ShootCooldownTicks int     `yaml:"shoot_cooldown_ticks"` // ticks between volleys
	InvincibilityTicks int     `yaml:"invincibility_ticks"`  // grace period after a hit
	AnimationSpeed     int     `yaml:"animation_speed"`      // ticks per frame
	WeaponOffset       float64 `yaml:"weapon_offset"`        // equipped weapon distance from the player
}

// EnemyConfig defines regular enemies and their shared motion.
type EnemyConfig struct {
	KnockbackSpeed   float64           `yaml:"knockback_speed"`
	PushbackDistance float64           `yaml:"pushback_distance"`
	AnimationSpeed   int               `yaml:"animation_speed"`
	Archetypes       []ArchetypeConfig `yaml:"archetypes"`
}

// ArchetypeConfig is the stat line of one enemy kind. ID must match a
// sprite in the asset table.
type ArchetypeConfig struct {
	ID         string  `yaml:"id"`
	BaseHealth int     `yaml:"base_health"`
	Speed      float64 `yaml:"speed"`
}

// BossConfig defines boss encounters.
type BossConfig struct {
	EveryLevels         int     `yaml:"every_levels"`
	HealthPerLevel      int     `yaml:"health_per_level"`
	HighLevelThreshold  int     `yaml:"high_level_threshold"`
	HighLevelMultiplier int     `yaml:"high_level_multiplier"`
	Speed               float64 `yaml:"speed"`
	Scale               float64 `yaml:"scale"`
	SpawnX              float64 `yaml:"spawn_x"` // fraction of world width
	SpawnY              float64 `yaml:"spawn_y"` // fraction of world height
}

// MaxHealth returns the boss health for the level it spawns at.
func (b BossConfig) MaxHealth(level int) int {
	hp := b.HealthPerLevel * level
	if level > b.HighLevelThreshold {
		hp *= b.HighLevelMultiplier
	}
	return hp
}

// SpawnerConfig defines the periodic enemy spawner.
type SpawnerConfig struct {
	IntervalTicks   int          `yaml:"interval_ticks"`
	Margin          float64      `yaml:"margin"` // distance outside the world edge
	InitialPerSpawn int          `yaml:"initial_per_spawn"`
	HealthTiers     []HealthTier `yaml:"health_tiers"`
}

// HealthTier adds PerLevel*level + Flat health to spawned enemies while the
// player level is at most MaxLevel. MaxLevel 0 matches every level.
type HealthTier struct {
	MaxLevel int     `yaml:"max_level"`
	PerLevel float64 `yaml:"per_level"`
	Flat     int     `yaml:"flat"`
}

// HealthBonus returns the extra health for enemies spawned at level.
// The first matching tier wins.
func (s SpawnerConfig) HealthBonus(level int) int {
	for _, t := range s.HealthTiers {
		if t.MaxLevel == 0 || level <= t.MaxLevel {
			return int(t.PerLevel*float64(level)) + t.Flat
		}
	}
	return 0
}

// MaxUpgradeOptions is the number of level-up choices the select keys can reach.
const MaxUpgradeOptions = 3

// ProgressionConfig defines experience and level-up rules.
type ProgressionConfig struct {
	XPScaleFactor float64 `yaml:"xp_scale_factor"` // xp for level L is L*L*factor
	OptionCount   int     `yaml:"option_count"`
	CoinValue     float64 `yaml:"coin_value"`
}

// XPForLevel returns the experience required to leave level.
func (p ProgressionConfig) XPForLevel(level int) float64 {
	return float64(level*level) * p.XPScaleFactor
}

// LootConfig defines drops and projectile specials.
type LootConfig struct {
	WeaponDropChance       float64 `yaml:"weapon_drop_chance"`
	WeaponDurability       int     `yaml:"weapon_durability"`
	FireballBonus          int     `yaml:"fireball_bonus"`
	FireballAnimationSpeed int     `yaml:"fireball_animation_speed"`
	HomingStrength         float64 `yaml:"homing_strength"`
	ExplosionRadius        float64 `yaml:"explosion_radius"`
	ExplosionDamage        int     `yaml:"explosion_damage"`
}

// Upgrade effects understood by the game.
const (
	EffectDamage    = "damage"
	EffectSpeed     = "speed"
	EffectMultishot = "multishot"
	EffectHeal      = "heal"
	EffectXP        = "xp"
	EffectPierce    = "pierce"
	EffectHoming    = "homing"
	EffectExplosive = "explosive"
)

// UpgradeConfig is one entry of the upgrade catalog.
type UpgradeConfig struct {
	Name        string  `yaml:"name"`
	Description string  `yaml:"description"`
	Weight      float64 `yaml:"weight"`
	MinLevel    int     `yaml:"min_level"`
	Effect      string  `yaml:"effect"`
	OneShot     bool    `yaml:"one_shot"` // removed from the catalog once taken
}
