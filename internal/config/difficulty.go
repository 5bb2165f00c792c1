package config

import "fmt"

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// Presets lists the presets in menu order.
func Presets() []DifficultyPreset {
	return []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard}
}

// ParsePreset converts a flag value to a preset.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		return p, nil
	case "":
		return DifficultyNormal, nil
	}
	return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal or hard)", s)
}

// Description returns a one-line summary for menus.
func (p DifficultyPreset) Description() string {
	switch p {
	case DifficultyEasy:
		return "More health, slower waves"
	case DifficultyHard:
		return "Less health, faster waves, tougher enemies"
	default:
		return "The intended experience"
	}
}

// ApplySurvivorPreset adjusts the config for a difficulty preset. Normal
// leaves the config untouched.
func ApplySurvivorPreset(cfg *SurvivorConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Player.MaxHealth += 2
		cfg.Spawner.IntervalTicks = cfg.Spawner.IntervalTicks * 3 / 2
		cfg.Player.InvincibilityTicks = cfg.Player.InvincibilityTicks * 3 / 2
	case DifficultyHard:
		cfg.Player.MaxHealth = max(1, cfg.Player.MaxHealth-2)
		cfg.Spawner.IntervalTicks = max(1, cfg.Spawner.IntervalTicks*2/3)
		cfg.Loot.WeaponDropChance /= 2
		archetypes := make([]ArchetypeConfig, len(cfg.Enemies.Archetypes))
		for i, a := range cfg.Enemies.Archetypes {
			a.BaseHealth++
			archetypes[i] = a
		}
		cfg.Enemies.Archetypes = archetypes
	}
}
