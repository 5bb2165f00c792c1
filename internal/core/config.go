package core

// RuntimeConfig contains platform settings passed to the game on Reset.
// The simulation world has a fixed size from the game config; ScreenW/ScreenH
// only describe the terminal.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// RunState is the top-level state of a run.
type RunState int

const (
	StatePlaying RunState = iota
	StateLevelUpMenu
	StatePaused
	StateGameOver
)

func (s RunState) String() string {
	switch s {
	case StatePlaying:
		return "playing"
	case StateLevelUpMenu:
		return "level-up"
	case StatePaused:
		return "paused"
	case StateGameOver:
		return "game-over"
	default:
		return "unknown"
	}
}

// GameState summarizes a run for the platform.
type GameState struct {
	Run            RunState
	Score          int
	Level          int
	Kills          int
	BossesDefeated int
	Ticks          int
	Health         int
	MaxHealth      int
}

// GameOver reports whether the run has ended.
func (s GameState) GameOver() bool {
	return s.Run == StateGameOver
}

// EventKind identifies something that happened during a tick.
type EventKind int

const (
	EventEnemyKilled EventKind = iota
	EventPlayerHit
	EventLevelUp
	EventBossSpawned
	EventBossDefeated
	EventWeaponDropped
	EventWeaponEquipped
	EventWeaponBroken
	EventUpgradeChosen
	EventGameOver
)

func (k EventKind) String() string {
	switch k {
	case EventEnemyKilled:
		return "enemy-killed"
	case EventPlayerHit:
		return "player-hit"
	case EventLevelUp:
		return "level-up"
	case EventBossSpawned:
		return "boss-spawned"
	case EventBossDefeated:
		return "boss-defeated"
	case EventWeaponDropped:
		return "weapon-dropped"
	case EventWeaponEquipped:
		return "weapon-equipped"
	case EventWeaponBroken:
		return "weapon-broken"
	case EventUpgradeChosen:
		return "upgrade-chosen"
	case EventGameOver:
		return "game-over"
	default:
		return "unknown"
	}
}

// Event is a notable occurrence within one tick.
type Event struct {
	Kind  EventKind
	Tick  int
	Value int    // level, damage or health depending on Kind
	Label string // archetype or upgrade name
}

// StepResult is returned by Step after each simulation tick.
type StepResult struct {
	State  GameState
	Events []Event
}
