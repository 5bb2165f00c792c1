package survivor

import (
	"fmt"

	"github.com/vovakirdan/tui-survivor/internal/config"
	"github.com/vovakirdan/tui-survivor/internal/core"
)

// Sprite ids used besides the enemy archetype ids.
const (
	SpritePlayer   = "player"
	SpriteBullet   = "bullet"
	SpriteFireball = "fireball"
	SpriteCoin     = "coin"
	SpriteWand     = "wand"
)

// Animation keys.
const (
	AnimIdle = "idle"
	AnimRun  = "run"
	AnimWalk = "walk"
	AnimFly  = "fly"
	AnimSpin = "spin"
)

// Assets supplies animation frames by sprite id and animation key.
// The simulation reads only frame counts and masks.
type Assets interface {
	Animation(spriteID, anim string) core.Animation
}

type animKey struct {
	sprite, anim string
}

// frameTable caches the animations a run needs.
type frameTable map[animKey]core.Animation

func requiredAnimations(cfg config.SurvivorConfig) []animKey {
	keys := []animKey{
		{SpritePlayer, AnimIdle},
		{SpritePlayer, AnimRun},
		{SpriteBullet, AnimFly},
		{SpriteFireball, AnimFly},
		{SpriteCoin, AnimSpin},
		{SpriteWand, AnimIdle},
	}
	for _, a := range cfg.Enemies.Archetypes {
		keys = append(keys, animKey{a.ID, AnimWalk})
	}
	return keys
}

func loadFrames(assets Assets, cfg config.SurvivorConfig) (frameTable, error) {
	if assets == nil {
		return nil, fmt.Errorf("survivor: no asset table")
	}
	table := make(frameTable)
	for _, k := range requiredAnimations(cfg) {
		anim := assets.Animation(k.sprite, k.anim)
		if len(anim) == 0 {
			return nil, fmt.Errorf("survivor: sprite %q has no %q frames", k.sprite, k.anim)
		}
		table[k] = anim
	}
	return table, nil
}

func (t frameTable) get(sprite, anim string) core.Animation {
	return t[animKey{sprite, anim}]
}

func (t frameTable) frame(sprite, anim string, i int) core.Frame {
	return t.get(sprite, anim).Frame(i)
}
