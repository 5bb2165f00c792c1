// Package registry provides a global registry of glyph sprites.
// Sprite sets register themselves in init() functions, so the game and the
// renderer can look up art by id without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/tui-survivor/internal/core"
)

// Kind groups sprites for listings.
type Kind int

const (
	KindCharacter Kind = iota
	KindEnemy
	KindProjectile
	KindItem
)

func (k Kind) String() string {
	switch k {
	case KindCharacter:
		return "character"
	case KindEnemy:
		return "enemy"
	case KindProjectile:
		return "projectile"
	case KindItem:
		return "item"
	default:
		return "unknown"
	}
}

// Sprite is a named set of animations drawn in one color.
type Sprite struct {
	ID         string
	Title      string
	Kind       Kind
	Color      core.Color
	Animations map[string]core.Animation
}

// SpriteInfo contains metadata about a registered sprite.
type SpriteInfo struct {
	ID     string
	Title  string
	Kind   Kind
	Frames int // total frames over all animations
}

var (
	sprites = make(map[string]Sprite)
	mu      sync.RWMutex
)

// Register adds a sprite to the registry.
// Panics if the id is empty or already registered.
func Register(s Sprite) {
	mu.Lock()
	defer mu.Unlock()

	if s.ID == "" {
		panic("registry: sprite without id")
	}
	if _, exists := sprites[s.ID]; exists {
		panic(fmt.Sprintf("registry: sprite %q already registered", s.ID))
	}
	sprites[s.ID] = s
}

// Lookup returns a registered sprite by id.
func Lookup(id string) (Sprite, error) {
	mu.RLock()
	defer mu.RUnlock()

	s, ok := sprites[id]
	if !ok {
		return Sprite{}, fmt.Errorf("registry: unknown sprite %q", id)
	}
	return s, nil
}

// Exists checks if a sprite with the given id is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := sprites[id]
	return ok
}

// List returns information about all registered sprites, sorted by kind
// and id.
func List() []SpriteInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]SpriteInfo, 0, len(sprites))
	for _, s := range sprites {
		frames := 0
		for _, a := range s.Animations {
			frames += len(a)
		}
		result = append(result, SpriteInfo{ID: s.ID, Title: s.Title, Kind: s.Kind, Frames: frames})
	}

	sort.Slice(result, func(i, j int) bool {
		if result[i].Kind != result[j].Kind {
			return result[i].Kind < result[j].Kind
		}
		return result[i].ID < result[j].ID
	})
	return result
}

// Table serves animations from the global registry.
type Table struct{}

// Animation returns the frames of a sprite animation, or nil when either
// the sprite or the animation is unknown.
func (Table) Animation(spriteID, anim string) core.Animation {
	s, err := Lookup(spriteID)
	if err != nil {
		return nil
	}
	return s.Animations[anim]
}

// Color returns the sprite color, or the default color for unknown sprites.
func (Table) Color(spriteID string) core.Color {
	s, err := Lookup(spriteID)
	if err != nil {
		return core.ColorDefault
	}
	return s.Color
}
