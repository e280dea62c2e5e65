package boxdrop

import (
	"github.com/vovakirdan/phys-arcade/internal/core"
	"github.com/vovakirdan/phys-arcade/internal/physics"
)

// EntityTag identifies the gameplay role of a simulated body.
type EntityTag int

const (
	TagNone EntityTag = iota
	TagPlayer
	TagBox
	TagGround
)

// String returns a human-readable name for the tag.
func (t EntityTag) String() string {
	switch t {
	case TagPlayer:
		return "Player"
	case TagBox:
		return "Box"
	case TagGround:
		return "Ground"
	default:
		return "None"
	}
}

// Visual holds the per-entity rendering attributes. Mutated once per frame by
// the proximity and animation logic, read once per frame by the render pass.
type Visual struct {
	Tint       core.RGB
	Texture    string // Texture key resolved by the platform
	UseTexture bool
	Scale      float64 // Animation scale multiplier, 1.0 at rest
	AnimTime   float64 // Accumulated animation time while Animating
	Animating  bool
}

// Entity associates a physics body with its gameplay tag and visual state.
// Entities are value-owned by the game; the tag association lives and dies
// with the entity, so there is no per-body cleanup bookkeeping.
type Entity struct {
	Tag    EntityTag
	Body   *physics.Body
	Visual Visual
}

// newEntity builds an entity around a freshly created body.
func newEntity(tag EntityTag, body *physics.Body, tint core.RGB, texture string, useTexture bool) *Entity {
	return &Entity{
		Tag:  tag,
		Body: body,
		Visual: Visual{
			Tint:       tint,
			Texture:    texture,
			UseTexture: useTexture,
			Scale:      1.0,
		},
	}
}
