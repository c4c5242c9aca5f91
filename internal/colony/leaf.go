package colony

import (
	"github.com/vovakirdan/tui-antfarm/internal/core"
	"github.com/vovakirdan/tui-antfarm/internal/sim"
)

// Leaf is food lying on the ground. It has no behavior of its own.
type Leaf struct {
	*sim.GameEntity
}

// NewLeaf creates a leaf with the given sprite.
func NewLeaf(image core.Sprite) *Leaf {
	return &Leaf{GameEntity: sim.NewGameEntity(sim.KindLeaf, image)}
}
