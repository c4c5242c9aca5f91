package sim

import "github.com/vovakirdan/tui-antfarm/internal/core"

// Nest drawing.
const (
	nestFill  = '·'
	nestColor = core.ColorGreen
)

// Stamp is an item dropped permanently onto the background.
type Stamp struct {
	Image core.Sprite
	At    core.Vector2
}

// Background is the static layer under all entities: the nest and everything
// ants have dropped on it.
type Background struct {
	bounds Bounds
	stamps []Stamp
}

// NewBackground creates an empty background for the given bounds.
func NewBackground(bounds Bounds) *Background {
	return &Background{bounds: bounds}
}

// Stamp paints an image onto the background at a world position.
func (b *Background) Stamp(img core.Sprite, at core.Vector2) {
	b.stamps = append(b.stamps, Stamp{Image: img, At: at})
}

// Stamps returns everything painted so far, oldest first.
func (b *Background) Stamps() []Stamp {
	return b.stamps
}

// Render draws the nest and the stamped items.
func (b *Background) Render(dst core.Surface) {
	dst.Disc(b.bounds.Nest, b.bounds.NestSize, nestFill, nestColor)
	for _, s := range b.stamps {
		dst.Blit(s.Image, s.At)
	}
}
