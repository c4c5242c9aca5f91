package core

// Sprite is the opaque display handle an entity carries.
// The simulation never inspects it beyond passing it to a Surface.
type Sprite struct {
	Glyph   rune
	Color   Color
	Flipped bool // Drawn upside down (e.g. a dead spider)
}

// Flip returns the vertically mirrored variant of the sprite.
func (s Sprite) Flip() Sprite {
	s.Flipped = !s.Flipped
	return s
}

// Surface is a drawing target addressed in world coordinates.
type Surface interface {
	// Blit draws a sprite centered on a world position.
	Blit(img Sprite, at Vector2)
	// Disc fills a circle of world radius around center.
	Disc(center Vector2, radius float64, fill rune, c Color)
	// Meter draws a small bar under a world position showing value out of max.
	Meter(at Vector2, value, max int)
}
