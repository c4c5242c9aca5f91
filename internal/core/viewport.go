package core

import "math"

// Meter rendering characters.
const (
	meterFull  = '█'
	meterEmpty = '░'
	meterCells = 3
)

// Viewport projects a world of the given size onto a region of a Screen.
// It implements Surface.
type Viewport struct {
	screen *Screen
	region Rect
	worldW float64
	worldH float64
}

// NewViewport creates a viewport drawing a worldW x worldH world into region.
func NewViewport(screen *Screen, region Rect, worldW, worldH float64) *Viewport {
	return &Viewport{
		screen: screen,
		region: region,
		worldW: worldW,
		worldH: worldH,
	}
}

// Region returns the screen area the viewport draws into.
func (v *Viewport) Region() Rect {
	return v.region
}

// ToCell maps a world position to a screen cell.
// ok is false when the position falls outside the region.
func (v *Viewport) ToCell(at Vector2) (x, y int, ok bool) {
	if v.region.Empty() || v.worldW <= 0 || v.worldH <= 0 {
		return 0, 0, false
	}
	fx := at.X / v.worldW * float64(v.region.W)
	fy := at.Y / v.worldH * float64(v.region.H)
	x = v.region.X + int(math.Floor(fx))
	y = v.region.Y + int(math.Floor(fy))
	return x, y, v.region.Contains(x, y)
}

// toWorld maps the center of a screen cell back to world coordinates.
func (v *Viewport) toWorld(x, y int) Vector2 {
	wx := (float64(x-v.region.X) + 0.5) / float64(v.region.W) * v.worldW
	wy := (float64(y-v.region.Y) + 0.5) / float64(v.region.H) * v.worldH
	return Vec2(wx, wy)
}

// Blit draws a sprite at the cell containing at.
// Flipped sprites are drawn dimmed.
func (v *Viewport) Blit(img Sprite, at Vector2) {
	x, y, ok := v.ToCell(at)
	if !ok {
		return
	}
	c := img.Color
	if img.Flipped {
		c = ColorGray
	}
	v.screen.SetColored(x, y, img.Glyph, c)
}

// Disc fills every cell whose center lies within radius of center.
func (v *Viewport) Disc(center Vector2, radius float64, fill rune, c Color) {
	if v.region.Empty() {
		return
	}
	for y := v.region.Y; y < v.region.Bottom(); y++ {
		for x := v.region.X; x < v.region.Right(); x++ {
			if v.toWorld(x, y).DistanceTo(center) < radius {
				v.screen.SetColored(x, y, fill, c)
			}
		}
	}
}

// Meter draws a short bar on the row below at.
func (v *Viewport) Meter(at Vector2, value, maxValue int) {
	x, y, ok := v.ToCell(at)
	if !ok || maxValue <= 0 {
		return
	}
	y++
	if !v.region.Contains(x, y) {
		return
	}
	filled := int(math.Ceil(float64(Clamp(value, 0, maxValue)) / float64(maxValue) * meterCells))
	for i := 0; i < meterCells; i++ {
		cx := x - meterCells/2 + i
		if !v.region.Contains(cx, y) {
			continue
		}
		if i < filled {
			v.screen.SetColored(cx, y, meterFull, ColorGreen)
		} else {
			v.screen.SetColored(cx, y, meterEmpty, ColorRed)
		}
	}
}
