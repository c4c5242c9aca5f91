package core

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
)

// Vector2 is a 2D point or direction in world coordinates.
// Arithmetic returns new values; only Normalize mutates the receiver.
type Vector2 struct {
	X, Y float64
}

// Vec2 creates a vector from its components.
func Vec2(x, y float64) Vector2 {
	return Vector2{X: x, Y: y}
}

func fromMgl(v mgl64.Vec2) Vector2 {
	return Vector2{X: v.X(), Y: v.Y()}
}

func (v Vector2) mgl() mgl64.Vec2 {
	return mgl64.Vec2{v.X, v.Y}
}

// Add returns v + o.
func (v Vector2) Add(o Vector2) Vector2 {
	return fromMgl(v.mgl().Add(o.mgl()))
}

// Sub returns v - o.
func (v Vector2) Sub(o Vector2) Vector2 {
	return fromMgl(v.mgl().Sub(o.mgl()))
}

// Scale returns v multiplied by s.
func (v Vector2) Scale(s float64) Vector2 {
	return fromMgl(v.mgl().Mul(s))
}

// Length returns the Euclidean length of v.
func (v Vector2) Length() float64 {
	return v.mgl().Len()
}

// Normalized returns the unit vector pointing along v.
// The zero vector normalizes to itself.
func (v Vector2) Normalized() Vector2 {
	if v.Length() == 0 {
		return Vector2{}
	}
	return fromMgl(v.mgl().Normalize())
}

// Normalize scales v in place to unit length.
func (v *Vector2) Normalize() {
	*v = v.Normalized()
}

// DistanceTo returns the distance between v and o.
func (v Vector2) DistanceTo(o Vector2) float64 {
	return o.mgl().Sub(v.mgl()).Len()
}

// IsZero reports whether both components are zero.
func (v Vector2) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

// String formats the vector as "(x, y)".
func (v Vector2) String() string {
	return fmt.Sprintf("(%g, %g)", v.X, v.Y)
}
