// Package core provides fundamental types and utilities for the maze.
// Nothing here touches a device, so the same code runs in host tests and on
// the board.
package core

import "strconv"

// Vec2 is an integer (x, y) pair in display-pixel space.
// Used for positions and movement deltas.
type Vec2 struct {
	X, Y int
}

// V is shorthand for Vec2{X: x, Y: y}.
func V(x, y int) Vec2 {
	return Vec2{X: x, Y: y}
}

// Add returns the component-wise sum of v and o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// String formats v as "(x,y)".
func (v Vec2) String() string {
	return "(" + strconv.Itoa(v.X) + "," + strconv.Itoa(v.Y) + ")"
}

// IsZero reports whether both components are zero.
func (v Vec2) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

// Rect represents an axis-aligned rectangle in display-pixel space.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// CenteredSquare returns a size x size square whose top-left corner sits at
// center - size/2 on both axes, matching how the ball and goal are drawn.
func CenteredSquare(center Vec2, size int) Rect {
	return Rect{X: center.X - size/2, Y: center.Y - size/2, W: size, H: size}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Contains returns true if the point (x, y) is inside this rectangle,
// with the right and bottom edges excluded.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// ContainsInclusive reports whether p lies inside r or on any of its four
// edges, including the right and bottom edges at X+W and Y+H.
// Wall collisions use this rule.
func (r Rect) ContainsInclusive(p Vec2) bool {
	return p.X >= r.X && p.X <= r.Right() &&
		p.Y >= r.Y && p.Y <= r.Bottom()
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Abs returns the absolute value of an integer.
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
