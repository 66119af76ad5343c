package maze

import "github.com/vovakirdan/joystick-maze/internal/core"

// Intersects reports whether p lies inside any wall. Wall edges count as
// inside on all four sides, so a point at (w.X+w.W, w.Y+w.H) collides.
// It stops at the first matching wall.
func Intersects(p core.Vec2, walls []core.Rect) bool {
	for _, w := range walls {
		if w.ContainsInclusive(p) {
			return true
		}
	}
	return false
}

// World is a fixed, ordered wall set.
type World struct {
	walls []core.Rect
}

// NewWorld copies walls into a new World. Later changes to the caller's
// slice do not affect it.
func NewWorld(walls []core.Rect) World {
	return World{walls: append([]core.Rect(nil), walls...)}
}

// Intersects reports whether p collides with any wall of the world.
func (w World) Intersects(p core.Vec2) bool {
	return Intersects(p, w.walls)
}

// Walls returns a copy of the walls in their fixed order.
func (w World) Walls() []core.Rect {
	return append([]core.Rect(nil), w.walls...)
}

// Len returns the number of walls.
func (w World) Len() int {
	return len(w.walls)
}

// BorderWalls returns the four walls framing a width x height display, each
// thickness pixels wide, in top, left, bottom, right order.
func BorderWalls(width, height, thickness int) []core.Rect {
	return []core.Rect{
		core.NewRect(0, 0, width, thickness),
		core.NewRect(0, 0, thickness, height),
		core.NewRect(0, height-thickness, width, thickness),
		core.NewRect(width-thickness, 0, thickness, height),
	}
}
