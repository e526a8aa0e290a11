package world

// Vec2 is a world-space position
type Vec2 struct {
	X float64
	Y float64
}

// Add returns v+o
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v-o
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

// Rect is an axis-aligned world-space rectangle
type Rect struct {
	Min Vec2
	Max Vec2
}

// SquareAt returns the square of the given side length centred on center
func SquareAt(center Vec2, side float64) Rect {
	half := side / 2
	return Rect{
		Min: Vec2{X: center.X - half, Y: center.Y - half},
		Max: Vec2{X: center.X + half, Y: center.Y + half},
	}
}

// Overlaps reports whether r and o share interior area. Touching edges do not overlap.
// A zero-size rect overlaps o when it lies strictly inside it.
func (r Rect) Overlaps(o Rect) bool {
	return r.Min.X < o.Max.X && o.Min.X < r.Max.X &&
		r.Min.Y < o.Max.Y && o.Min.Y < r.Max.Y
}
