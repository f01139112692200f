package pointer

// Geometry sizes the follower for each variant. The follower is square and
// centred on the pointer.
type Geometry struct {
	DefaultSize int `yaml:"default_size" env:"DEFAULT_SIZE" validate:"min=1,max=200"`
	TextSize    int `yaml:"text_size" env:"TEXT_SIZE" validate:"min=1,max=200"`
}

// ReferenceGeometry is the pixel layout of the original page: a 32px dot
// growing to 150px over the hero.
var ReferenceGeometry = Geometry{DefaultSize: 32, TextSize: 150}

// TerminalGeometry is the default layout in terminal cells.
var TerminalGeometry = Geometry{DefaultSize: 2, TextSize: 6}

// Size returns the follower edge length for v.
func (g Geometry) Size(v Variant) int {
	if v == VariantText {
		return g.TextSize
	}
	return g.DefaultSize
}

// Offset is half the follower's edge for v.
func (g Geometry) Offset(v Variant) int {
	return g.Size(v) / 2
}

// Anchor returns the follower's top-left corner for c.
func (g Geometry) Anchor(c Cursor) (int, int) {
	off := g.Offset(c.Variant)
	return c.X - off, c.Y - off
}

// Rect is an axis-aligned region in cell coordinates.
type Rect struct {
	X      int
	Y      int
	Width  int
	Height int
}

// Contains reports whether (x, y) lies inside r.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.Width && y >= r.Y && y < r.Y+r.Height
}

// Intersect returns the overlap of r and o. Disjoint rects give an empty
// rect that contains nothing.
func (r Rect) Intersect(o Rect) Rect {
	x0, y0 := max(r.X, o.X), max(r.Y, o.Y)
	x1, y1 := min(r.X+r.Width, o.X+o.Width), min(r.Y+r.Height, o.Y+o.Height)
	if x1 <= x0 || y1 <= y0 {
		return Rect{}
	}
	return Rect{X: x0, Y: y0, Width: x1 - x0, Height: y1 - y0}
}
