package annotate

// TextBox is one editable text region overlaid on the working image. Geometry
// is in working-image pixels.
type TextBox struct {
	ID         string
	Text       string
	Geometry   Geometry
	FontFamily string
	FontSize   float64
	Bold       bool
	Italic     bool
	Underline  bool
	Color      string // hex
}

// Geometry is the position and size of a box. All reducer methods return a
// new value; callers decide whether to commit it.
type Geometry struct {
	X, Y          float64
	Width, Height float64
}

// Corner names a resize handle.
type Corner string

const (
	NorthWest Corner = "nw"
	NorthEast Corner = "ne"
	SouthWest Corner = "sw"
	SouthEast Corner = "se"
)

// Minimum dimensions a resize can shrink a box to.
const (
	MinResizeWidth  = 40.0
	MinResizeHeight = 24.0
)

// Minimum dimensions of a box created from a recognized line.
const (
	MinOCRWidth  = 60.0
	MinOCRHeight = 24.0
)

// Drag moves the box by (dx, dy), clamped so it stays inside the given image
// bounds. Size is unchanged.
func (g Geometry) Drag(dx, dy, boundsWidth, boundsHeight float64) Geometry {
	g.X = clamp(g.X+dx, 0, boundsWidth-g.Width)
	g.Y = clamp(g.Y+dy, 0, boundsHeight-g.Height)
	return g
}

// Resize grows or shrinks the box from one corner handle by (dx, dy). The
// opposite corner stays fixed, and width/height never drop below the resize
// minimums. Dragging a west or north handle past the minimum pins the moving
// edge rather than flipping the box.
func (g Geometry) Resize(corner Corner, dx, dy float64) Geometry {
	out := g
	switch corner {
	case NorthEast, SouthEast:
		out.Width = maxf(MinResizeWidth, g.Width+dx)
	case NorthWest, SouthWest:
		out.Width = maxf(MinResizeWidth, g.Width-dx)
		out.X = g.X + (g.Width - out.Width)
	}
	switch corner {
	case SouthWest, SouthEast:
		out.Height = maxf(MinResizeHeight, g.Height+dy)
	case NorthWest, NorthEast:
		out.Height = maxf(MinResizeHeight, g.Height-dy)
		out.Y = g.Y + (g.Height - out.Height)
	}
	return out
}

func clamp(v, lo, hi float64) float64 {
	if hi < lo {
		hi = lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func maxf(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
