package game

// Field is the destructible ground of a match.
//
// Occupancy is stored column-major (index = x*height + y) so that the
// per-column passes (surface scan, compaction) walk contiguous memory.
// surface is a derived cache: every mutating method recomputes it before
// returning, so readers never see a stale value.
type Field struct {
	width    int
	height   int
	solid    []bool // column-major: index = x*height + y
	surface  []int  // per-column distance from the bottom edge to the top solid cell
	revision int    // bumped on every mutation
}

// NewField creates an all-air field.
func NewField(width, height int) *Field {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	return &Field{
		width:   width,
		height:  height,
		solid:   make([]bool, width*height),
		surface: make([]int, width),
	}
}

// NewFlatField creates a field whose every column is solid up to groundHeight.
func NewFlatField(width, height, groundHeight int) *Field {
	f := NewField(width, height)
	groundHeight = clampInt(groundHeight, 0, f.height)
	for x := 0; x < f.width; x++ {
		col := f.column(x)
		for y := f.height - groundHeight; y < f.height; y++ {
			col[y] = true
		}
	}
	f.recompute()
	return f
}

func (f *Field) Width() int  { return f.width }
func (f *Field) Height() int { return f.height }

// Revision increases every time the occupancy changes.
func (f *Field) Revision() int { return f.revision }

// inBounds returns true if (x, y) is within the field.
func (f *Field) inBounds(x, y int) bool {
	return x >= 0 && x < f.width && y >= 0 && y < f.height
}

// column returns the occupancy slice of column x (top row first).
func (f *Field) column(x int) []bool {
	return f.solid[x*f.height : (x+1)*f.height]
}

// IsSolid reports whether (x, y) holds ground. Out-of-bounds cells are air.
func (f *Field) IsSolid(x, y int) bool {
	if !f.inBounds(x, y) {
		return false
	}
	return f.solid[x*f.height+y]
}

// HeightAt returns the cached surface height of column x, or 0 outside the field.
func (f *Field) HeightAt(x int) int {
	if x < 0 || x >= f.width {
		return 0
	}
	return f.surface[x]
}

// SurfaceRow returns the row index of the topmost solid cell in column x
// (height for an empty or out-of-range column).
func (f *Field) SurfaceRow(x int) int {
	return f.height - f.HeightAt(x)
}

// SolidCount returns the number of solid cells in the whole field.
func (f *Field) SolidCount() int {
	n := 0
	for _, s := range f.solid {
		if s {
			n++
		}
	}
	return n
}

// Fill sets every in-bounds cell of the inclusive rectangle (x0,y0)-(x1,y1).
func (f *Field) Fill(x0, y0, x1, y1 int, solid bool) {
	if x0 > x1 {
		x0, x1 = x1, x0
	}
	if y0 > y1 {
		y0, y1 = y1, y0
	}
	for x := max(x0, 0); x <= min(x1, f.width-1); x++ {
		col := f.column(x)
		for y := max(y0, 0); y <= min(y1, f.height-1); y++ {
			col[y] = solid
		}
	}
	f.recompute()
}

// Explode clears the disc of the given radius around (cx, cy), compacts every
// column and returns how many solid cells the blast removed.
func (f *Field) Explode(cx, cy, radius int) int {
	removed := 0
	r2 := radius * radius
	for dx := -radius; dx <= radius; dx++ {
		x := cx + dx
		if x < 0 || x >= f.width {
			continue
		}
		col := f.column(x)
		for dy := -radius; dy <= radius; dy++ {
			y := cy + dy
			if y < 0 || y >= f.height || dx*dx+dy*dy > r2 {
				continue
			}
			if col[y] {
				col[y] = false
				removed++
			}
		}
	}
	f.slide()
	f.recompute()
	return removed
}

// slide drops the remaining mass of every column to the bottom rows.
// Columns settle independently: a chunk cut loose by a crater falls straight
// down rather than tumbling as a rigid body.
func (f *Field) slide() {
	for x := 0; x < f.width; x++ {
		col := f.column(x)
		count := 0
		for _, s := range col {
			if s {
				count++
			}
		}
		top := f.height - count
		for y := range col {
			col[y] = y >= top
		}
	}
}

// recompute rebuilds the surface cache from the occupancy grid.
func (f *Field) recompute() {
	for x := 0; x < f.width; x++ {
		f.surface[x] = 0
		col := f.column(x)
		for y, s := range col {
			if s {
				f.surface[x] = f.height - y
				break
			}
		}
	}
	f.revision++
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
