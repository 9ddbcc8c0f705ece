package game

import "math/rand"

// Terrain generation parameters.
const (
	defaultSmoothPasses = 10
	defaultCaveCount    = 5

	walkStepMin   = -41 // inclusive lower bound of a random-walk step
	walkStepSpan  = 82  // number of distinct step values (-41..40)
	walkFloorFrac = 4   // lowest surface is H/4
	walkCeilGap   = 50  // highest surface is H-50
	walkLowBand   = 0.5 // below this fraction of H the walk is nudged up
	walkHighBand  = 0.7 // above this fraction of H the walk is nudged down

	caveEdgeMargin = 100 // caves are centred at least this far from the side edges
	caveMinDepth   = 40  // px below the local surface
	caveBottomGap  = 100 // keep the cave centre this far above the field floor
	caveRxMin      = 20
	caveRxSpan     = 40
	caveRyMin      = 10
	caveRySpan     = 20
	shaftChance    = 0.5
	shaftHalfWidth = 4
)

// Generate builds a field from a smoothed, biased random-walk height profile.
func Generate(width, height int, rng *rand.Rand, passes int) *Field {
	f := NewField(width, height)
	heights := surfaceProfile(f.width, f.height, rng)
	heights = smoothProfile(heights, passes)
	for x, h := range heights {
		col := f.column(x)
		for y := f.height - h; y < f.height; y++ {
			col[y] = true
		}
	}
	f.recompute()
	return f
}

// surfaceProfile runs the biased random walk that shapes the skyline.
// The bias only pulls the walk back toward the 50%..70% band; the hard clamp
// keeps every column inside [H/4, H-50].
func surfaceProfile(width, height int, rng *rand.Rand) []int {
	lo := height / walkFloorFrac
	hi := height - walkCeilGap
	if hi < lo {
		hi = lo
	}
	cur := clampInt(height*2/3, lo, hi)
	heights := make([]int, width)
	heights[0] = cur
	bias := 0
	for i := 1; i < width; i++ {
		cur += rng.Intn(walkStepSpan) + walkStepMin + bias
		cur = clampInt(cur, lo, hi)

		switch {
		case float64(cur) < float64(height)*walkLowBand:
			bias = 1
		case float64(cur) > float64(height)*walkHighBand:
			bias = -1
		default:
			bias = 0
		}
		heights[i] = cur
	}
	return heights
}

// smoothProfile applies passes of a 3-point moving average. Endpoints are kept.
func smoothProfile(heights []int, passes int) []int {
	smoothed := append([]int(nil), heights...)
	next := make([]int, len(heights))
	for p := 0; p < passes; p++ {
		copy(next, smoothed)
		for i := 1; i < len(smoothed)-1; i++ {
			next[i] = (smoothed[i-1] + smoothed[i] + smoothed[i+1]) / 3
		}
		smoothed, next = next, smoothed
	}
	return smoothed
}

// Cave describes one carved elliptical void.
type Cave struct {
	X, Y   int // centre
	RX, RY int // semi-axes
	Shaft  bool
}

// CarveCaves clears count elliptical caves below the surface; about half of
// them get a vertical shaft up to open air.
func (f *Field) CarveCaves(count int, rng *rand.Rand) []Cave {
	caves := make([]Cave, 0, count)
	for i := 0; i < count; i++ {
		var x int
		if span := f.width - 2*caveEdgeMargin; span > 0 {
			x = caveEdgeMargin + rng.Intn(span)
		} else {
			x = rng.Intn(f.width)
		}
		top := f.SurfaceRow(x)
		y := top + caveMinDepth
		if span := f.height - top - caveBottomGap; span > 0 {
			y += rng.Intn(span)
		}
		y = clampInt(y, 0, f.height-1)

		c := Cave{
			X:  x,
			Y:  y,
			RX: caveRxMin + rng.Intn(caveRxSpan),
			RY: caveRyMin + rng.Intn(caveRySpan),
		}
		f.clearEllipse(c.X, c.Y, c.RX, c.RY)

		if rng.Float64() < shaftChance {
			c.Shaft = true
			f.clearShaft(c.X, c.Y-c.RY)
		}
		caves = append(caves, c)
	}
	f.recompute()
	return caves
}

func (f *Field) clearEllipse(cx, cy, rx, ry int) {
	frx, fry := float64(rx), float64(ry)
	for dx := -rx; dx <= rx; dx++ {
		for dy := -ry; dy <= ry; dy++ {
			x, y := cx+dx, cy+dy
			if !f.inBounds(x, y) {
				continue
			}
			nx, ny := float64(dx)/frx, float64(dy)/fry
			if nx*nx+ny*ny <= 1 {
				f.solid[x*f.height+y] = false
			}
		}
	}
}

// clearShaft opens a 9-px wide vertical passage from row bottom upward,
// through the solid crust above it, until air or the top edge is reached.
func (f *Field) clearShaft(cx, bottom int) {
	bottom = clampInt(bottom, 0, f.height-1)
	top := bottom
	for top > 0 && f.IsSolid(cx, top-1) {
		top--
	}
	for y := top; y <= bottom; y++ {
		for x := cx - shaftHalfWidth; x <= cx+shaftHalfWidth; x++ {
			if f.inBounds(x, y) {
				f.solid[x*f.height+y] = false
			}
		}
	}
}
