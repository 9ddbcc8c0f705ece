package game

import (
	"image/color"
	"math"
)

// --- Ballistics constants ---

const (
	gravity         = 0.5 // px/tick² downward
	launchSpeed     = 20  // px/tick muzzle velocity
	explosionRadius = 30  // px crater and damage radius
	restitution     = 0.8 // velocity kept on a boundary bounce
	projectileSize  = 6   // draw radius, px
)

// Impact records where and how a projectile exploded.
type Impact struct {
	X, Y    int   // crater centre cell
	Removed int   // solid cells cleared by the blast
	Hits    []int // roster indices that took damage
}

// Projectile is a single ballistic shell. It starts active and becomes
// inactive exactly once, when it hits ground.
type Projectile struct {
	x, y   float64
	vx, vy float64
	owner  int
	color  color.RGBA
	active bool
	impact *Impact
}

// NewProjectile creates an active projectile.
func NewProjectile(x, y, vx, vy float64, owner int, clr color.RGBA) *Projectile {
	return &Projectile{x: x, y: y, vx: vx, vy: vy, owner: owner, color: clr, active: true}
}

func (p *Projectile) Position() (float64, float64) { return p.x, p.y }
func (p *Projectile) Velocity() (float64, float64) { return p.vx, p.vy }
func (p *Projectile) Owner() int                   { return p.owner }
func (p *Projectile) Color() color.RGBA            { return p.color }
func (p *Projectile) Active() bool                 { return p.active }
func (p *Projectile) Radius() float64              { return projectileSize }

// Impact returns the explosion record, or nil while still in flight.
func (p *Projectile) Impact() *Impact { return p.impact }

// Update advances the projectile one tick and returns true if it exploded
// during this tick. An exploded projectile is inert.
func (p *Projectile) Update(field *Field, roster []*Combatant) bool {
	if !p.active {
		return false
	}

	p.vy += gravity

	oldX, oldY := p.x, p.y
	p.x += p.vx
	p.y += p.vy

	// Side walls and ceiling bounce with energy loss; the floor is always ground.
	w := float64(field.Width())
	if p.x < 0 {
		p.x = 0
		p.vx = -p.vx * restitution
	} else if p.x >= w {
		p.x = w - 1
		p.vx = -p.vx * restitution
	}
	if p.y < 0 {
		p.y = 0
		p.vy = -p.vy * restitution
	}

	if field.IsSolid(cellOf(p.x), cellOf(p.y)) {
		p.explode(field, roster)
		return true
	}

	// A fast shell can step over thin ground between ticks, so its path from
	// the previous position is sampled twice per px of speed.
	if math.Abs(p.vx) > 1 || math.Abs(p.vy) > 1 {
		steps := int(math.Ceil(2 * math.Max(math.Abs(p.vx), math.Abs(p.vy))))
		for i := 1; i <= steps; i++ {
			t := float64(i) / float64(steps)
			sx := oldX + (p.x-oldX)*t
			sy := oldY + (p.y-oldY)*t
			if field.IsSolid(cellOf(sx), cellOf(sy)) {
				p.x, p.y = sx, sy
				p.explode(field, roster)
				return true
			}
		}
	}
	return false
}

// explode cuts the crater, damages everyone inside the blast and lets the
// survivors settle onto what is left.
func (p *Projectile) explode(field *Field, roster []*Combatant) {
	p.active = false

	imp := &Impact{X: cellOf(p.x), Y: cellOf(p.y)}
	imp.Removed = field.Explode(imp.X, imp.Y, explosionRadius)

	for _, c := range roster {
		if math.Hypot(float64(c.x)-p.x, c.y-p.y) < explosionRadius {
			c.Damage()
			imp.Hits = append(imp.Hits, c.index)
		}
	}
	for _, c := range roster {
		c.Resettle(field)
	}
	p.impact = imp
}

// cellOf maps a continuous coordinate to its grid cell.
func cellOf(v float64) int {
	return int(math.Round(v))
}
