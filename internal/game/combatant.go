package game

import (
	"fmt"
	"image/color"
	"math"
)

// --- Combatant constants ---

const (
	startHealth    = 5
	bodyWidth      = 40
	bodyHeight     = 20
	barrelLength   = 40
	barrelStepDeg  = 2
	initialAngle   = 45
	minBarrelAngle = 0
	maxBarrelAngle = 180
)

// CombatantColors is the per-seat colour: red, blue, green, yellow.
var CombatantColors = [MaxPlayers]color.RGBA{
	{R: 255, G: 0, B: 0, A: 255},
	{R: 0, G: 0, B: 255, A: 255},
	{R: 0, G: 255, B: 0, A: 255},
	{R: 255, G: 255, B: 0, A: 255},
}

// Combatant is a tank anchored to the ground surface.
type Combatant struct {
	index  int
	label  string // "P1".."P4"
	color  color.RGBA
	x      int     // anchor column
	y      float64 // body centre; only ever moves down
	angle  int     // barrel, degrees: 0 = +x, 90 = up
	health int
}

// NewCombatant places a combatant on the surface of column x.
func NewCombatant(index, x int, field *Field) *Combatant {
	c := &Combatant{
		index:  index,
		label:  fmt.Sprintf("P%d", index+1),
		color:  CombatantColors[index%MaxPlayers],
		x:      x,
		angle:  initialAngle,
		health: startHealth,
	}
	c.y = supportedY(field, x)
	return c
}

func (c *Combatant) Index() int        { return c.index }
func (c *Combatant) Label() string     { return c.label }
func (c *Combatant) Color() color.RGBA { return c.color }
func (c *Combatant) X() int            { return c.x }
func (c *Combatant) Y() float64        { return c.y }
func (c *Combatant) Angle() int        { return c.angle }
func (c *Combatant) Health() int       { return c.health }

// Eliminated is true once health has run out.
func (c *Combatant) Eliminated() bool { return c.health <= 0 }

// Size returns the body dimensions in px.
func (c *Combatant) Size() (w, h int) { return bodyWidth, bodyHeight }

// RotateBarrel turns the barrel one step; direction is reduced to its sign.
func (c *Combatant) RotateBarrel(direction int) {
	switch {
	case direction > 0:
		direction = 1
	case direction < 0:
		direction = -1
	}
	c.angle = clampInt(c.angle+barrelStepDeg*direction, minBarrelAngle, maxBarrelAngle)
}

// Muzzle returns the barrel tip.
func (c *Combatant) Muzzle() (float64, float64) {
	rad := float64(c.angle) * math.Pi / 180
	return float64(c.x) + barrelLength*math.Cos(rad), c.y - barrelLength*math.Sin(rad)
}

// Fire spawns a projectile at the muzzle travelling along the barrel.
func (c *Combatant) Fire() *Projectile {
	mx, my := c.Muzzle()
	rad := float64(c.angle) * math.Pi / 180
	return NewProjectile(mx, my, launchSpeed*math.Cos(rad), -launchSpeed*math.Sin(rad), c.index, c.color)
}

// Resettle drops the combatant onto the ground beneath it. Terrain only ever
// loses mass, so the combatant is never lifted.
func (c *Combatant) Resettle(field *Field) {
	if target := supportedY(field, c.x); c.y < target {
		c.y = target
	}
}

// Damage removes one point of health and reports whether it is now gone.
func (c *Combatant) Damage() bool {
	c.health--
	return c.health <= 0
}

// supportedY is the body-centre y of a combatant resting on column x.
func supportedY(field *Field, x int) float64 {
	return float64(field.Height()-field.HeightAt(x)) - bodyHeight/2
}
