package ui

import (
	"image/color"
	"strconv"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/Garsondee/Crater-Duel/internal/game"
)

const (
	barrelWidth     = 5
	shieldLabelLift = 35 // px above the body centre
)

// drawCombatant renders body, barrel and the shield count. Destroyed
// combatants are not drawn.
func drawCombatant(screen *ebiten.Image, c *game.Combatant) {
	if c.Eliminated() {
		return
	}
	w, h := c.Size()
	cx, cy := float32(c.X()), float32(c.Y())
	clr := c.Color()

	vector.FillRect(screen, cx-float32(w)/2, cy-float32(h)/2, float32(w), float32(h), clr, false)
	mx, my := c.Muzzle()
	vector.StrokeLine(screen, cx, cy, float32(mx), float32(my), barrelWidth, clr, true)

	label := strconv.Itoa(c.Health())
	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(cx)-float64(len(label)*hudCharW)/2, float64(cy)-shieldLabelLift-hudLineH/2)
	op.ColorScale.ScaleWithColor(color.White)
	text.Draw(screen, label, hudFace, op)
}

func drawProjectile(screen *ebiten.Image, p *game.Projectile) {
	x, y := p.Position()
	vector.FillCircle(screen, float32(x), float32(y), float32(p.Radius()), p.Color(), true)
}
