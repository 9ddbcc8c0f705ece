package ui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/Garsondee/Crater-Duel/internal/game"
)

// basicfont.Face7x13 metrics.
const (
	hudCharW = 7
	hudLineH = 13
	hudPadX  = 10
	hudPadY  = 8
)

var hudFace = text.NewGoXFace(basicfont.Face7x13)

var (
	hudPanelFill   = color.RGBA{R: 6, G: 10, B: 6, A: 170}
	hudHighlight   = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	hudBannerFill  = color.RGBA{R: 0, G: 0, B: 0, A: 200}
	hudLegendColor = color.RGBA{R: 230, G: 230, B: 230, A: 255}
)

const hudLegend = "<-/-> aim   SPACE fire   R restart   C copy report"

func drawText(dst *ebiten.Image, s string, x, y float64, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	op.LineSpacing = hudLineH
	text.Draw(dst, s, hudFace, op)
}

// drawHUD renders one shields slot per combatant across the top of the field,
// the current combatant's aim, the key legend and, once the match is over,
// the result banner.
func (g *Game) drawHUD(screen *ebiten.Image) {
	m := g.match
	roster := m.Combatants()
	slotW := float32(g.fieldW) / float32(len(roster))
	slotH := float32(hudLineH + 2*hudPadY)

	vector.FillRect(screen, 0, 0, float32(g.fieldW), slotH, hudPanelFill, false)
	for i, c := range roster {
		x := float32(i) * slotW
		label := fmt.Sprintf("Player %d: %d shields", i+1, max(c.Health(), 0))
		drawText(screen, label, float64(x+hudPadX), hudPadY, c.Color())
		if i == m.Current() && m.Phase() != game.PhaseGameOver {
			vector.StrokeRect(screen, x+2, 2, slotW-4, slotH-4, 2, hudHighlight, false)
		}
	}

	if m.Phase() != game.PhaseGameOver {
		c := m.CurrentCombatant()
		aim := fmt.Sprintf("%s  angle %d  turn %d  round %d", c.Label(), c.Angle(), m.Turn(), m.Round())
		drawText(screen, aim, hudPadX, float64(slotH)+hudPadY, hudLegendColor)
	}
	if g.status != "" {
		drawText(screen, g.status, hudPadX, float64(slotH)+hudPadY+hudLineH+4, hudLegendColor)
	}
	drawText(screen, hudLegend, hudPadX, float64(g.fieldH-hudLineH-hudPadY), hudLegendColor)

	if m.Phase() == game.PhaseGameOver {
		g.drawBanner(screen)
	}
}

func (g *Game) drawBanner(screen *ebiten.Image) {
	msg := "Everyone is destroyed. Draw!"
	if w, ok := g.match.Winner(); ok {
		msg = fmt.Sprintf("Player %d wins!", w+1)
	}
	lines := []string{msg, "Press R to play again"}
	width := 0
	for _, l := range lines {
		width = max(width, len(l)*hudCharW)
	}
	bw := float32(width + 4*hudPadX)
	bh := float32(len(lines)*hudLineH + 4*hudPadY)
	bx := (float32(g.fieldW) - bw) / 2
	by := (float32(g.fieldH) - bh) / 2
	vector.FillRect(screen, bx, by, bw, bh, hudBannerFill, false)
	vector.StrokeRect(screen, bx, by, bw, bh, 2, hudHighlight, false)
	for i, l := range lines {
		x := float64(g.fieldW)/2 - float64(len(l)*hudCharW)/2
		drawText(screen, l, x, float64(by)+2*hudPadY+float64(i*hudLineH), hudHighlight)
	}
}
