package main

import (
	"fmt"
	"image/color"

	"github.com/gdamore/tcell/v2"

	"github.com/Garsondee/Crater-Duel/internal/game"
)

var (
	skyStyle    = tcell.StyleDefault.Background(tcell.NewRGBColor(135, 206, 235))
	groundStyle = tcell.StyleDefault.Background(tcell.NewRGBColor(139, 69, 19))
	hudStyle    = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack)
)

// viewport maps field pixels onto terminal cells. Row 0 holds the HUD and the
// last row the legend; the field fills the rows between.
type viewport struct {
	cols, rows     int
	fieldW, fieldH int
}

func newViewport(cols, rows, fieldW, fieldH int) viewport {
	return viewport{cols: max(cols, 1), rows: max(rows-2, 1), fieldW: fieldW, fieldH: fieldH}
}

// sample returns the field pixel at the centre of cell (cx, cy).
func (v viewport) sample(cx, cy int) (int, int) {
	x := (2*cx + 1) * v.fieldW / (2 * v.cols)
	y := (2*cy + 1) * v.fieldH / (2 * v.rows)
	return x, y
}

// cell returns the terminal cell holding field point (x, y), row offset included.
func (v viewport) cell(x, y float64) (int, int) {
	cx := int(x * float64(v.cols) / float64(v.fieldW))
	cy := int(y * float64(v.rows) / float64(v.fieldH))
	return clamp(cx, 0, v.cols-1), clamp(cy, 0, v.rows-1) + 1
}

func clamp(v, lo, hi int) int {
	return max(lo, min(v, hi))
}

func rgb(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

func (t *tty) draw() {
	s := t.screen
	s.Clear()
	cols, rows := s.Size()
	f := t.match.Field()
	v := newViewport(cols, rows, f.Width(), f.Height())

	for cy := 0; cy < v.rows; cy++ {
		for cx := 0; cx < v.cols; cx++ {
			style := skyStyle
			if f.IsSolid(v.sample(cx, cy)) {
				style = groundStyle
			}
			s.SetContent(cx, cy+1, ' ', nil, style)
		}
	}

	for _, c := range t.match.Combatants() {
		if c.Eliminated() {
			continue
		}
		x, y := v.cell(float64(c.X()), c.Y())
		style := tcell.StyleDefault.Foreground(rgb(c.Color())).Background(tcell.ColorBlack)
		s.SetContent(x, y, '■', nil, style)
		mx, my := c.Muzzle()
		bx, by := v.cell(mx, my)
		if bx != x || by != y {
			s.SetContent(bx, by, '+', nil, style)
		}
	}
	if p := t.match.Projectile(); p != nil {
		px, py := p.Position()
		x, y := v.cell(px, py)
		s.SetContent(x, y, '●', nil, tcell.StyleDefault.Foreground(rgb(p.Color())))
	}

	drawLine(s, 0, 0, cols, t.hudLine(), hudStyle)
	drawLine(s, 0, rows-1, cols, "←/→ aim  space fire  r restart  c copy  q quit  "+t.status, hudStyle)
	s.Show()
}

func (t *tty) hudLine() string {
	m := t.match
	line := ""
	for i, c := range m.Combatants() {
		mark := " "
		if i == m.Current() && m.Phase() != game.PhaseGameOver {
			mark = ">"
		}
		line += fmt.Sprintf("%sP%d:%d ", mark, i+1, max(c.Health(), 0))
	}
	switch m.Phase() {
	case game.PhaseGameOver:
		if w, ok := m.Winner(); ok {
			line += fmt.Sprintf(" Player %d wins! r to restart", w+1)
		} else {
			line += " Draw! r to restart"
		}
	default:
		line += fmt.Sprintf(" angle %d  turn %d", m.CurrentCombatant().Angle(), m.Turn())
	}
	return line
}

func drawLine(s tcell.Screen, x, y, width int, text string, style tcell.Style) {
	col := 0
	for _, r := range text {
		if col >= width {
			return
		}
		s.SetContent(x+col, y, r, nil, style)
		col++
	}
	for ; col < width; col++ {
		s.SetContent(x+col, y, ' ', nil, style)
	}
}
