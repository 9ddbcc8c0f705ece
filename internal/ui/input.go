package ui

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// statusTicks is how long a notice stays under the HUD.
const statusTicks = 3 * 60

// handleInput reads the keyboard. Barrel rotation repeats every tick while an
// arrow is held; fire, restart and copy are edge-triggered.
func (g *Game) handleInput() {
	currentKeys := map[ebiten.Key]bool{}
	pressed := func(k ebiten.Key) bool {
		currentKeys[k] = ebiten.IsKeyPressed(k)
		return currentKeys[k] && !g.prevKeys[k]
	}

	if ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		g.match.RotateBarrel(1)
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		g.match.RotateBarrel(-1)
	}

	if pressed(ebiten.KeySpace) {
		g.match.Fire()
	}
	if pressed(ebiten.KeyR) {
		g.restart()
	}
	if pressed(ebiten.KeyC) {
		g.copyReport()
	}

	g.prevKeys = currentKeys
}

func (g *Game) restart() {
	g.match.Restart()
	g.feed.Clear()
	g.logger.Info("round restarted", "round", g.match.Round(), "seed", g.match.Seed())
}

func (g *Game) setStatus(msg string) {
	g.status = msg
	g.statusTTL = statusTicks
}
