// Package ui is the ebiten frontend: it feeds keyboard input into a
// game.Match at the fixed tick rate and renders the field, the roster, the
// shell in flight, the HUD and a scrolling event feed.
package ui

import (
	"image/color"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/Garsondee/Crater-Duel/internal/game"
)

var (
	skyColor    = color.RGBA{R: 135, G: 206, B: 235, A: 255}
	groundColor = color.RGBA{R: 139, G: 69, B: 19, A: 255}
	windowColor = color.RGBA{R: 12, G: 14, B: 12, A: 255}
)

// Game implements ebiten.Game around one match.
type Game struct {
	match  *game.Match
	logger *log.Logger

	fieldW int
	fieldH int

	terrain    *terrainLayer
	feed       *EventFeed
	logCursor  int // MatchLog entries already copied into the feed
	prevKeys   map[ebiten.Key]bool
	copyToClip func(string) error
	status     string // one-line notice under the HUD, e.g. clipboard result
	statusTTL  int    // ticks left before status clears
}

// New wraps a match for display. logger receives process-level events
// (restart, clipboard export); it may be nil.
func New(m *game.Match, logger *log.Logger) *Game {
	if logger == nil {
		logger = log.Default()
	}
	f := m.Field()
	return &Game{
		match:      m,
		logger:     logger,
		fieldW:     f.Width(),
		fieldH:     f.Height(),
		terrain:    newTerrainLayer(f.Width(), f.Height()),
		feed:       NewEventFeed(),
		prevKeys:   make(map[ebiten.Key]bool),
		copyToClip: writeClipboard,
	}
}

// WindowSize is the outer window size for the match: field plus feed panel.
func (g *Game) WindowSize() (int, int) {
	return g.fieldW + feedPanelWidth, g.fieldH
}

// Update runs input then exactly one simulation tick. ebiten calls it at TPS,
// which cmd/game pins to game.TickRate.
func (g *Game) Update() error {
	g.handleInput()
	g.match.AdvanceTick()
	g.pullLog()
	if g.statusTTL > 0 {
		g.statusTTL--
		if g.statusTTL == 0 {
			g.status = ""
		}
	}
	return nil
}

// pullLog tails the match log into the on-screen feed.
func (g *Game) pullLog() {
	ml := g.match.Log()
	for _, e := range ml.Since(g.logCursor) {
		if e.Category == "aim" || e.Key == "flight" || e.Key == "rejected" {
			continue
		}
		g.feed.Add(e)
	}
	g.logCursor = ml.Len()
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(windowColor)

	g.terrain.sync(g.match.Field())
	g.terrain.draw(screen)

	for _, c := range g.match.Combatants() {
		drawCombatant(screen, c)
	}
	if p := g.match.Projectile(); p != nil {
		drawProjectile(screen, p)
	}

	g.drawHUD(screen)
	g.feed.Draw(screen, g.fieldW, g.fieldH)
}

// Layout keeps a fixed logical size; ebiten scales the window contents.
func (g *Game) Layout(_, _ int) (int, int) {
	return g.WindowSize()
}
