package main

import (
	"flag"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/Garsondee/Crater-Duel/internal/config"
	"github.com/Garsondee/Crater-Duel/internal/game"
	"github.com/Garsondee/Crater-Duel/internal/ui"
)

func main() {
	cfg, err := config.Load()
	logger := cfg.NewLogger(os.Stderr, "crater")
	if err != nil {
		logger.Fatal("load config", "err", err)
	}
	cfg.RegisterFlags(flag.CommandLine)
	flag.Parse()
	logger = cfg.NewLogger(os.Stderr, "crater")

	m := game.NewMatch(cfg.Options())
	logger.Info("match ready", "seed", m.Seed(), "players", len(m.Combatants()),
		"width", m.Field().Width(), "height", m.Field().Height(), "caves", len(m.Caves()))

	g := ui.New(m, logger)
	w, h := g.WindowSize()
	ebiten.SetWindowTitle("Crater Duel")
	ebiten.SetWindowSize(w, h)
	ebiten.SetTPS(game.TickRate)
	if err := ebiten.RunGame(g); err != nil {
		logger.Fatal("run game", "err", err)
	}
}
