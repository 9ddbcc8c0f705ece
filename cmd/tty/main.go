// Command tty plays Crater Duel in a terminal. The field is downsampled onto
// the character grid; arrow keys aim, space fires, r restarts, c copies the
// debug report and q quits.
package main

import (
	"flag"
	"os"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"

	"github.com/Garsondee/Crater-Duel/internal/config"
	"github.com/Garsondee/Crater-Duel/internal/game"
)

func main() {
	cfg, err := config.Load()
	logger := cfg.NewLogger(os.Stderr, "crater-tty")
	if err != nil {
		logger.Fatal("load config", "err", err)
	}
	cfg.RegisterFlags(flag.CommandLine)
	flag.Parse()
	logger = cfg.NewLogger(os.Stderr, "crater-tty")

	screen, err := tcell.NewScreen()
	if err != nil {
		logger.Fatal("open terminal", "err", err)
	}
	if err := screen.Init(); err != nil {
		logger.Fatal("init terminal", "err", err)
	}

	t := &tty{
		screen: screen,
		match:  game.NewMatch(cfg.Options()),
		logger: logger,
	}
	t.run()
	screen.Fini()
	logger.Info("match closed", "seed", t.match.Seed(), "rounds", t.match.Round(),
		"shots", t.match.Stats().TotalShots())
}

type tty struct {
	screen tcell.Screen
	match  *game.Match
	logger *log.Logger
	status string
}

func (t *tty) run() {
	ticker := time.NewTicker(time.Second / game.TickRate)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	done := make(chan struct{})
	defer close(done)
	go pollEvents(t.screen, eventChan, done)

	for {
		select {
		case ev := <-eventChan:
			if !t.handleEvent(ev) {
				return
			}
		case <-ticker.C:
			t.match.AdvanceTick()
			t.draw()
		}
	}
}

// pollEvents forwards terminal events until the screen is finalised or done
// is closed.
func pollEvents(screen tcell.Screen, events chan<- tcell.Event, done <-chan struct{}) {
	for {
		ev := screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case events <- ev:
		case <-done:
			return
		}
	}
}

// handleEvent applies one terminal event and reports whether to keep running.
// Terminals report key repeats, not key releases, so each repeat of an arrow
// key turns the barrel one step.
func (t *tty) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return false
		case tcell.KeyLeft:
			t.match.RotateBarrel(1)
		case tcell.KeyRight:
			t.match.RotateBarrel(-1)
		case tcell.KeyRune:
			switch ev.Rune() {
			case 'q':
				return false
			case ' ':
				t.match.Fire()
			case 'r':
				t.match.Restart()
				t.status = ""
				t.logger.Debug("round restarted", "round", t.match.Round())
			case 'c':
				if err := clipboard.WriteAll(t.match.DebugReport(40)); err != nil {
					t.status = "clipboard unavailable"
				} else {
					t.status = "report copied"
				}
			}
		}
	case *tcell.EventResize:
		t.screen.Sync()
	}
	return true
}
