package ui

import (
	"errors"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/Garsondee/Crater-Duel/internal/game"
)

func TestFillTerrainPixels(t *testing.T) {
	f := game.NewFlatField(4, 3, 1)
	pix := make([]byte, 4*3*4)
	fillTerrainPixels(pix, f)
	// Top-left is sky, bottom-left is ground.
	if pix[0] != skyColor.R || pix[1] != skyColor.G || pix[2] != skyColor.B {
		t.Fatalf("top-left pixel %v, want sky", pix[0:4])
	}
	i := (2 * 4) * 4
	if pix[i] != groundColor.R || pix[i+1] != groundColor.G || pix[i+2] != groundColor.B {
		t.Fatalf("bottom-left pixel %v, want ground", pix[i:i+4])
	}
}

func TestCopyReportUsesClipboardHook(t *testing.T) {
	m := game.NewTestMatch(game.WithFlatGround(200))
	g := &Game{match: m.Match, logger: log.New(&strings.Builder{})}

	var copied string
	g.copyToClip = func(s string) error { copied = s; return nil }
	g.copyReport()
	if !strings.Contains(copied, "P2 x=532") || g.status != "report copied to clipboard" {
		t.Fatalf("copy failed: status=%q copied=%q", g.status, copied)
	}

	g.copyToClip = func(string) error { return errors.New("no clipboard utility") }
	g.copyReport()
	if g.status != "clipboard unavailable" || g.statusTTL != statusTicks {
		t.Fatalf("status=%q ttl=%d after failed copy", g.status, g.statusTTL)
	}
}

func TestPullLogSkipsPerTickNoise(t *testing.T) {
	tm := game.NewTestMatch(game.WithFlatGround(200), game.WithVerbose(true))
	g := &Game{match: tm.Match, feed: NewEventFeed()}

	tm.RotateBarrel(1)
	tm.Fire()
	tm.RotateBarrel(1) // rejected while in flight
	tm.RunTicks(5)
	g.pullLog()

	for _, e := range g.feed.Recent() {
		if e.Category == "aim" || e.Key == "flight" || e.Key == "rejected" {
			t.Fatalf("feed should skip per-tick entries, got %s", e.String())
		}
	}
	if n := len(g.feed.Recent()); n == 0 {
		t.Fatal("feed should carry the match start and launch entries")
	}
	if g.logCursor != tm.Log().Len() {
		t.Fatalf("cursor=%d, want %d", g.logCursor, tm.Log().Len())
	}

	before := len(g.feed.Recent())
	g.pullLog()
	if len(g.feed.Recent()) != before {
		t.Fatal("pulling twice should not duplicate entries")
	}
}
