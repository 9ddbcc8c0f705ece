package game

import (
	"testing"
)

// dumpLog prints the full MatchLog to t.Log so it appears in `go test -v` output.
func dumpLog(t *testing.T, tm *TestMatch) {
	t.Helper()
	entries := tm.Log().Entries()
	if len(entries) == 0 {
		t.Log("(no log entries)")
		return
	}
	for _, e := range entries {
		t.Log(e.String())
	}
}

// dumpSummary prints the scenario summary block.
func dumpSummary(t *testing.T, tm *TestMatch) {
	t.Helper()
	t.Log(tm.Log().Summary(tm.Match))
}

// --- Scenario: Straight Up ---

func TestScenario_StraightUpLandsOnOwnColumn(t *testing.T) {
	t.Log("=== TestScenario_StraightUpLandsOnOwnColumn ===")
	t.Log("--- Setup: 800x600 seeded terrain, no caves, both combatants at x=400 ---")

	tm := NewTestMatch(
		WithFieldSize(800, 600),
		WithSeed(20240601),
		WithCaves(0),
		WithCombatantsAt(400, 400),
	)
	surface := tm.Field().SurfaceRow(400)
	target := tm.Combatants()[1]

	imp := tm.Shoot(90, shotTicks)
	dumpLog(t, tm)
	dumpSummary(t, tm)

	if imp == nil {
		t.Fatal("shell never came down")
	}
	if imp.X != 400 {
		t.Fatalf("crater column=%d, want 400", imp.X)
	}
	// The crater sits where the landing tick ended: in the ground, at most
	// one tick of travel below the surface.
	if d := imp.Y - surface; d < 0 || d > launchSpeed+1 {
		t.Fatalf("crater row=%d, surface was %d: not within one tick of the landing", imp.Y, surface)
	}
	if target.Health() != startHealth-1 {
		t.Fatalf("target health=%d, want exactly %d", target.Health(), startHealth-1)
	}
	if tm.Current() != 1 {
		t.Fatalf("turn should pass to P2, current=%d", tm.Current())
	}
}

// --- Scenario: Crater Deepens ---

func TestScenario_RepeatedShotsDigDown(t *testing.T) {
	t.Log("=== TestScenario_RepeatedShotsDigDown ===")
	t.Log("--- Setup: flat ground, P1 at 200, P2 at 600, P1 keeps shelling its own column ---")

	tm := NewTestMatch(
		WithFlatGround(200),
		WithCombatantsAt(200, 600),
	)
	depth := tm.Field().HeightAt(200)
	for round := 0; round < 2; round++ {
		if tm.Shoot(90, shotTicks) == nil { // P1 digs
			dumpLog(t, tm)
			t.Fatalf("round %d: P1 shot never resolved", round)
		}
		if tm.Shoot(0, shotTicks) == nil { // P2 fires away from everyone
			dumpLog(t, tm)
			t.Fatalf("round %d: P2 shot never resolved", round)
		}
		if got := tm.Field().HeightAt(200); got >= depth {
			dumpLog(t, tm)
			t.Fatalf("round %d: column 200 height %d did not drop below %d", round, got, depth)
		}
		depth = tm.Field().HeightAt(200)
	}
	dumpSummary(t, tm)

	p1 := tm.Combatants()[0]
	if want := supportedY(tm.Field(), 200); p1.Y() != want {
		t.Fatalf("P1 y=%.1f, want resting at %.1f in the crater", p1.Y(), want)
	}
	if p1.Health() != startHealth-2 {
		t.Fatalf("P1 health=%d, want %d", p1.Health(), startHealth-2)
	}
	if tm.Combatants()[1].Health() != startHealth {
		t.Fatalf("P2 took damage: health=%d", tm.Combatants()[1].Health())
	}
}

// --- Scenario: Shell Into A Cave ---

func TestScenario_ShotDropsThroughCave(t *testing.T) {
	t.Log("=== TestScenario_ShotDropsThroughCave ===")
	t.Log("--- Setup: flat ground, open cave shaft at x=400, P1 sitting on the cave floor ---")

	tm := NewTestMatch(
		WithFlatGround(300),
		WithCave(400, 450, 40, 20, true),
		WithCombatantsAt(400, 100),
	)
	p1 := tm.Combatants()[0]
	if p1.Y() != 461 {
		t.Fatalf("P1 should rest on the cave floor at y=461, got %.1f", p1.Y())
	}
	solid := tm.Field().SolidCount()

	imp := tm.Shoot(90, shotTicks)
	dumpLog(t, tm)

	if imp == nil {
		t.Fatal("shell never came down the shaft")
	}
	if imp.X != 400 || imp.Y < 471 || imp.Y > 471+launchSpeed+1 {
		t.Fatalf("crater at (%d,%d), want column 400 within one tick below the cave floor at 471", imp.X, imp.Y)
	}
	if tm.Log().CountCategory("impact", "crater") != 1 {
		t.Fatal("the void above the floor must not trigger an explosion")
	}
	if got := solid - tm.Field().SolidCount(); got != imp.Removed {
		t.Fatalf("removed=%d but solid count dropped by %d", imp.Removed, got)
	}
	if p1.Health() != startHealth-1 {
		t.Fatalf("P1 health=%d, want %d", p1.Health(), startHealth-1)
	}
}

// --- Scenario: Full Match ---

func TestScenario_FullMatchEndsWithOneSurvivor(t *testing.T) {
	t.Log("=== TestScenario_FullMatchEndsWithOneSurvivor ===")
	t.Log("--- Setup: flat ground, P2 shells itself until destroyed, P1 fires wide ---")

	tm := NewTestMatch(
		WithFlatGround(200),
		WithCombatantsAt(300, 700),
	)
	for i := 0; i < 2*startHealth && tm.Phase() == PhaseAwaitingInput; i++ {
		angle := 180 // P1 fires away to the left
		if tm.Current() == 1 {
			angle = 90
		}
		if tm.Shoot(angle, shotTicks) == nil {
			dumpLog(t, tm)
			t.Fatalf("shot %d never resolved", i)
		}
	}
	dumpSummary(t, tm)

	if tm.Phase() != PhaseGameOver {
		dumpLog(t, tm)
		t.Fatalf("phase=%s, want game_over", tm.Phase())
	}
	if w, ok := tm.Winner(); !ok || w != 0 {
		t.Fatalf("winner=%d ok=%v, want P1", w, ok)
	}
	if tm.Combatants()[0].Health() != startHealth {
		t.Fatalf("P1 health=%d, should be untouched", tm.Combatants()[0].Health())
	}
	if n := tm.Log().CountCategory("elimination", "destroyed"); n != 1 {
		t.Fatalf("eliminations=%d, want 1", n)
	}
	if n := tm.Log().CountCategory("fire", "launch"); n != 2*startHealth {
		t.Fatalf("shots=%d, want %d", n, 2*startHealth)
	}
}
