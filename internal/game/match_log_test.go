package game

import (
	"strings"
	"testing"
)

func TestMatchLog_FilterAndTail(t *testing.T) {
	ml := NewMatchLog(false)
	ml.Add(1, "P1", "fire", "launch", "angle=45", 45)
	ml.Add(9, "P1", "impact", "crater", "at=(10,20) removed=300 hits=1", 300)
	ml.Add(9, "P2", "damage", "hit", "by=P1 health=4", 4)
	ml.AddVerbose(9, "--", "turn", "rejected", "fire phase=in_flight", 0)

	if ml.Len() != 3 {
		t.Fatalf("len=%d, want 3 (verbose entry dropped)", ml.Len())
	}
	if got := ml.Filter("impact", ""); len(got) != 1 || got[0].NumVal != 300 {
		t.Fatalf("impact filter=%v", got)
	}
	if got := ml.FilterCombatant("P1"); len(got) != 2 {
		t.Fatalf("P1 entries=%d, want 2", len(got))
	}
	if tail := ml.Since(2); len(tail) != 1 || tail[0].Combatant != "P2" {
		t.Fatalf("Since(2)=%v", tail)
	}
	if ml.Since(3) != nil || len(ml.Since(-4)) != 3 {
		t.Fatal("Since should clamp its cursor")
	}
	if e, ok := ml.LastOf("damage", "hit"); !ok || e.Value != "by=P1 health=4" {
		t.Fatalf("LastOf=%v ok=%v", e, ok)
	}
	if _, ok := ml.LastOf("elimination", "destroyed"); ok {
		t.Fatal("LastOf found a missing entry")
	}
	if !ml.HasEntry("impact", "", "removed=300") || ml.HasEntry("impact", "", "removed=301") {
		t.Fatal("HasEntry substring match wrong")
	}
}

func TestMatchLog_VerboseAndFormat(t *testing.T) {
	ml := NewMatchLog(true)
	ml.AddVerbose(42, "P1", "aim", "rotate", "angle=47", 47)
	if ml.CountCategory("aim", "rotate") != 1 {
		t.Fatal("verbose entry should be recorded when verbose is on")
	}
	line := ml.Entries()[0].String()
	if !strings.HasPrefix(line, "[T=0042] P1   aim") || !strings.HasSuffix(line, "angle=47") {
		t.Fatalf("unexpected line format: %q", line)
	}
	if out := ml.Format(); !strings.HasSuffix(out, "angle=47\n") {
		t.Fatalf("Format should end each entry with a newline: %q", out)
	}
}

func TestMatch_LogsLifecycle(t *testing.T) {
	tm := NewTestMatch(WithFlatGround(200), WithCombatantsAt(400, 400))
	if tm.Log().CountCategory("match", "placed") != 2 {
		dumpLog(t, tm)
		t.Fatal("each combatant placement should be logged")
	}
	tm.Shoot(90, shotTicks)
	for _, ck := range [][2]string{{"fire", "launch"}, {"impact", "crater"}, {"damage", "hit"}, {"turn", "begin"}} {
		if !tm.Log().HasEntry(ck[0], ck[1], "") {
			dumpLog(t, tm)
			t.Fatalf("missing %s/%s entry", ck[0], ck[1])
		}
	}
	if tm.Log().CountCategory("aim", "rotate") != 0 || tm.Log().CountCategory("fire", "flight") != 0 {
		t.Fatal("per-step aim and flight entries need verbose mode")
	}
}
