package game

import (
	"fmt"
	"strings"
)

// DebugReport renders a plain-text post-mortem of the current round: the
// match header, per-combatant shooting stats, the terrain snapshot size and
// the last lastEvents log entries. Frontends copy it to the clipboard.
func (m *Match) DebugReport(lastEvents int) string {
	if lastEvents <= 0 {
		lastEvents = 40
	}

	var b strings.Builder
	fmt.Fprintf(&b, "--- Crater Duel debug report ---\n")
	fmt.Fprintf(&b, "seed=%d field=%dx%d players=%d round=%d tick=%d\n",
		m.seed, m.field.Width(), m.field.Height(), len(m.roster), m.round, m.tick)
	fmt.Fprintf(&b, "phase=%s turn=%d current=%s winner=%s\n\n",
		m.phase, m.turn, m.roster[m.current].label, m.winnerLabel())

	b.WriteString("combatants:\n")
	for i, c := range m.roster {
		cs := m.stats.PerCombatant[i]
		fmt.Fprintf(&b, "  %s x=%d y=%.0f angle=%d health=%d shots=%d hits=%d self_hits=%d cells=%d accuracy=%.0f%%\n",
			c.label, c.x, c.y, c.angle, max(c.health, 0),
			cs.ShotsFired, cs.HitsDealt, cs.SelfHits, cs.CellsRemoved, 100*m.stats.Accuracy(i))
	}

	if snap, err := m.field.MarshalSnapshot(); err != nil {
		fmt.Fprintf(&b, "terrain: snapshot error: %v\n", err)
	} else {
		fmt.Fprintf(&b, "terrain: revision=%d solid=%d snapshot=%dB caves=%d\n",
			m.field.Revision(), m.field.SolidCount(), len(snap), len(m.caves))
	}
	if imp := m.stats.LastCrater; imp != nil {
		fmt.Fprintf(&b, "last crater: at=(%d,%d) removed=%d hits=%d\n", imp.X, imp.Y, imp.Removed, len(imp.Hits))
	}

	entries := m.log.Entries()
	if len(entries) > lastEvents {
		entries = entries[len(entries)-lastEvents:]
	}
	b.WriteString("events:\n")
	if len(entries) == 0 {
		b.WriteString("  (none)\n")
	}
	for _, e := range entries {
		b.WriteString("  - ")
		b.WriteString(e.String())
		b.WriteByte('\n')
	}
	return b.String()
}

func (m *Match) winnerLabel() string {
	if w, ok := m.Winner(); ok {
		return m.roster[w].label
	}
	if m.phase == PhaseGameOver {
		return "none"
	}
	return "-"
}
