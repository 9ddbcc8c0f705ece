package game

import (
	"fmt"
	"strings"
)

// LogEntry is one recorded match event.
type LogEntry struct {
	Tick      int
	Combatant string  // label e.g. "P1", or "--" for match-wide events
	Category  string  // match, turn, aim, fire, impact, damage, elimination
	Key       string  // specific event name within the category
	Value     string  // human-readable detail
	NumVal    float64 // optional numeric value for threshold checks
}

// String formats the entry as a fixed-width log line.
//
//	[T=0042] P1   impact      crater       at=(412,388) removed=2301 hits=1
func (e LogEntry) String() string {
	return fmt.Sprintf("[T=%04d] %-4s %-11s %-12s %s",
		e.Tick, e.Combatant, e.Category, e.Key, e.Value)
}

// MatchLog collects structured events for a match. It is unbounded and
// machine-readable; frontends tail it, tests filter it.
type MatchLog struct {
	entries []LogEntry
	verbose bool
}

// NewMatchLog creates a MatchLog. If verbose is true, per-tick flight
// positions, barrel steps and rejected actions are also recorded.
func NewMatchLog(verbose bool) *MatchLog {
	return &MatchLog{verbose: verbose}
}

// Add records a new entry.
func (ml *MatchLog) Add(tick int, combatant, category, key, value string, numVal float64) {
	ml.entries = append(ml.entries, LogEntry{
		Tick:      tick,
		Combatant: combatant,
		Category:  category,
		Key:       key,
		Value:     value,
		NumVal:    numVal,
	})
}

// AddVerbose records an entry only when verbose mode is on.
func (ml *MatchLog) AddVerbose(tick int, combatant, category, key, value string, numVal float64) {
	if !ml.verbose {
		return
	}
	ml.Add(tick, combatant, category, key, value, numVal)
}

// Entries returns all recorded entries.
func (ml *MatchLog) Entries() []LogEntry {
	return ml.entries
}

// Len returns the number of recorded entries.
func (ml *MatchLog) Len() int {
	return len(ml.entries)
}

// Since returns the entries recorded after the first n, for tailing.
func (ml *MatchLog) Since(n int) []LogEntry {
	if n < 0 {
		n = 0
	}
	if n >= len(ml.entries) {
		return nil
	}
	return ml.entries[n:]
}

// Filter returns entries matching the given category and/or key.
// Pass empty string to match any value for that field.
func (ml *MatchLog) Filter(category, key string) []LogEntry {
	var out []LogEntry
	for _, e := range ml.entries {
		if category != "" && e.Category != category {
			continue
		}
		if key != "" && e.Key != key {
			continue
		}
		out = append(out, e)
	}
	return out
}

// FilterCombatant returns entries for a specific combatant label.
func (ml *MatchLog) FilterCombatant(label string) []LogEntry {
	var out []LogEntry
	for _, e := range ml.entries {
		if e.Combatant == label {
			out = append(out, e)
		}
	}
	return out
}

// CountCategory returns how many entries match the given category and key.
func (ml *MatchLog) CountCategory(category, key string) int {
	return len(ml.Filter(category, key))
}

// LastOf returns the most recent entry matching category+key, or false if none.
func (ml *MatchLog) LastOf(category, key string) (LogEntry, bool) {
	entries := ml.Filter(category, key)
	if len(entries) == 0 {
		return LogEntry{}, false
	}
	return entries[len(entries)-1], true
}

// HasEntry returns true if at least one entry matches category, key, and value substring.
func (ml *MatchLog) HasEntry(category, key, valueSubstr string) bool {
	for _, e := range ml.entries {
		if category != "" && e.Category != category {
			continue
		}
		if key != "" && e.Key != key {
			continue
		}
		if valueSubstr != "" && !strings.Contains(e.Value, valueSubstr) {
			continue
		}
		return true
	}
	return false
}

// Format returns the full log as a single string for t.Log output.
func (ml *MatchLog) Format() string {
	var sb strings.Builder
	for _, e := range ml.entries {
		sb.WriteString(e.String())
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Summary returns a short human-readable summary of the match state: one
// shields line per combatant, the phase and the winner.
func (ml *MatchLog) Summary(m *Match) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "--- Summary at T=%04d (round %d, turn %d) ---\n", m.Tick(), m.Round(), m.Turn())
	for i, c := range m.Combatants() {
		marker := " "
		if i == m.Current() && m.Phase() != PhaseGameOver {
			marker = ">"
		}
		state := ""
		if c.Eliminated() {
			state = " (destroyed)"
		}
		fmt.Fprintf(&sb, "%s Player %d: %d shields  x=%d angle=%d%s\n",
			marker, i+1, max(c.Health(), 0), c.X(), c.Angle(), state)
	}
	fmt.Fprintf(&sb, "phase: %s\n", m.Phase())
	if w, ok := m.Winner(); ok {
		fmt.Fprintf(&sb, "winner: Player %d\n", w+1)
	} else if m.Phase() == PhaseGameOver {
		sb.WriteString("winner: none\n")
	}
	st := m.Stats()
	fmt.Fprintf(&sb, "shots=%d impacts=%d cells_removed=%d\n", st.TotalShots(), st.Impacts, st.CellsRemoved)
	return sb.String()
}
