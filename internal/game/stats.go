package game

// --- Match statistics ---

// CombatantStats tallies one combatant's shooting.
type CombatantStats struct {
	ShotsFired   int
	HitsDealt    int // damage points inflicted on others
	SelfHits     int // damage points inflicted on itself
	CellsRemoved int // terrain cells cleared by its shells
}

// MatchStats aggregates shooting results for one round.
type MatchStats struct {
	PerCombatant []CombatantStats
	Impacts      int
	CellsRemoved int
	LastCrater   *Impact
}

// NewMatchStats creates zeroed stats for n combatants.
func NewMatchStats(n int) *MatchStats {
	return &MatchStats{PerCombatant: make([]CombatantStats, n)}
}

func (s *MatchStats) recordShot(owner int) {
	if owner < 0 || owner >= len(s.PerCombatant) {
		return
	}
	s.PerCombatant[owner].ShotsFired++
}

func (s *MatchStats) recordImpact(owner int, imp *Impact) {
	if imp == nil {
		return
	}
	s.Impacts++
	s.CellsRemoved += imp.Removed
	s.LastCrater = imp
	if owner < 0 || owner >= len(s.PerCombatant) {
		return
	}
	cs := &s.PerCombatant[owner]
	cs.CellsRemoved += imp.Removed
	for _, idx := range imp.Hits {
		if idx == owner {
			cs.SelfHits++
		} else {
			cs.HitsDealt++
		}
	}
}

// TotalShots returns the shots fired by the whole roster.
func (s *MatchStats) TotalShots() int {
	n := 0
	for _, cs := range s.PerCombatant {
		n += cs.ShotsFired
	}
	return n
}

// Accuracy is the fraction of a combatant's shots that damaged an opponent.
func (s *MatchStats) Accuracy(owner int) float64 {
	if owner < 0 || owner >= len(s.PerCombatant) {
		return 0
	}
	cs := s.PerCombatant[owner]
	if cs.ShotsFired == 0 {
		return 0
	}
	return clamp01(float64(cs.HitsDealt) / float64(cs.ShotsFired))
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
