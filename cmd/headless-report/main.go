package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/Garsondee/Crater-Duel/internal/config"
	"github.com/Garsondee/Crater-Duel/internal/game"
)

// defaultSeedBase replaces a zero seed so runs stay reproducible.
const defaultSeedBase = 42

type runStats struct {
	runIndex int
	seed     int64

	turns    int
	ticks    int
	finished bool // reached game over
	lost     bool // a shell was still flying after -max-ticks
	winner   int  // roster index, -1 for none

	firstHitTick  int
	firstElimTick int

	shots        int
	impacts      int
	selfHits     int
	cellsRemoved int
	health       []int
}

type aggregate struct {
	runs       int
	wins       map[int]int
	draws      int
	unfinished int
	lost       int
	turns      int
	shots      int
	selfHits   int
	cells      int
	elimTicks  []int
	hitTicks   []int
}

func main() {
	cfg, err := config.Load()
	logger := cfg.NewLogger(os.Stderr, "headless")
	if err != nil {
		logger.Fatal("load config", "err", err)
	}

	var runs int
	var seedStep int64
	var anglesFlag string
	var maxTurns int
	var maxTicks int

	cfg.RegisterFlags(flag.CommandLine)
	flag.IntVar(&runs, "runs", 5, "number of headless matches")
	flag.Int64Var(&seedStep, "seed-step", 1, "seed increment between runs (-seed sets run 1, 0 means 42)")
	flag.StringVar(&anglesFlag, "angles", "60,120", "comma-separated barrel angles, one per seat, cycled")
	flag.IntVar(&maxTurns, "max-turns", 60, "turn cap per match")
	flag.IntVar(&maxTicks, "max-ticks", 1200, "tick cap per shot")
	flag.Parse()
	logger = cfg.NewLogger(os.Stderr, "headless")

	angles, err := parseAngles(anglesFlag)
	if err != nil {
		logger.Fatal("bad -angles", "err", err)
	}
	if runs <= 0 || maxTurns <= 0 || maxTicks <= 0 {
		logger.Fatal("-runs, -max-turns and -max-ticks must be > 0")
	}
	seedBase := cfg.Seed
	if seedBase == 0 {
		seedBase = defaultSeedBase
	}

	opts := cfg.Options()
	fmt.Printf("=== Headless Match Report ===\n")
	fmt.Printf("runs=%d field=%dx%d players=%d caves=%d angles=%v max_turns=%d seed_base=%d seed_step=%d\n\n",
		runs, opts.Width, opts.Height, opts.Players, opts.Caves, angles, maxTurns, seedBase, seedStep)

	all := make([]runStats, 0, runs)
	for i := 0; i < runs; i++ {
		opts.Seed = seedBase + int64(i)*seedStep
		rs := runMatch(i+1, opts, angles, maxTurns, maxTicks)
		all = append(all, rs)
		printRun(rs)
	}
	printAggregate(summarize(all))
	logger.Debug("report complete", "runs", len(all))
}

// runMatch plays one scripted match: every seat fires at its fixed angle
// until the match ends, the turn cap is hit or a shell never lands.
func runMatch(runIndex int, opts game.Options, angles []int, maxTurns, maxTicks int) runStats {
	tm := game.NewTestMatch(matchOptions(opts)...)

	rs := runStats{runIndex: runIndex, seed: opts.Seed, winner: -1}
	for tm.Phase() == game.PhaseAwaitingInput && tm.Turn() <= maxTurns {
		angle := angles[tm.Current()%len(angles)]
		if tm.Shoot(angle, maxTicks) == nil {
			rs.lost = true
			break
		}
	}

	entries := tm.Log().Entries()
	st := tm.Stats()
	rs.turns = tm.Turn()
	rs.ticks = tm.Tick()
	rs.finished = tm.Phase() == game.PhaseGameOver
	if w, ok := tm.Winner(); ok {
		rs.winner = w
	}
	rs.firstHitTick = firstTick(entries, "damage", "hit", "")
	rs.firstElimTick = firstTick(entries, "elimination", "destroyed", "")
	rs.shots = st.TotalShots()
	rs.impacts = st.Impacts
	rs.cellsRemoved = st.CellsRemoved
	for i, c := range tm.Combatants() {
		rs.selfHits += st.PerCombatant[i].SelfHits
		rs.health = append(rs.health, max(c.Health(), 0))
	}
	return rs
}

// matchOptions carries every configured setting into the headless match.
func matchOptions(opts game.Options) []game.SimOption {
	return []game.SimOption{
		game.WithFieldSize(opts.Width, opts.Height),
		game.WithSeed(opts.Seed),
		game.WithPlayers(opts.Players),
		game.WithCaves(opts.Caves),
		game.WithSmoothPasses(opts.SmoothPasses),
		game.WithVerbose(opts.Verbose),
	}
}

func parseAngles(s string) ([]int, error) {
	var out []int
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		a, err := strconv.Atoi(part)
		if err != nil {
			return nil, fmt.Errorf("angle %q: %w", part, err)
		}
		if a < 0 || a > 180 {
			return nil, fmt.Errorf("angle %d outside [0,180]", a)
		}
		out = append(out, a)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("no angles in %q", s)
	}
	return out, nil
}

func firstTick(entries []game.LogEntry, category, key, contains string) int {
	for _, e := range entries {
		if e.Category != category || e.Key != key {
			continue
		}
		if contains == "" || strings.Contains(e.Value, contains) {
			return e.Tick
		}
	}
	return -1
}

func outcome(rs runStats) string {
	switch {
	case rs.lost:
		return "shell_lost"
	case !rs.finished:
		return "turn_cap"
	case rs.winner < 0:
		return "draw"
	default:
		return fmt.Sprintf("P%d", rs.winner+1)
	}
}

func printRun(rs runStats) {
	fmt.Printf("--- Run %d (seed=%d) ---\n", rs.runIndex, rs.seed)
	fmt.Printf("outcome=%s turns=%d ticks=%d\n", outcome(rs), rs.turns, rs.ticks)
	fmt.Printf("phase_markers: first_hit=%d first_elimination=%d\n", rs.firstHitTick, rs.firstElimTick)
	fmt.Printf("event_totals: shots=%d impacts=%d self_hits=%d cells_removed=%d\n",
		rs.shots, rs.impacts, rs.selfHits, rs.cellsRemoved)
	labels := make([]string, len(rs.health))
	for i, h := range rs.health {
		labels[i] = fmt.Sprintf("P%d=%d", i+1, h)
	}
	fmt.Printf("shields: %s\n\n", strings.Join(labels, " "))
}

func summarize(all []runStats) aggregate {
	ag := aggregate{runs: len(all), wins: map[int]int{}}
	for _, rs := range all {
		switch {
		case rs.lost:
			ag.lost++
		case !rs.finished:
			ag.unfinished++
		case rs.winner < 0:
			ag.draws++
		default:
			ag.wins[rs.winner]++
		}
		ag.turns += rs.turns
		ag.shots += rs.shots
		ag.selfHits += rs.selfHits
		ag.cells += rs.cellsRemoved
		if rs.firstElimTick >= 0 {
			ag.elimTicks = append(ag.elimTicks, rs.firstElimTick)
		}
		if rs.firstHitTick >= 0 {
			ag.hitTicks = append(ag.hitTicks, rs.firstHitTick)
		}
	}
	return ag
}

func printAggregate(ag aggregate) {
	fmt.Println("=== Aggregate ===")
	fmt.Printf("runs=%d draws=%d turn_cap=%d shell_lost=%d\n", ag.runs, ag.draws, ag.unfinished, ag.lost)
	for seat := 0; seat < game.MaxPlayers; seat++ {
		if n, ok := ag.wins[seat]; ok {
			fmt.Printf("  P%d wins=%d (%.0f%%)\n", seat+1, n, 100*avg(n, ag.runs))
		}
	}
	fmt.Printf("avg_per_run: turns=%.1f shots=%.1f self_hits=%.1f cells_removed=%.1f\n",
		avg(ag.turns, ag.runs), avg(ag.shots, ag.runs), avg(ag.selfHits, ag.runs), avg(ag.cells, ag.runs))
	fmt.Printf("phase_marker_avg_ticks: first_hit=%s first_elimination=%s\n",
		avgTickString(ag.hitTicks), avgTickString(ag.elimTicks))
}

func avg(sum int, n int) float64 {
	if n <= 0 {
		return 0
	}
	return float64(sum) / float64(n)
}

func avgTickString(vals []int) string {
	if len(vals) == 0 {
		return "n/a"
	}
	sum := 0
	for _, v := range vals {
		sum += v
	}
	return fmt.Sprintf("%.1f", float64(sum)/float64(len(vals)))
}
