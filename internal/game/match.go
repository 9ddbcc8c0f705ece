package game

import (
	"fmt"
	"math/rand"
	"time"
)

const (
	MinPlayers = 2
	MaxPlayers = 4

	// TickRate is the fixed simulation rate the physics constants are tuned for.
	TickRate = 60

	minFieldSize = 200 // px, both axes
)

// Phase is the match state machine.
type Phase uint8

const (
	PhaseAwaitingInput      Phase = iota // current combatant may aim and fire
	PhaseProjectileInFlight              // a shell is in the air
	PhaseGameOver                        // terminal
)

func (p Phase) String() string {
	switch p {
	case PhaseAwaitingInput:
		return "awaiting_input"
	case PhaseProjectileInFlight:
		return "in_flight"
	case PhaseGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Options configures a match. Out-of-range values are clamped, never rejected.
type Options struct {
	Width        int
	Height       int
	Players      int   // clamped into [2,4]
	Seed         int64 // 0 picks a time-based seed
	Caves        int
	SmoothPasses int
	Verbose      bool // record per-tick flight and rejected actions
}

// DefaultOptions is an 800x600 field with two players and five caves.
func DefaultOptions() Options {
	return Options{
		Width:        800,
		Height:       600,
		Players:      MinPlayers,
		Caves:        defaultCaveCount,
		SmoothPasses: defaultSmoothPasses,
	}
}

func (o Options) normalized() Options {
	o.Width = max(o.Width, minFieldSize)
	o.Height = max(o.Height, minFieldSize)
	o.Players = clampInt(o.Players, MinPlayers, MaxPlayers)
	o.Caves = max(o.Caves, 0)
	o.SmoothPasses = max(o.SmoothPasses, 0)
	return o
}

// terrainBuilder produces the ground for a new round from the match RNG.
type terrainBuilder func(opts Options, rng *rand.Rand) (*Field, []Cave)

func generatedTerrain(opts Options, rng *rand.Rand) (*Field, []Cave) {
	f := Generate(opts.Width, opts.Height, rng, opts.SmoothPasses)
	caves := f.CarveCaves(opts.Caves, rng)
	return f, caves
}

// Match owns the field and the roster and drives the turn cycle.
// It is single-threaded: callers invoke RotateBarrel/Fire/AdvanceTick from one
// loop at TickRate.
type Match struct {
	opts    Options
	seed    int64
	rng     *rand.Rand
	terrain terrainBuilder
	anchors []int // fixed anchor columns; nil spreads the roster evenly

	field      *Field
	caves      []Cave
	roster     []*Combatant
	current    int
	projectile *Projectile
	lastImpact *Impact
	phase      Phase
	winner     int // roster index, -1 for none
	tick       int
	turn       int
	round      int

	log   *MatchLog
	stats *MatchStats
}

// NewMatch generates terrain and places the roster.
func NewMatch(opts Options) *Match {
	return newMatch(opts, generatedTerrain, nil)
}

func newMatch(opts Options, terrain terrainBuilder, anchors []int) *Match {
	opts = opts.normalized()
	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	m := &Match{
		opts:    opts,
		seed:    seed,
		rng:     rand.New(rand.NewSource(seed)), // #nosec G404 -- game only
		terrain: terrain,
		anchors: anchors,
		log:     NewMatchLog(opts.Verbose),
	}
	m.setup()
	return m
}

// setup builds a fresh round. All round state is replaced in one step so no
// half-reset state is ever observable.
func (m *Match) setup() {
	field, caves := m.terrain(m.opts, m.rng)
	roster := make([]*Combatant, m.opts.Players)
	for i := range roster {
		roster[i] = NewCombatant(i, m.anchorFor(i, field.Width()), field)
	}

	m.field, m.caves, m.roster = field, caves, roster
	m.current = 0
	m.projectile = nil
	m.lastImpact = nil
	m.phase = PhaseAwaitingInput
	m.winner = -1
	m.turn = 1
	m.round++
	m.stats = NewMatchStats(len(roster))

	m.log.Add(m.tick, "--", "match", "start",
		fmt.Sprintf("round=%d seed=%d field=%dx%d players=%d caves=%d",
			m.round, m.seed, field.Width(), field.Height(), len(roster), len(caves)),
		float64(m.round))
	for _, c := range roster {
		m.log.Add(m.tick, c.label, "match", "placed",
			fmt.Sprintf("x=%d y=%.0f health=%d", c.x, c.y, c.health), c.y)
	}
}

// anchorFor spreads n combatants evenly: column W/(n+1)*(i+1).
func (m *Match) anchorFor(i, width int) int {
	if i < len(m.anchors) {
		return clampInt(m.anchors[i], 0, width-1)
	}
	return width / (m.opts.Players + 1) * (i + 1)
}

func (m *Match) Field() *Field            { return m.field }
func (m *Match) Caves() []Cave            { return m.caves }
func (m *Match) Combatants() []*Combatant { return m.roster }
func (m *Match) Current() int             { return m.current }
func (m *Match) Projectile() *Projectile  { return m.projectile }
func (m *Match) LastImpact() *Impact      { return m.lastImpact }
func (m *Match) Phase() Phase             { return m.phase }
func (m *Match) Tick() int                { return m.tick }
func (m *Match) Turn() int                { return m.turn }
func (m *Match) Round() int               { return m.round }
func (m *Match) Seed() int64              { return m.seed }
func (m *Match) Options() Options         { return m.opts }
func (m *Match) Log() *MatchLog           { return m.log }
func (m *Match) Stats() *MatchStats       { return m.stats }

// CurrentCombatant returns the combatant whose turn it is.
func (m *Match) CurrentCombatant() *Combatant { return m.roster[m.current] }

// Winner returns the sole survivor once the match is over. ok is false while
// the match runs and when the last combatants fell together.
func (m *Match) Winner() (int, bool) {
	if m.phase != PhaseGameOver || m.winner < 0 {
		return -1, false
	}
	return m.winner, true
}

// RotateBarrel turns the current combatant's barrel one step. Ignored unless
// the match is awaiting input.
func (m *Match) RotateBarrel(direction int) {
	if m.phase != PhaseAwaitingInput {
		m.reject("rotate")
		return
	}
	c := m.roster[m.current]
	c.RotateBarrel(direction)
	m.log.AddVerbose(m.tick, c.label, "aim", "rotate", fmt.Sprintf("angle=%d", c.angle), float64(c.angle))
}

// Fire launches a shell from the current combatant. Returns false, doing
// nothing, when a shell is already in flight or the match is over.
func (m *Match) Fire() bool {
	if m.phase != PhaseAwaitingInput || m.projectile != nil {
		m.reject("fire")
		return false
	}
	c := m.roster[m.current]
	m.projectile = c.Fire()
	m.phase = PhaseProjectileInFlight
	m.stats.recordShot(c.index)

	mx, my := c.Muzzle()
	m.log.Add(m.tick, c.label, "fire", "launch",
		fmt.Sprintf("turn=%d angle=%d muzzle=(%.1f,%.1f)", m.turn, c.angle, mx, my), float64(c.angle))
	return true
}

// AdvanceTick runs one fixed simulation step.
func (m *Match) AdvanceTick() {
	m.tick++
	if m.phase != PhaseProjectileInFlight || m.projectile == nil {
		return
	}
	p := m.projectile
	if !p.Update(m.field, m.roster) {
		if m.log.verbose {
			x, y := p.Position()
			m.log.AddVerbose(m.tick, m.roster[p.owner].label, "fire", "flight",
				fmt.Sprintf("pos=(%.1f,%.1f)", x, y), y)
		}
		return
	}
	m.resolve(p)
}

// Restart discards the round, including any shell in flight, and builds a new
// one from the match RNG with the same player count.
func (m *Match) Restart() {
	m.log.Add(m.tick, "--", "match", "restart", fmt.Sprintf("round=%d", m.round), float64(m.round))
	m.setup()
}

// resolve retires an exploded shell, applies its outcome to the match and
// hands the turn on.
func (m *Match) resolve(p *Projectile) {
	imp := p.Impact()
	shooter := m.roster[p.owner]
	m.projectile = nil
	m.lastImpact = imp
	m.stats.recordImpact(p.owner, imp)

	m.log.Add(m.tick, shooter.label, "impact", "crater",
		fmt.Sprintf("at=(%d,%d) removed=%d hits=%d", imp.X, imp.Y, imp.Removed, len(imp.Hits)), float64(imp.Removed))
	m.log.Add(m.tick, "--", "terrain", "settled",
		fmt.Sprintf("revision=%d surface_at_crater=%d", m.field.Revision(), m.field.SurfaceRow(imp.X)), float64(m.field.SurfaceRow(imp.X)))
	for _, idx := range imp.Hits {
		c := m.roster[idx]
		m.log.Add(m.tick, c.label, "damage", "hit",
			fmt.Sprintf("by=%s health=%d", shooter.label, c.health), float64(c.health))
		if c.health == 0 {
			m.log.Add(m.tick, c.label, "elimination", "destroyed",
				fmt.Sprintf("by=%s turn=%d", shooter.label, m.turn), 0)
		}
	}

	if m.checkGameOver() {
		return
	}
	m.advanceTurn()
	m.phase = PhaseAwaitingInput
}

// checkGameOver ends the match when at most one combatant still has health.
func (m *Match) checkGameOver() bool {
	alive, last := 0, -1
	for i, c := range m.roster {
		if c.health > 0 {
			alive++
			last = i
		}
	}
	if alive > 1 {
		return false
	}
	m.phase = PhaseGameOver
	m.winner = last
	if last >= 0 {
		m.log.Add(m.tick, m.roster[last].label, "match", "game_over", "winner="+m.roster[last].label, float64(last))
	} else {
		m.log.Add(m.tick, "--", "match", "game_over", "winner=none", -1)
	}
	return true
}

// advanceTurn moves to the next combatant with health left, trying at most
// once per roster seat.
func (m *Match) advanceTurn() {
	n := len(m.roster)
	for i := 0; i < n; i++ {
		m.current = (m.current + 1) % n
		if m.roster[m.current].health > 0 {
			break
		}
	}
	m.turn++
	c := m.roster[m.current]
	m.log.Add(m.tick, c.label, "turn", "begin", fmt.Sprintf("turn=%d", m.turn), float64(m.turn))
}

func (m *Match) reject(action string) {
	m.log.AddVerbose(m.tick, "--", "turn", "rejected",
		fmt.Sprintf("%s phase=%s", action, m.phase), 0)
}
