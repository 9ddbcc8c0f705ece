package game

import (
	"math/rand"
)

// TestMatch is a headless match harness used by tests and by the headless
// report. It wraps a Match built from SimOptions and adds scripted helpers
// (aim, shoot, run until resolved).
type TestMatch struct {
	*Match
}

// simOptionKind controls the pass in which an option is applied.
type simOptionKind int

const (
	simOptInfra   simOptionKind = iota // field size, seed, players, verbose; applied first
	simOptTerrain                      // ground shape and edits, replayed on each new field
	simOptRoster                       // anchor columns
)

type simConfig struct {
	opts    Options
	flat    int // >= 0 replaces generation with flat ground of this height
	edits   []func(*Field)
	anchors []int
}

// SimOption is a builder function applied to a TestMatch during construction.
type SimOption struct {
	kind simOptionKind
	fn   func(*simConfig)
}

// WithFieldSize sets the field dimensions.
func WithFieldSize(w, h int) SimOption {
	return SimOption{simOptInfra, func(sc *simConfig) {
		sc.opts.Width = w
		sc.opts.Height = h
	}}
}

// WithSeed sets the RNG seed for deterministic runs.
func WithSeed(seed int64) SimOption {
	return SimOption{simOptInfra, func(sc *simConfig) {
		sc.opts.Seed = seed
	}}
}

// WithPlayers sets the roster size (clamped into [2,4]).
func WithPlayers(n int) SimOption {
	return SimOption{simOptInfra, func(sc *simConfig) {
		sc.opts.Players = n
	}}
}

// WithCaves sets how many caves generation carves.
func WithCaves(n int) SimOption {
	return SimOption{simOptInfra, func(sc *simConfig) {
		sc.opts.Caves = n
	}}
}

// WithSmoothPasses sets how many smoothing passes generation applies.
func WithSmoothPasses(n int) SimOption {
	return SimOption{simOptInfra, func(sc *simConfig) {
		sc.opts.SmoothPasses = n
	}}
}

// WithVerbose enables per-tick verbose logging.
func WithVerbose(v bool) SimOption {
	return SimOption{simOptInfra, func(sc *simConfig) {
		sc.opts.Verbose = v
	}}
}

// WithFlatGround replaces procedural generation with level ground of the
// given height. No caves are carved.
func WithFlatGround(height int) SimOption {
	return SimOption{simOptTerrain, func(sc *simConfig) {
		sc.flat = height
	}}
}

// WithWall adds a solid rectangle (inclusive corners) after the ground is built.
func WithWall(x0, y0, x1, y1 int) SimOption {
	return SimOption{simOptTerrain, func(sc *simConfig) {
		sc.edits = append(sc.edits, func(f *Field) { f.Fill(x0, y0, x1, y1, true) })
	}}
}

// WithCave carves an elliptical cave centred at (x, y), optionally with a
// shaft up to open air.
func WithCave(x, y, rx, ry int, shaft bool) SimOption {
	return SimOption{simOptTerrain, func(sc *simConfig) {
		sc.edits = append(sc.edits, func(f *Field) {
			f.clearEllipse(x, y, rx, ry)
			if shaft {
				f.clearShaft(x, y-ry)
			}
			f.recompute()
		})
	}}
}

// WithCombatantsAt pins the roster's anchor columns, in roster order.
func WithCombatantsAt(xs ...int) SimOption {
	return SimOption{simOptRoster, func(sc *simConfig) {
		sc.anchors = append(sc.anchors[:0], xs...)
	}}
}

// NewTestMatch constructs a TestMatch from the given options in three ordered
// passes: infrastructure, terrain, roster. Defaults are DefaultOptions with
// seed 1 and no caves.
func NewTestMatch(opts ...SimOption) *TestMatch {
	sc := &simConfig{opts: DefaultOptions(), flat: -1}
	sc.opts.Seed = 1
	sc.opts.Caves = 0
	for _, kind := range []simOptionKind{simOptInfra, simOptTerrain, simOptRoster} {
		for _, o := range opts {
			if o.kind == kind {
				o.fn(sc)
			}
		}
	}

	build := func(o Options, rng *rand.Rand) (*Field, []Cave) {
		var f *Field
		var caves []Cave
		if sc.flat >= 0 {
			f = NewFlatField(o.Width, o.Height, sc.flat)
		} else {
			f, caves = generatedTerrain(o, rng)
		}
		for _, edit := range sc.edits {
			edit(f)
		}
		return f, caves
	}
	return &TestMatch{Match: newMatch(sc.opts, build, sc.anchors)}
}

// AimTo rotates the current barrel one step at a time, as a held key would,
// until it points at angle. Barrel steps are 2°, and the only way to change
// the parity of the angle is to press against a stop, so an odd target from
// an even angle ends one degree short.
func (tm *TestMatch) AimTo(angle int) {
	angle = clampInt(angle, minBarrelAngle, maxBarrelAngle)
	c := tm.CurrentCombatant()
	if c.angle%2 == 0 && angle%2 != 0 {
		if angle > c.angle {
			angle--
		} else {
			angle++
		}
	}
	for guard := 0; c.angle != angle && guard < 4*maxBarrelAngle; guard++ {
		if tm.phase != PhaseAwaitingInput {
			return
		}
		diff := angle - c.angle
		dir := 1
		if diff < 0 {
			dir = -1
		}
		if diff%2 != 0 {
			// Odd gap: bounce off the nearest stop to flip parity.
			if c.angle < (minBarrelAngle+maxBarrelAngle)/2 {
				dir = -1
			} else {
				dir = 1
			}
		}
		tm.RotateBarrel(dir)
	}
}

// Shoot aims the current combatant, fires and runs until the shell resolves.
// Returns the impact, or nil if the shell was still flying after maxTicks.
func (tm *TestMatch) Shoot(angle, maxTicks int) *Impact {
	tm.AimTo(angle)
	if !tm.Fire() {
		return nil
	}
	p := tm.projectile
	for i := 0; i < maxTicks && p.Active(); i++ {
		tm.AdvanceTick()
	}
	return p.Impact()
}

// RunTicks advances the match n ticks.
func (tm *TestMatch) RunTicks(n int) {
	for i := 0; i < n; i++ {
		tm.AdvanceTick()
	}
}

// RunUntil advances the match up to maxTicks, stopping early if predicate
// returns true. Returns the tick at which the predicate was satisfied, or -1.
func (tm *TestMatch) RunUntil(predicate func(*TestMatch) bool, maxTicks int) int {
	for i := 0; i < maxTicks; i++ {
		tm.AdvanceTick()
		if predicate(tm) {
			return tm.tick
		}
	}
	return -1
}
