package game

import (
	"math"
	"testing"
)

func TestNewCombatant_RestsOnSurface(t *testing.T) {
	f := NewFlatField(400, 400, 100)
	c := NewCombatant(2, 150, f)
	if c.Label() != "P3" {
		t.Fatalf("label=%q, want P3", c.Label())
	}
	if c.Color() != CombatantColors[2] {
		t.Fatalf("colour=%v, want green", c.Color())
	}
	if c.Y() != 290 {
		t.Fatalf("y=%.1f, want 290 (surface row 300 minus half the body)", c.Y())
	}
	if c.Angle() != initialAngle || c.Health() != startHealth {
		t.Fatalf("angle=%d health=%d", c.Angle(), c.Health())
	}
	if w, h := c.Size(); w != 40 || h != 20 {
		t.Fatalf("size=%dx%d, want 40x20", w, h)
	}
}

func TestCombatant_RotateBarrelClamps(t *testing.T) {
	c := NewCombatant(0, 10, NewFlatField(100, 100, 10))
	c.RotateBarrel(1)
	if c.Angle() != 47 {
		t.Fatalf("angle=%d, want 47", c.Angle())
	}
	c.RotateBarrel(25) // only the sign counts
	if c.Angle() != 49 {
		t.Fatalf("angle=%d, want 49", c.Angle())
	}
	c.RotateBarrel(0)
	if c.Angle() != 49 {
		t.Fatalf("zero direction changed the angle to %d", c.Angle())
	}
	for i := 0; i < 200; i++ {
		c.RotateBarrel(1)
	}
	if c.Angle() != maxBarrelAngle {
		t.Fatalf("angle=%d, want %d", c.Angle(), maxBarrelAngle)
	}
	for i := 0; i < 200; i++ {
		c.RotateBarrel(-3)
	}
	if c.Angle() != minBarrelAngle {
		t.Fatalf("angle=%d, want %d", c.Angle(), minBarrelAngle)
	}
}

func TestCombatant_MuzzleAndFire(t *testing.T) {
	f := NewFlatField(400, 400, 100)
	c := NewCombatant(1, 200, f)

	c.angle = 90
	mx, my := c.Muzzle()
	if math.Abs(mx-200) > 1e-9 || math.Abs(my-(290-barrelLength)) > 1e-9 {
		t.Fatalf("muzzle at 90°=(%.3f,%.3f), want (200,250)", mx, my)
	}

	c.angle = 0
	p := c.Fire()
	x, y := p.Position()
	vx, vy := p.Velocity()
	if x != 240 || y != 290 {
		t.Fatalf("launch at 0° from (%.1f,%.1f), want (240,290)", x, y)
	}
	if vx != launchSpeed || math.Abs(vy) > 1e-9 {
		t.Fatalf("velocity at 0°=(%.3f,%.3f), want (20,0)", vx, vy)
	}
	if p.Owner() != 1 || p.Color() != CombatantColors[1] || !p.Active() {
		t.Fatal("projectile should carry the shooter's seat and colour")
	}

	c.angle = 135
	p = c.Fire()
	vx, vy = p.Velocity()
	want := launchSpeed * math.Sqrt2 / 2
	if math.Abs(vx+want) > 1e-9 || math.Abs(vy+want) > 1e-9 {
		t.Fatalf("velocity at 135°=(%.3f,%.3f), want (-%.3f,-%.3f)", vx, vy, want, want)
	}
}

func TestCombatant_ResettleNeverLifts(t *testing.T) {
	f := NewFlatField(400, 400, 100)
	c := NewCombatant(0, 200, f)

	c.y = 350 // already below the support line
	c.Resettle(f)
	if c.Y() != 350 {
		t.Fatalf("resettle lifted the combatant to %.1f", c.Y())
	}

	c.y = 100 // floating
	c.Resettle(f)
	if c.Y() != 290 {
		t.Fatalf("resettle y=%.1f, want 290", c.Y())
	}

	prev := c.Y()
	for i := 0; i < 10; i++ {
		f.Explode(200+i*7-30, f.SurfaceRow(200), 25)
		c.Resettle(f)
		if c.Y() < prev {
			t.Fatalf("explosion %d moved the combatant up: %.1f -> %.1f", i, prev, c.Y())
		}
		prev = c.Y()
	}
}

func TestCombatant_ResettleOverEmptyColumn(t *testing.T) {
	f := NewFlatField(100, 100, 10)
	c := NewCombatant(0, 50, f)
	f.Fill(50, 0, 50, 99, false)
	c.Resettle(f)
	if c.Y() != 90 {
		t.Fatalf("combatant over an empty column should rest on the bottom edge, y=%.1f", c.Y())
	}
}

func TestCombatant_Damage(t *testing.T) {
	c := NewCombatant(0, 10, NewFlatField(100, 100, 10))
	for i := 1; i < startHealth; i++ {
		if c.Damage() {
			t.Fatalf("hit %d reported elimination early", i)
		}
	}
	if !c.Damage() || !c.Eliminated() || c.Health() != 0 {
		t.Fatalf("final hit should eliminate, health=%d", c.Health())
	}
}
