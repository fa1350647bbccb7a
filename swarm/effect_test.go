package swarm

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/spatial/r2"
)

const tolerance = 1e-9

func near(a, b float64) bool {
	return math.Abs(a-b) <= tolerance
}

func effectConfig(algo Algorithm) Config {
	c := DefaultConfig()
	c.Algo = algo
	c.RepelBoundary = 100
	c.AttractBoundary = 400
	c.RepelForce = -10
	c.AttractForce = 1
	return c
}

func TestEffectNone(t *testing.T) {
	c := effectConfig(AlgoNone)
	for _, d := range []float64{0.5, 50, 100, 250, 1000} {
		if e := Effect(c, d); e != 0 {
			t.Fatalf("distance %v: expected no effect, got %v", d, e)
		}
	}
	self := Particle{Pos: r2.Vec{X: 10, Y: 10}, Radius: 4, Speed: 2}
	other := Particle{Pos: r2.Vec{X: 12, Y: 10}, Radius: 4, Speed: 2}
	acc, contact := pairEffect(c, &self, &other)
	if acc != (r2.Vec{}) || contact {
		t.Fatalf("expected zero vector without contact, got %v %v", acc, contact)
	}
}

func TestEffectConstant(t *testing.T) {
	c := effectConfig(AlgoConstant)
	for _, d := range []float64{1, 25, 50, 99.9} {
		if e := Effect(c, d); e != c.RepelForce {
			t.Fatalf("distance %v: expected repel force %v, got %v", d, c.RepelForce, e)
		}
	}
	if e := Effect(c, c.RepelBoundary); e != 0 {
		t.Fatalf("expected zero effect on the repel boundary, got %v", e)
	}
	for _, d := range []float64{100.1, 250, 399} {
		if e := Effect(c, d); e != c.AttractForce {
			t.Fatalf("distance %v: expected attract force %v, got %v", d, c.AttractForce, e)
		}
	}
	if e := Effect(c, 400); e != 0 {
		t.Fatalf("expected zero effect at the attract boundary, got %v", e)
	}
	if e := Effect(c, 1000); e != 0 {
		t.Fatalf("expected zero effect beyond the attract boundary, got %v", e)
	}
}

func TestEffectLinear(t *testing.T) {
	c := effectConfig(AlgoLinear)
	if e := Effect(c, c.RepelBoundary/2); e != c.RepelForce*0.5 {
		t.Fatalf("expected half repel force, got %v", e)
	}
	if e := Effect(c, 0); e != c.RepelForce {
		t.Fatalf("expected full repel force at zero distance, got %v", e)
	}
	if e := Effect(c, 200); !near(e, c.AttractForce*0.5) {
		t.Fatalf("expected half attract force at 200, got %v", e)
	}
	if e := Effect(c, c.RepelBoundary); e != 0 {
		t.Fatalf("expected zero effect on the repel boundary, got %v", e)
	}
	if e := Effect(c, 500); e != 0 {
		t.Fatalf("expected zero effect beyond the attract boundary, got %v", e)
	}
}

func TestPairEffectVector(t *testing.T) {
	c := effectConfig(AlgoConstant)
	self := Particle{Pos: r2.Vec{}, Radius: 4, Speed: 2}
	other := Particle{Pos: r2.Vec{X: 30, Y: 40}, Radius: 4, Speed: 2}

	acc, contact := pairEffect(c, &self, &other)
	if !near(acc.X, -12) || !near(acc.Y, -16) {
		t.Fatalf("expected repulsion (-12, -16), got %v", acc)
	}
	if contact {
		t.Fatal("particles 50 apart should not be in contact")
	}
	if !near(r2.Norm(acc), -c.RepelForce*self.Speed) {
		t.Fatalf("expected magnitude |effect|*speed, got %v", r2.Norm(acc))
	}
}

func TestPairEffectContact(t *testing.T) {
	c := effectConfig(AlgoLinear)
	self := Particle{Pos: r2.Vec{X: 10, Y: 10}, Radius: 4, Speed: 2}
	other := Particle{Pos: r2.Vec{X: 13, Y: 10}, Radius: 4, Speed: 2}
	if _, contact := pairEffect(c, &self, &other); !contact {
		t.Fatal("expected contact at distance 3 with radius 4")
	}
}

func TestPairEffectCoincident(t *testing.T) {
	for _, algo := range Algorithms {
		c := effectConfig(algo)
		self := Particle{Pos: r2.Vec{X: 10, Y: 10}, Radius: 4, Speed: 2}
		other := self
		acc, _ := pairEffect(c, &self, &other)
		if acc != (r2.Vec{}) || math.IsNaN(acc.X) || math.IsNaN(acc.Y) {
			t.Fatalf("%s: expected zero contribution for coincident particles, got %v", algo, acc)
		}
	}
}
