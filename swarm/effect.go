package swarm

import "gonum.org/v1/gonum/spatial/r2"

// Epsilon is the separation below which two particles are treated as
// coincident and exert no force on each other.
const Epsilon = 1e-9

// Effect returns the scalar interaction magnitude between two particles at
// the given distance. Negative values repel.
func Effect(c Config, distance float64) float64 {
	switch c.Algo {
	case AlgoConstant:
		switch {
		case distance < c.RepelBoundary:
			return c.RepelForce
		case distance > c.RepelBoundary && distance < c.AttractBoundary:
			return c.AttractForce
		}
	case AlgoLinear:
		switch {
		case distance < c.RepelBoundary:
			return c.RepelForce * (c.RepelBoundary - distance) / c.RepelBoundary
		case distance > c.RepelBoundary && distance < c.AttractBoundary:
			return c.AttractForce * (c.AttractBoundary - distance) / c.AttractBoundary
		}
	}
	return 0
}

// pairEffect converts the effect other has on self into an acceleration
// vector. contact reports whether the pair touches while interacting.
func pairEffect(c Config, self, other *Particle) (acc r2.Vec, contact bool) {
	if c.Algo == AlgoNone {
		return r2.Vec{}, false
	}
	d := r2.Sub(other.Pos, self.Pos)
	distance := r2.Norm(d)
	if distance < Epsilon {
		return r2.Vec{}, false
	}
	effect := Effect(c, distance)
	if effect == 0 {
		return r2.Vec{}, false
	}
	return r2.Scale(effect*self.Speed/distance, d), distance <= self.Radius
}
