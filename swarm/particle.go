package swarm

import (
	"math"
	"math/rand"

	"gonum.org/v1/gonum/spatial/r2"
)

// Kind tags the particle variants. Each kind has its own move rule and
// shares reflection, integration and drawing.
type Kind uint8

const (
	// KindSwarmer reacts to the other particles, the pointer and speed-up.
	KindSwarmer Kind = iota
	// KindLeader ignores the swarm and chases the pointer or a wander target.
	KindLeader
)

func (k Kind) String() string {
	switch k {
	case KindSwarmer:
		return "swarmer"
	case KindLeader:
		return "leader"
	}
	return "unknown"
}

// Leader smoothing factors.
const (
	leaderInertia = 0.995
	leaderPull    = 0.006
)

// Particle is one simulated body.
type Particle struct {
	Kind   Kind
	Pos    r2.Vec
	Vel    r2.Vec
	Radius float64
	Mass   float64
	Speed  float64

	// Contact is set when another particle touched this one during the last
	// step. It only affects colour.
	Contact bool
}

// Moment is the inverse mass.
func (p *Particle) Moment() float64 {
	return 1 / p.Mass
}

// newParticle places a particle uniformly inside the world, inset by its
// radius, heading in a random direction at the configured speed.
func newParticle(kind Kind, c Config, world r2.Vec, rng *rand.Rand) Particle {
	p := Particle{
		Kind:   kind,
		Radius: c.Radius,
		Mass:   c.Mass,
		Speed:  c.Speed,
	}
	p.Pos = r2.Vec{
		X: placeOnAxis(c.Radius, world.X, rng),
		Y: placeOnAxis(c.Radius, world.Y, rng),
	}
	direction := 2 * math.Pi * rng.Float64()
	p.Vel = r2.Vec{X: c.Speed * math.Cos(direction), Y: c.Speed * math.Sin(direction)}
	return p
}

func placeOnAxis(radius, length float64, rng *rand.Rand) float64 {
	span := length - 2*radius
	if span <= 0 {
		return length / 2
	}
	return radius + rng.Float64()*span
}

// frame is the read-only view of the world a particle moves against. All
// particles of one step see the same snapshot.
type frame struct {
	cfg      Config
	world    r2.Vec
	pointer  Pointer
	wander   r2.Vec
	snapshot []Particle
}

// next computes the state of snapshot[i] after one tick.
func (f *frame) next(i int) Particle {
	p := f.snapshot[i]
	switch p.Kind {
	case KindLeader:
		p.Vel = f.leaderVelocity(&p)
	default:
		p.Vel, p.Contact = f.swarmerVelocity(i, &p)
	}
	p.Vel = reflect(p.Pos, p.Vel, p.Radius, f.world)
	p.Pos = clampToWorld(r2.Add(p.Pos, p.Vel), f.world)
	return p
}

func (f *frame) swarmerVelocity(i int, p *Particle) (r2.Vec, bool) {
	var total r2.Vec
	c := f.cfg

	if c.FollowMouse && f.pointer.Present {
		total = r2.Add(total, r2.Scale(c.MouseForce, towards(p.Pos, f.pointer.Vec(), p.Speed)))
	}

	if c.SpeedUp && r2.Norm2(p.Vel) < p.Speed*p.Speed {
		total = r2.Add(total, r2.Scale(1+p.Moment(), p.Vel))
	}

	contact := false
	for j := range f.snapshot {
		if j == i {
			continue
		}
		acc, touched := pairEffect(c, p, &f.snapshot[j])
		total = r2.Add(total, acc)
		contact = contact || touched
	}

	m := p.Moment()
	if c.Dampen {
		return r2.Add(r2.Scale(1-m, p.Vel), r2.Scale(m, total)), contact
	}
	return r2.Add(p.Vel, r2.Scale(m, total)), contact
}

func (f *frame) leaderVelocity(p *Particle) r2.Vec {
	target := f.wander
	if f.pointer.Present {
		target = f.pointer.Vec()
	}
	return r2.Add(r2.Scale(leaderInertia, p.Vel), r2.Scale(leaderPull, towards(p.Pos, target, p.Speed)))
}

// towards returns the vector from pos to target scaled to length speed, or
// zero when the two coincide.
func towards(pos, target r2.Vec, speed float64) r2.Vec {
	d := r2.Sub(target, pos)
	n := r2.Norm(d)
	if n < Epsilon {
		return r2.Vec{}
	}
	return r2.Scale(speed/n, d)
}

// reflect negates each velocity component that is heading out of the world
// and whose next step would carry the particle's edge outside [0, world].
// Components already heading back in are left alone so a particle resting on
// a wall does not flip every tick.
func reflect(pos, vel r2.Vec, radius float64, world r2.Vec) r2.Vec {
	vel.X = reflectAxis(pos.X, vel.X, radius, world.X)
	vel.Y = reflectAxis(pos.Y, vel.Y, radius, world.Y)
	return vel
}

func reflectAxis(pos, vel, radius, length float64) float64 {
	next := pos + vel
	if (vel > 0 && next+radius > length) || (vel < 0 && next-radius < 0) {
		return -vel
	}
	return vel
}

// insetAxis pulls pos into [radius, length-radius], or to the middle of the
// axis when the world is narrower than the particle.
func insetAxis(pos, radius, length float64) float64 {
	if length-2*radius <= 0 {
		return length / 2
	}
	return math.Max(radius, math.Min(length-radius, pos))
}

func clampToWorld(pos, world r2.Vec) r2.Vec {
	pos.X = math.Max(0, math.Min(world.X, pos.X))
	pos.Y = math.Max(0, math.Min(world.Y, pos.Y))
	return pos
}
