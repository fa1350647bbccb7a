// Package swarm simulates a swarm of particles that repel at short range,
// attract at medium range and optionally chase the mouse pointer.
package swarm

import (
	"io"
	"math"
	"math/rand"
	"sync"
	"time"

	"github.com/aquilax/go-perlin"
	"github.com/sirupsen/logrus"
	"gonum.org/v1/gonum/spatial/r2"
)

// Perlin parameters for the leader's wander target.
const (
	wanderAlpha = 2
	wanderBeta  = 2
	wanderN     = 3
	wanderRate  = 0.005
)

// Swarm owns the world, its particles and the pointer. All methods are safe
// for concurrent use; a step is atomic with respect to pointer updates.
type Swarm struct {
	mu        sync.Mutex
	cfg       Config
	world     r2.Vec
	particles []Particle
	pointer   Pointer
	ticks     uint64
	noise     *perlin.Perlin

	task    *Task
	surface Surface

	log logrus.FieldLogger
}

// Option configures a Swarm.
type Option func(*Swarm)

// WithLogger sets the logger used for lifecycle events.
func WithLogger(log logrus.FieldLogger) Option {
	return func(s *Swarm) {
		s.log = log
	}
}

// New builds a swarm from cfg.
func New(cfg Config, opts ...Option) (*Swarm, error) {
	discard := logrus.New()
	discard.Out = io.Discard
	s := &Swarm{log: discard}
	for _, opt := range opts {
		opt(s)
	}
	if err := s.Initialize(cfg); err != nil {
		return nil, err
	}
	return s, nil
}

// Initialize replaces the particle set with a fresh one built from cfg and
// clears the pointer. The run loop is left as it is.
func (s *Swarm) Initialize(cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	for _, w := range cfg.Warnings() {
		s.log.Warn(w)
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))
	world := r2.Vec{X: cfg.Width, Y: cfg.Height}

	particles := make([]Particle, 0, cfg.Count+1)
	for i := 0; i < cfg.Count; i++ {
		particles = append(particles, newParticle(KindSwarmer, cfg, world, rng))
	}
	if cfg.Leader {
		particles = append(particles, newParticle(KindLeader, cfg, world, rng))
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.cfg = cfg
	s.world = world
	s.particles = particles
	s.pointer = Pointer{}
	s.ticks = 0
	s.noise = perlin.NewPerlin(wanderAlpha, wanderBeta, wanderN, seed)

	s.log.WithFields(logrus.Fields{
		"count":  cfg.Count,
		"leader": cfg.Leader,
		"algo":   cfg.Algo,
		"world":  [2]float64{cfg.Width, cfg.Height},
	}).Debug("swarm initialized")
	return nil
}

// Advance moves every particle by one tick. Next states are computed from
// the positions at the start of the tick and committed together.
func (s *Swarm) Advance() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.advance()
}

func (s *Swarm) advance() {
	f := frame{
		cfg:      s.cfg,
		world:    s.world,
		pointer:  s.pointer,
		wander:   s.wanderTarget(),
		snapshot: s.particles,
	}
	next := make([]Particle, len(s.particles))
	for i := range s.particles {
		next[i] = f.next(i)
	}
	s.particles = next
	s.ticks++
}

// wanderTarget is a point drifting smoothly through the world, following
// Perlin noise sampled along the tick count.
func (s *Swarm) wanderTarget() r2.Vec {
	t := float64(s.ticks) * wanderRate
	x := (s.noise.Noise2D(t, 0) + 1) / 2
	y := (s.noise.Noise2D(0, t) + 1) / 2
	return r2.Vec{
		X: math.Max(0, math.Min(1, x)) * s.world.X,
		Y: math.Max(0, math.Min(1, y)) * s.world.Y,
	}
}

// Draw clears dst and renders every particle onto it.
func (s *Swarm) Draw(dst Surface) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.draw(dst)
}

func (s *Swarm) draw(dst Surface) {
	dst.Clear()
	for i := range s.particles {
		drawParticle(dst, &s.particles[i], s.cfg)
	}
}

// Step advances the swarm one tick and redraws it.
func (s *Swarm) Step(dst Surface) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.advance()
	s.draw(dst)
}

// Start runs Step against dst at the configured rate and reports whether it
// started the loop. Starting a running swarm is a no-op.
func (s *Swarm) Start(dst Surface) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.task != nil {
		return false
	}
	s.surface = dst
	s.task = Every(s.cfg.Interval(), func() { s.Step(dst) })
	s.log.WithField("interval", s.cfg.Interval()).Info("swarm started")
	return true
}

// Stop halts the run loop and waits for the current step to finish.
func (s *Swarm) Stop() {
	s.mu.Lock()
	task := s.task
	s.task = nil
	s.mu.Unlock()
	if task == nil {
		return
	}
	task.Stop()
	s.log.Info("swarm stopped")
}

// Running reports whether the run loop is active.
func (s *Swarm) Running() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.task != nil
}

// Reset stops the loop, rebuilds the swarm from cfg and restarts the loop if
// it was running. On error the old swarm is kept and the loop is restarted.
func (s *Swarm) Reset(cfg Config) error {
	s.mu.Lock()
	wasRunning := s.task != nil
	dst := s.surface
	s.mu.Unlock()

	s.Stop()
	err := s.Initialize(cfg)
	if wasRunning {
		s.Start(dst)
	}
	if err != nil {
		return err
	}
	s.log.WithField("count", cfg.Count).Info("swarm reset")
	return nil
}

// SetPointer records the pointer position. Negative coordinates mean the
// pointer left the world.
func (s *Swarm) SetPointer(x, y float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if x < 0 || y < 0 {
		s.pointer = Pointer{}
		return
	}
	s.pointer = Pointer{X: x, Y: y, Present: true}
}

// ClearPointer marks the pointer as absent.
func (s *Swarm) ClearPointer() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pointer = Pointer{}
}

// Pointer returns the last recorded pointer state.
func (s *Swarm) Pointer() Pointer {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pointer
}

// Resize changes the world bounds and pulls particles that no longer fit back
// inside, inset by their radius. Non-positive sizes are ignored.
func (s *Swarm) Resize(width, height float64) {
	if width <= 0 || height <= 0 {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.world = r2.Vec{X: width, Y: height}
	s.cfg.Width, s.cfg.Height = width, height
	for i := range s.particles {
		p := &s.particles[i]
		p.Pos.X = insetAxis(p.Pos.X, p.Radius, width)
		p.Pos.Y = insetAxis(p.Pos.Y, p.Radius, height)
	}
}

// Size returns the world bounds.
func (s *Swarm) Size() (width, height float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.world.X, s.world.Y
}

// Particles returns a copy of the current particle set.
func (s *Swarm) Particles() []Particle {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Particle, len(s.particles))
	copy(out, s.particles)
	return out
}

// Config returns the config the swarm was last built from.
func (s *Swarm) Config() Config {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cfg
}

// Ticks returns the number of steps since the last Initialize.
func (s *Swarm) Ticks() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ticks
}
