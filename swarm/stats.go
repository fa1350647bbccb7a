package swarm

import (
	"gonum.org/v1/gonum/spatial/r2"
)

// Stats summarises the swarm at one tick.
type Stats struct {
	Tick      uint64
	Count     int
	Centroid  r2.Vec
	MeanSpeed float64
	MaxSpeed  float64
	Contacts  int
}

// Stats computes aggregate figures over the current particle set.
func (s *Swarm) Stats() Stats {
	s.mu.Lock()
	defer s.mu.Unlock()

	st := Stats{Tick: s.ticks, Count: len(s.particles)}
	if st.Count == 0 {
		return st
	}
	var sum r2.Vec
	var speed float64
	for i := range s.particles {
		p := &s.particles[i]
		sum = r2.Add(sum, p.Pos)
		v := r2.Norm(p.Vel)
		speed += v
		if v > st.MaxSpeed {
			st.MaxSpeed = v
		}
		if p.Contact {
			st.Contacts++
		}
	}
	n := float64(st.Count)
	st.Centroid = r2.Scale(1/n, sum)
	st.MeanSpeed = speed / n
	return st
}
