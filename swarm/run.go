package swarm

import (
	"context"
	"time"
)

// Run steps the swarm against dst on its own scheduler until ctx is done or,
// when limit is non-zero, at least limit ticks have run. report, if not nil,
// receives statistics every reportEvery. The final statistics are returned.
// A loop that was already running when Run was called is left running.
func (s *Swarm) Run(ctx context.Context, dst Surface, limit uint64, reportEvery time.Duration, report func(Stats)) Stats {
	started := s.Start(dst)
	finish := func() Stats {
		if started {
			s.Stop()
		}
		return s.Stats()
	}

	var reports <-chan time.Time
	if report != nil && reportEvery > 0 {
		t := time.NewTicker(reportEvery)
		defer t.Stop()
		reports = t.C
	}
	poll := time.NewTicker(s.Config().Interval())
	defer poll.Stop()

	for {
		select {
		case <-ctx.Done():
			return finish()
		case <-reports:
			report(s.Stats())
		case <-poll.C:
			if limit > 0 && s.Ticks() >= limit {
				return finish()
			}
		}
	}
}
