package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/stephencox/swarm-playground/swarm"
)

const reportInterval = time.Second

// runHeadless steps s without a window and logs statistics until the tick
// limit is reached or the process is interrupted.
func runHeadless(s *swarm.Swarm, limit uint64, log logrus.FieldLogger) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	report := func(st swarm.Stats) { logStats(log, st) }
	final := s.Run(ctx, swarm.Discard, limit, reportInterval, report)
	if ctx.Err() != nil {
		log.Info("interrupted")
	}
	logStats(log.WithField("final", true), final)
}

func logStats(log logrus.FieldLogger, st swarm.Stats) {
	log.WithFields(logrus.Fields{
		"tick":       st.Tick,
		"particles":  st.Count,
		"centroid":   [2]float64{st.Centroid.X, st.Centroid.Y},
		"mean_speed": st.MeanSpeed,
		"max_speed":  st.MaxSpeed,
		"contacts":   st.Contacts,
	}).Info("swarm stats")
}
