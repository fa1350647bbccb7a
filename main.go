package main

import (
	"flag"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/sirupsen/logrus"

	"github.com/stephencox/swarm-playground/swarm"
)

func main() {
	configPath := flag.String("config", "", "TOML file with swarm parameters")
	headless := flag.Bool("headless", false, "run without a window and log statistics")
	ticks := flag.Uint64("ticks", 0, "stop a headless run after this many ticks (0 runs until interrupted)")
	level := flag.String("log-level", "info", "log level")
	flag.Parse()

	log := logrus.New()
	log.Formatter = &logrus.TextFormatter{ForceColors: true}
	lvl, err := logrus.ParseLevel(*level)
	if err != nil {
		log.Fatalf("parse log level: %v", err)
	}
	log.Level = lvl

	cfg := swarm.DefaultConfig()
	if *configPath != "" {
		if cfg, err = swarm.LoadConfig(*configPath); err != nil {
			log.Fatal(err)
		}
	}

	s, err := swarm.New(cfg, swarm.WithLogger(log))
	if err != nil {
		log.Fatal(err)
	}

	if *headless {
		runHeadless(s, *ticks, log)
		return
	}

	ebiten.SetWindowSize(int(cfg.Width), int(cfg.Height))
	ebiten.SetWindowTitle("Swarm")
	ebiten.SetWindowResizable(true)
	ebiten.SetTPS(cfg.TPS)

	if err := ebiten.RunGame(NewGame(s, *configPath, log)); err != nil {
		log.Fatal(err)
	}
}
