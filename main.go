package main

import (
	"checkers/config"
	"checkers/console"
	"checkers/engine"
	"checkers/experiments"
	"checkers/experiments/metrics"
	"context"
	"errors"
	"flag"
	"io"
	"os"
	"os/signal"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	cfgPath := flag.String("config", "", "Path to a config file")
	mode := flag.String("mode", "", "Mode: ask, pvp, pvc, cvc or selfplay")
	selfPlay := flag.Int("selfplay", 0, "Run this many self-play games per match up, implies -mode selfplay")
	out := flag.String("out", "", "Directory for self-play records")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly})

	cfg, err := config.Setup(*cfgPath)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}
	if *mode != "" {
		cfg.Mode = *mode
	}
	if *out != "" {
		cfg.OutDir = *out
	}
	if *selfPlay > 0 {
		cfg.Mode = "selfplay"
		cfg.SelfPlayGames = *selfPlay
	}
	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("invalid config")
	}

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid log level")
	}
	zerolog.SetGlobalLevel(level)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if cfg.Mode == "selfplay" {
		dir, err := experiments.RunSelfPlay(ctx, experiments.Options{
			Games:    cfg.SelfPlayGames,
			OutDir:   cfg.OutDir,
			MatchUps: experiments.DefaultMatchUps(searchConfig(cfg), cfg.Seed),
		})
		if err != nil {
			log.Fatal().Err(err).Msg("self-play failed")
		}
		log.Info().Msgf("self-play records written to %s", dir)
		return
	}

	err = play(ctx, cfg)
	if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, context.Canceled) {
		log.Fatal().Err(err).Msg("game failed")
	}
}

func play(ctx context.Context, cfg *config.Config) error {
	c := console.New(os.Stdin, os.Stdout, cfg.Colour)

	mode := cfg.Mode
	if mode == "ask" {
		c.Begin()
		chosen, err := c.ChooseMode(ctx)
		if err != nil {
			return err
		}
		mode = "pvp"
		if chosen == console.OnePlayer {
			mode = "pvc"
		}
	}

	x := engine.Seat{Player: console.NewHuman(c)}
	o := engine.Seat{Player: console.NewHuman(c)}
	switch mode {
	case "pvc":
		c.ConfirmOnePlayerMode()
		o = computer(cfg, 1)
	case "cvc":
		x = computer(cfg, 0)
		o = computer(cfg, 1)
	}

	_, err := engine.New(x, o, engine.WithObserver(c), engine.WithDelay(cfg.Delay)).Run(ctx)
	return err
}

func computer(cfg *config.Config, round int) engine.Seat {
	agent := searchConfig(cfg)
	agent.Kind = cfg.Computer
	return engine.Seat{Player: experiments.NewPlayer(agent, round), Computer: true}
}

func searchConfig(cfg *config.Config) metrics.AgentConfig {
	return metrics.AgentConfig{
		Kind:       experiments.SearchAgent,
		Goroutines: cfg.Goroutines,
		Duration:   cfg.Duration,
		Episodes:   cfg.Episodes,
		Cutoff:     cfg.Cutoff,
		Seed:       cfg.Seed,
	}
}
