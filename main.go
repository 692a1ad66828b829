package main

import (
	"queensblood/config"
	"queensblood/experiments"

	"github.com/rs/zerolog/log"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}
	cfg.SetupLogging()

	log.Info().Msgf("running %dx%d %s games with seed %d", cfg.Rows, cfg.Columns, cfg.Rules().Name(), cfg.Seed)
	summary, err := experiments.RunRoundRobin(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("tournament failed")
	}

	for _, s := range summary.Standings {
		log.Info().Msgf("%-24s wins %3d  losses %3d  ties %3d", s.Config.Strategy, s.Wins, s.Losses, s.Ties)
	}
	if summary.Truncated > 0 {
		log.Warn().Msgf("%d of %d games hit the turn cap", summary.Truncated, summary.Games)
	}
	log.Info().Msgf("records written to %s", summary.Dir)
}
