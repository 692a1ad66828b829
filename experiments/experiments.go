package experiments

import (
	"fmt"
	"queensblood/agent"
	"queensblood/config"
	"queensblood/engine"
	"queensblood/experiments/metrics"
	"queensblood/game"
	"queensblood/searcher"

	"github.com/rs/zerolog/log"
)

const RoundRobin = "round_robin"

// Standing is one agent's record over a tournament.
type Standing struct {
	Config metrics.AgentConfig
	Wins   int
	Losses int
	Ties   int
}

type Summary struct {
	Dir       string // Where the CSV files were written
	Games     int
	Truncated int
	Standings []Standing // Indexed like the configured strategies
}

// RunRoundRobin plays cfg.Games games for every ordered pair of configured
// strategies, so each pairing is played with both colours, and stores the
// records as CSV under cfg.OutputDir.
func RunRoundRobin(cfg config.Config) (Summary, error) {
	configs := make([]metrics.AgentConfig, len(cfg.Strategies))
	for i, name := range cfg.Strategies {
		configs[i] = metrics.AgentConfig{ID: i + 1, Strategy: name, Seed: cfg.Seed + int64(i)}
	}

	// Each matchup pairs two distinct agents, Red first
	matchUps := [][2]metrics.AgentConfig{}
	for _, red := range configs {
		for _, blue := range configs {
			if red.ID != blue.ID {
				matchUps = append(matchUps, [2]metrics.AgentConfig{red, blue})
			}
		}
	}

	summary := Summary{Standings: make([]Standing, len(configs))}
	for i, c := range configs {
		summary.Standings[i].Config = c
	}

	count := 0
	gameRecords := []metrics.GameRecord{}
	moveRecords := []metrics.MoveRecord{}

	log.Info().Msgf("starting %s experiment with %d match-ups of %d games...", RoundRobin, len(matchUps), cfg.Games)

	for mi, matchUp := range matchUps {
		red, blue := matchUp[0], matchUp[1]
		log.Info().Msgf("starting matchup %d of %d between %s and %s...", mi+1, len(matchUps), red.Strategy, blue.Strategy)

		for i := 0; i < cfg.Games; i++ {
			gameMetric, moveMetrics, err := runGame(cfg, red, blue, int64(i))
			if err != nil {
				return Summary{}, fmt.Errorf("matchup %d game %d: %w", mi+1, i+1, err)
			}
			count++
			gameRecords = append(gameRecords, metrics.GameRecord{
				Game:       count,
				Agent1:     red.ID,
				Agent2:     blue.ID,
				GameMetric: gameMetric,
			})
			for _, mm := range moveMetrics {
				moveRecords = append(moveRecords, metrics.MoveRecord{
					Game:       count,
					MoveMetric: mm,
				})
			}
			summary.record(red.ID, blue.ID, gameMetric)

			log.Debug().Msgf("completed matchup %d game %d with winner: %s (%d-%d)",
				mi+1, i+1, gameMetric.Winner, gameMetric.RedScore, gameMetric.BlueScore)
		}
		log.Info().Msgf("completed matchup %d of %d", mi+1, len(matchUps))
	}

	log.Info().Msgf("completed %s experiment", RoundRobin)

	dir, err := store(cfg.OutputDir, configs, gameRecords, moveRecords)
	if err != nil {
		return Summary{}, err
	}
	summary.Dir = dir
	summary.Games = count
	return summary, nil
}

func (s *Summary) record(redID, blueID int, m metrics.GameMetric) {
	if m.Truncated {
		s.Truncated++
	}
	red, blue := &s.Standings[redID-1], &s.Standings[blueID-1]
	switch m.Winner {
	case game.Red:
		red.Wins++
		blue.Losses++
	case game.Blue:
		blue.Wins++
		red.Losses++
	default:
		red.Ties++
		blue.Ties++
	}
}

func store(root string, configs []metrics.AgentConfig, games []metrics.GameRecord, moves []metrics.MoveRecord) (string, error) {
	writer, err := metrics.NewWriter(root, RoundRobin)
	if err != nil {
		return "", fmt.Errorf("failed to create experiment writer: %w", err)
	}

	if err := writer.WriteAgentConfigs(configs); err != nil {
		return "", fmt.Errorf("failed to store agent configs: %w", err)
	}
	log.Info().Msg("stored agent configs")

	if err := writer.WriteGameRecords(games); err != nil {
		return "", fmt.Errorf("failed to write game records: %w", err)
	}
	log.Info().Msg("stored game records")

	if err := writer.WriteMoveRecords(moves); err != nil {
		return "", fmt.Errorf("failed to write move records: %w", err)
	}
	log.Info().Msg("stored move records")

	return writer.Dir(), nil
}

// runGame plays a single game between two agents. round offsets the agents'
// seeds so repeated games of a matchup differ.
func runGame(cfg config.Config, red, blue metrics.AgentConfig, round int64) (metrics.GameMetric, []metrics.MoveMetric, error) {
	redPlayer, err := game.NewPlayer(game.Red, cfg.Deck(), cfg.HandSize)
	if err != nil {
		return metrics.GameMetric{}, nil, err
	}
	bluePlayer, err := game.NewPlayer(game.Blue, cfg.Deck(), cfg.HandSize)
	if err != nil {
		return metrics.GameMetric{}, nil, err
	}
	g, err := game.NewEngine(cfg.Rows, cfg.Columns, redPlayer, bluePlayer, game.WithRules(cfg.Rules()))
	if err != nil {
		return metrics.GameMetric{}, nil, err
	}

	redAgent, err := createAgent(game.Red, red, round)
	if err != nil {
		return metrics.GameMetric{}, nil, err
	}
	blueAgent, err := createAgent(game.Blue, blue, round)
	if err != nil {
		return metrics.GameMetric{}, nil, err
	}

	e := engine.NewLocalEngine(g, redAgent, blueAgent, engine.WithMaxTurns(cfg.MaxTurns))
	return e.Run()
}

func createAgent(owner game.Owner, ac metrics.AgentConfig, round int64) (*agent.Agent, error) {
	collector := metrics.NewCollector()
	strategy, err := searcher.ByName(ac.Strategy,
		searcher.WithCollector(collector),
		searcher.WithSeed(ac.Seed+round))
	if err != nil {
		return nil, err
	}
	return agent.New(owner, strategy,
		agent.WithCollector(collector),
		agent.WithLogger(log.Logger)), nil
}
