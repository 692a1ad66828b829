package engine

import (
	"fmt"
	"queensblood/agent"
	"queensblood/experiments/metrics"
	"queensblood/game"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// LocalEngine runs a match between two agents in the current goroutine.
type LocalEngine struct {
	Game     *game.Engine
	Agents   map[game.Owner]*agent.Agent
	maxTurns int
}

type Option func(e *LocalEngine)

func WithMaxTurns(maxTurns int) Option {
	return func(e *LocalEngine) {
		if maxTurns > 0 {
			e.maxTurns = maxTurns
		}
	}
}

func NewLocalEngine(g *game.Engine, red, blue *agent.Agent, options ...Option) *LocalEngine {
	if g == nil {
		panic("local engine needs a game")
	}
	if red == nil || red.Owner() != game.Red || blue == nil || blue.Owner() != game.Blue {
		panic("local engine needs a Red and a Blue agent")
	}

	e := &LocalEngine{ // Default values
		Game:     g,
		Agents:   map[game.Owner]*agent.Agent{game.Red: red, game.Blue: blue},
		maxTurns: DefaultMaxTurns,
	}
	for _, option := range options {
		option(e)
	}
	return e
}

var _ Engine = (*LocalEngine)(nil)

// Run executes the entire game loop until the game is over.
func (e *LocalEngine) Run() (metrics.GameMetric, []metrics.MoveMetric, error) {
	gameMetric := metrics.GameMetric{
		ID:             uuid.NewString(),
		StartingPlayer: e.Game.ActivePlayer(),
		StartTime:      time.Now(),
	}
	logger := log.With().Str("game", gameMetric.ID).Logger()
	unsubscribe := e.Game.Subscribe(game.LogSubscriber{Logger: logger})
	defer unsubscribe()

	logger.Info().Msgf("%s (%s) against %s (%s), %s is starting",
		game.Red, e.Agents[game.Red].Strategy().Name(),
		game.Blue, e.Agents[game.Blue].Strategy().Name(),
		gameMetric.StartingPlayer)

	var moveMetrics []metrics.MoveMetric
	step := 1
	for !e.Game.IsGameOver() && step <= e.maxTurns {
		player := e.Game.ActivePlayer()
		turn, err := e.Agents[player].Play(e.Game)
		if err != nil {
			return metrics.GameMetric{}, nil, fmt.Errorf("turn %d of %s: %w", step, player, err)
		}
		moveMetrics = append(moveMetrics, metrics.MoveMetric{
			Step:         step,
			Player:       player,
			Move:         turn.Move,
			Passed:       turn.Passed,
			SearchMetric: turn.Metric,
		})
		step++
	}

	result := e.Game.Result()
	gameMetric.Winner = result.Winner
	gameMetric.RedScore = result.Red
	gameMetric.BlueScore = result.Blue
	gameMetric.EndTime = time.Now()
	gameMetric.Duration = gameMetric.EndTime.Sub(gameMetric.StartTime)
	gameMetric.TotalMoves = len(moveMetrics)
	gameMetric.Truncated = !e.Game.IsGameOver()

	if gameMetric.Truncated {
		logger.Warn().Msgf("stopped after %d turns without a result", e.Game.Turns())
	}
	return gameMetric, moveMetrics, nil
}
