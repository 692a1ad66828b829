package agent

import (
	"errors"
	"fmt"
	"queensblood/experiments/metrics"
	"queensblood/game"
	"queensblood/searcher"

	"github.com/rs/zerolog"
)

var ErrNotYourTurn = errors.New("not this agent's turn")

// Game is the part of the engine an agent drives.
type Game interface {
	game.View
	PlaceCard(row, col, handIndex int) error
	Pass() error
}

// Turn is what an agent did with its turn.
type Turn struct {
	Move   game.Move
	Passed bool
	Metric metrics.SearchMetric
}

// Agent plays one side of a game by asking a strategy for moves. An empty
// hand or a strategy without a move is turned into an explicit pass.
type Agent struct {
	owner     game.Owner
	strategy  searcher.Strategy
	collector metrics.Collector
	logger    zerolog.Logger
}

type Option func(a *Agent)

// WithCollector records a SearchMetric per turn. Pass the same collector to
// the strategy to count its simulations.
func WithCollector(collector metrics.Collector) Option {
	return func(a *Agent) {
		if collector != nil {
			a.collector = collector
		}
	}
}

func WithLogger(logger zerolog.Logger) Option {
	return func(a *Agent) {
		a.logger = logger
	}
}

func New(owner game.Owner, strategy searcher.Strategy, options ...Option) *Agent {
	if !owner.IsPlayer() {
		panic(fmt.Sprintf("agent cannot play for %s", owner))
	}
	if strategy == nil {
		panic("agent needs a strategy")
	}
	a := &Agent{ // Default values
		owner:     owner,
		strategy:  strategy,
		collector: metrics.NewDummyCollector(),
		logger:    zerolog.Nop(),
	}
	for _, option := range options {
		option(a)
	}
	return a
}

func (a *Agent) Owner() game.Owner { return a.owner }

func (a *Agent) Strategy() searcher.Strategy { return a.strategy }

// Play takes exactly one turn in g: a placement or a pass.
func (a *Agent) Play(g Game) (Turn, error) {
	if g.IsGameOver() {
		return Turn{}, game.ErrGameOver
	}
	if active := g.ActivePlayer(); active != a.owner {
		return Turn{}, fmt.Errorf("%w: %s is active, agent plays %s", ErrNotYourTurn, active, a.owner)
	}

	if len(g.Hand(a.owner)) == 0 {
		return a.pass(g, Turn{})
	}

	legal := g.LegalMovesFor(a.owner)
	a.collector.Start(a.strategy.Name(), len(legal))
	move, ok := a.strategy.ChooseMove(g, a.owner)
	turn := Turn{Move: move, Metric: a.collector.Complete()}
	if !ok {
		return a.pass(g, turn)
	}

	err := g.PlaceCard(move.Row, move.Col, move.HandIndex)
	if err == nil {
		return turn, nil
	}

	a.logger.Warn().Err(err).
		Str("strategy", a.strategy.Name()).
		Stringer("move", move).
		Msg("strategy chose an illegal move, falling back")
	if len(legal) == 0 {
		return a.pass(g, turn)
	}
	turn.Move = legal[0]
	if err := g.PlaceCard(turn.Move.Row, turn.Move.Col, turn.Move.HandIndex); err != nil {
		return Turn{}, fmt.Errorf("cannot play fallback move %s: %w", turn.Move, err)
	}
	return turn, nil
}

func (a *Agent) pass(g Game, turn Turn) (Turn, error) {
	turn.Move = game.Move{}
	turn.Passed = true
	if err := g.Pass(); err != nil {
		return Turn{}, fmt.Errorf("cannot pass: %w", err)
	}
	return turn, nil
}
