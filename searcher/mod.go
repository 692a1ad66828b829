package searcher

import (
	"queensblood/experiments/metrics"
	"queensblood/game"
)

// Strategy picks a move for player from a read-only view of the game.
// ok is false when the strategy has nothing to play, which the caller
// turns into a pass. Strategies never mutate the live game. Apart from Random,
// whose generator advances per call, they hold no state between calls.
type Strategy interface {
	Name() string
	ChooseMove(view game.View, player game.Owner) (move game.Move, ok bool)
}

type Option func(s *search)

// search holds what every strategy shares: the metrics sink and the seed
// for strategies that draw random numbers.
type search struct {
	metrics metrics.Collector
	seed    int64
}

func WithCollector(collector metrics.Collector) Option {
	return func(s *search) {
		if collector != nil {
			s.metrics = collector
		}
	}
}

func WithSeed(seed int64) Option {
	return func(s *search) {
		s.seed = seed
	}
}

func newSearch(options []Option) search {
	s := search{ // Default values
		metrics: metrics.NewDummyCollector(),
		seed:    1,
	}
	for _, option := range options {
		option(&s)
	}
	return s
}

// simulate plays move on a clone of board and returns the clone.
func (s *search) simulate(board *game.Board, hand []game.Card, move game.Move, player game.Owner) (*game.Board, bool) {
	if move.HandIndex < 0 || move.HandIndex >= len(hand) {
		return nil, false
	}
	sim, err := game.Simulate(board, move.Row, move.Col, hand[move.HandIndex], player)
	if err != nil {
		return nil, false
	}
	s.metrics.AddSimulation()
	return sim, true
}
