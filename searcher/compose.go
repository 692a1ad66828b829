package searcher

import (
	"math/rand"
	"queensblood/game"
	"strings"
)

// FirstOf asks each strategy in turn and plays the first move offered.
type FirstOf struct {
	strategies []Strategy
}

func NewFirstOf(strategies ...Strategy) *FirstOf {
	return &FirstOf{strategies: strategies}
}

func (f *FirstOf) Name() string {
	names := make([]string, len(f.strategies))
	for i, s := range f.strategies {
		names[i] = s.Name()
	}
	return strings.Join(names, ">")
}

func (f *FirstOf) ChooseMove(view game.View, player game.Owner) (game.Move, bool) {
	for _, s := range f.strategies {
		if move, ok := s.ChooseMove(view, player); ok {
			return move, true
		}
	}
	return game.Move{}, false
}

// Random plays a uniformly random legal move. The sequence of choices is
// fixed by the seed. Every call advances its generator, so a Random is not
// safe for concurrent use; build one per agent.
type Random struct {
	search
	rng *rand.Rand
}

func NewRandom(options ...Option) *Random {
	s := newSearch(options)
	return &Random{search: s, rng: rand.New(rand.NewSource(s.seed))}
}

func (r *Random) Name() string { return "random" }

func (r *Random) ChooseMove(view game.View, player game.Owner) (game.Move, bool) {
	moves := view.LegalMovesFor(player)
	if len(moves) == 0 {
		return game.Move{}, false
	}
	return moves[r.rng.Intn(len(moves))], true
}
