package searcher

import (
	"math"
	"queensblood/game"
)

// Greedy simulates every legal move and plays the one whose resulting board
// evaluates highest. With keepLast unset the first best move in canonical
// order wins a tie, otherwise the last one does.
type Greedy struct {
	search
	name     string
	evaluate Evaluate
	keepLast bool
}

func NewGreedy(name string, evaluate Evaluate, keepLast bool, options ...Option) *Greedy {
	if evaluate == nil {
		panic("greedy search needs an evaluation function")
	}
	return &Greedy{
		search:   newSearch(options),
		name:     name,
		evaluate: evaluate,
		keepLast: keepLast,
	}
}

// NewControlBoard maximises the number of cells owned after the move. Ties
// go to the lowest row, then column, then hand index.
func NewControlBoard(options ...Option) *Greedy {
	return NewGreedy("control", ControlledCells, false, options...)
}

// NewMinimax looks one ply ahead at owned cells minus the opponent's. Ties go
// to the last move evaluated.
func NewMinimax(options ...Option) *Greedy {
	return NewGreedy("minimax", ControlDifference, true, options...)
}

func (g *Greedy) Name() string { return g.name }

func (g *Greedy) ChooseMove(view game.View, player game.Owner) (game.Move, bool) {
	moves := view.LegalMovesFor(player)
	if len(moves) == 0 {
		return game.Move{}, false
	}
	board := view.Board()
	hand := view.Hand(player)

	best, found := game.Move{}, false
	bestScore := math.MinInt
	for _, move := range moves {
		sim, ok := g.simulate(board, hand, move, player)
		if !ok {
			continue
		}
		score := g.evaluate(sim, player)
		if score > bestScore || (g.keepLast && score == bestScore) {
			best, bestScore, found = move, score, true
		}
	}
	return best, found
}
