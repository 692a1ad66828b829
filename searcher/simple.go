package searcher

import "queensblood/game"

// FillFirst plays the first legal move in canonical order.
type FillFirst struct {
	search
}

func NewFillFirst(options ...Option) *FillFirst {
	return &FillFirst{search: newSearch(options)}
}

func (f *FillFirst) Name() string { return "fillfirst" }

func (f *FillFirst) ChooseMove(view game.View, player game.Owner) (game.Move, bool) {
	moves := view.LegalMovesFor(player)
	if len(moves) == 0 {
		return game.Move{}, false
	}
	return moves[0], true
}

// MaximizeRowScore tries to take over a row it is not already winning. Rows
// are scanned top to bottom and the first move whose simulated subtotal beats
// the opponent's current subtotal in that row is played.
type MaximizeRowScore struct {
	search
}

func NewMaximizeRowScore(options ...Option) *MaximizeRowScore {
	return &MaximizeRowScore{search: newSearch(options)}
}

func (m *MaximizeRowScore) Name() string { return "rowscore" }

func (m *MaximizeRowScore) ChooseMove(view game.View, player game.Owner) (game.Move, bool) {
	moves := view.LegalMovesFor(player)
	if len(moves) == 0 {
		return game.Move{}, false
	}
	board := view.Board()
	hand := view.Hand(player)
	opponent := player.Opponent()

	// Moves are row-major, so each row's moves form one contiguous run.
	i := 0
	for row := 0; row < view.Rows(); row++ {
		start := i
		for i < len(moves) && moves[i].Row == row {
			i++
		}
		target := view.RowSubtotal(row, opponent)
		if view.RowSubtotal(row, player) > target {
			continue
		}
		for _, move := range moves[start:i] {
			sim, ok := m.simulate(board, hand, move, player)
			if ok && sim.RowSubtotal(row, player) > target {
				return move, true
			}
		}
	}
	return game.Move{}, false
}
