package game

// mirror transforms a pattern offset into a board offset for player. Blue
// faces Red from the other side of the board, so its columns are flipped.
func mirror(dRow, dCol int, player Owner) (int, int) {
	if player == Blue {
		return dRow, -dCol
	}
	return dRow, dCol
}

type position struct {
	row int
	col int
}

// propagate applies the pattern of card, just placed at (row, col) by
// player. Influence skips cells holding a card; upgrade and devalue adjust
// the modifier of any cell in bounds, and devalued cards are reconciled once
// the whole pattern has been applied.
func (b *Board) propagate(row, col int, card Card, player Owner) {
	var touched []position
	for _, effect := range card.Effects() {
		dRow, dCol := mirror(effect.DRow, effect.DCol, player)
		r, c := row+dRow, col+dCol
		if !b.InBounds(r, c) {
			continue
		}
		cell := b.at(r, c)
		switch effect.Symbol {
		case Influence:
			if cell.HasCard() {
				continue
			}
			cell.influence(player)
		case Upgrade:
			cell.modifier++
		case Devalue:
			cell.modifier--
			touched = append(touched, position{r, c})
		}
	}
	for _, p := range touched {
		b.at(p.row, p.col).reconcile()
	}
}

// place puts card on (row, col) for player and applies its influence. The
// caller has already validated the placement. A modifier left on the cell by
// earlier patterns applies to the new card, which is removed at once if that
// brings its value to 0.
func (b *Board) place(row, col int, card Card, player Owner) {
	b.at(row, col).place(card, player)
	b.propagate(row, col, card, player)
	b.at(row, col).reconcile()
}
