package game

// RowSubtotal sums the values of the cards o owns in row.
func (b *Board) RowSubtotal(row int, o Owner) int {
	total := 0
	for col := 0; col < b.cols; col++ {
		cell := b.at(row, col)
		if cell.HasCard() && cell.owner == o {
			total += cell.Value()
		}
	}
	return total
}

// RowScore credits the whole row subtotal of the strictly higher side.
// A tied row credits neither side.
func (b *Board) RowScore(row int) (red, blue int) {
	red = b.RowSubtotal(row, Red)
	blue = b.RowSubtotal(row, Blue)
	switch {
	case red > blue:
		return red, 0
	case blue > red:
		return 0, blue
	default:
		return 0, 0
	}
}

// Scores totals the credited row scores of both players.
func (b *Board) Scores() (red, blue int) {
	for row := 0; row < b.rows; row++ {
		r, bl := b.RowScore(row)
		red += r
		blue += bl
	}
	return red, blue
}

// Score is the total credited to o.
func (b *Board) Score(o Owner) int {
	red, blue := b.Scores()
	switch o {
	case Red:
		return red
	case Blue:
		return blue
	}
	return 0
}

// Result decides the winner from the current board.
func (b *Board) Result() Result {
	return newResult(b.Scores())
}
