package game

import "fmt"

// checkTarget validates the board side of a placement by player on (row, col).
func (b *Board) checkTarget(row, col int, player Owner) error {
	if !b.InBounds(row, col) {
		return b.boundsErr(row, col)
	}
	cell := b.at(row, col)
	if cell.pawns == 0 && !cell.HasCard() {
		return fmt.Errorf("%w: (%d,%d)", ErrNoPawns, row, col)
	}
	if cell.owner != player {
		return fmt.Errorf("%w: (%d,%d) is owned by %s", ErrNotOwner, row, col, cell.owner)
	}
	if cell.HasCard() {
		return fmt.Errorf("%w: (%d,%d)", ErrCellOccupied, row, col)
	}
	return nil
}

func checkCost(card Card, pawns int) error {
	if card.cost > pawns {
		return fmt.Errorf("%w: %s costs %d, cell has %d", ErrInsufficientPawns, card.name, card.cost, pawns)
	}
	return nil
}

// LegalMoves enumerates the placements available to player with hand, in
// canonical order: cells row-major, then hand indices ascending.
func LegalMoves(b *Board, hand []Card, player Owner) []Move {
	var moves []Move
	for row := 0; row < b.rows; row++ {
		for col := 0; col < b.cols; col++ {
			cell := b.at(row, col)
			if cell.owner != player || cell.pawns == 0 || cell.HasCard() {
				continue
			}
			for i, card := range hand {
				if card.cost <= cell.pawns {
					moves = append(moves, Move{Row: row, Col: col, HandIndex: i})
				}
			}
		}
	}
	return moves
}

// Simulate returns a clone of b with card placed at (row, col) by player and
// its influence applied. b itself is never modified.
func Simulate(b *Board, row, col int, card Card, player Owner) (*Board, error) {
	if err := b.checkTarget(row, col, player); err != nil {
		return nil, err
	}
	if err := checkCost(card, b.at(row, col).pawns); err != nil {
		return nil, err
	}
	sim := b.Clone()
	sim.place(row, col, card, player)
	return sim, nil
}
