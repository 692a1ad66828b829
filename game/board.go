package game

import "fmt"

// Board is a rows x cols grid of cells, stored row-major.
type Board struct {
	rows  int
	cols  int
	cells []Cell
}

// NewBoard creates an empty board. Columns must be odd and greater than one
// so that the board has a single center column.
func NewBoard(rows, cols int) (*Board, error) {
	if rows < 1 {
		return nil, fmt.Errorf("%w: %d rows, need at least 1", ErrInvalidBoard, rows)
	}
	if cols <= 1 || cols%2 == 0 {
		return nil, fmt.Errorf("%w: %d columns, need an odd number greater than 1", ErrInvalidBoard, cols)
	}
	return &Board{
		rows:  rows,
		cols:  cols,
		cells: make([]Cell, rows*cols),
	}, nil
}

func (b *Board) Rows() int { return b.rows }
func (b *Board) Cols() int { return b.cols }

func (b *Board) InBounds(row, col int) bool {
	return row >= 0 && row < b.rows && col >= 0 && col < b.cols
}

func (b *Board) boundsErr(row, col int) error {
	return fmt.Errorf("%w: (%d,%d) on %dx%d board", ErrOutOfBounds, row, col, b.rows, b.cols)
}

// Cell returns a copy of the cell at (row, col).
func (b *Board) Cell(row, col int) (Cell, error) {
	if !b.InBounds(row, col) {
		return Cell{}, b.boundsErr(row, col)
	}
	return *b.at(row, col), nil
}

// SetCellPawns overwrites the pawns of a card-free cell.
func (b *Board) SetCellPawns(row, col, count int, owner Owner) error {
	if !b.InBounds(row, col) {
		return b.boundsErr(row, col)
	}
	if count < 0 || count > MaxPawns {
		return fmt.Errorf("%w: %d outside [0,%d]", ErrInvalidPawns, count, MaxPawns)
	}
	if !owner.Valid() {
		return fmt.Errorf("%w: %s", ErrInvalidOwner, owner)
	}
	if (count == 0) != (owner == None) {
		return fmt.Errorf("%w: %d pawns cannot be owned by %s", ErrInvalidOwner, count, owner)
	}
	cell := b.at(row, col)
	if cell.HasCard() {
		return fmt.Errorf("%w: (%d,%d)", ErrCellOccupied, row, col)
	}
	cell.pawns = count
	cell.owner = owner
	return nil
}

// Clone returns a deep copy that shares no cells with b.
func (b *Board) Clone() *Board {
	cells := make([]Cell, len(b.cells))
	copy(cells, b.cells)
	return &Board{
		rows:  b.rows,
		cols:  b.cols,
		cells: cells,
	}
}

// Owned counts the cells owned by o, whether through pawns or cards.
func (b *Board) Owned(o Owner) int {
	count := 0
	for _, cell := range b.cells {
		if cell.owner == o {
			count++
		}
	}
	return count
}

func (b *Board) at(row, col int) *Cell {
	return &b.cells[row*b.cols+col]
}
