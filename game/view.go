package game

// View is the read-only surface of a game. Strategies only ever see a View.
type View interface {
	Rows() int
	Cols() int
	Cell(row, col int) (Cell, error)
	ActivePlayer() Owner
	Hand(o Owner) []Card
	LegalMoves() []Move
	LegalMovesFor(o Owner) []Move
	RowSubtotal(row int, o Owner) int
	RowScore(row int) (red, blue int)
	Scores() (red, blue int)
	IsGameOver() bool
	Winner() Owner
	// Board returns a clone of the live board, safe to mutate.
	Board() *Board
}

var _ View = (*Engine)(nil)
