package game

import "fmt"

// Owner identifies the side controlling a cell, or whose turn it is.
type Owner int

const (
	None Owner = iota
	Red        // moves first, seeded on the first column
	Blue       // seeded on the last column
)

const (
	MaxPawns    = 3
	PassesToEnd = 2
)

func (o Owner) String() string {
	switch o {
	case None:
		return "None"
	case Red:
		return "Red"
	case Blue:
		return "Blue"
	default:
		return fmt.Sprintf("Owner(%d)", int(o))
	}
}

// Valid reports whether o is one of None, Red or Blue.
func (o Owner) Valid() bool {
	return o == None || o == Red || o == Blue
}

// IsPlayer reports whether o is Red or Blue.
func (o Owner) IsPlayer() bool {
	return o == Red || o == Blue
}

func (o Owner) Opponent() Owner {
	switch o {
	case Red:
		return Blue
	case Blue:
		return Red
	default:
		panic(fmt.Sprintf("owner %s has no opponent", o))
	}
}

// Move places the card at HandIndex of the mover's hand on cell (Row, Col).
type Move struct {
	Row       int
	Col       int
	HandIndex int
}

func (m Move) String() string {
	return fmt.Sprintf("(%d,%d)#%d", m.Row, m.Col, m.HandIndex)
}

// Result is the outcome of a game. Winner is None on a tie.
type Result struct {
	Winner Owner
	Red    int
	Blue   int
}

func (r Result) Tie() bool {
	return r.Winner == None
}

func newResult(red, blue int) Result {
	r := Result{Red: red, Blue: blue}
	switch {
	case red > blue:
		r.Winner = Red
	case blue > red:
		r.Winner = Blue
	}
	return r
}
