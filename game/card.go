package game

import (
	"fmt"
	"strings"
)

// Symbol is one cell of a card's influence pattern.
type Symbol byte

const (
	Empty     Symbol = 'X'
	Center    Symbol = 'C'
	Influence Symbol = 'I'
	Upgrade   Symbol = 'U'
	Devalue   Symbol = 'D'
)

func (s Symbol) String() string {
	return string(s)
}

// ParseSymbol maps a pattern character to its Symbol.
func ParseSymbol(r rune) (Symbol, error) {
	switch s := Symbol(r); s {
	case Empty, Center, Influence, Upgrade, Devalue:
		return s, nil
	}
	return 0, fmt.Errorf("unknown pattern symbol %q", r)
}

// Pattern builds a pattern grid from one string per row, e.g. "XXIXX".
func Pattern(rows ...string) ([][]Symbol, error) {
	pattern := make([][]Symbol, len(rows))
	for i, row := range rows {
		pattern[i] = make([]Symbol, 0, len(row))
		for _, r := range row {
			s, err := ParseSymbol(r)
			if err != nil {
				return nil, fmt.Errorf("pattern row %d: %w", i, err)
			}
			pattern[i] = append(pattern[i], s)
		}
	}
	return pattern, nil
}

// Card is immutable once built by NewCard.
type Card struct {
	name    string
	cost    int
	value   int
	pattern [][]Symbol
}

// Effect is a non-empty, non-center pattern cell relative to the center.
type Effect struct {
	DRow   int
	DCol   int
	Symbol Symbol
}

func NewCard(name string, cost, value int, pattern [][]Symbol, rules Rules) (Card, error) {
	c := Card{
		name:    name,
		cost:    cost,
		value:   value,
		pattern: copyPattern(pattern),
	}
	if err := c.validate(rules); err != nil {
		return Card{}, err
	}
	return c, nil
}

// MustCard is NewCard for card tables known to be valid. It panics otherwise.
func MustCard(name string, cost, value int, rules Rules, rows ...string) Card {
	pattern, err := Pattern(rows...)
	if err != nil {
		panic(err)
	}
	c, err := NewCard(name, cost, value, pattern, rules)
	if err != nil {
		panic(err)
	}
	return c
}

func (c Card) validate(rules Rules) error {
	if strings.TrimSpace(c.name) == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidCard)
	}
	if c.cost < 1 || c.cost > MaxPawns {
		return fmt.Errorf("%w %q: cost %d outside [1,%d]", ErrInvalidCard, c.name, c.cost, MaxPawns)
	}
	if c.value <= 0 {
		return fmt.Errorf("%w %q: value %d must be positive", ErrInvalidCard, c.name, c.value)
	}
	return validatePattern(c.name, c.pattern, rules)
}

func validatePattern(name string, pattern [][]Symbol, rules Rules) error {
	size := rules.PatternSize()
	if len(pattern) != size {
		return fmt.Errorf("%w %q: pattern has %d rows, want %d", ErrInvalidCard, name, len(pattern), size)
	}
	mid := size / 2
	for r, row := range pattern {
		if len(row) != size {
			return fmt.Errorf("%w %q: pattern row %d has %d cells, want %d", ErrInvalidCard, name, r, len(row), size)
		}
		for col, s := range row {
			isMid := r == mid && col == mid
			switch {
			case isMid && s != Center:
				return fmt.Errorf("%w %q: center cell holds %s, want %s", ErrInvalidCard, name, s, Center)
			case !isMid && s == Center:
				return fmt.Errorf("%w %q: misplaced center marker at (%d,%d)", ErrInvalidCard, name, r, col)
			case !isMid && !rules.Allows(s):
				return fmt.Errorf("%w %q: symbol %s at (%d,%d) not allowed by %s rules", ErrInvalidCard, name, s, r, col, rules.Name())
			}
		}
	}
	return nil
}

func copyPattern(pattern [][]Symbol) [][]Symbol {
	out := make([][]Symbol, len(pattern))
	for i, row := range pattern {
		out[i] = append([]Symbol(nil), row...)
	}
	return out
}

func (c Card) Name() string { return c.name }
func (c Card) Cost() int    { return c.cost }
func (c Card) Value() int   { return c.value }
func (c Card) Size() int    { return len(c.pattern) }

// At returns the pattern symbol at (row, col) of the pattern grid.
func (c Card) At(row, col int) Symbol {
	return c.pattern[row][col]
}

// Effects lists the pattern in row-major order, skipping the center and empty cells.
func (c Card) Effects() []Effect {
	mid := len(c.pattern) / 2
	var effects []Effect
	for r, row := range c.pattern {
		for col, s := range row {
			if s == Center || s == Empty {
				continue
			}
			effects = append(effects, Effect{DRow: r - mid, DCol: col - mid, Symbol: s})
		}
	}
	return effects
}

func (c Card) String() string {
	return fmt.Sprintf("%s %d %d", c.name, c.cost, c.value)
}
