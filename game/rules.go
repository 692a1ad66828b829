package game

// Rules fixes the shape of influence patterns and the symbols they may use.
type Rules interface {
	Name() string
	// PatternSize is the odd side length of every card pattern.
	PatternSize() int
	// Allows reports whether a non-center pattern cell may carry s.
	Allows(s Symbol) bool
}
