package searcher

import (
	"fmt"
	"strings"

	"golang.org/x/exp/slices"
)

var registry = map[string]func(options ...Option) Strategy{
	"fillfirst": func(options ...Option) Strategy { return NewFillFirst(options...) },
	"rowscore":  func(options ...Option) Strategy { return NewMaximizeRowScore(options...) },
	"control":   func(options ...Option) Strategy { return NewControlBoard(options...) },
	"minimax":   func(options ...Option) Strategy { return NewMinimax(options...) },
	"score":     func(options ...Option) Strategy { return NewGreedy("score", RowAdvantage, false, options...) },
	"random":    func(options ...Option) Strategy { return NewRandom(options...) },
}

// ByName builds a strategy from its name. A name of the form "a>b" chains
// strategies with FirstOf.
func ByName(name string, options ...Option) (Strategy, error) {
	parts := strings.Split(name, ">")
	strategies := make([]Strategy, 0, len(parts))
	for _, part := range parts {
		create, ok := registry[strings.ToLower(strings.TrimSpace(part))]
		if !ok {
			return nil, fmt.Errorf("unknown strategy %q, expected one of %s", part, strings.Join(Names(), ", "))
		}
		strategies = append(strategies, create(options...))
	}
	if len(strategies) == 1 {
		return strategies[0], nil
	}
	return NewFirstOf(strategies...), nil
}

// Names lists the registered strategy names in sorted order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
