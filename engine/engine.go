package engine

import "queensblood/experiments/metrics"

// DefaultMaxTurns caps the number of turns in a match.
const DefaultMaxTurns = 200

type Engine interface {
	// Run plays a game until it is over or the turn cap is reached
	Run() (gameMetric metrics.GameMetric, moveMetrics []metrics.MoveMetric, err error)
}
