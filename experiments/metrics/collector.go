package metrics

import (
	"queensblood/game"
	"sync/atomic"
	"time"
)

type SearchMetric struct {
	Strategy    string
	Duration    time.Duration
	Candidates  int // Legal moves available when the search started
	Simulations int // Boards cloned and evaluated
}

type MoveMetric struct {
	Step   int
	Player game.Owner
	Move   game.Move
	Passed bool
	SearchMetric
}

type GameMetric struct {
	ID             string // uuid
	StartingPlayer game.Owner
	Winner         game.Owner
	RedScore       int
	BlueScore      int
	StartTime      time.Time
	EndTime        time.Time
	Duration       time.Duration
	TotalMoves     int
	Truncated      bool // Stopped by the turn cap before the game ended
}

type Collector interface {
	Start(strategy string, candidates int)
	AddSimulation()
	Complete() SearchMetric
}

type collector struct {
	strategy    string
	candidates  int
	startTime   time.Time
	simulations atomic.Int32
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(strategy string, candidates int) {
	m.startTime = time.Now()
	m.strategy = strategy
	m.candidates = candidates
	m.simulations.Store(0)
}

func (m *collector) AddSimulation() {
	m.simulations.Add(1)
}

func (m *collector) Complete() SearchMetric {
	return SearchMetric{
		Strategy:    m.strategy,
		Duration:    time.Since(m.startTime),
		Candidates:  m.candidates,
		Simulations: int(m.simulations.Load()),
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(strategy string, candidates int) {}
func (m *dummyCollector) AddSimulation()                        {}
func (m *dummyCollector) Complete() SearchMetric                { return SearchMetric{} }
