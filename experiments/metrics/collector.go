package metrics

import (
	"checkers/game"
	"sync/atomic"
	"time"
)

type AgentConfig struct {
	ID         int
	Kind       string // "scan" or "search"
	Goroutines int
	Duration   time.Duration
	Episodes   int
	Cutoff     int
	Seed       uint64
	Evaluate   game.Evaluate
}

type SearchMetric struct {
	Goroutines   int
	Duration     time.Duration
	Episodes     int
	Cutoff       int
	FullPlayouts int     // Rollouts that reached the end of the game
	MeanDepth    float64 // Moves played per rollout
}

type MoveMetric struct {
	Step     int           `json:"step"`
	Side     string        `json:"side"`
	Move     string        `json:"move"`
	Capture  bool          `json:"capture"`
	Rejected int           `json:"rejected"` // Illegal attempts before the move
	Think    time.Duration `json:"think"`
}

type GameMetric struct {
	GameID         string
	StartingPlayer string
	Winner         string
	StartTime      time.Time
	EndTime        time.Time
	Duration       time.Duration
	TotalMoves     int
	Captures       int
}

// Collector gathers search statistics. Rollouts and episodes are recorded
// from many goroutines at once.
type Collector interface {
	Start(goroutines, cutoff int)
	AddRollout(depth int, full bool)
	AddEpisode()
	Complete() SearchMetric
}

type collector struct {
	goroutines   int
	cutoff       int
	startTime    time.Time
	episodes     atomic.Int64
	rollouts     atomic.Int64
	depth        atomic.Int64
	fullPlayouts atomic.Int64
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(goroutines, cutoff int) {
	m.startTime = time.Now()
	m.goroutines = goroutines
	m.cutoff = cutoff
	m.episodes.Store(0)
	m.rollouts.Store(0)
	m.depth.Store(0)
	m.fullPlayouts.Store(0)
}

func (m *collector) AddRollout(depth int, full bool) {
	m.rollouts.Add(1)
	m.depth.Add(int64(depth))
	if full {
		m.fullPlayouts.Add(1)
	}
}

func (m *collector) AddEpisode() {
	m.episodes.Add(1)
}

func (m *collector) Complete() SearchMetric {
	metric := SearchMetric{
		Goroutines:   m.goroutines,
		Duration:     time.Since(m.startTime),
		Episodes:     int(m.episodes.Load()),
		FullPlayouts: int(m.fullPlayouts.Load()),
		Cutoff:       m.cutoff,
	}
	if rollouts := m.rollouts.Load(); rollouts > 0 {
		metric.MeanDepth = float64(m.depth.Load()) / float64(rollouts)
	}
	return metric
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(goroutines, cutoff int)    {}
func (m *dummyCollector) AddRollout(depth int, full bool) {}
func (m *dummyCollector) AddEpisode()                     {}
func (m *dummyCollector) Complete() SearchMetric          { return SearchMetric{} }
