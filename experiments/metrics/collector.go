package metrics

import (
	"sync/atomic"
	"time"

	"github.com/google/uuid"
)

type SearchMetric struct {
	Goroutines     int
	Duration       time.Duration
	Episodes       int
	Cutoff         int
	FullPlayouts   int
	CutoffPlayouts int
}

type MoveMetric struct {
	Step     int
	Round    int
	Player   int // position
	Action   string
	Duration time.Duration
	SearchMetric
}

type GameMetric struct {
	ID             uuid.UUID
	Players        int
	StartingPlayer int // position
	Loser          int // position, or -1 when nobody lost
	Rounds         int
	TotalMoves     int
	StartTime      time.Time
	EndTime        time.Time
	Duration       time.Duration
}

// Collector gathers the statistics of one search. It is shared by the search goroutines.
type Collector interface {
	Start(goroutines, cutoff int)
	AddFullPlayout()
	AddCutoffPlayout()
	AddEpisode()
	Complete() SearchMetric
}

type collector struct {
	goroutines     int
	cutoff         int
	startTime      time.Time
	episodes       atomic.Int32
	fullPlayouts   atomic.Int32
	cutoffPlayouts atomic.Int32
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(goroutines, cutoff int) {
	m.startTime = time.Now()
	m.goroutines = goroutines
	m.cutoff = cutoff
}

func (m *collector) AddFullPlayout() {
	m.fullPlayouts.Add(1)
}

func (m *collector) AddCutoffPlayout() {
	m.cutoffPlayouts.Add(1)
}

func (m *collector) AddEpisode() {
	m.episodes.Add(1)
}

func (m *collector) Complete() SearchMetric {
	return SearchMetric{
		Goroutines:     m.goroutines,
		Duration:       time.Since(m.startTime),
		Episodes:       int(m.episodes.Load()),
		FullPlayouts:   int(m.fullPlayouts.Load()),
		CutoffPlayouts: int(m.cutoffPlayouts.Load()),
		Cutoff:         m.cutoff,
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(goroutines, cutoff int) {}
func (m *dummyCollector) AddFullPlayout()              {}
func (m *dummyCollector) AddCutoffPlayout()            {}
func (m *dummyCollector) AddEpisode()                  {}
func (m *dummyCollector) Complete() SearchMetric       { return SearchMetric{} }
