package metrics

import (
	"time"

	"github.com/google/uuid"
)

// SearchMetric describes a single minimax search: its configuration and how
// much of the tree it actually visited.
type SearchMetric struct {
	Depth    int
	Duration time.Duration
	Nodes    int // recursive calls entered
	Cutoffs  int // alpha-beta prunes
	Leaves   int // terminal and horizon leaves
}

type MoveRecord struct {
	Game   uuid.UUID // zero for ad-hoc games
	Step   int
	Player string
	Column int
	SearchMetric
}

type GameRecord struct {
	ID         uuid.UUID
	Agent1     string
	Agent2     string
	Starting   string
	Winner     string // "draw" when nobody won
	StartTime  time.Time
	Duration   time.Duration
	TotalMoves int
}

type Collector interface {
	Start(depth int)
	AddNode()
	AddCutoff()
	AddLeaf()
	Complete() SearchMetric
}

// collector counts plain ints: the search is synchronous and single-threaded,
// so no atomics are needed.
type collector struct {
	depth     int
	startTime time.Time
	nodes     int
	cutoffs   int
	leaves    int
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(depth int) {
	m.startTime = time.Now()
	m.depth = depth
	m.nodes = 0
	m.cutoffs = 0
	m.leaves = 0
}

func (m *collector) AddNode() {
	m.nodes++
}

func (m *collector) AddCutoff() {
	m.cutoffs++
}

func (m *collector) AddLeaf() {
	m.leaves++
}

func (m *collector) Complete() SearchMetric {
	return SearchMetric{
		Depth:    m.depth,
		Duration: time.Since(m.startTime),
		Nodes:    m.nodes,
		Cutoffs:  m.cutoffs,
		Leaves:   m.leaves,
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(depth int)        {}
func (m *dummyCollector) AddNode()               {}
func (m *dummyCollector) AddCutoff()             {}
func (m *dummyCollector) AddLeaf()               {}
func (m *dummyCollector) Complete() SearchMetric { return SearchMetric{} }
