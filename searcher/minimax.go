package searcher

import (
	"fmt"
	"math"

	"connect4/experiments/metrics"
	"connect4/game"
)

// NoMove is the column returned at terminal and horizon leaves, where no
// move is chosen. Callers must ignore it.
const NoMove = -1

type Option func(m *Minimax)

func WithCollector(c metrics.Collector) Option {
	return func(m *Minimax) {
		if c != nil {
			m.metrics = c
		}
	}
}

// Minimax is a depth-limited minimax search with alpha-beta pruning. It
// always maximizes for the configured side; positions below the horizon are
// scored by game.ScorePosition from that side's perspective.
type Minimax struct {
	side    game.Cell
	depth   int
	metrics metrics.Collector
}

// New builds a searcher for side at the given lookahead depth. A
// non-positive depth or an empty side is a configuration error.
func New(side game.Cell, depth int, options ...Option) *Minimax {
	if side == game.Empty {
		panic("searcher: side must be Player1 or Player2")
	}
	if depth < 1 {
		panic(fmt.Sprintf("searcher: depth must be positive, got %d", depth))
	}
	m := &Minimax{
		side:    side,
		depth:   depth,
		metrics: metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(m)
	}
	return m
}

func (m *Minimax) Side() game.Cell { return m.side }
func (m *Minimax) Depth() int      { return m.depth }

// FindBestMove runs the search and returns the chosen column, its minimax
// value, and the search metrics. The column is NoMove when the position is
// already terminal.
func (m *Minimax) FindBestMove(b game.Board) (int, int, metrics.SearchMetric) {
	m.metrics.Start(m.depth)
	col, value := m.search(b, m.depth, math.MinInt32, math.MaxInt32, true)
	return col, value, m.metrics.Complete()
}

func (m *Minimax) search(b game.Board, depth, alpha, beta int, maximizing bool) (int, int) {
	m.metrics.AddNode()

	// Terminal test comes before the horizon test: a decided position
	// always returns a sentinel, never a heuristic value.
	if b.IsTerminal() {
		m.metrics.AddLeaf()
		switch {
		case b.HasRun(m.side):
			return NoMove, game.WinScore
		case b.HasRun(m.side.Opponent()):
			return NoMove, -game.WinScore
		}
		return NoMove, 0 // full board, draw
	}
	if depth == 0 {
		m.metrics.AddLeaf()
		return NoMove, game.ScorePosition(b, m.side)
	}

	// Columns are visited in ascending order and the running best is only
	// replaced on strict improvement, so ties resolve to the lowest column.
	if maximizing {
		bestCol, bestValue := NoMove, math.MinInt32
		for _, col := range b.ValidMoves() {
			child, _ := b.Apply(col, m.side) // col comes from ValidMoves
			_, value := m.search(child, depth-1, alpha, beta, false)
			if value > bestValue {
				bestCol, bestValue = col, value
			}
			if bestValue > alpha {
				alpha = bestValue
			}
			if alpha >= beta {
				m.metrics.AddCutoff()
				break
			}
		}
		return bestCol, bestValue
	}

	bestCol, bestValue := NoMove, math.MaxInt32
	for _, col := range b.ValidMoves() {
		child, _ := b.Apply(col, m.side.Opponent())
		_, value := m.search(child, depth-1, alpha, beta, true)
		if value < bestValue {
			bestCol, bestValue = col, value
		}
		if bestValue < beta {
			beta = bestValue
		}
		if alpha >= beta {
			m.metrics.AddCutoff()
			break
		}
	}
	return bestCol, bestValue
}
