package player

import (
	"errors"

	"golang.org/x/exp/rand"

	"connect4/experiments/metrics"
	"connect4/game"
	"connect4/searcher"
)

var ErrNoValidMoves = errors.New("no valid moves")

// SelectMove returns the minimax-optimal column for side at the given depth.
func SelectMove(b game.Board, side game.Cell, depth int) int {
	col, _, _ := searcher.New(side, depth).FindBestMove(b)
	return col
}

// SelectMoveWithDegradation plays the searched move, except that with
// probability blunder it returns a uniformly random valid column instead.
// The random source is always passed in, never ambient, so both branches can
// be forced deterministically.
func SelectMoveWithDegradation(b game.Board, side game.Cell, depth int, blunder float64, rng *rand.Rand) int {
	if blunder > 0 && rng.Float64() < blunder {
		moves := b.ValidMoves()
		return moves[rng.Intn(len(moves))]
	}
	return SelectMove(b, side, depth)
}

// ChooseMove applies a difficulty preset: search at its depth, degraded by
// its blunder probability.
func ChooseMove(b game.Board, side game.Cell, d Difficulty, rng *rand.Rand) int {
	return SelectMoveWithDegradation(b, side, d.Depth, d.Blunder, rng)
}

// AIPlayer is an engine agent that picks moves through the selection policy.
type AIPlayer struct {
	side       game.Cell
	difficulty Difficulty
	rng        *rand.Rand
}

func NewAIPlayer(side game.Cell, difficulty Difficulty, rng *rand.Rand) *AIPlayer {
	if side == game.Empty {
		panic("player: side must be Player1 or Player2")
	}
	if rng == nil {
		panic("player: rng must be provided")
	}
	return &AIPlayer{side: side, difficulty: difficulty, rng: rng}
}

func (p *AIPlayer) Side() game.Cell { return p.side }

func (p *AIPlayer) Name() string { return p.difficulty.Name }

func (p *AIPlayer) SelectMove(b game.Board) (int, metrics.SearchMetric, error) {
	if len(b.ValidMoves()) == 0 {
		return searcher.NoMove, metrics.SearchMetric{}, ErrNoValidMoves
	}

	if p.difficulty.Blunder > 0 && p.rng.Float64() < p.difficulty.Blunder {
		moves := b.ValidMoves()
		return moves[p.rng.Intn(len(moves))], metrics.SearchMetric{}, nil
	}

	m := searcher.New(p.side, p.difficulty.Depth, searcher.WithCollector(metrics.NewCollector()))
	col, _, metric := m.FindBestMove(b)
	return col, metric, nil
}

// RandomPlayer plays a uniformly random valid column. Used as a baseline in
// experiments and tests.
type RandomPlayer struct {
	side game.Cell
	rng  *rand.Rand
}

func NewRandomPlayer(side game.Cell, rng *rand.Rand) *RandomPlayer {
	if side == game.Empty {
		panic("player: side must be Player1 or Player2")
	}
	if rng == nil {
		panic("player: rng must be provided")
	}
	return &RandomPlayer{side: side, rng: rng}
}

func (p *RandomPlayer) Side() game.Cell { return p.side }

func (p *RandomPlayer) Name() string { return "random" }

func (p *RandomPlayer) SelectMove(b game.Board) (int, metrics.SearchMetric, error) {
	moves := b.ValidMoves()
	if len(moves) == 0 {
		return searcher.NoMove, metrics.SearchMetric{}, ErrNoValidMoves
	}
	return moves[p.rng.Intn(len(moves))], metrics.SearchMetric{}, nil
}
