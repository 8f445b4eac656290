package engine

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/slices"

	"connect4/experiments/metrics"
	"connect4/game"
)

// Agent picks one column per turn. Implementations: player.AIPlayer,
// player.RandomPlayer, and the CLI's human prompt.
type Agent interface {
	Side() game.Cell
	Name() string
	SelectMove(game.Board) (int, metrics.SearchMetric, error)
}

type Result struct {
	Winner  game.Cell // Empty on a draw
	Moves   int
	Records []metrics.MoveRecord
}

// Engine drives two agents over a shared board until the position is
// terminal. The whole loop is synchronous: each turn blocks on the agent.
type Engine struct {
	board  game.Board
	agents [2]Agent
}

// LocalEngine wires two agents to a starting board. The first agent moves
// first. Misconfigured sides are a programming error.
func LocalEngine(first, second Agent, board game.Board) *Engine {
	if first.Side() == game.Empty || second.Side() == game.Empty {
		panic("engine: agents must play a side")
	}
	if first.Side() == second.Side() {
		panic("engine: agents cannot share a side")
	}
	return &Engine{
		board:  board,
		agents: [2]Agent{first, second},
	}
}

// Board returns the current position.
func (e *Engine) Board() game.Board { return e.board }

// Run executes the game loop until a run or a full board. Agent moves are
// validated against ValidMoves before being applied; an illegal column is an
// agent bug, not a game outcome.
func (e *Engine) Run() (Result, error) {
	var records []metrics.MoveRecord

	step := 0
	turn := 0
	for !e.board.IsTerminal() {
		agent := e.agents[turn]

		col, metric, err := agent.SelectMove(e.board)
		if err != nil {
			return Result{}, fmt.Errorf("agent %s (%s): %w", agent.Name(), agent.Side(), err)
		}
		if !slices.Contains(e.board.ValidMoves(), col) {
			return Result{}, fmt.Errorf("agent %s (%s) chose illegal column %d", agent.Name(), agent.Side(), col)
		}

		next, err := e.board.Apply(col, agent.Side())
		if err != nil {
			return Result{}, fmt.Errorf("applying column %d for %s: %w", col, agent.Side(), err)
		}
		e.board = next
		step++

		records = append(records, metrics.MoveRecord{
			Step:         step,
			Player:       agent.Side().String(),
			Column:       col,
			SearchMetric: metric,
		})

		log.Debug().
			Int("step", step).
			Str("agent", agent.Name()).
			Str("side", agent.Side().String()).
			Int("column", col).
			Int("nodes", metric.Nodes).
			Msg("move played")

		turn = 1 - turn
	}

	result := Result{
		Moves:   step,
		Records: records,
	}
	for _, agent := range e.agents {
		if e.board.HasRun(agent.Side()) {
			result.Winner = agent.Side()
			break
		}
	}

	log.Info().
		Str("winner", result.Winner.String()).
		Int("moves", result.Moves).
		Msg("game over")

	return result, nil
}
