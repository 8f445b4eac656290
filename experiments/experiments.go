package experiments

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"

	"connect4/engine"
	"connect4/experiments/metrics"
	"connect4/game"
	"connect4/player"
)

// DepthMatchup plays repeated games between two search depths to measure how
// much lookahead matters. Blunders are disabled so depth is the only
// variable. The starting agent alternates each game to cancel the
// first-mover advantage.
type DepthMatchup struct {
	Depth1 int
	Depth2 int
	Games  int
	Rows   int
	Cols   int
	Seed   uint64
}

func (m DepthMatchup) Run() ([]metrics.GameRecord, []metrics.MoveRecord, error) {
	name1 := fmt.Sprintf("depth%d", m.Depth1)
	name2 := fmt.Sprintf("depth%d", m.Depth2)

	var gameRecords []metrics.GameRecord
	var moveRecords []metrics.MoveRecord

	for i := 0; i < m.Games; i++ {
		rng := rand.New(rand.NewSource(m.Seed + uint64(i)))

		// The starting agent plays Player1 and moves first.
		d1 := player.Difficulty{Name: name1, Depth: m.Depth1}
		d2 := player.Difficulty{Name: name2, Depth: m.Depth2}
		var first, second *player.AIPlayer
		if i%2 == 0 {
			first = player.NewAIPlayer(game.Player1, d1, rng)
			second = player.NewAIPlayer(game.Player2, d2, rng)
		} else {
			first = player.NewAIPlayer(game.Player1, d2, rng)
			second = player.NewAIPlayer(game.Player2, d1, rng)
		}

		id := uuid.New()
		start := time.Now()
		e := engine.LocalEngine(first, second, game.NewBoard(m.Rows, m.Cols))
		result, err := e.Run()
		if err != nil {
			return nil, nil, fmt.Errorf("game %d: %w", i+1, err)
		}

		winner := "draw"
		for _, agent := range []*player.AIPlayer{first, second} {
			if agent.Side() == result.Winner {
				winner = agent.Name()
			}
		}

		gameRecords = append(gameRecords, metrics.GameRecord{
			ID:         id,
			Agent1:     name1,
			Agent2:     name2,
			Starting:   first.Name(),
			Winner:     winner,
			StartTime:  start,
			Duration:   time.Since(start),
			TotalMoves: result.Moves,
		})
		for _, record := range result.Records {
			record.Game = id
			moveRecords = append(moveRecords, record)
		}

		log.Info().
			Int("game", i+1).
			Str("starting", first.Name()).
			Str("winner", winner).
			Int("moves", result.Moves).
			Msg("matchup game finished")
	}

	return gameRecords, moveRecords, nil
}

// WriteRecords persists a finished matchup run under dir.
func WriteRecords(dir string, games []metrics.GameRecord, moves []metrics.MoveRecord) (string, error) {
	writer, err := metrics.NewWriter(dir)
	if err != nil {
		return "", err
	}
	if err := writer.WriteGameRecords(games); err != nil {
		return "", err
	}
	if err := writer.WriteMoveRecords(moves); err != nil {
		return "", err
	}
	return writer.BaseDir(), nil
}
