package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
	"golang.org/x/exp/slices"

	"connect4/engine"
	"connect4/experiments"
	"connect4/experiments/metrics"
	"connect4/game"
	"connect4/meta"
	"connect4/player"
)

type config struct {
	rows     int
	cols     int
	logLevel string
}

func loadConfig() config {
	// A missing .env file is fine; environment variables still apply.
	_ = godotenv.Load()

	return config{
		rows:     getenvInt("ROWS", meta.DEFAULT_ROWS),
		cols:     getenvInt("COLS", meta.DEFAULT_COLS),
		logLevel: getenv("LOG_LEVEL", "info"),
	}
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

func main() {
	mode := flag.String("mode", "play", "play | battle | experiment")
	difficulty := flag.String("difficulty", "tactician", "rookie | tactician | grandmaster")
	depth1 := flag.Int("depth1", meta.DEPTH_SHALLOW, "first agent's search depth (battle, experiment)")
	depth2 := flag.Int("depth2", meta.DEPTH_DEEP, "second agent's search depth (battle, experiment)")
	games := flag.Int("games", meta.EXPERIMENT_GAMES, "games per matchup (experiment)")
	seed := flag.Uint64("seed", 0, "random seed, 0 for time-based")
	output := flag.String("output", "experiments/matchup", "output directory (experiment)")
	flag.Parse()

	cfg := loadConfig()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	level, err := zerolog.ParseLevel(cfg.logLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	if *seed == 0 {
		*seed = uint64(time.Now().UnixNano())
	}

	switch *mode {
	case "play":
		runPlay(cfg, player.ParseDifficulty(*difficulty), *seed)
	case "battle":
		runBattle(cfg, *depth1, *depth2, *seed)
	case "experiment":
		runExperiment(cfg, *depth1, *depth2, *games, *seed, *output)
	default:
		fmt.Fprintf(os.Stderr, "unknown mode %q\n", *mode)
		flag.Usage()
		os.Exit(2)
	}
}

// runPlay is the interactive loop: the human plays Player1 (X) and moves
// first, the engine plays Player2 (O).
func runPlay(cfg config, difficulty player.Difficulty, seed uint64) {
	rng := rand.New(rand.NewSource(seed))
	human := &humanAgent{side: game.Player1, reader: bufio.NewReader(os.Stdin)}
	ai := player.NewAIPlayer(game.Player2, difficulty, rng)

	fmt.Printf("Connect Four — you are X, the %s engine is O.\n", difficulty.Name)

	e := engine.LocalEngine(human, ai, game.NewBoard(cfg.rows, cfg.cols))
	result, err := e.Run()
	if err != nil {
		log.Fatal().Err(err).Msg("game aborted")
	}

	fmt.Println()
	fmt.Print(e.Board().String())
	switch result.Winner {
	case human.Side():
		fmt.Printf("You win in %d moves!\n", result.Moves)
	case ai.Side():
		fmt.Printf("The %s engine wins in %d moves.\n", difficulty.Name, result.Moves)
	default:
		fmt.Println("It's a draw.")
	}
}

// runBattle plays a single engine-vs-engine game at two depths.
func runBattle(cfg config, depth1, depth2 int, seed uint64) {
	rng := rand.New(rand.NewSource(seed))
	first := player.NewAIPlayer(game.Player1, player.Difficulty{Name: fmt.Sprintf("depth%d", depth1), Depth: depth1}, rng)
	second := player.NewAIPlayer(game.Player2, player.Difficulty{Name: fmt.Sprintf("depth%d", depth2), Depth: depth2}, rng)

	e := engine.LocalEngine(first, second, game.NewBoard(cfg.rows, cfg.cols))
	result, err := e.Run()
	if err != nil {
		log.Fatal().Err(err).Msg("battle aborted")
	}

	fmt.Print(e.Board().String())
	switch result.Winner {
	case first.Side():
		fmt.Printf("%s (X) wins in %d moves.\n", first.Name(), result.Moves)
	case second.Side():
		fmt.Printf("%s (O) wins in %d moves.\n", second.Name(), result.Moves)
	default:
		fmt.Printf("Draw after %d moves.\n", result.Moves)
	}
}

func runExperiment(cfg config, depth1, depth2, games int, seed uint64, output string) {
	matchup := experiments.DepthMatchup{
		Depth1: depth1,
		Depth2: depth2,
		Games:  games,
		Rows:   cfg.rows,
		Cols:   cfg.cols,
		Seed:   seed,
	}

	log.Info().
		Int("depth1", depth1).
		Int("depth2", depth2).
		Int("games", games).
		Uint64("seed", seed).
		Msg("running depth matchup")

	gameRecords, moveRecords, err := matchup.Run()
	if err != nil {
		log.Fatal().Err(err).Msg("matchup failed")
	}

	dir, err := experiments.WriteRecords(output, gameRecords, moveRecords)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to write records")
	}
	log.Info().Str("dir", dir).Msg("records written")
}

// humanAgent prompts on stdin for a 1-based column. Input validation lives
// here, not in the core: only board-legal columns are passed through.
type humanAgent struct {
	side   game.Cell
	reader *bufio.Reader
}

func (h *humanAgent) Side() game.Cell { return h.side }

func (h *humanAgent) Name() string { return "human" }

func (h *humanAgent) SelectMove(b game.Board) (int, metrics.SearchMetric, error) {
	valid := b.ValidMoves()
	fmt.Println()
	fmt.Print(b.String())

	for {
		fmt.Printf("Drop in column (1-%d): ", b.Cols())
		line, err := h.reader.ReadString('\n')
		if err != nil {
			return 0, metrics.SearchMetric{}, fmt.Errorf("reading move: %w", err)
		}
		col, err := strconv.Atoi(strings.TrimSpace(line))
		if err != nil {
			fmt.Printf("Please enter a number 1-%d.\n", b.Cols())
			continue
		}
		col-- // 1-based prompt, 0-based board
		if !slices.Contains(valid, col) {
			fmt.Printf("Column %d is full or invalid. Try again.\n", col+1)
			continue
		}
		return col, metrics.SearchMetric{}, nil
	}
}
