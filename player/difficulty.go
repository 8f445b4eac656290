package player

// Difficulty is pure configuration: a lookahead depth and a probability of
// discarding the searched move for a random one.
type Difficulty struct {
	Name    string
	Depth   int
	Blunder float64
}

var (
	Rookie      = Difficulty{Name: "rookie", Depth: 2, Blunder: 0.25}
	Tactician   = Difficulty{Name: "tactician", Depth: 4, Blunder: 0.08}
	Grandmaster = Difficulty{Name: "grandmaster", Depth: 6, Blunder: 0}
)

// ParseDifficulty validates and returns the difficulty preset.
// Defaults to Tactician if invalid or empty.
func ParseDifficulty(name string) Difficulty {
	switch name {
	case "rookie":
		return Rookie
	case "tactician":
		return Tactician
	case "grandmaster":
		return Grandmaster
	default:
		return Tactician
	}
}
