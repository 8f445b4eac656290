package game

// WinScore is the sentinel value for a decided position. Heuristic scores
// are sums of per-window contributions and stay far below it.
const WinScore = 100000

// Per-window contributions. A window is any 4 contiguous cells along one
// orientation.
const (
	windowComplete   = 100 // all four ours
	windowThreat     = 5   // three ours, one empty
	windowDeveloping = 2   // two ours, two empty
	windowDanger     = -4  // three theirs, one empty: must block
	centerBonus      = 3   // per own piece in the center column
)

// scoreWindow scores 4 cells from side's perspective. Exactly one branch
// can fire for a given window.
func scoreWindow(window []Cell, side Cell) int {
	opponent := side.Opponent()
	var own, theirs, empty int
	for _, cell := range window {
		switch cell {
		case side:
			own++
		case opponent:
			theirs++
		default:
			empty++
		}
	}

	switch {
	case own == RunLength:
		return windowComplete
	case own == 3 && empty == 1:
		return windowThreat
	case own == 2 && empty == 2:
		return windowDeveloping
	case theirs == 3 && empty == 1:
		return windowDanger
	}
	return 0
}

// ScorePosition evaluates the board from side's perspective: every window in
// all four orientations, plus a bonus per own piece in the center column.
//
// The heuristic is deliberately asymmetric. It scores threats for side only;
// the opponent appears solely through the danger term. Difficulty tuning
// depends on this shape, so it must not be symmetrized.
func ScorePosition(b Board, side Cell) int {
	score := 0

	center := b.CenterColumn()
	for r := 0; r < b.rows; r++ {
		if b.Cell(r, center) == side {
			score += centerBonus
		}
	}

	window := make([]Cell, RunLength)

	// Horizontal
	for r := 0; r < b.rows; r++ {
		for c := 0; c+RunLength <= b.cols; c++ {
			b.fillWindow(r, c, 0, 1, window)
			score += scoreWindow(window, side)
		}
	}

	// Vertical
	for c := 0; c < b.cols; c++ {
		for r := 0; r+RunLength <= b.rows; r++ {
			b.fillWindow(r, c, 1, 0, window)
			score += scoreWindow(window, side)
		}
	}

	// Diagonal down-right
	for r := 0; r+RunLength <= b.rows; r++ {
		for c := 0; c+RunLength <= b.cols; c++ {
			b.fillWindow(r, c, 1, 1, window)
			score += scoreWindow(window, side)
		}
	}

	// Diagonal down-left
	for r := 0; r+RunLength <= b.rows; r++ {
		for c := RunLength - 1; c < b.cols; c++ {
			b.fillWindow(r, c, 1, -1, window)
			score += scoreWindow(window, side)
		}
	}

	return score
}

func (b Board) fillWindow(row, col, dRow, dCol int, out []Cell) {
	for i := 0; i < RunLength; i++ {
		out[i] = b.Cell(row+i*dRow, col+i*dCol)
	}
}
