package game

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

// parse builds a board from top-to-bottom rows using '.', 'X' (Player1) and
// 'O' (Player2). It writes cells directly, so rows must respect gravity when
// the test cares about reachable positions.
func parse(t *testing.T, rows ...string) Board {
	t.Helper()
	b := NewBoard(len(rows), len(rows[0]))
	for r, row := range rows {
		require.Len(t, row, b.cols, "all rows must share a width")
		for c, ch := range row {
			switch ch {
			case 'X':
				b.cells[r*b.cols+c] = Player1
			case 'O':
				b.cells[r*b.cols+c] = Player2
			}
		}
	}
	return b
}

func TestNewBoard(t *testing.T) {
	t.Run("creates an all-empty grid", func(t *testing.T) {
		b := NewBoard(6, 7)

		require.Equal(t, 6, b.Rows())
		require.Equal(t, 7, b.Cols())
		for r := 0; r < b.Rows(); r++ {
			for c := 0; c < b.Cols(); c++ {
				require.Equal(t, Empty, b.Cell(r, c), "cell (%d,%d) should start empty", r, c)
			}
		}
	})

	t.Run("panics when the grid cannot fit a run", func(t *testing.T) {
		require.Panics(t, func() {
			NewBoard(3, 7)
		}, "Should reject boards shorter than the run length")
		require.Panics(t, func() {
			NewBoard(6, 3)
		}, "Should reject boards narrower than the run length")
	})
}

func TestCellOpponent(t *testing.T) {
	require.Equal(t, Player2, Player1.Opponent())
	require.Equal(t, Player1, Player2.Opponent())
	require.Equal(t, Empty, Empty.Opponent())
}

func TestValidMoves(t *testing.T) {
	t.Run("empty board offers every column in ascending order", func(t *testing.T) {
		b := NewBoard(6, 7)

		require.Equal(t, []int{0, 1, 2, 3, 4, 5, 6}, b.ValidMoves())
	})

	t.Run("excludes a column whose top cell is taken", func(t *testing.T) {
		b := parse(t,
			"..X....",
			"..O....",
			"..X....",
			"..O....",
			"..X....",
			"..O....",
		)

		require.Equal(t, []int{0, 1, 3, 4, 5, 6}, b.ValidMoves())
	})

	t.Run("empty result iff the board is full", func(t *testing.T) {
		b := parse(t,
			"OOXXOOX",
			"XXOOXXO",
			"OOXXOOX",
			"XXOOXXO",
			"OOXXOOX",
			"XXOOXXO",
		)

		require.Empty(t, b.ValidMoves())
		require.True(t, b.IsFull())
		require.True(t, b.IsTerminal(), "A full board is terminal even without a run")
	})
}

func TestApply(t *testing.T) {
	t.Run("piece falls to the lowest empty row", func(t *testing.T) {
		b := NewBoard(6, 7)

		next, err := b.Apply(4, Player1)

		require.NoError(t, err)
		require.Equal(t, Player1, next.Cell(5, 4))
		require.Equal(t, Empty, next.Cell(4, 4))
	})

	t.Run("pieces stack upward", func(t *testing.T) {
		b := NewBoard(6, 7)

		b1, err := b.Apply(2, Player1)
		require.NoError(t, err)
		b2, err := b1.Apply(2, Player2)
		require.NoError(t, err)

		require.Equal(t, Player1, b2.Cell(5, 2))
		require.Equal(t, Player2, b2.Cell(4, 2))
	})

	t.Run("does not mutate the input board", func(t *testing.T) {
		b := NewBoard(6, 7)

		_, err := b.Apply(3, Player2)

		require.NoError(t, err)
		require.Equal(t, Empty, b.Cell(5, 3), "Original snapshot must stay untouched")
	})

	t.Run("rejects a full column", func(t *testing.T) {
		b := NewBoard(6, 7)
		var err error
		for i := 0; i < 6; i++ {
			b, err = b.Apply(0, Player1)
			require.NoError(t, err)
		}

		_, err = b.Apply(0, Player2)

		require.ErrorIs(t, err, ErrColumnFull)
	})

	t.Run("rejects an out-of-range column", func(t *testing.T) {
		b := NewBoard(6, 7)

		_, err := b.Apply(-1, Player1)
		require.ErrorIs(t, err, ErrInvalidColumn)

		_, err = b.Apply(7, Player1)
		require.ErrorIs(t, err, ErrInvalidColumn)
	})

	t.Run("full column is distinguishable from bad index", func(t *testing.T) {
		b := NewBoard(6, 7)
		var err error
		for i := 0; i < 6; i++ {
			b, err = b.Apply(6, Player2)
			require.NoError(t, err)
		}

		_, err = b.Apply(6, Player1)

		require.ErrorIs(t, err, ErrColumnFull)
		require.False(t, errors.Is(err, ErrInvalidColumn))
	})
}

func TestHasRun(t *testing.T) {
	t.Run("detects a horizontal run", func(t *testing.T) {
		b := parse(t,
			".......",
			".......",
			".......",
			".......",
			".......",
			".XXXX..",
		)

		require.True(t, b.HasRun(Player1))
		require.False(t, b.HasRun(Player2))
	})

	t.Run("detects a vertical run", func(t *testing.T) {
		b := parse(t,
			".......",
			".......",
			"....O..",
			"....O..",
			"....O..",
			"....O..",
		)

		require.True(t, b.HasRun(Player2))
		require.False(t, b.HasRun(Player1))
	})

	t.Run("detects a down-right diagonal run", func(t *testing.T) {
		b := parse(t,
			".......",
			".......",
			"X......",
			"OX.....",
			"OOX....",
			"OOOX...",
		)

		require.True(t, b.HasRun(Player1))
		require.False(t, b.HasRun(Player2))
	})

	t.Run("detects a down-left diagonal run", func(t *testing.T) {
		b := parse(t,
			".......",
			".......",
			"....O..",
			"...OX..",
			"..OXX..",
			".OXXX..",
		)

		require.True(t, b.HasRun(Player2))
		require.False(t, b.HasRun(Player1), "Player1's three in a row is not a run")
	})

	t.Run("three in a row is not enough", func(t *testing.T) {
		b := parse(t,
			".......",
			".......",
			".......",
			".......",
			".......",
			"XXX.XXX",
		)

		require.False(t, b.HasRun(Player1))
	})
}

func TestIsTerminal(t *testing.T) {
	t.Run("ongoing position is not terminal", func(t *testing.T) {
		b := parse(t,
			".......",
			".......",
			".......",
			".......",
			"...O...",
			"..XX...",
		)

		require.False(t, b.IsTerminal())
	})

	t.Run("a run for either side is terminal", func(t *testing.T) {
		b := parse(t,
			".......",
			".......",
			".......",
			".......",
			".......",
			"OOOO...",
		)

		require.True(t, b.IsTerminal())
	})
}
