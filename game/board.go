package game

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// RunLength is the number of aligned pieces needed to win.
const RunLength = 4

var (
	ErrColumnFull    = errors.New("column is full")
	ErrInvalidColumn = errors.New("column index out of range")
)

type Cell int8

const (
	Empty Cell = iota
	Player1
	Player2
)

func (c Cell) Opponent() Cell {
	switch c {
	case Player1:
		return Player2
	case Player2:
		return Player1
	}
	return Empty
}

func (c Cell) String() string {
	switch c {
	case Player1:
		return "player1"
	case Player2:
		return "player2"
	}
	return "empty"
}

// Board is an immutable snapshot of the grid. Row 0 is the top row; pieces
// stack upward from row rows-1. Apply returns a fresh copy, so boards can be
// shared across recursive search branches without aliasing.
type Board struct {
	rows  int
	cols  int
	cells []Cell // row-major
}

// NewBoard returns an empty board. Dimensions smaller than the run length
// are a configuration error.
func NewBoard(rows, cols int) Board {
	if rows < RunLength || cols < RunLength {
		panic(fmt.Sprintf("game: board %dx%d cannot fit a run of %d", rows, cols, RunLength))
	}
	return Board{rows: rows, cols: cols, cells: make([]Cell, rows*cols)}
}

func (b Board) Rows() int { return b.rows }
func (b Board) Cols() int { return b.cols }

func (b Board) Cell(row, col int) Cell {
	return b.cells[row*b.cols+col]
}

func (b Board) CenterColumn() int { return b.cols / 2 }

// ValidMoves returns every playable column in ascending order. An empty
// result means the board is full.
func (b Board) ValidMoves() []int {
	moves := make([]int, 0, b.cols)
	for c := 0; c < b.cols; c++ {
		if b.Cell(0, c) == Empty {
			moves = append(moves, c)
		}
	}
	return moves
}

// Apply drops a piece for side into col and returns the resulting board.
// The receiver is never modified.
func (b Board) Apply(col int, side Cell) (Board, error) {
	if col < 0 || col >= b.cols {
		return Board{}, fmt.Errorf("column %d: %w", col, ErrInvalidColumn)
	}
	for r := b.rows - 1; r >= 0; r-- {
		if b.Cell(r, col) == Empty {
			next := b.clone()
			next.cells[r*b.cols+col] = side
			return next, nil
		}
	}
	return Board{}, fmt.Errorf("column %d: %w", col, ErrColumnFull)
}

func (b Board) clone() Board {
	cells := make([]Cell, len(b.cells))
	copy(cells, b.cells)
	return Board{rows: b.rows, cols: b.cols, cells: cells}
}

// HasRun reports whether side has RunLength aligned pieces in any of the
// four orientations, checked at every window origin.
func (b Board) HasRun(side Cell) bool {
	for r := 0; r < b.rows; r++ {
		for c := 0; c < b.cols; c++ {
			if c+RunLength <= b.cols && b.runFrom(r, c, 0, 1, side) {
				return true
			}
			if r+RunLength <= b.rows && b.runFrom(r, c, 1, 0, side) {
				return true
			}
			if r+RunLength <= b.rows && c+RunLength <= b.cols && b.runFrom(r, c, 1, 1, side) {
				return true
			}
			if r+RunLength <= b.rows && c-RunLength+1 >= 0 && b.runFrom(r, c, 1, -1, side) {
				return true
			}
		}
	}
	return false
}

func (b Board) runFrom(row, col, dRow, dCol int, side Cell) bool {
	for i := 0; i < RunLength; i++ {
		if b.Cell(row+i*dRow, col+i*dCol) != side {
			return false
		}
	}
	return true
}

func (b Board) IsFull() bool {
	for c := 0; c < b.cols; c++ {
		if b.Cell(0, c) == Empty {
			return false
		}
	}
	return true
}

// IsTerminal reports whether the game is over: a run for either side or a
// full board. Win checks run in fixed order, Player1 then Player2.
func (b Board) IsTerminal() bool {
	return b.HasRun(Player1) || b.HasRun(Player2) || b.IsFull()
}

// String renders the grid for terminal display, with 1-based column labels.
func (b Board) String() string {
	glyphs := map[Cell]byte{Empty: '.', Player1: 'X', Player2: 'O'}
	var sb strings.Builder
	for r := 0; r < b.rows; r++ {
		for c := 0; c < b.cols; c++ {
			if c > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteByte(glyphs[b.Cell(r, c)])
		}
		sb.WriteByte('\n')
	}
	for c := 0; c < b.cols; c++ {
		if c > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(strconv.Itoa((c + 1) % 10))
	}
	sb.WriteByte('\n')
	return sb.String()
}
