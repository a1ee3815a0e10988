package tictactoe

import (
	"errors"
	"fmt"
)

// Mark - the content of a single cell.
type Mark string

const (
	Empty Mark = ""
	// MarkX is the human side. It minimizes the score during search.
	MarkX Mark = "X"
	// MarkO is the computer side. It maximizes the score during search.
	MarkO Mark = "O"
)

// BoardSize - number of cells on a 3x3 board.
const BoardSize = 9

var (
	ErrInvalidBoardSize = errors.New("board must have exactly 9 cells")
	ErrInvalidMark      = errors.New("invalid mark")
)

// Board - cells in row-major order, 0-2 top row, 3-5 middle row, 6-8 bottom row.
type Board [BoardSize]Mark

// Lines - rows, columns and diagonals that win when filled with one mark.
var Lines = [8][3]int{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

func (that Mark) IsValid() bool {
	return that == Empty || that == MarkX || that == MarkO
}

// Opponent - returns the other player's mark. Empty stays empty.
func (that Mark) Opponent() Mark {
	switch that {
	case MarkX:
		return MarkO
	case MarkO:
		return MarkX
	default:
		return Empty
	}
}

// ParseBoard - builds a Board from cells received from outside, rejecting wrong sizes and unknown marks.
func ParseBoard(cells []Mark) (Board, error) {
	var board Board

	if len(cells) != BoardSize {
		return board, fmt.Errorf("%w: got %d", ErrInvalidBoardSize, len(cells))
	}

	for i, cell := range cells {
		if !cell.IsValid() {
			return board, fmt.Errorf("%w %q at cell %d", ErrInvalidMark, cell, i)
		}
		board[i] = cell
	}

	return board, nil
}

// Count - number of cells holding mark.
func (that *Board) Count(mark Mark) int {
	n := 0
	for _, cell := range that {
		if cell == mark {
			n++
		}
	}

	return n
}
