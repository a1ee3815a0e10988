package tictactoe

import "fmt"

// Result - kind of the board outcome.
type Result int

const (
	ResultNone Result = iota
	ResultWin
	ResultDraw
)

// Outcome - terminal state of a board. Winner is set only for ResultWin.
type Outcome struct {
	Result Result `json:"result"`
	Winner Mark   `json:"winner,omitempty"`
}

func (that Result) String() string {
	switch that {
	case ResultWin:
		return "win"
	case ResultDraw:
		return "draw"
	default:
		return "none"
	}
}

func (that Result) MarshalText() ([]byte, error) {
	return []byte(that.String()), nil
}

func (that *Result) UnmarshalText(text []byte) error {
	switch string(text) {
	case "none":
		*that = ResultNone
	case "win":
		*that = ResultWin
	case "draw":
		*that = ResultDraw
	default:
		return fmt.Errorf("unknown result %q", text)
	}

	return nil
}

// IsTerminal - reports whether the game is over.
func (that Outcome) IsTerminal() bool {
	return that.Result != ResultNone
}

func (that Outcome) String() string {
	if that.Result == ResultWin {
		return "win:" + string(that.Winner)
	}

	return that.Result.String()
}

// EvaluateOutcome - checks the lines in fixed order and returns the first win found,
// a draw when no cell is empty, or ResultNone otherwise.
func EvaluateOutcome(board *Board) Outcome {
	for _, line := range Lines {
		a, b, c := board[line[0]], board[line[1]], board[line[2]]
		if a != Empty && a == b && b == c {
			return Outcome{Result: ResultWin, Winner: a}
		}
	}

	// the game will continue until all the squares are full
	for _, cell := range board {
		if cell == Empty {
			return Outcome{Result: ResultNone}
		}
	}

	return Outcome{Result: ResultDraw}
}

// EmptyCells - indices of empty cells in ascending order.
func EmptyCells(board *Board) []int {
	cells := make([]int, 0, BoardSize)
	for i, cell := range board {
		if cell == Empty {
			cells = append(cells, i)
		}
	}

	return cells
}
