package tictactoe

import "math"

// WinScore - score of an immediate win for MarkO, reduced by one for every ply of delay.
const WinScore = 10

// Minimax - scores the board for MarkO by exhaustive search.
// depth is the number of plies played since the search root, maximizing tells whether MarkO moves next.
// The board is mutated while searching and restored before return.
func Minimax(board *Board, depth int, maximizing bool) int {
	switch outcome := EvaluateOutcome(board); outcome.Result {
	case ResultWin:
		if outcome.Winner == MarkO {
			return WinScore - depth
		}
		return depth - WinScore
	case ResultDraw:
		return 0
	default:
		// game continues, search the replies
	}

	mark, best := MarkX, math.MaxInt
	if maximizing {
		mark, best = MarkO, math.MinInt
	}

	for _, cell := range EmptyCells(board) {
		board[cell] = mark
		score := Minimax(board, depth+1, !maximizing)
		board[cell] = Empty

		// strict comparison keeps the lowest index among equal scores
		if (maximizing && score > best) || (!maximizing && score < best) {
			best = score
		}
	}

	return best
}

// BestMove - picks the cell for MarkO with the highest minimax score.
// Returns false when the board has no empty cell. The board is left unchanged.
func BestMove(board *Board) (int, bool) {
	bestScore, bestCell := math.MinInt, -1

	for _, cell := range EmptyCells(board) {
		board[cell] = MarkO
		score := Minimax(board, 0, false)
		board[cell] = Empty

		if score > bestScore {
			bestScore, bestCell = score, cell
		}
	}

	return bestCell, bestCell >= 0
}
