package entity

import (
	"errors"
	"fmt"

	"github.com/rocketscienceinc/tictactoe-solver/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-solver/internal/tictactoe"
)

const (
	StatusFinished = "finished"
	StatusOngoing  = "ongoing"

	// HumanMark and BotMark - the human always plays X, the bot plays O.
	HumanMark = tictactoe.MarkX
	BotMark   = tictactoe.MarkO

	PlayerTie = "-"
)

var (
	ErrInvalidCell       = errors.New("invalid cell index")
	ErrUnknownGameStatus = errors.New("unknown game status")
)

type Game struct {
	ID       string          `json:"id"`
	Board    tictactoe.Board `json:"board"`
	Winner   string          `json:"winner"`
	Status   string          `json:"status"`
	Turn     tictactoe.Mark  `json:"player_turn"`
	PlayerID string          `json:"player_id,omitempty"`
	BotFirst bool            `json:"bot_first,omitempty"`
}

// NewGame - creates an ongoing game against the bot. X moves first unless botFirst is set.
func NewGame(id, playerID string, botFirst bool) *Game {
	turn := HumanMark
	if botFirst {
		turn = BotMark
	}

	return &Game{
		ID:       id,
		Turn:     turn,
		Status:   StatusOngoing,
		PlayerID: playerID,
		BotFirst: botFirst,
	}
}

// Outcome - evaluates the current board.
func (that *Game) Outcome() tictactoe.Outcome {
	return tictactoe.EvaluateOutcome(&that.Board)
}

func (that *Game) UpdateGameState() {
	switch outcome := that.Outcome(); outcome.Result {
	// one player wins
	case tictactoe.ResultWin:
		that.Winner = string(outcome.Winner)
		that.Status = StatusFinished
		that.Turn = tictactoe.Empty
	// tie
	case tictactoe.ResultDraw:
		that.Winner = PlayerTie
		that.Status = StatusFinished
		that.Turn = tictactoe.Empty
	// game continue
	case tictactoe.ResultNone:
		that.Status = StatusOngoing
	}
}

func (that *Game) MakeTurn(mark tictactoe.Mark, cell int) error {
	if that.IsFinished() {
		return apperror.ErrGameFinished
	}

	if cell < 0 || cell >= len(that.Board) {
		return fmt.Errorf("%w: cell %d", ErrInvalidCell, cell)
	}

	if that.Turn != mark {
		return apperror.ErrNotYourTurn
	}

	if that.Board[cell] != tictactoe.Empty {
		return apperror.ErrCellOccupied
	}

	that.Board[cell] = mark
	that.Turn = mark.Opponent()

	that.UpdateGameState()

	return nil
}

func (that *Game) IsFinished() bool {
	return that.Status == StatusFinished
}

func (that *Game) IsOngoing() bool {
	return that.Status == StatusOngoing
}

func (that *Game) IsBotTurn() bool {
	return that.IsOngoing() && that.Turn == BotMark
}

func (that *Game) ConfirmOngoingState() error {
	switch {
	case that.IsFinished():
		return apperror.ErrGameFinished
	case that.IsOngoing():
		return nil
	default:
		return fmt.Errorf("%w: %s", ErrUnknownGameStatus, that.Status)
	}
}
