package entity

import (
	"testing"

	"github.com/rocketscienceinc/tictactoe-solver/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-solver/internal/tictactoe"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	x = tictactoe.MarkX
	o = tictactoe.MarkO
	e = tictactoe.Empty
)

func TestNewGame(t *testing.T) {
	t.Run("Human moves first", func(t *testing.T) {
		// When: a new game is created
		game := NewGame("123", "p1", false)

		// Then: the game is ongoing with an empty board and X to move
		expectedGame := &Game{
			ID:       "123",
			Turn:     HumanMark,
			Status:   StatusOngoing,
			PlayerID: "p1",
		}

		require.Equal(t, expectedGame, game)
	})

	t.Run("Bot moves first", func(t *testing.T) {
		// When: a new game is created with the bot opening
		game := NewGame("123", "p1", true)

		// Then: O is to move
		assert.Equal(t, BotMark, game.Turn)
		assert.True(t, game.IsBotTurn())
		assert.True(t, game.BotFirst)
	})
}

func TestGameStatusMethods(t *testing.T) {
	t.Run("IsFinished returns true when game status is finished", func(t *testing.T) {
		// Given: a game with StatusFinished
		game := &Game{Status: StatusFinished}

		// Then: it should be finished and not ongoing
		assert.True(t, game.IsFinished())
		assert.False(t, game.IsOngoing())
	})

	t.Run("IsOngoing returns true when game status is ongoing", func(t *testing.T) {
		// Given: a game with StatusOngoing
		game := &Game{Status: StatusOngoing}

		// Then: it should be ongoing
		assert.True(t, game.IsOngoing())
		assert.False(t, game.IsFinished())
	})

	t.Run("IsBotTurn is false once the game is finished", func(t *testing.T) {
		game := &Game{Status: StatusFinished, Turn: BotMark}

		assert.False(t, game.IsBotTurn())
	})
}

func TestGame_ConfirmOngoingState(t *testing.T) {
	t.Run("Returns nil when game is ongoing", func(t *testing.T) {
		game := &Game{Status: StatusOngoing}

		assert.NoError(t, game.ConfirmOngoingState())
	})

	t.Run("Returns ErrGameFinished when game is finished", func(t *testing.T) {
		game := &Game{Status: StatusFinished}

		assert.ErrorIs(t, game.ConfirmOngoingState(), apperror.ErrGameFinished)
	})

	t.Run("Returns error for unknown game status", func(t *testing.T) {
		// Given: a game with unknown status
		game := &Game{Status: "unknown"}

		// When: checking if the game is active
		err := game.ConfirmOngoingState()

		// Then: it should return an error
		require.ErrorIs(t, err, ErrUnknownGameStatus)
		assert.Contains(t, err.Error(), "unknown")
	})
}

func TestGame_UpdateGameState(t *testing.T) {
	t.Run("Updates game state when Player X wins", func(t *testing.T) {
		// Given: a game where Player X has a winning combination
		game := &Game{
			Board:  tictactoe.Board{x, x, x, o, o, e, e, e, e},
			Status: StatusOngoing,
			Turn:   o,
		}

		// When: updating the game state
		game.UpdateGameState()

		// Then: the game should be finished with Player X as the winner
		assert.Equal(t, StatusFinished, game.Status)
		assert.Equal(t, "X", game.Winner)
		assert.Equal(t, e, game.Turn)
	})

	t.Run("Updates game state when the game is a tie", func(t *testing.T) {
		// Given: a game that ended in a tie
		game := &Game{
			Board:  tictactoe.Board{x, o, x, x, o, o, o, x, x},
			Status: StatusOngoing,
			Turn:   o,
		}

		// When: updating the game state
		game.UpdateGameState()

		// Then: the game should be finished with a tie
		assert.Equal(t, StatusFinished, game.Status)
		assert.Equal(t, PlayerTie, game.Winner)
		assert.Equal(t, e, game.Turn)
	})

	t.Run("Game remains ongoing when there is no winner or tie", func(t *testing.T) {
		// Given: a game that is still ongoing
		game := &Game{
			Board:  tictactoe.Board{x, o, e, e, x, e, e, e, o},
			Status: StatusOngoing,
			Turn:   x,
		}

		// When: updating the game state
		game.UpdateGameState()

		// Then: the game should remain ongoing
		assert.Equal(t, StatusOngoing, game.Status)
		assert.Empty(t, game.Winner)
		assert.Equal(t, x, game.Turn)
	})
}

func TestGame_MakeTurn(t *testing.T) {
	t.Run("Successful Turn", func(t *testing.T) {
		// Given: A new game
		game := NewGame("123", "p1", false)

		// When: Player X makes a valid turn
		err := game.MakeTurn(x, 0)
		require.NoError(t, err)

		// Then: The game state should reflect the turn and player turn should switch
		expectedGame := &Game{
			ID:       "123",
			Board:    tictactoe.Board{x, e, e, e, e, e, e, e, e},
			Turn:     o,
			Status:   StatusOngoing,
			PlayerID: "p1",
		}

		require.Equal(t, expectedGame, game)
	})

	t.Run("Error on Cell Already Occupied", func(t *testing.T) {
		// Given: A game where cell 0 is occupied by Player X
		game := NewGame("123", "p1", false)
		require.NoError(t, game.MakeTurn(x, 0))
		before := *game

		// When: Player O tries to make a move to the same cell
		err := game.MakeTurn(o, 0)

		// Then: An ErrCellOccupied error should be returned and the game is unchanged
		require.ErrorIs(t, err, apperror.ErrCellOccupied)
		require.Equal(t, before, *game)
	})

	t.Run("Error on Playing Out of Turn", func(t *testing.T) {
		// Given: A new game where it's Player X's turn
		game := NewGame("123", "p1", false)

		// When: Player O tries to make a move
		err := game.MakeTurn(o, 1)

		// Then: An ErrNotYourTurn error should be returned
		require.ErrorIs(t, err, apperror.ErrNotYourTurn)
		assert.Equal(t, tictactoe.Board{}, game.Board)
	})

	t.Run("Error on Invalid Cell Index (Greater than Range)", func(t *testing.T) {
		game := NewGame("123", "p1", false)

		err := game.MakeTurn(x, 20)

		assert.ErrorIs(t, err, ErrInvalidCell)
	})

	t.Run("Error on Invalid Cell Index (Negative)", func(t *testing.T) {
		game := NewGame("123", "p1", false)

		err := game.MakeTurn(x, -1)

		assert.ErrorIs(t, err, ErrInvalidCell)
	})

	t.Run("Winning move finishes the game", func(t *testing.T) {
		// Given: X is one move away from the top row
		game := &Game{
			Board:  tictactoe.Board{x, x, e, o, o, e, e, e, e},
			Status: StatusOngoing,
			Turn:   x,
		}

		// When: X completes the row
		require.NoError(t, game.MakeTurn(x, 2))

		// Then: the game is finished with X as the winner
		assert.True(t, game.IsFinished())
		assert.Equal(t, "X", game.Winner)
		assert.Equal(t, tictactoe.Outcome{Result: tictactoe.ResultWin, Winner: x}, game.Outcome())
	})

	t.Run("Move After Game Finished", func(t *testing.T) {
		// Given: a game where player X has already won
		game := &Game{
			Board:  tictactoe.Board{x, x, x, e, o, e, e, o, e},
			Status: StatusFinished,
			Winner: "X",
		}

		// When: player O tries to make a move after the game is over
		err := game.MakeTurn(o, 3)

		// Then: an ErrGameFinished should be returned
		assert.ErrorIs(t, err, apperror.ErrGameFinished)
	})
}
