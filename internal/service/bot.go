package service

import (
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-solver/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-solver/internal/entity"
	"github.com/rocketscienceinc/tictactoe-solver/internal/tictactoe"
)

type BotService interface {
	MakeTurn(game *entity.Game) error
}

type botService struct {
	logger *slog.Logger
}

func NewBotService(logger *slog.Logger) BotService {
	return &botService{
		logger: logger,
	}
}

// MakeTurn - plays the minimax reply for the bot on the game board.
func (that *botService) MakeTurn(game *entity.Game) error {
	log := that.logger.With("method", "botMakeTurn", "gameID", game.ID)

	if !game.IsBotTurn() {
		return apperror.ErrNotYourTurn
	}

	// searches the live board, BestMove restores it before returning
	cell, ok := tictactoe.BestMove(&game.Board)
	if !ok {
		return apperror.ErrNoAvailableMoves
	}

	if err := game.MakeTurn(entity.BotMark, cell); err != nil {
		return fmt.Errorf("bot failed to make turn: %w", err)
	}

	log.Debug("bot made turn", "cell", cell, "status", game.Status)

	return nil
}
