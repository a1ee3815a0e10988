package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/rocketscienceinc/tictactoe-solver/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-solver/internal/entity"
	"github.com/rocketscienceinc/tictactoe-solver/internal/repository"
)

type GamePlayService interface {
	GetOrCreatePlayer(ctx context.Context, playerID string) (*entity.Player, error)

	StartGame(ctx context.Context, playerID string, botFirst bool) (*entity.Game, error)
	RestartGame(ctx context.Context, playerID string, botFirst bool) (*entity.Game, error)
	GetGame(ctx context.Context, gameID string) (*entity.Game, error)
	CleanupGame(ctx context.Context, game *entity.Game)

	MakeTurn(ctx context.Context, playerID string, cell int) (*entity.Game, error)
}

type gamePlayService struct {
	logger *slog.Logger

	playerService PlayerService
	gameService   GameService
	botService    BotService

	botDelay time.Duration
}

func NewGamePlayService(
	logger *slog.Logger,
	playerService PlayerService,
	gameService GameService,
	botService BotService,
	botDelay time.Duration,
) GamePlayService {
	return &gamePlayService{
		logger:        logger,
		playerService: playerService,
		gameService:   gameService,
		botService:    botService,
		botDelay:      botDelay,
	}
}

func (that *gamePlayService) GetOrCreatePlayer(ctx context.Context, playerID string) (*entity.Player, error) {
	player, err := that.playerService.GetOrCreatePlayer(ctx, playerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get or create player: %w", err)
	}

	return player, nil
}

func (that *gamePlayService) GetGame(ctx context.Context, gameID string) (*entity.Game, error) {
	game, err := that.gameService.GetGameByID(ctx, gameID)
	if err != nil {
		return nil, fmt.Errorf("failed to get game by id: %w", err)
	}

	return game, nil
}

// StartGame - returns the player's ongoing game or starts a new one against the bot.
func (that *gamePlayService) StartGame(ctx context.Context, playerID string, botFirst bool) (*entity.Game, error) {
	player, err := that.playerService.GetPlayerByID(ctx, playerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get player by id: %w", err)
	}

	if player.InGame() {
		game, err := that.gameService.GetGameByID(ctx, player.GameID)
		switch {
		case err == nil && game.IsOngoing():
			if err = that.resumeBotTurn(ctx, game); err != nil {
				return nil, err
			}

			return game, nil
		case err != nil && !errors.Is(err, repository.ErrGameNotFound):
			return nil, fmt.Errorf("failed to get game: %w", err)
		}
	}

	game, err := that.gameService.CreateGame(ctx, player.ID, botFirst)
	if err != nil {
		return nil, fmt.Errorf("failed to create new game: %w", err)
	}

	player.GameID = game.ID
	if err = that.playerService.UpdatePlayer(ctx, player); err != nil {
		return nil, fmt.Errorf("failed to update player: %w", err)
	}

	if err = that.resumeBotTurn(ctx, game); err != nil {
		return nil, err
	}

	that.logger.Info("game started", "gameID", game.ID, "playerID", player.ID, "botFirst", botFirst)

	return game, nil
}

// RestartGame - abandons the current game, if any, and starts a fresh one.
func (that *gamePlayService) RestartGame(ctx context.Context, playerID string, botFirst bool) (*entity.Game, error) {
	player, err := that.playerService.GetPlayerByID(ctx, playerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get player by id: %w", err)
	}

	if player.InGame() {
		game, err := that.gameService.GetGameByID(ctx, player.GameID)
		switch {
		case err == nil:
			that.CleanupGame(ctx, game)
		case !errors.Is(err, repository.ErrGameNotFound):
			return nil, fmt.Errorf("failed to get game: %w", err)
		}
	}

	return that.StartGame(ctx, playerID, botFirst)
}

// MakeTurn - applies the human move and, unless the game is over, the bot reply.
func (that *gamePlayService) MakeTurn(ctx context.Context, playerID string, cell int) (*entity.Game, error) {
	player, err := that.playerService.GetPlayerByID(ctx, playerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get player by id: %w", err)
	}

	if !player.InGame() {
		return nil, apperror.ErrNoActiveGames
	}

	game, err := that.gameService.GetGameByID(ctx, player.GameID)
	if err != nil {
		return nil, fmt.Errorf("failed to get game by id: %w", err)
	}

	if err = game.ConfirmOngoingState(); err != nil {
		return game, fmt.Errorf("failed to make turn: %w", err)
	}

	// a reply lost to an earlier cancellation is played before the human move
	if err = that.resumeBotTurn(ctx, game); err != nil {
		return nil, err
	}

	if game.IsFinished() {
		that.releasePlayer(ctx, player)
		return game, fmt.Errorf("failed to make turn: %w", apperror.ErrGameFinished)
	}

	if err = game.MakeTurn(entity.HumanMark, cell); err != nil {
		return game, fmt.Errorf("failed to make turn: %w", err)
	}

	if game.IsBotTurn() {
		if err = that.botTurn(ctx, game); err != nil {
			return nil, err
		}
	}

	if err = that.gameService.UpdateGame(ctx, game); err != nil {
		return nil, fmt.Errorf("failed to update game: %w", err)
	}

	if game.IsFinished() {
		that.releasePlayer(ctx, player)
		that.logger.Info("game finished", "gameID", game.ID, "winner", game.Winner)
	}

	return game, nil
}

// CleanupGame - deletes the game and frees its player.
func (that *gamePlayService) CleanupGame(ctx context.Context, game *entity.Game) {
	log := that.logger.With("method", "cleanupGame", "gameID", game.ID)

	if err := that.gameService.DeleteGame(ctx, game.ID); err != nil {
		log.Error("failed to delete game", "error", err)
	}

	player, err := that.playerService.GetPlayerByID(ctx, game.PlayerID)
	if err != nil {
		log.Error("failed to get player", "player", game.PlayerID, "error", err)
		return
	}

	that.releasePlayer(ctx, player)
}

// resumeBotTurn - plays and saves the bot move when the game waits on O.
func (that *gamePlayService) resumeBotTurn(ctx context.Context, game *entity.Game) error {
	if !game.IsBotTurn() {
		return nil
	}

	if err := that.botTurn(ctx, game); err != nil {
		return err
	}

	if err := that.gameService.UpdateGame(ctx, game); err != nil {
		return fmt.Errorf("failed to update game: %w", err)
	}

	return nil
}

// botTurn - waits the configured delay, then lets the bot move.
func (that *gamePlayService) botTurn(ctx context.Context, game *entity.Game) error {
	if that.botDelay > 0 {
		timer := time.NewTimer(that.botDelay)
		defer timer.Stop()

		select {
		case <-ctx.Done():
			return fmt.Errorf("bot turn canceled: %w", ctx.Err())
		case <-timer.C:
		}
	}

	if err := that.botService.MakeTurn(game); err != nil {
		return fmt.Errorf("bot failed to make turn: %w", err)
	}

	return nil
}

func (that *gamePlayService) releasePlayer(ctx context.Context, player *entity.Player) {
	player.GameID = ""
	if err := that.playerService.UpdatePlayer(ctx, player); err != nil {
		that.logger.Error("failed to update", "player", player.ID, "error", err)
	}
}
