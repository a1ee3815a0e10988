package websocket

import (
	"context"
	"errors"
	"fmt"

	"github.com/rocketscienceinc/tictactoe-solver/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-solver/internal/entity"
	"github.com/rocketscienceinc/tictactoe-solver/internal/repository"
)

var (
	ErrPlayerRequired = errors.New("player is required")
	ErrCellRequired   = errors.New("cell is required")
)

// errors safe to show to the client, everything else is reported as internal
var clientErrors = []error{
	ErrPlayerRequired,
	ErrCellRequired,
	apperror.ErrGameFinished,
	apperror.ErrNotYourTurn,
	apperror.ErrNoActiveGames,
	apperror.ErrCellOccupied,
	entity.ErrInvalidCell,
	repository.ErrPlayerNotFound,
	repository.ErrGameNotFound,
}

func clientError(err error) string {
	for _, known := range clientErrors {
		if errors.Is(err, known) {
			return known.Error()
		}
	}

	return "internal error"
}

// handleConnect - registers a new player or restores an existing one with its active game.
func (that *Server) handleConnect(ctx context.Context, req *Payload) (*Payload, error) {
	playerID := ""
	if req.Player != nil {
		playerID = req.Player.ID
	}

	player, err := that.gameUseCase.GetOrCreatePlayer(ctx, playerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get or create player: %w", err)
	}

	resp := &Payload{Player: player}

	if player.InGame() {
		game, err := that.gameUseCase.GetGame(ctx, player.GameID)
		switch {
		case err == nil:
			resp.Game = game
		case !errors.Is(err, repository.ErrGameNotFound):
			return nil, fmt.Errorf("failed to get game: %w", err)
		}
	}

	that.logger.Info("player connected", "playerID", player.ID)

	return resp, nil
}

func (that *Server) handleNewGame(ctx context.Context, req *Payload) (*Payload, error) {
	if req.Player == nil || req.Player.ID == "" {
		return nil, ErrPlayerRequired
	}

	game, err := that.gameUseCase.StartGame(ctx, req.Player.ID, req.BotFirst)
	if err != nil {
		return nil, fmt.Errorf("failed to start game: %w", err)
	}

	return that.gameResponse(ctx, req.Player.ID, game)
}

func (that *Server) handleResetGame(ctx context.Context, req *Payload) (*Payload, error) {
	if req.Player == nil || req.Player.ID == "" {
		return nil, ErrPlayerRequired
	}

	game, err := that.gameUseCase.RestartGame(ctx, req.Player.ID, req.BotFirst)
	if err != nil {
		return nil, fmt.Errorf("failed to restart game: %w", err)
	}

	return that.gameResponse(ctx, req.Player.ID, game)
}

// handleGameTurn - plays the human move; the response already contains the bot reply.
func (that *Server) handleGameTurn(ctx context.Context, req *Payload) (*Payload, error) {
	if req.Player == nil || req.Player.ID == "" {
		return nil, ErrPlayerRequired
	}

	if req.Cell == nil {
		return nil, ErrCellRequired
	}

	game, err := that.gameUseCase.MakeTurn(ctx, req.Player.ID, *req.Cell)
	if err != nil {
		return nil, fmt.Errorf("failed to make turn: %w", err)
	}

	return that.gameResponse(ctx, req.Player.ID, game)
}

// gameResponse - pairs the game with the stored player, whose game_id may have changed during the action.
func (that *Server) gameResponse(ctx context.Context, playerID string, game *entity.Game) (*Payload, error) {
	player, err := that.gameUseCase.GetOrCreatePlayer(ctx, playerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get player: %w", err)
	}

	return &Payload{Player: player, Game: game}, nil
}
