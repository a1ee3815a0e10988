package repository

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rocketscienceinc/tictactoe-solver/internal/entity"
)

var ErrGameNotFound = errors.New("game not found")

type GameRepository interface {
	CreateOrUpdate(ctx context.Context, game *entity.Game) error
	GetByID(ctx context.Context, id string) (*entity.Game, error)
	DeleteByID(ctx context.Context, id string) error
}

type dbGame struct {
	games record
}

// NewGameRepository - games expire ttl after their last update, zero ttl keeps them forever.
func NewGameRepository(client *redis.Client, ttl time.Duration) GameRepository {
	return &dbGame{
		games: record{client: client, kind: "game", ttl: ttl},
	}
}

func (that *dbGame) CreateOrUpdate(ctx context.Context, game *entity.Game) error {
	return that.games.save(ctx, game.ID, game)
}

func (that *dbGame) GetByID(ctx context.Context, id string) (*entity.Game, error) {
	var game entity.Game
	if err := that.games.load(ctx, id, &game, ErrGameNotFound); err != nil {
		return &entity.Game{}, err
	}

	return &game, nil
}

func (that *dbGame) DeleteByID(ctx context.Context, id string) error {
	return that.games.remove(ctx, id, ErrGameNotFound)
}
