package repository

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rocketscienceinc/tictactoe-solver/internal/entity"
)

var ErrPlayerNotFound = errors.New("player not found")

type PlayerRepository interface {
	CreateOrUpdate(ctx context.Context, player *entity.Player) error
	GetByID(ctx context.Context, id string) (*entity.Player, error)
}

type dbPlayer struct {
	players record
}

// NewPlayerRepository - a player session lives ttl after its last update.
func NewPlayerRepository(client *redis.Client, ttl time.Duration) PlayerRepository {
	return &dbPlayer{
		players: record{client: client, kind: "player", ttl: ttl},
	}
}

func (that *dbPlayer) CreateOrUpdate(ctx context.Context, player *entity.Player) error {
	return that.players.save(ctx, player.ID, player)
}

func (that *dbPlayer) GetByID(ctx context.Context, id string) (*entity.Player, error) {
	var player entity.Player
	if err := that.players.load(ctx, id, &player, ErrPlayerNotFound); err != nil {
		return &entity.Player{}, err
	}

	return &player, nil
}
