package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/tictactoe-solver/internal/config"
	"github.com/rocketscienceinc/tictactoe-solver/internal/repository"
	"github.com/rocketscienceinc/tictactoe-solver/internal/repository/storage"
	"github.com/rocketscienceinc/tictactoe-solver/internal/service"
	"github.com/rocketscienceinc/tictactoe-solver/transport/rest"
	"github.com/rocketscienceinc/tictactoe-solver/transport/websocket"
)

var ErrAddrNotFound = errors.New("redis address string is empty")

// RunApp - runs the application.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if conf.Redis.Host == "" || conf.Redis.Port == "" {
		return ErrAddrNotFound
	}

	redisStorage, err := storage.New(ctx, conf.Redis.GetRedisAddr())
	if err != nil {
		return fmt.Errorf("could not connect to redis storage: %w", err)
	}

	defer func() {
		if err = redisStorage.Close(); err != nil {
			log.Error("could not close redis storage", "error", err)
		}
	}()

	playerRepo := repository.NewPlayerRepository(redisStorage, conf.PlayerTTL)
	gameRepo := repository.NewGameRepository(redisStorage, conf.GameTTL)

	gamePlayService := service.NewGamePlayService(
		logger,
		service.NewPlayerService(playerRepo),
		service.NewGameService(gameRepo),
		service.NewBotService(logger),
		conf.Bot.TurnDelay,
	)

	// run HTTP server
	httpErrCh := make(chan error, 1)
	go func() {
		log.Info("Starting HTTP server", "port", conf.HTTPPort)
		httpErrCh <- rest.New(logger, gamePlayService).Start(ctx, conf.HTTPPort)
	}()

	// run Websocket server
	wsErrCh := make(chan error, 1)
	go func() {
		log.Info("Starting WebSocket server", "port", conf.SocketPort)
		wsErrCh <- websocket.New(logger, gamePlayService).Start(ctx, conf.SocketPort)
	}()

	var runErr error
	select {
	case err = <-httpErrCh:
		httpErrCh = nil
		if err != nil {
			runErr = fmt.Errorf("HTTP server error: %w", err)
		}
	case err = <-wsErrCh:
		wsErrCh = nil
		if err != nil {
			runErr = fmt.Errorf("WebSocket server error: %w", err)
		}
	case <-ctx.Done():
		log.Info("Application context canceled, shutting down")
	}

	cancel()

	// redis is closed only after both servers have stopped
	waitServers(log, httpErrCh, wsErrCh)

	return runErr
}

// waitServers - blocks until every non-nil channel has delivered its server result.
func waitServers(log *slog.Logger, errChs ...<-chan error) {
	for _, errCh := range errChs {
		if errCh == nil {
			continue
		}

		if err := <-errCh; err != nil {
			log.Error("server stopped with error", "error", err)
		}
	}
}
