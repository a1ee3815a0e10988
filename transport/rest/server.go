package rest

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/rocketscienceinc/tictactoe-solver/internal/entity"
)

const shutdownTimeout = 5 * time.Second

type gameGetter interface {
	GetGame(ctx context.Context, gameID string) (*entity.Game, error)
}

type Server struct {
	logger *slog.Logger
	games  gameGetter
}

func New(logger *slog.Logger, games gameGetter) *Server {
	return &Server{
		logger: logger.With("component", "rest"),
		games:  games,
	}
}

// Handler - routes of the HTTP API.
func (that *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /ping", that.handlePing)
	mux.HandleFunc("POST /api/v1/solver/move", that.handleBestMove)
	mux.HandleFunc("POST /api/v1/solver/outcome", that.handleOutcome)
	mux.HandleFunc("GET /api/v1/games/{id}", that.handleGetGame)

	return mux
}

// Start - serves HTTP until ctx is canceled and the in-flight requests are done.
func (that *Server) Start(ctx context.Context, port string) error {
	listener, err := net.Listen("tcp", ":"+port)
	if err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return that.serve(ctx, listener)
}

func (that *Server) serve(ctx context.Context, listener net.Listener) error {
	srv := &http.Server{
		Handler:      that.Handler(),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  30 * time.Second,
	}

	shutdownDone := make(chan struct{})
	go func() {
		defer close(shutdownDone)
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			that.logger.Error("failed to shutdown server", "error", err)
		}
	}()

	if err := srv.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to serve: %w", err)
	}

	// Serve returns as soon as Shutdown begins
	<-shutdownDone

	return nil
}

// handlePing - liveness check.
func (that *Server) handlePing(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	if _, err := w.Write([]byte("pong")); err != nil {
		that.logger.Error("failed to write pong", "error", err)
	}
}
