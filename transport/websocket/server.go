package websocket

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rocketscienceinc/tictactoe-solver/internal/entity"
)

const (
	shutdownTimeout = 5 * time.Second
	maxMessageSize  = 1 << 12
)

type gameUseCase interface {
	GetOrCreatePlayer(ctx context.Context, playerID string) (*entity.Player, error)
	GetGame(ctx context.Context, gameID string) (*entity.Game, error)

	StartGame(ctx context.Context, playerID string, botFirst bool) (*entity.Game, error)
	RestartGame(ctx context.Context, playerID string, botFirst bool) (*entity.Game, error)
	MakeTurn(ctx context.Context, playerID string, cell int) (*entity.Game, error)
}

type handlerFunc func(ctx context.Context, payload *Payload) (*Payload, error)

type Server struct {
	logger      *slog.Logger
	gameUseCase gameUseCase
	upgrader    websocket.Upgrader

	handlers map[string]handlerFunc
	conns    sync.WaitGroup
}

func New(logger *slog.Logger, gameUseCase gameUseCase) *Server {
	server := &Server{
		logger:      logger.With("component", "websocket"),
		gameUseCase: gameUseCase,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(*http.Request) bool { return true },
		},

		handlers: make(map[string]handlerFunc),
	}

	server.handlers[actionConnect] = server.handleConnect
	server.handlers[actionGameNew] = server.handleNewGame
	server.handlers[actionGameTurn] = server.handleGameTurn
	server.handlers[actionGameReset] = server.handleResetGame

	return server
}

// Handler - serves the websocket endpoint at /ws.
func (that *Server) Handler(ctx context.Context) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", func(w http.ResponseWriter, r *http.Request) {
		that.upgradeToWebSocket(ctx, w, r)
	})

	return mux
}

// Start - starts WebSocket server. It returns once ctx is canceled and every connection has been closed.
func (that *Server) Start(ctx context.Context, port string) error {
	listener, err := net.Listen("tcp", ":"+port)
	if err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return that.serve(ctx, listener)
}

func (that *Server) serve(ctx context.Context, listener net.Listener) error {
	srv := &http.Server{
		Handler:           that.Handler(ctx),
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       30 * time.Second,
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

	<-shutdownDone

	// Shutdown does not track hijacked connections
	that.conns.Wait()

	return nil
}

// upgradeToWebSocket - upgrades the connection to WebSocket.
func (that *Server) upgradeToWebSocket(ctx context.Context, w http.ResponseWriter, r *http.Request) {
	log := that.logger.With("method", "upgradeConnection")

	that.conns.Add(1)
	defer that.conns.Done()

	conn, err := that.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Error("failed to upgrade connection", "error", err)
		return
	}

	defer conn.Close()

	conn.SetReadLimit(maxMessageSize)

	// hijacked connections are not closed by http.Server.Shutdown
	connCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	go func() {
		<-connCtx.Done()
		_ = conn.Close()
	}()

	log.Info("WebSocket connection established", "remote", r.RemoteAddr)

	if err = that.handleMessages(connCtx, conn); err != nil {
		log.Info("WebSocket connection closed", "reason", err)
	}
}

// handleMessages - processes messages from the client until the connection is closed.
func (that *Server) handleMessages(ctx context.Context, conn *websocket.Conn) error {
	log := that.logger.With("method", "handleMessages")

	for {
		var message Message
		if err := conn.ReadJSON(&message); err != nil {
			var syntaxErr *json.SyntaxError
			var typeErr *json.UnmarshalTypeError
			if errors.As(err, &syntaxErr) || errors.As(err, &typeErr) {
				log.Error("failed to unmarshal message", "error", err)
				if err = that.sendError(conn, actionError, "invalid message"); err != nil {
					return err
				}
				continue
			}

			return fmt.Errorf("failed to read message: %w", err)
		}

		if err := that.dispatch(ctx, conn, &message); err != nil {
			return err
		}
	}
}

// dispatch - runs the action handler and writes its response. Only write errors are returned.
func (that *Server) dispatch(ctx context.Context, conn *websocket.Conn, message *Message) error {
	log := that.logger.With("method", "dispatch", "action", message.Action)

	handler, ok := that.handlers[message.Action]
	if !ok {
		log.Warn("unknown action")
		return that.sendError(conn, message.Action, "unknown action")
	}

	var req Payload
	if len(message.Payload) > 0 {
		if err := json.Unmarshal(message.Payload, &req); err != nil {
			log.Error("failed to unmarshal payload", "error", err)
			return that.sendError(conn, message.Action, "invalid payload")
		}
	}

	resp, err := handler(ctx, &req)
	if err != nil {
		log.Error("error processing message", "error", err)
		return that.sendError(conn, message.Action, clientError(err))
	}

	return that.sendMessage(conn, message.Action, resp)
}

func (that *Server) sendMessage(conn *websocket.Conn, action string, payload *Payload) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal payload: %w", err)
	}

	if err = conn.WriteJSON(Message{Action: action, Payload: body}); err != nil {
		return fmt.Errorf("failed to write message: %w", err)
	}

	return nil
}

func (that *Server) sendError(conn *websocket.Conn, action, reason string) error {
	return that.sendMessage(conn, action, &Payload{Error: reason})
}
