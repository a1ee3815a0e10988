package rest

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rocketscienceinc/tictactoe-solver/internal/repository"
	"github.com/rocketscienceinc/tictactoe-solver/internal/tictactoe"
)

const maxBodySize = 1 << 12

type boardRequest struct {
	Board []tictactoe.Mark `json:"board"`
}

type moveResponse struct {
	// Cell is null when the board is already terminal.
	Cell    *int              `json:"cell"`
	Outcome tictactoe.Outcome `json:"outcome"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// handleBestMove - returns the computer's (O) best reply for the posted board.
func (that *Server) handleBestMove(w http.ResponseWriter, r *http.Request) {
	board, ok := that.readBoard(w, r)
	if !ok {
		return
	}

	resp := moveResponse{Outcome: tictactoe.EvaluateOutcome(&board)}
	if !resp.Outcome.IsTerminal() {
		if cell, found := tictactoe.BestMove(&board); found {
			resp.Cell = &cell
		}
	}

	that.writeJSON(w, http.StatusOK, resp)
}

func (that *Server) handleOutcome(w http.ResponseWriter, r *http.Request) {
	board, ok := that.readBoard(w, r)
	if !ok {
		return
	}

	that.writeJSON(w, http.StatusOK, tictactoe.EvaluateOutcome(&board))
}

func (that *Server) handleGetGame(w http.ResponseWriter, r *http.Request) {
	log := that.logger.With("method", "handleGetGame")

	game, err := that.games.GetGame(r.Context(), r.PathValue("id"))
	switch {
	case errors.Is(err, repository.ErrGameNotFound):
		that.writeJSON(w, http.StatusNotFound, errorResponse{Error: repository.ErrGameNotFound.Error()})
		return
	case err != nil:
		log.Error("failed to get game", "error", err)
		that.writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "failed to get game"})
		return
	}

	that.writeJSON(w, http.StatusOK, game)
}

func (that *Server) readBoard(w http.ResponseWriter, r *http.Request) (tictactoe.Board, bool) {
	var req boardRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodySize)).Decode(&req); err != nil {
		that.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return tictactoe.Board{}, false
	}

	board, err := tictactoe.ParseBoard(req.Board)
	if err != nil {
		that.writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return tictactoe.Board{}, false
	}

	return board, true
}

func (that *Server) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		that.logger.Error("failed to write response", "error", err)
	}
}
