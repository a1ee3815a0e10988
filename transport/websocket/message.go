package websocket

import (
	"encoding/json"

	"github.com/rocketscienceinc/tictactoe-solver/internal/entity"
)

const (
	actionConnect   = "connect"
	actionGameNew   = "game:new"
	actionGameTurn  = "game:turn"
	actionGameReset = "game:reset"
	actionError     = "error"
)

// Message represents a WebSocket message with an action type and a payload.
type Message struct {
	Action  string          `json:"action"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// Payload - request and response body of every action.
type Payload struct {
	Player   *entity.Player `json:"player,omitempty"`
	Game     *entity.Game   `json:"game,omitempty"`
	Cell     *int           `json:"cell,omitempty"`
	BotFirst bool           `json:"bot_first,omitempty"`
	Error    string         `json:"error,omitempty"`
}
