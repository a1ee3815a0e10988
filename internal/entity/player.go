package entity

// Player - a human session. GameID is empty while the player has no active game.
type Player struct {
	ID     string `json:"id"`
	GameID string `json:"game_id,omitempty"`
}

func (that *Player) InGame() bool {
	return that.GameID != ""
}
